// Package location tracks where in a GFA text source a record or field
// came from, for use in error messages.
package location

import (
	"fmt"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Position identifies a single line within a named source. Path is empty
// for in-memory sources constructed with ReadString.
type Position struct {
	Path string
	Line int
}

// String renders the position as "path:line", or just "line N" when Path
// is empty.
func (p Position) String() string {
	if p.Path == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.Path, p.Line)
}

// IsZero reports whether p is the zero Position (no location known).
func (p Position) IsZero() bool {
	return p == Position{}
}

// CanonicalPath normalizes a file path for stable use as a Position's Path:
// it cleans the path and applies Unicode NFC normalization, so the same
// file referenced via different but equivalent byte sequences (e.g. a
// combining-character filename from different filesystems) produces an
// identical Position.Path.
func CanonicalPath(path string) string {
	cleaned := filepath.Clean(path)
	return norm.NFC.String(cleaned)
}
