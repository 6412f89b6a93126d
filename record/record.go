// Package record implements GFA's record polymorphism: one Go type per
// record variant (H, S, L, C, P for GFA1; E, F, G, O, U, #, and custom for
// GFA2), each exposing its positional fields, a shared tag set, and clone
// semantics. Segment additionally carries the virtual/real sum type from
// spec §4.2/§9: a virtual Segment is a forward-reference placeholder that
// is promoted in place once its real definition line arrives.
package record

import (
	"github.com/asmgraph/gfa/location"
	"github.com/asmgraph/gfa/tag"
)

// Record is implemented by every line variant. Reference fields (segment
// names, group member ids) are plain strings by design — see SPEC_FULL.md
// §10 — so no Record ever holds a pointer to another Record, and clone
// semantics are just a matter of copying scalars, slices, and the tag set.
type Record interface {
	RecordType() byte
	TagSet() *tag.Set
	Clone() Record
	Pos() location.Position
}

// Header is the H line: an optional version string plus arbitrary tags.
type Header struct {
	VN       string
	Position location.Position
	Tags     *tag.Set
}

func NewHeader() *Header { return &Header{Tags: tag.NewSet()} }

func (h *Header) RecordType() byte          { return 'H' }
func (h *Header) TagSet() *tag.Set          { return h.Tags }
func (h *Header) Pos() location.Position    { return h.Position }
func (h *Header) Clone() Record {
	return &Header{VN: h.VN, Position: h.Position, Tags: h.Tags.Clone()}
}

// Comment is a "#" line, preserved verbatim.
type Comment struct {
	Text     string
	Position location.Position
}

func (c *Comment) RecordType() byte       { return '#' }
func (c *Comment) TagSet() *tag.Set       { return tag.NewSet() }
func (c *Comment) Pos() location.Position { return c.Position }
func (c *Comment) Clone() Record          { return &Comment{Text: c.Text, Position: c.Position} }

// Custom is any single-uppercase-letter record type GFA2 doesn't define
// itself; its positional fields are kept as opaque strings.
type Custom struct {
	Code     byte
	Fields   []string
	Position location.Position
	Tags     *tag.Set
}

func (c *Custom) RecordType() byte       { return c.Code }
func (c *Custom) TagSet() *tag.Set       { return c.Tags }
func (c *Custom) Pos() location.Position { return c.Position }
func (c *Custom) Clone() Record {
	fields := make([]string, len(c.Fields))
	copy(fields, c.Fields)
	return &Custom{Code: c.Code, Fields: fields, Position: c.Position, Tags: c.Tags.Clone()}
}
