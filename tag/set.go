package tag

import (
	"fmt"

	"github.com/asmgraph/gfa/gfaerr"
)

// Set holds a record's optional fields in insertion order, with O(1)
// lookup by name and a duplicate-name invariant (spec §3: "Tag names
// appear at most once per record").
type Set struct {
	order []string
	byName map[string]Tag
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{byName: make(map[string]Tag)}
}

// Add inserts t, failing with InconsistencyError if its name is already
// present.
func (s *Set) Add(t Tag) error {
	if _, exists := s.byName[t.Name]; exists {
		return gfaerr.New(gfaerr.InconsistencyError, "tag.Set.Add", fmt.Sprintf("duplicate tag %q", t.Name))
	}
	s.byName[t.Name] = t
	s.order = append(s.order, t.Name)
	return nil
}

// Set replaces or inserts a tag by name without duplicate checking (used
// internally by operations that intentionally overwrite, e.g. dividing a
// count tag during segment multiplication).
func (s *Set) Set(t Tag) {
	if _, exists := s.byName[t.Name]; !exists {
		s.order = append(s.order, t.Name)
	}
	s.byName[t.Name] = t
}

// Get returns the tag by name and whether it was present (optional
// accessor).
func (s *Set) Get(name string) (Tag, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// MustGet returns the tag by name, failing with NotFoundError if absent
// (bang accessor).
func (s *Set) MustGet(name string) (Tag, error) {
	t, ok := s.byName[name]
	if !ok {
		return Tag{}, gfaerr.New(gfaerr.NotFoundError, "tag.Set.MustGet", fmt.Sprintf("tag %q not present", name))
	}
	return t, nil
}

// Unset removes a tag by name, reporting whether it was present.
func (s *Set) Unset(name string) bool {
	if _, ok := s.byName[name]; !ok {
		return false
	}
	delete(s.byName, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Names returns tag names in insertion order. Returns a defensive copy.
func (s *Set) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// All returns the tags in insertion order. Returns a defensive copy.
func (s *Set) All() []Tag {
	out := make([]Tag, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, s.byName[n])
	}
	return out
}

// Len reports the number of tags in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// Clone returns a deep copy: independent order/map, and independently
// copied array/byte-array values (spec §4.2 clone semantics).
func (s *Set) Clone() *Set {
	clone := NewSet()
	for _, t := range s.All() {
		clone.Set(Tag{Name: t.Name, Type: t.Type, Raw: t.Raw, Value: cloneValue(t.Value)})
	}
	return clone
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case []int64:
		out := make([]int64, len(val))
		copy(out, val)
		return out
	case []float64:
		out := make([]float64, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}

// GetInt returns the int value of a predefined integer tag such as LN, RC,
// KC, or FC. An absent tag yields (0, false, nil); a present tag whose
// stored value isn't an int yields a TypeError.
func (s *Set) GetInt(name string) (int, bool, error) {
	t, ok := s.byName[name]
	if !ok {
		return 0, false, nil
	}
	n, ok := t.Value.(int)
	if !ok {
		return 0, true, gfaerr.New(gfaerr.TypeError, "tag.Set.GetInt", fmt.Sprintf("tag %q is not an integer", name))
	}
	return n, true, nil
}

// SetInt sets (or replaces) an integer-valued tag.
func (s *Set) SetInt(name string, value int) {
	s.Set(Tag{Name: name, Type: Predefined[name], Value: value})
}
