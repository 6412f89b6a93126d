package record

import (
	"github.com/asmgraph/gfa/gfaerr"
	"github.com/asmgraph/gfa/location"
	"github.com/asmgraph/gfa/tag"
)

// Segment is the S line: a uniquely named node carrying a sequence (or the
// "*" placeholder), length/count tags, and arbitrary other tags.
//
// A Segment may be Virtual: a placeholder created because some link,
// containment, path, or group referenced its Name before the real S line
// was parsed (spec §4.2). Promote populates a virtual Segment's payload in
// place, so every other record that already holds this Segment's Name as a
// reference needs no rewrite — the identity (the Name string, and the
// *Segment pointer the graph's index holds) never changes.
type Segment struct {
	Name     string
	Sequence string // "*" if unspecified
	Virtual  bool
	Position location.Position
	Tags     *tag.Set
}

// NewSegment constructs a real segment.
func NewSegment(name, sequence string) *Segment {
	return &Segment{Name: name, Sequence: sequence, Tags: tag.NewSet()}
}

// NewVirtualSegment constructs a placeholder segment carrying only its
// identity, standing in until a real S line defines it.
func NewVirtualSegment(name string) *Segment {
	return &Segment{Name: name, Sequence: "*", Virtual: true, Tags: tag.NewSet()}
}

// Promote populates a virtual segment's payload from a freshly parsed real
// one and clears the Virtual flag. It must only be called on a Virtual
// segment whose Name already matches real.Name.
func (s *Segment) Promote(real *Segment) {
	s.Sequence = real.Sequence
	s.Position = real.Position
	s.Tags = real.Tags
	s.Virtual = false
}

func (s *Segment) RecordType() byte       { return 'S' }
func (s *Segment) TagSet() *tag.Set       { return s.Tags }
func (s *Segment) Pos() location.Position { return s.Position }

// Clone returns a deep, ungraphed copy (spec §4.2 clone semantics). Cloning
// a virtual segment is nonsensical for callers (mutation is always rejected
// below) but harmless, so Clone doesn't itself check Virtual.
func (s *Segment) Clone() Record {
	return &Segment{
		Name:     s.Name,
		Sequence: s.Sequence,
		Virtual:  s.Virtual,
		Position: s.Position,
		Tags:     s.Tags.Clone(),
	}
}

// Length returns the segment's sequence length: the LN tag if present,
// otherwise len(Sequence) when a real sequence is known, otherwise (-1,
// false).
func (s *Segment) Length() (int, bool) {
	if ln, ok, _ := s.Tags.GetInt("LN"); ok {
		return ln, true
	}
	if s.Sequence != "*" {
		return len(s.Sequence), true
	}
	return -1, false
}

// CheckLengthInvariant enforces spec §3: if LN and Sequence are both
// present, LN must equal len(Sequence).
func (s *Segment) CheckLengthInvariant() error {
	ln, hasLN, _ := s.Tags.GetInt("LN")
	if !hasLN || s.Sequence == "*" {
		return nil
	}
	if ln != len(s.Sequence) {
		return gfaerr.New(gfaerr.InconsistencyError, "segment.CheckLengthInvariant",
			"LN tag does not match sequence length for segment "+s.Name)
	}
	return nil
}

// requireReal fails with RuntimeError if the segment is still virtual —
// mutations on a virtual record are rejected (spec §4.2).
func (s *Segment) requireReal(op string) error {
	if s.Virtual {
		return gfaerr.New(gfaerr.RuntimeError, op, "cannot mutate virtual segment "+s.Name)
	}
	return nil
}

// SetSequence mutates the segment's sequence, failing if the segment is
// still virtual.
func (s *Segment) SetSequence(seq string) error {
	if err := s.requireReal("Segment.SetSequence"); err != nil {
		return err
	}
	s.Sequence = seq
	return nil
}
