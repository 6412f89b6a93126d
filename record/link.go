package record

import (
	"github.com/asmgraph/gfa/location"
	"github.com/asmgraph/gfa/tag"
)

// Link is the L line: an oriented adjacency between two segment ends, with
// an overlap (CIGAR or "*") and tags.
type Link struct {
	From       string
	FromOrient Orientation
	To         string
	ToOrient   Orientation
	Overlap    string
	Position   location.Position
	Tags       *tag.Set
}

func NewLink(from string, fromOrient Orientation, to string, toOrient Orientation, overlap string) *Link {
	return &Link{From: from, FromOrient: fromOrient, To: to, ToOrient: toOrient, Overlap: overlap, Tags: tag.NewSet()}
}

func (l *Link) RecordType() byte       { return 'L' }
func (l *Link) TagSet() *tag.Set       { return l.Tags }
func (l *Link) Pos() location.Position { return l.Position }
func (l *Link) Clone() Record {
	return &Link{From: l.From, FromOrient: l.FromOrient, To: l.To, ToOrient: l.ToOrient,
		Overlap: l.Overlap, Position: l.Position, Tags: l.Tags.Clone()}
}

// Circular reports whether the link's two endpoints are the same segment.
func (l *Link) Circular() bool { return l.From == l.To }

// FromEnd returns the segment end the link departs from.
func (l *Link) FromEnd() SegmentEnd {
	return SegmentEnd{Name: l.From, End: OutgoingEnd(l.FromOrient)}
}

// ToEnd returns the segment end the link arrives at.
func (l *Link) ToEnd() SegmentEnd {
	return SegmentEnd{Name: l.To, End: IncomingEnd(l.ToOrient)}
}

// OtherEnd returns the segment end at the opposite side of the link from
// the given end, or the zero SegmentEnd and false if end doesn't match
// either endpoint of l.
func (l *Link) OtherEnd(end SegmentEnd) (SegmentEnd, bool) {
	from, to := l.FromEnd(), l.ToEnd()
	switch end {
	case from:
		return to, true
	case to:
		return from, true
	default:
		return SegmentEnd{}, false
	}
}

// Containment is the C line: from-segment contains to-segment at a
// position, with overlap and tags.
type Containment struct {
	Container       string
	ContainerOrient Orientation
	Contained       string
	ContainedOrient Orientation
	At              int
	Overlap         string
	Position        location.Position
	Tags            *tag.Set
}

func (c *Containment) RecordType() byte       { return 'C' }
func (c *Containment) TagSet() *tag.Set       { return c.Tags }
func (c *Containment) Pos() location.Position { return c.Position }
func (c *Containment) Clone() Record {
	return &Containment{Container: c.Container, ContainerOrient: c.ContainerOrient,
		Contained: c.Contained, ContainedOrient: c.ContainedOrient, At: c.At,
		Overlap: c.Overlap, Position: c.Position, Tags: c.Tags.Clone()}
}
