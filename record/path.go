package record

import (
	"github.com/asmgraph/gfa/location"
	"github.com/asmgraph/gfa/tag"
)

// OrientedName is a segment (or group member) name paired with its
// orientation, as they appear in a path's segment_names list or an O
// group's item list.
type OrientedName struct {
	Name    string
	Orient  Orientation
}

// Path is the GFA1 P line: an ordered list of oriented segment names plus
// an overlaps list one shorter (or "*").
type Path struct {
	Name     string
	Segments []OrientedName
	Overlaps []string // len == len(Segments)-1, or a single "*"
	Position location.Position
	Tags     *tag.Set
}

func NewPath(name string, segments []OrientedName, overlaps []string) *Path {
	return &Path{Name: name, Segments: segments, Overlaps: overlaps, Tags: tag.NewSet()}
}

func (p *Path) RecordType() byte       { return 'P' }
func (p *Path) TagSet() *tag.Set       { return p.Tags }
func (p *Path) Pos() location.Position { return p.Position }
func (p *Path) Clone() Record {
	segs := make([]OrientedName, len(p.Segments))
	copy(segs, p.Segments)
	overlaps := make([]string, len(p.Overlaps))
	copy(overlaps, p.Overlaps)
	return &Path{Name: p.Name, Segments: segs, Overlaps: overlaps, Position: p.Position, Tags: p.Tags.Clone()}
}

// ReferencesSegment reports whether name appears anywhere in the path.
func (p *Path) ReferencesSegment(name string) bool {
	for _, s := range p.Segments {
		if s.Name == name {
			return true
		}
	}
	return false
}

// RenameSegment replaces every occurrence of old with new, preserving each
// occurrence's orientation.
func (p *Path) RenameSegment(oldName, newName string) {
	for i, s := range p.Segments {
		if s.Name == oldName {
			p.Segments[i].Name = newName
		}
	}
}

// Edge is the GFA2 E line: an explicit-identifier edge between two
// oriented segment intervals, with an alignment and tags.
type Edge struct {
	ID          string // may be "*"; anonymousID disambiguates multiple such edges
	anonymousID string
	Sid1, Sid2  OrientedName
	Beg1, End1  string // positions, possibly "<n>$"
	Beg2, End2  string
	Alignment   string
	Position    location.Position
	Tags        *tag.Set
}

func (e *Edge) RecordType() byte       { return 'E' }
func (e *Edge) TagSet() *tag.Set       { return e.Tags }
func (e *Edge) Pos() location.Position { return e.Position }
func (e *Edge) Clone() Record {
	return &Edge{ID: e.ID, anonymousID: e.anonymousID, Sid1: e.Sid1, Sid2: e.Sid2,
		Beg1: e.Beg1, End1: e.End1, Beg2: e.Beg2, End2: e.End2,
		Alignment: e.Alignment, Position: e.Position, Tags: e.Tags.Clone()}
}

// Identity returns the edge's graph identifier key: ID itself when it's not
// the "*" placeholder, otherwise a per-instance internal key (spec
// SPEC_FULL.md §3 domain stack: anonymous GFA2 records get a uuid-backed
// identity so several can coexist).
func (e *Edge) Identity() string {
	if e.ID != "*" {
		return e.ID
	}
	return e.anonymousID
}

// SetAnonymousID assigns the internal identity used when ID is "*". Called
// once by the graph container on insertion.
func (e *Edge) SetAnonymousID(id string) { e.anonymousID = id }

// Fragment is the GFA2 F line: an external sequence fragment placed onto a
// segment.
type Fragment struct {
	SegmentID        string
	ExternalID       OrientedName
	SBeg, SEnd       string
	FBeg, FEnd       string
	Alignment        string
	Position         location.Position
	Tags             *tag.Set
}

func (f *Fragment) RecordType() byte       { return 'F' }
func (f *Fragment) TagSet() *tag.Set       { return f.Tags }
func (f *Fragment) Pos() location.Position { return f.Position }
func (f *Fragment) Clone() Record {
	return &Fragment{SegmentID: f.SegmentID, ExternalID: f.ExternalID,
		SBeg: f.SBeg, SEnd: f.SEnd, FBeg: f.FBeg, FEnd: f.FEnd,
		Alignment: f.Alignment, Position: f.Position, Tags: f.Tags.Clone()}
}

// Gap is the GFA2 G line: a distance estimate between two oriented
// segments/edges, with a variance.
type Gap struct {
	ID          string
	anonymousID string
	Sid1, Sid2  OrientedName
	Distance    int
	Variance    string // "*" or an integer string
	Position    location.Position
	Tags        *tag.Set
}

func (g *Gap) RecordType() byte       { return 'G' }
func (g *Gap) TagSet() *tag.Set       { return g.Tags }
func (g *Gap) Pos() location.Position { return g.Position }
func (g *Gap) Clone() Record {
	return &Gap{ID: g.ID, anonymousID: g.anonymousID, Sid1: g.Sid1, Sid2: g.Sid2,
		Distance: g.Distance, Variance: g.Variance, Position: g.Position, Tags: g.Tags.Clone()}
}

// Identity mirrors Edge.Identity.
func (g *Gap) Identity() string {
	if g.ID != "*" {
		return g.ID
	}
	return g.anonymousID
}

func (g *Gap) SetAnonymousID(id string) { g.anonymousID = id }

// OGroup is the GFA2 O line: an ordered group of oriented identifiers
// (segment or edge ids).
type OGroup struct {
	ID          string
	anonymousID string
	Items       []OrientedName
	Position    location.Position
	Tags        *tag.Set
}

func (o *OGroup) RecordType() byte       { return 'O' }
func (o *OGroup) TagSet() *tag.Set       { return o.Tags }
func (o *OGroup) Pos() location.Position { return o.Position }
func (o *OGroup) Clone() Record {
	items := make([]OrientedName, len(o.Items))
	copy(items, o.Items)
	return &OGroup{ID: o.ID, anonymousID: o.anonymousID, Items: items, Position: o.Position, Tags: o.Tags.Clone()}
}

func (o *OGroup) Identity() string {
	if o.ID != "*" {
		return o.ID
	}
	return o.anonymousID
}

func (o *OGroup) SetAnonymousID(id string) { o.anonymousID = id }

// UGroup is the GFA2 U line: an unordered set of identifiers (no
// orientation).
type UGroup struct {
	ID          string
	anonymousID string
	Items       []string
	Position    location.Position
	Tags        *tag.Set
}

func (u *UGroup) RecordType() byte       { return 'U' }
func (u *UGroup) TagSet() *tag.Set       { return u.Tags }
func (u *UGroup) Pos() location.Position { return u.Position }
func (u *UGroup) Clone() Record {
	items := make([]string, len(u.Items))
	copy(items, u.Items)
	return &UGroup{ID: u.ID, anonymousID: u.anonymousID, Items: items, Position: u.Position, Tags: u.Tags.Clone()}
}

func (u *UGroup) Identity() string {
	if u.ID != "*" {
		return u.ID
	}
	return u.anonymousID
}

func (u *UGroup) SetAnonymousID(id string) { u.anonymousID = id }
