// Package graph implements the GFA graph container: the mutable in-memory
// representation that indexes segments, links, containments, paths, and
// groups, and keeps those indexes consistent across edits (spec §4.3),
// plus the editing algorithms (§4.4) and traversal algorithms (§4.5) that
// operate on it.
//
// Graph is not safe for concurrent writers (spec §5): unlike the teacher's
// schema graph, no mutex guards these methods, and no method accepts a
// context.Context, because GFA graph mutation has no suspension points to
// cancel at.
package graph

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/asmgraph/gfa/gfaerr"
	"github.com/asmgraph/gfa/record"
)

// Version is the GFA dialect a Graph was built for.
type Version int

const (
	V1 Version = 1
	V2 Version = 2
)

// Graph holds every record of a parsed or programmatically built GFA file,
// along with the connectivity index used by traversal, rename, and delete
// (per-end link lookup is a map access; rename still scans every record
// that can reference a segment).
type Graph struct {
	version Version
	header  *record.Header

	segments map[string]*record.Segment
	paths    map[string]*record.Path
	edges    map[string]*record.Edge
	fragments []*record.Fragment
	gaps     map[string]*record.Gap
	ogroups  map[string]*record.OGroup
	ugroups  map[string]*record.UGroup
	links    []*record.Link
	containments []*record.Containment
	comments []*record.Comment
	customs  []*record.Custom

	// names is the shared uniqueness namespace for segments and named
	// paths/groups (spec §3 invariant).
	names map[string]struct{}

	// linksBySegEnd is the (segment, end) -> incident links index,
	// insertion-order stable (spec §4.3).
	linksBySegEnd map[record.SegmentEnd][]*record.Link

	// pathsBySeg indexes named paths by every segment they reference.
	pathsBySeg map[string][]*record.Path

	// groupsBySeg indexes O/U groups by every item name they reference
	// (used only for delete-segment cascade; item names that happen to
	// name an edge rather than a segment are harmlessly never looked up
	// here since delete_segment only consults it for segment names).
	groupsBySeg map[string][]any

	// order lists every non-header record in insertion order, for
	// serialization (spec §6: header lines first, then insertion order).
	order []record.Record

	logger   *slog.Logger
	validate bool
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithLogger attaches a logger that records one debug line per segment add
// or promotion, link add, rename, segment delete, multiply, and merge.
// Adding other record types and deleting individual links are not logged.
// Nil (the default) disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) { g.logger = logger }
}

// WithValidate controls whether Add enforces record-level invariants (e.g.
// the LN/sequence-length match) at insertion time. Default true.
func WithValidate(validate bool) Option {
	return func(g *Graph) { g.validate = validate }
}

// New constructs an empty Graph for the given GFA version.
func New(version Version, opts ...Option) *Graph {
	g := &Graph{
		version:       version,
		segments:      make(map[string]*record.Segment),
		paths:         make(map[string]*record.Path),
		edges:         make(map[string]*record.Edge),
		gaps:          make(map[string]*record.Gap),
		ogroups:       make(map[string]*record.OGroup),
		ugroups:       make(map[string]*record.UGroup),
		names:         make(map[string]struct{}),
		linksBySegEnd: make(map[record.SegmentEnd][]*record.Link),
		pathsBySeg:    make(map[string][]*record.Path),
		groupsBySeg:   make(map[string][]any),
		validate:      true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Version reports which GFA dialect the graph was built for.
func (g *Graph) Version() Version { return g.version }

// Header returns the graph's H record, or nil if none was added.
func (g *Graph) Header() *record.Header { return g.header }

func (g *Graph) log(op string, args ...any) {
	if g.logger != nil {
		g.logger.Debug(op, args...)
	}
}

// nameTaken reports whether name is already claimed by a real segment, a
// virtual segment placeholder, or a named path/group.
func (g *Graph) nameTaken(name string) bool {
	if _, ok := g.segments[name]; ok {
		return true
	}
	_, ok := g.names[name]
	return ok
}

// ensureSegment returns the segment named name, creating a virtual
// placeholder if it doesn't exist yet (spec §4.2 forward references).
func (g *Graph) ensureSegment(name string) *record.Segment {
	if s, ok := g.segments[name]; ok {
		return s
	}
	s := record.NewVirtualSegment(name)
	g.segments[name] = s
	return s
}

// Add inserts rec into the graph, updating every index it participates in.
// A virtual segment is promoted rather than rejected as a duplicate; any
// other identity collision fails with NotUniqueError and leaves the graph
// unchanged.
func (g *Graph) Add(rec record.Record) error {
	switch v := rec.(type) {
	case *record.Header:
		g.header = v
		return nil
	case *record.Segment:
		return g.addSegment(v)
	case *record.Link:
		return g.addLink(v)
	case *record.Containment:
		return g.addContainment(v)
	case *record.Path:
		return g.addPath(v)
	case *record.Edge:
		return g.addEdge(v)
	case *record.Fragment:
		g.fragments = append(g.fragments, v)
		g.order = append(g.order, v)
		return nil
	case *record.Gap:
		return g.addGap(v)
	case *record.OGroup:
		return g.addOGroup(v)
	case *record.UGroup:
		return g.addUGroup(v)
	case *record.Comment:
		g.comments = append(g.comments, v)
		g.order = append(g.order, v)
		return nil
	case *record.Custom:
		g.customs = append(g.customs, v)
		g.order = append(g.order, v)
		return nil
	default:
		return gfaerr.New(gfaerr.ArgumentError, "graph.Add", "unknown record type")
	}
}

func (g *Graph) addSegment(s *record.Segment) error {
	if existing, ok := g.segments[s.Name]; ok {
		if existing.Virtual {
			if g.validate {
				probe := s.Clone().(*record.Segment)
				probe.Name = existing.Name
				if err := probe.CheckLengthInvariant(); err != nil {
					return err
				}
			}
			existing.Promote(s)
			g.order = append(g.order, existing)
			g.log("promote_segment", "name", s.Name)
			return nil
		}
		return gfaerr.New(gfaerr.NotUniqueError, "graph.Add", "segment "+s.Name+" already exists")
	}
	if g.nameTaken(s.Name) {
		return gfaerr.New(gfaerr.NotUniqueError, "graph.Add", "name "+s.Name+" already taken by a path or group")
	}
	if g.validate {
		if err := s.CheckLengthInvariant(); err != nil {
			return err
		}
	}
	g.segments[s.Name] = s
	g.order = append(g.order, s)
	g.log("add_segment", "name", s.Name)
	return nil
}

func (g *Graph) addLink(l *record.Link) error {
	g.ensureSegment(l.From)
	g.ensureSegment(l.To)
	g.links = append(g.links, l)
	g.order = append(g.order, l)
	fe, te := l.FromEnd(), l.ToEnd()
	g.linksBySegEnd[fe] = append(g.linksBySegEnd[fe], l)
	if te != fe {
		g.linksBySegEnd[te] = append(g.linksBySegEnd[te], l)
	}
	g.log("add_link", "from", l.From, "to", l.To)
	return nil
}

func (g *Graph) addContainment(c *record.Containment) error {
	g.ensureSegment(c.Container)
	g.ensureSegment(c.Contained)
	g.containments = append(g.containments, c)
	g.order = append(g.order, c)
	return nil
}

func (g *Graph) addPath(p *record.Path) error {
	if g.nameTaken(p.Name) {
		return gfaerr.New(gfaerr.NotUniqueError, "graph.Add", "path name "+p.Name+" already taken")
	}
	if g.validate {
		if len(p.Overlaps) != 1 || p.Overlaps[0] != "*" {
			if len(p.Overlaps) != len(p.Segments)-1 {
				return gfaerr.New(gfaerr.InconsistencyError, "graph.Add",
					"path "+p.Name+" overlaps length must be segments-1 or a single *")
			}
		}
	}
	for _, s := range p.Segments {
		g.ensureSegment(s.Name)
	}
	g.names[p.Name] = struct{}{}
	g.paths[p.Name] = p
	g.order = append(g.order, p)
	seen := make(map[string]bool)
	for _, s := range p.Segments {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		g.pathsBySeg[s.Name] = append(g.pathsBySeg[s.Name], p)
	}
	return nil
}

func (g *Graph) addEdge(e *record.Edge) error {
	if e.ID == "*" {
		e.SetAnonymousID(uuid.New().String())
	} else if _, ok := g.edges[e.ID]; ok {
		return gfaerr.New(gfaerr.NotUniqueError, "graph.Add", "edge "+e.ID+" already exists")
	}
	g.ensureSegment(e.Sid1.Name)
	g.ensureSegment(e.Sid2.Name)
	g.edges[e.Identity()] = e
	g.order = append(g.order, e)
	return nil
}

func (g *Graph) addGap(gp *record.Gap) error {
	if gp.ID == "*" {
		gp.SetAnonymousID(uuid.New().String())
	} else if _, ok := g.gaps[gp.ID]; ok {
		return gfaerr.New(gfaerr.NotUniqueError, "graph.Add", "gap "+gp.ID+" already exists")
	}
	g.ensureSegment(gp.Sid1.Name)
	g.ensureSegment(gp.Sid2.Name)
	g.gaps[gp.Identity()] = gp
	g.order = append(g.order, gp)
	return nil
}

func (g *Graph) addOGroup(o *record.OGroup) error {
	if o.ID != "*" {
		if g.nameTaken(o.ID) {
			return gfaerr.New(gfaerr.NotUniqueError, "graph.Add", "group "+o.ID+" already exists")
		}
		g.names[o.ID] = struct{}{}
	} else {
		o.SetAnonymousID(uuid.New().String())
	}
	g.ogroups[o.Identity()] = o
	g.order = append(g.order, o)
	for _, item := range o.Items {
		g.groupsBySeg[item.Name] = append(g.groupsBySeg[item.Name], o)
	}
	return nil
}

func (g *Graph) addUGroup(u *record.UGroup) error {
	if u.ID != "*" {
		if g.nameTaken(u.ID) {
			return gfaerr.New(gfaerr.NotUniqueError, "graph.Add", "group "+u.ID+" already exists")
		}
		g.names[u.ID] = struct{}{}
	} else {
		u.SetAnonymousID(uuid.New().String())
	}
	g.ugroups[u.Identity()] = u
	g.order = append(g.order, u)
	for _, item := range u.Items {
		g.groupsBySeg[item] = append(g.groupsBySeg[item], u)
	}
	return nil
}

// Segment returns the real-or-virtual segment named name, or nil.
func (g *Graph) Segment(name string) *record.Segment {
	return g.segments[name]
}

// MustSegment returns the real segment named name, failing with
// NotFoundError if it's absent or still virtual.
func (g *Graph) MustSegment(name string) (*record.Segment, error) {
	s, ok := g.segments[name]
	if !ok || s.Virtual {
		return nil, gfaerr.New(gfaerr.NotFoundError, "graph.MustSegment", "no segment named "+name)
	}
	return s, nil
}

// Segments returns every real segment, keyed by name. Virtual placeholders
// that were never promoted are omitted.
func (g *Graph) Segments() map[string]*record.Segment {
	out := make(map[string]*record.Segment, len(g.segments))
	for name, s := range g.segments {
		if !s.Virtual {
			out[name] = s
		}
	}
	return out
}

// LinksOf returns the links incident to a segment end, in insertion order.
// The returned slice is a read-only snapshot: mutating the graph
// invalidates it (spec §5).
func (g *Graph) LinksOf(end record.SegmentEnd) []*record.Link {
	links := g.linksBySegEnd[end]
	out := make([]*record.Link, len(links))
	copy(out, links)
	return out
}

// Links returns every link in insertion order. Read-only snapshot.
func (g *Graph) Links() []*record.Link {
	out := make([]*record.Link, len(g.links))
	copy(out, g.links)
	return out
}

// Containments returns every containment in insertion order.
func (g *Graph) Containments() []*record.Containment {
	out := make([]*record.Containment, len(g.containments))
	copy(out, g.containments)
	return out
}

// PathsWith returns the named paths referencing segment name, in
// insertion order. Read-only snapshot.
func (g *Graph) PathsWith(name string) []*record.Path {
	paths := g.pathsBySeg[name]
	out := make([]*record.Path, len(paths))
	copy(out, paths)
	return out
}

// Paths returns every named path, keyed by name.
func (g *Graph) Paths() map[string]*record.Path {
	out := make(map[string]*record.Path, len(g.paths))
	for k, v := range g.paths {
		out[k] = v
	}
	return out
}

// DeleteLink removes l from both of its segment-end index slots and from
// the master link list.
func (g *Graph) DeleteLink(l *record.Link) {
	fe, te := l.FromEnd(), l.ToEnd()
	g.linksBySegEnd[fe] = removeLink(g.linksBySegEnd[fe], l)
	if te != fe {
		g.linksBySegEnd[te] = removeLink(g.linksBySegEnd[te], l)
	}
	g.links = removeLink(g.links, l)
	g.order = removeRecord(g.order, l)
}

func removeLink(links []*record.Link, target *record.Link) []*record.Link {
	out := links[:0:0]
	for _, l := range links {
		if l != target {
			out = append(out, l)
		}
	}
	return out
}

func removeRecord(recs []record.Record, target record.Record) []record.Record {
	out := recs[:0:0]
	for _, r := range recs {
		if r != target {
			out = append(out, r)
		}
	}
	return out
}

// DeleteSegment removes the named segment and cascades: every link or
// containment mentioning it, every path mentioning it, and every group's
// reference to it (spec §4.3). Deleting an unknown name is a no-op.
func (g *Graph) DeleteSegment(name string) {
	seg, ok := g.segments[name]
	if !ok {
		return
	}

	for _, end := range []record.EndType{record.EndB, record.EndE} {
		se := record.SegmentEnd{Name: name, End: end}
		for _, l := range append([]*record.Link(nil), g.linksBySegEnd[se]...) {
			g.DeleteLink(l)
		}
		delete(g.linksBySegEnd, se)
	}

	keptContainments := g.containments[:0:0]
	for _, c := range g.containments {
		if c.Container == name || c.Contained == name {
			g.order = removeRecord(g.order, c)
			continue
		}
		keptContainments = append(keptContainments, c)
	}
	g.containments = keptContainments

	for pname, p := range g.paths {
		if p.ReferencesSegment(name) {
			g.deletePath(pname)
		}
	}

	for _, grp := range g.groupsBySeg[name] {
		switch group := grp.(type) {
		case *record.OGroup:
			filtered := group.Items[:0:0]
			for _, item := range group.Items {
				if item.Name != name {
					filtered = append(filtered, item)
				}
			}
			group.Items = filtered
		case *record.UGroup:
			filtered := group.Items[:0:0]
			for _, item := range group.Items {
				if item != name {
					filtered = append(filtered, item)
				}
			}
			group.Items = filtered
		}
	}
	delete(g.groupsBySeg, name)

	delete(g.segments, name)
	g.order = removeRecord(g.order, seg)
	g.log("delete_segment", "name", name)
}

func (g *Graph) deletePath(name string) {
	p, ok := g.paths[name]
	if !ok {
		return
	}
	delete(g.paths, name)
	delete(g.names, name)
	g.order = removeRecord(g.order, p)
	seen := make(map[string]bool)
	for _, s := range p.Segments {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		g.pathsBySeg[s.Name] = removePath(g.pathsBySeg[s.Name], p)
	}
}

func removePath(paths []*record.Path, target *record.Path) []*record.Path {
	out := paths[:0:0]
	for _, p := range paths {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}

// Order returns every record except the header, in insertion order. Used
// by the serializer.
func (g *Graph) Order() []record.Record {
	out := make([]record.Record, len(g.order))
	copy(out, g.order)
	return out
}
