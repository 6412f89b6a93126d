package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/asmgraph/gfa/gfaerr"
	"github.com/asmgraph/gfa/record"
	"github.com/asmgraph/gfa/seq"
)

// Connectivity is a segment's (c_B, c_E) connectivity symbol: each side is
// "0" or "1" when degree is at most 1, otherwise the sentinel "M" (spec
// §4.5).
type Connectivity struct {
	B, E string
}

func connSym(d int) string {
	if d <= 1 {
		return strconv.Itoa(d)
	}
	return "M"
}

// ConnectivitySymbol computes a segment's connectivity symbol.
func (g *Graph) ConnectivitySymbol(name string) Connectivity {
	return Connectivity{
		B: connSym(g.Degree(record.SegmentEnd{Name: name, End: record.EndB})),
		E: connSym(g.Degree(record.SegmentEnd{Name: name, End: record.EndE})),
	}
}

func sortedSegmentNames(g *Graph) []string {
	names := make([]string, 0, len(g.segments))
	for name := range g.segments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LinearPath walks outward from seed on both ends, per spec §4.5, and
// returns the ordered list of oriented segment-ends making up the maximal
// linear path through seed. Each element's End is the end of that segment
// facing the start of the returned list (its "backward" end); the segment
// at the opposite boundary therefore exposes its external connection at
// End.Other(). Returns nil if the path is shorter than two elements.
func (g *Graph) LinearPath(seed string) []record.SegmentEnd {
	return g.linearPathFrom(seed, map[string]bool{})
}

func (g *Graph) linearPathFrom(seed string, excluded map[string]bool) []record.SegmentEnd {
	if s, ok := g.segments[seed]; !ok || s.Virtual {
		return nil
	}
	visited := map[string]bool{seed: true}
	inPath := func(name string) bool { return excluded[name] || visited[name] }

	left := g.walkLinear(seed, record.EndB, inPath, visited, true)
	right := g.walkLinear(seed, record.EndE, inPath, visited, false)

	for i, j := 0, len(left)-1; i < j; i, j = i+1, j-1 {
		left[i], left[j] = left[j], left[i]
	}

	full := make([]record.SegmentEnd, 0, len(left)+1+len(right))
	full = append(full, left...)
	full = append(full, record.SegmentEnd{Name: seed, End: record.EndB})
	full = append(full, right...)
	if len(full) < 2 {
		return nil
	}
	return full
}

// walkLinear walks outward from (seed, startEnd), one step per incident
// link of degree exactly 1, stopping at a branch (degree != 1 ahead) or a
// segment already on the path. flip controls whether the stored End is the
// arrival end itself (right-hand walk) or its opposite (left-hand walk, so
// that after the caller reverses the slice every element's End still means
// "end facing the start of the final list").
func (g *Graph) walkLinear(seed string, startEnd record.EndType, inPath func(string) bool, visited map[string]bool, flip bool) []record.SegmentEnd {
	var out []record.SegmentEnd
	currentSeg, currentEnd := seed, startEnd
	for {
		se := record.SegmentEnd{Name: currentSeg, End: currentEnd}
		links := g.linksBySegEnd[se]
		if len(links) != 1 {
			break
		}
		other, ok := links[0].OtherEnd(se)
		if !ok || inPath(other.Name) {
			break
		}
		elemEnd := other.End
		if flip {
			elemEnd = elemEnd.Other()
		}
		out = append(out, record.SegmentEnd{Name: other.Name, End: elemEnd})
		visited[other.Name] = true

		farEnd := other.End.Other()
		if g.Degree(record.SegmentEnd{Name: other.Name, End: farEnd}) != 1 {
			break
		}
		currentSeg, currentEnd = other.Name, farEnd
	}
	return out
}

// LinearPaths returns every maximal linear path exactly once, skipping
// segments already claimed by an earlier path (spec §4.5).
func (g *Graph) LinearPaths() [][]record.SegmentEnd {
	var out [][]record.SegmentEnd
	excluded := make(map[string]bool)
	for _, name := range sortedSegmentNames(g) {
		if excluded[name] || g.segments[name].Virtual {
			continue
		}
		path := g.linearPathFrom(name, excluded)
		if len(path) < 2 {
			continue
		}
		out = append(out, path)
		for _, pe := range path {
			excluded[pe.Name] = true
		}
		excluded[name] = true
	}
	return out
}

// MergeNameMode selects how MergeLinearPath names the new segment.
type MergeNameMode int

const (
	// MergeNameConcat joins the original names with "_" (the nil case).
	MergeNameConcat MergeNameMode = iota
	// MergeNameShort picks the first unused "mergedN" name.
	MergeNameShort
	// MergeNameExplicit uses the caller-supplied name verbatim.
	MergeNameExplicit
)

func cutFromOverlap(overlap string) (int, error) {
	if overlap == "*" {
		return 0, nil
	}
	if len(overlap) >= 2 && overlap[len(overlap)-1] == 'M' {
		if n, err := strconv.Atoi(overlap[:len(overlap)-1]); err == nil {
			return n, nil
		}
	}
	return 0, gfaerr.New(gfaerr.RuntimeError, "graph.MergeLinearPath", "non-M overlaps unsupported")
}

// MergeLinearPath implements spec §4.5's merge algorithm: it clones the
// path's sequence into one new segment, recreates every external link
// attached at the path's two boundary ends on the new segment, and deletes
// every segment on the path (cascading through
// containments and paths).
func (g *Graph) MergeLinearPath(path []record.SegmentEnd, nameMode MergeNameMode, explicitName string, cutCounts bool) (string, error) {
	if len(path) < 2 {
		return "", gfaerr.New(gfaerr.ArgumentError, "graph.MergeLinearPath", "path must have at least two elements")
	}
	segs := make([]*record.Segment, len(path))
	for i, pe := range path {
		s, ok := g.segments[pe.Name]
		if !ok || s.Virtual {
			return "", gfaerr.New(gfaerr.NotFoundError, "graph.MergeLinearPath", "no segment named "+pe.Name)
		}
		segs[i] = s
	}

	cuts := make([]int, len(path)-1)
	for i := 1; i < len(path); i++ {
		exitEnd := record.SegmentEnd{Name: path[i-1].Name, End: path[i-1].End.Other()}
		links := g.linksBySegEnd[exitEnd]
		if len(links) != 1 {
			return "", gfaerr.New(gfaerr.InconsistencyError, "graph.MergeLinearPath",
				"expected exactly one link between path elements at "+exitEnd.String())
		}
		cut, err := cutFromOverlap(links[0].Overlap)
		if err != nil {
			return "", err
		}
		cuts[i-1] = cut
	}

	sequences := make([]string, len(path))
	hasAllLN := true
	totalLen := 0
	for i, pe := range path {
		s := segs[i].Sequence
		if traversalOrientation(pe.End) == record.Reverse {
			s = seq.ReverseComplement(s)
		}
		sequences[i] = s
		if ln, ok := segs[i].Length(); ok {
			totalLen += ln
		} else {
			hasAllLN = false
		}
	}
	mergedSeq := seq.Concat(sequences[0], sequences[1:], cuts)

	totalCut := 0
	for _, c := range cuts {
		totalCut += c
	}

	var name string
	switch nameMode {
	case MergeNameExplicit:
		name = explicitName
	case MergeNameShort:
		name = g.firstUnusedMergedName()
	default:
		parts := make([]string, len(path))
		for i, pe := range path {
			parts[i] = pe.Name
		}
		name = strings.Join(parts, "_")
	}
	if g.nameTaken(name) {
		return "", gfaerr.New(gfaerr.NotUniqueError, "graph.MergeLinearPath", "name "+name+" already taken")
	}

	merged := record.NewSegment(name, mergedSeq)
	var mergedLN int
	if hasAllLN {
		mergedLN = totalLen - totalCut
		merged.Tags.SetInt("LN", mergedLN)
		for _, tagName := range countTags {
			sum, any := 0, false
			for _, s := range segs {
				if v, ok, _ := s.Tags.GetInt(tagName); ok {
					sum += v
					any = true
				}
			}
			if !any {
				continue
			}
			val := sum
			if cutCounts && mergedLN+totalCut > 0 {
				val = int(float64(sum) * float64(mergedLN) / float64(mergedLN+totalCut))
			}
			merged.Tags.SetInt(tagName, val)
		}
	}

	if err := g.addSegment(merged); err != nil {
		return "", err
	}

	headExt := record.SegmentEnd{Name: path[0].Name, End: path[0].End}
	tailExt := record.SegmentEnd{Name: path[len(path)-1].Name, End: path[len(path)-1].End.Other()}
	reverseHead := traversalOrientation(path[0].End) == record.Reverse
	reverseTail := traversalOrientation(path[len(path)-1].End) == record.Reverse
	g.relinkBoundary(name, record.EndB, headExt, reverseHead)
	g.relinkBoundary(name, record.EndE, tailExt, reverseTail)

	for _, pe := range path {
		g.DeleteSegment(pe.Name)
	}

	g.log("merge_linear_path", "name", name, "length", len(path))
	return name, nil
}

func (g *Graph) firstUnusedMergedName() string {
	for i := 0; ; i++ {
		cand := fmt.Sprintf("merged%d", i)
		if !g.nameTaken(cand) {
			return cand
		}
	}
}

// traversalOrientation recovers the orientation a segment was traversed
// under from the entry end (the "end facing the start of the path") a
// LinearPath element records: record.IncomingEnd maps Forward to EndB and
// Reverse to EndE, so the entry end alone determines which orientation
// produced it, for every element, not just path[0].
func traversalOrientation(entryEnd record.EndType) record.Orientation {
	if record.IncomingEnd(record.Forward) == entryEnd {
		return record.Forward
	}
	return record.Reverse
}

func orientForEnd(end record.EndType, outgoing bool) record.Orientation {
	if outgoing {
		if end == record.EndE {
			return record.Forward
		}
		return record.Reverse
	}
	if end == record.EndB {
		return record.Forward
	}
	return record.Reverse
}

// relinkBoundary recreates, on the new merged segment, every external link
// that used to attach at oldEnd, flipping orientation on the merged side
// when the boundary segment's sequence was reverse-complemented.
func (g *Graph) relinkBoundary(mergedName string, mergedEnd record.EndType, oldEnd record.SegmentEnd, reversed bool) {
	links := append([]*record.Link(nil), g.linksBySegEnd[oldEnd]...)
	meEnd := mergedEnd
	if reversed {
		meEnd = meEnd.Other()
	}
	for _, l := range links {
		var newLink *record.Link
		if l.From == oldEnd.Name {
			newLink = record.NewLink(mergedName, orientForEnd(meEnd, true), l.To, l.ToOrient, l.Overlap)
		} else {
			newLink = record.NewLink(l.From, l.FromOrient, mergedName, orientForEnd(meEnd, false), l.Overlap)
		}
		newLink.Tags = l.Tags.Clone()
		_ = g.addLink(newLink)
	}
}

func (g *Graph) neighborNames(se record.SegmentEnd) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range g.linksBySegEnd[se] {
		other, ok := l.OtherEnd(se)
		if !ok || other.Name == se.Name {
			continue
		}
		if !seen[other.Name] {
			seen[other.Name] = true
			out = append(out, other.Name)
		}
	}
	return out
}

func (g *Graph) reachableExcluding(start string, exclude *record.Link) map[string]bool {
	visited := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, end := range []record.EndType{record.EndB, record.EndE} {
			for _, l := range g.linksBySegEnd[record.SegmentEnd{Name: n, End: end}] {
				if l == exclude {
					continue
				}
				neighbor := l.From
				if neighbor == n {
					neighbor = l.To
				}
				if !visited[neighbor] {
					visited[neighbor] = true
					stack = append(stack, neighbor)
				}
			}
		}
	}
	return visited
}

func (g *Graph) reachableExcludingSegment(start, excludeSeg string) map[string]bool {
	visited := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, end := range []record.EndType{record.EndB, record.EndE} {
			for _, l := range g.linksBySegEnd[record.SegmentEnd{Name: n, End: end}] {
				neighbor := l.From
				if neighbor == n {
					neighbor = l.To
				}
				if neighbor == excludeSeg {
					continue
				}
				if !visited[neighbor] {
					visited[neighbor] = true
					stack = append(stack, neighbor)
				}
			}
		}
	}
	return visited
}

// CutLink reports whether removing l would split its connected component.
// Circular (self-)links are never cuts.
func (g *Graph) CutLink(l *record.Link) bool {
	if l.Circular() {
		return false
	}
	reach := g.reachableExcluding(l.From, l)
	return !reach[l.To]
}

// CutSegment reports whether removing name would leave the neighbors of its
// two ends in different components (spec §4.5).
func (g *Graph) CutSegment(name string) bool {
	neighborsB := g.neighborNames(record.SegmentEnd{Name: name, End: record.EndB})
	neighborsE := g.neighborNames(record.SegmentEnd{Name: name, End: record.EndE})
	if len(neighborsB) == 0 || len(neighborsE) == 0 {
		return false
	}
	reach := g.reachableExcludingSegment(neighborsB[0], name)
	for _, nb := range neighborsE {
		if !reach[nb] {
			return true
		}
	}
	return false
}

// ConnectedComponents partitions every segment name into undirected
// components induced by links, regardless of orientation.
func (g *Graph) ConnectedComponents() [][]string {
	visited := make(map[string]bool)
	var comps [][]string
	for _, name := range sortedSegmentNames(g) {
		if visited[name] {
			continue
		}
		comp := g.dfsComponent(name, visited)
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	return comps
}

func (g *Graph) dfsComponent(start string, visited map[string]bool) []string {
	visited[start] = true
	stack := []string{start}
	var comp []string
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, n)
		for _, end := range []record.EndType{record.EndB, record.EndE} {
			for _, l := range g.linksBySegEnd[record.SegmentEnd{Name: n, End: end}] {
				neighbor := l.From
				if neighbor == n {
					neighbor = l.To
				}
				if !visited[neighbor] {
					visited[neighbor] = true
					stack = append(stack, neighbor)
				}
			}
		}
	}
	return comp
}

func groupBySignature(links []*record.Link, se record.SegmentEnd) [][]*record.Link {
	var order []string
	groups := make(map[string][]*record.Link)
	for _, l := range links {
		other, ok := l.OtherEnd(se)
		if !ok {
			continue
		}
		sig := other.String()
		if _, seen := groups[sig]; !seen {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], l)
	}
	out := make([][]*record.Link, len(order))
	for i, sig := range order {
		out[i] = groups[sig]
	}
	return out
}

func sameNeighborSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := append([]string(nil), a...), append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func groupSignaturesMatch(a []*record.Link, aEnd record.SegmentEnd, b []*record.Link, bEnd record.SegmentEnd) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	oa, _ := a[0].OtherEnd(aEnd)
	ob, _ := b[0].OtherEnd(bEnd)
	return oa.Name == ob.Name
}

func keepFirstLink(g *Graph, group []*record.Link) {
	for _, l := range group[1:] {
		g.DeleteLink(l)
	}
}

// SelectRandomOrientation implements spec §4.5's auxiliary simplification:
// when a segment has the same neighbor multiset on both ends, it partitions
// each end's links by neighbor signature and keeps a single representative
// link per partition, aligning the two ends' partitions by signature. A
// segment whose ends don't partition into exactly two groups each is left
// untouched — the spec leaves >2 partitions undefined.
func (g *Graph) SelectRandomOrientation(name string) {
	endB := record.SegmentEnd{Name: name, End: record.EndB}
	endE := record.SegmentEnd{Name: name, End: record.EndE}
	if !sameNeighborSet(g.neighborNames(endB), g.neighborNames(endE)) {
		return
	}
	groupsB := groupBySignature(g.linksBySegEnd[endB], endB)
	groupsE := groupBySignature(g.linksBySegEnd[endE], endE)
	if len(groupsB) != 2 || len(groupsE) != 2 {
		return
	}
	if !groupSignaturesMatch(groupsB[0], endB, groupsE[0], endE) {
		groupsE[0], groupsE[1] = groupsE[1], groupsE[0]
	}
	for i := range groupsB {
		keepFirstLink(g, groupsB[i])
		keepFirstLink(g, groupsE[i])
	}
}

// EnforceInternalLinks implements spec §4.5's auxiliary internal-link
// enforcement: when name's connectivity is (1,1), it is an internal
// junction between its two neighbors, and any other link at those
// neighbors pointing to a different end-type of name than the one actually
// connected is removed as inconsistent.
func (g *Graph) EnforceInternalLinks(name string) {
	c := g.ConnectivitySymbol(name)
	if c.B != "1" || c.E != "1" {
		return
	}
	linksB := g.linksBySegEnd[record.SegmentEnd{Name: name, End: record.EndB}]
	linksE := g.linksBySegEnd[record.SegmentEnd{Name: name, End: record.EndE}]
	if len(linksB) != 1 || len(linksE) != 1 {
		return
	}
	g.pruneMismatchedNeighborLinks(name, record.EndB, linksB[0])
	g.pruneMismatchedNeighborLinks(name, record.EndE, linksE[0])
}

func (g *Graph) pruneMismatchedNeighborLinks(segName string, segEnd record.EndType, via *record.Link) {
	se := record.SegmentEnd{Name: segName, End: segEnd}
	other, ok := via.OtherEnd(se)
	if !ok {
		return
	}
	for _, l := range append([]*record.Link(nil), g.linksBySegEnd[other]...) {
		if l == via {
			continue
		}
		o2, ok := l.OtherEnd(other)
		if ok && o2.Name == segName && o2.End != segEnd {
			g.DeleteLink(l)
		}
	}
}
