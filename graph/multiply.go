package graph

import (
	"math"
	"sort"

	"github.com/asmgraph/gfa/gfaerr"
	"github.com/asmgraph/gfa/record"
	"github.com/asmgraph/gfa/tag"
)

// Degree reports how many links are incident to a segment end.
func (g *Graph) Degree(end record.SegmentEnd) int {
	return len(g.linksBySegEnd[end])
}

var countTags = []string{"KC", "RC", "FC"}

func divideCountTags(tags *tag.Set, factor int) {
	for _, name := range countTags {
		if v, ok, _ := tags.GetInt(name); ok {
			tags.SetInt(name, v/factor)
		}
	}
}

// divideLinkCountTags divides the count tags of every link incident to
// name by factor, visiting a circular self-link exactly once (spec §4.4).
func (g *Graph) divideLinkCountTags(name string, factor int) {
	visited := make(map[*record.Link]bool)
	for _, end := range []record.EndType{record.EndB, record.EndE} {
		se := record.SegmentEnd{Name: name, End: end}
		for _, l := range g.linksBySegEnd[se] {
			if l.Circular() {
				if visited[l] {
					continue
				}
				visited[l] = true
			}
			divideCountTags(l.Tags, factor)
		}
	}
}

// succ computes the lexicographic successor of s, incrementing trailing
// lowercase/uppercase letters or digits with carry, in the manner of
// Ruby's String#succ — repeated calls starting from "Xa" generate "Xb", …
// "Xz", then "Ya" (the carry moves into the preceding letter) (spec §4.4
// copy-name generation).
func succ(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		switch {
		case b[i] >= 'a' && b[i] < 'z', b[i] >= 'A' && b[i] < 'Z', b[i] >= '0' && b[i] < '9':
			b[i]++
			return string(b)
		case b[i] == 'z':
			b[i] = 'a'
			if i == 0 {
				return "a" + string(b)
			}
		case b[i] == 'Z':
			b[i] = 'A'
			if i == 0 {
				return "A" + string(b)
			}
		case b[i] == '9':
			b[i] = '0'
			if i == 0 {
				return "1" + string(b)
			}
		default:
			return string(b) + "a"
		}
	}
	return "a" + string(b)
}

// generateCopyNames produces count distinct names, starting from name+"a"
// and bumping the lexicographic successor until each candidate is unique
// against existing graph names and already-chosen copies (spec §4.4).
func (g *Graph) generateCopyNames(name string, count int) []string {
	out := make([]string, 0, count)
	candidate := name + "a"
	chosen := make(map[string]bool)
	for len(out) < count {
		if !g.nameTaken(candidate) && !chosen[candidate] {
			out = append(out, candidate)
			chosen[candidate] = true
		}
		candidate = succ(candidate)
	}
	return out
}

// MultiplySegment implements spec §4.4's multiply algorithm.
//
//   - factor == 0 behaves like DeleteSegment.
//   - factor == 1 is a no-op.
//   - factor >= 2 divides count tags, creates factor-1 named copies of the
//     segment (auto-named if copyNames is nil), clones every incident link
//     for each copy, and — for every end in distribute — redistributes the
//     incident links among the original and its copies instead of leaving
//     every sibling with a full copy of every link.
func (g *Graph) MultiplySegment(name string, factor int, copyNames []string, distribute map[record.EndType]bool) error {
	if factor < 0 {
		return gfaerr.New(gfaerr.ArgumentError, "graph.MultiplySegment", "factor must be >= 0")
	}
	if factor == 0 {
		g.DeleteSegment(name)
		return nil
	}
	if factor == 1 {
		return nil
	}
	target, ok := g.segments[name]
	if !ok || target.Virtual {
		return gfaerr.New(gfaerr.NotFoundError, "graph.MultiplySegment", "no segment named "+name)
	}

	if copyNames != nil {
		if len(copyNames) != factor-1 {
			return gfaerr.New(gfaerr.ArgumentError, "graph.MultiplySegment", "copyNames must have factor-1 entries")
		}
		for _, cn := range copyNames {
			if g.nameTaken(cn) {
				return gfaerr.New(gfaerr.NotUniqueError, "graph.MultiplySegment", "copy name "+cn+" already taken")
			}
		}
	} else {
		copyNames = g.generateCopyNames(name, factor-1)
	}

	divideCountTags(target.Tags, factor)
	g.divideLinkCountTags(name, factor)

	siblings := make([]*record.Segment, 0, factor)
	siblings = append(siblings, target)
	for _, cn := range copyNames {
		clone := target.Clone().(*record.Segment)
		clone.Name = cn
		if _, has := clone.Tags.Get("or"); !has {
			orTag, err := tag.New("or", name)
			if err != nil {
				return err
			}
			clone.Tags.Set(orTag)
		}
		if err := g.addSegment(clone); err != nil {
			return err
		}
		g.cloneIncidentLinks(name, cn)
		siblings = append(siblings, clone)
	}

	for _, end := range []record.EndType{record.EndB, record.EndE} {
		if distribute[end] {
			g.distributeLinksAt(siblings, end)
		}
	}

	g.log("multiply_segment", "name", name, "factor", factor)
	return nil
}

// cloneIncidentLinks clones every link incident to orig (at either end)
// for copy, rewriting whichever endpoint(s) equal orig.
func (g *Graph) cloneIncidentLinks(orig, copy string) {
	seen := make(map[*record.Link]bool)
	for _, end := range []record.EndType{record.EndB, record.EndE} {
		se := record.SegmentEnd{Name: orig, End: end}
		for _, l := range g.linksBySegEnd[se] {
			if seen[l] {
				continue
			}
			seen[l] = true
			clone := l.Clone().(*record.Link)
			if clone.From == orig {
				clone.From = copy
			}
			if clone.To == orig {
				clone.To = copy
			}
			_ = g.addLink(clone)
		}
	}
}

// distributeLinksAt partitions the links incident at end of the original
// segment (siblings[0]) among all siblings, per spec §4.4's sliding-window
// rule, deleting from each sibling's end whatever falls outside its
// window.
func (g *Graph) distributeLinksAt(siblings []*record.Segment, end record.EndType) {
	origSE := record.SegmentEnd{Name: siblings[0].Name, End: end}
	links := g.linksBySegEnd[origSE]
	n := len(links)
	f := len(siblings)
	diff := n - f
	if diff < 0 {
		diff = 0
	}
	signatures := make([]string, n)
	for i, l := range links {
		if other, ok := l.OtherEnd(origSE); ok {
			signatures[i] = other.String()
		}
	}

	for i, sib := range siblings {
		lo, hi := i, i+diff
		if hi >= n {
			hi = n - 1
		}
		keep := make(map[string]bool)
		for idx := lo; idx <= hi && idx < n && idx >= 0; idx++ {
			keep[signatures[idx]] = true
		}
		sibSE := record.SegmentEnd{Name: sib.Name, End: end}
		for _, l := range append([]*record.Link(nil), g.linksBySegEnd[sibSE]...) {
			other, ok := l.OtherEnd(sibSE)
			if !ok || !keep[other.String()] {
				g.DeleteLink(l)
			}
		}
	}
}

// SelectDistributeEnd chooses which end of a segment link-distribution
// should apply to, per spec §4.4's heuristic table, given the segment's
// multiplication factor cn. The second return is false when no end
// qualifies.
func (g *Graph) SelectDistributeEnd(name string, cn int, distributeEqualOnly bool) (record.EndType, bool) {
	degB := g.Degree(record.SegmentEnd{Name: name, End: record.EndB})
	degE := g.Degree(record.SegmentEnd{Name: name, End: record.EndE})
	switch {
	case degE == cn:
		return record.EndE, true
	case degB == cn:
		return record.EndB, true
	case distributeEqualOnly:
		return 0, false
	case degE < 2 && degB < 2:
		return 0, false
	case degE < 2:
		return record.EndB, true
	case degB < 2:
		return record.EndE, true
	case degE < cn && degB <= degE:
		return record.EndE, true
	case degE < cn && degB < cn:
		return record.EndB, true
	case degE < cn:
		return record.EndE, true
	case degB < cn:
		return record.EndB, true
	case degB <= degE:
		return record.EndB, true
	default:
		return record.EndE, true
	}
}

// PruneLowCoverage deletes every segment whose countTag/LN coverage falls
// below threshold, returning the deleted names.
func (g *Graph) PruneLowCoverage(countTag string, threshold float64) []string {
	var toDelete []string
	for name, s := range g.segments {
		if s.Virtual {
			continue
		}
		cnt, ok, _ := s.Tags.GetInt(countTag)
		if !ok {
			continue
		}
		ln, hasLN := s.Length()
		if !hasLN || ln == 0 {
			continue
		}
		coverage := float64(cnt) / float64(ln)
		if coverage < threshold {
			toDelete = append(toDelete, name)
		}
	}
	sort.Strings(toDelete)
	for _, name := range toDelete {
		g.DeleteSegment(name)
	}
	return toDelete
}

// ComputeCopyNumbers sets every segment's cn tag to
// round(coverage/singleCopyCoverage), where coverage = countTag/LN.
func (g *Graph) ComputeCopyNumbers(countTag string, singleCopyCoverage float64) error {
	if singleCopyCoverage <= 0 {
		return gfaerr.New(gfaerr.ArgumentError, "graph.ComputeCopyNumbers", "singleCopyCoverage must be > 0")
	}
	for _, s := range g.segments {
		if s.Virtual {
			continue
		}
		cnt, ok, _ := s.Tags.GetInt(countTag)
		if !ok {
			continue
		}
		ln, hasLN := s.Length()
		if !hasLN || ln == 0 {
			continue
		}
		coverage := float64(cnt) / float64(ln)
		s.Tags.SetInt("cn", int(math.Round(coverage/singleCopyCoverage)))
	}
	return nil
}

// ApplyCopyNumbers multiplies every segment carrying a cn tag, in
// ascending cn order, per spec §4.4.
func (g *Graph) ApplyCopyNumbers(distribute map[record.EndType]bool) error {
	type pending struct {
		name string
		cn   int
	}
	var items []pending
	for name, s := range g.segments {
		if s.Virtual {
			continue
		}
		cn, ok, _ := s.Tags.GetInt("cn")
		if !ok {
			continue
		}
		items = append(items, pending{name, cn})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].cn != items[j].cn {
			return items[i].cn < items[j].cn
		}
		return items[i].name < items[j].name
	})
	for _, it := range items {
		if err := g.MultiplySegment(it.name, it.cn, nil, distribute); err != nil {
			return err
		}
	}
	return nil
}
