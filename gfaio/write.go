package gfaio

import (
	"fmt"
	"os"
	"strings"

	"github.com/asmgraph/gfa/gfaerr"
	"github.com/asmgraph/gfa/graph"
	"github.com/asmgraph/gfa/record"
	"github.com/asmgraph/gfa/tag"
)

func writeTags(b *strings.Builder, set *tag.Set) {
	for _, t := range set.All() {
		b.WriteByte('\t')
		b.WriteString(t.String())
	}
}

func orientedNameString(on record.OrientedName) string {
	return on.Name + on.Orient.String()
}

func writeHeader(b *strings.Builder, h *record.Header) {
	b.WriteString("H")
	writeTags(b, h.Tags)
	b.WriteByte('\n')
}

func writeSegment(b *strings.Builder, s *record.Segment) {
	if s.Virtual {
		return
	}
	fmt.Fprintf(b, "S\t%s\t%s", s.Name, s.Sequence)
	writeTags(b, s.Tags)
	b.WriteByte('\n')
}

func writeLink(b *strings.Builder, l *record.Link) {
	fmt.Fprintf(b, "L\t%s\t%s\t%s\t%s\t%s", l.From, l.FromOrient, l.To, l.ToOrient, l.Overlap)
	writeTags(b, l.Tags)
	b.WriteByte('\n')
}

func writeContainment(b *strings.Builder, c *record.Containment) {
	fmt.Fprintf(b, "C\t%s\t%s\t%s\t%s\t%d\t%s",
		c.Container, c.ContainerOrient, c.Contained, c.ContainedOrient, c.At, c.Overlap)
	writeTags(b, c.Tags)
	b.WriteByte('\n')
}

func writePath(b *strings.Builder, p *record.Path) {
	names := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		names[i] = orientedNameString(s)
	}
	fmt.Fprintf(b, "P\t%s\t%s\t%s", p.Name, strings.Join(names, ","), strings.Join(p.Overlaps, ","))
	writeTags(b, p.Tags)
	b.WriteByte('\n')
}

func writeEdge(b *strings.Builder, e *record.Edge) {
	fmt.Fprintf(b, "E\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
		e.ID, orientedNameString(e.Sid1), orientedNameString(e.Sid2), e.Beg1, e.End1, e.Beg2, e.End2, e.Alignment)
	writeTags(b, e.Tags)
	b.WriteByte('\n')
}

func writeFragment(b *strings.Builder, f *record.Fragment) {
	fmt.Fprintf(b, "F\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
		f.SegmentID, orientedNameString(f.ExternalID), f.SBeg, f.SEnd, f.FBeg, f.FEnd, f.Alignment)
	writeTags(b, f.Tags)
	b.WriteByte('\n')
}

func writeGap(b *strings.Builder, g *record.Gap) {
	fmt.Fprintf(b, "G\t%s\t%s\t%s\t%d\t%s",
		g.ID, orientedNameString(g.Sid1), orientedNameString(g.Sid2), g.Distance, g.Variance)
	writeTags(b, g.Tags)
	b.WriteByte('\n')
}

func writeOGroup(b *strings.Builder, o *record.OGroup) {
	items := "*"
	if len(o.Items) > 0 {
		names := make([]string, len(o.Items))
		for i, it := range o.Items {
			names[i] = orientedNameString(it)
		}
		items = strings.Join(names, " ")
	}
	fmt.Fprintf(b, "O\t%s\t%s", o.ID, items)
	writeTags(b, o.Tags)
	b.WriteByte('\n')
}

func writeUGroup(b *strings.Builder, u *record.UGroup) {
	items := "*"
	if len(u.Items) > 0 {
		items = strings.Join(u.Items, " ")
	}
	fmt.Fprintf(b, "U\t%s\t%s", u.ID, items)
	writeTags(b, u.Tags)
	b.WriteByte('\n')
}

func writeComment(b *strings.Builder, c *record.Comment) {
	b.WriteString("#")
	b.WriteString(c.Text)
	b.WriteByte('\n')
}

func writeCustom(b *strings.Builder, c *record.Custom) {
	b.WriteByte(c.Code)
	for _, f := range c.Fields {
		b.WriteByte('\t')
		b.WriteString(f)
	}
	writeTags(b, c.Tags)
	b.WriteByte('\n')
}

func writeRecord(b *strings.Builder, r record.Record) {
	switch v := r.(type) {
	case *record.Segment:
		writeSegment(b, v)
	case *record.Link:
		writeLink(b, v)
	case *record.Containment:
		writeContainment(b, v)
	case *record.Path:
		writePath(b, v)
	case *record.Edge:
		writeEdge(b, v)
	case *record.Fragment:
		writeFragment(b, v)
	case *record.Gap:
		writeGap(b, v)
	case *record.OGroup:
		writeOGroup(b, v)
	case *record.UGroup:
		writeUGroup(b, v)
	case *record.Comment:
		writeComment(b, v)
	case *record.Custom:
		writeCustom(b, v)
	}
}

// ToS renders g as GFA text: the header line first (if present), then
// every other record in insertion order (spec §6).
func ToS(g *graph.Graph) string {
	var b strings.Builder
	if h := g.Header(); h != nil {
		writeHeader(&b, h)
	}
	for _, r := range g.Order() {
		writeRecord(&b, r)
	}
	return b.String()
}

// ToFile writes ToS(g) to path.
func ToFile(path string, g *graph.Graph) error {
	if err := os.WriteFile(path, []byte(ToS(g)), 0o644); err != nil {
		return gfaerr.Wrap(gfaerr.RuntimeError, "gfaio.ToFile", err)
	}
	return nil
}
