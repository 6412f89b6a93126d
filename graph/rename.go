package graph

import (
	"github.com/asmgraph/gfa/gfaerr"
	"github.com/asmgraph/gfa/record"
)

// Rename changes a segment's name to newName, updating every reference
// field in every link, containment, and path that mentions it, and every
// connectivity-index key (spec §4.4). Fails with NotUniqueError if newName
// already names a segment or a named path/group, and leaves the graph
// unchanged.
func (g *Graph) Rename(oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	seg, ok := g.segments[oldName]
	if !ok {
		return gfaerr.New(gfaerr.NotFoundError, "graph.Rename", "no segment named "+oldName)
	}
	if g.nameTaken(newName) {
		return gfaerr.New(gfaerr.NotUniqueError, "graph.Rename", "name "+newName+" already taken")
	}

	delete(g.segments, oldName)
	seg.Name = newName
	g.segments[newName] = seg

	for _, l := range g.links {
		if l.From == oldName {
			l.From = newName
		}
		if l.To == oldName {
			l.To = newName
		}
	}
	for _, c := range g.containments {
		if c.Container == oldName {
			c.Container = newName
		}
		if c.Contained == oldName {
			c.Contained = newName
		}
	}
	for _, p := range g.paths {
		p.RenameSegment(oldName, newName)
	}
	for _, e := range g.edges {
		if e.Sid1.Name == oldName {
			e.Sid1.Name = newName
		}
		if e.Sid2.Name == oldName {
			e.Sid2.Name = newName
		}
	}
	for _, gp := range g.gaps {
		if gp.Sid1.Name == oldName {
			gp.Sid1.Name = newName
		}
		if gp.Sid2.Name == oldName {
			gp.Sid2.Name = newName
		}
	}
	for _, og := range g.ogroups {
		for i, item := range og.Items {
			if item.Name == oldName {
				og.Items[i].Name = newName
			}
		}
	}
	for _, ug := range g.ugroups {
		for i, item := range ug.Items {
			if item == oldName {
				ug.Items[i] = newName
			}
		}
	}

	g.renameIndexKeys(oldName, newName)
	g.pathsBySeg[newName] = g.pathsBySeg[oldName]
	delete(g.pathsBySeg, oldName)
	g.groupsBySeg[newName] = g.groupsBySeg[oldName]
	delete(g.groupsBySeg, oldName)

	g.log("rename", "old", oldName, "new", newName)
	return nil
}

func (g *Graph) renameIndexKeys(oldName, newName string) {
	for _, end := range []record.EndType{record.EndB, record.EndE} {
		oldKey := record.SegmentEnd{Name: oldName, End: end}
		newKey := record.SegmentEnd{Name: newName, End: end}
		if links, ok := g.linksBySegEnd[oldKey]; ok {
			g.linksBySegEnd[newKey] = append(g.linksBySegEnd[newKey], links...)
			delete(g.linksBySegEnd, oldKey)
		}
	}
}
