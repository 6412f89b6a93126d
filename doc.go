// Package gfa provides parsing, in-memory graph construction, editing, and
// traversal for GFA1/GFA2 assembly graphs.
//
// GFA (Graphical Fragment Assembly) is a text format for representing
// sequence assembly graphs: segments (contigs/unitigs), the oriented links
// and containments between them, and named paths or groups through the
// graph. This module reads that text into a mutable, indexed graph,
// supports the structural edits an assembler or downstream tool needs
// (rename, multiply, prune, copy-number), and the traversal queries used to
// simplify or walk the graph (linear-path detection and merging, cut-link
// and cut-segment detection, connected components).
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: Source positions for parse-error reporting
//	  - gfaerr: The closed set of error kinds every package raises
//
//	Core library tier:
//	  - datatype: The field-datatype registry (validate/decode/encode)
//	  - tag: The optional-field ("tag") engine built on datatype
//	  - record: One Go type per GFA1/GFA2 record variant
//	  - seq: Reverse-complement and cut-aware sequence concatenation
//	  - graph: The graph container, connectivity index, editing algorithms,
//	    and traversal algorithms
//
//	Adapter tier:
//	  - gfaio: Text parsing and serialization on top of graph/record
//
// # Entry Points
//
// Reading a GFA document:
//
//	import "github.com/asmgraph/gfa/gfaio"
//
//	g, err := gfaio.ReadFile("assembly.gfa")
//	if err != nil {
//	    // parse or validation error
//	}
//
// Editing the graph:
//
//	import "github.com/asmgraph/gfa/graph"
//
//	if err := g.Rename("utg001", "contig_1"); err != nil {
//	    // name collision or unknown segment
//	}
//	if err := g.MultiplySegment("utg002", 2, nil, nil); err != nil {
//	    // invalid factor or name collision
//	}
//
// Traversing and simplifying:
//
//	for _, path := range g.LinearPaths() {
//	    if _, err := g.MergeLinearPath(path, graph.MergeNameConcat, "", true); err != nil {
//	        // non-M overlap or missing segment
//	    }
//	}
//
// Writing the graph back out:
//
//	import "github.com/asmgraph/gfa/gfaio"
//
//	if err := gfaio.ToFile("simplified.gfa", g); err != nil {
//	    // I/O error
//	}
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/asmgraph/gfa/gfaerr]: Closed-set error kinds
//   - [github.com/asmgraph/gfa/location]: Source location tracking
//   - [github.com/asmgraph/gfa/datatype]: Field-datatype registry
//   - [github.com/asmgraph/gfa/tag]: Optional-field engine
//   - [github.com/asmgraph/gfa/record]: Record polymorphism
//   - [github.com/asmgraph/gfa/seq]: Sequence helpers
//   - [github.com/asmgraph/gfa/graph]: Graph container, editing, traversal
//   - [github.com/asmgraph/gfa/gfaio]: Text parser/serializer
package gfa
