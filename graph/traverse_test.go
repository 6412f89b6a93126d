package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmgraph/gfa/graph"
	"github.com/asmgraph/gfa/record"
)

func chainGraph(t *testing.T, aSeq, bSeq, cSeq string) *graph.Graph {
	t.Helper()
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", aSeq)))
	require.NoError(t, g.Add(record.NewSegment("b", bSeq)))
	require.NoError(t, g.Add(record.NewSegment("c", cSeq)))
	require.NoError(t, g.Add(record.NewLink("a", record.Forward, "b", record.Forward, "*")))
	require.NoError(t, g.Add(record.NewLink("b", record.Forward, "c", record.Forward, "*")))
	return g
}

func TestLinearPathCoversWholeChain(t *testing.T) {
	g := chainGraph(t, "AAAA", "CCCC", "GGGG")

	path := g.LinearPath("b")

	require.Len(t, path, 3)
	names := []string{path[0].Name, path[1].Name, path[2].Name}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestLinearPathNilForIsolatedSegment(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("lonely", "ACGT")))

	assert.Nil(t, g.LinearPath("lonely"))
}

func TestLinearPathsCoversEachSegmentOnce(t *testing.T) {
	g := chainGraph(t, "AAAA", "CCCC", "GGGG")

	paths := g.LinearPaths()

	require.Len(t, paths, 1)
	assert.Len(t, paths[0], 3)
}

func TestMergeLinearPathConcatenatesSequence(t *testing.T) {
	g := chainGraph(t, "AAAA", "CCCC", "GGGG")
	path := g.LinearPath("b")
	require.Len(t, path, 3)

	name, err := g.MergeLinearPath(path, graph.MergeNameConcat, "", false)
	require.NoError(t, err)

	assert.Equal(t, "a_b_c", name)
	merged := g.Segment(name)
	require.NotNil(t, merged)
	assert.Equal(t, "AAAACCCCGGGG", merged.Sequence)
	ln, ok, err := merged.Tags.GetInt("LN")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 12, ln)

	assert.Nil(t, g.Segment("a"))
	assert.Nil(t, g.Segment("b"))
	assert.Nil(t, g.Segment("c"))
}

// TestMergeLinearPathReverseComplementsReversedSegment exercises a chain
// where one link is traversed in reverse orientation (a+ -> b-), which must
// flip only that segment's contribution to the merged sequence.
func TestMergeLinearPathReverseComplementsReversedSegment(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "AAAA")))
	require.NoError(t, g.Add(record.NewSegment("b", "CCCC")))
	require.NoError(t, g.Add(record.NewLink("a", record.Forward, "b", record.Reverse, "*")))

	path := g.LinearPath("b")
	require.Len(t, path, 2)

	name, err := g.MergeLinearPath(path, graph.MergeNameConcat, "", false)
	require.NoError(t, err)

	merged := g.Segment(name)
	require.NotNil(t, merged)
	assert.Equal(t, "CCCCTTTT", merged.Sequence)
}

func TestMergeLinearPathExplicitName(t *testing.T) {
	g := chainGraph(t, "AAAA", "CCCC", "GGGG")
	path := g.LinearPath("b")

	name, err := g.MergeLinearPath(path, graph.MergeNameExplicit, "contig_merged", false)
	require.NoError(t, err)

	assert.Equal(t, "contig_merged", name)
	assert.NotNil(t, g.Segment("contig_merged"))
}

func TestMergeLinearPathRejectsShortPath(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))

	_, err := g.MergeLinearPath([]record.SegmentEnd{{Name: "a", End: record.EndB}}, graph.MergeNameConcat, "", false)
	assert.Error(t, err)
}

func TestCutLinkDetectsBridge(t *testing.T) {
	g := chainGraph(t, "AAAA", "CCCC", "GGGG")
	links := g.Links()
	require.Len(t, links, 2)

	assert.True(t, g.CutLink(links[0]))
}

func TestCutLinkFalseOnCycle(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))
	require.NoError(t, g.Add(record.NewSegment("b", "ACGT")))
	require.NoError(t, g.Add(record.NewSegment("c", "ACGT")))
	require.NoError(t, g.Add(record.NewLink("a", record.Forward, "b", record.Forward, "*")))
	require.NoError(t, g.Add(record.NewLink("b", record.Forward, "c", record.Forward, "*")))
	require.NoError(t, g.Add(record.NewLink("c", record.Forward, "a", record.Forward, "*")))

	for _, l := range g.Links() {
		assert.False(t, g.CutLink(l))
	}
}

func TestCutLinkCircularSelfLinkNeverCut(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))
	require.NoError(t, g.Add(record.NewLink("a", record.Forward, "a", record.Reverse, "*")))

	assert.False(t, g.CutLink(g.Links()[0]))
}

func TestCutSegmentDetectsJunction(t *testing.T) {
	g := chainGraph(t, "AAAA", "CCCC", "GGGG")
	assert.True(t, g.CutSegment("b"))
}

func TestCutSegmentFalseOnCycle(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))
	require.NoError(t, g.Add(record.NewSegment("b", "ACGT")))
	require.NoError(t, g.Add(record.NewSegment("c", "ACGT")))
	require.NoError(t, g.Add(record.NewLink("a", record.Forward, "b", record.Forward, "*")))
	require.NoError(t, g.Add(record.NewLink("b", record.Forward, "c", record.Forward, "*")))
	require.NoError(t, g.Add(record.NewLink("c", record.Forward, "a", record.Forward, "*")))

	assert.False(t, g.CutSegment("b"))
}

func TestConnectivitySymbol(t *testing.T) {
	g := chainGraph(t, "AAAA", "CCCC", "GGGG")
	assert.Equal(t, graph.Connectivity{B: "1", E: "1"}, g.ConnectivitySymbol("b"))
	assert.Equal(t, graph.Connectivity{B: "0", E: "1"}, g.ConnectivitySymbol("a"))
}

func TestConnectivitySymbolBranching(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("hub", "ACGT")))
	for _, name := range []string{"x", "y", "z"} {
		require.NoError(t, g.Add(record.NewSegment(name, "ACGT")))
		require.NoError(t, g.Add(record.NewLink("hub", record.Forward, name, record.Forward, "*")))
	}
	assert.Equal(t, "M", g.ConnectivitySymbol("hub").E)
}

func TestConnectedComponents(t *testing.T) {
	g := chainGraph(t, "AAAA", "CCCC", "GGGG")
	require.NoError(t, g.Add(record.NewSegment("isolated", "ACGT")))

	comps := g.ConnectedComponents()

	require.Len(t, comps, 2)
	assert.Equal(t, []string{"a", "b", "c"}, comps[0])
	assert.Equal(t, []string{"isolated"}, comps[1])
}
