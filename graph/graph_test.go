package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmgraph/gfa/gfaerr"
	"github.com/asmgraph/gfa/graph"
	"github.com/asmgraph/gfa/record"
)

func newLinkedPair(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))
	require.NoError(t, g.Add(record.NewSegment("b", "TTTT")))
	require.NoError(t, g.Add(record.NewLink("a", record.Forward, "b", record.Forward, "*")))
	return g
}

func TestAddSegmentRejectsDuplicateName(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))

	err := g.Add(record.NewSegment("a", "TTTT"))
	require.Error(t, err)
	assert.True(t, gfaerr.Is(err, gfaerr.NotUniqueError))
}

func TestAddLinkPromotesForwardReference(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewLink("a", record.Forward, "b", record.Forward, "*")))

	seg := g.Segment("a")
	require.NotNil(t, seg)
	assert.True(t, seg.Virtual)

	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))
	assert.False(t, g.Segment("a").Virtual)
	assert.Equal(t, "ACGT", g.Segment("a").Sequence)
}

func TestLinksOfReturnsIncidentLinks(t *testing.T) {
	g := newLinkedPair(t)
	links := g.LinksOf(record.SegmentEnd{Name: "a", End: record.EndE})
	assert.Len(t, links, 1)
	assert.Equal(t, "b", links[0].To)
}

func TestDeleteSegmentCascadesLinks(t *testing.T) {
	g := newLinkedPair(t)
	g.DeleteSegment("a")

	assert.Nil(t, g.Segment("a"))
	assert.Empty(t, g.Links())
	assert.Empty(t, g.LinksOf(record.SegmentEnd{Name: "b", End: record.EndB}))
}

func TestDeleteSegmentCascadesPaths(t *testing.T) {
	g := newLinkedPair(t)
	p := record.NewPath("p1", []record.OrientedName{
		{Name: "a", Orient: record.Forward},
		{Name: "b", Orient: record.Forward},
	}, []string{"*"})
	require.NoError(t, g.Add(p))

	g.DeleteSegment("a")

	assert.Nil(t, g.Paths()["p1"])
}

func TestMustSegmentFailsOnVirtual(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewLink("a", record.Forward, "b", record.Forward, "*")))

	_, err := g.MustSegment("a")
	require.Error(t, err)
	assert.True(t, gfaerr.Is(err, gfaerr.NotFoundError))
}

func TestPathOverlapsLengthInvariant(t *testing.T) {
	g := graph.New(graph.V1)
	p := record.NewPath("p1", []record.OrientedName{
		{Name: "a", Orient: record.Forward},
		{Name: "b", Orient: record.Forward},
		{Name: "c", Orient: record.Forward},
	}, []string{"1M"})

	err := g.Add(p)
	require.Error(t, err)
	assert.True(t, gfaerr.Is(err, gfaerr.InconsistencyError))
}
