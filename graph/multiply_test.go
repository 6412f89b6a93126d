package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmgraph/gfa/graph"
	"github.com/asmgraph/gfa/record"
)

func TestMultiplySegmentFactorOneIsNoop(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))

	require.NoError(t, g.MultiplySegment("a", 1, nil, nil))

	assert.NotNil(t, g.Segment("a"))
	assert.Len(t, g.Segments(), 1)
}

func TestMultiplySegmentFactorZeroDeletes(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))

	require.NoError(t, g.MultiplySegment("a", 0, nil, nil))

	assert.Nil(t, g.Segment("a"))
}

func TestMultiplySegmentAutoGeneratesCopyNames(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))

	require.NoError(t, g.MultiplySegment("a", 2, nil, nil))

	assert.NotNil(t, g.Segment("a"))
	copySeg := g.Segment("aa")
	require.NotNil(t, copySeg)
	assert.Equal(t, "ACGT", copySeg.Sequence)
}

func TestMultiplySegmentDividesCountTags(t *testing.T) {
	g := graph.New(graph.V1)
	seg := record.NewSegment("a", "ACGT")
	seg.Tags.SetInt("KC", 10)
	require.NoError(t, g.Add(seg))

	require.NoError(t, g.MultiplySegment("a", 2, nil, nil))

	kc, ok, err := g.Segment("a").Tags.GetInt("KC")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, kc)
}

func TestMultiplySegmentRejectsNegativeFactor(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))

	err := g.MultiplySegment("a", -1, nil, nil)
	assert.Error(t, err)
}

func TestMultiplySegmentDistributesLinksAcrossSiblings(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))
	require.NoError(t, g.Add(record.NewSegment("b1", "AAAA")))
	require.NoError(t, g.Add(record.NewSegment("b2", "CCCC")))
	require.NoError(t, g.Add(record.NewLink("a", record.Forward, "b1", record.Forward, "*")))
	require.NoError(t, g.Add(record.NewLink("a", record.Forward, "b2", record.Forward, "*")))

	require.NoError(t, g.MultiplySegment("a", 2, nil, map[record.EndType]bool{record.EndE: true}))

	origLinks := g.LinksOf(record.SegmentEnd{Name: "a", End: record.EndE})
	copyLinks := g.LinksOf(record.SegmentEnd{Name: "aa", End: record.EndE})
	assert.Len(t, origLinks, 1)
	assert.Len(t, copyLinks, 1)
	assert.NotEqual(t, origLinks[0].To, copyLinks[0].To)
}

func TestMultiplySegmentWithExplicitCopyNames(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))

	require.NoError(t, g.MultiplySegment("a", 3, []string{"c1", "c2"}, nil))

	assert.NotNil(t, g.Segment("c1"))
	assert.NotNil(t, g.Segment("c2"))
}

func TestMultiplySegmentRejectsWrongCopyNameCount(t *testing.T) {
	g := graph.New(graph.V1)
	require.NoError(t, g.Add(record.NewSegment("a", "ACGT")))

	err := g.MultiplySegment("a", 3, []string{"onlyone"}, nil)
	assert.Error(t, err)
}

func TestPruneLowCoverageDeletesBelowThreshold(t *testing.T) {
	g := graph.New(graph.V1)
	low := record.NewSegment("low", "ACGTACGTAC")
	low.Tags.SetInt("KC", 5)
	high := record.NewSegment("high", "ACGTACGTAC")
	high.Tags.SetInt("KC", 50)
	require.NoError(t, g.Add(low))
	require.NoError(t, g.Add(high))

	deleted := g.PruneLowCoverage("KC", 1.0)

	assert.Equal(t, []string{"low"}, deleted)
	assert.Nil(t, g.Segment("low"))
	assert.NotNil(t, g.Segment("high"))
}

func TestComputeAndApplyCopyNumbers(t *testing.T) {
	g := graph.New(graph.V1)
	seg := record.NewSegment("a", "ACGTACGTAC")
	seg.Tags.SetInt("KC", 20)
	require.NoError(t, g.Add(seg))

	require.NoError(t, g.ComputeCopyNumbers("KC", 1.0))
	cn, ok, err := g.Segment("a").Tags.GetInt("cn")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, cn)

	require.NoError(t, g.ApplyCopyNumbers(nil))
	assert.NotNil(t, g.Segment("a"))
	assert.NotNil(t, g.Segment("aa"))
}

func TestComputeCopyNumbersRejectsNonPositiveCoverage(t *testing.T) {
	g := graph.New(graph.V1)
	err := g.ComputeCopyNumbers("KC", 0)
	assert.Error(t, err)
}
