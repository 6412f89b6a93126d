package gfaio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmgraph/gfa/gfaio"
	"github.com/asmgraph/gfa/graph"
)

func TestReadStringParsesGFA1Segments(t *testing.T) {
	text := "H\tVN:Z:1.0\n" +
		"S\ta\tACGT\n" +
		"S\tb\tTTTT\n" +
		"L\ta\t+\tb\t+\t*\n"

	g, err := gfaio.ReadString(text)
	require.NoError(t, err)

	assert.Equal(t, graph.V1, g.Version())
	require.NotNil(t, g.Segment("a"))
	assert.Equal(t, "ACGT", g.Segment("a").Sequence)
	assert.Len(t, g.Links(), 1)
}

func TestReadStringDetectsGFA2FromRecordType(t *testing.T) {
	text := "S\ta\t4\tACGT\n" +
		"S\tb\t4\tTTTT\n" +
		"E\t*\ta+\tb+\t0\t4\t0\t4\t*\n"

	g, err := gfaio.ReadString(text)
	require.NoError(t, err)

	assert.Equal(t, graph.V2, g.Version())
}

func TestReadStringDetectsGFA2FromHeaderVN(t *testing.T) {
	text := "H\tVN:Z:2.0\n" +
		"S\ta\t4\tACGT\n"

	g, err := gfaio.ReadString(text)
	require.NoError(t, err)

	assert.Equal(t, graph.V2, g.Version())
}

func TestReadStringPromotesForwardReference(t *testing.T) {
	text := "L\ta\t+\tb\t+\t*\n" +
		"S\ta\tACGT\n" +
		"S\tb\tTTTT\n"

	g, err := gfaio.ReadString(text)
	require.NoError(t, err)

	seg := g.Segment("a")
	require.NotNil(t, seg)
	assert.False(t, seg.Virtual)
	assert.Equal(t, "ACGT", seg.Sequence)
}

func TestReadStringParsesTags(t *testing.T) {
	text := "S\ta\tACGT\tLN:i:4\tRC:i:10\n"

	g, err := gfaio.ReadString(text)
	require.NoError(t, err)

	ln, ok, err := g.Segment("a").Tags.GetInt("LN")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, ln)
}

func TestReadStringRejectsMalformedLine(t *testing.T) {
	_, err := gfaio.ReadString("S\ta\n")
	assert.Error(t, err)
}

func TestReadStringPreservesComments(t *testing.T) {
	text := "# a comment\nS\ta\tACGT\n"

	g, err := gfaio.ReadString(text)
	require.NoError(t, err)

	var sawComment bool
	for _, r := range g.Order() {
		if r.RecordType() == '#' {
			sawComment = true
		}
	}
	assert.True(t, sawComment)
}

func TestToSRoundTripsSegmentsAndLinks(t *testing.T) {
	text := "H\tVN:Z:1.0\n" +
		"S\ta\tACGT\n" +
		"S\tb\tTTTT\n" +
		"L\ta\t+\tb\t+\t*\n"

	g, err := gfaio.ReadString(text)
	require.NoError(t, err)

	out := gfaio.ToS(g)
	assert.True(t, strings.Contains(out, "S\ta\tACGT"))
	assert.True(t, strings.Contains(out, "L\ta\t+\tb\t+\t*"))
	assert.True(t, strings.HasPrefix(out, "H"))
}

func TestToSOmitsVirtualSegments(t *testing.T) {
	text := "L\ta\t+\tb\t+\t*\n"

	g, err := gfaio.ReadString(text)
	require.NoError(t, err)

	out := gfaio.ToS(g)
	assert.False(t, strings.Contains(out, "S\ta"))
	assert.False(t, strings.Contains(out, "S\tb"))
}

func TestReadStringWithValidateFalseSkipsLengthCheck(t *testing.T) {
	text := "S\ta\tACGT\tLN:i:99\n"

	_, err := gfaio.ReadString(text, gfaio.WithValidate(false))
	assert.NoError(t, err)

	_, err = gfaio.ReadString(text)
	assert.Error(t, err)
}
