package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmgraph/gfa/gfaerr"
	"github.com/asmgraph/gfa/record"
)

func TestNewSegmentLength(t *testing.T) {
	s := record.NewSegment("s1", "ACGT")
	ln, ok := s.Length()
	assert.True(t, ok)
	assert.Equal(t, 4, ln)
}

func TestSegmentLengthUnknownWhenPlaceholder(t *testing.T) {
	s := record.NewSegment("s1", "*")
	_, ok := s.Length()
	assert.False(t, ok)
}

func TestSegmentLengthPrefersLNTag(t *testing.T) {
	s := record.NewSegment("s1", "ACGT")
	s.Tags.SetInt("LN", 4)
	ln, ok := s.Length()
	assert.True(t, ok)
	assert.Equal(t, 4, ln)
}

func TestCheckLengthInvariantDetectsMismatch(t *testing.T) {
	s := record.NewSegment("s1", "ACGT")
	s.Tags.SetInt("LN", 5)
	err := s.CheckLengthInvariant()
	require.Error(t, err)
	assert.True(t, gfaerr.Is(err, gfaerr.InconsistencyError))
}

func TestVirtualSegmentRejectsMutation(t *testing.T) {
	s := record.NewVirtualSegment("s1")
	err := s.SetSequence("ACGT")
	require.Error(t, err)
	assert.True(t, gfaerr.Is(err, gfaerr.RuntimeError))
}

func TestPromoteClearsVirtualInPlace(t *testing.T) {
	virtual := record.NewVirtualSegment("s1")
	real := record.NewSegment("s1", "ACGT")

	virtual.Promote(real)

	assert.False(t, virtual.Virtual)
	assert.Equal(t, "ACGT", virtual.Sequence)
}

func TestSegmentCloneIsIndependent(t *testing.T) {
	s := record.NewSegment("s1", "ACGT")
	s.Tags.SetInt("LN", 4)

	clone := s.Clone().(*record.Segment)
	clone.Name = "s2"
	clone.Tags.SetInt("LN", 9)

	assert.Equal(t, "s1", s.Name)
	ln, _, _ := s.Tags.GetInt("LN")
	assert.Equal(t, 4, ln)
}
