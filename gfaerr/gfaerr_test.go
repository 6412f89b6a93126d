package gfaerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asmgraph/gfa/gfaerr"
)

func TestNewFormatsMessage(t *testing.T) {
	err := gfaerr.New(gfaerr.FormatError, "gfaio.parseSegment", "bad field")
	assert.Equal(t, "FormatError: gfaio.parseSegment: bad field", err.Error())
}

func TestIsMatchesKind(t *testing.T) {
	err := gfaerr.New(gfaerr.NotFoundError, "graph.MustSegment", "missing")
	assert.True(t, gfaerr.Is(err, gfaerr.NotFoundError))
	assert.False(t, gfaerr.Is(err, gfaerr.TypeError))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("underlying failure")
	err := gfaerr.Wrap(gfaerr.RuntimeError, "graph.MergeLinearPath", cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsFalseForPlainError(t *testing.T) {
	assert.False(t, gfaerr.Is(errors.New("plain"), gfaerr.FormatError))
}
