package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmgraph/gfa/gfaerr"
	"github.com/asmgraph/gfa/tag"
)

func TestParseValidTriplet(t *testing.T) {
	tg, err := tag.Parse("LN:i:42")
	require.NoError(t, err)
	assert.Equal(t, "LN", tg.Name)
	assert.Equal(t, tag.TypeInt, tg.Type)
	assert.Equal(t, 42, tg.Value)
}

func TestParseRejectsMalformedField(t *testing.T) {
	_, err := tag.Parse("LN:42")
	require.Error(t, err)
	assert.True(t, gfaerr.Is(err, gfaerr.FormatError))
}

func TestParseRejectsWrongPredefinedType(t *testing.T) {
	_, err := tag.Parse("LN:Z:oops")
	require.Error(t, err)
	assert.True(t, gfaerr.Is(err, gfaerr.TypeError))
}

func TestParseRejectsInvalidUserTagName(t *testing.T) {
	_, err := tag.Parse("X1:Z:hello")
	require.Error(t, err)
	assert.True(t, gfaerr.Is(err, gfaerr.FormatError))
}

func TestParseAcceptsUserDefinedTag(t *testing.T) {
	tg, err := tag.Parse("xq:Z:custom")
	require.NoError(t, err)
	assert.Equal(t, "custom", tg.Value)
}

func TestNewInfersType(t *testing.T) {
	tg, err := tag.New("xn", 7)
	require.NoError(t, err)
	assert.Equal(t, tag.TypeInt, tg.Type)
}

func TestStringRoundTrips(t *testing.T) {
	tg, err := tag.Parse("RC:i:10")
	require.NoError(t, err)
	assert.Equal(t, "RC:i:10", tg.String())
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"LN", true},
		{"xq", true},
		{"XQ", false},
		{"x1", true},
		{"x", false},
		{"xqr", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tag.ValidateName(tt.name))
		})
	}
}
