package feats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeSet(t *testing.T) {
	s := ModeSetOf(Mode16, Mode32)
	assert.True(t, s.Has(Mode16))
	assert.True(t, s.Has(Mode32))
	assert.False(t, s.Has(Mode64))
	assert.Equal(t, "{16,32}", s.String())
	assert.True(t, AllModes.Has(Mode64))
	assert.False(t, ModeSet(0).Has(Mode(8)))
}

func TestParseFeature(t *testing.T) {
	f, ok := ParseFeature("sse2")
	require.True(t, ok)
	assert.Equal(t, SSE2, f)
	assert.Equal(t, "SSE2", FeatName(f))

	_, ok = ParseFeature("nope")
	assert.False(t, ok)
}
