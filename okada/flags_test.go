package okada

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlag(t *testing.T) {
	assert.Equal(t, "OK", FlagOK.String())
	assert.Equal(t, Flag(1), FlagAboveSurface)
	assert.Equal(t, "SINGULAR_ON_EDGE", FlagOnEdge.String())
	assert.Equal(t, "ABOVE_SURFACE|SINGULAR_AT_CORNER", (FlagAboveSurface | FlagAtCorner).String())
	assert.True(t, FlagAtCorner.Singular())
	assert.True(t, FlagOnEdge.Singular())
	assert.False(t, FlagIllConditioned.Singular())
	assert.Equal(t, 0, FlagOK.Code())
	assert.Equal(t, 1, FlagAboveSurface.Code())
	assert.Equal(t, 10, FlagNegativeDepth.Code())
	assert.Equal(t, 100, FlagOnEdge.Code())
	assert.Equal(t, 110, (FlagNegativeDepth | FlagAtCorner).Code())
	assert.Equal(t, 111, (FlagAboveSurface | FlagNegativeDepth | FlagIllConditioned).Code())
}
