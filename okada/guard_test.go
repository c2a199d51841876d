package okada

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSingularityGuard(t *testing.T) {
	// Surface breaking patch along the x axis, dipping 60 degrees
	pf := newPatchFrame(FaultPatch{Length: 10, Width: 5, Dip: 60, Strike: 90, StrikeSlip: 1}, DefaultEps)
	regimeAt := func(p r3.Vec) regime {
		return classify(p.Z, pf.depth, pf.sourceOffsets(pf.toLocal(p), pf.depth+p.Z, DefaultEps))
	}
	{ // Corners and edges of the trace
		assert.Equal(t, regimeAtCorner, regimeAt(r3.Vec{X: 5}))
		assert.Equal(t, regimeAtCorner, regimeAt(r3.Vec{X: -5}))
		assert.Equal(t, regimeOnEdge, regimeAt(r3.Vec{X: 0}))
		assert.Equal(t, regimeOnEdge, regimeAt(r3.Vec{X: 3.3}))
	}
	{ // Snapping within eps
		assert.Equal(t, regimeAtCorner, regimeAt(r3.Vec{X: 5 + 1.e-8, Y: 1.e-8}))
		assert.Equal(t, regimeRegular, regimeAt(r3.Vec{X: 5 + 1.e-3}))
	}
	{ // Off the plane or off the rectangle
		assert.Equal(t, regimeRegular, regimeAt(r3.Vec{X: 0, Y: 1}))
		assert.Equal(t, regimeRegular, regimeAt(r3.Vec{X: 0, Y: -1}))
		assert.Equal(t, regimeRegular, regimeAt(r3.Vec{X: -20}))
	}
	{ // Surface and depth checks take precedence
		assert.Equal(t, regimeAboveSurface, regimeAt(r3.Vec{X: 5, Z: 1}))
		neg := newPatchFrame(FaultPatch{Length: 10, Width: 5, Depth: -1, Dip: 60, Strike: 90}, DefaultEps)
		p := r3.Vec{X: 1, Y: 2, Z: -3}
		o := neg.sourceOffsets(neg.toLocal(p), neg.depth+p.Z, DefaultEps)
		assert.Equal(t, regimeNegativeDepth, classify(p.Z, neg.depth, o))
		assert.Equal(t, FlagNegativeDepth, regimeNegativeDepth.flag())
	}
	{ // Backward extension of the trace selects the limiting logarithm
		o := pf.sourceOffsets(pf.toLocal(r3.Vec{X: -20}), 0, DefaultEps)
		assert.Equal(t, [2]float64{-15, -25}, o.xi)
		assert.Equal(t, [2]bool{false, true}, o.kxi)
		assert.Equal(t, [2]bool{false, false}, o.ket)
		c, ok := newCornerTerms(o.xi[0], o.et[1], o.q, pf.dip, o.kxi[1], o.ket[0], DefaultEps)
		assert.True(t, ok)
		assert.InDelta(t, -math.Log(30), c.alx, 1.e-14)
		assert.Equal(t, 0., c.x11)
		assert.Equal(t, 0., c.x32)
	}
	{ // A corner at the observation point has no limit
		_, ok := newCornerTerms(0, 0, 0, pf.dip, false, false, DefaultEps)
		assert.False(t, ok)
	}
	{ // Snap
		assert.Equal(t, 0., snap(-9.e-7, DefaultEps))
		assert.Equal(t, 2.e-6, snap(2.e-6, DefaultEps))
	}
}
