package okada

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestGeometry(t *testing.T) {
	{ // Strike 90 (east): local frame equals the global frame
		pf := newPatchFrame(FaultPatch{Length: 10, Width: 5, Dip: 45, Strike: 90, Easting: 1, Northing: 2}, DefaultEps)
		p := pf.toLocal(r3.Vec{X: 4, Y: 7, Z: -3})
		assert.InDelta(t, 3., p.X, 1.e-12)
		assert.InDelta(t, 5., p.Y, 1.e-12)
		assert.Equal(t, -3., p.Z)
	}
	{ // Strike 0 (north): x runs north, y runs west
		pf := newPatchFrame(FaultPatch{Length: 10, Width: 5, Dip: 45, Strike: 0}, DefaultEps)
		p := pf.toLocal(r3.Vec{X: 2, Y: 5})
		assert.InDelta(t, 5., p.X, 1.e-12)
		assert.InDelta(t, -2., p.Y, 1.e-12)
		// A unit along-strike displacement is a northward displacement
		f := field{1}
		u, grad := pf.toGlobal(&f)
		assert.InDelta(t, 0., u.X, 1.e-12)
		assert.InDelta(t, 1., u.Y, 1.e-12)
		assert.Equal(t, 0., mat.Norm(grad, 2))
	}
	{ // Rotation is orthonormal and gradients keep their invariants
		pf := newPatchFrame(FaultPatch{Length: 10, Width: 5, Dip: 45, Strike: 137}, DefaultEps)
		var aat mat.Dense
		aat.Mul(pf.rot, pf.rot.T())
		assert.True(t, mat.EqualApprox(&aat, eye3(), 1.e-14))
		f := field{0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		_, grad := pf.toGlobal(&f)
		assert.InDelta(t, mat.Trace(f.gradient()), mat.Trace(grad), 1.e-12)
		assert.InDelta(t, mat.Norm(f.gradient(), 2), mat.Norm(grad, 2), 1.e-12)
	}
	{ // Dip trigonometry at the limiting angles
		dt := newDipTerms(90, DefaultEps)
		assert.Equal(t, 0., dt.cd)
		assert.Equal(t, 1., dt.sd)
		assert.True(t, dt.vertical())
		dt = newDipTerms(0, DefaultEps)
		assert.Equal(t, 1., dt.cd)
		assert.Equal(t, 0., dt.sd)
		dt = newDipTerms(180, DefaultEps)
		assert.Equal(t, -1., dt.cd)
		assert.Equal(t, 0., dt.sd)
		dt = newDipTerms(30, DefaultEps)
		assert.InDelta(t, 0.5, dt.sd, 1.e-15)
		assert.InDelta(t, math.Sqrt(3)/2, dt.cd, 1.e-15)
		assert.InDelta(t, dt.sd*dt.cd, dt.sdcd, 1.e-15)
	}
}

func eye3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}
