package okada

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const deg2Rad = math.Pi / 180

// dipTerms carries the dip trigonometry into every kernel call. Values
// within eps of 0 or ±1 are snapped so that horizontal and vertical
// patches go through the same formulas without cancellation noise.
type dipTerms struct {
	sd, cd           float64
	sdsd, cdcd, sdcd float64
}

func newDipTerms(dipDeg, eps float64) (dt dipTerms) {
	dt.sd, dt.cd = math.Sincos(dipDeg * deg2Rad)
	if math.Abs(dt.cd) < eps {
		dt.cd = 0
		dt.sd = math.Copysign(1, dt.sd)
	}
	if math.Abs(dt.sd) < eps {
		dt.sd = 0
		dt.cd = math.Copysign(1, dt.cd)
	}
	dt.sdsd = dt.sd * dt.sd
	dt.cdcd = dt.cd * dt.cd
	dt.sdcd = dt.sd * dt.cd
	return
}

func (dt dipTerms) vertical() bool {
	return dt.cd == 0
}

type slip struct {
	strike, dip, open float64
}

func (s slip) zero() bool {
	return s.strike == 0 && s.dip == 0 && s.open == 0
}

// patchFrame is the precomputed, read-only description of one patch in
// its own coordinate frame: x along strike, y 90 degrees counter-clockwise
// from strike, z up. The rectangle spans al[0]..al[1] along strike and
// aw[0]..aw[1] up dip from the reference point.
type patchFrame struct {
	cs, ss float64 // cos, sin of (strike - 90)
	dip    dipTerms
	al, aw [2]float64
	depth  float64
	origin r3.Vec
	slip   slip
	rot    *mat.Dense // local = rot * global
}

func newPatchFrame(fp FaultPatch, eps float64) (pf *patchFrame) {
	fp = fp.Normalized()
	pf = &patchFrame{
		dip:    newDipTerms(fp.Dip, eps),
		al:     [2]float64{-0.5 * fp.Length, 0.5 * fp.Length},
		aw:     [2]float64{-fp.Width, 0},
		depth:  fp.Depth,
		origin: r3.Vec{X: fp.Easting, Y: fp.Northing},
		slip:   slip{strike: fp.StrikeSlip, dip: fp.DipSlip, open: fp.Opening},
	}
	pf.ss, pf.cs = math.Sincos((fp.Strike - 90) * deg2Rad)
	pf.rot = mat.NewDense(3, 3, []float64{
		pf.cs, -pf.ss, 0,
		pf.ss, pf.cs, 0,
		0, 0, 1,
	})
	return
}

// toLocal maps a global observation point into the patch frame. Depth
// (z) is shared by both frames.
func (pf *patchFrame) toLocal(p r3.Vec) r3.Vec {
	var (
		dx, dy = p.X - pf.origin.X, p.Y - pf.origin.Y
	)
	return r3.Vec{
		X: pf.cs*dx - pf.ss*dy,
		Y: pf.ss*dx + pf.cs*dy,
		Z: p.Z,
	}
}

// toGlobal rotates a local displacement and its gradient back to global
// axes: u = Aᵀ u', grad u = Aᵀ (grad' u') A.
func (pf *patchFrame) toGlobal(f *field) (u r3.Vec, grad *mat.Dense) {
	var (
		ul    = mat.NewVecDense(3, []float64{f[0], f[1], f[2]})
		gl    = f.gradient()
		ug    mat.VecDense
		tmp   mat.Dense
		gradG = mat.NewDense(3, 3, nil)
	)
	ug.MulVec(pf.rot.T(), ul)
	tmp.Mul(pf.rot.T(), gl)
	gradG.Mul(&tmp, pf.rot)
	u = r3.Vec{X: ug.AtVec(0), Y: ug.AtVec(1), Z: ug.AtVec(2)}
	grad = gradG
	return
}
