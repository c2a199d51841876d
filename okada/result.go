package okada

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Result holds the superposed fields, one entry per observation point in
// input order, and the status of every (point, patch) pair.
//
//	U     displacement
//	D     displacement gradient, D_ij = du_i/dx_j
//	S     strain, (D + Dᵀ)/2
//	E     stress, lambda tr(S) I + 2 mu S
//	Tilt  surface slope of the vertical displacement (duz/dx, duz/dy)
//	Flags Flags[i][j] for point i and patch j
type Result struct {
	U     []r3.Vec
	D     []*mat.Dense
	S     []*mat.SymDense
	E     []*mat.SymDense
	Tilt  [][2]float64
	Flags [][]Flag
}

func newResult(nobs, npatch int) (res *Result) {
	res = &Result{
		U:     make([]r3.Vec, nobs),
		D:     make([]*mat.Dense, nobs),
		S:     make([]*mat.SymDense, nobs),
		E:     make([]*mat.SymDense, nobs),
		Tilt:  make([][2]float64, nobs),
		Flags: make([][]Flag, nobs),
	}
	for i := range res.Flags {
		res.Flags[i] = make([]Flag, npatch)
	}
	return
}

// set stores the totals for point i and derives strain, stress and tilt.
func (res *Result) set(i int, u r3.Vec, grad *mat.Dense, ec ElasticConstants) {
	var (
		strain = mat.NewSymDense(3, nil)
		stress = mat.NewSymDense(3, nil)
		lambda = ec.Lambda()
	)
	for r := 0; r < 3; r++ {
		for c := r; c < 3; c++ {
			strain.SetSym(r, c, 0.5*(grad.At(r, c)+grad.At(c, r)))
		}
	}
	theta := strain.At(0, 0) + strain.At(1, 1) + strain.At(2, 2)
	for r := 0; r < 3; r++ {
		for c := r; c < 3; c++ {
			s := 2 * ec.Mu * strain.At(r, c)
			if r == c {
				s += lambda * theta
			}
			stress.SetSym(r, c, s)
		}
	}
	res.U[i] = u
	res.D[i] = grad
	res.S[i] = strain
	res.E[i] = stress
	res.Tilt[i] = [2]float64{grad.At(2, 0), grad.At(2, 1)}
}

// PointFlag combines the flags of every patch at point i.
func (res *Result) PointFlag(i int) (f Flag) {
	for _, pf := range res.Flags[i] {
		f |= pf
	}
	return
}

// Degraded reports whether any pair was excluded from the totals.
func (res *Result) Degraded() bool {
	return res.DegradedPairs() != 0
}

func (res *Result) DegradedPairs() (count int) {
	for i := range res.Flags {
		for _, f := range res.Flags[i] {
			if f != FlagOK {
				count++
			}
		}
	}
	return
}

// FlagCodes returns the flags in the decimal encoding of Flag.Code.
func (res *Result) FlagCodes() (codes [][]int) {
	codes = make([][]int, len(res.Flags))
	for i, row := range res.Flags {
		codes[i] = make([]int, len(row))
		for j, f := range row {
			codes[i][j] = f.Code()
		}
	}
	return
}

// StrainComponents returns the six independent strain values of point i
// as (xx, yy, zz, xy, xz, yz).
func (res *Result) StrainComponents(i int) [6]float64 {
	return symComponents(res.S[i])
}

// StressComponents returns the six independent stress values of point i
// as (xx, yy, zz, xy, xz, yz).
func (res *Result) StressComponents(i int) [6]float64 {
	return symComponents(res.E[i])
}

func symComponents(s *mat.SymDense) [6]float64 {
	return [6]float64{
		s.At(0, 0), s.At(1, 1), s.At(2, 2),
		s.At(0, 1), s.At(0, 2), s.At(1, 2),
	}
}
