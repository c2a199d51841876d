package okada

import "math"

// DefaultEps is the absolute tolerance below which corner offsets, q and
// cos(dip) are treated as exactly zero. It is in the length unit of the
// inputs.
const DefaultEps = 1.0e-6

// regime is the geometric situation of one (point, patch) pair. Every
// pair is classified before the kernel runs; only regimeRegular reaches
// the closed-form terms.
type regime uint8

const (
	regimeRegular regime = iota
	regimeAboveSurface
	regimeNegativeDepth
	regimeOnEdge
	regimeAtCorner
)

func (rg regime) flag() Flag {
	switch rg {
	case regimeAboveSurface:
		return FlagAboveSurface
	case regimeNegativeDepth:
		return FlagNegativeDepth
	case regimeOnEdge:
		return FlagOnEdge
	case regimeAtCorner:
		return FlagAtCorner
	}
	return FlagOK
}

// classify inspects the real source offsets. A point on the fault plane
// (q = 0) that touches the rectangle boundary makes ln(R+xi), ln(R+et) or
// 1/R unbounded with no finite limit.
func classify(z, depth float64, src offsets) regime {
	switch {
	case z > 0:
		return regimeAboveSurface
	case depth < 0:
		return regimeNegativeDepth
	case src.q != 0:
		return regimeRegular
	}
	var (
		xiProd = src.xi[0] * src.xi[1]
		etProd = src.et[0] * src.et[1]
	)
	switch {
	case xiProd == 0 && etProd == 0:
		return regimeAtCorner
	case xiProd <= 0 && etProd == 0, etProd <= 0 && xiProd == 0:
		return regimeOnEdge
	}
	return regimeRegular
}

// extensionLimits marks corners where the point lies on the backward
// extension of an edge, R+xi -> 0 with xi < 0 (or R+et -> 0 with et < 0).
// There ln(R+xi) has the removable limit -ln(R-xi) and the X11, X32 terms
// vanish. kxi is indexed by the et corner and ket by the xi corner.
func extensionLimits(xi, et [2]float64, q, eps float64) (kxi, ket [2]bool) {
	var (
		q2  = q * q
		r12 = math.Sqrt(xi[0]*xi[0] + et[1]*et[1] + q2)
		r21 = math.Sqrt(xi[1]*xi[1] + et[0]*et[0] + q2)
		r22 = math.Sqrt(xi[1]*xi[1] + et[1]*et[1] + q2)
	)
	if xi[0] < 0 && r21+xi[1] < eps {
		kxi[0] = true
	}
	if xi[0] < 0 && r22+xi[1] < eps {
		kxi[1] = true
	}
	if et[0] < 0 && r12+et[1] < eps {
		ket[0] = true
	}
	if et[0] < 0 && r22+et[1] < eps {
		ket[1] = true
	}
	return
}

func snap(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}
	return v
}
