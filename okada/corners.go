package okada

import "gonum.org/v1/gonum/spatial/r3"

// offsets are the snapped corner coordinates of one source: xi[j] = x-al[j]
// and et[k] = p-aw[k], with p and q the dip-rotated position relative to a
// source at the given depth.
type offsets struct {
	xi, et   [2]float64
	q        float64
	kxi, ket [2]bool
}

func (pf *patchFrame) sourceOffsets(p r3.Vec, depth, eps float64) (o offsets) {
	var (
		sd, cd = pf.dip.sd, pf.dip.cd
		pp     = p.Y*cd + depth*sd
	)
	o.q = snap(p.Y*sd-depth*cd, eps)
	for j := 0; j < 2; j++ {
		o.xi[j] = snap(p.X-pf.al[j], eps)
		o.et[j] = snap(pp-pf.aw[j], eps)
	}
	o.kxi, o.ket = extensionLimits(o.xi, o.et, o.q, eps)
	return
}

// chinnerySign is the sign of corner (j, k) in f(x,p) - f(x,p-W) -
// f(x-L,p) + f(x-L,p-W).
func chinnerySign(j, k int) float64 {
	if j == k {
		return 1
	}
	return -1
}

// evaluateLocal computes the patch-frame field at local point p. Pairs
// that are not regular contribute an exact zero and report their flag. A
// patch without slip is an exact zero everywhere and is never flagged.
func (pf *patchFrame) evaluateLocal(p r3.Vec, md medium, eps float64) (u field, flag Flag) {
	if pf.slip.zero() {
		return
	}
	var (
		z       = p.Z
		realSrc = pf.sourceOffsets(p, pf.depth+z, eps)
	)
	if rg := classify(z, pf.depth, realSrc); rg != regimeRegular {
		return field{}, rg.flag()
	}
	if flag = pf.sumReal(&u, realSrc, md, eps); flag != FlagOK {
		return field{}, flag
	}
	image := pf.sourceOffsets(p, pf.depth-z, eps)
	if flag = pf.sumImage(&u, image, z, md, eps); flag != FlagOK {
		return field{}, flag
	}
	if !u.finite() {
		return field{}, FlagIllConditioned
	}
	return
}

func (pf *patchFrame) sumReal(u *field, o offsets, md medium, eps float64) Flag {
	var (
		sd, cd = pf.dip.sd, pf.dip.cd
		du     field
	)
	for k := 0; k < 2; k++ {
		for j := 0; j < 2; j++ {
			c, ok := newCornerTerms(o.xi[j], o.et[k], o.q, pf.dip, o.kxi[k], o.ket[j], eps)
			if !ok {
				return FlagAtCorner
			}
			dua := c.partA(pf.slip, md)
			for i := 0; i < 12; i += 3 {
				du[i] = -dua[i]
				du[i+1] = -dua[i+1]*cd + dua[i+2]*sd
				du[i+2] = -dua[i+1]*sd - dua[i+2]*cd
			}
			// z derivatives change sign with the real source depth d+z
			du[9], du[10], du[11] = -du[9], -du[10], -du[11]
			u.addScaled(chinnerySign(j, k), &du)
		}
	}
	return FlagOK
}

func (pf *patchFrame) sumImage(u *field, o offsets, z float64, md medium, eps float64) Flag {
	var (
		sd, cd = pf.dip.sd, pf.dip.cd
		du     field
	)
	for k := 0; k < 2; k++ {
		for j := 0; j < 2; j++ {
			c, ok := newCornerTerms(o.xi[j], o.et[k], o.q, pf.dip, o.kxi[k], o.ket[j], eps)
			if !ok {
				return FlagAtCorner
			}
			dua := c.partA(pf.slip, md)
			dub, ok := c.partB(pf.slip, md)
			if !ok {
				return FlagIllConditioned
			}
			duc := c.partC(z, pf.slip, md)
			for i := 0; i < 12; i += 3 {
				du[i] = dua[i] + dub[i] + z*duc[i]
				du[i+1] = (dua[i+1]+dub[i+1]+z*duc[i+1])*cd - (dua[i+2]+dub[i+2]+z*duc[i+2])*sd
				du[i+2] = (dua[i+1]+dub[i+1]-z*duc[i+1])*sd + (dua[i+2]+dub[i+2]-z*duc[i+2])*cd
			}
			du[9] += duc[0]
			du[10] += duc[1]*cd - duc[2]*sd
			du[11] -= duc[1]*sd + duc[2]*cd
			u.addScaled(chinnerySign(j, k), &du)
		}
	}
	return FlagOK
}
