package okada

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Closed-form Okada (1992) solution for a rectangular dislocation in a
// homogeneous half-space. Each corner evaluation is split as in the paper:
//
//	A: infinite-medium term, evaluated for the real and the image source
//	B: surface-deformation term (image source only)
//	C: depth-dependent term (image source only)
//
// Outputs are in the patch frame, for unit slip scaled by the slip
// components, and follow the field layout below.

const pi2 = 2 * math.Pi

// field holds a displacement and its first derivatives in the order
//
//	ux, uy, uz, ux/x, uy/x, uz/x, ux/y, uy/y, uz/y, ux/z, uy/z, uz/z
type field [12]float64

func (f *field) addScaled(a float64, g *field) {
	for i := range f {
		f[i] += a * g[i]
	}
}

func (f *field) finite() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// gradient returns D_ij = du_i/dx_j.
func (f *field) gradient() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		f[3], f[6], f[9],
		f[4], f[7], f[10],
		f[5], f[8], f[11],
	})
}

// cornerTerms are the geometric quantities at one corner offset (xi, et, q)
// shared by parts A, B and C.
type cornerTerms struct {
	dip                dipTerms
	xi, et, q          float64
	xi2, et2, q2       float64
	r, r2, r3, r5      float64
	y, d, tt           float64
	alx, ale           float64 // ln(R+xi), ln(R+et) or their limits
	x11, y11, x32, y32 float64
	ey, ez, fy, fz     float64
	gy, gz, hy, hz     float64
}

// newCornerTerms evaluates the corner quantities. kxi and ket select the
// limiting form of ln(R+xi) and ln(R+et) on the negative extension of the
// patch edges. ok is false when the corner coincides with the observation
// point (R = 0), where no limit exists.
func newCornerTerms(xi, et, q float64, dt dipTerms, kxi, ket bool, eps float64) (c cornerTerms, ok bool) {
	xi, et, q = snap(xi, eps), snap(et, eps), snap(q, eps)
	c = cornerTerms{
		dip: dt,
		xi:  xi, et: et, q: q,
		xi2: xi * xi, et2: et * et, q2: q * q,
	}
	c.r2 = c.xi2 + c.et2 + c.q2
	c.r = math.Sqrt(c.r2)
	if c.r == 0 {
		return
	}
	var (
		sd, cd = dt.sd, dt.cd
		r      = c.r
	)
	c.r3 = r * c.r2
	c.r5 = c.r3 * c.r2
	c.y = et*cd + q*sd
	c.d = et*sd - q*cd
	if q != 0 {
		c.tt = math.Atan(xi * et / (q * r))
	}
	if kxi {
		c.alx = -math.Log(r - xi)
	} else {
		rxi := r + xi
		c.alx = math.Log(rxi)
		c.x11 = 1 / (r * rxi)
		c.x32 = (r + rxi) * c.x11 * c.x11 / r
	}
	if ket {
		c.ale = -math.Log(r - et)
	} else {
		ret := r + et
		c.ale = math.Log(ret)
		c.y11 = 1 / (r * ret)
		c.y32 = (r + ret) * c.y11 * c.y11 / r
	}
	c.ey = sd/r - c.y*q/c.r3
	c.ez = cd/r + c.d*q/c.r3
	c.fy = c.d/c.r3 + c.xi2*c.y32*sd
	c.fz = c.y/c.r3 + c.xi2*c.y32*cd
	c.gy = 2*c.x11*sd - c.y*q*c.x32
	c.gz = 2*c.x11*cd + c.d*q*c.x32
	c.hy = c.d*q*c.x32 + xi*q*c.y32*sd
	c.hz = c.y*q*c.x32 + xi*q*c.y32*cd
	ok = true
	return
}

// partA is the infinite-medium contribution.
func (c *cornerTerms) partA(sl slip, md medium) (u field) {
	var (
		xi, et, q  = c.xi, c.et, c.q
		xi2, q2    = c.xi2, c.q2
		r, r3      = c.r, c.r3
		sd, cd     = c.dip.sd, c.dip.cd
		y, d       = c.y, c.d
		alp1, alp2 = md.alp1, md.alp2
		xy         = xi * c.y11
		qx         = q * c.x11
		qy         = q * c.y11
	)
	var du field
	if sl.strike != 0 {
		du = field{
			c.tt/2 + alp2*xi*qy,
			alp2 * q / r,
			alp1*c.ale - alp2*q*qy,
			-alp1*qy - alp2*xi2*q*c.y32,
			-alp2 * xi * q / r3,
			alp1*xy + alp2*xi*q2*c.y32,
			alp1*xy*sd + alp2*xi*c.fy + d/2*c.x11,
			alp2 * c.ey,
			alp1*(cd/r+qy*sd) - alp2*q*c.fy,
			alp1*xy*cd + alp2*xi*c.fz + y/2*c.x11,
			alp2 * c.ez,
			-alp1*(sd/r-qy*cd) - alp2*q*c.fz,
		}
		u.addScaled(sl.strike/pi2, &du)
	}
	if sl.dip != 0 {
		du = field{
			alp2 * q / r,
			c.tt/2 + alp2*et*qx,
			alp1*c.alx - alp2*q*qx,
			-alp2 * xi * q / r3,
			-qy/2 - alp2*et*q/r3,
			alp1/r + alp2*q2/r3,
			alp2 * c.ey,
			alp1*d*c.x11 + xy/2*sd + alp2*et*c.gy,
			alp1*y*c.x11 - alp2*q*c.gy,
			alp2 * c.ez,
			alp1*y*c.x11 + xy/2*cd + alp2*et*c.gz,
			-alp1*d*c.x11 - alp2*q*c.gz,
		}
		u.addScaled(sl.dip/pi2, &du)
	}
	if sl.open != 0 {
		du = field{
			-alp1*c.ale - alp2*q*qy,
			-alp1*c.alx - alp2*q*qx,
			c.tt/2 - alp2*(et*qx+xi*qy),
			-alp1*xy + alp2*xi*q2*c.y32,
			-alp1/r + alp2*q2/r3,
			-alp1*qy - alp2*q*q2*c.y32,
			-alp1*(cd/r+qy*sd) - alp2*q*c.fy,
			-alp1*y*c.x11 - alp2*q*c.gy,
			alp1*(d*c.x11+xy*sd) + alp2*q*c.hy,
			alp1*(sd/r-qy*cd) - alp2*q*c.fz,
			alp1*d*c.x11 - alp2*q*c.gz,
			alp1*(y*c.x11+xy*cd) + alp2*q*c.hz,
		}
		u.addScaled(sl.open/pi2, &du)
	}
	return
}
