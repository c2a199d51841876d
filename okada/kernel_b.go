package okada

import "math"

// partB is the surface-deformation contribution of the image source. ok
// is false when R+d vanishes, which only happens for degenerate image
// corners of surface-breaking patches.
func (c *cornerTerms) partB(sl slip, md medium) (u field, ok bool) {
	var (
		xi, et, q        = c.xi, c.et, c.q
		xi2, q2          = c.xi2, c.q2
		r, r3            = c.r, c.r3
		sd, cd           = c.dip.sd, c.dip.cd
		sdsd, cdcd, sdcd = c.dip.sdsd, c.dip.cdcd, c.dip.sdcd
		y, d             = c.y, c.d
		alp3             = md.alp3
		rd               = r + d
	)
	if rd == 0 {
		return
	}
	var (
		d11 = 1 / (r * rd)
		aj2 = xi * y / rd * d11
		aj5 = -(d + y*y/rd) * d11
	)
	var ai3, ai4, ak1, ak3, aj3, aj6 float64
	if !c.dip.vertical() {
		if xi != 0 {
			x := math.Sqrt(xi2 + q2)
			ai4 = (xi/rd*sdcd + 2*math.Atan((et*(x+q*cd)+x*(r+x)*sd)/(xi*(r+x)*cd))) / cdcd
		}
		ai3 = (y*cd/rd - c.ale + sd*math.Log(rd)) / cdcd
		ak1 = xi * (d11 - c.y11*sd) / cd
		ak3 = (q*c.y11 - y*d11) / cd
		aj3 = (ak1 - aj2*sd) / cd
		aj6 = (ak3 - aj5*sd) / cd
	} else {
		rd2 := rd * rd
		ai3 = (et/rd + y*q/rd2 - c.ale) / 2
		ai4 = xi * y / rd2 / 2
		ak1 = xi * q / rd * d11
		ak3 = sd / rd * (xi2*d11 - 1)
		aj3 = -xi / rd2 * (q2*d11 - 0.5)
		aj6 = -y / rd2 * (xi2*d11 - 0.5)
	}
	var (
		xy  = xi * c.y11
		ai1 = -xi/rd*cd - ai4*sd
		ai2 = math.Log(rd) + ai3*sd
		ak2 = 1/r + ak3*sd
		ak4 = xy*cd - ak1*sd
		aj1 = aj5*cd - aj6*sd
		aj4 = -xy - aj2*cd + aj3*sd
		qx  = q * c.x11
		qy  = q * c.y11
	)
	var du field
	if sl.strike != 0 {
		du = field{
			-xi*qy - c.tt - alp3*ai1*sd,
			-q/r + alp3*y/rd*sd,
			q*qy - alp3*ai2*sd,
			xi2*q*c.y32 - alp3*aj1*sd,
			xi*q/r3 - alp3*aj2*sd,
			-xi*q2*c.y32 - alp3*aj3*sd,
			-xi*c.fy - d*c.x11 + alp3*(xy+aj4)*sd,
			-c.ey + alp3*(1/r+aj5)*sd,
			q*c.fy - alp3*(qy-aj6)*sd,
			-xi*c.fz - y*c.x11 + alp3*ak1*sd,
			-c.ez + alp3*y*d11*sd,
			q*c.fz + alp3*ak2*sd,
		}
		u.addScaled(sl.strike/pi2, &du)
	}
	if sl.dip != 0 {
		du = field{
			-q/r + alp3*ai3*sdcd,
			-et*qx - c.tt - alp3*xi/rd*sdcd,
			q*qx + alp3*ai4*sdcd,
			xi*q/r3 + alp3*aj4*sdcd,
			et*q/r3 + qy + alp3*aj5*sdcd,
			-q2/r3 + alp3*aj6*sdcd,
			-c.ey + alp3*aj1*sdcd,
			-et*c.gy - xy*sd + alp3*aj2*sdcd,
			q*c.gy + alp3*aj3*sdcd,
			-c.ez - alp3*ak3*sdcd,
			-et*c.gz - xy*cd - alp3*xi*d11*sdcd,
			q*c.gz - alp3*ak4*sdcd,
		}
		u.addScaled(sl.dip/pi2, &du)
	}
	if sl.open != 0 {
		du = field{
			q*qy - alp3*ai3*sdsd,
			q*qx + alp3*xi/rd*sdsd,
			et*qx + xi*qy - c.tt - alp3*ai4*sdsd,
			-xi*q2*c.y32 - alp3*aj4*sdsd,
			-q2/r3 - alp3*aj5*sdsd,
			q*q2*c.y32 - alp3*aj6*sdsd,
			q*c.fy - alp3*aj1*sdsd,
			q*c.gy - alp3*aj2*sdsd,
			-q*c.hy - alp3*aj3*sdsd,
			q*c.fz + alp3*ak3*sdsd,
			q*c.gz + alp3*xi*d11*sdsd,
			-q*c.hz + alp3*ak4*sdsd,
		}
		u.addScaled(sl.open/pi2, &du)
	}
	ok = true
	return
}
