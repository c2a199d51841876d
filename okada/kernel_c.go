package okada

// partC is the depth-dependent contribution of the image source; z is the
// observation depth coordinate (z <= 0).
func (c *cornerTerms) partC(z float64, sl slip, md medium) (u field) {
	var (
		xi, et, q  = c.xi, c.et, c.q
		xi2, et2   = c.xi2, c.et2
		q2, r2     = c.q2, c.r2
		r, r3, r5  = c.r, c.r3, c.r5
		sd, cd     = c.dip.sd, c.dip.cd
		sdsd, sdcd = c.dip.sdsd, c.dip.sdcd
		cdcd       = c.dip.cdcd
		y, d       = c.y, c.d
		x11, y11   = c.x11, c.y11
		x32, y32   = c.x32, c.y32
		alp4, alp5 = md.alp4, md.alp5
	)
	var (
		cc  = d + z
		x53 = (8*r2 + 9*r*xi + 3*xi2) * x11 * x11 * x11 / r2
		y53 = (8*r2 + 9*r*et + 3*et2) * y11 * y11 * y11 / r2
		h   = q*cd - z
		z32 = sd/r3 - h*y32
		z53 = 3*sd/r5 - h*y53
		y0  = y11 - xi2*y32
		z0  = z32 - xi2*z53
		ppy = cd/r3 + q*y32*sd
		ppz = sd/r3 - q*y32*cd
		qq  = z*y32 + z32 + z0
		qqy = 3*cc*d/r5 - qq*sd
		qqz = 3*cc*y/r5 - qq*cd + q*y32
		xy  = xi * y11
		qy  = q * y11
		qr  = 3 * q / r5
		cdr = (cc + d) / r3
		yy0 = y/r3 - y0*cd
	)
	var du field
	if sl.strike != 0 {
		du = field{
			alp4*xy*cd - alp5*xi*q*z32,
			alp4*(cd/r+2*qy*sd) - alp5*cc*q/r3,
			alp4*qy*cd - alp5*(cc*et/r3-z*y11+xi2*z32),
			alp4*y0*cd - alp5*q*z0,
			-alp4*xi*(cd/r3+2*q*y32*sd) + alp5*cc*xi*qr,
			-alp4*xi*q*y32*cd + alp5*xi*(3*cc*et/r5-qq),
			-alp4*xi*ppy*cd - alp5*xi*qqy,
			alp4*2*(d/r3-y0*sd)*sd - y/r3*cd - alp5*(cdr*sd-et/r3-cc*y*qr),
			-alp4*q/r3 + yy0*sd + alp5*(cdr*cd+cc*d*qr-(y0*cd+q*z0)*sd),
			alp4*xi*ppz*cd - alp5*xi*qqz,
			alp4*2*(y/r3-y0*cd)*sd + d/r3*cd - alp5*(cdr*cd+cc*d*qr),
			yy0*cd - alp5*(cdr*sd-cc*y*qr-y0*sdsd+q*z0*cd),
		}
		u.addScaled(sl.strike/pi2, &du)
	}
	if sl.dip != 0 {
		du = field{
			alp4*cd/r - qy*sd - alp5*cc*q/r3,
			alp4*y*x11 - alp5*cc*et*q*x32,
			-d*x11 - xy*sd - alp5*cc*(x11-q2*x32),
			-alp4*xi/r3*cd + alp5*cc*xi*qr + xi*q*y32*sd,
			-alp4*y/r3 + alp5*cc*et*qr,
			d/r3 - y0*sd + alp5*cc/r3*(1-3*q2/r2),
			-alp4*et/r3 + y0*sdsd - alp5*(cdr*sd-cc*y*qr),
			alp4*(x11-y*y*x32) - alp5*cc*((d+2*q*cd)*x32-y*et*q*x53),
			xi*ppy*sd + y*d*x32 + alp5*cc*((y+2*q*sd)*x32-y*q2*x53),
			-q/r3 + y0*sdcd - alp5*(cdr*cd+cc*d*qr),
			alp4*y*d*x32 - alp5*cc*((y-2*q*sd)*x32+d*et*q*x53),
			-xi*ppz*sd + x11 - d*d*x32 - alp5*cc*((d-2*q*cd)*x32-d*q2*x53),
		}
		u.addScaled(sl.dip/pi2, &du)
	}
	if sl.open != 0 {
		du = field{
			-alp4*(sd/r+qy*cd) - alp5*(z*y11-q2*z32),
			alp4*2*xy*sd + d*x11 - alp5*cc*(x11-q2*x32),
			alp4*(y*x11+xy*cd) + alp5*q*(cc*et*x32+xi*z32),
			alp4*xi/r3*sd + xi*q*y32*cd + alp5*xi*(3*cc*et/r5-2*z32-z0),
			alp4*2*y0*sd - d/r3 + alp5*cc/r3*(1-3*q2/r2),
			-alp4*yy0 - alp5*(cc*et*qr-q*z0),
			alp4*(q/r3+y0*sdcd) + alp5*(z/r3*cd+cc*d*qr-q*z0*sd),
			-alp4*2*xi*ppy*sd - y*d*x32 + alp5*cc*((y+2*q*sd)*x32-y*q2*x53),
			-alp4*(xi*ppy*cd-x11+y*y*x32) + alp5*(cc*((d+2*q*cd)*x32-y*et*q*x53)+xi*qqy),
			-et/r3 + y0*cdcd - alp5*(z/r3*sd-cc*y*qr-y0*sdsd+q*z0*cd),
			alp4*2*xi*ppz*sd - x11 + d*d*x32 - alp5*cc*((d-2*q*cd)*x32-d*q2*x53),
			alp4*(xi*ppz*cd+y*d*x32) + alp5*(cc*((y-2*q*sd)*x32+d*et*q*x53)+xi*qqz),
		}
		u.addScaled(sl.open/pi2, &du)
	}
	return
}
