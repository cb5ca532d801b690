/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// pixToFaceXY resolves pix to its NEST base face and in-face integer coordinates, regardless
// of hpx's scheme. RING pixels are first carried to NEST via the angle round trip used
// throughout this package (see Ring2Nest), so that the single face-local projection in
// faceLocalToAng below serves both schemes.
func pixToFaceXY(hpx *HealpixInfo, pix int64) (ix, iy, face int64) {
	nestPix := pix

	if hpx.Scheme == RING {
		theta, phi := pix2angRing(hpx.Nside, pix)
		nestPix = ang2pixNest(hpx.Nside, theta, phi)
	}

	npface := hpx.Nside * hpx.Nside
	face = nestPix / npface
	ipf := nestPix % npface
	ix, iy = uninterleave(ipf)

	return ix, iy, face
}

/*****************************************************************************************************************/

// faceLocalToAng maps a continuous in-face coordinate (x, y), in pixel-grid units spanning
// [0, nside] on face, to a (theta, phi) direction. It is the continuous extension of the
// discrete NEST pix2ang projection used by pix2angNest: setting x, y to the half-integer
// centre of an in-face pixel recovers exactly that pixel's centre, while the integer corners
// of the in-face unit cell give the pixel's four vertices.
func faceLocalToAng(nside, face int64, x, y float64) (theta, phi float64) {
	fn := float64(nside)

	jr := float64(jrll[face])*fn - (x + y)

	var z, nr float64

	switch {
	case jr < fn:
		nr = jr
		z = 1 - (nr*nr)/(3*fn*fn)

	case jr > 3*fn:
		nr = 4*fn - jr
		z = -1 + (nr*nr)/(3*fn*fn)

	default:
		nr = fn
		z = (2*fn - jr) * 2.0 / (3.0 * fn)
	}

	jpt := x - y

	if nr == 0 {
		phi = float64(jpll[face]) * math.Pi / 4
	} else {
		phi = (math.Pi / 4) * (float64(jpll[face]) + jpt/nr)
	}

	theta = math.Acos(clamp(z, -1, 1))

	return theta, reducePhi(phi)
}

/*****************************************************************************************************************/

// Boundaries samples step points along each of the four edges of pix, in the fixed order
// south, west, north, east, walking clockwise around the pixel as seen from outside the
// sphere. The returned slice has 4*step elements; step must be at least 1.
func Boundaries(hpx *HealpixInfo, pix int64, step int64) ([]Pointing, error) {
	if pix < 0 || pix >= hpx.Npix {
		return nil, ErrOutOfRange
	}

	if step < 1 {
		return nil, ErrOutOfRange
	}

	if err := hpx.requireOrder(); err != nil {
		return nil, err
	}

	ix, iy, face := pixToFaceXY(hpx, pix)

	xc, yc := float64(ix)+0.5, float64(iy)+0.5
	const dc = 0.5

	d := 1.0 / float64(step)

	out := make([]Pointing, 0, 4*step)

	appendEdge := func(x0, y0, x1, y1 float64) {
		for i := int64(0); i < step; i++ {
			t := float64(i) * d
			theta, phi := faceLocalToAng(hpx.Nside, face, x0+(x1-x0)*t, y0+(y1-y0)*t)
			out = append(out, Pointing{Theta: theta, Phi: phi})
		}
	}

	// south -> west
	appendEdge(xc-dc, yc-dc, xc-dc, yc+dc)
	// west -> north
	appendEdge(xc-dc, yc+dc, xc+dc, yc+dc)
	// north -> east
	appendEdge(xc+dc, yc+dc, xc+dc, yc-dc)
	// east -> south
	appendEdge(xc+dc, yc-dc, xc-dc, yc-dc)

	return out, nil
}

/*****************************************************************************************************************/
