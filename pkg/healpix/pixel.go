/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

import (
	"math"
)

/*****************************************************************************************************************/

// jrll and jpll give, per base face (0-11), the ring offset and phi offset used by the NEST
// in-face-coordinate <-> (theta, phi) conversion.
var jrll = [12]int64{2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4}
var jpll = [12]int64{1, 3, 5, 7, 0, 2, 4, 6, 1, 3, 5, 7}

/*****************************************************************************************************************/

// Ang2Pix maps a (theta, phi) direction to a pixel identifier under hpx's scheme.
func Ang2Pix(hpx *HealpixInfo, theta, phi float64) (int64, error) {
	if err := CheckThetaPhi(theta, phi); err != nil {
		return 0, err
	}

	phi = reducePhi(phi)

	if hpx.Scheme == NEST {
		if err := hpx.requireOrder(); err != nil {
			return 0, err
		}

		return ang2pixNest(hpx.Nside, theta, phi), nil
	}

	return ang2pixRing(hpx.Nside, theta, phi), nil
}

/*****************************************************************************************************************/

// Pix2Ang returns the centre of pix as a (theta, phi) pair, with theta in [0, pi] and phi in
// [0, 2*pi).
func Pix2Ang(hpx *HealpixInfo, pix int64) (theta, phi float64, err error) {
	if pix < 0 || pix >= hpx.Npix {
		return 0, 0, ErrOutOfRange
	}

	if hpx.Scheme == NEST {
		if err := hpx.requireOrder(); err != nil {
			return 0, 0, err
		}

		theta, phi = pix2angNest(hpx.Nside, pix)

		return theta, phi, nil
	}

	theta, phi = pix2angRing(hpx.Nside, pix)

	return theta, phi, nil
}

/*****************************************************************************************************************/

// Vec2Pix maps a Cartesian direction to a pixel identifier under hpx's scheme.
func Vec2Pix(hpx *HealpixInfo, v Vec3) (int64, error) {
	theta, phi := Vec2Ang(v)

	return Ang2Pix(hpx, theta, phi)
}

/*****************************************************************************************************************/

// Pix2Vec returns the unit direction of pix's centre.
func Pix2Vec(hpx *HealpixInfo, pix int64) (Vec3, error) {
	theta, phi, err := Pix2Ang(hpx, pix)
	if err != nil {
		return Vec3{}, err
	}

	return Ang2Vec(theta, phi), nil
}

/*****************************************************************************************************************/

func floorDiv(a, b int64) int64 {
	q := a / b

	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

/*****************************************************************************************************************/

func floorMod(a, b int64) int64 {
	m := a % b

	if m < 0 {
		m += b
	}

	return m
}

/*****************************************************************************************************************/

func ang2pixRing(nside int64, theta, phi float64) int64 {
	z := math.Cos(theta)
	za := math.Abs(z)
	tt := phi / (math.Pi / 2) // in [0, 4)

	nsideF := float64(nside)
	nl4 := 4 * nside
	ncap := 2 * nside * (nside - 1)
	npix := 12 * nside * nside

	if za <= 2.0/3.0 {
		temp1 := nsideF * (0.5 + tt)
		temp2 := nsideF * z * 0.75

		jp := int64(math.Floor(temp1 - temp2))
		jm := int64(math.Floor(temp1 + temp2))

		ir := nside + 1 + jp - jm

		var kshift int64
		if ir%2 == 0 {
			kshift = 1
		}

		ip0 := floorMod(floorDiv(jp+jm-nside+kshift+1, 2), nl4)

		return ncap + nl4*(ir-1) + ip0
	}

	tp := tt - math.Floor(tt)
	tmp := nsideF * math.Sqrt(3*(1-za))

	jp := int64(math.Floor(tp * tmp))
	jm := int64(math.Floor((1 - tp) * tmp))

	ir := jp + jm + 1
	ip0 := floorMod(int64(math.Floor(tt*float64(ir))), 4*ir)

	if z > 0 {
		return 2*ir*(ir-1) + ip0
	}

	return npix - 2*ir*(ir+1) + ip0
}

/*****************************************************************************************************************/

func pix2angRing(nside, pix int64) (theta, phi float64) {
	npix := 12 * nside * nside
	ncap := 2 * nside * (nside - 1)
	nl2 := 2 * nside
	nl4 := 4 * nside
	ipix1 := pix + 1

	switch {
	case ipix1 <= ncap:
		hip := float64(ipix1) / 2.0
		fihip := math.Floor(hip)
		iring := int64(math.Floor(math.Sqrt(hip-math.Sqrt(fihip)))) + 1
		iphi := ipix1 - 2*iring*(iring-1)

		theta = math.Acos(1 - float64(iring*iring)/(3*float64(nside*nside)))
		phi = (float64(iphi) - 0.5) * math.Pi / (2 * float64(iring))

	case ipix1 <= nl2*(5*nside+1):
		ip := ipix1 - ncap - 1
		iring := ip/nl4 + nside
		iphi := ip%nl4 + 1

		fodd := 1.0
		if (iring+nside)%2 == 0 {
			fodd = 0.5
		}

		theta = math.Acos(float64(nl2-iring) / (1.5 * float64(nside)))
		phi = (float64(iphi) - fodd) * math.Pi / (2 * float64(nside))

	default:
		ip := npix - ipix1 + 1
		hip := float64(ip) / 2.0
		fihip := math.Floor(hip)
		iring := int64(math.Floor(math.Sqrt(hip-math.Sqrt(fihip)))) + 1
		iphi := 4*iring + 1 - (ip - 2*iring*(iring-1))

		theta = math.Acos(-1 + float64(iring*iring)/(3*float64(nside*nside)))
		phi = (float64(iphi) - 0.5) * math.Pi / (2 * float64(iring))
	}

	return theta, reducePhi(phi)
}

/*****************************************************************************************************************/

func ang2pixNest(nside int64, theta, phi float64) int64 {
	z := math.Cos(theta)
	za := math.Abs(z)
	tt := phi / (math.Pi / 2)

	nsideF := float64(nside)

	var faceNum, ix, iy int64

	if za <= 2.0/3.0 {
		temp1 := nsideF * (0.5 + tt)
		temp2 := nsideF * z * 0.75

		jp := int64(math.Floor(temp1 - temp2))
		jm := int64(math.Floor(temp1 + temp2))

		ifp := jp / nside
		ifm := jm / nside

		switch {
		case ifp == ifm:
			if ifp == 4 {
				faceNum = 4
			} else {
				faceNum = ifp + 4
			}
		case ifp < ifm:
			faceNum = ifp
		default:
			faceNum = ifm + 8
		}

		ix = floorMod(jm, nside)
		iy = nside - floorMod(jp, nside) - 1
	} else {
		ntt := int64(math.Floor(tt))
		if ntt >= 4 {
			ntt = 3
		}

		tp := tt - float64(ntt)
		tmp := nsideF * math.Sqrt(3*(1-za))

		jp := int64(math.Floor(tp * tmp))
		jm := int64(math.Floor((1 - tp) * tmp))

		if jp >= nside {
			jp = nside - 1
		}

		if jm >= nside {
			jm = nside - 1
		}

		if z >= 0 {
			faceNum = ntt
			ix = nside - jm - 1
			iy = nside - jp - 1
		} else {
			faceNum = ntt + 8
			ix = jp
			iy = jm
		}
	}

	return faceNum*nside*nside + interleave(ix, iy)
}

/*****************************************************************************************************************/

func pix2angNest(nside, pix int64) (theta, phi float64) {
	npface := nside * nside
	faceNum := pix / npface
	ipf := pix % npface

	ix, iy := uninterleave(ipf)

	jrt := ix + iy
	jpt := ix - iy

	jr := jrll[faceNum]*nside - jrt - 1

	fn := float64(nside)
	fact1 := 1.0 / (3.0 * fn * fn)
	fact2 := 2.0 / (3.0 * fn)

	var nr, kshift int64
	var z float64

	switch {
	case jr < nside:
		nr = jr
		z = 1.0 - float64(nr*nr)*fact1
		kshift = 0

	case jr > 3*nside:
		nr = 4*nside - jr
		z = -1.0 + float64(nr*nr)*fact1
		kshift = 0

	default:
		nr = nside
		z = float64(2*nside-jr) * fact2
		kshift = (jr - nside) & 1
	}

	theta = math.Acos(clamp(z, -1, 1))

	jp := floorDiv(jpll[faceNum]*nr+jpt+1+kshift, 2)
	jp = floorMod(jp-1, 4*nside) + 1

	phi = (float64(jp) - (float64(kshift)+1)*0.5) * ((math.Pi / 2) / float64(nr))

	return theta, reducePhi(phi)
}

/*****************************************************************************************************************/

// ringCount returns the number of iso-latitude rings for nside: 4*nside - 1.
func ringCount(nside int64) int64 {
	return 4*nside - 1
}

/*****************************************************************************************************************/

// ringLayout describes one iso-latitude ring: its cos(colatitude), the number of pixels it
// holds, the RING identifier of its first pixel, and the phase shift applied to its pixel
// centres (0 or 0.5 pixel widths).
type ringLayout struct {
	z          float64
	numPix     int64
	startPix   int64
	phaseShift float64
}

/*****************************************************************************************************************/

// ringInfoAt returns the layout of ring (1-indexed from the north pole, 1..4*nside-1).
func ringInfoAt(nside, ring int64) ringLayout {
	ncap := 2 * nside * (nside - 1)
	npix := 12 * nside * nside

	switch {
	case ring < nside:
		return ringLayout{
			z:          1.0 - float64(ring*ring)/(3*float64(nside*nside)),
			numPix:     4 * ring,
			startPix:   2 * ring * (ring - 1),
			phaseShift: 0.5,
		}

	case ring <= 3*nside:
		phase := 0.0
		if (ring+nside)%2 == 0 {
			phase = 0.5
		}

		return ringLayout{
			z:          float64(2*nside-ring) * 2.0 / (3.0 * float64(nside)),
			numPix:     4 * nside,
			startPix:   ncap + (ring-nside)*4*nside,
			phaseShift: phase,
		}

	default:
		ir := 4*nside - ring

		return ringLayout{
			z:          -(1.0 - float64(ir*ir)/(3*float64(nside*nside))),
			numPix:     4 * ir,
			startPix:   npix - 2*ir*(ir+1),
			phaseShift: 0.5,
		}
	}
}

/*****************************************************************************************************************/

// ringAbove returns the index (1-indexed from the north pole) of the ring whose z is just
// above or equal to z (i.e. the ring immediately north of, or at, the given cos-colatitude).
// It returns 0 when z lies north of every ring.
func ringAbove(nside int64, z float64) int64 {
	az := math.Abs(z)

	if az <= 2.0/3.0 {
		return int64(math.Floor(float64(nside) * (2 - 1.5*z)))
	}

	iring := int64(float64(nside) * math.Sqrt(3*(1-az)))

	if z > 0 {
		return iring
	}

	return 4*nside - iring - 1
}

/*****************************************************************************************************************/
