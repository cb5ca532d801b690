/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// RingArc describes the longitude arc a disc query cuts out of a single ring: either the
// full ring (Full true), or the inclusive range of in-ring offsets [Lo, Hi] (which may wrap
// past the ring's last pixel back to its first).
type RingArc struct {
	Ring int64
	Full bool
	Lo   int64
	Hi   int64
}

/*****************************************************************************************************************/

// DiscRingRange returns the inclusive range of ring numbers (1-indexed from the north pole)
// that a disc of angular radius radius centred at theta0 can intersect.
func DiscRingRange(nside int64, theta0, radius float64) (ringLo, ringHi int64) {
	zmax := clamp(math.Cos(math.Max(theta0-radius, 0)), -1, 1)
	zmin := clamp(math.Cos(math.Min(theta0+radius, math.Pi)), -1, 1)

	ringLo = ringAbove(nside, zmax) + 1
	ringHi = ringAbove(nside, zmin)

	nrings := ringCount(nside)

	if ringLo < 1 {
		ringLo = 1
	}

	if ringHi > nrings {
		ringHi = nrings
	}

	return ringLo, ringHi
}

/*****************************************************************************************************************/

// RingArcForDisc computes the longitude arc that a disc centred at (theta0, phi0) with
// angular radius radius cuts out of ring. ok is false when the disc does not reach ring at
// all (the caller should skip it).
func RingArcForDisc(nside, ring int64, theta0, phi0, radius float64) (arc RingArc, ok bool) {
	info := ringInfoAt(nside, ring)

	z0 := math.Cos(theta0)
	cosrad := math.Cos(radius)

	sinTheta0 := math.Sqrt(clamp(1-z0*z0, 0, 1))
	sinThetaR := math.Sqrt(clamp(1-info.z*info.z, 0, 1))

	// spherical law of cosines: cos(radius) = z*z0 + sin(theta)*sin(theta0)*cos(dphi)
	denom := sinTheta0 * sinThetaR

	if denom < 1e-300 {
		// the disc centre is (numerically) at a pole, so every pixel of the ring lies at the same
		// distance from it; the ring intersects the disc iff its z is within range.
		if cosrad <= info.z*z0 {
			return RingArc{Ring: ring, Full: true}, true
		}

		return RingArc{}, false
	}

	cosdphi := (cosrad - info.z*z0) / denom

	if cosdphi < -1 {
		return RingArc{Ring: ring, Full: true}, true
	}

	if cosdphi > 1 {
		return RingArc{}, false
	}

	halfWidth := math.Acos(cosdphi)

	kf := phi0*float64(info.numPix)/(2*math.Pi) - info.phaseShift
	dk := halfWidth * float64(info.numPix) / (2 * math.Pi)

	lo := int64(math.Floor(kf-dk)) + 1
	hi := int64(math.Floor(kf + dk))

	if hi-lo+1 >= info.numPix {
		return RingArc{Ring: ring, Full: true}, true
	}

	return RingArc{Ring: ring, Full: false, Lo: lo, Hi: hi}, true
}

/*****************************************************************************************************************/

// RingArcPixels expands a RingArc into the concrete RING pixel identifiers it covers.
func RingArcPixels(nside int64, arc RingArc) []int64 {
	info := ringInfoAt(nside, arc.Ring)

	if arc.Full {
		out := make([]int64, info.numPix)

		for k := int64(0); k < info.numPix; k++ {
			out[k] = info.startPix + k
		}

		return out
	}

	n := arc.Hi - arc.Lo + 1

	out := make([]int64, 0, n)

	for k := arc.Lo; k <= arc.Hi; k++ {
		out = append(out, info.startPix+floorMod(k, info.numPix))
	}

	return out
}

/*****************************************************************************************************************/

// RingArcRanges expands a RingArc into one or two half-open [lo, hi) pixel-id ranges
// (two when the arc wraps past the ring's last pixel back to its first), suitable for
// folding into a rangeset.RangeSet without needing to enumerate individual pixels. An arc
// that holds no pixel centre (Hi < Lo) yields no range.
func RingArcRanges(nside int64, arc RingArc) [][2]int64 {
	info := ringInfoAt(nside, arc.Ring)

	if arc.Full {
		return [][2]int64{{info.startPix, info.startPix + info.numPix}}
	}

	if arc.Hi < arc.Lo {
		return nil
	}

	lo := floorMod(arc.Lo, info.numPix)
	hi := floorMod(arc.Hi, info.numPix) + 1

	if lo < hi {
		return [][2]int64{{info.startPix + lo, info.startPix + hi}}
	}

	return [][2]int64{
		{info.startPix + lo, info.startPix + info.numPix},
		{info.startPix, info.startPix + hi},
	}
}

/*****************************************************************************************************************/
