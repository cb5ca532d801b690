/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// ringPhiBracket returns the two RING pixel identifiers in ring that bracket phi in
// longitude, together with the fractional phase between them (0 at the first, 1 at the
// second).
func ringPhiBracket(nside, ring int64, phi float64) (lower, upper int64, frac float64) {
	info := ringInfoAt(nside, ring)

	kf := phi*float64(info.numPix)/(2*math.Pi) - info.phaseShift
	k := int64(math.Floor(kf))
	frac = kf - float64(k)

	k0 := floorMod(k, info.numPix)
	k1 := floorMod(k+1, info.numPix)

	return info.startPix + k0, info.startPix + k1, frac
}

/*****************************************************************************************************************/

// GetInterpol returns the four RING pixels nearest (theta, phi) and the bilinear weights
// with which their centres' values should be combined to approximate the value at
// (theta, phi). Weights sum to 1.
func GetInterpol(nside int64, theta, phi float64) (pix [4]int64, weight [4]float64, err error) {
	if err := CheckThetaPhi(theta, phi); err != nil {
		return pix, weight, err
	}

	if err := CheckNside(nside, RING); err != nil {
		return pix, weight, err
	}

	phi = reducePhi(phi)
	z := math.Cos(theta)

	nrings := ringCount(nside)

	ir1 := ringAbove(nside, z)

	ringA := clampRing(ir1, nrings)
	ringB := clampRing(ir1+1, nrings)

	infoA := ringInfoAt(nside, ringA)
	infoB := ringInfoAt(nside, ringB)

	fz := 0.5
	if infoA.z != infoB.z {
		fz = (z - infoB.z) / (infoA.z - infoB.z)
	}

	a1, a2, fracA := ringPhiBracket(nside, ringA, phi)
	b1, b2, fracB := ringPhiBracket(nside, ringB, phi)

	pix = [4]int64{a1, a2, b1, b2}
	weight = [4]float64{
		fz * (1 - fracA),
		fz * fracA,
		(1 - fz) * (1 - fracB),
		(1 - fz) * fracB,
	}

	return pix, weight, nil
}

/*****************************************************************************************************************/

func clampRing(r, nrings int64) int64 {
	if r < 1 {
		return 1
	}

	if r > nrings {
		return nrings
	}

	return r
}

/*****************************************************************************************************************/
