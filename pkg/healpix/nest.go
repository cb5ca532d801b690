/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

// Ring2Nest converts a RING pixel identifier to its NEST equivalent at the same nside. It
// is implemented via the shared (theta, phi) centre of the pixel rather than a direct
// bit-rotation of the face coordinates: ring2nest(pix) = ang2pix_nest(pix2ang_ring(pix)).
// Pixel centres are unique to a single pixel in both schemes, so this round trip is exact.
func Ring2Nest(nside, ringPix int64) (int64, error) {
	if err := CheckNside(nside, NEST); err != nil {
		return 0, err
	}

	npix := 12 * nside * nside

	if ringPix < 0 || ringPix >= npix {
		return 0, ErrOutOfRange
	}

	theta, phi := pix2angRing(nside, ringPix)

	return ang2pixNest(nside, theta, phi), nil
}

/*****************************************************************************************************************/

// Nest2Ring converts a NEST pixel identifier to its RING equivalent at the same nside, by
// the same angle round trip used by Ring2Nest, in the opposite direction.
func Nest2Ring(nside, nestPix int64) (int64, error) {
	if err := CheckNside(nside, NEST); err != nil {
		return 0, err
	}

	npix := 12 * nside * nside

	if nestPix < 0 || nestPix >= npix {
		return 0, ErrOutOfRange
	}

	theta, phi := pix2angNest(nside, nestPix)

	return ang2pixRing(nside, theta, phi), nil
}

/*****************************************************************************************************************/
