/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

import (
	"math"

	"github.com/observerly/healpix/pkg/astrometry"
	"github.com/observerly/healpix/pkg/projection"
)

/*****************************************************************************************************************/

// HealPIX is a thin, convenience-oriented wrapper around a *HealpixInfo that exposes the
// package's free functions as methods, and accepts/returns equatorial coordinates directly
// rather than raw (theta, phi) pairs.
type HealPIX struct {
	info *HealpixInfo
}

/*****************************************************************************************************************/

// NewHealPIX constructs a HealPIX for the given nside and scheme.
func NewHealPIX(nside int64, scheme Scheme) (*HealPIX, error) {
	info, err := NewHealpixInfo(nside, scheme)
	if err != nil {
		return nil, err
	}

	return &HealPIX{info: info}, nil
}

/*****************************************************************************************************************/

// Info returns the underlying derived metadata.
func (hp *HealPIX) Info() *HealpixInfo {
	return hp.info
}

/*****************************************************************************************************************/

// GetNSide returns the nside resolution parameter.
func (hp *HealPIX) GetNSide() int64 {
	return hp.info.Nside
}

/*****************************************************************************************************************/

// GetNPix returns the total number of pixels, 12*nside^2.
func (hp *HealPIX) GetNPix() int64 {
	return hp.info.Npix
}

/*****************************************************************************************************************/

// GetScheme returns the pixel ordering scheme, RING or NEST.
func (hp *HealPIX) GetScheme() Scheme {
	return hp.info.Scheme
}

/*****************************************************************************************************************/

// GetPixelArea returns the (equal) area of a single pixel, in square degrees.
func (hp *HealPIX) GetPixelArea() float64 {
	sr := 4 * math.Pi / float64(hp.info.Npix)

	return sr * (180 / math.Pi) * (180 / math.Pi)
}

/*****************************************************************************************************************/

// GetPixelRadialExtent returns the nominal angular radius, in degrees, of a disc with the
// same area as a single pixel. Since every HEALPix pixel has identical area, the result does
// not depend on which pixel is named; use MaxPixelRadius for the true worst-case extent of a
// specific pixel's corners.
func (hp *HealPIX) GetPixelRadialExtent(pix int64) float64 {
	sr := 4 * math.Pi / float64(hp.info.Npix)

	return projection.Degrees(math.Acos(clamp(1-sr/(2*math.Pi), -1, 1)))
}

/*****************************************************************************************************************/

// MaxPixelRadius returns, in degrees, the true maximum angular distance from any pixel
// centre to one of its corners at this nside.
func (hp *HealPIX) MaxPixelRadius() float64 {
	return projection.Degrees(MaxPixrad(hp.info))
}

/*****************************************************************************************************************/

// ConvertEquatorialToPixelIndex maps an equatorial (RA, Dec) coordinate, in degrees, to the
// identifier of the pixel that contains it.
func (hp *HealPIX) ConvertEquatorialToPixelIndex(coord astrometry.ICRSEquatorialCoordinate) (int64, error) {
	theta, phi, err := LonLatToThetaPhi(coord.RA, coord.Dec, true)
	if err != nil {
		return 0, err
	}

	return Ang2Pix(hp.info, theta, phi)
}

/*****************************************************************************************************************/

// ConvertPixelIndexToEquatorial returns the equatorial (RA, Dec) coordinate, in degrees, of
// pix's centre.
func (hp *HealPIX) ConvertPixelIndexToEquatorial(pix int64) (astrometry.ICRSEquatorialCoordinate, error) {
	theta, phi, err := Pix2Ang(hp.info, pix)
	if err != nil {
		return astrometry.ICRSEquatorialCoordinate{}, err
	}

	lon, lat, err := ThetaPhiToLonLat(theta, phi, true, false)
	if err != nil {
		return astrometry.ICRSEquatorialCoordinate{}, err
	}

	return astrometry.ICRSEquatorialCoordinate{RA: lon, Dec: lat}, nil
}

/*****************************************************************************************************************/

// GetNeighbouringPixels returns the (up to) eight pixels bordering pix, in the fixed order
// SW, W, NW, N, NE, E, SE, S.
func (hp *HealPIX) GetNeighbouringPixels(pix int64) ([8]int64, error) {
	return Neighbours(hp.info, pix)
}

/*****************************************************************************************************************/

// GetFaceXY decomposes pix into its base face (0-11) and in-face integer coordinates.
func (hp *HealPIX) GetFaceXY(pix int64) (face, x, y int64) {
	x, y, face = pixToFaceXY(hp.info, pix)

	return face, x, y
}

/*****************************************************************************************************************/

// GetPixelIndexFromFaceXY is the inverse of GetFaceXY: it recomposes a pixel identifier,
// under hp's own scheme, from a base face and in-face integer coordinates.
func (hp *HealPIX) GetPixelIndexFromFaceXY(face, x, y int64) (int64, error) {
	if face < 0 || face > 11 || x < 0 || x >= hp.info.Nside || y < 0 || y >= hp.info.Nside {
		return 0, ErrOutOfRange
	}

	nestPix := face*hp.info.Nside*hp.info.Nside + interleave(x, y)

	if hp.info.Scheme == RING {
		return Nest2Ring(hp.info.Nside, nestPix)
	}

	return nestPix, nil
}

/*****************************************************************************************************************/

// GetPixelIndicesFromEquatorialRadialRegion returns every pixel (under hp's own scheme)
// whose centre lies within radiusDegrees of coord. It is an exclusive (pixel-centre) query;
// pkg/query provides the full disc/polygon/ellipse/box engines with inclusive-mode support.
func (hp *HealPIX) GetPixelIndicesFromEquatorialRadialRegion(
	coord astrometry.ICRSEquatorialCoordinate,
	radiusDegrees float64,
) ([]int64, error) {
	theta0, phi0, err := LonLatToThetaPhi(coord.RA, coord.Dec, true)
	if err != nil {
		return nil, err
	}

	radius := projection.Radians(radiusDegrees)

	if err := CheckRadius(radius); err != nil {
		return nil, err
	}

	ringLo, ringHi := DiscRingRange(hp.info.Nside, theta0, radius)

	var ringPixels []int64

	for ring := ringLo; ring <= ringHi; ring++ {
		arc, ok := RingArcForDisc(hp.info.Nside, ring, theta0, phi0, radius)
		if !ok {
			continue
		}

		ringPixels = append(ringPixels, RingArcPixels(hp.info.Nside, arc)...)
	}

	if hp.info.Scheme == RING {
		return ringPixels, nil
	}

	nestPixels := make([]int64, len(ringPixels))

	for i, p := range ringPixels {
		nestPix, err := Ring2Nest(hp.info.Nside, p)
		if err != nil {
			return nil, err
		}

		nestPixels[i] = nestPix
	}

	return nestPixels, nil
}

/*****************************************************************************************************************/
