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

// Scheme selects the pixel ordering of a HealpixInfo: RING sorts pixels by decreasing
// co-latitude along iso-latitude rings; NEST lays pixels out by recursive quadrilateral
// subdivision of the twelve base faces.
type Scheme int

/*****************************************************************************************************************/

const (
	RING Scheme = iota
	NEST
)

/*****************************************************************************************************************/

func (s Scheme) String() string {
	if s == NEST {
		return "NEST"
	}

	return "RING"
}

/*****************************************************************************************************************/

// HealpixInfo holds the derived metadata for a given (nside, scheme) pair. It is immutable
// after construction and therefore safe to share across goroutines.
type HealpixInfo struct {
	Nside  int64
	Npix   int64
	Ncap   int64
	Npface int64
	Order  int64 // log2(nside), or -1 if nside is not a power of two
	Fact1  float64
	Fact2  float64
	Scheme Scheme
}

/*****************************************************************************************************************/

// NewHealpixInfo constructs the derived metadata for nside under the given scheme. nside
// must be positive and, under NEST, a power of two.
func NewHealpixInfo(nside int64, scheme Scheme) (*HealpixInfo, error) {
	if err := CheckNside(nside, scheme); err != nil {
		return nil, err
	}

	npix := 12 * nside * nside

	return &HealpixInfo{
		Nside:  nside,
		Npix:   npix,
		Ncap:   2 * nside * (nside - 1),
		Npface: nside * nside,
		Order:  order(nside),
		Fact1:  4.0 / float64(npix),
		Fact2:  2.0 * float64(nside) / math.Pi,
		Scheme: scheme,
	}, nil
}

/*****************************************************************************************************************/

func order(nside int64) int64 {
	if !isPowerOfTwo(nside) {
		return -1
	}

	var o int64

	for n := nside; n > 1; n >>= 1 {
		o++
	}

	return o
}

/*****************************************************************************************************************/

// requireOrder returns ErrOutOfRange when hpx.Order is negative, i.e. when nside is not a
// power of two. NEST bit-interleave operations (ring<->nest, neighbours, polygon/ellipse/box
// queries) all require a non-negative order.
func (hpx *HealpixInfo) requireOrder() error {
	if hpx.Order < 0 {
		return ErrOutOfRange
	}

	return nil
}

/*****************************************************************************************************************/

// MaxPixrad returns the maximum angular distance, in radians, from any pixel centre to any
// of its corners at this nside. The worst case sits on the polar-cap/equatorial-belt boundary
// (z = 2/3), not at any single sampled pixel, so this is computed in closed form as the angle
// between the points (z=2/3, phi=pi/(4*nside)) and (z=1-(1-1/nside)^2/3, phi=0) rather than by
// sampling Boundaries at a handful of pixels.
func MaxPixrad(hpx *HealpixInfo) float64 {
	nside := float64(hpx.Nside)

	za := 2.0 / 3.0
	phia := math.Pi / (4 * nside)

	zb := 1.0 - (1.0-1.0/nside)*(1.0-1.0/nside)/3.0
	phib := 0.0

	a := Ang2Vec(math.Acos(clamp(za, -1, 1)), phia)
	b := Ang2Vec(math.Acos(clamp(zb, -1, 1)), phib)

	return a.AngTo(b)
}

/*****************************************************************************************************************/
