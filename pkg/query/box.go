/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package query

/*****************************************************************************************************************/

import (
	"fmt"
	"math"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/observerly/healpix/pkg/rangeset"
)

/*****************************************************************************************************************/

// Box returns the pixels within the axis-aligned region theta in [theta0, theta1], phi in
// [phi0, phi1]. The longitude interval wraps when phi0 > phi1, spanning [phi0, 2*pi) union
// [0, phi1]. fullLongitude signals the special case of every azimuth (the poles are arcs, not
// points), ignoring phi0/phi1 entirely.
//
// The descent always runs in NEST; its RING path matches Ellipse's: the result is converted
// via nest2ring and sorted, and Result.Warning carries the same non-fatal advisory.
func Box(hpx *healpix.HealpixInfo, theta0, theta1, phi0, phi1 float64, fullLongitude bool, fact int64) (*Result, error) {
	if theta0 < 0 || theta1 > math.Pi || theta0 > theta1 {
		return nil, fmt.Errorf("%w: theta range [%f, %f] is not within [0, pi]", healpix.ErrOutOfRange, theta0, theta1)
	}

	classify := boxClassifier(theta0, theta1, phi0, phi1, fullLongitude)

	nside := hpx.Nside

	hpxNest, err := healpix.NewHealpixInfo(nside, healpix.NEST)
	if err != nil {
		return nil, err
	}

	var nestSet *rangeset.RangeSet

	if fact == 0 {
		nestSet, err = descendTree(hpxNest, classify)
	} else {
		if err = healpix.CheckFact(fact, nside, healpix.NEST); err != nil {
			return nil, err
		}

		var hpxHigh *healpix.HealpixInfo

		hpxHigh, err = healpix.NewHealpixInfo(nside*fact, healpix.NEST)
		if err != nil {
			return nil, err
		}

		var highSet *rangeset.RangeSet

		highSet, err = descendTree(hpxHigh, classify)
		if err != nil {
			return nil, err
		}

		var lowPixels []int64

		lowPixels, err = mapHighResToLowRes(hpxHigh, hpxNest, highSet.ToSlice())
		if err != nil {
			return nil, err
		}

		nestSet = buildSortedRangeSet(lowPixels)
	}

	if err != nil {
		return nil, err
	}

	if hpx.Scheme == healpix.RING {
		ringPixels, convErr := convertPixels(nside, nestSet.ToSlice(), healpix.NEST, healpix.RING)
		if convErr != nil {
			return nil, convErr
		}

		return &Result{Pixels: buildSortedRangeSet(ringPixels), Warning: ringModeWarning}, nil
	}

	return &Result{Pixels: nestSet}, nil
}

/*****************************************************************************************************************/

// boxClassifier builds a descent-tree classifier for the axis-aligned theta/phi box. The
// phi tolerance widens towards the poles (capRadius / sin(theta)) since a fixed angular
// margin at the node's centre subtends a larger longitude range there.
func boxClassifier(theta0, theta1, phi0, phi1 float64, fullLongitude bool) func(healpix.Vec3, float64) regionClass {
	wraps := !fullLongitude && phi0 > phi1

	return func(centre healpix.Vec3, capRadius float64) regionClass {
		theta, phi := healpix.Vec2Ang(centre)

		if theta < theta0-capRadius || theta > theta1+capRadius {
			return outside
		}

		thetaStraddles := theta < theta0+capRadius || theta > theta1-capRadius

		if fullLongitude {
			if thetaStraddles {
				return straddling
			}

			return inside
		}

		sinTheta := math.Max(math.Sin(theta), 1e-6)
		phiMargin := capRadius / sinTheta

		var inRange, nearBoundary bool

		if !wraps {
			inRange = phi >= phi0-phiMargin && phi <= phi1+phiMargin
			nearBoundary = phi <= phi0+phiMargin || phi >= phi1-phiMargin
		} else {
			inRange = phi >= phi0-phiMargin || phi <= phi1+phiMargin
			nearBoundary = (phi >= phi0-phiMargin && phi <= phi0+phiMargin) ||
				(phi >= phi1-phiMargin && phi <= phi1+phiMargin)
		}

		if !inRange {
			return outside
		}

		if thetaStraddles || nearBoundary {
			return straddling
		}

		return inside
	}
}

/*****************************************************************************************************************/
