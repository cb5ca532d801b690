/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package query

/*****************************************************************************************************************/

import (
	"math"
	"sort"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/observerly/healpix/pkg/rangeset"
)

/*****************************************************************************************************************/

// Disc returns the pixels within angular distance radius of direction (theta0, phi0). fact
// == 0 selects exclusive mode (pixel centres within radius of the disc centre); fact > 0 selects
// inclusive mode, a superset guaranteed to cover every pixel whose area intersects the disc,
// computed by running the same scan at nside*fact with the radius enlarged by that
// resolution's worst-case pixel corner distance, then projecting each hit back down.
//
// Unlike Ellipse and Box, Disc never attaches a RING-mode warning: the ring-arc scan is
// native to RING and merely converted pixel-by-pixel to NEST when hpx requires it, with no
// separate descent pass to flag.
func Disc(hpx *healpix.HealpixInfo, theta0, phi0, radius float64, fact int64) (*Result, error) {
	if err := healpix.CheckThetaPhi(theta0, phi0); err != nil {
		return nil, err
	}

	if err := healpix.CheckRadius(radius); err != nil {
		return nil, err
	}

	if fact == 0 {
		pixels, err := discExclusive(hpx, theta0, phi0, radius)
		if err != nil {
			return nil, err
		}

		return &Result{Pixels: pixels}, nil
	}

	if err := healpix.CheckFact(fact, hpx.Nside, hpx.Scheme); err != nil {
		return nil, err
	}

	pixels, err := discInclusive(hpx, theta0, phi0, radius, fact)
	if err != nil {
		return nil, err
	}

	return &Result{Pixels: pixels}, nil
}

/*****************************************************************************************************************/

// discExclusive walks the rings the disc can intersect, computing each one's longitude arc by
// closed-form spherical law of cosines, and folds the matching pixel-id ranges into a
// RangeSet in ring-sorted (ascending) order. Under NEST, the RING-native scan still runs
// first and each resulting pixel is converted individually, since the quad-tree ordering has
// no closed-form arc.
func discExclusive(hpx *healpix.HealpixInfo, theta0, phi0, radius float64) (*rangeset.RangeSet, error) {
	nside := hpx.Nside

	ringLo, ringHi := healpix.DiscRingRange(nside, theta0, radius)

	if hpx.Scheme == healpix.RING {
		out := rangeset.New()

		for ring := ringLo; ring <= ringHi; ring++ {
			arc, ok := healpix.RingArcForDisc(nside, ring, theta0, phi0, radius)
			if !ok {
				continue
			}

			ranges := healpix.RingArcRanges(nside, arc)

			sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })

			for _, r := range ranges {
				out.Append(r[0], r[1])
			}
		}

		return out, nil
	}

	var pixels []int64

	for ring := ringLo; ring <= ringHi; ring++ {
		arc, ok := healpix.RingArcForDisc(nside, ring, theta0, phi0, radius)
		if !ok {
			continue
		}

		for _, ringPix := range healpix.RingArcPixels(nside, arc) {
			nestPix, err := healpix.Ring2Nest(nside, ringPix)
			if err != nil {
				return nil, err
			}

			pixels = append(pixels, nestPix)
		}
	}

	return buildSortedRangeSet(pixels), nil
}

/*****************************************************************************************************************/

// discInclusive runs discExclusive at nside*fact with a radius enlarged by that resolution's
// worst-case pixel corner distance, then maps every hit back down to hpx's own resolution.
func discInclusive(hpx *healpix.HealpixInfo, theta0, phi0, radius float64, fact int64) (*rangeset.RangeSet, error) {
	hpxHigh, err := healpix.NewHealpixInfo(hpx.Nside*fact, hpx.Scheme)
	if err != nil {
		return nil, err
	}

	margin := healpix.MaxPixrad(hpxHigh)

	enlarged := radius + margin
	if enlarged > math.Pi {
		enlarged = math.Pi
	}

	highSet, err := discExclusive(hpxHigh, theta0, phi0, enlarged)
	if err != nil {
		return nil, err
	}

	lowPixels, err := mapHighResToLowRes(hpxHigh, hpx, highSet.ToSlice())
	if err != nil {
		return nil, err
	}

	return buildSortedRangeSet(lowPixels), nil
}

/*****************************************************************************************************************/
