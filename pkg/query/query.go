/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package query implements the disc, polygon, ellipse, and box region queries over a
// HealpixInfo, each returning the matching pixels as a rangeset.RangeSet.
package query

/*****************************************************************************************************************/

import (
	"sort"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/observerly/healpix/pkg/pointing"
	"github.com/observerly/healpix/pkg/rangeset"
)

/*****************************************************************************************************************/

// Result is the outcome of a query engine invocation. Warning is only ever populated by
// Ellipse and Box, and only when hpx uses the RING scheme: the descent itself always runs in
// NEST, and a RING result requires a final nest2ring conversion and sort that Polygon
// performs silently but Ellipse and Box flag to the caller. Disc scans natively in RING and
// needs no such conversion.
type Result struct {
	Pixels  *rangeset.RangeSet
	Warning string
}

/*****************************************************************************************************************/

// regionClass is the outcome of testing a descent-tree node against a region: fully outside
// (pruned), fully inside (its whole descendant pixel range is emitted without recursing), or
// straddling the boundary (subdivided into its four children).
type regionClass int

const (
	outside regionClass = iota
	inside
	straddling
)

/*****************************************************************************************************************/

// descendTree walks the twelve base pixels of hpx down the NEST quad-tree, classifying each
// node's footprint (its centre and the worst-case angular radius of any of its corners)
// against the region via classify, and returns the set of pixels at hpx's own resolution that
// the region covers. hpx must use the NEST scheme; callers convert to RING afterwards.
func descendTree(hpx *healpix.HealpixInfo, classify func(centre healpix.Vec3, capRadius float64) regionClass) (*rangeset.RangeSet, error) {
	out := rangeset.New()

	stack := pointing.NewStack(192)

	for base := int64(0); base < 12; base++ {
		stack.Push(pointing.WorkItem{Pix: base, Order: 0})
	}

	for {
		item, ok := stack.Pop()
		if !ok {
			break
		}

		hpxAtOrder, err := healpixInfoAtOrder(item.Order)
		if err != nil {
			return nil, err
		}

		centre, err := healpix.Pix2Vec(hpxAtOrder, item.Pix)
		if err != nil {
			return nil, err
		}

		// At the target resolution there is nothing left to subdivide: classify against the
		// pixel's own centre exactly (capRadius 0), matching the exclusive-mode contract of a
		// pixel-centre containment test rather than the bounding-cap approximation used to
		// prune or accept whole branches higher up the tree.
		capRadius := 0.0
		if item.Order < hpx.Order {
			capRadius = healpix.MaxPixrad(hpxAtOrder)
		}

		switch classify(centre, capRadius) {
		case outside:
			continue
		case inside:
			shift := hpx.Order - item.Order
			ratio := int64(1) << uint(2*shift)
			lo := item.Pix * ratio
			out.Add(lo, lo+ratio)
		case straddling:
			if item.Order == hpx.Order {
				out.Add(item.Pix, item.Pix+1)
				continue
			}

			stack.PushChildren(item.Pix, item.Order)
		}
	}

	return out, nil
}

/*****************************************************************************************************************/

func healpixInfoAtOrder(order int64) (*healpix.HealpixInfo, error) {
	return healpix.NewHealpixInfo(int64(1)<<uint(order), healpix.NEST)
}

/*****************************************************************************************************************/

// buildSortedRangeSet sorts pixels and folds them into a RangeSet via the cheap
// increasing-order Append path.
func buildSortedRangeSet(pixels []int64) *rangeset.RangeSet {
	sort.Slice(pixels, func(i, j int) bool { return pixels[i] < pixels[j] })

	out := rangeset.New()

	for _, p := range pixels {
		out.AppendSingle(p)
	}

	return out
}

/*****************************************************************************************************************/

// convertPixels maps every pixel id in pixels from one scheme to the other at the same nside.
func convertPixels(nside int64, pixels []int64, from, to healpix.Scheme) ([]int64, error) {
	if from == to {
		return pixels, nil
	}

	out := make([]int64, len(pixels))

	for i, p := range pixels {
		var (
			converted int64
			err       error
		)

		if to == healpix.NEST {
			converted, err = healpix.Ring2Nest(nside, p)
		} else {
			converted, err = healpix.Nest2Ring(nside, p)
		}

		if err != nil {
			return nil, err
		}

		out[i] = converted
	}

	return out, nil
}

/*****************************************************************************************************************/

// mapHighResToLowRes finds, for every pixel in highPixels (at hpxHigh's resolution), which
// pixel of hpxLow contains its centre, and returns the distinct low-resolution ids. When both
// HealpixInfos use NEST, this is the cheap bit-shift ancestor lookup the quad-tree hierarchy
// gives for free; otherwise (RING, or a mixed inclusive-mode margin query) it falls back to
// an explicit centre-direction lookup via Ang2Pix.
func mapHighResToLowRes(hpxHigh, hpxLow *healpix.HealpixInfo, highPixels []int64) ([]int64, error) {
	ratio := hpxHigh.Nside / hpxLow.Nside

	useShift := hpxHigh.Scheme == healpix.NEST && hpxLow.Scheme == healpix.NEST

	seen := make(map[int64]struct{}, len(highPixels))

	out := make([]int64, 0, len(highPixels))

	for _, p := range highPixels {
		var low int64

		if useShift {
			low = p / (ratio * ratio)
		} else {
			theta, phi, err := healpix.Pix2Ang(hpxHigh, p)
			if err != nil {
				return nil, err
			}

			low, err = healpix.Ang2Pix(hpxLow, theta, phi)
			if err != nil {
				return nil, err
			}
		}

		if _, ok := seen[low]; ok {
			continue
		}

		seen[low] = struct{}{}

		out = append(out, low)
	}

	return out, nil
}

/*****************************************************************************************************************/

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}

	if v > 1 {
		return 1
	}

	return v
}

/*****************************************************************************************************************/

// ringModeWarning is the non-fatal advisory Ellipse and Box attach to their Result when
// called with a RING-scheme HealpixInfo: the descent always runs in NEST, and a RING result
// requires converting the final set back via nest2ring and re-sorting it.
const ringModeWarning = "healpix: query running in RING mode; converting the NEST descent result via nest2ring and re-sorting"

/*****************************************************************************************************************/
