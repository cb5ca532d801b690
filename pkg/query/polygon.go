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

// edge is one great-circle boundary of a convex spherical polygon: directions p satisfy
// normal.Dot(p) >= 0 iff they lie on the polygon's interior side of that edge.
type edge struct {
	normal healpix.Vec3
}

/*****************************************************************************************************************/

// Polygon returns the pixels inside the convex spherical polygon whose corners are vertices,
// given as unit direction vectors in order around the boundary. At least three vertices are
// required; a degenerate consecutive pair, a non-convex corner, or a self-intersecting
// boundary fails with ErrBadPolygon. The descent always runs in NEST; for a RING hpx the
// result is converted via nest2ring and sorted, with no warning attached (unlike Ellipse and
// Box).
func Polygon(hpx *healpix.HealpixInfo, vertices []healpix.Vec3, fact int64) (*Result, error) {
	edges, err := buildPolygonEdges(vertices)
	if err != nil {
		return nil, err
	}

	nside := hpx.Nside

	hpxNest, err := healpix.NewHealpixInfo(nside, healpix.NEST)
	if err != nil {
		return nil, err
	}

	classify := func(centre healpix.Vec3, capRadius float64) regionClass {
		return classifyAgainstEdges(edges, centre, capRadius)
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

		return &Result{Pixels: buildSortedRangeSet(ringPixels)}, nil
	}

	return &Result{Pixels: nestSet}, nil
}

/*****************************************************************************************************************/

// buildPolygonEdges validates vertices and derives each edge's interior-facing plane normal.
func buildPolygonEdges(vertices []healpix.Vec3) ([]edge, error) {
	n := len(vertices)

	if n < 3 {
		return nil, fmt.Errorf("%w: polygon requires at least 3 vertices, got %d", healpix.ErrBadPolygon, n)
	}

	verts := make([]healpix.Vec3, n)

	for i, v := range vertices {
		verts[i] = v.Normalize()
	}

	var centroid healpix.Vec3

	for _, v := range verts {
		centroid = centroid.Add(v)
	}

	if centroid.Norm() < 1e-12 {
		return nil, fmt.Errorf("%w: vertices have no well-defined interior", healpix.ErrBadPolygon)
	}

	centroid = centroid.Normalize()

	edges := make([]edge, n)

	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]

		if a.Sub(b).Norm() < 1e-12 {
			return nil, fmt.Errorf("%w: degenerate edge at vertex %d", healpix.ErrBadPolygon, i)
		}

		normal := a.Cross(b)

		if normal.Norm() < 1e-12 {
			return nil, fmt.Errorf("%w: antipodal consecutive vertices at %d", healpix.ErrBadPolygon, i)
		}

		normal = normal.Normalize()

		if normal.Dot(centroid) < 0 {
			normal = normal.Scale(-1)
		}

		edges[i] = edge{normal: normal}
	}

	for i, v := range verts {
		for _, e := range edges {
			if e.normal.Dot(v) < -1e-9 {
				return nil, fmt.Errorf(
					"%w: vertex %d lies outside an edge half-space; polygon is non-convex or self-intersecting",
					healpix.ErrBadPolygon, i,
				)
			}
		}
	}

	return edges, nil
}

/*****************************************************************************************************************/

// classifyAgainstEdges compares a descent-tree node's centre to every edge plane, using
// capRadius as the node's worst-case angular extent: a node is fully outside once it clears
// any single edge by more than capRadius, fully inside once every edge clears it by more than
// capRadius, and straddling otherwise.
func classifyAgainstEdges(edges []edge, centre healpix.Vec3, capRadius float64) regionClass {
	unit := centre.Normalize()

	allClear := true

	for _, e := range edges {
		d := math.Asin(clampUnit(e.normal.Dot(unit)))

		if d < -capRadius {
			return outside
		}

		if d < capRadius {
			allClear = false
		}
	}

	if allClear {
		return inside
	}

	return straddling
}

/*****************************************************************************************************************/
