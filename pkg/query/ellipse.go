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
	"github.com/observerly/healpix/pkg/matrix"
	"github.com/observerly/healpix/pkg/rangeset"
)

/*****************************************************************************************************************/

// Ellipse returns the pixels inside the spherical ellipse centred at (theta, phi): the locus
// where the sum of geodesic distances to two foci equals 2*semiMajor. semiMajor and
// semiMinor are angular half-axes in radians (semiMajor >= semiMinor > 0); alpha is the
// major-axis orientation, measured east of north, in radians. The foci sit on the major axis
// at geodesic distance c = acos(cos(semiMajor)/cos(semiMinor)) from the centre.
//
// The descent always runs in NEST. When hpx uses the RING scheme, the result is converted via
// nest2ring and sorted as a final pass, and Result.Warning carries a non-fatal advisory
// noting that internal conversion, per the resource-warning behaviour query_box shares.
func Ellipse(hpx *healpix.HealpixInfo, theta, phi, semiMajor, semiMinor, alpha float64, fact int64) (*Result, error) {
	if semiMinor <= 0 || semiMajor < semiMinor {
		return nil, fmt.Errorf("%w: semiMajor %f must be >= semiMinor %f > 0", healpix.ErrOutOfRange, semiMajor, semiMinor)
	}

	if err := healpix.CheckThetaPhi(theta, phi); err != nil {
		return nil, err
	}

	focus1, focus2 := ellipseFoci(theta, phi, semiMajor, semiMinor, alpha)

	f1Theta, f1Phi := healpix.Vec2Ang(focus1)
	f2Theta, f2Phi := healpix.Vec2Ang(focus2)

	threshold := 2 * semiMajor

	classify := func(centre healpix.Vec3, capRadius float64) regionClass {
		cTheta, cPhi := healpix.Vec2Ang(centre)

		sum := healpix.AngularSeparation(cTheta, cPhi, f1Theta, f1Phi) +
			healpix.AngularSeparation(cTheta, cPhi, f2Theta, f2Phi)

		margin := 2 * capRadius

		if sum > threshold+margin {
			return outside
		}

		if sum < threshold-margin {
			return inside
		}

		return straddling
	}

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

// ellipseFoci places the two foci of the ellipse along its major axis, at geodesic distance
// c from the centre, using the local north/east tangent frame at (theta, phi) rotated by
// alpha.
func ellipseFoci(theta, phi, semiMajor, semiMinor, alpha float64) (focus1, focus2 healpix.Vec3) {
	c := math.Acos(clampUnit(math.Cos(semiMajor) / math.Cos(semiMinor)))

	centre := healpix.Ang2Vec(theta, phi)

	north, east := localTangentFrame(theta, phi)

	direction, err := rotateTangent(north, east, alpha)
	if err != nil {
		// north and east are always well-formed unit tangents, so rotateTangent cannot
		// fail; panic rather than silently drop the orientation.
		panic(err)
	}

	focus1 = movePoint(centre, direction, c)
	focus2 = movePoint(centre, direction, -c)

	return focus1, focus2
}

/*****************************************************************************************************************/

// localTangentFrame returns the unit north and east tangent vectors at (theta, phi), both
// orthogonal to the direction itself.
func localTangentFrame(theta, phi float64) (north, east healpix.Vec3) {
	north = healpix.Vec3{
		X: math.Cos(theta) * math.Cos(phi),
		Y: math.Cos(theta) * math.Sin(phi),
		Z: -math.Sin(theta),
	}

	east = healpix.Vec3{
		X: -math.Sin(phi),
		Y: math.Cos(phi),
		Z: 0,
	}

	return north, east
}

/*****************************************************************************************************************/

// rotateTangent rotates the (north, east) tangent basis by alpha as an explicit 1x2 * 2x3
// matrix product, [cos(alpha), sin(alpha)] times the basis rows (north, east), returning the
// resulting unit direction in the tangent plane.
func rotateTangent(north, east healpix.Vec3, alpha float64) (healpix.Vec3, error) {
	rotation, err := matrix.NewFromSlice([]float64{
		math.Cos(alpha), math.Sin(alpha),
	}, 1, 2)
	if err != nil {
		return healpix.Vec3{}, err
	}

	basis, err := matrix.New(2, 3)
	if err != nil {
		return healpix.Vec3{}, err
	}

	for col, component := range []float64{north.X, east.X} {
		if err := basis.Set(col, 0, component); err != nil {
			return healpix.Vec3{}, err
		}
	}

	for col, component := range []float64{north.Y, east.Y} {
		if err := basis.Set(col, 1, component); err != nil {
			return healpix.Vec3{}, err
		}
	}

	for col, component := range []float64{north.Z, east.Z} {
		if err := basis.Set(col, 2, component); err != nil {
			return healpix.Vec3{}, err
		}
	}

	product, err := rotation.Multiply(basis)
	if err != nil {
		return healpix.Vec3{}, err
	}

	x, err := product.At(0, 0)
	if err != nil {
		return healpix.Vec3{}, err
	}

	y, err := product.At(0, 1)
	if err != nil {
		return healpix.Vec3{}, err
	}

	z, err := product.At(0, 2)
	if err != nil {
		return healpix.Vec3{}, err
	}

	return healpix.Vec3{X: x, Y: y, Z: z}, nil
}

/*****************************************************************************************************************/

// movePoint returns the point reached by travelling distance along the great circle through
// centre in direction tangent (tangent must be a unit vector orthogonal to centre).
func movePoint(centre, tangent healpix.Vec3, distance float64) healpix.Vec3 {
	return centre.Scale(math.Cos(distance)).Add(tangent.Scale(math.Sin(distance)))
}

/*****************************************************************************************************************/
