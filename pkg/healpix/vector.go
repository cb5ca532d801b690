/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

/*****************************************************************************************************************/

// Vec3 is a Cartesian 3-vector on or near the unit sphere. It is not required to be
// normalised on input to Vec2Pix; only its direction matters.
type Vec3 struct {
	X, Y, Z float64
}

/*****************************************************************************************************************/

func (v Vec3) r3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

/*****************************************************************************************************************/

func fromR3(v r3.Vec) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

/*****************************************************************************************************************/

// Normalize returns v scaled to unit length.
func (v Vec3) Normalize() Vec3 {
	return fromR3(r3.Unit(v.r3()))
}

/*****************************************************************************************************************/

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return r3.Dot(v.r3(), w.r3())
}

/*****************************************************************************************************************/

// Cross returns the cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return fromR3(r3.Cross(v.r3(), w.r3()))
}

/*****************************************************************************************************************/

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return fromR3(r3.Sub(v.r3(), w.r3()))
}

/*****************************************************************************************************************/

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return fromR3(r3.Add(v.r3(), w.r3()))
}

/*****************************************************************************************************************/

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return fromR3(r3.Scale(s, v.r3()))
}

/*****************************************************************************************************************/

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return r3.Norm(v.r3())
}

/*****************************************************************************************************************/

// AngTo returns the angular separation, in radians, between the directions of v and w.
func (v Vec3) AngTo(w Vec3) float64 {
	return math.Acos(clamp(v.Normalize().Dot(w.Normalize()), -1, 1))
}

/*****************************************************************************************************************/

// Ang2Vec converts a (theta, phi) direction to a unit Cartesian vector.
func Ang2Vec(theta, phi float64) Vec3 {
	sinTheta := math.Sin(theta)

	return Vec3{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: math.Cos(theta),
	}
}

/*****************************************************************************************************************/

// Vec2Ang converts a Cartesian direction to (theta, phi); phi is returned within [0, 2*pi).
func Vec2Ang(v Vec3) (theta, phi float64) {
	norm := v.Norm()

	if norm == 0 {
		return 0, 0
	}

	theta = math.Acos(clamp(v.Z/norm, -1, 1))
	phi = math.Atan2(v.Y, v.X)

	return theta, reducePhi(phi)
}

/*****************************************************************************************************************/
