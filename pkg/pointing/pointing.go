/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package pointing

/*****************************************************************************************************************/

import "github.com/observerly/healpix/pkg/healpix"

/*****************************************************************************************************************/

// PointingArray is a growable, ordered collection of directions, e.g. the corner samples
// returned by healpix.Boundaries for a whole polygon, or the vertices collected while
// walking a query engine's result.
type PointingArray struct {
	points []healpix.Pointing
}

/*****************************************************************************************************************/

// NewPointingArray returns an empty PointingArray with capacity reserved for n elements.
func NewPointingArray(n int) *PointingArray {
	return &PointingArray{points: make([]healpix.Pointing, 0, n)}
}

/*****************************************************************************************************************/

// Append adds p to the end of the array.
func (a *PointingArray) Append(p healpix.Pointing) {
	a.points = append(a.points, p)
}

/*****************************************************************************************************************/

// Len returns the number of pointings currently held.
func (a *PointingArray) Len() int {
	return len(a.points)
}

/*****************************************************************************************************************/

// At returns the i'th pointing.
func (a *PointingArray) At(i int) healpix.Pointing {
	return a.points[i]
}

/*****************************************************************************************************************/

// Slice returns the underlying pointings as a plain slice. Callers must not mutate it.
func (a *PointingArray) Slice() []healpix.Pointing {
	return a.points
}

/*****************************************************************************************************************/

// Vectors converts every pointing in the array to a unit Cartesian direction.
func (a *PointingArray) Vectors() []healpix.Vec3 {
	out := make([]healpix.Vec3, len(a.points))

	for i, p := range a.points {
		out[i] = healpix.Ang2Vec(p.Theta, p.Phi)
	}

	return out
}

/*****************************************************************************************************************/
