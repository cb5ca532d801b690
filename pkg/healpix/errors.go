/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

import "errors"

/*****************************************************************************************************************/

// ErrOutOfRange is returned whenever an nside, pixel identifier, angle, radius, fact or
// semi-axis argument falls outside the domain the operation requires.
var ErrOutOfRange = errors.New("healpix: value out of range")

// ErrShapeMismatch is returned by the batched driver when broadcasting inputs of
// incompatible shapes.
var ErrShapeMismatch = errors.New("healpix: shape mismatch")

// ErrBadPolygon is returned when a polygon query is given fewer than three vertices, a
// degenerate consecutive pair, a non-convex corner, or a self-intersecting boundary.
var ErrBadPolygon = errors.New("healpix: invalid polygon")

// ErrInternal marks an invariant violated inside a query engine; it should be unreachable
// for validated inputs.
var ErrInternal = errors.New("healpix: internal invariant violated")

/*****************************************************************************************************************/
