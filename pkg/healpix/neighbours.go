/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

import "math"

/*****************************************************************************************************************/

// pushFactor scales how far a boundary sample is carried past a pixel's own edge before
// being handed to Ang2Pix, so that the probe point lands inside the neighbouring pixel
// rather than exactly on the shared boundary.
const pushFactor = 1.25

/*****************************************************************************************************************/

// Neighbours returns the (up to) eight pixels adjacent to pix, in the fixed order
// SW, W, NW, N, NE, E, SE, S. A slot holds -1 where pix has no neighbour in that direction,
// which occurs only at the eight singular points nearest the poles.
func Neighbours(hpx *HealpixInfo, pix int64) ([8]int64, error) {
	var out [8]int64

	if pix < 0 || pix >= hpx.Npix {
		return out, ErrOutOfRange
	}

	centre, err := Pix2Vec(hpx, pix)
	if err != nil {
		return out, err
	}

	corners, err := Boundaries(hpx, pix, 2)
	if err != nil {
		return out, err
	}

	// corners holds, in order: S, SW-mid, W, NW-mid, N, NE-mid, E, SE-mid. Pixels are
	// diamond-shaped in the face-local grid, so the pixels sharing a full edge with pix are
	// found beyond the edge midpoints, and the pixels touching only a corner are found
	// beyond the corners themselves.
	sources := [8]int{1, 2, 3, 4, 5, 6, 7, 0}

	nominal := math.Sqrt(4 * math.Pi / float64(hpx.Npix))

	for i, src := range sources {
		boundary := Ang2Vec(corners[src].Theta, corners[src].Phi)

		probe := centre.Add(boundary.Sub(centre).Scale(pushFactor))

		candidate, err := Vec2Pix(hpx, probe)
		if err != nil {
			return out, err
		}

		if candidate == pix {
			out[i] = -1
			continue
		}

		candidateCentre, err := Pix2Vec(hpx, candidate)
		if err != nil {
			return out, err
		}

		if centre.AngTo(candidateCentre) > 3*nominal {
			out[i] = -1
			continue
		}

		out[i] = candidate
	}

	return out, nil
}

/*****************************************************************************************************************/
