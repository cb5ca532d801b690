/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

// Pointing is a single (theta, phi) direction on the sphere, in radians.
type Pointing struct {
	Theta float64
	Phi   float64
}

/*****************************************************************************************************************/
