/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package projection

/*****************************************************************************************************************/

import (
	"math"
	"testing"
)

/*****************************************************************************************************************/

func floatEquals(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

/*****************************************************************************************************************/

func TestRadians(t *testing.T) {
	cases := []struct {
		degrees  float64
		expected float64
	}{
		{0, 0},
		{180, math.Pi},
		{90, math.Pi / 2},
		{360, 2 * math.Pi},
	}

	for _, c := range cases {
		if got := Radians(c.degrees); !floatEquals(got, c.expected, 1e-12) {
			t.Errorf("Radians(%f) = %f, want %f", c.degrees, got, c.expected)
		}
	}
}

/*****************************************************************************************************************/

func TestDegrees(t *testing.T) {
	cases := []struct {
		radians  float64
		expected float64
	}{
		{0, 0},
		{math.Pi, 180},
		{math.Pi / 2, 90},
		{2 * math.Pi, 360},
	}

	for _, c := range cases {
		if got := Degrees(c.radians); !floatEquals(got, c.expected, 1e-9) {
			t.Errorf("Degrees(%f) = %f, want %f", c.radians, got, c.expected)
		}
	}
}

/*****************************************************************************************************************/

func TestRadiansDegreesRoundTrip(t *testing.T) {
	for _, degrees := range []float64{0, 12.5, 45, 89.999, 180, 270, 359.999} {
		if got := Degrees(Radians(degrees)); !floatEquals(got, degrees, 1e-9) {
			t.Errorf("round trip: Degrees(Radians(%f)) = %f", degrees, got)
		}
	}
}

/*****************************************************************************************************************/
