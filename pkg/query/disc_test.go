/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package query

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/observerly/healpix/pkg/healpix"
)

/*****************************************************************************************************************/

func TestDiscExclusiveMatchesAngularSeparation(t *testing.T) {
	hpx, err := healpix.NewHealpixInfo(4, healpix.RING)
	if err != nil {
		t.Fatalf("NewHealpixInfo() error = %v", err)
	}

	theta0, phi0, radius := math.Pi/2, 0.0, 0.1

	result, err := Disc(hpx, theta0, phi0, radius, 0)
	if err != nil {
		t.Fatalf("Disc() error = %v", err)
	}

	if result.Warning != "" {
		t.Errorf("Disc() exclusive should never carry a warning, got %q", result.Warning)
	}

	for pix := int64(0); pix < hpx.Npix; pix++ {
		theta, phi, err := healpix.Pix2Ang(hpx, pix)
		if err != nil {
			t.Fatalf("Pix2Ang(%d) error = %v", pix, err)
		}

		d := healpix.AngularSeparation(theta, phi, theta0, phi0)
		want := d <= radius
		got := result.Pixels.Contains(pix)

		if got != want {
			t.Errorf("pix %d: Contains() = %v, want %v (separation %f)", pix, got, want, d)
		}
	}
}

/*****************************************************************************************************************/

func TestDiscInclusiveIsSupersetOfExclusive(t *testing.T) {
	hpx, err := healpix.NewHealpixInfo(8, healpix.NEST)
	if err != nil {
		t.Fatalf("NewHealpixInfo() error = %v", err)
	}

	theta0, phi0, radius := 1.0, 2.0, 0.2

	exclusive, err := Disc(hpx, theta0, phi0, radius, 0)
	if err != nil {
		t.Fatalf("Disc() exclusive error = %v", err)
	}

	inclusive, err := Disc(hpx, theta0, phi0, radius, 4)
	if err != nil {
		t.Fatalf("Disc() inclusive error = %v", err)
	}

	for i := 0; i < exclusive.Pixels.Count(); i++ {
		lo, hi := exclusive.Pixels.IntervalAt(i)

		for pix := lo; pix < hi; pix++ {
			if !inclusive.Pixels.Contains(pix) {
				t.Errorf("pix %d in exclusive result but not inclusive", pix)
			}
		}
	}
}

/*****************************************************************************************************************/

func TestDiscNestAndRingAgreeOnPixelSet(t *testing.T) {
	nside := int64(8)
	theta0, phi0, radius := 0.7, 1.1, 0.15

	hpxRing, err := healpix.NewHealpixInfo(nside, healpix.RING)
	if err != nil {
		t.Fatalf("NewHealpixInfo(RING) error = %v", err)
	}

	hpxNest, err := healpix.NewHealpixInfo(nside, healpix.NEST)
	if err != nil {
		t.Fatalf("NewHealpixInfo(NEST) error = %v", err)
	}

	ringResult, err := Disc(hpxRing, theta0, phi0, radius, 0)
	if err != nil {
		t.Fatalf("Disc(RING) error = %v", err)
	}

	nestResult, err := Disc(hpxNest, theta0, phi0, radius, 0)
	if err != nil {
		t.Fatalf("Disc(NEST) error = %v", err)
	}

	if ringResult.Pixels.Npix() != nestResult.Pixels.Npix() {
		t.Fatalf("RING npix = %d, NEST npix = %d", ringResult.Pixels.Npix(), nestResult.Pixels.Npix())
	}

	for _, ringPix := range ringResult.Pixels.ToSlice() {
		nestPix, err := healpix.Ring2Nest(nside, ringPix)
		if err != nil {
			t.Fatalf("Ring2Nest(%d) error = %v", ringPix, err)
		}

		if !nestResult.Pixels.Contains(nestPix) {
			t.Errorf("ring pixel %d (nest %d) missing from NEST disc result", ringPix, nestPix)
		}
	}
}

/*****************************************************************************************************************/

func TestDiscRejectsOutOfRangeRadius(t *testing.T) {
	hpx, err := healpix.NewHealpixInfo(4, healpix.RING)
	if err != nil {
		t.Fatalf("NewHealpixInfo() error = %v", err)
	}

	if _, err := Disc(hpx, math.Pi/2, 0, 0, 0); err == nil {
		t.Errorf("Disc() with radius 0 should fail")
	}

	if _, err := Disc(hpx, math.Pi/2, 0, 4, 0); err == nil {
		t.Errorf("Disc() with radius > pi should fail")
	}
}

/*****************************************************************************************************************/
