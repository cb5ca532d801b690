/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package batch

/*****************************************************************************************************************/

import (
	"math"
	"testing"

	"github.com/observerly/healpix/pkg/healpix"
)

/*****************************************************************************************************************/

func TestAng2PixBroadcastsScalarNside(t *testing.T) {
	theta := []float64{math.Pi / 2, 1.0, 2.0}
	phi := []float64{0, 1, 2}

	got, err := Ang2Pix(healpix.RING, []int64{4}, theta, phi)
	if err != nil {
		t.Fatalf("Ang2Pix() error = %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Ang2Pix() returned %d results, want 3", len(got))
	}

	hpx, err := healpix.NewHealpixInfo(4, healpix.RING)
	if err != nil {
		t.Fatalf("NewHealpixInfo() error = %v", err)
	}

	for i := range theta {
		want, err := healpix.Ang2Pix(hpx, theta[i], phi[i])
		if err != nil {
			t.Fatalf("Ang2Pix() error = %v", err)
		}

		if got[i] != want {
			t.Errorf("Ang2Pix()[%d] = %d, want %d", i, got[i], want)
		}
	}
}

/*****************************************************************************************************************/

func TestAng2PixVaryingNside(t *testing.T) {
	nside := []int64{2, 4, 8, 16}
	theta := []float64{1, 1, 1, 1}
	phi := []float64{0.5, 0.5, 0.5, 0.5}

	got, err := Ang2Pix(healpix.NEST, nside, theta, phi)
	if err != nil {
		t.Fatalf("Ang2Pix() error = %v", err)
	}

	for i, n := range nside {
		hpx, err := healpix.NewHealpixInfo(n, healpix.NEST)
		if err != nil {
			t.Fatalf("NewHealpixInfo() error = %v", err)
		}

		want, err := healpix.Ang2Pix(hpx, theta[i], phi[i])
		if err != nil {
			t.Fatalf("Ang2Pix() error = %v", err)
		}

		if got[i] != want {
			t.Errorf("Ang2Pix()[%d] (nside=%d) = %d, want %d", i, n, got[i], want)
		}
	}
}

/*****************************************************************************************************************/

func TestAng2PixRejectsMismatchedShapes(t *testing.T) {
	if _, err := Ang2Pix(healpix.RING, []int64{4}, []float64{1, 2, 3}, []float64{1, 2}); err == nil {
		t.Errorf("Ang2Pix() with mismatched lengths 3 and 2 should fail")
	}
}

/*****************************************************************************************************************/

func TestPix2AngAng2PixRoundTrip(t *testing.T) {
	nside := []int64{8}
	pix := []int64{0, 10, 100, 300}

	angles, err := Pix2Ang(healpix.RING, nside, pix)
	if err != nil {
		t.Fatalf("Pix2Ang() error = %v", err)
	}

	theta := make([]float64, len(angles))
	phi := make([]float64, len(angles))

	for i, a := range angles {
		theta[i] = a.Theta
		phi[i] = a.Phi
	}

	roundTrip, err := Ang2Pix(healpix.RING, nside, theta, phi)
	if err != nil {
		t.Fatalf("Ang2Pix() error = %v", err)
	}

	for i, p := range pix {
		if roundTrip[i] != p {
			t.Errorf("round trip [%d] = %d, want %d", i, roundTrip[i], p)
		}
	}
}

/*****************************************************************************************************************/

func TestGetInterpolWeightsSumToOne(t *testing.T) {
	got, err := GetInterpol(healpix.RING, []int64{16}, []float64{1.2}, []float64{0.7})
	if err != nil {
		t.Fatalf("GetInterpol() error = %v", err)
	}

	sum := 0.0
	for _, w := range got[0].Weight {
		sum += w
	}

	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("weights sum to %f, want 1", sum)
	}
}

/*****************************************************************************************************************/
