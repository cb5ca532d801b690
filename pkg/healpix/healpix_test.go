/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package healpix

/*****************************************************************************************************************/

import (
	"fmt"
	"math"
	"testing"

	"github.com/observerly/healpix/pkg/astrometry"
)

/*****************************************************************************************************************/

func TestHealpixGetNSide(t *testing.T) {
	hp, err := NewHealPIX(2, RING)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hp.GetNSide() != 2 {
		t.Errorf("Expected NSide=2, Got NSide=%d", hp.GetNSide())
	}
}

/*****************************************************************************************************************/

func TestHealpixGetPixelArea(t *testing.T) {
	expectedPixelAreas := map[int64]float64{
		128:  0.209823,
		256:  0.052456,
		512:  0.013114,
		1024: 0.003278,
	}

	for _, nside := range []int64{128, 256, 512, 1024} {
		t.Run(fmt.Sprintf("NSide=%d,Scheme=RING", nside), func(t *testing.T) {
			hp, err := NewHealPIX(nside, RING)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			area := hp.GetPixelArea()
			expected := expectedPixelAreas[nside]

			if math.Abs(area-expected) > 1e-6 {
				t.Errorf(
					"RING Scheme: NSide=%d => Expected Pixel Area=%.6f, Got Pixel Area=%.6f",
					nside, expected, area,
				)
			}
		})
	}
}

/*****************************************************************************************************************/

func TestHealpixGetPixelRadialExtent(t *testing.T) {
	expectedRadialExtents := map[int64]float64{
		128:  0.2584,
		256:  0.1292,
		512:  0.0646,
		1024: 0.0323,
	}

	tolerance := 1e-4

	for _, nside := range []int64{128, 256, 512, 1024} {
		t.Run(fmt.Sprintf("NSide=%d,Scheme=RING", nside), func(t *testing.T) {
			hp, err := NewHealPIX(nside, RING)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			extent := hp.GetPixelRadialExtent(0)
			expected := expectedRadialExtents[nside]

			if diff := math.Abs(extent - expected); diff > tolerance {
				t.Errorf(
					"RING Scheme: NSide=%d => Expected Radial Extent=%.6f°, Got=%.6f° (diff=%.6f°)",
					nside, expected, extent, diff,
				)
			}
		})
	}
}

/*****************************************************************************************************************/

func TestHealpixNorthPole(t *testing.T) {
	coord := astrometry.ICRSEquatorialCoordinate{RA: 0, Dec: 90}

	expectedPixelsRING := map[int64]int64{1: 0, 2: 0, 4: 0, 8: 0}
	expectedPixelsNESTED := map[int64]int64{1: 0, 2: 3, 4: 15, 8: 63}

	for _, nside := range []int64{1, 2, 4, 8} {
		t.Run(fmt.Sprintf("NSide=%d,Scheme=RING", nside), func(t *testing.T) {
			hp, err := NewHealPIX(nside, RING)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			pix, err := hp.ConvertEquatorialToPixelIndex(coord)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if pix != expectedPixelsRING[nside] {
				t.Errorf("Expected pix=%d, Got pix=%d", expectedPixelsRING[nside], pix)
			}
		})

		t.Run(fmt.Sprintf("NSide=%d,Scheme=NEST", nside), func(t *testing.T) {
			hp, err := NewHealPIX(nside, NEST)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			pix, err := hp.ConvertEquatorialToPixelIndex(coord)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if pix != expectedPixelsNESTED[nside] {
				t.Errorf("Expected pix=%d, Got pix=%d", expectedPixelsNESTED[nside], pix)
			}
		})
	}
}

/*****************************************************************************************************************/

func TestHealpixAng2PixPix2AngRoundTrip(t *testing.T) {
	hp, err := NewHealPIX(64, RING)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for pix := int64(0); pix < hp.GetNPix(); pix += 97 {
		theta, phi, err := Pix2Ang(hp.info, pix)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := Ang2Pix(hp.info, theta, phi)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != pix {
			t.Errorf("pix=%d: round trip via (theta, phi) gave pix=%d", pix, got)
		}
	}
}

/*****************************************************************************************************************/

func TestHealpixRing2NestRoundTrip(t *testing.T) {
	nside := int64(32)

	npix := 12 * nside * nside

	for pix := int64(0); pix < npix; pix += 53 {
		nest, err := Ring2Nest(nside, pix)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		back, err := Nest2Ring(nside, nest)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if back != pix {
			t.Errorf("pix=%d: ring -> nest -> ring gave %d", pix, back)
		}
	}
}

/*****************************************************************************************************************/

func TestHealpixNeighboursAreMutual(t *testing.T) {
	hp, err := NewHealPIX(16, NEST)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for pix := int64(0); pix < hp.GetNPix(); pix += 29 {
		neighbours, err := hp.GetNeighbouringPixels(pix)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, n := range neighbours {
			if n < 0 {
				continue
			}

			theirs, err := hp.GetNeighbouringPixels(n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			found := false

			for _, m := range theirs {
				if m == pix {
					found = true
					break
				}
			}

			if !found {
				t.Errorf("pix=%d has neighbour %d, but %d does not list %d back", pix, n, n, pix)
			}
		}
	}
}

/*****************************************************************************************************************/

func TestHealpixBoundariesFourCorners(t *testing.T) {
	hp, err := NewHealPIX(8, NEST)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for pix := int64(0); pix < hp.GetNPix(); pix += 17 {
		corners, err := Boundaries(hp.info, pix, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(corners) != 4 {
			t.Fatalf("pix=%d: expected 4 corners, got %d", pix, len(corners))
		}

		centre, err := Pix2Vec(hp.info, pix)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, c := range corners {
			v := Ang2Vec(c.Theta, c.Phi)

			if d := centre.AngTo(v); d <= 0 || d > math.Pi/4 {
				t.Errorf("pix=%d: corner too far from centre: %.6f rad", pix, d)
			}
		}
	}
}

/*****************************************************************************************************************/

func TestHealpixGetInterpolWeightsSumToOne(t *testing.T) {
	nside := int64(32)

	thetas := []float64{0.1, 0.5, 1.0, 1.5707, 2.2, 3.0}
	phis := []float64{0.0, 0.7, 2.1, 4.5, 6.0}

	for _, theta := range thetas {
		for _, phi := range phis {
			_, weight, err := GetInterpol(nside, theta, phi)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			sum := weight[0] + weight[1] + weight[2] + weight[3]

			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("theta=%.4f phi=%.4f: weights sum to %.9f, want 1", theta, phi, sum)
			}
		}
	}
}

/*****************************************************************************************************************/

func TestHealpixGetPixelIndicesFromEquatorialRadialRegion(t *testing.T) {
	hp, err := NewHealPIX(32, RING)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	coord := astrometry.ICRSEquatorialCoordinate{RA: 10, Dec: 45}

	pixels, err := hp.GetPixelIndicesFromEquatorialRadialRegion(coord, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pixels) == 0 {
		t.Fatalf("expected at least one pixel in region, got none")
	}

	centre, err := hp.ConvertEquatorialToPixelIndex(coord)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false

	for _, p := range pixels {
		if p == centre {
			found = true
			break
		}
	}

	if !found {
		t.Errorf("expected centre pixel %d to be included in its own query region", centre)
	}
}

/*****************************************************************************************************************/
