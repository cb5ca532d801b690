/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package moc

/*****************************************************************************************************************/

import (
	"testing"

	"github.com/observerly/healpix/pkg/healpix"
)

/*****************************************************************************************************************/

func TestNewFromRangesContainsPos(t *testing.T) {
	m, err := NewFromRanges(10, [][2]int64{{0, 4}})
	if err != nil {
		t.Fatalf("NewFromRanges() error = %v", err)
	}

	// A direction whose ang2pix at nside=1024 NEST is 2 should be contained; one whose
	// pixel is 4 should not (per the spec's concrete scenario 5).
	theta2, phi2 := pixCentreAngle(t, m.NsideMax, 2)
	theta4, phi4 := pixCentreAngle(t, m.NsideMax, 4)

	got, err := m.ContainsPos([]float64{theta2, theta4}, []float64{phi2, phi4}, false, false)
	if err != nil {
		t.Fatalf("ContainsPos() error = %v", err)
	}

	if !got[0] {
		t.Errorf("ContainsPos() pixel 2 = false, want true")
	}

	if got[1] {
		t.Errorf("ContainsPos() pixel 4 = true, want false")
	}
}

/*****************************************************************************************************************/

func pixCentreAngle(t *testing.T, nside, pix int64) (theta, phi float64) {
	t.Helper()

	hpx, err := healpix.NewHealpixInfo(nside, healpix.NEST)
	if err != nil {
		t.Fatalf("NewHealpixInfo() error = %v", err)
	}

	theta, phi, err = healpix.Pix2Ang(hpx, pix)
	if err != nil {
		t.Fatalf("Pix2Ang() error = %v", err)
	}

	return theta, phi
}

/*****************************************************************************************************************/

func TestDecodeNUNIQRoundTrip(t *testing.T) {
	cases := []struct {
		order, ipix int64
	}{
		{0, 0}, {0, 11}, {3, 100}, {10, 12345},
	}

	for _, c := range cases {
		n := EncodeNUNIQ(c.order, c.ipix)

		order, ipix, err := decodeNUNIQ(n)
		if err != nil {
			t.Fatalf("decodeNUNIQ(%d) error = %v", n, err)
		}

		if order != c.order || ipix != c.ipix {
			t.Errorf("decodeNUNIQ(%d) = (%d, %d), want (%d, %d)", n, order, ipix, c.order, c.ipix)
		}
	}
}

/*****************************************************************************************************************/

func TestNewFromNUNIQExpandsToOrderMax(t *testing.T) {
	// nuniq for (order=0, ipix=0) is 4; at orderMax=2 this should expand to the interval
	// [0, 16) (4^(2-0) = 16 descendants).
	m, err := NewFromNUNIQ(2, []int64{EncodeNUNIQ(0, 0)})
	if err != nil {
		t.Fatalf("NewFromNUNIQ() error = %v", err)
	}

	if m.Pixels.Npix() != 16 {
		t.Errorf("Npix() = %d, want 16", m.Pixels.Npix())
	}

	if !m.Pixels.Contains(0) || !m.Pixels.Contains(15) {
		t.Errorf("expected pixels 0 and 15 to be covered")
	}

	if m.Pixels.Contains(16) {
		t.Errorf("pixel 16 should not be covered")
	}
}

/*****************************************************************************************************************/

func TestUnionAndIntersection(t *testing.T) {
	a, err := NewFromRanges(4, [][2]int64{{0, 10}})
	if err != nil {
		t.Fatalf("NewFromRanges() error = %v", err)
	}

	b, err := NewFromRanges(4, [][2]int64{{5, 15}})
	if err != nil {
		t.Fatalf("NewFromRanges() error = %v", err)
	}

	union, err := Union(a, b)
	if err != nil {
		t.Fatalf("Union() error = %v", err)
	}

	if union.Pixels.Npix() != 15 {
		t.Errorf("Union().Npix() = %d, want 15", union.Pixels.Npix())
	}

	intersection, err := Intersection(a, b)
	if err != nil {
		t.Fatalf("Intersection() error = %v", err)
	}

	if intersection.Pixels.Npix() != 5 {
		t.Errorf("Intersection().Npix() = %d, want 5", intersection.Pixels.Npix())
	}
}

/*****************************************************************************************************************/

func TestStringIsBounded(t *testing.T) {
	ranges := make([][2]int64, 0, 30)

	for i := int64(0); i < 30; i++ {
		ranges = append(ranges, [2]int64{i * 10, i*10 + 1})
	}

	m, err := NewFromRanges(10, ranges)
	if err != nil {
		t.Fatalf("NewFromRanges() error = %v", err)
	}

	s := m.String()

	if want := "..."; !containsSubstring(s, want) {
		t.Errorf("String() = %q, want it to contain %q", s, want)
	}
}

/*****************************************************************************************************************/

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}

	return false
}

/*****************************************************************************************************************/
