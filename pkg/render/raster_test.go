/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package render

/*****************************************************************************************************************/

import (
	"bytes"
	"testing"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/observerly/healpix/pkg/rangeset"
)

/*****************************************************************************************************************/

func TestRasterFullCoverageDiffersFromEmpty(t *testing.T) {
	hpx, err := healpix.NewHealpixInfo(4, healpix.RING)
	if err != nil {
		t.Fatalf("NewHealpixInfo() error = %v", err)
	}

	pixels := rangeset.New()
	pixels.Add(0, hpx.Npix)

	dc, err := Raster(hpx, pixels, Options{Width: 32, Height: 16})
	if err != nil {
		t.Fatalf("Raster() error = %v", err)
	}

	if dc.Width() != 32 || dc.Height() != 16 {
		t.Errorf("Raster() image = %dx%d, want 32x16", dc.Width(), dc.Height())
	}

	empty := rangeset.New()

	dcEmpty, err := Raster(hpx, empty, Options{Width: 32, Height: 16})
	if err != nil {
		t.Fatalf("Raster() error = %v", err)
	}

	// With every pixel covered the image should differ from the all-background render.
	full := dc.Image()
	blank := dcEmpty.Image()

	differs := false

	for y := 0; y < 16 && !differs; y++ {
		for x := 0; x < 32; x++ {
			if full.At(x, y) != blank.At(x, y) {
				differs = true
				break
			}
		}
	}

	if !differs {
		t.Errorf("Raster() of a fully-covered RangeSet should differ from an empty one")
	}
}

/*****************************************************************************************************************/

func TestEncodePNGWritesNonEmptyOutput(t *testing.T) {
	hpx, err := healpix.NewHealpixInfo(2, healpix.RING)
	if err != nil {
		t.Fatalf("NewHealpixInfo() error = %v", err)
	}

	pixels := rangeset.New()
	pixels.Add(0, 5)

	var buf bytes.Buffer

	if err := EncodePNG(&buf, hpx, pixels, Options{Width: 16, Height: 8}); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	if buf.Len() == 0 {
		t.Errorf("EncodePNG() wrote no bytes")
	}
}

/*****************************************************************************************************************/

func TestFaceGridDrawsWithoutError(t *testing.T) {
	hp, err := healpix.NewHealPIX(4, healpix.NEST)
	if err != nil {
		t.Fatalf("NewHealPIX() error = %v", err)
	}

	pixels := rangeset.New()
	pixels.Add(0, hp.GetNPix())

	dc, err := FaceGrid(hp, pixels, Options{Width: 320})
	if err != nil {
		t.Fatalf("FaceGrid() error = %v", err)
	}

	if dc.Width() <= 0 || dc.Height() <= 0 {
		t.Errorf("FaceGrid() produced an empty image")
	}
}

/*****************************************************************************************************************/

func TestEncodeFaceGridPNGWritesNonEmptyOutput(t *testing.T) {
	hp, err := healpix.NewHealPIX(2, healpix.NEST)
	if err != nil {
		t.Fatalf("NewHealPIX() error = %v", err)
	}

	pixels := rangeset.New()
	pixels.Add(0, 4)

	var buf bytes.Buffer

	if err := EncodeFaceGridPNG(&buf, hp, pixels, Options{Width: 160}); err != nil {
		t.Fatalf("EncodeFaceGridPNG() error = %v", err)
	}

	if buf.Len() == 0 {
		t.Errorf("EncodeFaceGridPNG() wrote no bytes")
	}
}

/*****************************************************************************************************************/
