/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package render rasterises a HEALPix pixel footprint (a RangeSet, typically the result of a
// query or a MOC) to a PNG image, either as an equirectangular (theta, phi) projection or as
// an unrolled 4x3 diamond-map of the twelve base faces.
package render

/*****************************************************************************************************************/

import (
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/observerly/healpix/pkg/rangeset"
)

/*****************************************************************************************************************/

// Options configures a rasterisation pass.
type Options struct {
	// Width is the output image width, in pixels.
	Width int

	// Height is the output image height, in pixels. For the equirectangular projection this
	// should be roughly Width/2 to avoid distorting the aspect ratio of the (theta, phi) grid.
	Height int

	// Fill is the colour painted for a direction whose pixel lies within the RangeSet.
	Fill color.Color

	// Background is the colour painted everywhere else.
	Background color.Color
}

/*****************************************************************************************************************/

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 720
	}

	if o.Height <= 0 {
		o.Height = o.Width / 2
	}

	if o.Fill == nil {
		o.Fill = color.RGBA{R: 129, G: 140, B: 248, A: 255}
	}

	if o.Background == nil {
		o.Background = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	}

	return o
}

/*****************************************************************************************************************/

// Raster draws an equirectangular projection of pixels: the output image spans phi in
// [0, 2*pi) across its width and theta in [0, pi] down its height, and every (theta, phi)
// direction is shaded Fill if its hpx.Ang2Pix pixel lies in pixels, otherwise Background.
func Raster(hpx *healpix.HealpixInfo, pixels *rangeset.RangeSet, opts Options) (*gg.Context, error) {
	opts = opts.withDefaults()

	dc := gg.NewContext(opts.Width, opts.Height)

	dc.SetColor(opts.Background)
	dc.Clear()

	for y := 0; y < opts.Height; y++ {
		theta := (float64(y) + 0.5) / float64(opts.Height) * math.Pi

		for x := 0; x < opts.Width; x++ {
			phi := (float64(x) + 0.5) / float64(opts.Width) * 2 * math.Pi

			pix, err := healpix.Ang2Pix(hpx, theta, phi)
			if err != nil {
				return nil, err
			}

			if pixels.Contains(pix) {
				dc.SetColor(opts.Fill)
				dc.SetPixel(x, y)
			}
		}
	}

	return dc, nil
}

/*****************************************************************************************************************/

// EncodePNG rasterises pixels with Raster and encodes the result as a PNG to w.
func EncodePNG(w io.Writer, hpx *healpix.HealpixInfo, pixels *rangeset.RangeSet, opts Options) error {
	dc, err := Raster(hpx, pixels, opts)
	if err != nil {
		return err
	}

	return png.Encode(w, dc.Image())
}

/*****************************************************************************************************************/

// FaceGrid draws an unrolled diamond-map of the twelve HEALPix base faces, arranged on a 4x3
// grid of nside-by-nside tiles according to each Face's south-vertex grid coordinates. Every
// in-face (x, y) cell is shaded Fill if its pixel lies in pixels, otherwise Background; cells
// belonging to no face (the blank corners of the unrolled diamond layout) are left transparent.
func FaceGrid(hp *healpix.HealPIX, pixels *rangeset.RangeSet, opts Options) (*gg.Context, error) {
	opts = opts.withDefaults()

	nside := hp.Info().Nside

	cell := opts.Width / (healpix.BasePixelsPerRow * 2)
	if cell < 1 {
		cell = 1
	}

	width := cell * healpix.BasePixelsPerRow * 2
	height := cell * healpix.BasePixelRows

	dc := gg.NewContext(width, height)

	for faceID := 0; faceID < 12; faceID++ {
		face := healpix.NewFace(faceID)

		span := healpix.BasePixelsPerRow * 2
		originX := ((face.SouthVertexX() - 1) + span) % span
		originY := face.Row()

		dc.SetColor(opts.Background)
		dc.DrawRectangle(float64(originX*cell), float64(originY*cell), float64(cell), float64(cell))
		dc.Fill()

		for fy := int64(0); fy < nside; fy++ {
			for fx := int64(0); fx < nside; fx++ {
				pix, err := hp.GetPixelIndexFromFaceXY(int64(faceID), fx, fy)
				if err != nil {
					return nil, err
				}

				if !pixels.Contains(pix) {
					continue
				}

				px := originX*cell + int(fx*int64(cell)/nside)
				py := originY*cell + int(fy*int64(cell)/nside)

				dc.SetColor(opts.Fill)
				dc.DrawRectangle(float64(px), float64(py), 1, 1)
				dc.Fill()
			}
		}
	}

	return dc, nil
}

/*****************************************************************************************************************/

// EncodeFaceGridPNG rasterises pixels with FaceGrid and encodes the result as a PNG to w.
func EncodeFaceGridPNG(w io.Writer, hp *healpix.HealPIX, pixels *rangeset.RangeSet, opts Options) error {
	dc, err := FaceGrid(hp, pixels, opts)
	if err != nil {
		return err
	}

	return png.Encode(w, dc.Image())
}

/*****************************************************************************************************************/
