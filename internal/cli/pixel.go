/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cli

/*****************************************************************************************************************/

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var (
	pixelNside  int64
	pixelScheme string
	pixelTheta  float64
	pixelPhi    float64
	pixelPix    int64
)

/*****************************************************************************************************************/

var Ang2PixCommand = &cobra.Command{
	Use:   "ang2pix",
	Short: "ang2pix resolves the pixel index containing a given (theta, phi) direction",
	Long:  "ang2pix resolves the pixel index containing a given (theta, phi) direction",
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunAng2Pix(Ang2PixParams{
			Nside:  pixelNside,
			Scheme: pixelScheme,
			Theta:  pixelTheta,
			Phi:    pixelPhi,
		}); err != nil {
			fmt.Println("Error:", err)
			cmd.Usage()
		}
	},
}

/*****************************************************************************************************************/

var Pix2AngCommand = &cobra.Command{
	Use:   "pix2ang",
	Short: "pix2ang resolves the (theta, phi) direction of a pixel's centre",
	Long:  "pix2ang resolves the (theta, phi) direction of a pixel's centre",
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunPix2Ang(Pix2AngParams{
			Nside:  pixelNside,
			Scheme: pixelScheme,
			Pix:    pixelPix,
		}); err != nil {
			fmt.Println("Error:", err)
			cmd.Usage()
		}
	},
}

/*****************************************************************************************************************/

func init() {
	// example usage: --nside 64
	Ang2PixCommand.Flags().Int64VarP(&pixelNside, "nside", "n", 0, "the HEALPix resolution parameter")
	Ang2PixCommand.MarkFlagRequired("nside")

	// example usage: --scheme nest
	Ang2PixCommand.Flags().StringVarP(&pixelScheme, "scheme", "s", "ring", "the pixel ordering scheme (ring or nest)")

	// example usage: --theta 1.2 --phi 0.5
	Ang2PixCommand.Flags().Float64VarP(&pixelTheta, "theta", "t", 0, "the colatitude, in radians, measured from the north pole")
	Ang2PixCommand.Flags().Float64VarP(&pixelPhi, "phi", "p", 0, "the longitude, in radians")

	Pix2AngCommand.Flags().Int64VarP(&pixelNside, "nside", "n", 0, "the HEALPix resolution parameter")
	Pix2AngCommand.MarkFlagRequired("nside")

	Pix2AngCommand.Flags().StringVarP(&pixelScheme, "scheme", "s", "ring", "the pixel ordering scheme (ring or nest)")

	Pix2AngCommand.Flags().Int64VarP(&pixelPix, "pix", "i", 0, "the pixel index")
}

/*****************************************************************************************************************/

type Ang2PixParams struct {
	Nside  int64   `json:"nside"`
	Scheme string  `json:"scheme"`
	Theta  float64 `json:"theta"`
	Phi    float64 `json:"phi"`
}

/*****************************************************************************************************************/

func RunAng2Pix(params Ang2PixParams) error {
	scheme, err := parseScheme(params.Scheme)
	if err != nil {
		return err
	}

	hpx, err := healpix.NewHealpixInfo(params.Nside, scheme)
	if err != nil {
		return fmt.Errorf("failed to construct HealpixInfo: %w", err)
	}

	pix, err := healpix.Ang2Pix(hpx, params.Theta, params.Phi)
	if err != nil {
		return fmt.Errorf("ang2pix failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "\t")

	return encoder.Encode(map[string]int64{"pix": pix})
}

/*****************************************************************************************************************/

type Pix2AngParams struct {
	Nside  int64  `json:"nside"`
	Scheme string `json:"scheme"`
	Pix    int64  `json:"pix"`
}

/*****************************************************************************************************************/

func RunPix2Ang(params Pix2AngParams) error {
	scheme, err := parseScheme(params.Scheme)
	if err != nil {
		return err
	}

	hpx, err := healpix.NewHealpixInfo(params.Nside, scheme)
	if err != nil {
		return fmt.Errorf("failed to construct HealpixInfo: %w", err)
	}

	theta, phi, err := healpix.Pix2Ang(hpx, params.Pix)
	if err != nil {
		return fmt.Errorf("pix2ang failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "\t")

	return encoder.Encode(map[string]float64{"theta": theta, "phi": phi})
}

/*****************************************************************************************************************/
