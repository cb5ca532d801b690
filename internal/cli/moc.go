/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cli

/*****************************************************************************************************************/

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/observerly/healpix/pkg/moc"
	"github.com/observerly/healpix/pkg/render"
)

/*****************************************************************************************************************/

var MOCCommand = &cobra.Command{
	Use:   "moc",
	Short: "moc builds, stores, and renders Multi-Order Coverage maps",
	Long:  "moc builds, stores, and renders Multi-Order Coverage maps",
}

/*****************************************************************************************************************/

var (
	mocOrderMax  int64
	mocRanges    []string
	mocStorePath string
	mocID        string
	mocOutput    string
	mocMode      string
	mocWidth     int
)

/*****************************************************************************************************************/

var MOCBuildCommand = &cobra.Command{
	Use:   "build",
	Short: "build assembles a MOC from explicit NEST pixel ranges and saves it to a sqlite store",
	Long:  "build assembles a MOC from explicit NEST pixel ranges and saves it to a sqlite store",
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunMOCBuild(MOCBuildParams{
			OrderMax:  mocOrderMax,
			Ranges:    mocRanges,
			StorePath: mocStorePath,
		}); err != nil {
			fmt.Println("Error:", err)
			cmd.Usage()
		}
	},
}

/*****************************************************************************************************************/

var MOCRenderCommand = &cobra.Command{
	Use:   "render",
	Short: "render rasterises a stored MOC to a PNG image",
	Long:  "render rasterises a stored MOC to a PNG image",
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunMOCRender(MOCRenderParams{
			StorePath: mocStorePath,
			ID:        mocID,
			Output:    mocOutput,
			Mode:      mocMode,
			Width:     mocWidth,
		}); err != nil {
			fmt.Println("Error:", err)
			cmd.Usage()
		}
	},
}

/*****************************************************************************************************************/

func init() {
	MOCCommand.AddCommand(MOCBuildCommand)
	MOCCommand.AddCommand(MOCRenderCommand)

	// example usage: --order-max 6 --range 0:100 --range 500:600 --store ./mocs.sqlite
	MOCBuildCommand.Flags().Int64VarP(&mocOrderMax, "order-max", "o", 0, "the MOC's maximum HEALPix order")
	MOCBuildCommand.MarkFlagRequired("order-max")
	MOCBuildCommand.Flags().StringArrayVarP(&mocRanges, "range", "r", nil, "a \"lo:hi\" NEST pixel range at order-max; repeat for each range")
	MOCBuildCommand.MarkFlagRequired("range")
	MOCBuildCommand.Flags().StringVarP(&mocStorePath, "store", "", "./healpix-mocs.sqlite", "the sqlite database file backing the MOC store")

	// example usage: --id <ulid> --output ./footprint.png --mode facegrid
	MOCRenderCommand.Flags().StringVarP(&mocStorePath, "store", "", "./healpix-mocs.sqlite", "the sqlite database file backing the MOC store")
	MOCRenderCommand.Flags().StringVarP(&mocID, "id", "i", "", "the stored MOC's id")
	MOCRenderCommand.MarkFlagRequired("id")
	MOCRenderCommand.Flags().StringVarP(&mocOutput, "output", "", "./footprint.png", "the output PNG file path")
	MOCRenderCommand.Flags().StringVarP(&mocMode, "mode", "m", "equirectangular", "the rasterisation mode (equirectangular or facegrid)")
	MOCRenderCommand.Flags().IntVarP(&mocWidth, "width", "w", 720, "the output image width, in pixels")
}

/*****************************************************************************************************************/

type MOCBuildParams struct {
	OrderMax  int64    `json:"orderMax"`
	Ranges    []string `json:"ranges"`
	StorePath string   `json:"storePath"`
}

/*****************************************************************************************************************/

func RunMOCBuild(params MOCBuildParams) error {
	ranges := make([][2]int64, len(params.Ranges))

	for i, raw := range params.Ranges {
		lo, hi, err := parseRange(raw)
		if err != nil {
			return fmt.Errorf("invalid range %q: %w", raw, err)
		}

		ranges[i] = [2]int64{lo, hi}
	}

	m, err := moc.NewFromRanges(params.OrderMax, ranges)
	if err != nil {
		return fmt.Errorf("failed to build MOC: %w", err)
	}

	store, err := moc.OpenStore(params.StorePath)
	if err != nil {
		return fmt.Errorf("failed to open MOC store: %w", err)
	}

	id, err := store.Save(m)
	if err != nil {
		return fmt.Errorf("failed to save MOC: %w", err)
	}

	fmt.Printf("Saved MOC %s covering %d pixels at order %d\n", id, m.Pixels.Npix(), m.OrderMax)

	return nil
}

/*****************************************************************************************************************/

// parseRange parses a "lo:hi" CLI argument into its two pixel-index bounds.
func parseRange(raw string) (lo, hi int64, err error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"lo:hi\", got %q", raw)
	}

	lo, err = strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, err
	}

	hi, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, err
	}

	return lo, hi, nil
}

/*****************************************************************************************************************/

type MOCRenderParams struct {
	StorePath string `json:"storePath"`
	ID        string `json:"id"`
	Output    string `json:"output"`
	Mode      string `json:"mode"`
	Width     int    `json:"width"`
}

/*****************************************************************************************************************/

func RunMOCRender(params MOCRenderParams) error {
	store, err := moc.OpenStore(params.StorePath)
	if err != nil {
		return fmt.Errorf("failed to open MOC store: %w", err)
	}

	m, err := store.Load(params.ID)
	if err != nil {
		return fmt.Errorf("failed to load MOC %s: %w", params.ID, err)
	}

	outputFile, err := os.Create(params.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outputFile.Close()

	opts := render.Options{Width: params.Width}

	switch params.Mode {
	case "facegrid":
		hp, err := healpix.NewHealPIX(m.NsideMax, healpix.NEST)
		if err != nil {
			return fmt.Errorf("failed to construct HealPIX: %w", err)
		}

		if err := render.EncodeFaceGridPNG(outputFile, hp, m.Pixels, opts); err != nil {
			return fmt.Errorf("failed to render face grid: %w", err)
		}
	case "equirectangular":
		hpx, err := healpix.NewHealpixInfo(m.NsideMax, healpix.NEST)
		if err != nil {
			return fmt.Errorf("failed to construct HealpixInfo: %w", err)
		}

		if err := render.EncodePNG(outputFile, hpx, m.Pixels, opts); err != nil {
			return fmt.Errorf("failed to render equirectangular projection: %w", err)
		}
	default:
		return fmt.Errorf("unknown render mode %q: expected \"equirectangular\" or \"facegrid\"", params.Mode)
	}

	fmt.Printf("Rendered MOC %s to %s\n", params.ID, params.Output)

	return nil
}

/*****************************************************************************************************************/
