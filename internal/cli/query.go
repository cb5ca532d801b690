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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/observerly/healpix/pkg/query"
)

/*****************************************************************************************************************/

var QueryCommand = &cobra.Command{
	Use:   "query",
	Short: "query finds every pixel overlapping a disc, polygon, ellipse, or box region",
	Long:  "query finds every pixel overlapping a disc, polygon, ellipse, or box region",
}

/*****************************************************************************************************************/

var (
	queryNside         int64
	queryScheme        string
	queryFact          int64
	queryTheta         float64
	queryPhi           float64
	queryRadius        float64
	queryVertices      []string
	querySemiMajor     float64
	querySemiMinor     float64
	queryAlpha         float64
	queryTheta0        float64
	queryTheta1        float64
	queryPhi0          float64
	queryPhi1          float64
	queryFullLongitude bool
)

/*****************************************************************************************************************/

var DiscCommand = &cobra.Command{
	Use:   "disc",
	Short: "disc finds every pixel overlapping a spherical cap",
	Long:  "disc finds every pixel overlapping a spherical cap",
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunDisc(DiscParams{
			Nside: queryNside, Scheme: queryScheme, Theta: queryTheta, Phi: queryPhi,
			Radius: queryRadius, Fact: queryFact,
		}); err != nil {
			fmt.Println("Error:", err)
			cmd.Usage()
		}
	},
}

/*****************************************************************************************************************/

var PolygonCommand = &cobra.Command{
	Use:   "polygon",
	Short: "polygon finds every pixel overlapping a convex spherical polygon",
	Long:  "polygon finds every pixel overlapping a convex spherical polygon",
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunPolygon(PolygonParams{
			Nside: queryNside, Scheme: queryScheme, Vertices: queryVertices, Fact: queryFact,
		}); err != nil {
			fmt.Println("Error:", err)
			cmd.Usage()
		}
	},
}

/*****************************************************************************************************************/

var EllipseCommand = &cobra.Command{
	Use:   "ellipse",
	Short: "ellipse finds every pixel overlapping a spherical ellipse",
	Long:  "ellipse finds every pixel overlapping a spherical ellipse",
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunEllipse(EllipseParams{
			Nside: queryNside, Scheme: queryScheme, Theta: queryTheta, Phi: queryPhi,
			SemiMajor: querySemiMajor, SemiMinor: querySemiMinor, Alpha: queryAlpha, Fact: queryFact,
		}); err != nil {
			fmt.Println("Error:", err)
			cmd.Usage()
		}
	},
}

/*****************************************************************************************************************/

var BoxCommand = &cobra.Command{
	Use:   "box",
	Short: "box finds every pixel overlapping an axis-aligned (theta, phi) rectangle",
	Long:  "box finds every pixel overlapping an axis-aligned (theta, phi) rectangle",
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunBox(BoxParams{
			Nside: queryNside, Scheme: queryScheme, Theta0: queryTheta0, Theta1: queryTheta1,
			Phi0: queryPhi0, Phi1: queryPhi1, FullLongitude: queryFullLongitude, Fact: queryFact,
		}); err != nil {
			fmt.Println("Error:", err)
			cmd.Usage()
		}
	},
}

/*****************************************************************************************************************/

func init() {
	QueryCommand.AddCommand(DiscCommand)
	QueryCommand.AddCommand(PolygonCommand)
	QueryCommand.AddCommand(EllipseCommand)
	QueryCommand.AddCommand(BoxCommand)

	for _, c := range []*cobra.Command{DiscCommand, PolygonCommand, EllipseCommand, BoxCommand} {
		c.Flags().Int64VarP(&queryNside, "nside", "n", 0, "the HEALPix resolution parameter")
		c.MarkFlagRequired("nside")
		c.Flags().StringVarP(&queryScheme, "scheme", "s", "ring", "the pixel ordering scheme (ring or nest)")
		c.Flags().Int64VarP(&queryFact, "fact", "f", 0, "inclusive-mode oversampling factor (0 for exclusive mode)")
	}

	// example usage: --theta 1.2 --phi 0.5 --radius 0.1
	DiscCommand.Flags().Float64VarP(&queryTheta, "theta", "t", 0, "the disc centre's colatitude, in radians")
	DiscCommand.Flags().Float64VarP(&queryPhi, "phi", "p", 0, "the disc centre's longitude, in radians")
	DiscCommand.Flags().Float64VarP(&queryRadius, "radius", "r", 0, "the disc's angular radius, in radians")

	// example usage: --vertex 0.1,0.2 --vertex 0.3,0.4 --vertex 0.5,0.1
	PolygonCommand.Flags().StringArrayVarP(&queryVertices, "vertex", "v", nil, "a \"theta,phi\" vertex, in radians; repeat for each vertex")

	EllipseCommand.Flags().Float64VarP(&queryTheta, "theta", "t", 0, "the ellipse centre's colatitude, in radians")
	EllipseCommand.Flags().Float64VarP(&queryPhi, "phi", "p", 0, "the ellipse centre's longitude, in radians")
	EllipseCommand.Flags().Float64VarP(&querySemiMajor, "semi-major", "", 0, "the semi-major axis, in radians")
	EllipseCommand.Flags().Float64VarP(&querySemiMinor, "semi-minor", "", 0, "the semi-minor axis, in radians")
	EllipseCommand.Flags().Float64VarP(&queryAlpha, "alpha", "a", 0, "the major-axis orientation, measured east of north, in radians")

	BoxCommand.Flags().Float64VarP(&queryTheta0, "theta0", "", 0, "the box's minimum colatitude, in radians")
	BoxCommand.Flags().Float64VarP(&queryTheta1, "theta1", "", 0, "the box's maximum colatitude, in radians")
	BoxCommand.Flags().Float64VarP(&queryPhi0, "phi0", "", 0, "the box's starting longitude, in radians")
	BoxCommand.Flags().Float64VarP(&queryPhi1, "phi1", "", 0, "the box's ending longitude, in radians")
	BoxCommand.Flags().BoolVarP(&queryFullLongitude, "full-longitude", "", false, "span the entire longitude range at each colatitude")
}

/*****************************************************************************************************************/

// queryResult is the shared JSON shape printed by every query subcommand.
type queryResult struct {
	Npix      int64      `json:"npix"`
	Intervals [][2]int64 `json:"intervals"`
	Warning   string     `json:"warning,omitempty"`
}

/*****************************************************************************************************************/

func printQueryResult(result *query.Result) error {
	intervals := make([][2]int64, result.Pixels.Count())

	for i := range intervals {
		lo, hi := result.Pixels.IntervalAt(i)
		intervals[i] = [2]int64{lo, hi}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "\t")

	return encoder.Encode(queryResult{
		Npix:      result.Pixels.Npix(),
		Intervals: intervals,
		Warning:   result.Warning,
	})
}

/*****************************************************************************************************************/

type DiscParams struct {
	Nside  int64   `json:"nside"`
	Scheme string  `json:"scheme"`
	Theta  float64 `json:"theta"`
	Phi    float64 `json:"phi"`
	Radius float64 `json:"radius"`
	Fact   int64   `json:"fact"`
}

/*****************************************************************************************************************/

func RunDisc(params DiscParams) error {
	scheme, err := parseScheme(params.Scheme)
	if err != nil {
		return err
	}

	hpx, err := healpix.NewHealpixInfo(params.Nside, scheme)
	if err != nil {
		return fmt.Errorf("failed to construct HealpixInfo: %w", err)
	}

	result, err := query.Disc(hpx, params.Theta, params.Phi, params.Radius, params.Fact)
	if err != nil {
		return fmt.Errorf("disc query failed: %w", err)
	}

	return printQueryResult(result)
}

/*****************************************************************************************************************/

type PolygonParams struct {
	Nside    int64    `json:"nside"`
	Scheme   string   `json:"scheme"`
	Vertices []string `json:"vertices"`
	Fact     int64    `json:"fact"`
}

/*****************************************************************************************************************/

func RunPolygon(params PolygonParams) error {
	scheme, err := parseScheme(params.Scheme)
	if err != nil {
		return err
	}

	hpx, err := healpix.NewHealpixInfo(params.Nside, scheme)
	if err != nil {
		return fmt.Errorf("failed to construct HealpixInfo: %w", err)
	}

	vertices := make([]healpix.Vec3, len(params.Vertices))

	for i, raw := range params.Vertices {
		theta, phi, err := parseThetaPhi(raw)
		if err != nil {
			return fmt.Errorf("invalid vertex %q: %w", raw, err)
		}

		vertices[i] = healpix.Ang2Vec(theta, phi)
	}

	result, err := query.Polygon(hpx, vertices, params.Fact)
	if err != nil {
		return fmt.Errorf("polygon query failed: %w", err)
	}

	return printQueryResult(result)
}

/*****************************************************************************************************************/

// parseThetaPhi parses a "theta,phi" CLI argument into its two radian components.
func parseThetaPhi(raw string) (theta, phi float64, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"theta,phi\", got %q", raw)
	}

	theta, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}

	phi, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}

	return theta, phi, nil
}

/*****************************************************************************************************************/

type EllipseParams struct {
	Nside     int64   `json:"nside"`
	Scheme    string  `json:"scheme"`
	Theta     float64 `json:"theta"`
	Phi       float64 `json:"phi"`
	SemiMajor float64 `json:"semiMajor"`
	SemiMinor float64 `json:"semiMinor"`
	Alpha     float64 `json:"alpha"`
	Fact      int64   `json:"fact"`
}

/*****************************************************************************************************************/

func RunEllipse(params EllipseParams) error {
	scheme, err := parseScheme(params.Scheme)
	if err != nil {
		return err
	}

	hpx, err := healpix.NewHealpixInfo(params.Nside, scheme)
	if err != nil {
		return fmt.Errorf("failed to construct HealpixInfo: %w", err)
	}

	result, err := query.Ellipse(hpx, params.Theta, params.Phi, params.SemiMajor, params.SemiMinor, params.Alpha, params.Fact)
	if err != nil {
		return fmt.Errorf("ellipse query failed: %w", err)
	}

	if result.Warning != "" {
		fmt.Fprintln(os.Stderr, "Warning:", result.Warning)
	}

	return printQueryResult(result)
}

/*****************************************************************************************************************/

type BoxParams struct {
	Nside         int64   `json:"nside"`
	Scheme        string  `json:"scheme"`
	Theta0        float64 `json:"theta0"`
	Theta1        float64 `json:"theta1"`
	Phi0          float64 `json:"phi0"`
	Phi1          float64 `json:"phi1"`
	FullLongitude bool    `json:"fullLongitude"`
	Fact          int64   `json:"fact"`
}

/*****************************************************************************************************************/

func RunBox(params BoxParams) error {
	scheme, err := parseScheme(params.Scheme)
	if err != nil {
		return err
	}

	hpx, err := healpix.NewHealpixInfo(params.Nside, scheme)
	if err != nil {
		return fmt.Errorf("failed to construct HealpixInfo: %w", err)
	}

	result, err := query.Box(hpx, params.Theta0, params.Theta1, params.Phi0, params.Phi1, params.FullLongitude, params.Fact)
	if err != nil {
		return fmt.Errorf("box query failed: %w", err)
	}

	if result.Warning != "" {
		fmt.Fprintln(os.Stderr, "Warning:", result.Warning)
	}

	return printQueryResult(result)
}

/*****************************************************************************************************************/
