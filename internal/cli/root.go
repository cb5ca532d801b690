/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package cli

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var RootCommand = &cobra.Command{
	Use:   "healpixctl",
	Short: "healpixctl is a command-line tool for HEALPix pixelization, querying, and coverage maps.",
	Long:  "healpixctl is a command-line tool for HEALPix pixelization, querying, and coverage maps.",
}

/*****************************************************************************************************************/

func init() {
	RootCommand.AddCommand(Ang2PixCommand)
	RootCommand.AddCommand(Pix2AngCommand)
	RootCommand.AddCommand(QueryCommand)
	RootCommand.AddCommand(MOCCommand)
}

/*****************************************************************************************************************/

func Execute() {
	if err := RootCommand.Execute(); err != nil {
		panic(err)
	}
}

/*****************************************************************************************************************/

// parseScheme resolves a --scheme flag value ("ring" or "nest") to a healpix.Scheme.
func parseScheme(scheme string) (healpix.Scheme, error) {
	switch scheme {
	case "ring":
		return healpix.RING, nil
	case "nest":
		return healpix.NEST, nil
	default:
		return 0, fmt.Errorf("unknown scheme %q: expected \"ring\" or \"nest\"", scheme)
	}
}

/*****************************************************************************************************************/
