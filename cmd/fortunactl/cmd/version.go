package cmd

import (
	"fmt"

	"github.com/sixafter/semver"
	"github.com/spf13/cobra"
)

// version is set at build time with
// -ldflags="-X github.com/go-fortuna/fortuna/cmd/fortunactl/cmd.version=1.2.3"
var version = "0.0.0-unset"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fortunactl version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := semver.Parse(version)
		if err != nil {
			return fmt.Errorf("built with invalid version string %q: %w", version, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
