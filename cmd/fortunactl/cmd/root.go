package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when fortunactl is invoked with no subcommand.
var RootCmd = &cobra.Command{
	Use:   "fortunactl",
	Short: "Inspect and draw from a Fortuna-style entropy generator",
	Long: `fortunactl is a small command-line front end for the fortuna
package: it seeds a generator from the host's platform entropy source,
then lets you check its readiness or draw random words from it.`,
}

// Execute runs the root command, adding all child commands first. Called
// once from main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fortunactl: %v\n", err)
		os.Exit(1)
	}
}
