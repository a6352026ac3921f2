package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-fortuna/fortuna"
	"github.com/spf13/cobra"
)

var statusParanoia uint

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report readiness and progress for a freshly seeded generator",
	RunE:  runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
	statusCmd.Flags().UintVarP(&statusParanoia, "paranoia", "p", 0, "paranoia level, 0-10")
}

func runStatus(cmd *cobra.Command, args []string) error {
	if statusParanoia > 10 {
		return fmt.Errorf("--paranoia must be 0-10")
	}

	g, err := fortuna.NewGenerator()
	if err != nil {
		return fmt.Errorf("initializing generator: %w", err)
	}
	if err := g.StartCollectors(); err != nil {
		return fmt.Errorf("seeding from platform source: %w", err)
	}

	state, err := g.IsReady(&statusParanoia)
	if err != nil {
		return err
	}
	progress, err := g.GetProgress(&statusParanoia)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ready: %v\n", state&fortuna.Ready != 0)
	fmt.Fprintf(out, "progress: %s%%\n", humanize.CommafWithDigits(progress*100, 1))
	fmt.Fprintf(out, "next reseed: %s\n", humanize.Time(g.NextReseedAt()))
	fmt.Fprintf(out, "pool strength: %s\n", humanize.Bytes(g.PoolStrengthBytes()))
	return nil
}
