package main

import (
	"fmt"
	"time"

	"github.com/parcelrush/blackfriday/assets"
	"github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/scenes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagSeconds float64

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless match with the autopilot",
	Long: `Run a match without a window. The autopilot collects parcels and
throws them at the matching zone. The final score and each zone's tally
are printed when the clock runs out or --seconds have been simulated.

Examples:
  blackfriday sim
  blackfriday sim --seconds 30 --seed 7
  blackfriday sim --config ./hard.yaml --log-level debug`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSeconds, "seconds", 0, "Simulated seconds to run (0 = full match)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	defer zap.L().Sync() //nolint:errcheck

	layout, err := assets.LoadWarehouse()
	if err != nil {
		return err
	}
	e, err := scenes.NewSession(layout, config.World.Seed, scenes.ModeSim)
	if err != nil {
		return err
	}

	seconds := flagSeconds
	if seconds <= 0 {
		seconds = config.Match.Duration.Seconds()
	}
	maxTicks := int(seconds * float64(config.World.TPS))

	start := time.Now()
	result, ticks := scenes.RunHeadless(e, maxTicks)
	zap.L().Info("simulation done",
		zap.Int("ticks", ticks),
		zap.Duration("wall", time.Since(start)),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "layout:  %s\n", layout.Name)
	fmt.Fprintf(out, "time:    %.1fs\n", float64(ticks)*config.Dt())
	fmt.Fprintf(out, "score:   %d\n", result.Score)
	for _, z := range result.Zones {
		fmt.Fprintf(out, "  %-8s %3d parcels  %+d\n", z.Agent, z.Received, z.Score)
	}
	return nil
}
