package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/synth"
	"github.com/marchatpg/marchatpg/synthconfig"
)

var synthGreedyCmd = &cobra.Command{
	Use:   "synth-greedy <faults.json>",
	Short: "Greedily synthesise a March test covering a fault catalogue",
	Args:  cobra.ExactArgs(1),
	RunE:  runSynthGreedy,
}

func runSynthGreedy(cmd *cobra.Command, args []string) error {
	faults, tps, lut, err := loadFaultUniverse(args[0])
	if err != nil {
		return err
	}

	cfg := synthconfig.Default()
	driver := synth.NewGreedySynthDriver(lut, cfg, faults, tps)
	result := driver.Run(marchtest.MarchTest{})

	sim := coverage.NewFaultSimulator(lut, faults, tps)
	simResult := sim.Simulate(result)
	logger.Info().Float64("total_coverage", simResult.TotalCoverage).Msg("greedy synthesis complete")

	fmt.Println(result.String())
	fmt.Printf("total_coverage: %.4f\n", simResult.TotalCoverage)
	return nil
}
