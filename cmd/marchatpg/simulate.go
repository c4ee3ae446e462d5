package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/reportio"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <faults.json> <march.json> <output.html>",
	Short: "Simulate a March test against a fault catalogue and write an HTML report",
	Args:  cobra.ExactArgs(3),
	RunE:  runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	faultsPath, marchPath, outPath := args[0], args[1], args[2]

	faults, tps, lut, err := loadFaultUniverse(faultsPath)
	if err != nil {
		return err
	}
	mt, err := loadFirstMarchTest(marchPath)
	if err != nil {
		return err
	}

	sim := coverage.NewFaultSimulator(lut, faults, tps)
	result := sim.Simulate(mt)
	logger.Info().Str("march_test", mt.Name).Float64("total_coverage", result.TotalCoverage).Msg("simulation complete")

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer out.Close()

	if err := reportio.WriteHTML(out, result, faults); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
