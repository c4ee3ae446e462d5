package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/reportio"
	"github.com/marchatpg/marchatpg/synth"
	"github.com/marchatpg/marchatpg/synthconfig"
)

var (
	lookaheadK      int
	lookaheadTarget float64
	lookaheadAlpha  float64
	lookaheadBeta   float64
	lookaheadGamma  float64
	lookaheadLambda float64
	lookaheadMaxOps int
	lookaheadHTML   string
)

var synthLookaheadCmd = &cobra.Command{
	Use:   "synth-lookahead <faults.json>",
	Short: "Synthesise a March test via depth-k look-ahead",
	Args:  cobra.ExactArgs(1),
	RunE:  runSynthLookahead,
}

func init() {
	flags := synthLookaheadCmd.Flags()
	flags.IntVar(&lookaheadK, "k", 1, "look-ahead depth")
	flags.Float64Var(&lookaheadTarget, "target", 0, "target coverage (0 keeps the config default)")
	flags.Float64Var(&lookaheadAlpha, "alpha", 0, "state-coverage weight override (0 keeps the config default)")
	flags.Float64Var(&lookaheadBeta, "beta", 0, "sens-coverage weight override (0 keeps the config default)")
	flags.Float64Var(&lookaheadGamma, "gamma", 0, "detect-coverage weight override (0 keeps the config default)")
	flags.Float64Var(&lookaheadLambda, "lambda", 0, "masking-penalty weight override (0 keeps the config default)")
	flags.IntVar(&lookaheadMaxOps, "max-ops", 0, "op budget override (0 keeps the config default)")
	flags.StringVar(&lookaheadHTML, "html", "", "optional path to also write an HTML report")
}

func runSynthLookahead(cmd *cobra.Command, args []string) error {
	faults, tps, lut, err := loadFaultUniverse(args[0])
	if err != nil {
		return err
	}

	cfg := synthconfig.Default()
	if lookaheadTarget > 0 {
		cfg.TargetCoverage = lookaheadTarget
	}
	if lookaheadAlpha > 0 {
		cfg.AlphaState = lookaheadAlpha
	}
	if lookaheadBeta > 0 {
		cfg.BetaSens = lookaheadBeta
	}
	if lookaheadGamma > 0 {
		cfg.GammaDetect = lookaheadGamma
	}
	if lookaheadLambda > 0 {
		cfg.LambdaMask = lookaheadLambda
	}
	if lookaheadMaxOps > 0 {
		cfg.MaxOps = lookaheadMaxOps
	}

	driver := synth.NewKLookaheadSynthDriver(lut, cfg, faults, tps, lookaheadK)
	result := driver.Run(marchtest.MarchTest{})

	sim := coverage.NewFaultSimulator(lut, faults, tps)
	simResult := sim.Simulate(result)
	logger.Info().Int("k", lookaheadK).Float64("total_coverage", simResult.TotalCoverage).Msg("look-ahead synthesis complete")

	fmt.Println(result.String())
	fmt.Printf("total_coverage: %.4f\n", simResult.TotalCoverage)

	if lookaheadHTML != "" {
		out, err := os.Create(lookaheadHTML)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer out.Close()
		if err := reportio.WriteHTML(out, simResult, faults); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
