package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marchatpg/marchatpg/faultmodel"
	"github.com/marchatpg/marchatpg/reportio"
	"github.com/marchatpg/marchatpg/synth"
)

var templateSweepCmd = &cobra.Command{
	Use:   "template-sweep <max_ops_per_element> <max_elements> [faults.json] [beam_width] [out.json] [out.html]",
	Short: "Sweep the element-template library with greedy and beam search",
	Args:  cobra.RangeArgs(2, 6),
	RunE:  runTemplateSweep,
}

// templateLibrarySlots is the fixed slot count every ElementTemplate in
// synth.Library() carries. The element-template alphabet this command
// draws from was never generalised past three slots per element (see
// DESIGN.md), so a requested max_ops_per_element above this is honoured
// only up to the library's fixed width, with a warning.
const templateLibrarySlots = 3

func runTemplateSweep(cmd *cobra.Command, args []string) error {
	maxOpsPerElement, err := strconv.Atoi(args[0])
	if err != nil {
		return newUsageError(fmt.Errorf("max_ops_per_element must be an integer: %w", err))
	}
	maxElements, err := strconv.Atoi(args[1])
	if err != nil {
		return newUsageError(fmt.Errorf("max_elements must be an integer: %w", err))
	}
	if maxOpsPerElement > templateLibrarySlots {
		logger.Warn().Int("requested", maxOpsPerElement).Int("library_slots", templateLibrarySlots).
			Msg("template library caps elements at a fixed slot count; excess is ignored")
	}

	faultsPath := "faults.json"
	if len(args) > 2 {
		faultsPath = args[2]
	}
	beamWidth := 8
	if len(args) > 3 {
		beamWidth, err = strconv.Atoi(args[3])
		if err != nil {
			return newUsageError(fmt.Errorf("beam_width must be an integer: %w", err))
		}
	}
	var outJSON, outHTML string
	if len(args) > 4 {
		outJSON = args[4]
	}
	if len(args) > 5 {
		outHTML = args[5]
	}

	faults, tps, lut, err := loadFaultUniverse(faultsPath)
	if err != nil {
		return err
	}

	lib := synth.Library()
	if maxOpsPerElement < templateLibrarySlots {
		filtered := make([]synth.ElementTemplate, 0, len(lib))
		for _, t := range lib {
			n := 0
			for _, s := range t.Slots {
				if s != synth.NoneSlot {
					n++
				}
			}
			if n <= maxOpsPerElement {
				filtered = append(filtered, t)
			}
		}
		lib = filtered
	}
	greedy := synth.NewGreedyTemplateSearcher(lut, faults, tps, lib)
	greedyMT, greedyResult := greedy.Run(maxElements)
	logger.Info().Float64("total_coverage", greedyResult.TotalCoverage).Msg("greedy template search complete")

	beam := synth.NewBeamTemplateSearcher(lut, faults, tps, lib, beamWidth)
	candidates := beam.Run(maxElements, 1)

	fmt.Println("greedy:", greedyMT.String())
	fmt.Printf("greedy total_coverage: %.4f\n", greedyResult.TotalCoverage)
	if len(candidates) > 0 {
		fmt.Println("beam best:", candidates[0].MarchTest.String())
		fmt.Printf("beam total_coverage: %.4f\n", candidates[0].Score)
	}

	if outJSON != "" {
		if err := writeSweepJSON(outJSON, greedyMT, greedyResult.TotalCoverage, candidates); err != nil {
			return err
		}
	}
	if outHTML != "" && len(candidates) > 0 {
		if err := writeSweepHTML(outHTML, candidates[0], faults); err != nil {
			return err
		}
	}
	return nil
}

type sweepOutput struct {
	Greedy struct {
		Pattern       string  `json:"pattern"`
		TotalCoverage float64 `json:"total_coverage"`
	} `json:"greedy"`
	Beam []struct {
		Pattern       string  `json:"pattern"`
		TotalCoverage float64 `json:"total_coverage"`
	} `json:"beam"`
}

func writeSweepJSON(path string, greedyMT interface{ String() string }, greedyCov float64, candidates []synth.BeamCandidate) error {
	var out sweepOutput
	out.Greedy.Pattern = greedyMT.String()
	out.Greedy.TotalCoverage = greedyCov
	for _, c := range candidates {
		out.Beam = append(out.Beam, struct {
			Pattern       string  `json:"pattern"`
			TotalCoverage float64 `json:"total_coverage"`
		}{Pattern: c.MarchTest.String(), TotalCoverage: c.Score})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sweep output: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func writeSweepHTML(path string, best synth.BeamCandidate, faults []faultmodel.Fault) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	return reportio.WriteHTML(f, best.Result, faults)
}
