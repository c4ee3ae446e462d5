package main

import (
	"fmt"

	"github.com/marchatpg/marchatpg/coverlut"
	"github.com/marchatpg/marchatpg/faultmodel"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/tpgen"
)

// loadFaultUniverse loads and normalises a fault catalogue, expands every
// fault into its Test Primitives, and builds the shared CoverLUT once.
func loadFaultUniverse(path string) ([]faultmodel.Fault, []tpgen.TP, *coverlut.Table, error) {
	faults, err := faultmodel.LoadCatalogue(path)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(faults) == 0 {
		return nil, nil, nil, newConstraintError(fmt.Errorf("fault catalogue %s contains no faults", path))
	}

	var tps []tpgen.TP
	for _, f := range faults {
		tps = append(tps, tpgen.Generate(f)...)
	}

	return faults, tps, coverlut.Build(), nil
}

// loadFirstMarchTest loads a March catalogue and parses its first entry.
func loadFirstMarchTest(path string) (marchtest.MarchTest, error) {
	raw, err := marchtest.LoadCatalogue(path)
	if err != nil {
		return marchtest.MarchTest{}, err
	}
	if len(raw) == 0 {
		return marchtest.MarchTest{}, newConstraintError(fmt.Errorf("march catalogue %s contains no tests", path))
	}
	return marchtest.Parse(raw[0].Name, raw[0].Pattern)
}
