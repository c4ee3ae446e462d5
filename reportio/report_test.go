package reportio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/coverlut"
	"github.com/marchatpg/marchatpg/faultmodel"
	"github.com/marchatpg/marchatpg/marchtest"
	"github.com/marchatpg/marchatpg/reportio"
	"github.com/marchatpg/marchatpg/tpgen"
)

func identityScenario(t *testing.T) (coverage.SimulationResult, []faultmodel.Fault) {
	t.Helper()
	fp, err := faultmodel.ParsePrimitive("<0;-/1/->")
	require.NoError(t, err)
	fault := faultmodel.Fault{ID: "SA0", Category: faultmodel.EitherReadOrCompute, CellScope: faultmodel.SingleCell, Primitives: []faultmodel.FPExpr{fp}}
	tps := tpgen.Generate(fault)

	lut := coverlut.Build()
	sim := coverage.NewFaultSimulator(lut, []faultmodel.Fault{fault}, tps)

	mt, err := marchtest.Parse("t", "a(W0,R0)")
	require.NoError(t, err)

	return sim.Simulate(mt), []faultmodel.Fault{fault}
}

func TestWriteHTMLProducesWellFormedDocumentWithCoverageData(t *testing.T) {
	result, faults := identityScenario(t)

	var buf bytes.Buffer
	err := reportio.WriteHTML(&buf, result, faults)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, "SA0")
	require.Contains(t, out, "1.0000")
	require.Contains(t, out, "R0")
}

func TestWriteMarkdownProducesTableWithCoverageData(t *testing.T) {
	result, faults := identityScenario(t)

	var buf bytes.Buffer
	err := reportio.WriteMarkdown(&buf, result, faults)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "| Fault ID | Detect Coverage |")
	require.Contains(t, out, "| SA0 | 1.0000 |")
	require.Contains(t, out, "Total coverage: 1.0000")
}

func TestWriteMarkdownSortsFaultsByID(t *testing.T) {
	fault1 := faultmodel.Fault{ID: "ZZZ", CellScope: faultmodel.SingleCell}
	fault2 := faultmodel.Fault{ID: "AAA", CellScope: faultmodel.SingleCell}

	lut := coverlut.Build()
	sim := coverage.NewFaultSimulator(lut, []faultmodel.Fault{fault1, fault2}, nil)
	mt, err := marchtest.Parse("t", "a(W0)")
	require.NoError(t, err)
	result := sim.Simulate(mt)

	var buf bytes.Buffer
	err = reportio.WriteMarkdown(&buf, result, []faultmodel.Fault{fault1, fault2})
	require.NoError(t, err)

	out := buf.String()
	require.Less(t, strings.Index(out, "AAA"), strings.Index(out, "ZZZ"))
}
