package reportio

import (
	"fmt"
	"io"

	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/faultmodel"
)

// WriteMarkdown renders the same data as WriteHTML as a terminal-friendly
// Markdown summary: a fault coverage table followed by the op table.
func WriteMarkdown(w io.Writer, result coverage.SimulationResult, faults []faultmodel.Fault) error {
	ops, frows := buildRows(result, faults)

	if _, err := fmt.Fprintf(w, "# March ATPG Coverage Report\n\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "## Fault Coverage\n\n| Fault ID | Detect Coverage |\n|---|---|\n"); err != nil {
		return err
	}
	for _, f := range frows {
		if _, err := fmt.Fprintf(w, "| %s | %.4f |\n", f.ID, f.DetectCoverage); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n**Total coverage: %.4f**\n\n", result.TotalCoverage); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "## Operation Table\n\n| # | Elem | Order | Op | Key | State | Sens | Det |\n|---|---|---|---|---|---|---|---|\n"); err != nil {
		return err
	}
	for _, r := range ops {
		if _, err := fmt.Fprintf(w, "| %d | %d | %s | %s | %d | %v | %v | %v |\n",
			r.Index, r.ElemIndex, r.Order, r.Op, r.Key, r.StateCover, r.SensCover, r.DetCover); err != nil {
			return err
		}
	}

	return nil
}
