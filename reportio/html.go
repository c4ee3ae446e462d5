package reportio

import (
	"html/template"
	"io"

	"github.com/marchatpg/marchatpg/coverage"
	"github.com/marchatpg/marchatpg/faultmodel"
)

var htmlReportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>March ATPG Coverage Report</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; margin-bottom: 2rem; }
th, td { border: 1px solid #ccc; padding: 0.25rem 0.5rem; text-align: left; }
th { background: #f0f0f0; }
.total { font-weight: bold; }
</style>
</head>
<body>
<h1>March ATPG Coverage Report</h1>

<h2>Fault Coverage</h2>
<table>
<tr><th>Fault ID</th><th>Detect Coverage</th></tr>
{{range .Faults}}<tr><td>{{.ID}}</td><td>{{printf "%.4f" .DetectCoverage}}</td></tr>
{{end}}
</table>
<p class="total">Total coverage: {{printf "%.4f" .TotalCoverage}}</p>

<h2>Operation Table</h2>
<table>
<tr><th>#</th><th>Elem</th><th>Order</th><th>Op</th><th>Key</th><th>State Cover</th><th>Sens Cover</th><th>Det Cover</th></tr>
{{range .Ops}}<tr>
<td>{{.Index}}</td><td>{{.ElemIndex}}</td><td>{{.Order}}</td><td>{{.Op}}</td><td>{{.Key}}</td>
<td>{{.StateCover}}</td><td>{{.SensCover}}</td><td>{{.DetCover}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`))

type reportView struct {
	Faults        []faultRow
	Ops           []opRow
	TotalCoverage float64
}

// WriteHTML renders result as a self-contained HTML report: a per-fault
// coverage table followed by the full op table with each position's
// cross-state key and state/sens/detect cover lists.
func WriteHTML(w io.Writer, result coverage.SimulationResult, faults []faultmodel.Fault) error {
	ops, frows := buildRows(result, faults)
	view := reportView{Faults: frows, Ops: ops, TotalCoverage: result.TotalCoverage}
	return htmlReportTemplate.Execute(w, view)
}
