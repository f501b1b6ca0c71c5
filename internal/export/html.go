package export

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/piwi3910/tcocompare/internal/chart"
	"github.com/piwi3910/tcocompare/internal/model"
)

var htmlFuncs = template.FuncMap{
	"money":   Money,
	"percent": formatPercent,
	"join":    strings.Join,
	"savingsClass": func(v float64) string {
		switch {
		case v > 0:
			return "positive"
		case v < 0:
			return "negative"
		default:
			return "neutral"
		}
	},
}

var htmlReport = template.Must(template.New("report").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>NAC Total Cost of Ownership{{if .Scenario.Name}}: {{.Scenario.Name}}{{end}}</title>
<style>
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:#f8fafc;color:#1e293b;padding:2rem;line-height:1.5}
.container{max-width:1200px;margin:0 auto}
h1{color:#2563eb;font-size:1.75rem}
h2{font-size:1.2rem;margin:1.5rem 0 .75rem;border-bottom:1px solid #e2e8f0;padding-bottom:.4rem}
table{border-collapse:collapse;width:100%;background:#fff;margin-bottom:1rem}
th,td{border:1px solid #e2e8f0;padding:.4rem .6rem;text-align:right}
th{background:#f1f5f9}
td:first-child,th:first-child{text-align:left}
tr.baseline td{font-weight:600}
.positive{color:#16a34a} .negative{color:#dc2626} .neutral{color:#64748b}
.gap{color:#ea580c}
dl{display:grid;grid-template-columns:max-content auto;gap:.25rem 1rem}
dt{color:#64748b}
img{max-width:100%;background:#fff}
footer{color:#64748b;font-size:.8rem;margin-top:2rem}
</style>
</head>
<body>
<div class="container">
<h1>NAC Total Cost of Ownership{{if .Scenario.Name}}: {{.Scenario.Name}}{{end}}</h1>

<h2>Assumptions</h2>
<dl>
<dt>Devices</dt><dd>{{.Scenario.Devices}}</dd>
<dt>Analysis period</dt><dd>{{.Scenario.Years}} years</dd>
<dt>Industry</dt><dd>{{.Scenario.Industry}}</dd>
<dt>Region</dt><dd>{{.Scenario.Region}}</dd>
<dt>Loaded FTE salary</dt><dd>{{money .Salary}}</dd>
<dt>Risk profile</dt><dd>{{.Scenario.RiskProfile}}</dd>
<dt>Cyber insurance</dt><dd>{{.Scenario.Insurance}}</dd>
<dt>Baseline vendor</dt><dd>{{.Baseline}}</dd>
</dl>

<h2>Vendor Comparison</h2>
<table>
<tr><th>Vendor</th><th>Rank</th><th>Total</th><th>One-Time</th><th>Annual</th><th>Savings</th><th>Savings %</th><th>ROI %</th><th>Payback</th></tr>
{{range .Results}}<tr{{if .IsBaseline}} class="baseline"{{end}}>
<td>{{.Breakdown.VendorName}}{{if .IsBaseline}} (baseline){{end}}</td>
<td>{{.Rank}}</td>
<td>{{money .Breakdown.Total}}</td>
<td>{{money .Breakdown.OneTime}}</td>
<td>{{money .Breakdown.Annual}}</td>
{{if .IsBaseline}}<td>-</td><td>-</td><td>-</td><td>-</td>{{else}}<td class="{{savingsClass .Savings}}">{{money .Savings}}</td>
<td class="{{savingsClass .Savings}}">{{percent .SavingsPercent}}</td>
<td class="{{savingsClass .ROIPercent}}">{{percent .ROIPercent}}</td>
<td>{{.Payback}}</td>{{end}}
</tr>
{{end}}</table>

<h2>Cost Breakdown</h2>
<table>
<tr><th>Vendor</th><th>License</th><th>Hardware</th><th>Implementation</th><th>Maintenance</th><th>Training</th><th>Personnel</th><th>FTE</th></tr>
{{range .Results}}<tr>
<td>{{.Breakdown.VendorName}}</td>
<td>{{money .Breakdown.License}}</td>
<td>{{money .Breakdown.Hardware}}</td>
<td>{{money .Breakdown.Implementation}}</td>
<td>{{money .Breakdown.Maintenance}}</td>
<td>{{money .Breakdown.Training}}</td>
<td>{{money .Breakdown.Personnel}}</td>
<td>{{printf "%.2f" .Breakdown.FTE}}</td>
</tr>
{{end}}</table>

<h2>Risk &amp; Compliance</h2>
<table>
<tr><th>Vendor</th><th>Avoided Loss / yr</th><th>Insurance / yr</th><th>Total Benefit</th><th>Risk-Adjusted TCO</th><th>Compliance</th><th>Gaps</th></tr>
{{range .Results}}<tr>
<td>{{.Breakdown.VendorName}}</td>
<td>{{money .Risk.AvoidedLossPerYear}}</td>
<td>{{money .Risk.InsuranceSavingsPerYear}}</td>
<td>{{money .Risk.TotalBenefit}}</td>
<td>{{money .Risk.RiskAdjustedTotal}}</td>
<td>{{percent .Compliance.Average}}</td>
<td class="gap">{{join .Compliance.Gaps ", "}}</td>
</tr>
{{end}}</table>

{{if .Chart}}<h2>Total Cost</h2>
<img alt="Total cost chart" src="{{.Chart}}">
{{end}}
<footer>Generated by TCO Compare on {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}. Vendor figures are illustrative estimates.</footer>
</div>
</body>
</html>
`))

type htmlData struct {
	model.Comparison
	Salary float64
	Chart  template.URL
}

// HTML writes a standalone HTML report with the total cost chart inlined.
func HTML(w io.Writer, cmp model.Comparison) error {
	data := htmlData{Comparison: cmp}
	if len(cmp.Results) > 0 {
		data.Salary = cmp.Results[0].Breakdown.FTESalary

		png, err := chart.TotalCostBar(cmp, chart.DefaultSize)
		if err != nil {
			return fmt.Errorf("failed to render chart for HTML report: %w", err)
		}
		data.Chart = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	}

	if err := htmlReport.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}
