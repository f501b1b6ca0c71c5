package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/tcocompare/internal/chart"
	"github.com/piwi3910/tcocompare/internal/model"
)

var (
	comparisonHeaders     = []string{"Rank", "Vendor", "Total", "One-Time", "Annual", "Savings", "Savings %", "ROI %", "Payback"}
	breakdownHeaders      = []string{"Vendor", "License", "Hardware", "Implementation", "Maintenance", "Training", "Personnel", "FTE"}
	riskHeaders           = []string{"Vendor", "Avoided Loss / yr", "Insurance / yr", "Total Benefit", "Risk-Adjusted TCO", "Compliance", "Gaps"}
	recommendationHeaders = []string{"#", "Vendor", "Score", "Cost", "Security", "Compliance", "Operations"}
)

func money(v float64) string {
	return chart.Money(v)
}

func vendorCell(r model.VendorResult) string {
	if r.IsBaseline {
		return r.Breakdown.VendorName + " (baseline)"
	}
	return r.Breakdown.VendorName
}

// comparisonRows renders the summary table. Savings columns are blank for
// the baseline row.
func comparisonRows(cmp model.Comparison) [][]string {
	rows := make([][]string, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		b := r.Breakdown
		row := []string{
			fmt.Sprintf("%d", r.Rank), vendorCell(r),
			money(b.Total), money(b.OneTime()), money(b.Annual()),
		}
		if r.IsBaseline {
			row = append(row, "-", "-", "-", "-")
		} else {
			row = append(row,
				money(r.Savings),
				fmt.Sprintf("%.1f%%", r.SavingsPercent),
				fmt.Sprintf("%.1f%%", r.ROIPercent),
				r.Payback.String(),
			)
		}
		rows = append(rows, row)
	}
	return rows
}

func breakdownRows(cmp model.Comparison) [][]string {
	rows := make([][]string, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		b := r.Breakdown
		rows = append(rows, []string{
			b.VendorName, money(b.License), money(b.Hardware), money(b.Implementation),
			money(b.Maintenance), money(b.Training), money(b.Personnel), fmt.Sprintf("%.2f", b.FTE),
		})
	}
	return rows
}

func riskRows(cmp model.Comparison) [][]string {
	rows := make([][]string, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		gaps := "None"
		if len(r.Compliance.Gaps) > 0 {
			gaps = strings.Join(r.Compliance.Gaps, ", ")
		}
		rows = append(rows, []string{
			r.Breakdown.VendorName,
			money(r.Risk.AvoidedLossPerYear),
			money(r.Risk.InsuranceSavingsPerYear),
			money(r.Risk.TotalBenefit),
			money(r.Risk.RiskAdjustedTotal),
			fmt.Sprintf("%.0f%%", r.Compliance.Average),
			gaps,
		})
	}
	return rows
}

func recommendationRows(recs []model.Recommendation) [][]string {
	rows := make([][]string, 0, len(recs))
	for i, r := range recs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1), r.VendorName,
			fmt.Sprintf("%.1f", r.Score),
			fmt.Sprintf("%.0f", r.CostScore),
			fmt.Sprintf("%.0f", r.SecurityScore),
			fmt.Sprintf("%.0f", r.ComplianceScore),
			fmt.Sprintf("%.0f", r.OperationsScore),
		})
	}
	return rows
}

// newTextTable shows headers in a bold first row followed by rows.
func newTextTable(headers []string, rows [][]string, firstColWidth float32) *widget.Table {
	t := widget.NewTable(
		func() (int, int) { return len(rows) + 1, len(headers) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			lbl := obj.(*widget.Label)
			if id.Row == 0 {
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				lbl.SetText(headers[id.Col])
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			row := rows[id.Row-1]
			if id.Col < len(row) {
				lbl.SetText(row[id.Col])
			} else {
				lbl.SetText("")
			}
		},
	)
	for col := range headers {
		t.SetColumnWidth(col, 120)
	}
	t.SetColumnWidth(0, firstColWidth)
	return t
}

// tableBox wraps a table so it keeps a usable height inside a VBox.
func tableBox(t *widget.Table, rows int) fyne.CanvasObject {
	height := float32(rows+1)*36 + 8
	return container.NewGridWrap(fyne.NewSize(1100, height), t)
}

func chartImage(render func(model.Comparison, chart.Size) ([]byte, error), cmp model.Comparison) fyne.CanvasObject {
	data, err := render(cmp, chart.Size{Width: 800, Height: 400})
	if err != nil {
		return widget.NewLabel(err.Error())
	}
	img, err := chart.Decode(data)
	if err != nil {
		return widget.NewLabel(err.Error())
	}
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(fyne.NewSize(560, 280))
	return c
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(
		widget.NewLabel("No results yet. Fill in the scenario and click Calculate."),
	)
	return a.resultContainer
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	defer a.resultContainer.Refresh()

	if a.project.Result == nil || len(a.project.Result.Results) == 0 {
		a.resultContainer.Add(widget.NewLabel("No results yet. Fill in the scenario and click Calculate."))
		return
	}
	cmp := *a.project.Result

	summary := fmt.Sprintf("%d devices over %d years, baseline %s", cmp.Scenario.Devices, cmp.Scenario.Years, cmp.Baseline)
	if cheapest, ok := cmp.Cheapest(); ok {
		summary += fmt.Sprintf(". Lowest TCO: %s at %s", cheapest.Breakdown.VendorName, money(cheapest.Breakdown.Total))
	}

	content := container.NewVBox(
		widget.NewLabelWithStyle(summary, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewCard("Comparison", "", tableBox(newTextTable(comparisonHeaders, comparisonRows(cmp), 200), len(cmp.Results))),
		widget.NewCard("Cost Breakdown", "", tableBox(newTextTable(breakdownHeaders, breakdownRows(cmp), 200), len(cmp.Results))),
		widget.NewCard("Charts", "", container.NewGridWithColumns(2,
			chartImage(chart.TotalCostBar, cmp),
			chartImage(chart.BreakdownStacked, cmp),
			chartImage(chart.CumulativeLine, cmp),
		)),
	)
	a.resultContainer.Add(container.NewVScroll(content))
}

// ─── Risk & Compliance Panel ───────────────────────────────

func (a *App) buildRiskPanel() fyne.CanvasObject {
	a.riskContainer = container.NewStack(widget.NewLabel("No results yet."))
	return a.riskContainer
}

func (a *App) refreshRisk() {
	a.riskContainer.RemoveAll()
	defer a.riskContainer.Refresh()

	if a.project.Result == nil || len(a.project.Result.Results) == 0 {
		a.riskContainer.Add(widget.NewLabel("No results yet."))
		return
	}
	cmp := *a.project.Result

	frameworks := container.NewVBox()
	for _, r := range cmp.Results {
		parts := make([]string, 0, len(r.Compliance.Frameworks))
		for _, f := range r.Compliance.Frameworks {
			parts = append(parts, fmt.Sprintf("%s %d%%", f.Name, f.Coverage))
		}
		frameworks.Add(widget.NewLabel(fmt.Sprintf("%s: %s", r.Breakdown.VendorName, strings.Join(parts, ", "))))
	}

	a.riskContainer.Add(container.NewVScroll(container.NewVBox(
		widget.NewCard("Risk-Adjusted Cost", fmt.Sprintf("Industry %s, risk profile %s, insurance %s",
			cmp.Scenario.Industry, cmp.Scenario.RiskProfile, cmp.Scenario.Insurance),
			tableBox(newTextTable(riskHeaders, riskRows(cmp), 200), len(cmp.Results))),
		widget.NewCard("Framework Coverage", "", frameworks),
	)))
}

// ─── Recommendations Panel ─────────────────────────────────

func (a *App) buildRecommendationsPanel() fyne.CanvasObject {
	a.recContainer = container.NewStack(widget.NewLabel("No recommendations yet."))
	return a.recContainer
}

func (a *App) refreshRecommendations() {
	a.recContainer.RemoveAll()
	defer a.recContainer.Refresh()

	if len(a.recommendations) == 0 {
		a.recContainer.Add(widget.NewLabel("No recommendations yet."))
		return
	}
	top := a.recommendations[0]
	priorities := "balanced weights"
	if ps := a.project.Scenario.Priorities; len(ps) > 0 {
		names := make([]string, len(ps))
		for i, p := range ps {
			names[i] = string(p)
		}
		priorities = "priorities: " + strings.Join(names, ", ")
	}

	a.recContainer.Add(container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle(fmt.Sprintf("Recommended: %s (score %.1f)", top.VendorName, top.Score),
			fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Scored with "+priorities+". Every axis is 0-100."),
		tableBox(newTextTable(recommendationHeaders, recommendationRows(a.recommendations), 40), len(a.recommendations)),
	)))
}
