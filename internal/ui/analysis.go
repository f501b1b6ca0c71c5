package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/engine"
	"github.com/piwi3910/tcocompare/internal/model"
)

var whatIfHeaders = []string{"Scenario", "Devices", "Years", "Baseline Total", "Lowest TCO", "Best Savings"}

func whatIfRows(results []engine.ScenarioResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		s := r.Comparison.Scenario
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(s.Devices),
			strconv.Itoa(s.Years),
			money(r.BaselineTotal),
			r.CheapestVendor,
			money(r.BestSavings),
		})
	}
	return rows
}

// sensitivityTable lays points out with one column per vendor total.
func sensitivityTable(points []model.SensitivityPoint, vendorIDs []string) ([]string, [][]string) {
	headers := []string{"Value"}
	headers = append(headers, vendorIDs...)

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		row := []string{formatParamValue(engine.Parameter(p.Parameter), p.Value)}
		for _, id := range vendorIDs {
			row = append(row, money(p.Totals[id]))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func formatParamValue(p engine.Parameter, v float64) string {
	if p == engine.ParamFTESalary {
		return money(v)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// parseSweepValues reads a comma separated list. Blank input means the
// default sweep.
func parseSweepValues(text string) ([]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	var values []float64
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", field, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func (a *App) showWhatIfDialog() {
	results, err := engine.CompareScenarios(a.catalog, engine.BuildWhatIfScenarios(a.project.Scenario))
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	rows := whatIfRows(results)
	d := dialog.NewCustom("What-If Analysis", "Close",
		tableBox(newTextTable(whatIfHeaders, rows, 180), len(rows)), a.window)
	d.Resize(fyne.NewSize(900, 360))
	d.Show()
}

func (a *App) showSensitivityDialog() {
	params := make([]string, 0, 3)
	for _, p := range engine.Parameters() {
		params = append(params, string(p))
	}
	paramSelect := widget.NewSelect(params, nil)
	paramSelect.SetSelected(string(engine.ParamDevices))

	valuesEntry := widget.NewEntry()
	valuesEntry.SetPlaceHolder("Comma separated, blank = 50%..200% of current")

	resultBox := container.NewStack()

	run := func() {
		p, err := engine.ParseParameter(paramSelect.Selected)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		values, err := parseSweepValues(valuesEntry.Text)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if len(values) == 0 {
			values = engine.DefaultSweep(a.catalog, p, a.project.Scenario)
		}
		points, err := engine.Sensitivity(a.catalog, a.project.Scenario, p, values)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		columns := a.project.Scenario
		if columns.BaselineVendorID == "" {
			columns.BaselineVendorID = catalog.BaselineVendorID
		}
		headers, rows := sensitivityTable(points, columns.AllVendorIDs())
		resultBox.RemoveAll()
		resultBox.Add(tableBox(newTextTable(headers, rows, 120), len(rows)))
		resultBox.Refresh()
	}

	content := container.NewBorder(
		container.NewVBox(
			widget.NewForm(
				widget.NewFormItem("Parameter", paramSelect),
				widget.NewFormItem("Values", valuesEntry),
			),
			widget.NewButton("Run", run),
		),
		nil, nil, nil,
		container.NewVScroll(resultBox),
	)
	d := dialog.NewCustom("Sensitivity Analysis", "Close", content, a.window)
	d.Resize(fyne.NewSize(900, 480))
	d.Show()
	run()
}
