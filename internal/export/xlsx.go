package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/tcocompare/internal/model"
)

// Workbook sheet names.
const (
	SheetSummary    = "Summary"
	SheetBreakdown  = "Cost Breakdown"
	SheetYearly     = "Yearly"
	SheetRisk       = "Risk & Compliance"
	SheetAssumption = "Assumptions"
)

const (
	currencyFormat = `"$"#,##0`
	percentFormat  = `0.0"%"`
)

type workbook struct {
	f        *excelize.File
	header   int
	currency int
	percent  int
}

// XLSX writes an Excel workbook with one sheet per report section.
func XLSX(w io.Writer, cmp model.Comparison) error {
	if len(cmp.Results) == 0 {
		return fmt.Errorf("no results to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	wb, err := newWorkbook(f)
	if err != nil {
		return err
	}

	steps := []func(model.Comparison) error{
		wb.summarySheet,
		wb.breakdownSheet,
		wb.yearlySheet,
		wb.riskSheet,
		wb.assumptionsSheet,
	}
	for _, step := range steps {
		if err := step(cmp); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func newWorkbook(f *excelize.File) (*workbook, error) {
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, name := range []string{SheetBreakdown, SheetYearly, SheetRisk, SheetAssumption} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
	}

	wb := &workbook{f: f}
	var err error
	if wb.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	}); err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	cur := currencyFormat
	if wb.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &cur}); err != nil {
		return nil, fmt.Errorf("failed to create currency style: %w", err)
	}
	pct := percentFormat
	if wb.percent, err = f.NewStyle(&excelize.Style{CustomNumFmt: &pct}); err != nil {
		return nil, fmt.Errorf("failed to create percent style: %w", err)
	}
	return wb, nil
}

// writeTable writes headers in row 1 and rows below, then applies styles.
// colStyles maps a zero-based column to a style ID for the body rows.
func (wb *workbook) writeTable(sheet string, headers []string, rows [][]interface{}, colStyles map[int]int) error {
	hdr := make([]interface{}, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	if err := wb.f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := wb.f.SetCellStyle(sheet, "A1", last, wb.header); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		r := row
		if err := wb.f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	if len(rows) > 0 {
		for col, style := range colStyles {
			top, _ := excelize.CoordinatesToCellName(col+1, 2)
			bottom, _ := excelize.CoordinatesToCellName(col+1, len(rows)+1)
			if err := wb.f.SetCellStyle(sheet, top, bottom, style); err != nil {
				return fmt.Errorf("failed to style %s column %d: %w", sheet, col+1, err)
			}
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := wb.f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	if len(headers) > 1 {
		if err := wb.f.SetColWidth(sheet, "B", lastCol, 16); err != nil {
			return err
		}
	}
	return nil
}

func (wb *workbook) summarySheet(cmp model.Comparison) error {
	headers := []string{"Rank", "Vendor", "Baseline", "Total Cost", "One-Time", "Annual", "Savings", "Savings %", "ROI %", "Payback"}
	rows := make([][]interface{}, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		b := r.Breakdown
		rows = append(rows, []interface{}{
			r.Rank, b.VendorName, r.IsBaseline, b.Total, b.OneTime(), b.Annual(),
			r.Savings, r.SavingsPercent, r.ROIPercent, r.Payback.String(),
		})
	}
	return wb.writeTable(SheetSummary, headers, rows, map[int]int{
		3: wb.currency, 4: wb.currency, 5: wb.currency, 6: wb.currency,
		7: wb.percent, 8: wb.percent,
	})
}

func (wb *workbook) breakdownSheet(cmp model.Comparison) error {
	headers := []string{"Vendor", "License", "Hardware", "Implementation", "Maintenance", "Training", "Personnel", "FTE", "FTE Salary", "Total"}
	rows := make([][]interface{}, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		b := r.Breakdown
		rows = append(rows, []interface{}{
			b.VendorName, b.License, b.Hardware, b.Implementation, b.Maintenance,
			b.Training, b.Personnel, b.FTE, b.FTESalary, b.Total,
		})
	}
	styles := map[int]int{}
	for _, col := range []int{1, 2, 3, 4, 5, 6, 8, 9} {
		styles[col] = wb.currency
	}
	return wb.writeTable(SheetBreakdown, headers, rows, styles)
}

func (wb *workbook) yearlySheet(cmp model.Comparison) error {
	headers := []string{"Vendor", "Year", "Cost", "Cumulative"}
	var rows [][]interface{}
	for _, r := range cmp.Results {
		for _, y := range r.Yearly {
			rows = append(rows, []interface{}{r.Breakdown.VendorName, y.Year, y.Cost, y.Cumulative})
		}
	}
	return wb.writeTable(SheetYearly, headers, rows, map[int]int{2: wb.currency, 3: wb.currency})
}

func (wb *workbook) riskSheet(cmp model.Comparison) error {
	headers := []string{"Vendor", "Breach Probability", "Annual Exposure", "Avoided Loss / yr",
		"Insurance Savings / yr", "Total Benefit", "Risk-Adjusted TCO", "Compliance Avg", "Compliance Gaps"}
	rows := make([][]interface{}, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		rk := r.Risk
		rows = append(rows, []interface{}{
			r.Breakdown.VendorName, rk.BreachProbability, rk.AnnualExposure, rk.AvoidedLossPerYear,
			rk.InsuranceSavingsPerYear, rk.TotalBenefit, rk.RiskAdjustedTotal,
			r.Compliance.Average, strings.Join(r.Compliance.Gaps, ", "),
		})
	}
	return wb.writeTable(SheetRisk, headers, rows, map[int]int{
		2: wb.currency, 3: wb.currency, 4: wb.currency, 5: wb.currency, 6: wb.currency,
		7: wb.percent,
	})
}

func (wb *workbook) assumptionsSheet(cmp model.Comparison) error {
	s := cmp.Scenario
	salary := 0.0
	if len(cmp.Results) > 0 {
		salary = cmp.Results[0].Breakdown.FTESalary
	}
	rows := [][]interface{}{
		{"Scenario", s.Name},
		{"Scenario ID", s.ID},
		{"Devices", s.Devices},
		{"Years", s.Years},
		{"Industry", s.Industry},
		{"Region", s.Region},
		{"Loaded FTE Salary", salary},
		{"Risk Profile", s.RiskProfile},
		{"Cyber Insurance", s.Insurance},
		{"Baseline Vendor", cmp.Baseline},
		{"Vendors", strings.Join(s.VendorIDs, ", ")},
		{"Generated", cmp.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
	}
	if err := wb.writeTable(SheetAssumption, []string{"Assumption", "Value"}, rows, nil); err != nil {
		return err
	}
	return wb.f.SetCellStyle(SheetAssumption, "B8", "B8", wb.currency)
}
