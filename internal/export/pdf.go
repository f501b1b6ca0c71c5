package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/tcocompare/internal/chart"
	"github.com/piwi3910/tcocompare/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 6.0
)

// chartSize renders charts at the aspect ratio of the space they get on a page.
var chartSize = chart.Size{Width: 1335, Height: 640}

// PDF writes a landscape A4 report: assumptions and summary, component
// breakdown, risk and compliance, and the charts.
func PDF(w io.Writer, cmp model.Comparison) error {
	if len(cmp.Results) == 0 {
		return fmt.Errorf("no results to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle("NAC Total Cost of Ownership", false)
	pdf.SetCreator("tcocompare", false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footer := fmt.Sprintf("Generated by TCO Compare on %s  |  Page %d",
			cmp.GeneratedAt.Format("2006-01-02 15:04 MST"), pdf.PageNo())
		pdf.CellFormat(0, 5, footer, "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	renderSummaryPage(pdf, cmp)

	pdf.AddPage()
	renderBreakdownPage(pdf, cmp)

	pdf.AddPage()
	renderRiskPage(pdf, cmp)

	if err := renderChartPages(pdf, cmp); err != nil {
		return err
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func pageTitle(pdf *fpdf.Fpdf, title string) float64 {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 10, title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)
	return marginTop + 18
}

func sectionHeading(pdf *fpdf.Fpdf, y float64, text string) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, text, "", 0, "L", false, 0, "")
	return y + 9
}

// renderSummaryPage draws assumptions and the ranked comparison.
func renderSummaryPage(pdf *fpdf.Fpdf, cmp model.Comparison) {
	s := cmp.Scenario
	title := "NAC Total Cost of Ownership"
	if s.Name != "" {
		title += ": " + s.Name
	}
	y := pageTitle(pdf, title)

	y = sectionHeading(pdf, y, "Assumptions")
	salary := "Regional average"
	if len(cmp.Results) > 0 {
		salary = Money(cmp.Results[0].Breakdown.FTESalary)
	}
	items := []struct {
		label string
		value string
	}{
		{"Devices", fmt.Sprintf("%d", s.Devices)},
		{"Analysis Period", fmt.Sprintf("%d years", s.Years)},
		{"Industry", s.Industry},
		{"Region", s.Region},
		{"Loaded FTE Salary", salary},
		{"Risk Profile", s.RiskProfile},
		{"Cyber Insurance", s.Insurance},
		{"Baseline Vendor", cmp.Baseline},
	}
	pdf.SetFont("Helvetica", "", 10)
	for i, item := range items {
		col := i % 2
		x := marginLeft + 5 + float64(col)*130
		if col == 0 && i > 0 {
			y += 7
		}
		pdf.SetXY(x, y)
		pdf.CellFormat(50, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(70, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}
	y += 12

	y = sectionHeading(pdf, y, "Vendor Comparison")
	headers := []string{"Rank", "Vendor", "Total Cost", "One-Time", "Annual", "Savings", "Savings %", "ROI %", "Payback"}
	widths := []float64{14, 55, 30, 28, 28, 30, 24, 24, 34}
	rows := make([][]string, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		b := r.Breakdown
		savings, pct, roi, payback := "-", "-", "-", "-"
		if !r.IsBaseline {
			savings = Money(r.Savings)
			pct = formatPercent(r.SavingsPercent)
			roi = formatPercent(r.ROIPercent)
			payback = r.Payback.String()
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Rank),
			vendorLabel(r),
			Money(b.Total),
			Money(b.OneTime()),
			Money(b.Annual()),
			savings, pct, roi, payback,
		})
	}
	drawTable(pdf, y, headers, widths, rows)
}

// renderBreakdownPage draws the six cost components per vendor.
func renderBreakdownPage(pdf *fpdf.Fpdf, cmp model.Comparison) {
	y := pageTitle(pdf, "Cost Breakdown")

	headers := []string{"Vendor", "License", "Hardware", "Implementation", "Maintenance", "Training", "Personnel", "FTE", "Total"}
	widths := []float64{55, 28, 28, 30, 28, 24, 30, 14, 30}
	rows := make([][]string, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		b := r.Breakdown
		rows = append(rows, []string{
			vendorLabel(r),
			Money(b.License),
			Money(b.Hardware),
			Money(b.Implementation),
			Money(b.Maintenance),
			Money(b.Training),
			Money(b.Personnel),
			fmt.Sprintf("%.2f", b.FTE),
			Money(b.Total),
		})
	}
	y = drawTable(pdf, y, headers, widths, rows)

	y += 8
	y = sectionHeading(pdf, y, "Year by Year")
	yearHeaders := []string{"Vendor"}
	yearWidths := []float64{55}
	years := cmp.Scenario.Years
	colW := (contentWidth - 55) / float64(max(years, 1))
	for i := 1; i <= years; i++ {
		yearHeaders = append(yearHeaders, fmt.Sprintf("Year %d", i))
		yearWidths = append(yearWidths, colW)
	}
	yearRows := make([][]string, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		row := []string{r.Breakdown.VendorName}
		for i := 0; i < years; i++ {
			cell := "-"
			if i < len(r.Yearly) {
				cell = Money(r.Yearly[i].Cumulative)
			}
			row = append(row, cell)
		}
		yearRows = append(yearRows, row)
	}
	drawTable(pdf, y, yearHeaders, yearWidths, yearRows)
}

// renderRiskPage draws breach, insurance and compliance figures.
func renderRiskPage(pdf *fpdf.Fpdf, cmp model.Comparison) {
	y := pageTitle(pdf, "Risk & Compliance")

	headers := []string{"Vendor", "Annual Exposure", "Avoided Loss / yr", "Insurance / yr", "Total Benefit", "Risk-Adjusted TCO"}
	widths := []float64{60, 40, 42, 36, 42, 47}
	rows := make([][]string, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		rows = append(rows, []string{
			vendorLabel(r),
			Money(r.Risk.AnnualExposure),
			Money(r.Risk.AvoidedLossPerYear),
			Money(r.Risk.InsuranceSavingsPerYear),
			Money(r.Risk.TotalBenefit),
			Money(r.Risk.RiskAdjustedTotal),
		})
	}
	y = drawTable(pdf, y, headers, widths, rows)

	y += 8
	y = sectionHeading(pdf, y, "Compliance Coverage")
	compHeaders := []string{"Vendor", "Average", "Frameworks", "Gaps (< 70%)"}
	compWidths := []float64{60, 25, 120, 62}
	compRows := make([][]string, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		fws := make([]string, 0, len(r.Compliance.Frameworks))
		for _, fw := range r.Compliance.Frameworks {
			fws = append(fws, fmt.Sprintf("%s %d%%", fw.Name, fw.Coverage))
		}
		gaps := "None"
		if len(r.Compliance.Gaps) > 0 {
			gaps = strings.Join(r.Compliance.Gaps, ", ")
		}
		compRows = append(compRows, []string{
			vendorLabel(r),
			formatPercent(r.Compliance.Average),
			strings.Join(fws, ", "),
			gaps,
		})
	}
	drawTable(pdf, y, compHeaders, compWidths, compRows)
}

// renderChartPages embeds one chart per page.
func renderChartPages(pdf *fpdf.Fpdf, cmp model.Comparison) error {
	charts := []struct {
		name   string
		render func(model.Comparison, chart.Size) ([]byte, error)
	}{
		{"total", chart.TotalCostBar},
		{"breakdown", chart.BreakdownStacked},
		{"cumulative", chart.CumulativeLine},
	}
	for _, c := range charts {
		png, err := c.render(cmp, chartSize)
		if err != nil {
			return fmt.Errorf("failed to render %s chart: %w", c.name, err)
		}
		pdf.AddPage()
		name := "chart_" + c.name
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
		h := contentWidth * float64(chartSize.Height) / float64(chartSize.Width)
		pdf.ImageOptions(name, marginLeft, marginTop+10, contentWidth, h, false, opts, 0, "")
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("failed to embed %s chart: %w", c.name, err)
		}
	}
	return nil
}

// drawTable renders a header row and alternating-fill body rows, continuing
// on a new page when the page is full. It returns the y below the table.
func drawTable(pdf *fpdf.Fpdf, y float64, headers []string, widths []float64, rows [][]string) float64 {
	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		x := marginLeft
		for i, h := range headers {
			pdf.SetXY(x, y)
			pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "C", true, 0, "")
			x += widths[i]
		}
		y += rowHeight
	}
	header()

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range rows {
		if y+rowHeight > pageHeight-marginBottom-5 {
			pdf.AddPage()
			y = marginTop
			header()
			pdf.SetFont("Helvetica", "", 9)
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		x := marginLeft
		for j, cell := range row {
			align := "R"
			if j == 0 || (j == 1 && headers[0] == "Rank") {
				align = "L"
			}
			pdf.SetXY(x, y)
			pdf.CellFormat(widths[j], rowHeight, fitText(pdf, cell, widths[j]-2), "1", 0, align, true, 0, "")
			x += widths[j]
		}
		y += rowHeight
	}
	return y
}

// fitText truncates s with an ellipsis so it fits in w millimetres.
func fitText(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}
