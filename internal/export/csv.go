package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/piwi3910/tcocompare/internal/model"
)

// CSVHeader is the column layout written by CSV.
var CSVHeader = []string{
	"rank", "vendor_id", "vendor", "baseline", "devices", "years",
	"license", "hardware", "implementation", "maintenance", "training", "personnel", "fte",
	"total", "savings", "savings_percent", "roi_percent", "payback_months", "payback_achievable",
	"risk_adjusted_total", "compliance_average", "compliance_gaps",
}

// CSV writes one row per vendor with every cost component.
func CSV(w io.Writer, cmp model.Comparison) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	money := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	for _, r := range cmp.Results {
		b := r.Breakdown
		record := []string{
			strconv.Itoa(r.Rank),
			b.VendorID,
			b.VendorName,
			strconv.FormatBool(r.IsBaseline),
			strconv.Itoa(b.Devices),
			strconv.Itoa(b.Years),
			money(b.License),
			money(b.Hardware),
			money(b.Implementation),
			money(b.Maintenance),
			money(b.Training),
			money(b.Personnel),
			strconv.FormatFloat(b.FTE, 'f', 3, 64),
			money(b.Total),
			money(r.Savings),
			strconv.FormatFloat(r.SavingsPercent, 'f', 2, 64),
			strconv.FormatFloat(r.ROIPercent, 'f', 2, 64),
			strconv.FormatFloat(r.Payback.Months, 'f', 1, 64),
			strconv.FormatBool(r.Payback.Achievable),
			money(r.Risk.RiskAdjustedTotal),
			strconv.FormatFloat(r.Compliance.Average, 'f', 1, 64),
			strings.Join(r.Compliance.Gaps, ";"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", b.VendorID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// JSON writes the comparison as indented JSON.
func JSON(w io.Writer, cmp model.Comparison) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cmp); err != nil {
		return fmt.Errorf("failed to encode comparison: %w", err)
	}
	return nil
}
