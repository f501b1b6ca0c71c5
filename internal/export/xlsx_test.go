package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/tcocompare/internal/model"
)

func openWorkbook(t *testing.T, cmp model.Comparison) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, cmp))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestXLSXSheets(t *testing.T) {
	f := openWorkbook(t, buildTestComparison(t))
	assert.Equal(t,
		[]string{SheetSummary, SheetBreakdown, SheetYearly, SheetRisk, SheetAssumption},
		f.GetSheetList())
}

func TestXLSXSummaryRows(t *testing.T) {
	cmp := buildTestComparison(t)
	f := openWorkbook(t, cmp)

	rows, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.Len(t, rows, len(cmp.Results)+1)

	assert.Equal(t, "Rank", rows[0][0])
	assert.Equal(t, "Vendor", rows[0][1])
	assert.Equal(t, "Portnox CLEAR", rows[1][1])

	raw, err := f.GetCellValue(SheetSummary, "D2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "488750", raw)

	style, err := f.GetCellStyle(SheetSummary, "D2")
	require.NoError(t, err)
	assert.NotZero(t, style)
}

func TestXLSXYearlyRows(t *testing.T) {
	cmp := buildTestComparison(t)
	f := openWorkbook(t, cmp)

	rows, err := f.GetRows(SheetYearly)
	require.NoError(t, err)
	// header + years per vendor
	assert.Len(t, rows, 1+len(cmp.Results)*cmp.Scenario.Years)
}

func TestXLSXAssumptions(t *testing.T) {
	f := openWorkbook(t, buildTestComparison(t))

	v, err := f.GetCellValue(SheetAssumption, "A8")
	require.NoError(t, err)
	assert.Equal(t, "Loaded FTE Salary", v)

	v, err = f.GetCellValue(SheetAssumption, "B8", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "125000", v)

	v, err = f.GetCellValue(SheetAssumption, "B4")
	require.NoError(t, err)
	assert.Equal(t, "2500", v)
}

func TestXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, XLSX(&buf, model.Comparison{}))
}
