package ui

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/engine"
	"github.com/piwi3910/tcocompare/internal/export"
	"github.com/piwi3910/tcocompare/internal/model"
)

func TestInputsRoundTrip(t *testing.T) {
	s := model.NewScenario("Round Trip")
	s.AvgFTESalary = 98000
	s.Priorities = []model.Priority{model.PrioritySecurity}

	got, err := parseScenarioInputs(s, inputsFromScenario(s))
	require.NoError(t, err)
	assert.True(t, scenariosEqual(s, got))
}

func TestInputsFromScenarioBlankSalary(t *testing.T) {
	in := inputsFromScenario(model.NewScenario("x"))
	assert.Equal(t, "", in.Salary)
	assert.Equal(t, "2500", in.Devices)
}

func TestParseScenarioInputs(t *testing.T) {
	base := model.NewScenario("Base")
	in := inputsFromScenario(base)
	in.Name = "  Hospital  "
	in.Devices = " 8000 "
	in.Years = "5"
	in.Salary = "$110,000"
	in.Industry = "healthcare"
	in.Vendors = []string{"cisco_ise"}
	in.Priorities = []string{"compliance", "cost"}

	s, err := parseScenarioInputs(base, in)
	require.NoError(t, err)
	assert.Equal(t, base.ID, s.ID)
	assert.Equal(t, "Hospital", s.Name)
	assert.Equal(t, 8000, s.Devices)
	assert.Equal(t, 5, s.Years)
	assert.Equal(t, 110000.0, s.AvgFTESalary)
	assert.Equal(t, "healthcare", s.Industry)
	assert.Equal(t, []string{"cisco_ise"}, s.VendorIDs)
	assert.Equal(t, []model.Priority{model.PriorityCompliance, model.PriorityCost}, s.Priorities)

	// base is untouched
	assert.Equal(t, 2500, base.Devices)
}

func TestParseScenarioInputsErrors(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*scenarioInputs)
		field string
	}{
		{"devices not a number", func(in *scenarioInputs) { in.Devices = "lots" }, "devices"},
		{"devices zero", func(in *scenarioInputs) { in.Devices = "0" }, "devices"},
		{"years not a number", func(in *scenarioInputs) { in.Years = "3.5" }, "years"},
		{"years too long", func(in *scenarioInputs) { in.Years = "11" }, "years"},
		{"salary not a number", func(in *scenarioInputs) { in.Salary = "abc" }, "avg_fte_salary"},
		{"no vendors", func(in *scenarioInputs) { in.Vendors = nil }, "vendor_ids"},
		{"unknown priority", func(in *scenarioInputs) { in.Priorities = []string{"speed"} }, "priorities"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := model.NewScenario("Base")
			in := inputsFromScenario(base)
			tt.edit(&in)

			_, err := parseScenarioInputs(base, in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidScenario))

			var ge *goerr.Error
			require.True(t, errors.As(err, &ge))
			assert.Equal(t, tt.field, ge.Values()["field"])
		})
	}
}

func TestLabelIndex(t *testing.T) {
	cat := catalog.Builtin()
	li := vendorIndex(cat)
	require.Len(t, li.labels, len(cat.Vendors()))

	names := li.names([]string{"portnox", "unknown"})
	assert.Equal(t, []string{"Portnox CLEAR"}, names)
	assert.Equal(t, []string{"portnox"}, li.ids(names))

	ind := industryIndex(cat)
	assert.Len(t, ind.labels, len(cat.Industries()))
}

func TestScenariosEqual(t *testing.T) {
	a := model.NewScenario("same")
	b := a.Clone()
	assert.True(t, scenariosEqual(a, b))

	b.VendorIDs = append(b.VendorIDs, "juniper_mist")
	assert.False(t, scenariosEqual(a, b))

	c := a.Clone()
	c.Priorities = []model.Priority{model.PriorityCost}
	assert.False(t, scenariosEqual(a, c))

	d := a.Clone()
	d.AvgFTESalary = 1
	assert.False(t, scenariosEqual(a, d))
}

func TestProjectFileName(t *testing.T) {
	assert.Equal(t, "Acme.tco.json", projectFileName("Acme"))
	assert.Equal(t, "Untitled.tco.json", projectFileName("  "))
}

func TestFormatMenuLabel(t *testing.T) {
	assert.Equal(t, "PDF Report...", formatMenuLabel(export.FormatPDF))
	assert.Equal(t, "Excel Workbook...", formatMenuLabel(export.FormatXLSX))
	assert.Equal(t, "CSV...", formatMenuLabel(export.FormatCSV))
}

func compareDefault(t *testing.T) model.Comparison {
	t.Helper()
	cmp, err := engine.Compare(catalog.Builtin(), model.NewScenario("UI"))
	require.NoError(t, err)
	return cmp
}

func TestComparisonRows(t *testing.T) {
	cmp := compareDefault(t)
	rows := comparisonRows(cmp)
	require.Len(t, rows, len(cmp.Results))

	for i, r := range cmp.Results {
		assert.Len(t, rows[i], len(comparisonHeaders))
		if r.IsBaseline {
			assert.Contains(t, rows[i][1], "(baseline)")
			assert.Equal(t, "-", rows[i][5])
		} else {
			assert.NotEqual(t, "-", rows[i][5])
		}
	}
}

func TestBreakdownAndRiskRows(t *testing.T) {
	cmp := compareDefault(t)

	for _, row := range breakdownRows(cmp) {
		assert.Len(t, row, len(breakdownHeaders))
	}
	for _, row := range riskRows(cmp) {
		assert.Len(t, row, len(riskHeaders))
		assert.NotEmpty(t, row[6])
	}
}

func TestRecommendationRows(t *testing.T) {
	recs, err := engine.Recommend(catalog.Builtin(), model.NewScenario("UI"))
	require.NoError(t, err)

	rows := recommendationRows(recs)
	require.Len(t, rows, len(recs))
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, recs[0].VendorName, rows[0][1])
}

func TestParseSweepValues(t *testing.T) {
	values, err := parseSweepValues("")
	require.NoError(t, err)
	assert.Nil(t, values)

	values, err = parseSweepValues("1000, 2000,,5000")
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, 2000, 5000}, values)

	_, err = parseSweepValues("1000, many")
	assert.Error(t, err)
}

func TestSensitivityTable(t *testing.T) {
	cat := catalog.Builtin()
	s := model.NewScenario("UI")
	points, err := engine.Sensitivity(cat, s, engine.ParamDevices, []float64{1000, 2000})
	require.NoError(t, err)

	headers, rows := sensitivityTable(points, s.AllVendorIDs())
	assert.Equal(t, "Value", headers[0])
	assert.Len(t, headers, len(s.AllVendorIDs())+1)
	require.Len(t, rows, 2)
	assert.Equal(t, "1000", rows[0][0])
}

func TestWhatIfRows(t *testing.T) {
	cat := catalog.Builtin()
	results, err := engine.CompareScenarios(cat, engine.BuildWhatIfScenarios(model.NewScenario("UI")))
	require.NoError(t, err)

	rows := whatIfRows(results)
	require.Len(t, rows, len(results))
	assert.Equal(t, "2500", rows[0][1])
}
