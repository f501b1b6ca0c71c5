package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
)

func vendor(t *testing.T, cat *catalog.Catalog, id string) catalog.Vendor {
	t.Helper()
	v, err := cat.Vendor(id)
	require.NoError(t, err)
	return v
}

func TestTotalIsExactSumOfComponents(t *testing.T) {
	cat := catalog.Builtin()
	s := model.NewScenario("sum")
	s.Devices = 2500
	s.Years = 3

	for _, id := range cat.VendorIDs() {
		b := CalculateTCO(vendor(t, cat, id), s, ResolveSalary(cat, s))
		sum := b.License + b.Hardware + b.Implementation + b.Maintenance + b.Training + b.Personnel
		if b.Total != sum {
			t.Errorf("%s: total %v != component sum %v", id, b.Total, sum)
		}
	}
}

func TestCalculateTCOPortnox(t *testing.T) {
	cat := catalog.Builtin()
	s := model.NewScenario("portnox")

	b := CalculateTCO(vendor(t, cat, "portnox"), s, ResolveSalary(cat, s))

	assert.InDelta(t, 382500, b.License, 0.01)
	assert.Equal(t, 0.0, b.Hardware)
	assert.Equal(t, 10000.0, b.Implementation)
	assert.Equal(t, 0.0, b.Maintenance)
	assert.Equal(t, 2500.0, b.Training)
	assert.InDelta(t, 0.25, b.FTE, 1e-9)
	assert.InDelta(t, 93750, b.Personnel, 0.01)
	assert.InDelta(t, 488750, b.Total, 0.01)
	assert.Equal(t, 125000.0, b.FTESalary)
}

func TestQuotedTotalsFlowIntoTCO(t *testing.T) {
	cat := catalog.Builtin()
	hardware := 60000.0
	implementation := 40000.0
	require.NoError(t, cat.ApplyQuotes([]catalog.PriceQuote{
		{VendorID: "cisco_ise", Hardware: &hardware, Implementation: &implementation},
	}))

	for _, devices := range []int{500, 2500, 25000} {
		s := model.NewScenario("quoted")
		s.Devices = devices
		b := CalculateTCO(vendor(t, cat, "cisco_ise"), s, 125000)
		assert.Equal(t, hardware, b.Hardware, "devices=%d", devices)
		assert.Equal(t, implementation, b.Implementation, "devices=%d", devices)
	}
}

func TestCalculateTCOCiscoISE(t *testing.T) {
	cat := catalog.Builtin()
	s := model.NewScenario("cisco")

	b := CalculateTCO(vendor(t, cat, "cisco_ise"), s, 125000)

	assert.Equal(t, 337500.0, b.License)
	assert.Equal(t, 90000.0, b.Hardware, "minimum of two appliances")
	assert.Equal(t, 122500.0, b.Implementation)
	assert.Equal(t, 105000.0, b.Maintenance)
	assert.Equal(t, 25000.0, b.Training)
	assert.Equal(t, 2.0, b.FTE, "minimum FTE")
	assert.Equal(t, 750000.0, b.Personnel)
	assert.Equal(t, 1430000.0, b.Total)
}

func TestLicenseRateTiers(t *testing.T) {
	v := vendor(t, catalog.Builtin(), "portnox")
	tests := []struct {
		devices int
		want    float64
	}{
		{1, 60},
		{999, 60},
		{1000, 51},
		{4999, 51},
		{5000, 45},
		{10000, 39},
		{50000, 39},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, LicenseRate(v, tt.devices), 1e-9, "devices=%d", tt.devices)
	}
}

func TestAppliances(t *testing.T) {
	cat := catalog.Builtin()
	cisco := vendor(t, cat, "cisco_ise")
	assert.Equal(t, 2, Appliances(cisco, 1))
	assert.Equal(t, 2, Appliances(cisco, 10000))
	assert.Equal(t, 3, Appliances(cisco, 10001))
	assert.Equal(t, 0, Appliances(vendor(t, cat, "portnox"), 50000))
}

func TestFTECountScalesWithDevices(t *testing.T) {
	v := vendor(t, catalog.Builtin(), "portnox")
	assert.Equal(t, 0.25, FTECount(v, 100))
	assert.Equal(t, 5.0, FTECount(v, 50000))
}

func TestResolveSalary(t *testing.T) {
	cat := catalog.Builtin()
	s := model.NewScenario("x")

	assert.Equal(t, 125000.0, ResolveSalary(cat, s))

	s.Region = catalog.RegionLatinAmerica
	assert.Equal(t, 55000.0, ResolveSalary(cat, s))

	s.Region = "mars"
	assert.Equal(t, catalog.DefaultFTESalary, ResolveSalary(cat, s))

	s.AvgFTESalary = 70000
	assert.Equal(t, 70000.0, ResolveSalary(cat, s))
}

func TestYearlyCosts(t *testing.T) {
	cat := catalog.Builtin()
	s := model.NewScenario("yearly")
	b := CalculateTCO(vendor(t, cat, "portnox"), s, ResolveSalary(cat, s))

	years := YearlyCosts(b)
	require.Len(t, years, 3)
	assert.Equal(t, 1, years[0].Year)
	assert.InDelta(t, 171250, years[0].Cost, 0.01)
	assert.InDelta(t, 158750, years[1].Cost, 0.01)
	assert.InDelta(t, 330000, years[1].Cumulative, 0.01)
	assert.Equal(t, b.Total, years[2].Cumulative)

	single := b
	single.Years = 1
	one := YearlyCosts(single)
	require.Len(t, one, 1)
	assert.Equal(t, single.Total, one[0].Cost)

	assert.Nil(t, YearlyCosts(model.CostBreakdown{}))
}
