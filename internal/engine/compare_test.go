package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
)

func TestCompareDefaultScenario(t *testing.T) {
	cat := catalog.Builtin()
	cmp, err := Compare(cat, model.NewScenario("default"))
	require.NoError(t, err)

	require.Len(t, cmp.Results, 4)
	assert.Equal(t, "portnox", cmp.Baseline)
	assert.False(t, cmp.GeneratedAt.IsZero())

	order := make([]string, 0, len(cmp.Results))
	for i, r := range cmp.Results {
		assert.Equal(t, i+1, r.Rank)
		order = append(order, r.VendorID())
	}
	assert.Equal(t, []string{"portnox", "aruba_clearpass", "forescout", "cisco_ise"}, order)

	base, ok := cmp.BaselineResult()
	require.True(t, ok)
	assert.True(t, base.IsBaseline)
	assert.Equal(t, 0.0, base.Savings)
	assert.Equal(t, model.Payback{Achievable: true}, base.Payback)

	cisco, ok := cmp.Result("cisco_ise")
	require.True(t, ok)
	assert.InDelta(t, 941250, cisco.Savings, 0.01)
	assert.InDelta(t, 941250.0/1430000.0*100, cisco.SavingsPercent, 1e-6)
	assert.InDelta(t, 941250.0/488750.0*100, cisco.ROIPercent, 1e-6)
	assert.Equal(t, model.Payback{Months: 0, Achievable: true}, cisco.Payback)
	require.Len(t, cisco.Yearly, 3)
}

func TestCompareAddsMissingBaseline(t *testing.T) {
	s := model.NewScenario("x")
	s.VendorIDs = []string{"cisco_ise"}

	cmp, err := Compare(catalog.Builtin(), s)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 2)
	_, ok := cmp.Result("portnox")
	assert.True(t, ok)
}

func TestCompareDefaultsEmptyBaseline(t *testing.T) {
	s := model.NewScenario("x")
	s.BaselineVendorID = ""
	s.VendorIDs = []string{"forescout"}

	cmp, err := Compare(catalog.Builtin(), s)
	require.NoError(t, err)
	assert.Equal(t, catalog.BaselineVendorID, cmp.Baseline)
}

func TestCompareCustomBaseline(t *testing.T) {
	s := model.NewScenario("x")
	s.BaselineVendorID = "cisco_ise"

	cmp, err := Compare(catalog.Builtin(), s)
	require.NoError(t, err)

	portnox, ok := cmp.Result("portnox")
	require.True(t, ok)
	assert.Less(t, portnox.Savings, 0.0, "a cheaper competitor shows negative savings")
	assert.False(t, portnox.IsBaseline)
}

func TestCompareErrors(t *testing.T) {
	cat := catalog.Builtin()

	s := model.NewScenario("x")
	s.Years = 0
	_, err := Compare(cat, s)
	assert.True(t, errors.Is(err, model.ErrInvalidScenario))

	s = model.NewScenario("x")
	s.VendorIDs = append(s.VendorIDs, "ghost")
	_, err = Compare(cat, s)
	assert.True(t, errors.Is(err, catalog.ErrUnknownVendor))

	s = model.NewScenario("x")
	s.Industry = "mining"
	_, err = Compare(cat, s)
	assert.True(t, errors.Is(err, catalog.ErrUnknownIndustry))

	s = model.NewScenario("x")
	s.RiskProfile = "regulatd"
	_, err = Compare(cat, s)
	assert.True(t, errors.Is(err, catalog.ErrUnknownRiskProfile))

	s = model.NewScenario("x")
	s.Insurance = "premium"
	_, err = Compare(cat, s)
	assert.True(t, errors.Is(err, catalog.ErrUnknownInsuranceTier))
}

func TestCompareRejectsNonFiniteQuote(t *testing.T) {
	cat := catalog.Builtin()
	nan := math.NaN()
	err := cat.ApplyQuotes([]catalog.PriceQuote{{VendorID: "cisco_ise", License: &nan}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrInvalidVendor))

	cmp, err := Compare(cat, model.NewScenario("x"))
	require.NoError(t, err)
	for _, r := range cmp.Results {
		assert.False(t, math.IsNaN(r.Breakdown.Total), r.Breakdown.VendorID)
	}
}

func TestCompareTieBreaksByVendorID(t *testing.T) {
	cat := catalog.Builtin()
	clone := vendor(t, cat, "cisco_ise")
	clone.ID = "aaa_clone"
	clone.Name = "Clone"
	require.NoError(t, cat.PutVendor(clone))

	s := model.NewScenario("tie")
	s.VendorIDs = []string{"cisco_ise", "aaa_clone"}
	cmp, err := Compare(cat, s)
	require.NoError(t, err)

	a, _ := cmp.Result("aaa_clone")
	c, _ := cmp.Result("cisco_ise")
	assert.Equal(t, a.Breakdown.Total, c.Breakdown.Total)
	assert.Less(t, a.Rank, c.Rank)
}

func TestCalculatePayback(t *testing.T) {
	tests := []struct {
		name       string
		base       model.CostBreakdown
		competitor model.CostBreakdown
		want       model.Payback
	}{
		{
			name:       "cheaper up front and to run",
			base:       model.CostBreakdown{Years: 1, Training: 100, License: 100},
			competitor: model.CostBreakdown{Years: 1, Training: 500, License: 500},
			want:       model.Payback{Months: 0, Achievable: true},
		},
		{
			name:       "extra up front recovered from running costs",
			base:       model.CostBreakdown{Years: 1, Hardware: 1200},
			competitor: model.CostBreakdown{Years: 1, License: 1200},
			want:       model.Payback{Months: 12, Achievable: true},
		},
		{
			name:       "extra up front and dearer to run",
			base:       model.CostBreakdown{Years: 1, Hardware: 1200, License: 600},
			competitor: model.CostBreakdown{Years: 1, License: 300},
			want:       model.Payback{Months: 0, Achievable: false},
		},
		{
			name:       "cheaper up front but dearer to run",
			base:       model.CostBreakdown{Years: 1, License: 600},
			competitor: model.CostBreakdown{Years: 1, Hardware: 1200, License: 300},
			want:       model.Payback{Months: 0, Achievable: false},
		},
		{
			name:       "identical",
			base:       model.CostBreakdown{Years: 2, License: 600},
			competitor: model.CostBreakdown{Years: 2, License: 600},
			want:       model.Payback{Months: 0, Achievable: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculatePayback(tt.base, tt.competitor))
		})
	}
}

func TestAssessRisk(t *testing.T) {
	cat := catalog.Builtin()
	ind, err := cat.Industry("technology")
	require.NoError(t, err)
	s := model.NewScenario("risk")

	r, err := AssessRisk(cat, vendor(t, cat, "portnox"), ind, s, 488750)
	require.NoError(t, err)

	assert.Equal(t, 0.15, r.BreachProbability)
	assert.InDelta(t, 652500, r.AnnualExposure, 0.01)
	assert.InDelta(t, 391500, r.AvoidedLossPerYear, 0.01)
	assert.InDelta(t, 15625, r.InsuranceSavingsPerYear, 0.01)
	assert.InDelta(t, 1221375, r.TotalBenefit, 0.01)
	assert.InDelta(t, 488750-1221375, r.RiskAdjustedTotal, 0.01)

	s.Insurance = catalog.InsuranceNone
	r, err = AssessRisk(cat, vendor(t, cat, "portnox"), ind, s, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.InsuranceSavingsPerYear)

	s.Insurance = "premium"
	_, err = AssessRisk(cat, vendor(t, cat, "portnox"), ind, s, 0)
	assert.True(t, errors.Is(err, catalog.ErrUnknownInsuranceTier))
}

func TestAssessCompliance(t *testing.T) {
	cat := catalog.Builtin()
	tech, err := cat.Industry("technology")
	require.NoError(t, err)

	cov := AssessCompliance(cat, vendor(t, cat, "portnox"), tech)
	require.Len(t, cov.Frameworks, 3)
	assert.InDelta(t, (96.0+95+93)/3, cov.Average, 1e-9)
	assert.Empty(t, cov.Gaps)
	assert.Equal(t, "SOC 2", cov.Frameworks[0].Name)

	cov = AssessCompliance(cat, vendor(t, cat, "forescout"), tech)
	assert.Equal(t, []string{"gdpr"}, cov.Gaps)

	cov = AssessCompliance(cat, vendor(t, cat, "foxpass"), catalog.Industry{ID: "x", RequiredFrameworks: []string{"fedramp"}})
	assert.Equal(t, 0, cov.Frameworks[0].Coverage, "undeclared framework counts as zero")
	assert.Equal(t, []string{"fedramp"}, cov.Gaps)

	cov = AssessCompliance(cat, vendor(t, cat, "foxpass"), catalog.Industry{ID: "none"})
	assert.Len(t, cov.Frameworks, 6, "falls back to declared frameworks")

	cov = AssessCompliance(cat, catalog.Vendor{ID: "bare"}, catalog.Industry{ID: "none"})
	assert.Equal(t, 0.0, cov.Average)
	assert.Empty(t, cov.Frameworks)
}
