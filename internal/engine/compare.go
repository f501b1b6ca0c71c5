package engine

import (
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
)

// Compare runs the cost model for every vendor in the scenario and measures
// each one against the baseline. The baseline is included even if the
// scenario's vendor list omits it.
func Compare(cat *catalog.Catalog, s model.Scenario) (model.Comparison, error) {
	if err := s.Validate(); err != nil {
		return model.Comparison{}, err
	}
	if s.BaselineVendorID == "" {
		s.BaselineVendorID = catalog.BaselineVendorID
	}

	ind, err := cat.Industry(s.Industry)
	if err != nil {
		return model.Comparison{}, err
	}
	if _, err := cat.BreachProbability(s.RiskProfile); err != nil {
		return model.Comparison{}, goerr.Wrap(err, "scenario has an unknown risk profile", goerr.V("scenario_id", s.ID))
	}
	if _, err := cat.InsurancePremium(s.Insurance); err != nil {
		return model.Comparison{}, goerr.Wrap(err, "scenario has an unknown insurance tier", goerr.V("scenario_id", s.ID))
	}

	ids := s.AllVendorIDs()
	vendors := make([]catalog.Vendor, 0, len(ids))
	for _, id := range ids {
		v, err := cat.Vendor(id)
		if err != nil {
			return model.Comparison{}, goerr.Wrap(err, "scenario references unknown vendor", goerr.V("scenario_id", s.ID))
		}
		vendors = append(vendors, v)
	}

	salary := ResolveSalary(cat, s)
	results := make([]model.VendorResult, 0, len(vendors))
	for _, v := range vendors {
		b := CalculateTCO(v, s, salary)
		risk, err := AssessRisk(cat, v, ind, s, b.Total)
		if err != nil {
			return model.Comparison{}, err
		}
		results = append(results, model.VendorResult{
			Breakdown:  b,
			Yearly:     YearlyCosts(b),
			Risk:       risk,
			Compliance: AssessCompliance(cat, v, ind),
			IsBaseline: v.ID == s.BaselineVendorID,
		})
	}

	// baseline is always first in AllVendorIDs
	base := results[0].Breakdown
	for i := range results {
		if results[i].IsBaseline {
			results[i].Payback = model.Payback{Achievable: true}
			continue
		}
		applySavings(&results[i], base)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Breakdown.Total != results[j].Breakdown.Total {
			return results[i].Breakdown.Total < results[j].Breakdown.Total
		}
		return results[i].Breakdown.VendorID < results[j].Breakdown.VendorID
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	return model.Comparison{
		Scenario:    s.Clone(),
		Baseline:    s.BaselineVendorID,
		Results:     results,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// applySavings fills the baseline-relative figures of a competitor result.
func applySavings(r *model.VendorResult, base model.CostBreakdown) {
	c := r.Breakdown
	r.Savings = c.Total - base.Total
	if c.Total != 0 {
		r.SavingsPercent = r.Savings / c.Total * 100
	}
	if base.Total != 0 {
		r.ROIPercent = r.Savings / base.Total * 100
	}
	r.Payback = CalculatePayback(base, c)
}

// CalculatePayback returns how long choosing the baseline over a competitor
// takes to recover any extra up-front spend from lower running costs.
func CalculatePayback(base, competitor model.CostBreakdown) model.Payback {
	upfront := base.OneTime() - competitor.OneTime()
	monthly := (competitor.Annual() - base.Annual()) / 12

	switch {
	case upfront <= 0 && monthly >= 0:
		return model.Payback{Months: 0, Achievable: true}
	case monthly <= 0:
		return model.Payback{Months: 0, Achievable: false}
	default:
		return model.Payback{Months: upfront / monthly, Achievable: true}
	}
}
