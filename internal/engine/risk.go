package engine

import (
	"sort"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
)

// AssessRisk estimates the breach losses a vendor avoids and the insurance
// premium it saves over the scenario horizon. Unknown risk profiles and
// insurance tiers are errors.
func AssessRisk(cat *catalog.Catalog, v catalog.Vendor, ind catalog.Industry, s model.Scenario, total float64) (model.RiskAssessment, error) {
	prob, err := cat.BreachProbability(s.RiskProfile)
	if err != nil {
		return model.RiskAssessment{}, err
	}
	premium, err := cat.InsurancePremium(s.Insurance)
	if err != nil {
		return model.RiskAssessment{}, err
	}
	exposure := ind.BreachCost * prob
	avoided := exposure * v.Security.RiskReduction
	insurance := premium * float64(s.Devices) * v.Security.InsuranceDiscount
	benefit := float64(s.Years) * (avoided + insurance)

	return model.RiskAssessment{
		BreachProbability:       prob,
		AnnualExposure:          exposure,
		AvoidedLossPerYear:      avoided,
		InsuranceSavingsPerYear: insurance,
		TotalBenefit:            benefit,
		RiskAdjustedTotal:       total - benefit,
	}, nil
}

// AssessCompliance scores a vendor against the frameworks an industry
// requires. Industries without requirements are scored on whatever the
// vendor declares.
func AssessCompliance(cat *catalog.Catalog, v catalog.Vendor, ind catalog.Industry) model.ComplianceCoverage {
	ids := ind.RequiredFrameworks
	if len(ids) == 0 {
		ids = make([]string, 0, len(v.Compliance))
		for id := range v.Compliance {
			ids = append(ids, id)
		}
		sort.Strings(ids)
	}

	cov := model.ComplianceCoverage{
		Frameworks: make([]model.FrameworkCoverage, 0, len(ids)),
		Gaps:       []string{},
	}
	if len(ids) == 0 {
		return cov
	}

	sum := 0
	for _, id := range ids {
		name := id
		if fw, err := cat.Framework(id); err == nil {
			name = fw.Name
		}
		pct := v.Compliance[id]
		gap := pct < catalog.ComplianceGapThreshold
		if gap {
			cov.Gaps = append(cov.Gaps, id)
		}
		cov.Frameworks = append(cov.Frameworks, model.FrameworkCoverage{
			FrameworkID: id,
			Name:        name,
			Coverage:    pct,
			Gap:         gap,
		})
		sum += pct
	}
	cov.Average = float64(sum) / float64(len(ids))
	return cov
}
