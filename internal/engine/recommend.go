package engine

import (
	"sort"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
)

// Weights sets how much each axis contributes to a recommendation score.
type Weights struct {
	Cost       float64 `json:"cost"`
	Security   float64 `json:"security"`
	Compliance float64 `json:"compliance"`
	Operations float64 `json:"operations"`
}

// DefaultWeights favour cost, then security.
func DefaultWeights() Weights {
	return Weights{Cost: 0.4, Security: 0.3, Compliance: 0.2, Operations: 0.1}
}

// WeightsFor keeps the default weight of each listed priority and zeroes the
// rest. No priorities means the defaults.
func WeightsFor(priorities []model.Priority) Weights {
	d := DefaultWeights()
	if len(priorities) == 0 {
		return d
	}
	var w Weights
	for _, p := range priorities {
		switch p {
		case model.PriorityCost:
			w.Cost = d.Cost
		case model.PrioritySecurity:
			w.Security = d.Security
		case model.PriorityCompliance:
			w.Compliance = d.Compliance
		case model.PriorityOperations:
			w.Operations = d.Operations
		}
	}
	return w
}

// Normalize scales the weights to sum to 1. All-zero weights become the defaults.
func (w Weights) Normalize() Weights {
	sum := w.Cost + w.Security + w.Compliance + w.Operations
	if sum <= 0 {
		return DefaultWeights()
	}
	return Weights{
		Cost:       w.Cost / sum,
		Security:   w.Security / sum,
		Compliance: w.Compliance / sum,
		Operations: w.Operations / sum,
	}
}

// Recommend compares the scenario and ranks its vendors by weighted score,
// using the scenario's priorities.
func Recommend(cat *catalog.Catalog, s model.Scenario) ([]model.Recommendation, error) {
	cmp, err := Compare(cat, s)
	if err != nil {
		return nil, err
	}
	return RecommendFromComparison(cat, cmp, WeightsFor(s.Priorities))
}

// RecommendFromComparison scores the vendors of an existing comparison.
// Output is sorted by score, best first.
func RecommendFromComparison(cat *catalog.Catalog, cmp model.Comparison, w Weights) ([]model.Recommendation, error) {
	w = w.Normalize()
	cheapest, ok := cmp.Cheapest()
	if !ok {
		return []model.Recommendation{}, nil
	}
	minTotal := cheapest.Breakdown.Total

	recs := make([]model.Recommendation, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		v, err := cat.Vendor(r.VendorID())
		if err != nil {
			return nil, err
		}
		costScore := 100.0
		if r.Breakdown.Total > 0 {
			costScore = minTotal / r.Breakdown.Total * 100
		}
		rec := model.Recommendation{
			VendorID:        v.ID,
			VendorName:      v.Name,
			CostScore:       costScore,
			SecurityScore:   v.Security.ZeroTrustScore,
			ComplianceScore: r.Compliance.Average,
			OperationsScore: v.Security.AutomationLevel,
		}
		rec.Score = w.Cost*rec.CostScore +
			w.Security*rec.SecurityScore +
			w.Compliance*rec.ComplianceScore +
			w.Operations*rec.OperationsScore
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].VendorID < recs[j].VendorID
	})
	return recs, nil
}
