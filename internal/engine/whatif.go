package engine

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
)

// NamedScenario is one what-if variant of a base scenario.
type NamedScenario struct {
	Name     string
	Scenario model.Scenario
}

// ScenarioResult holds the comparison of one what-if variant and the figures
// shown side by side.
type ScenarioResult struct {
	Name           string
	Comparison     model.Comparison
	BaselineTotal  float64
	CheapestVendor string
	// BestSavings is the largest saving of the baseline against any competitor.
	BestSavings float64
}

// CompareScenarios compares each named scenario in order.
func CompareScenarios(cat *catalog.Catalog, scenarios []NamedScenario) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(scenarios))

	for _, ns := range scenarios {
		cmp, err := Compare(cat, ns.Scenario)
		if err != nil {
			return nil, goerr.Wrap(err, "what-if scenario failed", goerr.V("scenario", ns.Name))
		}

		sr := ScenarioResult{Name: ns.Name, Comparison: cmp}
		if base, ok := cmp.BaselineResult(); ok {
			sr.BaselineTotal = base.Breakdown.Total
		}
		if cheapest, ok := cmp.Cheapest(); ok {
			sr.CheapestVendor = cheapest.VendorID()
		}
		for _, r := range cmp.Results {
			if !r.IsBaseline && r.Savings > sr.BestSavings {
				sr.BestSavings = r.Savings
			}
		}
		results = append(results, sr)
	}

	return results, nil
}

// BuildWhatIfScenarios generates variants of base that change one input at a
// time, to show how sensitive the comparison is to organisation size,
// horizon, labour cost and risk.
func BuildWhatIfScenarios(base model.Scenario) []NamedScenario {
	scenarios := []NamedScenario{
		{Name: "Current Scenario", Scenario: base.Clone()},
	}

	doubled := base.Clone()
	doubled.Devices = base.Devices * 2
	scenarios = append(scenarios, NamedScenario{Name: "Double Devices", Scenario: doubled})

	if base.Years != 5 {
		longer := base.Clone()
		longer.Years = 5
		scenarios = append(scenarios, NamedScenario{Name: "5-Year Horizon", Scenario: longer})
	}

	if base.Region != catalog.RegionNorthAmerica || base.AvgFTESalary > 0 {
		region := base.Clone()
		region.Region = catalog.RegionNorthAmerica
		region.AvgFTESalary = 0
		scenarios = append(scenarios, NamedScenario{Name: "High-Cost Region", Scenario: region})
	}

	if base.RiskProfile != catalog.RiskRegulated {
		risk := base.Clone()
		risk.RiskProfile = catalog.RiskRegulated
		scenarios = append(scenarios, NamedScenario{Name: "Regulated Risk Profile", Scenario: risk})
	}

	return scenarios
}
