package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
)

func TestBuildWhatIfScenarios(t *testing.T) {
	base := model.NewScenario("base")
	base.Region = catalog.RegionEurope

	scenarios := BuildWhatIfScenarios(base)
	names := make([]string, 0, len(scenarios))
	for _, ns := range scenarios {
		names = append(names, ns.Name)
	}
	assert.Equal(t, []string{
		"Current Scenario",
		"Double Devices",
		"5-Year Horizon",
		"High-Cost Region",
		"Regulated Risk Profile",
	}, names)
	assert.Equal(t, 5000, scenarios[1].Scenario.Devices)
	assert.Equal(t, catalog.RegionEurope, base.Region, "base must be untouched")
}

func TestBuildWhatIfScenariosSkipsNoOps(t *testing.T) {
	base := model.NewScenario("base")
	base.Years = 5
	base.RiskProfile = catalog.RiskRegulated

	scenarios := BuildWhatIfScenarios(base)
	// region is already north_america with no explicit salary
	require.Len(t, scenarios, 2)
}

func TestCompareScenarios(t *testing.T) {
	cat := catalog.Builtin()
	results, err := CompareScenarios(cat, BuildWhatIfScenarios(model.NewScenario("base")))
	require.NoError(t, err)
	require.Len(t, results, 4)

	current := results[0]
	assert.Equal(t, "Current Scenario", current.Name)
	assert.InDelta(t, 488750, current.BaselineTotal, 0.01)
	assert.Equal(t, "portnox", current.CheapestVendor)
	assert.InDelta(t, 941250, current.BestSavings, 0.01)

	doubled := results[1]
	assert.Greater(t, doubled.BaselineTotal, current.BaselineTotal)
}

func TestCompareScenariosError(t *testing.T) {
	bad := model.NewScenario("bad")
	bad.Devices = 0
	_, err := CompareScenarios(catalog.Builtin(), []NamedScenario{{Name: "bad", Scenario: bad}})
	assert.Error(t, err)
}
