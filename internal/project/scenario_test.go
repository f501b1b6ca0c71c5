package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/model"
)

func TestParseScenarioYAMLDefaults(t *testing.T) {
	s, err := ParseScenarioYAML([]byte("devices: 10000\nvendors: [portnox, cisco_ise]\n"))
	require.NoError(t, err)

	defaults := model.NewScenario("")
	assert.Equal(t, 10000, s.Devices)
	assert.Equal(t, []string{"portnox", "cisco_ise"}, s.VendorIDs)
	assert.Equal(t, defaults.Years, s.Years)
	assert.Equal(t, defaults.Industry, s.Industry)
	assert.Equal(t, defaults.Region, s.Region)
	assert.Equal(t, defaults.BaselineVendorID, s.BaselineVendorID)
}

func TestParseScenarioYAMLEmptyDocument(t *testing.T) {
	s, err := ParseScenarioYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, 2500, s.Devices)
}

func TestParseScenarioYAMLFullDocument(t *testing.T) {
	doc := `
name: Hospital group
devices: 5000
years: 5
industry: healthcare
region: europe
risk_profile: regulated
insurance: comprehensive
avg_fte_salary: 98000
vendors: [portnox, forescout]
baseline: portnox
priorities: [security, compliance]
`
	s, err := ParseScenarioYAML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "Hospital group", s.Name)
	assert.Equal(t, 5, s.Years)
	assert.Equal(t, "regulated", s.RiskProfile)
	assert.Equal(t, 98000.0, s.AvgFTESalary)
	assert.Equal(t, []model.Priority{model.PrioritySecurity, model.PriorityCompliance}, s.Priorities)
}

func TestParseScenarioYAMLRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "devicez: 10\n"},
		{"wrong type", "devices: many\n"},
		{"invalid years", "years: 11\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenarioYAML([]byte(tt.doc))
			assert.Error(t, err)
		})
	}

	_, err := ParseScenarioYAML([]byte("years: 0\n"))
	require.True(t, errors.Is(err, model.ErrInvalidScenario))
	var ge *goerr.Error
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "years", ge.Values()["field"])
}

func TestSaveAndLoadScenarioYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios", "retail.yaml")

	s := model.NewScenario("Retail")
	s.Devices = 1200
	s.VendorIDs = []string{"portnox", "fortinac"}
	require.NoError(t, SaveScenarioYAML(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vendors:")
	assert.Contains(t, string(data), "baseline: portnox")

	loaded, err := LoadScenarioYAML(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadScenarioYAMLNameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus.yml")
	require.NoError(t, os.WriteFile(path, []byte("devices: 300\n"), 0644))

	s, err := LoadScenarioYAML(path)
	require.NoError(t, err)
	assert.Equal(t, "campus", s.Name)
}

func TestLoadScenarioYAMLMissingFile(t *testing.T) {
	_, err := LoadScenarioYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
