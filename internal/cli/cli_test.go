package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/engine"
	"github.com/piwi3910/tcocompare/internal/export"
	"github.com/piwi3910/tcocompare/internal/model"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	err := newCommand("test", &stdout, &stderr).Run(context.Background(), append([]string{"tcocompare"}, args...))
	return stdout.String(), err
}

func calcJSON(t *testing.T, args ...string) model.Comparison {
	t.Helper()
	out, err := runCLI(t, append([]string{"calc", "--json"}, args...)...)
	require.NoError(t, err)

	var cmp model.Comparison
	require.NoError(t, json.Unmarshal([]byte(out), &cmp))
	return cmp
}

func TestVendorsCommand(t *testing.T) {
	out, err := runCLI(t, "vendors")
	require.NoError(t, err)
	assert.Contains(t, out, "Portnox CLEAR")
	assert.Contains(t, out, "cisco_ise")
	assert.Contains(t, out, "License/Device/Yr")
}

func TestCalcDefaultScenario(t *testing.T) {
	out, err := runCLI(t, "calc")
	require.NoError(t, err)

	assert.Contains(t, out, "Portnox CLEAR (baseline)")
	assert.Contains(t, out, "$488,750")
	assert.Contains(t, out, "$1,430,000")
	assert.Contains(t, out, "$941,250")
	assert.NotContains(t, out, "Recommendations")
}

func TestCalcJSON(t *testing.T) {
	cmp := calcJSON(t)
	assert.Equal(t, "portnox", cmp.Baseline)
	require.Len(t, cmp.Results, 4)
	assert.Equal(t, "portnox", cmp.Results[0].Breakdown.VendorID)
}

func TestCalcFlagsOverrideScenarioFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hospital.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Hospital\ndevices: 1000\nindustry: healthcare\nvendors: [cisco_ise]\n"), 0o644))

	cmp := calcJSON(t, "--scenario", path, "--devices", "5000", "--vendor", "forescout", "--vendor", "cisco_ise")
	assert.Equal(t, "Hospital", cmp.Scenario.Name)
	assert.Equal(t, 5000, cmp.Scenario.Devices)
	assert.Equal(t, "healthcare", cmp.Scenario.Industry)
	assert.Equal(t, []string{"forescout", "cisco_ise"}, cmp.Scenario.VendorIDs)
	// baseline is always compared
	assert.Len(t, cmp.Results, 3)
}

func TestCalcSalaryAndPriorities(t *testing.T) {
	cmp := calcJSON(t, "--salary", "100000", "--priority", "security")
	assert.Equal(t, 100000.0, cmp.Scenario.AvgFTESalary)
	assert.Equal(t, []model.Priority{model.PrioritySecurity}, cmp.Scenario.Priorities)
	for _, r := range cmp.Results {
		assert.Equal(t, 100000.0, r.Breakdown.FTESalary)
	}
}

func TestCalcInvalidScenario(t *testing.T) {
	_, err := runCLI(t, "calc", "--years", "11")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidScenario))

	_, err = runCLI(t, "calc", "--priority", "speed")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidScenario))
}

func TestCalcUnknownVendor(t *testing.T) {
	_, err := runCLI(t, "calc", "--vendor", "nope")
	assert.Error(t, err)
}

func TestCalcAnalyses(t *testing.T) {
	out, err := runCLI(t, "calc", "--recommend", "--what-if", "--sensitivity", "devices", "--value", "1000", "--value", "2000")
	require.NoError(t, err)

	assert.Contains(t, out, "Recommendations")
	assert.Contains(t, out, "What-If Scenarios")
	assert.Contains(t, out, "Double Devices")
	assert.Contains(t, out, "Sensitivity: devices")
	assert.Contains(t, out, "1000")
	assert.Contains(t, out, "2000")
}

func TestCalcSensitivityEmptyBaselineKeepsDefaultColumn(t *testing.T) {
	out, err := runCLI(t, "calc", "--baseline", "", "--vendor", "cisco_ise",
		"--sensitivity", "devices", "--value", "1000")
	require.NoError(t, err)

	_, section, found := strings.Cut(out, "Sensitivity: devices")
	require.True(t, found)
	assert.Contains(t, section, "portnox")
	assert.Contains(t, section, "cisco_ise")
}

func TestCalcUnknownSensitivityParameter(t *testing.T) {
	_, err := runCLI(t, "calc", "--sensitivity", "weather")
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrUnknownParameter))
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "export", "--out", dir, "--format", "csv", "--format", "HTML", "--name", "Export")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], ".csv"))
	assert.True(t, strings.HasSuffix(lines[1], ".html"))
	for _, p := range lines {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestExportUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "export", "--out", dir, "--format", "docx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, export.ErrUnknownFormat))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestQuotesFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quotes.csv")
	require.NoError(t, os.WriteFile(path, []byte("vendor,license\nportnox,10\n"), 0o644))

	cmp := calcJSON(t, "--quotes", path)
	r, ok := cmp.Result("portnox")
	require.True(t, ok)
	assert.Less(t, r.Breakdown.Total, 488750.0)
}

func TestQuotesFlagUnknownVendor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quotes.csv")
	require.NoError(t, os.WriteFile(path, []byte("vendor,license\nacme_nac,10\n"), 0o644))

	_, err := runCLI(t, "--quotes", path, "calc")
	assert.Error(t, err)
}

func TestCatalogFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[vendor]]\nid = \"portnox\"\nname = \"Portnox Renamed\"\n"), 0o644))

	out, err := runCLI(t, "--catalog", path, "vendors")
	require.NoError(t, err)
	assert.Contains(t, out, "Portnox Renamed")

	_, err = runCLI(t, "--catalog", filepath.Join(dir, "missing.toml"), "vendors")
	assert.Error(t, err)
}

func TestInvalidLogFlags(t *testing.T) {
	_, err := runCLI(t, "--log-level", "chatty", "vendors")
	assert.Error(t, err)

	_, err = runCLI(t, "--log-format", "xml", "vendors")
	assert.Error(t, err)
}

func TestEnvFileFromArgs(t *testing.T) {
	t.Setenv("TCOCOMPARE_ENV_FILE", "")
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"tcocompare", "calc"}, ".env"},
		{[]string{"tcocompare", "--env-file", "prod.env", "calc"}, "prod.env"},
		{[]string{"tcocompare", "--env-file=ci.env"}, "ci.env"},
		{[]string{"tcocompare", "--", "--env-file", "ignored.env"}, ".env"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, envFileFromArgs(tt.args), "%v", tt.args)
	}

	t.Setenv("TCOCOMPARE_ENV_FILE", "from-env.env")
	assert.Equal(t, "from-env.env", envFileFromArgs([]string{"tcocompare"}))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, loadEnvFile([]string{"tcocompare", "--env-file", filepath.Join(dir, "missing.env")}))

	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TCOCOMPARE_TEST_LOADED=yes\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("TCOCOMPARE_TEST_LOADED") })

	require.NoError(t, loadEnvFile([]string{"tcocompare", "--env-file", path}))
	assert.Equal(t, "yes", os.Getenv("TCOCOMPARE_TEST_LOADED"))
}

func TestTableRenderAlignsColumns(t *testing.T) {
	color.NoColor = true
	tb := table{headers: []string{"Vendor", "Total"}}
	tb.add(plain("A"), num("$1"))
	tb.add(plain("Longer Name"), signed("-$1,000", -1000))

	var buf bytes.Buffer
	tb.render(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Vendor       Total", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "A                 $1", lines[1])
	assert.Equal(t, "Longer Name  -$1,000", lines[2])
}
