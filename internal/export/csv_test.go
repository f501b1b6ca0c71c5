package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/model"
)

func TestCSV(t *testing.T) {
	cmp := buildTestComparison(t)
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, cmp))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(cmp.Results)+1)
	assert.Equal(t, CSVHeader, records[0])

	col := make(map[string]int, len(CSVHeader))
	for i, h := range CSVHeader {
		col[h] = i
	}

	first := records[1]
	assert.Len(t, first, len(CSVHeader))
	assert.Equal(t, "1", first[col["rank"]])
	assert.Equal(t, "portnox", first[col["vendor_id"]])
	assert.Equal(t, "true", first[col["baseline"]])
	assert.Equal(t, "488750.00", first[col["total"]])
	assert.Equal(t, "93750.00", first[col["personnel"]])

	last := records[len(records)-1]
	assert.Equal(t, "cisco_ise", last[col["vendor_id"]])
	assert.Equal(t, "941250.00", last[col["savings"]])
	assert.Equal(t, "90000.00", last[col["hardware"]])
	assert.Equal(t, "true", last[col["payback_achievable"]])
}

func TestCSVEmptyComparisonWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, model.Comparison{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestJSON(t *testing.T) {
	cmp := buildTestComparison(t)
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, cmp))
	assert.Contains(t, buf.String(), "\n  ")

	var decoded model.Comparison
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, cmp.Baseline, decoded.Baseline)
	require.Len(t, decoded.Results, len(cmp.Results))
	assert.InDelta(t, cmp.Results[0].Breakdown.Total, decoded.Results[0].Breakdown.Total, 0.001)
	assert.Equal(t, cmp.Scenario.ID, decoded.Scenario.ID)
}
