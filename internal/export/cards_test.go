package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/model"
)

func TestCollectCardInfos(t *testing.T) {
	cmp := buildTestComparison(t)
	cards := CollectCardInfos(cmp)
	require.Len(t, cards, len(cmp.Results))

	for i, card := range cards {
		assert.Equal(t, i+1, card.Rank)
		assert.Equal(t, "export-test", card.ScenarioID)
		assert.Equal(t, 2500, card.Devices)
		assert.Equal(t, 3, card.Years)
	}

	first := cards[0]
	assert.Equal(t, "portnox", first.VendorID)
	assert.True(t, first.Baseline)
	assert.InDelta(t, 488750, first.Total, 0.01)
	assert.Equal(t, "Immediate", first.Payback)

	last := cards[len(cards)-1]
	assert.Equal(t, "cisco_ise", last.VendorID)
	assert.False(t, last.Baseline)
	assert.InDelta(t, 941250, last.Savings, 0.01)
}

func TestCardInfoQRPayload(t *testing.T) {
	info := CollectCardInfos(buildTestComparison(t))[1]
	data, err := json.Marshal(info)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, info.VendorID, decoded["vendor"])
	assert.Equal(t, "export-test", decoded["scenario"])
	assert.Contains(t, decoded, "total")
	assert.Contains(t, decoded, "savings_pct")
	assert.NotContains(t, decoded, "baseline")

	// QR capacity at medium recovery is ~2300 bytes; stay well under.
	assert.Less(t, len(data), 600)
}

func TestVendorCardsWritesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, VendorCards(&buf, buildTestComparison(t)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 2_000)
}

func TestVendorCardsMultiplePages(t *testing.T) {
	s := model.NewScenario("Cards")
	s.ID = "cards"
	s.VendorIDs = []string{
		"portnox", "cisco_ise", "aruba_clearpass", "forescout", "fortinac",
		"extreme_control", "microsoft_nps", "packetfence", "foxpass", "securew2",
	}
	cmp := compareScenario(t, s)

	var buf bytes.Buffer
	require.NoError(t, VendorCards(&buf, cmp))
	assert.Contains(t, buf.String(), "/Count 2")
}

func TestVendorCardsEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, VendorCards(&buf, model.Comparison{}))
}
