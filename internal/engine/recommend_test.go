package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
)

func TestWeightsFor(t *testing.T) {
	assert.Equal(t, DefaultWeights(), WeightsFor(nil))

	w := WeightsFor([]model.Priority{model.PriorityCost, model.PriorityOperations})
	assert.Equal(t, Weights{Cost: 0.4, Operations: 0.1}, w)

	n := w.Normalize()
	assert.InDelta(t, 0.8, n.Cost, 1e-9)
	assert.InDelta(t, 0.2, n.Operations, 1e-9)
	assert.Equal(t, 0.0, n.Security)

	assert.Equal(t, DefaultWeights(), Weights{}.Normalize())
}

func TestRecommendDefaultScenario(t *testing.T) {
	cat := catalog.Builtin()
	recs, err := Recommend(cat, model.NewScenario("rec"))
	require.NoError(t, err)
	require.Len(t, recs, 4)

	assert.Equal(t, "portnox", recs[0].VendorID)
	assert.Equal(t, 100.0, recs[0].CostScore)
	assert.InDelta(t, 0.4*100+0.3*95+0.2*(284.0/3)+0.1*90, recs[0].Score, 1e-9)

	for i, r := range recs {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 100.0)
		if i > 0 {
			assert.LessOrEqual(t, r.Score, recs[i-1].Score)
		}
	}
}

func TestRecommendSecurityOnly(t *testing.T) {
	s := model.NewScenario("sec")
	s.Priorities = []model.Priority{model.PrioritySecurity}

	recs, err := Recommend(catalog.Builtin(), s)
	require.NoError(t, err)
	for _, r := range recs {
		assert.InDelta(t, r.SecurityScore, r.Score, 1e-9, r.VendorID)
	}
}

func TestRecommendEmptyComparison(t *testing.T) {
	recs, err := RecommendFromComparison(catalog.Builtin(), model.Comparison{}, DefaultWeights())
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendPropagatesCompareError(t *testing.T) {
	s := model.NewScenario("bad")
	s.Devices = 0
	_, err := Recommend(catalog.Builtin(), s)
	assert.Error(t, err)
}
