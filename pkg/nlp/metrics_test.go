package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/pkg/models"
)

func metricsRow(eventType, polarity string, score float64, matched, version string) models.MetricsRow {
	meta := map[string]interface{}{}
	if matched != "" {
		meta["matched_rules"] = matched
	}
	if version != "" {
		meta["nlp_ruleset_version"] = version
	}
	return models.MetricsRow{EventType: eventType, Polarity: polarity, Score: score, Metadata: meta}
}

func TestComputeWindowMetrics_Empty(t *testing.T) {
	m := ComputeWindowMetrics(nil, "builtin-v1")
	assert.Zero(t, m.SampleSize)
	assert.Equal(t, "builtin-v1", m.RulesetVersion)
	assert.Empty(t, m.PolarityRatios)
}

func TestComputeWindowMetrics_Aggregation(t *testing.T) {
	rows := []models.MetricsRow{
		metricsRow("share_buyback", "positive", 0.6, "buyback", "v2"),
		metricsRow("holder_reduction", "negative", 0.5, "holder-reduction", "v2"),
		metricsRow(GenericEventType, "neutral", 0.0, "", "v2"),
		metricsRow("share_buyback", "positive", 0.8, "buyback", "v1"),
	}

	m := ComputeWindowMetrics(rows, "builtin-v1")
	assert.Equal(t, 4, m.SampleSize)
	// The generic row has no matched_rules, so 3 of 4 hit.
	assert.InDelta(t, 0.75, m.HitRate, 1e-9)
	assert.InDelta(t, 0.475, m.ScoreMean, 1e-9)
	assert.InDelta(t, 0.5, m.PolarityRatios["positive"], 1e-9)
	assert.InDelta(t, 0.25, m.PolarityRatios["negative"], 1e-9)
	// Modal version wins over the fallback.
	assert.Equal(t, "v2", m.RulesetVersion)

	require.NotEmpty(t, m.TopEventTypes)
	assert.Equal(t, "share_buyback", m.TopEventTypes[0].EventType)
	assert.Equal(t, 2, m.TopEventTypes[0].Count)
}

func TestComputeWindowMetrics_GenericTypeNeverCountsAsHit(t *testing.T) {
	// A generic-typed row carrying matched_rules metadata still does not hit.
	rows := []models.MetricsRow{
		metricsRow(GenericEventType, "neutral", 0.1, "some-rule", ""),
	}
	m := ComputeWindowMetrics(rows, "builtin-v1")
	assert.Zero(t, m.HitRate)
}

func TestQuantile(t *testing.T) {
	sorted := []float64{0.1, 0.2, 0.3, 0.4}

	assert.Equal(t, 0.1, Quantile(sorted, 0))
	assert.Equal(t, 0.4, Quantile(sorted, 1))
	assert.InDelta(t, 0.25, Quantile(sorted, 0.5), 1e-9)
	assert.InDelta(t, 0.13, Quantile(sorted, 0.1), 1e-9)
	assert.Zero(t, Quantile(nil, 0.5))

	single := []float64{0.7}
	assert.Equal(t, 0.7, Quantile(single, 0.5))
}
