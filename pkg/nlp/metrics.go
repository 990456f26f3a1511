package nlp

import (
	"sort"
	"strings"

	"github.com/quantmuse/eventcore/pkg/models"
)

// ComputeWindowMetrics aggregates raw event rows for one drift window.
// fallbackVersion is reported when no row carries nlp_ruleset_version
// metadata. The ruleset version read here is the one each event was
// scored with, not the currently active one, so historical windows stay
// explainable.
func ComputeWindowMetrics(rows []models.MetricsRow, fallbackVersion string) models.WindowMetrics {
	m := models.WindowMetrics{
		SampleSize:     len(rows),
		PolarityRatios: map[string]float64{},
		RulesetVersion: fallbackVersion,
	}
	if len(rows) == 0 {
		return m
	}

	scores := make([]float64, 0, len(rows))
	typeCounts := map[string]int{}
	polarityCounts := map[string]int{}
	versionCounts := map[string]int{}
	hitCount := 0

	for _, row := range rows {
		scores = append(scores, row.Score)
		typeCounts[row.EventType]++
		polarityCounts[row.Polarity]++
		if matched, ok := row.Metadata["matched_rules"].(string); ok &&
			strings.TrimSpace(matched) != "" && row.EventType != GenericEventType {
			hitCount++
		}
		if v, ok := row.Metadata["nlp_ruleset_version"].(string); ok && v != "" {
			versionCounts[v]++
		}
	}

	sort.Float64s(scores)
	var sum float64
	for _, s := range scores {
		sum += s
	}

	m.HitRate = float64(hitCount) / float64(len(rows))
	m.ScoreMean = sum / float64(len(scores))
	m.ScoreP10 = Quantile(scores, 0.10)
	m.ScoreP50 = Quantile(scores, 0.50)
	m.ScoreP90 = Quantile(scores, 0.90)

	for polarity, count := range polarityCounts {
		m.PolarityRatios[polarity] = float64(count) / float64(len(rows))
	}
	m.TopEventTypes = topEventTypes(typeCounts, 8)
	if v := modalVersion(versionCounts); v != "" {
		m.RulesetVersion = v
	}
	return m
}

// Quantile computes the linearly interpolated q-quantile of an already
// sorted slice. On exact ties the lower index wins.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if frac == 0 || lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// topEventTypes returns the n most frequent types, count descending and
// name ascending on ties, so the output is deterministic.
func topEventTypes(counts map[string]int, n int) []models.EventTypeCount {
	out := make([]models.EventTypeCount, 0, len(counts))
	for eventType, count := range counts {
		out = append(out, models.EventTypeCount{EventType: eventType, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].EventType < out[j].EventType
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// modalVersion picks the most frequent version, name ascending on ties.
func modalVersion(counts map[string]int) string {
	var best string
	bestCount := 0
	versions := make([]string, 0, len(counts))
	for v := range counts {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	for _, v := range versions {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
