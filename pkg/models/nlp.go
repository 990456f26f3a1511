// Package models defines the request and result types shared across the
// event-ingestion core. It stays dependency-free so ent schemas, adapters
// and services can all import it.
package models

// NLPRule is one text-pattern rule inside a versioned ruleset.
type NLPRule struct {
	RuleID    string   `json:"rule_id"`
	EventType string   `json:"event_type"`
	Polarity  string   `json:"polarity"`
	Weight    float64  `json:"weight"`
	Tag       string   `json:"tag,omitempty"`
	Patterns  []string `json:"patterns"`
}

// NLPScoreResult captures how the standardizer scored one raw record.
type NLPScoreResult struct {
	RulesetVersion string   `json:"ruleset_version"`
	EventType      string   `json:"event_type"`
	Polarity       string   `json:"polarity"`
	Score          float64  `json:"score"`
	Confidence     float64  `json:"confidence"`
	MatchedRules   []string `json:"matched_rules"`
	Tags           []string `json:"tags"`
}

// DriftAlert is one threshold crossing produced by a drift check.
type DriftAlert struct {
	Metric   string  `json:"metric"`
	Severity string  `json:"severity"`
	Value    float64 `json:"value"`
	Message  string  `json:"message"`
}

// WindowMetrics aggregates normalized events over one date window.
type WindowMetrics struct {
	SampleSize     int                `json:"sample_size"`
	HitRate        float64            `json:"hit_rate"`
	ScoreMean      float64            `json:"score_mean"`
	ScoreP10       float64            `json:"score_p10"`
	ScoreP50       float64            `json:"score_p50"`
	ScoreP90       float64            `json:"score_p90"`
	PolarityRatios map[string]float64 `json:"polarity_ratios"`
	TopEventTypes  []EventTypeCount   `json:"top_event_types"`
	RulesetVersion string             `json:"ruleset_version"`
}

// EventTypeCount is one entry of WindowMetrics.TopEventTypes.
type EventTypeCount struct {
	EventType string `json:"event_type"`
	Count     int    `json:"count"`
}

// MetricsRow is the raw projection the store returns for drift aggregation.
type MetricsRow struct {
	EventType string
	Polarity  string
	Score     float64
	Metadata  map[string]interface{}
}

// FeedbackAccuracy summarizes feedback agreement over one window.
type FeedbackAccuracy struct {
	SampleSize        int     `json:"sample_size"`
	PolarityAccuracy  float64 `json:"polarity_accuracy"`
	EventTypeAccuracy float64 `json:"event_type_accuracy"`
}
