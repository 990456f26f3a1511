package models

import "time"

// UpsertRulesetRequest creates or replaces a ruleset version.
type UpsertRulesetRequest struct {
	Version   string    `json:"version"`
	Rules     []NLPRule `json:"rules"`
	Activate  bool      `json:"activate,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// DriftCheckRequest compares NLP metrics between two date windows.
// Dates are local calendar dates; each expands to full-day UTC bounds.
type DriftCheckRequest struct {
	SourceName    string    `json:"source_name,omitempty"`
	CurrentStart  time.Time `json:"current_start"`
	CurrentEnd    time.Time `json:"current_end"`
	BaselineStart time.Time `json:"baseline_start,omitempty"`
	BaselineEnd   time.Time `json:"baseline_end,omitempty"`

	HitRateWarning   float64 `json:"hit_rate_warning,omitempty"`
	HitRateCritical  float64 `json:"hit_rate_critical,omitempty"`
	ScoreP50Warning  float64 `json:"score_p50_warning,omitempty"`
	ScoreP50Critical float64 `json:"score_p50_critical,omitempty"`

	// Optional backtest contribution compare.
	ContributionSymbol   string  `json:"contribution_symbol,omitempty"`
	ContributionStrategy string  `json:"contribution_strategy,omitempty"`
	ContributionWarning  float64 `json:"contribution_warning,omitempty"`
	ContributionCritical float64 `json:"contribution_critical,omitempty"`

	// Optional feedback quality compare.
	CheckFeedback      bool    `json:"check_feedback,omitempty"`
	FeedbackMinSamples int     `json:"feedback_min_samples,omitempty"`
	FeedbackWarning    float64 `json:"feedback_warning,omitempty"`
	FeedbackCritical   float64 `json:"feedback_critical,omitempty"`

	PersistSnapshot bool `json:"persist_snapshot,omitempty"`
}

// DriftResult is the outcome of one drift check.
type DriftResult struct {
	SourceName                      string        `json:"source_name,omitempty"`
	RulesetVersion                  string        `json:"ruleset_version"`
	CurrentWindow                   string        `json:"current_window"`
	BaselineWindow                  string        `json:"baseline_window"`
	Current                         WindowMetrics `json:"current"`
	Baseline                        WindowMetrics `json:"baseline"`
	HitRateDelta                    float64       `json:"hit_rate_delta"`
	ScoreP50Delta                   float64       `json:"score_p50_delta"`
	ContributionDelta               *float64      `json:"contribution_delta,omitempty"`
	FeedbackPolarityAccuracyDelta   *float64      `json:"feedback_polarity_accuracy_delta,omitempty"`
	FeedbackEventTypeAccuracyDelta  *float64      `json:"feedback_event_type_accuracy_delta,omitempty"`
	Alerts                          []DriftAlert  `json:"alerts,omitempty"`
	SnapshotID                      int           `json:"snapshot_id,omitempty"`
}

// DriftMonitorResult classifies the recent snapshot sequence.
type DriftMonitorResult struct {
	SourceName      string             `json:"source_name,omitempty"`
	Points          []DriftPoint       `json:"points"`
	LatestRiskLevel string             `json:"latest_risk_level"`
	Trends          map[string]float64 `json:"trends,omitempty"`
}

// DriftPoint is one snapshot in a monitor sequence, oldest first.
type DriftPoint struct {
	SnapshotID    int       `json:"snapshot_id"`
	CreatedAt     time.Time `json:"created_at"`
	HitRateDelta  float64   `json:"hit_rate_delta"`
	ScoreP50Delta float64   `json:"score_p50_delta"`
	WarningCount  int       `json:"warning_count"`
	CriticalCount int       `json:"critical_count"`
}

// LabelEntry is one labeler's judgement of one event.
type LabelEntry struct {
	SourceName     string   `json:"source_name"`
	EventID        string   `json:"event_id"`
	Labeler        string   `json:"labeler"`
	LabelEventType string   `json:"label_event_type"`
	LabelPolarity  string   `json:"label_polarity"`
	LabelScore     *float64 `json:"label_score,omitempty"`
	PredictedScore float64  `json:"predicted_score,omitempty"`
}

// AdjudicateRequest collapses multi-labeler entries into consensus rows.
type AdjudicateRequest struct {
	Entries          []LabelEntry `json:"entries"`
	MinLabelers      int          `json:"min_labelers,omitempty"`
	RequireUnanimous bool         `json:"require_unanimous,omitempty"`
	Persist          bool         `json:"persist,omitempty"`
}

// ConsensusLabel is one adjudicated event label.
type ConsensusLabel struct {
	SourceName        string   `json:"source_name"`
	EventID           string   `json:"event_id"`
	ConsensusEventType string  `json:"consensus_event_type"`
	ConsensusPolarity string   `json:"consensus_polarity"`
	ConsensusScore    float64  `json:"consensus_score"`
	Confidence        float64  `json:"confidence"`
	LabelCount        int      `json:"label_count"`
	Conflict          bool     `json:"conflict"`
	ConflictReasons   []string `json:"conflict_reasons,omitempty"`
}

// AdjudicateResult aggregates one adjudication pass.
type AdjudicateResult struct {
	Adjudicated int              `json:"adjudicated"`
	Skipped     int              `json:"skipped"`
	Conflicts   int              `json:"conflicts"`
	Labels      []ConsensusLabel `json:"labels"`
}
