package models

import "time"

// RawAnnouncement is one raw record returned by an adapter before
// normalization. At least one of Title, Summary, Content must be present.
type RawAnnouncement struct {
	SourceEventID string                 `json:"source_event_id,omitempty"`
	Symbol        string                 `json:"symbol,omitempty"`
	TSCode        string                 `json:"ts_code,omitempty"`
	Title         string                 `json:"title,omitempty"`
	Summary       string                 `json:"summary,omitempty"`
	Content       string                 `json:"content,omitempty"`
	PublishTime   string                 `json:"publish_time,omitempty"`
	URL           string                 `json:"url,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// EventRow is one normalized event submitted to ingest.
type EventRow struct {
	EventID       string                 `json:"event_id"`
	Symbol        string                 `json:"symbol"`
	EventType     string                 `json:"event_type"`
	PublishTime   time.Time              `json:"publish_time"`
	EffectiveTime *time.Time             `json:"effective_time,omitempty"`
	Polarity      string                 `json:"polarity"`
	Score         float64                `json:"score"`
	Confidence    float64                `json:"confidence"`
	Title         string                 `json:"title"`
	Summary       string                 `json:"summary,omitempty"`
	RawRef        string                 `json:"raw_ref,omitempty"`
	Tags          []string               `json:"tags,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// IngestResult reports the outcome of one ingest batch. Errors are
// prefixed "idx=N: ..." so callers can map them back to input rows.
type IngestResult struct {
	Inserted int      `json:"inserted"`
	Updated  int      `json:"updated"`
	Errors   []string `json:"errors,omitempty"`
}

// RegisterSourceRequest registers or updates an event source.
type RegisterSourceRequest struct {
	SourceName          string  `json:"source_name"`
	SourceType          string  `json:"source_type"`
	Provider            string  `json:"provider,omitempty"`
	Timezone            string  `json:"timezone,omitempty"`
	IngestionLagMinutes int     `json:"ingestion_lag_minutes,omitempty"`
	ReliabilityScore    float64 `json:"reliability_score,omitempty"`
	CreatedBy           string  `json:"created_by,omitempty"`
	Note                string  `json:"note,omitempty"`
}

// EventFilter narrows list_events queries. A zero time bound is open.
type EventFilter struct {
	Symbol     string
	SourceName string
	EventType  string
	Start      time.Time
	End        time.Time
	Limit      int
}

// Bar is one OHLCV bar handed to EnrichBars by external collaborators.
// Only the trade date participates in enrichment; the remaining fields
// pass through untouched.
type Bar struct {
	TradeDate time.Time              `json:"trade_date"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// EnrichedBar is a Bar plus decayed event-score aggregates.
type EnrichedBar struct {
	Bar
	EventScorePositive float64 `json:"event_score_positive"`
	EventScoreNegative float64 `json:"event_score_negative"`
	EventCount         int     `json:"event_count"`
}

// FeaturePreviewRow is one calendar day of the feature projection
// returned by PreviewFeatures.
type FeaturePreviewRow struct {
	Date               time.Time `json:"date"`
	EventScorePositive float64   `json:"event_score_positive"`
	EventScoreNegative float64   `json:"event_score_negative"`
	EventCount         int       `json:"event_count"`
}
