package models

import "time"

// RegisterConnectorRequest creates or updates a connector.
type RegisterConnectorRequest struct {
	ConnectorName        string                 `json:"connector_name"`
	SourceName           string                 `json:"source_name"`
	ConnectorType        string                 `json:"connector_type"`
	Enabled              *bool                  `json:"enabled,omitempty"`
	FetchLimit           int                    `json:"fetch_limit,omitempty"`
	PollIntervalMinutes  int                    `json:"poll_interval_minutes,omitempty"`
	ReplayBackoffSeconds int                    `json:"replay_backoff_seconds,omitempty"`
	MaxRetry             int                    `json:"max_retry,omitempty"`
	Config               map[string]interface{} `json:"config,omitempty"`
	CreatedBy            string                 `json:"created_by,omitempty"`
	Note                 string                 `json:"note,omitempty"`
}

// RunConnectorRequest triggers one connector run.
type RunConnectorRequest struct {
	ConnectorName string `json:"connector_name"`
	TriggeredBy   string `json:"triggered_by,omitempty"`
	DryRun        bool   `json:"dry_run,omitempty"`
	ForceFullSync bool   `json:"force_full_sync,omitempty"`
	Limit         int    `json:"limit,omitempty"`
}

// SourceAttempt records one candidate tried during a run.
type SourceAttempt struct {
	SourceKey       string `json:"source_key"`
	ConnectorType   string `json:"connector_type"`
	Status          string `json:"status"` // SUCCESS, FAILED, SKIPPED_BUDGET
	LatencyMS       int64  `json:"latency_ms,omitempty"`
	CredentialAlias string `json:"credential_alias,omitempty"`
	Error           string `json:"error,omitempty"`
}

// RunResult summarizes one finished connector run.
type RunResult struct {
	RunID             string          `json:"run_id"`
	ConnectorName     string          `json:"connector_name"`
	SourceName        string          `json:"source_name"`
	Status            string          `json:"status"`
	PulledCount       int             `json:"pulled_count"`
	NormalizedCount   int             `json:"normalized_count"`
	InsertedCount     int             `json:"inserted_count"`
	UpdatedCount      int             `json:"updated_count"`
	FailedCount       int             `json:"failed_count"`
	CheckpointBefore  string          `json:"checkpoint_before,omitempty"`
	CheckpointAfter   string          `json:"checkpoint_after,omitempty"`
	SelectedSourceKey string          `json:"selected_source_key,omitempty"`
	SourceAttempts    []SourceAttempt `json:"source_attempts,omitempty"`
	ErrorMessage      string          `json:"error_message,omitempty"`
}

// FailurePayload is the typed view of a connector_failures payload column.
type FailurePayload struct {
	Phase     string                 `json:"phase"` // normalize or ingest
	RawRecord *RawAnnouncement       `json:"raw_record,omitempty"`
	Event     *EventRow              `json:"event,omitempty"`
	SourceKey string                 `json:"source_key,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

// ReplayResult aggregates one replay pass.
type ReplayResult struct {
	ConnectorName string            `json:"connector_name"`
	Picked        int               `json:"picked"`
	Replayed      int               `json:"replayed"`
	Failed        int               `json:"failed"`
	Dead          int               `json:"dead"`
	Skipped       int               `json:"skipped"`
	Errors        map[int]string    `json:"errors,omitempty"`   // failure id -> error
	Statuses      map[int]string    `json:"statuses,omitempty"` // failure id -> terminal note
	Details       map[string]string `json:"details,omitempty"`
}

// RepairFailureRequest patches one failure payload before replay.
type RepairFailureRequest struct {
	FailureID       int                    `json:"failure_id"`
	PatchRawRecord  map[string]interface{} `json:"patch_raw_record,omitempty"`
	PatchEvent      map[string]interface{} `json:"patch_event,omitempty"`
	ResetRetryCount bool                   `json:"reset_retry_count,omitempty"`
}

// RepairAndReplayResult aggregates the repair-then-replay composite.
type RepairAndReplayResult struct {
	Repaired int            `json:"repaired"`
	Picked   int            `json:"picked"`
	Replayed int            `json:"replayed"`
	Failed   int            `json:"failed"`
	Dead     int            `json:"dead"`
	Errors   map[int]string `json:"errors,omitempty"`
}

// ConnectorStatus is the monitor-facing snapshot of one connector.
type ConnectorStatus struct {
	ConnectorName    string     `json:"connector_name"`
	SourceName       string     `json:"source_name"`
	Enabled          bool       `json:"enabled"`
	LastRunAt        *time.Time `json:"last_run_at,omitempty"`
	LastSuccessAt    *time.Time `json:"last_success_at,omitempty"`
	CheckpointCursor string     `json:"checkpoint_cursor,omitempty"`
	PendingFailures  int        `json:"pending_failures"`
	DeadFailures     int        `json:"dead_failures"`
}
