package config

import "time"

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	HTTPPort     int              `yaml:"http_port"`
	BacktestAddr string           `yaml:"backtest_addr"`
	Retention    *RetentionConfig `yaml:"retention"`
}

// RetentionConfig controls background pruning of operational tables.
// Zero durations disable pruning for the corresponding table.
type RetentionConfig struct {
	// RunAge is how long finished connector runs are kept.
	RunAge time.Duration `yaml:"run_age"`

	// TerminalFailures is how long replayed/dead failure rows are kept.
	// Pending failures are never pruned.
	TerminalFailures time.Duration `yaml:"terminal_failures"`

	// SLAHistory is how long breach history observations are kept.
	SLAHistory time.Duration `yaml:"sla_history"`

	// DriftSnapshots is how long persisted drift snapshots are kept.
	DriftSnapshots time.Duration `yaml:"drift_snapshots"`

	// AuditLogs is how long audit rows are kept.
	AuditLogs time.Duration `yaml:"audit_logs"`

	// PruneInterval is how often the retention loop runs.
	PruneInterval time.Duration `yaml:"prune_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RunAge:           30 * 24 * time.Hour,
		TerminalFailures: 90 * 24 * time.Hour,
		SLAHistory:       90 * 24 * time.Hour,
		DriftSnapshots:   90 * 24 * time.Hour,
		AuditLogs:        90 * 24 * time.Hour,
		PruneInterval:    12 * time.Hour,
	}
}

// SLASyncConfig tunes alert emission dedupe and escalation.
type SLASyncConfig struct {
	// CooldownSeconds suppresses repeat emissions of an unchanged breach.
	CooldownSeconds int `yaml:"cooldown_seconds"`

	// WarningRepeatEscalate is the repeat count at which a warning-stage
	// breach escalates to level 1.
	WarningRepeatEscalate int `yaml:"warning_repeat_escalate"`

	// CriticalRepeatEscalate is the repeat count at which a critical-stage
	// breach escalates to level 2.
	CriticalRepeatEscalate int `yaml:"critical_repeat_escalate"`
}

// DefaultSLASyncConfig returns the built-in SLA sync defaults.
func DefaultSLASyncConfig() *SLASyncConfig {
	return &SLASyncConfig{
		CooldownSeconds:        600,
		WarningRepeatEscalate:  5,
		CriticalRepeatEscalate: 3,
	}
}

// SourceSeed declares an event source registered at startup.
type SourceSeed struct {
	SourceName          string  `yaml:"source_name"`
	SourceType          string  `yaml:"source_type"`
	Provider            string  `yaml:"provider,omitempty"`
	Timezone            string  `yaml:"timezone,omitempty"`
	IngestionLagMinutes int     `yaml:"ingestion_lag_minutes,omitempty"`
	ReliabilityScore    float64 `yaml:"reliability_score,omitempty"`
	Note                string  `yaml:"note,omitempty"`
}

// ConnectorSeed declares a connector registered at startup. Config carries
// the adapter settings plus the optional source_matrix, failover, sla,
// credentials, and nlp sections.
type ConnectorSeed struct {
	ConnectorName        string                 `yaml:"connector_name"`
	SourceName           string                 `yaml:"source_name"`
	ConnectorType        string                 `yaml:"connector_type"`
	Enabled              *bool                  `yaml:"enabled,omitempty"`
	FetchLimit           int                    `yaml:"fetch_limit,omitempty"`
	PollIntervalMinutes  int                    `yaml:"poll_interval_minutes,omitempty"`
	ReplayBackoffSeconds int                    `yaml:"replay_backoff_seconds,omitempty"`
	MaxRetry             int                    `yaml:"max_retry,omitempty"`
	Config               map[string]interface{} `yaml:"config,omitempty"`
	Note                 string                 `yaml:"note,omitempty"`
}
