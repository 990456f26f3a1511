package models

import "time"

// Breach severities and stages.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"

	StageWarning   = "warning"
	StageCritical  = "critical"
	StageEscalated = "escalated"
)

// Breach axes.
const (
	BreachFreshness      = "freshness"
	BreachPendingBacklog = "pending_backlog"
	BreachDeadBacklog    = "dead_backlog"
)

// Breach is one SLA threshold crossing for a connector.
type Breach struct {
	ConnectorName    string `json:"connector_name"`
	SourceName       string `json:"source_name"`
	BreachType       string `json:"breach_type"`
	Severity         string `json:"severity"`
	Stage            string `json:"stage"`
	Message          string `json:"message"`
	FreshnessMinutes *int   `json:"freshness_minutes,omitempty"`
	PendingFailures  int    `json:"pending_failures"`
	DeadFailures     int    `json:"dead_failures"`
	RunbookURL       string `json:"runbook_url,omitempty"`
}

// DedupeKey returns the alert-state key for this breach.
func (b Breach) DedupeKey() string {
	return b.ConnectorName + "|" + b.BreachType
}

// SLASyncResult aggregates one sync_sla_alerts pass.
type SLASyncResult struct {
	Evaluated     int `json:"evaluated"`
	Breaches      int `json:"breaches"`
	Emitted       int `json:"emitted"`
	Skipped       int `json:"skipped"`
	Escalated     int `json:"escalated"`
	Recovered     int `json:"recovered"`
	OpenStates    int `json:"open_states"`
	OpenEscalated int `json:"open_escalated"`
}

// SLAEvaluation is the per-connector observation behind a sync pass.
type SLAEvaluation struct {
	ConnectorName    string    `json:"connector_name"`
	SourceName       string    `json:"source_name"`
	ObservedAt       time.Time `json:"observed_at"`
	FreshnessMinutes *int      `json:"freshness_minutes,omitempty"`
	PendingFailures  int       `json:"pending_failures"`
	DeadFailures     int       `json:"dead_failures"`
	Breaches         []Breach  `json:"breaches,omitempty"`
}
