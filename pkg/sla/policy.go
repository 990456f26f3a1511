// Package sla evaluates connectors against freshness and backlog
// thresholds and drives the deduplicated alert state machine.
package sla

import (
	"log/slog"
)

// Axis holds one ascending (warning, critical, escalation) triple.
type Axis struct {
	Warning    int
	Critical   int
	Escalation int
}

func (a Axis) valid() bool {
	return a.Warning <= a.Critical && a.Critical <= a.Escalation
}

// Policy is the per-connector SLA threshold set. Freshness is in
// minutes, backlogs in row counts.
type Policy struct {
	Freshness Axis
	Pending   Axis
	Dead      Axis
}

// DefaultPolicy matches the review cadence of daily announcement feeds.
func DefaultPolicy() Policy {
	return Policy{
		Freshness: Axis{Warning: 180, Critical: 720, Escalation: 2880},
		Pending:   Axis{Warning: 5, Critical: 20, Escalation: 50},
		Dead:      Axis{Warning: 1, Critical: 5, Escalation: 10},
	}
}

// ParsePolicy merges config.sla over the defaults. A policy whose axes
// are not ascending is rejected wholesale and the defaults apply.
func ParsePolicy(config map[string]interface{}) Policy {
	policy := DefaultPolicy()
	raw, ok := config["sla"].(map[string]interface{})
	if !ok {
		return policy
	}

	merged := policy
	readAxis(raw, "freshness", &merged.Freshness)
	readAxis(raw, "pending", &merged.Pending)
	readAxis(raw, "dead", &merged.Dead)

	if !merged.Freshness.valid() || !merged.Pending.valid() || !merged.Dead.valid() {
		slog.Warn("SLA thresholds not ascending, falling back to defaults")
		return policy
	}
	return merged
}

func readAxis(raw map[string]interface{}, prefix string, axis *Axis) {
	if v, ok := intOf(raw[prefix+"_warning"]); ok {
		axis.Warning = v
	}
	if v, ok := intOf(raw[prefix+"_critical"]); ok {
		axis.Critical = v
	}
	if v, ok := intOf(raw[prefix+"_escalation"]); ok {
		axis.Escalation = v
	}
}

func intOf(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// SeverityStage classifies one observed value against an axis. ok is
// false when the value is below the warning threshold.
func SeverityStage(value int, axis Axis) (severity, stage string, ok bool) {
	switch {
	case value >= axis.Escalation:
		return "critical", "escalated", true
	case value >= axis.Critical:
		return "critical", "critical", true
	case value >= axis.Warning:
		return "warning", "warning", true
	}
	return "", "", false
}
