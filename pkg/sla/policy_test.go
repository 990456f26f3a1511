package sla

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePolicy_Defaults(t *testing.T) {
	assert.Equal(t, DefaultPolicy(), ParsePolicy(map[string]interface{}{}))
	assert.Equal(t, DefaultPolicy(), ParsePolicy(map[string]interface{}{"sla": "not a map"}))
}

func TestParsePolicy_PartialOverride(t *testing.T) {
	got := ParsePolicy(map[string]interface{}{
		"sla": map[string]interface{}{
			"freshness_warning":  60,
			"freshness_critical": 240,
			"pending_escalation": float64(100),
		},
	})

	assert.Equal(t, 60, got.Freshness.Warning)
	assert.Equal(t, 240, got.Freshness.Critical)
	// Unset values keep defaults.
	assert.Equal(t, 2880, got.Freshness.Escalation)
	assert.Equal(t, 100, got.Pending.Escalation)
	assert.Equal(t, DefaultPolicy().Dead, got.Dead)
}

func TestParsePolicy_NonAscendingFallsBackWholesale(t *testing.T) {
	got := ParsePolicy(map[string]interface{}{
		"sla": map[string]interface{}{
			"freshness_warning":  500,
			"freshness_critical": 100, // warning > critical: invalid
			"pending_warning":    2,   // this valid override is discarded too
		},
	})
	assert.Equal(t, DefaultPolicy(), got)
}

func TestSeverityStage(t *testing.T) {
	axis := Axis{Warning: 10, Critical: 20, Escalation: 40}

	severity, stage, ok := SeverityStage(5, axis)
	assert.False(t, ok)
	assert.Empty(t, severity)
	assert.Empty(t, stage)

	severity, stage, ok = SeverityStage(10, axis)
	assert.True(t, ok)
	assert.Equal(t, "warning", severity)
	assert.Equal(t, "warning", stage)

	severity, stage, ok = SeverityStage(25, axis)
	assert.True(t, ok)
	assert.Equal(t, "critical", severity)
	assert.Equal(t, "critical", stage)

	severity, stage, ok = SeverityStage(40, axis)
	assert.True(t, ok)
	assert.Equal(t, "critical", severity)
	assert.Equal(t, "escalated", stage)
}
