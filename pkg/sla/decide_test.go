package sla

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quantmuse/eventcore/pkg/models"
)

func warningBreach() models.Breach {
	return models.Breach{
		ConnectorName: "cninfo_daily",
		BreachType:    models.BreachFreshness,
		Severity:      models.SeverityWarning,
		Stage:         models.StageWarning,
	}
}

func TestDecide_NewState(t *testing.T) {
	d := Decide(StateView{}, warningBreach(), time.Now(), 10*time.Minute, 5, 3)

	assert.True(t, d.Reopen)
	assert.Equal(t, 1, d.RepeatCount)
	assert.True(t, d.ShouldEmit)
	assert.False(t, d.Escalate)
	assert.Zero(t, d.TargetEscalation)
}

func TestDecide_ClosedStateReopens(t *testing.T) {
	state := StateView{Exists: true, IsOpen: false, RepeatCount: 7, EscalationLevel: 2}
	d := Decide(state, warningBreach(), time.Now(), 10*time.Minute, 5, 3)

	assert.True(t, d.Reopen)
	// Reopen resets the repeat count; the old escalation level is history.
	assert.Equal(t, 1, d.RepeatCount)
	assert.True(t, d.ShouldEmit)
	assert.False(t, d.Escalate)
}

func TestDecide_CooldownSuppressesUnchanged(t *testing.T) {
	now := time.Now()
	recent := now.Add(-2 * time.Minute)
	state := StateView{
		Exists:        true,
		IsOpen:        true,
		Severity:      models.SeverityWarning,
		Stage:         models.StageWarning,
		RepeatCount:   1,
		LastEmittedAt: &recent,
	}

	d := Decide(state, warningBreach(), now, 10*time.Minute, 5, 3)
	assert.False(t, d.Reopen)
	assert.Equal(t, 2, d.RepeatCount)
	assert.False(t, d.ShouldEmit)
}

func TestDecide_CooldownElapsedEmits(t *testing.T) {
	now := time.Now()
	old := now.Add(-30 * time.Minute)
	state := StateView{
		Exists:        true,
		IsOpen:        true,
		Severity:      models.SeverityWarning,
		Stage:         models.StageWarning,
		RepeatCount:   3,
		LastEmittedAt: &old,
	}

	d := Decide(state, warningBreach(), now, 10*time.Minute, 5, 3)
	assert.True(t, d.ShouldEmit)
}

func TestDecide_SeverityChangeAlwaysEmits(t *testing.T) {
	now := time.Now()
	recent := now.Add(-time.Minute)
	state := StateView{
		Exists:        true,
		IsOpen:        true,
		Severity:      models.SeverityWarning,
		Stage:         models.StageWarning,
		RepeatCount:   1,
		LastEmittedAt: &recent,
	}

	breach := warningBreach()
	breach.Severity = models.SeverityCritical
	breach.Stage = models.StageCritical

	d := Decide(state, breach, now, time.Hour, 5, 3)
	assert.True(t, d.ShouldEmit)
}

func TestDecide_WarningRepeatEscalation(t *testing.T) {
	now := time.Now()
	old := now.Add(-time.Hour)
	state := StateView{
		Exists:        true,
		IsOpen:        true,
		Severity:      models.SeverityWarning,
		Stage:         models.StageWarning,
		RepeatCount:   4, // becomes 5 on this pass
		LastEmittedAt: &old,
	}

	d := Decide(state, warningBreach(), now, 10*time.Minute, 5, 3)
	assert.True(t, d.Escalate)
	assert.Equal(t, 1, d.TargetEscalation)
	assert.Contains(t, d.EscalationReason, "repeated 5 times")
}

func TestDecide_CriticalRepeatEscalation(t *testing.T) {
	now := time.Now()
	old := now.Add(-time.Hour)
	state := StateView{
		Exists:        true,
		IsOpen:        true,
		Severity:      models.SeverityCritical,
		Stage:         models.StageCritical,
		RepeatCount:   2, // becomes 3
		LastEmittedAt: &old,
	}

	breach := warningBreach()
	breach.Severity = models.SeverityCritical
	breach.Stage = models.StageCritical

	d := Decide(state, breach, now, 10*time.Minute, 5, 3)
	assert.True(t, d.Escalate)
	assert.Equal(t, 2, d.TargetEscalation)
}

func TestDecide_EscalatedStageIsLevel3(t *testing.T) {
	breach := warningBreach()
	breach.Severity = models.SeverityCritical
	breach.Stage = models.StageEscalated

	d := Decide(StateView{}, breach, time.Now(), 10*time.Minute, 5, 3)
	assert.True(t, d.Escalate)
	assert.Equal(t, 3, d.TargetEscalation)
	assert.Equal(t, "breach stage escalated by SLA threshold", d.EscalationReason)
}

func TestDecide_EscalationNeverLowers(t *testing.T) {
	now := time.Now()
	old := now.Add(-time.Hour)
	// Already at level 3; a critical repeat (target 2) must not re-escalate.
	state := StateView{
		Exists:          true,
		IsOpen:          true,
		Severity:        models.SeverityCritical,
		Stage:           models.StageCritical,
		RepeatCount:     9,
		EscalationLevel: 3,
		LastEmittedAt:   &old,
	}

	breach := warningBreach()
	breach.Severity = models.SeverityCritical
	breach.Stage = models.StageCritical

	d := Decide(state, breach, now, 10*time.Minute, 5, 3)
	assert.False(t, d.Escalate)
}
