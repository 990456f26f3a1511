package sla

import (
	"fmt"
	"time"

	"github.com/quantmuse/eventcore/pkg/models"
)

// StateView is the pure snapshot of one alert state row that the
// decision function reads. Exists=false means no row for the dedupe key.
type StateView struct {
	Exists          bool
	IsOpen          bool
	Severity        string
	Stage           string
	RepeatCount     int
	EscalationLevel int
	LastEmittedAt   *time.Time
}

// Decision is what the sync pass persists for one breach. No side
// effects happen here; the monitor applies it in one transaction.
type Decision struct {
	Reopen           bool
	RepeatCount      int
	ShouldEmit       bool
	Escalate         bool
	TargetEscalation int
	EscalationReason string
}

// Decide computes the state transition for one breach against its
// current alert state. cooldown suppresses re-emission of unchanged
// alerts; stage or severity changes always emit.
func Decide(state StateView, breach models.Breach, now time.Time, cooldown time.Duration, warningRepeatEscalate, criticalRepeatEscalate int) Decision {
	d := Decision{}

	if !state.Exists || !state.IsOpen {
		d.Reopen = true
		d.RepeatCount = 1
		d.ShouldEmit = true
		d.TargetEscalation, d.EscalationReason = targetEscalation(breach, 1, warningRepeatEscalate, criticalRepeatEscalate)
		d.Escalate = d.TargetEscalation > 0
		return d
	}

	d.RepeatCount = state.RepeatCount + 1
	changed := breach.Stage != state.Stage || breach.Severity != state.Severity
	cooled := state.LastEmittedAt == nil || now.Sub(*state.LastEmittedAt) >= cooldown
	d.ShouldEmit = changed || cooled

	d.TargetEscalation, d.EscalationReason = targetEscalation(breach, d.RepeatCount, warningRepeatEscalate, criticalRepeatEscalate)
	d.Escalate = d.TargetEscalation > state.EscalationLevel
	return d
}

// targetEscalation maps a breach and its repeat count to escalation
// levels 0..3.
func targetEscalation(breach models.Breach, repeatCount, warningRepeatEscalate, criticalRepeatEscalate int) (int, string) {
	if breach.Stage == models.StageEscalated {
		return 3, "breach stage escalated by SLA threshold"
	}
	if breach.Severity == models.SeverityCritical && criticalRepeatEscalate > 0 && repeatCount >= criticalRepeatEscalate {
		return 2, fmt.Sprintf("critical breach repeated %d times", repeatCount)
	}
	if warningRepeatEscalate > 0 && repeatCount >= warningRepeatEscalate {
		return 1, fmt.Sprintf("breach repeated %d times", repeatCount)
	}
	return 0, ""
}
