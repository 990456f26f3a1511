package sla

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/slaalertstate"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/metrics"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/services"
)

// Monitor evaluates connectors against their SLA policy and maintains
// alert states.
type Monitor struct {
	client     *ent.Client
	connectors *services.ConnectorService
	audit      *audit.Service
}

// NewMonitor creates a new Monitor. auditSvc may be nil.
func NewMonitor(client *ent.Client, connectors *services.ConnectorService, auditSvc *audit.Service) *Monitor {
	return &Monitor{client: client, connectors: connectors, audit: auditSvc}
}

// SyncRequest tunes one sync pass. Zero values fall back to defaults.
type SyncRequest struct {
	CooldownSeconds        int
	WarningRepeatEscalate  int
	CriticalRepeatEscalate int
	TriggeredBy            string
}

func (r *SyncRequest) applyDefaults() {
	if r.CooldownSeconds <= 0 {
		r.CooldownSeconds = 600
	}
	if r.WarningRepeatEscalate <= 0 {
		r.WarningRepeatEscalate = 5
	}
	if r.CriticalRepeatEscalate <= 0 {
		r.CriticalRepeatEscalate = 3
	}
}

// EvaluateSLA observes every enabled connector without mutating alert
// state. History rows are not written either; this is the read-only view.
func (m *Monitor) EvaluateSLA(ctx context.Context) ([]models.SLAEvaluation, error) {
	connectors, err := m.connectors.ListConnectors(ctx, true)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	evaluations := make([]models.SLAEvaluation, 0, len(connectors))
	for _, conn := range connectors {
		eval, err := m.evaluateConnector(ctx, conn, ParsePolicy(conn.Config), now)
		if err != nil {
			return nil, fmt.Errorf("connector %q: %w", conn.ConnectorName, err)
		}
		evaluations = append(evaluations, *eval)
	}
	return evaluations, nil
}

// SyncSLAAlerts runs a full evaluation, appends history, transitions
// alert states (open, repeat, escalate) and closes recovered ones.
func (m *Monitor) SyncSLAAlerts(httpCtx context.Context, req SyncRequest) (*models.SLASyncResult, error) {
	req.applyDefaults()
	cooldown := time.Duration(req.CooldownSeconds) * time.Second

	evaluations, err := m.EvaluateSLA(httpCtx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result := &models.SLASyncResult{Evaluated: len(evaluations)}
	now := time.Now()
	seen := map[string]bool{}
	evaluatedConnectors := map[string]bool{}

	for _, eval := range evaluations {
		evaluatedConnectors[eval.ConnectorName] = true
		for _, breach := range eval.Breaches {
			result.Breaches++
			seen[breach.DedupeKey()] = true
			metrics.SLABreaches.WithLabelValues(breach.ConnectorName, breach.BreachType, breach.Severity).Inc()

			if err := m.appendHistory(ctx, eval, breach); err != nil {
				return nil, err
			}
			if err := m.applyBreach(ctx, breach, now, cooldown, req, result); err != nil {
				return nil, err
			}
		}
	}

	if err := m.closeRecovered(ctx, seen, evaluatedConnectors, now, req.TriggeredBy, result); err != nil {
		return nil, err
	}

	open, err := m.client.SLAAlertState.Query().
		Where(slaalertstate.IsOpenEQ(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count open states: %w", err)
	}
	result.OpenStates = len(open)
	for _, state := range open {
		if state.EscalationLevel > 0 {
			result.OpenEscalated++
		}
	}
	return result, nil
}

func (m *Monitor) appendHistory(ctx context.Context, eval models.SLAEvaluation, breach models.Breach) error {
	builder := m.client.SLAHistory.Create().
		SetObservedAt(eval.ObservedAt).
		SetConnectorName(breach.ConnectorName).
		SetSourceName(breach.SourceName).
		SetBreachType(breach.BreachType).
		SetSeverity(breach.Severity).
		SetStage(breach.Stage).
		SetPendingFailures(breach.PendingFailures).
		SetDeadFailures(breach.DeadFailures).
		SetMessage(breach.Message)
	if breach.FreshnessMinutes != nil {
		builder = builder.SetFreshnessMinutes(*breach.FreshnessMinutes)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append SLA history: %w", err)
	}
	return nil
}

// applyBreach upserts the alert state for one breach inside a single
// transaction so concurrent syncs cannot interleave repeat counting.
func (m *Monitor) applyBreach(ctx context.Context, breach models.Breach, now time.Time, cooldown time.Duration, req SyncRequest, result *models.SLASyncResult) error {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start alert transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	key := breach.DedupeKey()
	existing, err := tx.SLAAlertState.Query().
		Where(slaalertstate.DedupeKeyEQ(key)).
		ForUpdate().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load alert state: %w", err)
	}

	view := StateView{}
	if existing != nil {
		view = StateView{
			Exists:          true,
			IsOpen:          existing.IsOpen,
			Severity:        string(existing.Severity),
			Stage:           string(existing.Stage),
			RepeatCount:     existing.RepeatCount,
			EscalationLevel: existing.EscalationLevel,
			LastEmittedAt:   existing.LastEmittedAt,
		}
	}
	decision := Decide(view, breach, now, cooldown, req.WarningRepeatEscalate, req.CriticalRepeatEscalate)

	var state *ent.SLAAlertState
	if existing == nil {
		state, err = tx.SLAAlertState.Create().
			SetDedupeKey(key).
			SetConnectorName(breach.ConnectorName).
			SetSourceName(breach.SourceName).
			SetBreachType(breach.BreachType).
			SetSeverity(slaalertstate.Severity(breach.Severity)).
			SetStage(slaalertstate.Stage(breach.Stage)).
			SetMessage(breach.Message).
			SetFirstSeenAt(now).
			SetLastSeenAt(now).
			SetRepeatCount(1).
			SetEscalationLevel(0).
			SetIsOpen(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create alert state: %w", err)
		}
	} else {
		update := existing.Update().
			SetSeverity(slaalertstate.Severity(breach.Severity)).
			SetStage(slaalertstate.Stage(breach.Stage)).
			SetMessage(breach.Message).
			SetLastSeenAt(now).
			SetRepeatCount(decision.RepeatCount).
			SetIsOpen(true)
		if decision.Reopen {
			update = update.
				SetFirstSeenAt(now).
				SetEscalationLevel(0).
				SetEscalationReason("")
		}
		state, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update alert state: %w", err)
		}
	}

	if decision.ShouldEmit {
		state, err = state.Update().SetLastEmittedAt(now).Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to stamp emission: %w", err)
		}
		result.Emitted++
	} else {
		result.Skipped++
	}

	if decision.Escalate {
		state, err = state.Update().
			SetEscalationLevel(decision.TargetEscalation).
			SetEscalationReason(decision.EscalationReason).
			SetLastEscalatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to escalate alert state: %w", err)
		}
		result.Escalated++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit alert state: %w", err)
	}

	if decision.ShouldEmit {
		m.emit(ctx, audit.TypeSLA, req.TriggeredBy, breach, state)
	}
	if decision.Escalate {
		m.emit(ctx, audit.TypeSLAEscalation, req.TriggeredBy, breach, state)
	}
	return nil
}

// closeRecovered closes every open state of an evaluated connector whose
// dedupe key did not appear in this pass.
func (m *Monitor) closeRecovered(ctx context.Context, seen map[string]bool, evaluated map[string]bool, now time.Time, actor string, result *models.SLASyncResult) error {
	open, err := m.client.SLAAlertState.Query().
		Where(slaalertstate.IsOpenEQ(true)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list open states: %w", err)
	}
	for _, state := range open {
		if seen[state.DedupeKey] || !evaluated[state.ConnectorName] {
			continue
		}
		if err := state.Update().
			SetIsOpen(false).
			SetLastRecoveredAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to close alert state %q: %w", state.DedupeKey, err)
		}
		result.Recovered++
		slog.Info("SLA alert recovered",
			"dedupe_key", state.DedupeKey, "connector", state.ConnectorName)
		if m.audit != nil {
			m.audit.Emit(ctx, audit.TypeSLARecovery, actor, statePayload(state))
		}
	}
	return nil
}

func (m *Monitor) emit(ctx context.Context, eventType, actor string, breach models.Breach, state *ent.SLAAlertState) {
	if m.audit == nil {
		return
	}
	payload := statePayload(state)
	payload["runbook_url"] = breach.RunbookURL
	if breach.FreshnessMinutes != nil {
		payload["freshness_minutes"] = *breach.FreshnessMinutes
	}
	payload["pending_failures"] = breach.PendingFailures
	payload["dead_failures"] = breach.DeadFailures
	m.audit.Emit(ctx, eventType, actor, payload)
}

// statePayload renders the fixed audit payload schema for one state row.
func statePayload(state *ent.SLAAlertState) map[string]interface{} {
	payload := map[string]interface{}{
		"connector_name":    state.ConnectorName,
		"source_name":       state.SourceName,
		"breach_type":       state.BreachType,
		"severity":          string(state.Severity),
		"stage":             string(state.Stage),
		"message":           state.Message,
		"freshness_minutes": nil,
		"pending_failures":  0,
		"dead_failures":     0,
		"dedupe_key":        state.DedupeKey,
		"repeat_count":      state.RepeatCount,
		"escalation_level":  state.EscalationLevel,
		"escalation_reason": state.EscalationReason,
		"first_seen_at":     state.FirstSeenAt.UTC().Format(time.RFC3339),
		"last_seen_at":      state.LastSeenAt.UTC().Format(time.RFC3339),
		"last_emitted_at":   nil,
		"last_escalated_at": nil,
		"runbook_url":       "",
	}
	if state.LastEmittedAt != nil {
		payload["last_emitted_at"] = state.LastEmittedAt.UTC().Format(time.RFC3339)
	}
	if state.LastEscalatedAt != nil {
		payload["last_escalated_at"] = state.LastEscalatedAt.UTC().Format(time.RFC3339)
	}
	return payload
}
