// Package audit appends flat key-value events to the audit trail.
// Writes are best-effort: a failed audit write is logged and never
// blocks or fails the calling operation.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/quantmuse/eventcore/ent"
)

// Audit event types emitted by the core.
const (
	TypeIngest        = "event_ingest"
	TypeConnector     = "event_connector"
	TypeSLA           = "event_connector_sla"
	TypeSLAEscalation = "event_connector_sla_escalation"
	TypeSLARecovery   = "event_connector_sla_recovery"
	TypeNLP           = "event_nlp"
	TypeSource        = "event_source"
)

// Service writes audit log rows.
type Service struct {
	client *ent.Client
}

// NewService creates a new audit Service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Emit appends one audit event. The payload must hold scalar values only;
// non-scalar values are stringified by JSON encoding at the store layer.
// The caller's context is ignored for the write so that cancelled
// operations still leave their trace.
func (s *Service) Emit(_ context.Context, eventType, actor string, payload map[string]interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.AuditLog.Create().
		SetEventType(eventType).
		SetPayload(payload)
	if actor != "" {
		builder = builder.SetActor(actor)
	}
	if err := builder.Exec(ctx); err != nil {
		slog.Warn("Failed to write audit event",
			"event_type", eventType, "error", err)
	}
}
