package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/auditlog"
	"github.com/quantmuse/eventcore/ent/connectorfailure"
	"github.com/quantmuse/eventcore/ent/connectorrun"
	"github.com/quantmuse/eventcore/ent/nlpdriftsnapshot"
	"github.com/quantmuse/eventcore/ent/slahistory"
)

// RetentionPolicy sets the age cutoffs for operational tables. Zero
// disables pruning for that table. Event records are never pruned.
type RetentionPolicy struct {
	RunAge           time.Duration `yaml:"run_age"`
	TerminalFailures time.Duration `yaml:"terminal_failures"`
	SLAHistory       time.Duration `yaml:"sla_history"`
	DriftSnapshots   time.Duration `yaml:"drift_snapshots"`
	AuditLogs        time.Duration `yaml:"audit_logs"`
}

// DefaultRetentionPolicy keeps runs for 30 days and everything else for
// 90, matching the platform's operational review cadence.
func DefaultRetentionPolicy() RetentionPolicy {
	return RetentionPolicy{
		RunAge:           30 * 24 * time.Hour,
		TerminalFailures: 90 * 24 * time.Hour,
		SLAHistory:       90 * 24 * time.Hour,
		DriftSnapshots:   90 * 24 * time.Hour,
		AuditLogs:        90 * 24 * time.Hour,
	}
}

// RetentionService prunes aged operational rows. Pending failures and
// open alert states are never touched regardless of age.
type RetentionService struct {
	client *ent.Client
	policy RetentionPolicy
}

// NewRetentionService creates a new RetentionService.
func NewRetentionService(client *ent.Client, policy RetentionPolicy) *RetentionService {
	return &RetentionService{client: client, policy: policy}
}

// Prune deletes rows past their cutoff and returns deletions per table.
// Each table is pruned independently so one failure does not block the rest.
func (s *RetentionService) Prune(_ context.Context) map[string]int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now()
	deleted := make(map[string]int)

	if s.policy.RunAge > 0 {
		n, err := s.client.ConnectorRun.Delete().
			Where(
				connectorrun.StartedAtLT(now.Add(-s.policy.RunAge)),
				connectorrun.StatusNEQ(connectorrun.StatusRunning),
			).
			Exec(ctx)
		s.record(deleted, "connector_runs", n, err)
	}
	if s.policy.TerminalFailures > 0 {
		n, err := s.client.ConnectorFailure.Delete().
			Where(
				connectorfailure.UpdatedAtLT(now.Add(-s.policy.TerminalFailures)),
				connectorfailure.StatusIn(
					connectorfailure.StatusReplayed,
					connectorfailure.StatusDead,
				),
			).
			Exec(ctx)
		s.record(deleted, "connector_failures", n, err)
	}
	if s.policy.SLAHistory > 0 {
		n, err := s.client.SLAHistory.Delete().
			Where(slahistory.ObservedAtLT(now.Add(-s.policy.SLAHistory))).
			Exec(ctx)
		s.record(deleted, "sla_history", n, err)
	}
	if s.policy.DriftSnapshots > 0 {
		n, err := s.client.NLPDriftSnapshot.Delete().
			Where(nlpdriftsnapshot.CreatedAtLT(now.Add(-s.policy.DriftSnapshots))).
			Exec(ctx)
		s.record(deleted, "nlp_drift_snapshots", n, err)
	}
	if s.policy.AuditLogs > 0 {
		n, err := s.client.AuditLog.Delete().
			Where(auditlog.CreatedAtLT(now.Add(-s.policy.AuditLogs))).
			Exec(ctx)
		s.record(deleted, "audit_logs", n, err)
	}
	return deleted
}

func (s *RetentionService) record(deleted map[string]int, table string, n int, err error) {
	if err != nil {
		slog.Warn("Retention prune failed", "table", table, "error", err)
		return
	}
	if n > 0 {
		slog.Info(fmt.Sprintf("Pruned %d aged rows", n), "table", table)
	}
	deleted[table] = n
}
