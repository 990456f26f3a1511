package sla

import (
	"context"
	"fmt"
	"time"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/connectorcheckpoint"
	"github.com/quantmuse/eventcore/ent/connectorfailure"
	"github.com/quantmuse/eventcore/ent/connectorrun"
	"github.com/quantmuse/eventcore/pkg/models"
)

// evaluateConnector observes one connector and returns its breaches.
func (m *Monitor) evaluateConnector(ctx context.Context, conn *ent.Connector, policy Policy, now time.Time) (*models.SLAEvaluation, error) {
	eval := &models.SLAEvaluation{
		ConnectorName: conn.ConnectorName,
		SourceName:    conn.SourceName,
		ObservedAt:    now,
	}

	ref, err := m.freshnessReference(ctx, conn.ConnectorName)
	if err != nil {
		return nil, err
	}
	if ref != nil {
		minutes := int(now.Sub(*ref).Minutes())
		if minutes < 0 {
			minutes = 0
		}
		eval.FreshnessMinutes = &minutes
	}

	pending, err := m.client.ConnectorFailure.Query().
		Where(
			connectorfailure.ConnectorNameEQ(conn.ConnectorName),
			connectorfailure.StatusEQ(connectorfailure.StatusPending),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending failures: %w", err)
	}
	dead, err := m.client.ConnectorFailure.Query().
		Where(
			connectorfailure.ConnectorNameEQ(conn.ConnectorName),
			connectorfailure.StatusEQ(connectorfailure.StatusDead),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count dead failures: %w", err)
	}
	eval.PendingFailures = pending
	eval.DeadFailures = dead

	runbook := runbookURL(conn.Config)

	if eval.FreshnessMinutes != nil {
		if severity, stage, ok := SeverityStage(*eval.FreshnessMinutes, policy.Freshness); ok {
			eval.Breaches = append(eval.Breaches, models.Breach{
				ConnectorName:    conn.ConnectorName,
				SourceName:       conn.SourceName,
				BreachType:       models.BreachFreshness,
				Severity:         severity,
				Stage:            stage,
				Message:          fmt.Sprintf("no fresh data for %d minutes", *eval.FreshnessMinutes),
				FreshnessMinutes: eval.FreshnessMinutes,
				PendingFailures:  pending,
				DeadFailures:     dead,
				RunbookURL:       runbook,
			})
		}
	}
	if severity, stage, ok := SeverityStage(pending, policy.Pending); ok {
		eval.Breaches = append(eval.Breaches, models.Breach{
			ConnectorName:    conn.ConnectorName,
			SourceName:       conn.SourceName,
			BreachType:       models.BreachPendingBacklog,
			Severity:         severity,
			Stage:            stage,
			Message:          fmt.Sprintf("%d pending failures await replay", pending),
			FreshnessMinutes: eval.FreshnessMinutes,
			PendingFailures:  pending,
			DeadFailures:     dead,
			RunbookURL:       runbook,
		})
	}
	if severity, stage, ok := SeverityStage(dead, policy.Dead); ok {
		eval.Breaches = append(eval.Breaches, models.Breach{
			ConnectorName:    conn.ConnectorName,
			SourceName:       conn.SourceName,
			BreachType:       models.BreachDeadBacklog,
			Severity:         severity,
			Stage:            stage,
			Message:          fmt.Sprintf("%d dead failures need manual repair", dead),
			FreshnessMinutes: eval.FreshnessMinutes,
			PendingFailures:  pending,
			DeadFailures:     dead,
			RunbookURL:       runbook,
		})
	}
	return eval, nil
}

// freshnessReference walks the reference chain: checkpoint publish time,
// then checkpoint success/run stamps, then the latest run's timestamps.
// nil means the connector has never moved.
func (m *Monitor) freshnessReference(ctx context.Context, connectorName string) (*time.Time, error) {
	cp, err := m.client.ConnectorCheckpoint.Query().
		Where(connectorcheckpoint.ConnectorNameEQ(connectorName)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	if cp != nil {
		if cp.CheckpointPublishTime != nil {
			return cp.CheckpointPublishTime, nil
		}
		if cp.LastSuccessAt != nil {
			return cp.LastSuccessAt, nil
		}
		if cp.LastRunAt != nil {
			return cp.LastRunAt, nil
		}
	}

	latest, err := m.client.ConnectorRun.Query().
		Where(connectorrun.ConnectorNameEQ(connectorName)).
		Order(ent.Desc(connectorrun.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest run: %w", err)
	}
	if latest.FinishedAt != nil {
		return latest.FinishedAt, nil
	}
	started := latest.StartedAt
	return &started, nil
}

func runbookURL(config map[string]interface{}) string {
	if v, ok := config["runbook_url"].(string); ok && v != "" {
		return v
	}
	if v, ok := config["runbook_path"].(string); ok && v != "" {
		return v
	}
	return ""
}
