package connector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"dario.cat/mergo"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/connectorfailure"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/metrics"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/services"
)

// claimLease keeps a claimed row invisible to concurrent scheduled
// replays while it is being processed.
const claimLease = 5 * time.Minute

// ReplayEngine re-runs dead-letter rows: scheduled batches, operator
// selections, and repair-then-replay composites.
type ReplayEngine struct {
	client     *ent.Client
	connectors *services.ConnectorService
	sources    *services.SourceService
	events     *services.EventService
	audit      *audit.Service
}

// NewReplayEngine creates a new ReplayEngine. auditSvc may be nil.
func NewReplayEngine(client *ent.Client, connectors *services.ConnectorService, sources *services.SourceService, events *services.EventService, auditSvc *audit.Service) *ReplayEngine {
	return &ReplayEngine{
		client:     client,
		connectors: connectors,
		sources:    sources,
		events:     events,
		audit:      auditSvc,
	}
}

// ReplayFailures claims up to limit due pending rows (next_retry_at
// elapsed, retries not exhausted) in id order and processes them
// sequentially.
func (e *ReplayEngine) ReplayFailures(ctx context.Context, connectorName string, limit int) (*models.ReplayResult, error) {
	conn, err := e.connectors.GetConnector(ctx, connectorName)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := e.claimDue(conn, limit)
	if err != nil {
		return nil, err
	}
	return e.process(ctx, conn, rows, false)
}

// ReplaySelectedFailures claims the exact ids for an operator-driven
// rerun. Retry caps are ignored; already-replayed rows are reported as
// "already replayed" and skipped.
func (e *ReplayEngine) ReplaySelectedFailures(ctx context.Context, connectorName string, failureIDs []int) (*models.ReplayResult, error) {
	conn, err := e.connectors.GetConnector(ctx, connectorName)
	if err != nil {
		return nil, err
	}
	if len(failureIDs) == 0 {
		return nil, services.NewValidationError("failure_ids", "at least one id is required")
	}

	result := &models.ReplayResult{
		ConnectorName: connectorName,
		Errors:        map[int]string{},
		Statuses:      map[int]string{},
	}

	var rows []*ent.ConnectorFailure
	for _, id := range failureIDs {
		row, err := e.client.ConnectorFailure.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("failure %d: %w", id, services.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to load failure %d: %w", id, err)
		}
		if row.ConnectorName != connectorName {
			return nil, services.NewValidationError("failure_ids",
				fmt.Sprintf("failure %d belongs to connector %q", id, row.ConnectorName))
		}
		if row.Status == connectorfailure.StatusReplayed {
			result.Statuses[id] = "already replayed"
			result.Skipped++
			continue
		}
		rows = append(rows, row)
	}

	processed, err := e.process(ctx, conn, rows, true)
	if err != nil {
		return nil, err
	}
	processed.Skipped += result.Skipped
	for id, status := range result.Statuses {
		processed.Statuses[id] = status
	}
	return processed, nil
}

// RepairFailure merges payload patches into one failure row and requeues
// it for immediate replay. At least one patch must be non-empty.
func (e *ReplayEngine) RepairFailure(ctx context.Context, req models.RepairFailureRequest) error {
	if len(req.PatchRawRecord) == 0 && len(req.PatchEvent) == 0 {
		return services.NewValidationError("patch", "at least one of patch_raw_record, patch_event is required")
	}

	row, err := e.client.ConnectorFailure.Get(ctx, req.FailureID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("failure %d: %w", req.FailureID, services.ErrNotFound)
		}
		return fmt.Errorf("failed to load failure: %w", err)
	}

	payload := row.Payload
	if payload == nil {
		payload = map[string]interface{}{}
	}
	if len(req.PatchRawRecord) > 0 {
		if err := patchSection(payload, "raw_record", req.PatchRawRecord); err != nil {
			return err
		}
	}
	if len(req.PatchEvent) > 0 {
		if err := patchSection(payload, "event", req.PatchEvent); err != nil {
			return err
		}
	}

	update := row.Update().
		SetStatus(connectorfailure.StatusPending).
		SetNextRetryAt(time.Now()).
		SetPayload(payload)
	if req.ResetRetryCount {
		update = update.SetRetryCount(0)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to repair failure: %w", err)
	}
	return nil
}

// RepairAndReplayFailures repairs each item, then runs a single manual
// replay over the successfully repaired ids.
func (e *ReplayEngine) RepairAndReplayFailures(ctx context.Context, connectorName string, items []models.RepairFailureRequest) (*models.RepairAndReplayResult, error) {
	result := &models.RepairAndReplayResult{Errors: map[int]string{}}
	var repairedIDs []int
	for _, item := range items {
		if err := e.RepairFailure(ctx, item); err != nil {
			result.Errors[item.FailureID] = err.Error()
			continue
		}
		result.Repaired++
		repairedIDs = append(repairedIDs, item.FailureID)
	}
	if len(repairedIDs) == 0 {
		return result, nil
	}

	replay, err := e.ReplaySelectedFailures(ctx, connectorName, repairedIDs)
	if err != nil {
		return result, err
	}
	result.Picked = replay.Picked
	result.Replayed = replay.Replayed
	result.Failed = replay.Failed
	result.Dead = replay.Dead
	for id, msg := range replay.Errors {
		result.Errors[id] = msg
	}
	return result, nil
}

// claimDue locks due pending rows with SKIP LOCKED and leases them so a
// concurrent scheduled replay cannot double-process.
func (e *ReplayEngine) claimDue(conn *ent.Connector, limit int) ([]*ent.ConnectorFailure, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	rows, err := tx.ConnectorFailure.Query().
		Where(
			connectorfailure.ConnectorNameEQ(conn.ConnectorName),
			connectorfailure.StatusEQ(connectorfailure.StatusPending),
			connectorfailure.NextRetryAtLTE(now),
			connectorfailure.RetryCountLT(conn.MaxRetry),
		).
		Order(ent.Asc(connectorfailure.FieldID)).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim failures: %w", err)
	}

	lease := now.Add(claimLease)
	for _, row := range rows {
		if err := tx.ConnectorFailure.UpdateOne(row).
			SetNextRetryAt(lease).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to lease failure %d: %w", row.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return rows, nil
}

func (e *ReplayEngine) process(ctx context.Context, conn *ent.Connector, rows []*ent.ConnectorFailure, manual bool) (*models.ReplayResult, error) {
	result := &models.ReplayResult{
		ConnectorName: conn.ConnectorName,
		Picked:        len(rows),
		Errors:        map[int]string{},
		Statuses:      map[int]string{},
	}

	var standardizer standardizerFn
	for _, row := range rows {
		err := e.replayOne(ctx, conn, row, &standardizer)
		if err == nil {
			result.Replayed++
			result.Statuses[row.ID] = "replayed"
			metrics.ReplayOutcomes.WithLabelValues(conn.ConnectorName, "replayed").Inc()
			continue
		}
		result.Errors[row.ID] = err.Error()
		switch {
		case manual:
			// Manual replays never advance the retry counter past the cap.
			result.Failed++
			e.markRetry(row, conn, false, err)
			metrics.ReplayOutcomes.WithLabelValues(conn.ConnectorName, "failed").Inc()
		case row.RetryCount+1 < conn.MaxRetry:
			result.Failed++
			e.markRetry(row, conn, true, err)
			metrics.ReplayOutcomes.WithLabelValues(conn.ConnectorName, "failed").Inc()
		default:
			result.Dead++
			result.Statuses[row.ID] = "dead"
			e.markDead(ctx, row, err)
			metrics.ReplayOutcomes.WithLabelValues(conn.ConnectorName, "dead").Inc()
		}
	}
	return result, nil
}

// standardizerFn lazily builds the normalize function so replays that
// only carry pre-normalized events never touch the ruleset table.
type standardizerFn func(raw models.RawAnnouncement) (models.EventRow, error)

func (e *ReplayEngine) replayOne(ctx context.Context, conn *ent.Connector, row *ent.ConnectorFailure, normalize *standardizerFn) error {
	payload, err := payloadFromMap(row.Payload)
	if err != nil {
		return err
	}

	event := payload.Event
	if event == nil {
		if payload.RawRecord == nil {
			return fmt.Errorf("payload has neither event nor raw_record")
		}
		if *normalize == nil {
			fn, err := e.buildNormalize(ctx, conn)
			if err != nil {
				return err
			}
			*normalize = fn
		}
		normalized, err := (*normalize)(*payload.RawRecord)
		if err != nil {
			return err
		}
		event = &normalized
	}

	ingest, err := e.events.Ingest(ctx, conn.SourceName, []models.EventRow{*event})
	if err != nil {
		return err
	}
	if len(ingest.Errors) > 0 {
		return fmt.Errorf("%s", ingest.Errors[0])
	}
	return e.markReplayed(row)
}

func (e *ReplayEngine) buildNormalize(ctx context.Context, conn *ent.Connector) (standardizerFn, error) {
	source, err := e.sources.GetSource(ctx, conn.SourceName)
	if err != nil {
		return nil, err
	}
	runtime := &Runtime{client: e.client}
	standardizer, err := runtime.buildStandardizer(ctx, conn, source)
	if err != nil {
		return nil, err
	}
	return func(raw models.RawAnnouncement) (models.EventRow, error) {
		row, _, _, err := standardizer.Normalize(raw)
		return row, err
	}, nil
}

func (e *ReplayEngine) markReplayed(row *ent.ConnectorFailure) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return row.Update().
		SetStatus(connectorfailure.StatusReplayed).
		Exec(ctx)
}

func (e *ReplayEngine) markRetry(row *ent.ConnectorFailure, conn *ent.Connector, advance bool, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	retryCount := row.RetryCount
	if advance {
		retryCount++
	}
	backoff := time.Duration(conn.ReplayBackoffSeconds) * time.Second
	next := time.Now().Add(backoff * time.Duration(1<<uint(row.RetryCount)))
	update := row.Update().
		SetRetryCount(retryCount).
		SetNextRetryAt(next).
		SetLastError(cause.Error())
	if err := update.Exec(ctx); err != nil {
		slog.Warn("Failed to schedule failure retry", "failure_id", row.ID, "error", err)
	}
}

func (e *ReplayEngine) markDead(ctx context.Context, row *ent.ConnectorFailure, cause error) {
	bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := row.Update().
		SetStatus(connectorfailure.StatusDead).
		SetRetryCount(row.RetryCount + 1).
		SetLastError(cause.Error()).
		Exec(bgCtx); err != nil {
		slog.Warn("Failed to mark failure dead", "failure_id", row.ID, "error", err)
		return
	}
	if e.audit != nil {
		e.audit.Emit(ctx, audit.TypeConnector, "", map[string]interface{}{
			"action":         "failure_dead",
			"failure_id":     row.ID,
			"connector_name": row.ConnectorName,
			"error":          cause.Error(),
		})
	}
}

// patchSection deep-merges a patch into one payload section.
func patchSection(payload map[string]interface{}, key string, patch map[string]interface{}) error {
	section, _ := payload[key].(map[string]interface{})
	if section == nil {
		section = map[string]interface{}{}
	}
	if err := mergo.Merge(&section, patch, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge %s patch: %w", key, err)
	}
	payload[key] = section
	return nil
}
