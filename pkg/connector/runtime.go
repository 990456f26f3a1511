// Package connector implements the per-run orchestrator and the failure
// replay engine. A run picks a source through the matrix engine, pulls a
// batch, normalizes it, ingests idempotently and advances the checkpoint
// atomically with the batch.
package connector

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/connectorcheckpoint"
	"github.com/quantmuse/eventcore/ent/connectorrun"
	"github.com/quantmuse/eventcore/ent/nlpruleset"
	"github.com/quantmuse/eventcore/pkg/adapters"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/matrix"
	"github.com/quantmuse/eventcore/pkg/metrics"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/nlp"
	"github.com/quantmuse/eventcore/pkg/services"
)

// Runtime executes connector runs.
type Runtime struct {
	client     *ent.Client
	connectors *services.ConnectorService
	sources    *services.SourceService
	events     *services.EventService
	engine     *matrix.Engine
	audit      *audit.Service
}

// NewRuntime creates a new Runtime. auditSvc may be nil.
func NewRuntime(client *ent.Client, connectors *services.ConnectorService, sources *services.SourceService, events *services.EventService, engine *matrix.Engine, auditSvc *audit.Service) *Runtime {
	return &Runtime{
		client:     client,
		connectors: connectors,
		sources:    sources,
		events:     events,
		engine:     engine,
		audit:      auditSvc,
	}
}

// Run executes one connector run to completion and returns its summary.
// Adapter failures surface in the result (status failed) rather than as
// a Go error; errors are reserved for unknown connectors and store faults.
func (r *Runtime) Run(ctx context.Context, req models.RunConnectorRequest) (*models.RunResult, error) {
	conn, err := r.connectors.GetConnector(ctx, req.ConnectorName)
	if err != nil {
		return nil, err
	}
	source, err := r.sources.GetSource(ctx, conn.SourceName)
	if err != nil {
		return nil, err
	}

	cursorBefore := ""
	if !req.ForceFullSync {
		cp, err := r.client.ConnectorCheckpoint.Query().
			Where(connectorcheckpoint.ConnectorNameEQ(conn.ConnectorName)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load checkpoint: %w", err)
		}
		if cp != nil && cp.CheckpointCursor != nil {
			cursorBefore = *cp.CheckpointCursor
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = conn.FetchLimit
	}

	failover := matrix.ParseFailover(conn.Config)
	candidates := matrix.ParseCandidates(conn.ConnectorType, conn.Config)
	details := map[string]interface{}{
		"enabled":             conn.Enabled,
		"dry_run":             req.DryRun,
		"force_full_sync":     req.ForceFullSync,
		"failover_enabled":    failover.Enabled,
		"source_matrix_count": len(candidates),
		"source_attempts":     []interface{}{},
	}

	runID := uuid.NewString()
	if err := r.client.ConnectorRun.Create().
		SetID(runID).
		SetConnectorName(conn.ConnectorName).
		SetSourceName(conn.SourceName).
		SetTriggeredBy(req.TriggeredBy).
		SetCheckpointBefore(cursorBefore).
		SetDetails(details).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create run record: %w", err)
	}
	defer r.repairIfRunning(runID)

	result := &models.RunResult{
		RunID:            runID,
		ConnectorName:    conn.ConnectorName,
		SourceName:       conn.SourceName,
		CheckpointBefore: cursorBefore,
	}

	outcome, fetchErr := r.engine.Fetch(ctx, conn, cursorBefore, limit)
	if outcome != nil {
		result.SourceAttempts = outcome.Attempts
		result.SelectedSourceKey = outcome.SelectedSourceKey
		details["source_attempts"] = attemptsToDetails(outcome.Attempts)
		details["selected_source_key"] = outcome.SelectedSourceKey
	}
	if fetchErr != nil {
		result.Status = string(connectorrun.StatusFailed)
		result.ErrorMessage = fetchErr.Error()
		r.finalizeRun(runID, result, details)
		return result, nil
	}

	batch := outcome.Result
	result.PulledCount = len(batch.Records)

	standardizer, err := r.buildStandardizer(ctx, conn, source)
	if err != nil {
		result.Status = string(connectorrun.StatusFailed)
		result.ErrorMessage = err.Error()
		r.finalizeRun(runID, result, details)
		return result, nil
	}

	// Normalize. Failed rows become normalize-phase failure payloads.
	var normalized []models.EventRow
	var normalizedRaw []models.RawAnnouncement
	var failures []models.FailurePayload
	for _, raw := range batch.Records {
		row, _, warning, err := standardizer.Normalize(raw)
		if err != nil {
			rawCopy := raw
			failures = append(failures, models.FailurePayload{
				Phase:     "normalize",
				RawRecord: &rawCopy,
				SourceKey: outcome.SelectedSourceKey,
				Error:     err.Error(),
			})
			result.FailedCount++
			continue
		}
		if warning != "" {
			slog.Debug("Normalized with warning",
				"connector", conn.ConnectorName, "event_id", row.EventID, "warning", warning)
		}
		normalized = append(normalized, row)
		normalizedRaw = append(normalizedRaw, raw)
	}
	result.NormalizedCount = len(normalized)

	if req.DryRun {
		result.Status = string(connectorrun.StatusDryRun)
		result.CheckpointAfter = cursorBefore
		r.finalizeRun(runID, result, details)
		return result, nil
	}

	ingestFailures, err := r.commitBatch(conn, runID, batch, cursorBefore, normalized, normalizedRaw, outcome.SelectedSourceKey, failures, result)
	if err != nil {
		result.Status = string(connectorrun.StatusFailed)
		result.ErrorMessage = err.Error()
		r.finalizeRun(runID, result, details)
		return result, nil
	}
	failures = ingestFailures

	switch {
	case result.FailedCount == 0:
		result.Status = string(connectorrun.StatusSuccess)
	case result.InsertedCount+result.UpdatedCount == 0:
		result.Status = string(connectorrun.StatusFailed)
	default:
		result.Status = string(connectorrun.StatusPartial)
	}

	r.finalizeRun(runID, result, details)
	r.emitRunAudit(ctx, req, result)
	for _, failure := range failures {
		metrics.ConnectorFailures.WithLabelValues(conn.ConnectorName, failure.Phase).Inc()
	}
	return result, nil
}

// commitBatch ingests normalized rows, advances the checkpoint and
// persists failure rows in one transaction, so cursor movement and the
// stored events are atomic. Returns the full failure list including
// ingest-phase additions.
func (r *Runtime) commitBatch(conn *ent.Connector, runID string, batch *adapters.FetchResult, cursorBefore string, normalized []models.EventRow, normalizedRaw []models.RawAnnouncement, sourceKey string, failures []models.FailurePayload, result *models.RunResult) ([]models.FailurePayload, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return failures, fmt.Errorf("failed to start run transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ingest, err := r.events.IngestTx(ctx, tx, conn.SourceName, normalized)
	if err != nil {
		return failures, err
	}
	result.InsertedCount = ingest.Inserted
	result.UpdatedCount = ingest.Updated

	for _, msg := range ingest.Errors {
		idx, detail := parseIndexedError(msg)
		payload := models.FailurePayload{
			Phase:     "ingest",
			SourceKey: sourceKey,
			Error:     detail,
		}
		if idx >= 0 && idx < len(normalized) {
			event := normalized[idx]
			raw := normalizedRaw[idx]
			payload.Event = &event
			payload.RawRecord = &raw
		}
		failures = append(failures, payload)
		result.FailedCount++
	}

	cursorAfter := batch.NextCursor
	if cursorAfter == "" {
		cursorAfter = cursorBefore
	}
	result.CheckpointAfter = cursorAfter

	success := result.FailedCount == 0 || result.InsertedCount+result.UpdatedCount > 0
	if err := upsertCheckpoint(ctx, tx, conn.ConnectorName, cursorAfter, batch.CheckpointPublishTime, success); err != nil {
		return failures, err
	}

	retryAt := time.Now().Add(time.Duration(conn.ReplayBackoffSeconds) * time.Second)
	for _, payload := range failures {
		if err := tx.ConnectorFailure.Create().
			SetConnectorName(conn.ConnectorName).
			SetSourceName(conn.SourceName).
			SetRunID(runID).
			SetNextRetryAt(retryAt).
			SetLastError(payload.Error).
			SetPayload(payloadToMap(payload)).
			Exec(ctx); err != nil {
			return failures, fmt.Errorf("failed to persist failure row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return failures, fmt.Errorf("failed to commit run transaction: %w", err)
	}
	metrics.EventsIngested.WithLabelValues(conn.SourceName, "inserted").Add(float64(ingest.Inserted))
	metrics.EventsIngested.WithLabelValues(conn.SourceName, "updated").Add(float64(ingest.Updated))
	return failures, nil
}

func upsertCheckpoint(ctx context.Context, tx *ent.Tx, connectorName, cursor string, publishTime *time.Time, success bool) error {
	now := time.Now()
	existing, err := tx.ConnectorCheckpoint.Query().
		Where(connectorcheckpoint.ConnectorNameEQ(connectorName)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load checkpoint: %w", err)
	}
	if existing != nil {
		update := existing.Update().SetLastRunAt(now)
		if cursor != "" {
			update = update.SetCheckpointCursor(cursor)
		}
		if publishTime != nil {
			update = update.SetCheckpointPublishTime(*publishTime)
		}
		if success {
			update = update.SetLastSuccessAt(now)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to advance checkpoint: %w", err)
		}
		return nil
	}
	builder := tx.ConnectorCheckpoint.Create().
		SetConnectorName(connectorName).
		SetLastRunAt(now)
	if cursor != "" {
		builder = builder.SetCheckpointCursor(cursor)
	}
	if publishTime != nil {
		builder = builder.SetCheckpointPublishTime(*publishTime)
	}
	if success {
		builder = builder.SetLastSuccessAt(now)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create checkpoint: %w", err)
	}
	return nil
}

// buildStandardizer loads the active ruleset (builtin fallback) and the
// source attributes that shape normalization.
func (r *Runtime) buildStandardizer(ctx context.Context, conn *ent.Connector, source *ent.EventSource) (*nlp.Standardizer, error) {
	var ruleset *nlp.Ruleset
	active, err := r.client.NLPRuleset.Query().
		Where(nlpruleset.IsActiveEQ(true)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load active ruleset: %w", err)
	}
	if active != nil {
		ruleset, err = nlp.Compile(active.Version, active.Rules)
		if err != nil {
			return nil, fmt.Errorf("active ruleset %q does not compile: %w", active.Version, err)
		}
	}
	defaultSymbol, _ := conn.Config["default_symbol"].(string)
	return nlp.NewStandardizer(ruleset, source.SourceName, source.ReliabilityScore, source.Timezone, defaultSymbol), nil
}

// finalizeRun stamps the terminal status and counters exactly once.
func (r *Runtime) finalizeRun(runID string, result *models.RunResult, details map[string]interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := r.client.ConnectorRun.UpdateOneID(runID).
		SetStatus(connectorrun.Status(result.Status)).
		SetFinishedAt(time.Now()).
		SetPulledCount(result.PulledCount).
		SetNormalizedCount(result.NormalizedCount).
		SetInsertedCount(result.InsertedCount).
		SetUpdatedCount(result.UpdatedCount).
		SetFailedCount(result.FailedCount).
		SetDetails(details)
	if result.CheckpointAfter != "" {
		update = update.SetCheckpointAfter(result.CheckpointAfter)
	}
	if result.ErrorMessage != "" {
		update = update.SetErrorMessage(result.ErrorMessage)
	}
	if err := update.Exec(ctx); err != nil {
		slog.Error("Failed to finalize run record", "run_id", runID, "error", err)
		return
	}
	metrics.ConnectorRuns.WithLabelValues(result.ConnectorName, result.Status).Inc()
}

// repairIfRunning forces an abandoned RUNNING row to FAILED. Reached only
// when the run aborted before finalization.
func (r *Runtime) repairIfRunning(runID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	run, err := r.client.ConnectorRun.Get(ctx, runID)
	if err != nil || run.Status != connectorrun.StatusRunning {
		return
	}
	if err := run.Update().
		SetStatus(connectorrun.StatusFailed).
		SetFinishedAt(time.Now()).
		SetErrorMessage("run aborted before finalization").
		Exec(ctx); err != nil {
		slog.Error("Failed to repair abandoned run", "run_id", runID, "error", err)
	}
}

func (r *Runtime) emitRunAudit(ctx context.Context, req models.RunConnectorRequest, result *models.RunResult) {
	if r.audit == nil {
		return
	}
	r.audit.Emit(ctx, audit.TypeConnector, req.TriggeredBy, map[string]interface{}{
		"action":         "run",
		"run_id":         result.RunID,
		"connector_name": result.ConnectorName,
		"source_name":    result.SourceName,
		"status":         result.Status,
		"pulled":         result.PulledCount,
		"inserted":       result.InsertedCount,
		"updated":        result.UpdatedCount,
		"failed":         result.FailedCount,
	})
}

// parseIndexedError splits an "idx=N: message" ingest error back into
// its row index and message. Unparseable strings return index -1.
func parseIndexedError(msg string) (int, string) {
	if !strings.HasPrefix(msg, "idx=") {
		return -1, msg
	}
	rest := strings.TrimPrefix(msg, "idx=")
	sep := strings.Index(rest, ":")
	if sep < 0 {
		return -1, msg
	}
	idx, err := strconv.Atoi(rest[:sep])
	if err != nil {
		return -1, msg
	}
	return idx, strings.TrimSpace(rest[sep+1:])
}
