package matrix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dario.cat/mergo"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/sourcebudget"
	"github.com/quantmuse/eventcore/ent/sourcecredentialcursor"
	"github.com/quantmuse/eventcore/ent/sourcestate"
	"github.com/quantmuse/eventcore/pkg/adapters"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/timeutil"
)

// ErrAllCandidatesFailed is returned when every ordered candidate either
// failed to fetch or was skipped. The text is kept stable because run
// logs surface it verbatim.
var ErrAllCandidatesFailed = errors.New("all source matrix candidates failed")

// Engine selects and fetches from source-matrix candidates, keeping
// health, budget and credential state per candidate.
type Engine struct {
	client *ent.Client
}

// NewEngine creates a new Engine.
func NewEngine(client *ent.Client) *Engine {
	return &Engine{client: client}
}

// FetchOutcome is the result of a successful candidate selection.
type FetchOutcome struct {
	Result            *adapters.FetchResult
	SelectedSourceKey string
	Attempts          []models.SourceAttempt
}

// Fetch walks the ordered candidates until one fetch succeeds. Every
// candidate tried is recorded in Attempts, including budget skips. When
// all candidates fail the Attempts are still returned alongside
// ErrAllCandidatesFailed so the runtime can persist them.
func (e *Engine) Fetch(ctx context.Context, conn *ent.Connector, cursor string, limit int) (*FetchOutcome, error) {
	candidates := ParseCandidates(conn.ConnectorType, conn.Config)
	failover := ParseFailover(conn.Config)
	credentials := Credentials(conn.Config)

	if err := e.SyncRegistry(ctx, conn.ConnectorName, candidates); err != nil {
		return nil, err
	}
	states, err := e.loadStates(ctx, conn.ConnectorName)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		byKey[c.SourceKey] = c
	}

	ordered := OrderCandidates(states, failover, time.Now())
	outcome := &FetchOutcome{}
	var lastErr error

	for _, state := range ordered {
		candidate, ok := byKey[state.SourceKey]
		if !ok {
			continue
		}
		allowed, err := e.ConsumeBudget(ctx, conn.ConnectorName, candidate.SourceKey, candidate.BudgetPerHour, time.Now())
		if err != nil {
			return outcome, err
		}
		if !allowed {
			outcome.Attempts = append(outcome.Attempts, models.SourceAttempt{
				SourceKey:     candidate.SourceKey,
				ConnectorType: candidate.ConnectorType,
				Status:        "SKIPPED_BUDGET",
			})
			if !failover.Enabled {
				break
			}
			continue
		}

		alias, secrets, err := e.NextCredential(ctx, conn.ConnectorName, candidate.SourceKey, candidate.CredAliases, credentials)
		if err != nil {
			return outcome, err
		}
		cfg := mergedConfig(candidate.Config, secrets)

		attempt := models.SourceAttempt{
			SourceKey:       candidate.SourceKey,
			ConnectorType:   candidate.ConnectorType,
			CredentialAlias: alias,
		}

		start := time.Now()
		result, fetchErr := e.tryFetch(ctx, candidate.ConnectorType, cfg, cursor, limit)
		attempt.LatencyMS = time.Since(start).Milliseconds()

		if fetchErr != nil {
			attempt.Status = "FAILED"
			attempt.Error = fetchErr.Error()
			outcome.Attempts = append(outcome.Attempts, attempt)
			lastErr = fetchErr
			if err := e.recordFailure(ctx, conn.ConnectorName, candidate.SourceKey, attempt.LatencyMS, fetchErr); err != nil {
				slog.Warn("Failed to record source failure",
					"connector", conn.ConnectorName, "source_key", candidate.SourceKey, "error", err)
			}
			if !failover.Enabled {
				break
			}
			continue
		}

		attempt.Status = "SUCCESS"
		outcome.Attempts = append(outcome.Attempts, attempt)
		outcome.Result = result
		outcome.SelectedSourceKey = candidate.SourceKey
		if err := e.recordSuccess(ctx, conn.ConnectorName, candidate.SourceKey, attempt.LatencyMS, result); err != nil {
			slog.Warn("Failed to record source success",
				"connector", conn.ConnectorName, "source_key", candidate.SourceKey, "error", err)
		}
		return outcome, nil
	}

	if lastErr != nil {
		return outcome, fmt.Errorf("%w: %v", ErrAllCandidatesFailed, lastErr)
	}
	return outcome, ErrAllCandidatesFailed
}

func (e *Engine) tryFetch(ctx context.Context, connectorType string, cfg adapters.Config, cursor string, limit int) (*adapters.FetchResult, error) {
	fetcher, err := adapters.New(connectorType, cfg)
	if err != nil {
		return nil, err
	}
	return fetcher.Fetch(ctx, cursor, limit)
}

// SyncRegistry upserts a SourceState row per candidate and disables rows
// no longer present in the matrix. Rows are never deleted so their
// health history survives matrix edits.
func (e *Engine) SyncRegistry(_ context.Context, connectorName string, candidates []Candidate) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	known := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		known[c.SourceKey] = true
		existing, err := e.client.SourceState.Query().
			Where(
				sourcestate.ConnectorNameEQ(connectorName),
				sourcestate.SourceKeyEQ(c.SourceKey),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query source state: %w", err)
		}
		if existing != nil {
			err = existing.Update().
				SetConnectorType(c.ConnectorType).
				SetPriority(c.Priority).
				SetEnabled(c.Enabled).
				Exec(ctx)
		} else {
			err = e.client.SourceState.Create().
				SetConnectorName(connectorName).
				SetSourceKey(c.SourceKey).
				SetConnectorType(c.ConnectorType).
				SetPriority(c.Priority).
				SetEnabled(c.Enabled).
				Exec(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to sync source state %q: %w", c.SourceKey, err)
		}
	}

	states, err := e.client.SourceState.Query().
		Where(sourcestate.ConnectorNameEQ(connectorName)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list source states: %w", err)
	}
	for _, state := range states {
		if !known[state.SourceKey] && state.Enabled {
			if err := state.Update().SetEnabled(false).Exec(ctx); err != nil {
				return fmt.Errorf("failed to disable source state %q: %w", state.SourceKey, err)
			}
		}
	}
	return nil
}

func (e *Engine) loadStates(ctx context.Context, connectorName string) ([]CandidateState, error) {
	rows, err := e.client.SourceState.Query().
		Where(sourcestate.ConnectorNameEQ(connectorName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load source states: %w", err)
	}
	states := make([]CandidateState, 0, len(rows))
	for _, row := range rows {
		states = append(states, CandidateState{
			SourceKey:           row.SourceKey,
			Priority:            row.Priority,
			Enabled:             row.Enabled,
			HealthScore:         row.HealthScore,
			ConsecutiveFailures: row.ConsecutiveFailures,
			IsActive:            row.IsActive,
			LastAttemptAt:       row.LastAttemptAt,
		})
	}
	return states, nil
}

// ConsumeBudget increments the hourly request counter for the candidate
// under a row lock and reports whether the request may proceed.
// budgetPerHour <= 0 means unlimited (the counter still advances).
func (e *Engine) ConsumeBudget(_ context.Context, connectorName, sourceKey string, budgetPerHour int, now time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	window := timeutil.HourWindow(now)

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start budget transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.SourceBudget.Query().
		Where(
			sourcebudget.ConnectorNameEQ(connectorName),
			sourcebudget.SourceKeyEQ(sourceKey),
			sourcebudget.WindowHourEQ(window),
		).
		ForUpdate().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return false, fmt.Errorf("failed to lock budget row: %w", err)
	}

	if row == nil {
		if err := tx.SourceBudget.Create().
			SetConnectorName(connectorName).
			SetSourceKey(sourceKey).
			SetWindowHour(window).
			SetRequestCount(1).
			Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to create budget row: %w", err)
		}
		return true, tx.Commit()
	}

	if budgetPerHour > 0 && row.RequestCount >= budgetPerHour {
		return false, tx.Commit()
	}
	if err := row.Update().AddRequestCount(1).Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to increment budget: %w", err)
	}
	return true, tx.Commit()
}

// NextCredential advances the round-robin cursor for the candidate and
// returns the selected alias with its secrets. Called only after the
// budget check passes so skipped candidates do not burn a rotation slot.
func (e *Engine) NextCredential(_ context.Context, connectorName, sourceKey string, aliases []string, credentials map[string]map[string]interface{}) (string, map[string]interface{}, error) {
	if len(aliases) == 0 {
		return "", nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start credential transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.SourceCredentialCursor.Query().
		Where(
			sourcecredentialcursor.ConnectorNameEQ(connectorName),
			sourcecredentialcursor.SourceKeyEQ(sourceKey),
		).
		ForUpdate().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return "", nil, fmt.Errorf("failed to lock credential cursor: %w", err)
	}

	index := 0
	if row == nil {
		if err := tx.SourceCredentialCursor.Create().
			SetConnectorName(connectorName).
			SetSourceKey(sourceKey).
			SetNextIndex(1).
			Exec(ctx); err != nil {
			return "", nil, fmt.Errorf("failed to create credential cursor: %w", err)
		}
	} else {
		index = row.NextIndex % len(aliases)
		if err := row.Update().SetNextIndex(index + 1).Exec(ctx); err != nil {
			return "", nil, fmt.Errorf("failed to advance credential cursor: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", nil, fmt.Errorf("failed to commit credential cursor: %w", err)
	}

	alias := aliases[index]
	return alias, credentials[alias], nil
}

func (e *Engine) recordSuccess(_ context.Context, connectorName, sourceKey string, latencyMS int64, result *adapters.FetchResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	state, err := tx.SourceState.Query().
		Where(
			sourcestate.ConnectorNameEQ(connectorName),
			sourcestate.SourceKeyEQ(sourceKey),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load source state: %w", err)
	}

	now := time.Now()
	update := state.Update().
		SetHealthScore(HealthAfterSuccess(state.HealthScore, latencyMS)).
		SetConsecutiveFailures(0).
		AddTotalSuccess(1).
		SetLastLatencyMs(int(latencyMS)).
		SetLastAttemptAt(now).
		SetLastSuccessAt(now).
		SetLastError("").
		SetIsActive(true)
	if result.NextCursor != "" {
		update = update.SetCheckpointCursor(result.NextCursor)
	}
	if result.CheckpointPublishTime != nil {
		update = update.SetCheckpointPublishTime(*result.CheckpointPublishTime)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update source state: %w", err)
	}

	// Exactly one active candidate per connector at rest.
	if err := tx.SourceState.Update().
		Where(
			sourcestate.ConnectorNameEQ(connectorName),
			sourcestate.SourceKeyNEQ(sourceKey),
			sourcestate.IsActiveEQ(true),
		).
		SetIsActive(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to deactivate siblings: %w", err)
	}
	return tx.Commit()
}

func (e *Engine) recordFailure(_ context.Context, connectorName, sourceKey string, latencyMS int64, fetchErr error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	state, err := e.client.SourceState.Query().
		Where(
			sourcestate.ConnectorNameEQ(connectorName),
			sourcestate.SourceKeyEQ(sourceKey),
		).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load source state: %w", err)
	}

	now := time.Now()
	return state.Update().
		SetHealthScore(HealthAfterFailure(state.HealthScore, state.ConsecutiveFailures, latencyMS)).
		AddConsecutiveFailures(1).
		AddTotalFailures(1).
		SetLastLatencyMs(int(latencyMS)).
		SetLastAttemptAt(now).
		SetLastFailureAt(now).
		SetLastError(fetchErr.Error()).
		SetIsActive(false).
		Exec(ctx)
}

func mergedConfig(base map[string]interface{}, secrets map[string]interface{}) adapters.Config {
	cfg := make(map[string]interface{}, len(base)+len(secrets))
	for k, v := range base {
		cfg[k] = v
	}
	if len(secrets) > 0 {
		if err := mergo.Merge(&cfg, secrets, mergo.WithOverride); err != nil {
			for k, v := range secrets {
				cfg[k] = v
			}
		}
	}
	return adapters.Config(cfg)
}
