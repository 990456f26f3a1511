package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/eventrecord"
	"github.com/quantmuse/eventcore/ent/eventsource"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/timeutil"
)

// EventService is the facade over the event store: validated ingest plus
// the read projections consumed by downstream factor and strategy
// collaborators.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Ingest upserts a batch of normalized events for one source inside a
// single transaction. Row errors are collected as "idx=N: message" so
// callers can map them back to input positions; valid rows still commit.
func (s *EventService) Ingest(httpCtx context.Context, sourceName string, rows []models.EventRow) (models.IngestResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return models.IngestResult{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := s.IngestTx(ctx, tx, sourceName, rows)
	if err != nil {
		return models.IngestResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.IngestResult{}, fmt.Errorf("failed to commit ingest: %w", err)
	}
	return result, nil
}

// IngestTx performs the ingest inside a caller-owned transaction. The
// connector runtime uses this to commit checkpoint advancement and the
// batch atomically.
func (s *EventService) IngestTx(ctx context.Context, tx *ent.Tx, sourceName string, rows []models.EventRow) (models.IngestResult, error) {
	exists, err := tx.EventSource.Query().
		Where(eventsource.SourceNameEQ(sourceName)).
		Exist(ctx)
	if err != nil {
		return models.IngestResult{}, fmt.Errorf("failed to check source: %w", err)
	}
	if !exists {
		return models.IngestResult{}, fmt.Errorf("source %q: %w", sourceName, ErrNotFound)
	}

	var result models.IngestResult
	for idx, row := range rows {
		if err := validateEventRow(row); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("idx=%d: %v", idx, err))
			continue
		}
		inserted, err := upsertEventRow(ctx, tx, sourceName, row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("idx=%d: %v", idx, err))
			continue
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func validateEventRow(row models.EventRow) error {
	if row.EventID == "" {
		return NewValidationError("event_id", "required")
	}
	if row.Symbol == "" {
		return NewValidationError("symbol", "required")
	}
	if row.PublishTime.IsZero() {
		return NewValidationError("publish_time", "required")
	}
	if row.Score < 0 || row.Score > 1 {
		return NewValidationError("score", "must be within [0,1]")
	}
	if row.Confidence < 0 || row.Confidence > 1 {
		return NewValidationError("confidence", "must be within [0,1]")
	}
	if row.EffectiveTime != nil && row.EffectiveTime.Before(row.PublishTime) {
		return NewValidationError("effective_time", "must not precede publish_time")
	}
	switch row.Polarity {
	case "", "positive", "negative", "neutral":
	default:
		return NewValidationError("polarity", fmt.Sprintf("unknown value %q", row.Polarity))
	}
	return nil
}

// upsertEventRow inserts or updates by (source_name, event_id) and
// reports whether a new row was created.
func upsertEventRow(ctx context.Context, tx *ent.Tx, sourceName string, row models.EventRow) (bool, error) {
	existing, err := tx.EventRecord.Query().
		Where(
			eventrecord.SourceNameEQ(sourceName),
			eventrecord.EventIDEQ(row.EventID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return false, fmt.Errorf("failed to query event: %w", err)
	}

	polarity := eventrecord.Polarity(row.Polarity)
	if row.Polarity == "" {
		polarity = eventrecord.PolarityNeutral
	}

	if existing != nil {
		update := existing.Update().
			SetSymbol(row.Symbol).
			SetEventType(row.EventType).
			SetPublishTime(row.PublishTime).
			SetPolarity(polarity).
			SetScore(row.Score).
			SetConfidence(row.Confidence).
			SetTitle(row.Title).
			SetSummary(row.Summary)
		if row.EffectiveTime != nil {
			update = update.SetEffectiveTime(*row.EffectiveTime)
		}
		if row.RawRef != "" {
			update = update.SetRawRef(row.RawRef)
		}
		if row.Tags != nil {
			update = update.SetTags(row.Tags)
		}
		if row.Metadata != nil {
			update = update.SetMetadata(row.Metadata)
		}
		if err := update.Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to update event: %w", err)
		}
		return false, nil
	}

	builder := tx.EventRecord.Create().
		SetSourceName(sourceName).
		SetEventID(row.EventID).
		SetSymbol(row.Symbol).
		SetEventType(row.EventType).
		SetPublishTime(row.PublishTime).
		SetPolarity(polarity).
		SetScore(row.Score).
		SetConfidence(row.Confidence).
		SetTitle(row.Title).
		SetSummary(row.Summary)
	if row.EffectiveTime != nil {
		builder = builder.SetEffectiveTime(*row.EffectiveTime)
	}
	if row.RawRef != "" {
		builder = builder.SetRawRef(row.RawRef)
	}
	if row.Tags != nil {
		builder = builder.SetTags(row.Tags)
	}
	if row.Metadata != nil {
		builder = builder.SetMetadata(row.Metadata)
	}
	if err := builder.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to insert event: %w", err)
	}
	return true, nil
}

// ListEvents returns events matching the filter, publish time descending.
func (s *EventService) ListEvents(ctx context.Context, filter models.EventFilter) ([]*ent.EventRecord, error) {
	query := s.client.EventRecord.Query()
	if filter.Symbol != "" {
		query = query.Where(eventrecord.SymbolEQ(filter.Symbol))
	}
	if filter.SourceName != "" {
		query = query.Where(eventrecord.SourceNameEQ(filter.SourceName))
	}
	if filter.EventType != "" {
		query = query.Where(eventrecord.EventTypeEQ(filter.EventType))
	}
	if !filter.Start.IsZero() {
		query = query.Where(eventrecord.PublishTimeGTE(filter.Start))
	}
	if !filter.End.IsZero() {
		query = query.Where(eventrecord.PublishTimeLTE(filter.End))
	}
	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	events, err := query.
		Order(ent.Desc(eventrecord.FieldPublishTime)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// LoadEventRowsForMetrics returns the raw projection drift aggregation
// works on. start and end are local calendar dates expanded to full-day
// UTC bounds.
func (s *EventService) LoadEventRowsForMetrics(ctx context.Context, sourceName string, start, end time.Time) ([]models.MetricsRow, error) {
	lo, hi := timeutil.DayBounds(start, end)
	query := s.client.EventRecord.Query().
		Where(
			eventrecord.PublishTimeGTE(lo),
			eventrecord.PublishTimeLTE(hi),
		)
	if sourceName != "" {
		query = query.Where(eventrecord.SourceNameEQ(sourceName))
	}
	events, err := query.
		Order(ent.Asc(eventrecord.FieldPublishTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load metric rows: %w", err)
	}
	rows := make([]models.MetricsRow, 0, len(events))
	for _, evt := range events {
		rows = append(rows, models.MetricsRow{
			EventType: evt.EventType,
			Polarity:  string(evt.Polarity),
			Score:     evt.Score,
			Metadata:  evt.Metadata,
		})
	}
	return rows, nil
}

// EnrichBars attaches decayed event-score aggregates to each bar: for a
// bar on day D, every event within the trailing lookback contributes its
// score weighted by 2^(-age_days/half_life), split into positive and
// negative sums.
func (s *EventService) EnrichBars(ctx context.Context, symbol string, bars []models.Bar, lookbackDays int, decayHalfLifeDays float64) ([]models.EnrichedBar, error) {
	if symbol == "" {
		return nil, NewValidationError("symbol", "required")
	}
	if lookbackDays <= 0 {
		lookbackDays = 30
	}
	if decayHalfLifeDays <= 0 {
		decayHalfLifeDays = 7
	}
	if len(bars) == 0 {
		return nil, nil
	}

	minDate, maxDate := bars[0].TradeDate, bars[0].TradeDate
	for _, bar := range bars[1:] {
		if bar.TradeDate.Before(minDate) {
			minDate = bar.TradeDate
		}
		if bar.TradeDate.After(maxDate) {
			maxDate = bar.TradeDate
		}
	}
	lo, hi := timeutil.DayBounds(minDate.AddDate(0, 0, -lookbackDays), maxDate)

	events, err := s.client.EventRecord.Query().
		Where(
			eventrecord.SymbolEQ(symbol),
			eventrecord.PublishTimeGTE(lo),
			eventrecord.PublishTimeLTE(hi),
		).
		Order(ent.Asc(eventrecord.FieldPublishTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for enrichment: %w", err)
	}

	enriched := make([]models.EnrichedBar, 0, len(bars))
	for _, bar := range bars {
		out := models.EnrichedBar{Bar: bar}
		barDay := time.Date(bar.TradeDate.Year(), bar.TradeDate.Month(), bar.TradeDate.Day(), 0, 0, 0, 0, time.UTC)
		for _, evt := range events {
			eventDay := evt.PublishTime.Truncate(24 * time.Hour)
			ageDays := barDay.Sub(eventDay).Hours() / 24
			if ageDays < 0 || ageDays > float64(lookbackDays) {
				continue
			}
			weight := math.Exp2(-ageDays / decayHalfLifeDays)
			switch evt.Polarity {
			case eventrecord.PolarityPositive:
				out.EventScorePositive += evt.Score * weight
			case eventrecord.PolarityNegative:
				out.EventScoreNegative += evt.Score * weight
			}
			out.EventCount++
		}
		enriched = append(enriched, out)
	}
	return enriched, nil
}

// PreviewFeatures projects the decayed event features for every calendar
// day in [start, end] without requiring caller bars, so collaborators can
// inspect what EnrichBars would attach before running a join. Decay
// semantics are EnrichBars' exactly.
func (s *EventService) PreviewFeatures(ctx context.Context, symbol string, start, end time.Time, lookbackDays int, decayHalfLifeDays float64) ([]models.FeaturePreviewRow, error) {
	if symbol == "" {
		return nil, NewValidationError("symbol", "required")
	}
	if start.IsZero() || end.IsZero() {
		return nil, NewValidationError("window", "start and end are required")
	}
	if end.Before(start) {
		return nil, NewValidationError("window", "end precedes start")
	}

	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	var bars []models.Bar
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		bars = append(bars, models.Bar{TradeDate: day})
	}

	enriched, err := s.EnrichBars(ctx, symbol, bars, lookbackDays, decayHalfLifeDays)
	if err != nil {
		return nil, err
	}
	rows := make([]models.FeaturePreviewRow, 0, len(enriched))
	for _, bar := range enriched {
		rows = append(rows, models.FeaturePreviewRow{
			Date:               bar.TradeDate,
			EventScorePositive: bar.EventScorePositive,
			EventScoreNegative: bar.EventScoreNegative,
			EventCount:         bar.EventCount,
		})
	}
	return rows, nil
}

// ValidateJoin reports how many of the given trade dates have at least
// one event for the symbol, a cheap sanity check before feature joins.
func (s *EventService) ValidateJoin(ctx context.Context, symbol string, tradeDates []time.Time) (matched, total int, err error) {
	if symbol == "" {
		return 0, 0, NewValidationError("symbol", "required")
	}
	for _, day := range tradeDates {
		lo, hi := timeutil.DayBounds(day, day)
		ok, err := s.client.EventRecord.Query().
			Where(
				eventrecord.SymbolEQ(symbol),
				eventrecord.PublishTimeGTE(lo),
				eventrecord.PublishTimeLTE(hi),
			).
			Exist(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to validate join: %w", err)
		}
		if ok {
			matched++
		}
	}
	return matched, len(tradeDates), nil
}
