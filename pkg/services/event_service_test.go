package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/pkg/models"
	testdb "github.com/quantmuse/eventcore/test/database"
)

func setupEventService(t *testing.T) (*ent.Client, *EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sources := NewSourceService(client.Client, nil)
	_, err := sources.RegisterSource(context.Background(), models.RegisterSourceRequest{
		SourceName: "cninfo",
	})
	require.NoError(t, err)
	return client.Client, NewEventService(client.Client)
}

func eventRow(id string, publish time.Time) models.EventRow {
	return models.EventRow{
		EventID:     id,
		Symbol:      "600519",
		EventType:   "share_buyback",
		PublishTime: publish,
		Polarity:    "positive",
		Score:       0.8,
		Confidence:  0.9,
		Title:       "回购股份公告",
	}
}

func TestIngest_UnknownSource(t *testing.T) {
	_, svc := setupEventService(t)

	_, err := svc.Ingest(context.Background(), "ghost", []models.EventRow{
		eventRow("ann-1", time.Now()),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIngest_MixedBatch(t *testing.T) {
	_, svc := setupEventService(t)
	ctx := context.Background()
	publish := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	bad := eventRow("ann-2", publish)
	bad.Symbol = ""
	outOfRange := eventRow("ann-3", publish)
	outOfRange.Score = 1.5

	result, err := svc.Ingest(ctx, "cninfo", []models.EventRow{
		eventRow("ann-1", publish),
		bad,
		outOfRange,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Zero(t, result.Updated)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "idx=1")
	assert.Contains(t, result.Errors[1], "idx=2")

	// Same (source, event_id) again: update, not duplicate.
	updated := eventRow("ann-1", publish)
	updated.Title = "回购进展公告"
	result, err = svc.Ingest(ctx, "cninfo", []models.EventRow{updated})
	require.NoError(t, err)
	assert.Zero(t, result.Inserted)
	assert.Equal(t, 1, result.Updated)

	events, err := svc.ListEvents(ctx, models.EventFilter{SourceName: "cninfo"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "回购进展公告", events[0].Title)
}

func TestIngest_EffectiveTimeOrdering(t *testing.T) {
	_, svc := setupEventService(t)
	publish := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)
	early := publish.Add(-time.Hour)

	row := eventRow("ann-1", publish)
	row.EffectiveTime = &early

	result, err := svc.Ingest(context.Background(), "cninfo", []models.EventRow{row})
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "effective_time")
}

func TestListEvents_FilterAndOrder(t *testing.T) {
	_, svc := setupEventService(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	older := eventRow("ann-1", base)
	newer := eventRow("ann-2", base.Add(2*time.Hour))
	other := eventRow("ann-3", base.Add(time.Hour))
	other.Symbol = "000001"
	other.EventType = "litigation"

	_, err := svc.Ingest(ctx, "cninfo", []models.EventRow{older, newer, other})
	require.NoError(t, err)

	events, err := svc.ListEvents(ctx, models.EventFilter{Symbol: "600519"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Publish time descending.
	assert.Equal(t, "ann-2", events[0].EventID)
	assert.Equal(t, "ann-1", events[1].EventID)

	events, err = svc.ListEvents(ctx, models.EventFilter{EventType: "litigation"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ann-3", events[0].EventID)

	events, err = svc.ListEvents(ctx, models.EventFilter{
		Start: base.Add(30 * time.Minute),
		End:   base.Add(90 * time.Minute),
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ann-3", events[0].EventID)
}

func TestEnrichBars_DecayedAggregates(t *testing.T) {
	_, svc := setupEventService(t)
	ctx := context.Background()
	publish := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	negative := eventRow("ann-2", publish)
	negative.EventType = "litigation"
	negative.Polarity = "negative"
	negative.Score = 0.5

	_, err := svc.Ingest(ctx, "cninfo", []models.EventRow{
		eventRow("ann-1", publish),
		negative,
	})
	require.NoError(t, err)

	bars := []models.Bar{
		{TradeDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{TradeDate: time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)},
		{TradeDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)},
	}

	enriched, err := svc.EnrichBars(ctx, "600519", bars, 30, 7)
	require.NoError(t, err)
	require.Len(t, enriched, 3)

	// Same day: full weight.
	assert.InDelta(t, 0.8, enriched[0].EventScorePositive, 1e-9)
	assert.InDelta(t, 0.5, enriched[0].EventScoreNegative, 1e-9)
	assert.Equal(t, 2, enriched[0].EventCount)

	// Seven days later: one half-life, weights halve.
	assert.InDelta(t, 0.4, enriched[1].EventScorePositive, 1e-9)
	assert.InDelta(t, 0.25, enriched[1].EventScoreNegative, 1e-9)

	// Bars before the event see nothing.
	assert.Zero(t, enriched[2].EventScorePositive)
	assert.Zero(t, enriched[2].EventCount)
}

func TestEnrichBars_Validation(t *testing.T) {
	_, svc := setupEventService(t)

	_, err := svc.EnrichBars(context.Background(), "", nil, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	enriched, err := svc.EnrichBars(context.Background(), "600519", nil, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, enriched)
}

func TestPreviewFeatures_DailyProjection(t *testing.T) {
	_, svc := setupEventService(t)
	ctx := context.Background()

	negative := eventRow("ann-2", time.Date(2026, 3, 12, 2, 0, 0, 0, time.UTC))
	negative.EventType = "litigation"
	negative.Polarity = "negative"
	negative.Score = 0.5

	_, err := svc.Ingest(ctx, "cninfo", []models.EventRow{
		eventRow("ann-1", time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)),
		negative,
	})
	require.NoError(t, err)

	rows, err := svc.PreviewFeatures(ctx, "600519",
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		30, 1)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// One row per calendar day of the window.
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), rows[3].Date)

	// Day of the positive event: full weight, negative not yet published.
	assert.InDelta(t, 0.8, rows[0].EventScorePositive, 1e-9)
	assert.Zero(t, rows[0].EventScoreNegative)
	assert.Equal(t, 1, rows[0].EventCount)

	// One-day half-life halves the positive score each day.
	assert.InDelta(t, 0.4, rows[1].EventScorePositive, 1e-9)

	// Negative event lands on day three alongside the decayed positive.
	assert.InDelta(t, 0.2, rows[2].EventScorePositive, 1e-9)
	assert.InDelta(t, 0.5, rows[2].EventScoreNegative, 1e-9)
	assert.Equal(t, 2, rows[2].EventCount)

	assert.InDelta(t, 0.1, rows[3].EventScorePositive, 1e-9)
	assert.InDelta(t, 0.25, rows[3].EventScoreNegative, 1e-9)
}

func TestPreviewFeatures_Validation(t *testing.T) {
	_, svc := setupEventService(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.PreviewFeatures(ctx, "", day, day, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.PreviewFeatures(ctx, "600519", time.Time{}, day, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.PreviewFeatures(ctx, "600519", day.AddDate(0, 0, 1), day, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateJoin(t *testing.T) {
	_, svc := setupEventService(t)
	ctx := context.Background()
	publish := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	_, err := svc.Ingest(ctx, "cninfo", []models.EventRow{eventRow("ann-1", publish)})
	require.NoError(t, err)

	matched, total, err := svc.ValidateJoin(ctx, "600519", []time.Time{
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, matched)
	assert.Equal(t, 2, total)
}
