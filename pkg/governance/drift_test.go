package governance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/pkg/backtest"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/nlp"
	"github.com/quantmuse/eventcore/pkg/services"
)

var (
	baselineDay = time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	currentDay  = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
)

func metricEvent(id string, publish time.Time, score float64, hit bool) models.EventRow {
	row := models.EventRow{
		EventID:     id,
		Symbol:      "600519",
		EventType:   "share_buyback",
		PublishTime: publish,
		Polarity:    "positive",
		Score:       score,
		Confidence:  0.9,
		Title:       "回购股份公告",
	}
	if hit {
		row.Metadata = map[string]interface{}{
			"matched_rules":       "buyback",
			"nlp_ruleset_version": "v1",
		}
	}
	return row
}

// seedWindowEvents fills the baseline window (Mar 6-7) with strong rule
// hits and the current window (Mar 8-9) with weak misses.
func seedWindowEvents(t *testing.T, events *services.EventService) {
	t.Helper()
	_, err := events.Ingest(context.Background(), "cninfo", []models.EventRow{
		metricEvent("b-1", baselineDay.Add(10*time.Hour), 0.8, true),
		metricEvent("b-2", baselineDay.AddDate(0, 0, 1).Add(10*time.Hour), 0.6, true),
		metricEvent("c-1", currentDay.Add(10*time.Hour), 0.2, false),
		metricEvent("c-2", currentDay.AddDate(0, 0, 1).Add(10*time.Hour), 0.4, false),
	})
	require.NoError(t, err)
}

func alertFor(result *models.DriftResult, metric string) *models.DriftAlert {
	for i := range result.Alerts {
		if result.Alerts[i].Metric == metric {
			return &result.Alerts[i]
		}
	}
	return nil
}

func TestDriftCheck_Validation(t *testing.T) {
	_, svc, _ := setupGovernance(t)
	ctx := context.Background()

	_, err := svc.DriftCheck(ctx, models.DriftCheckRequest{})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.DriftCheck(ctx, models.DriftCheckRequest{
		CurrentStart: currentDay.AddDate(0, 0, 1),
		CurrentEnd:   currentDay,
	})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestDriftCheck_MirroredBaselineAndSnapshot(t *testing.T) {
	client, svc, events := setupGovernance(t)
	ctx := context.Background()
	seedWindowEvents(t, events)

	// Baseline left unset mirrors the two-day current span right before it.
	result, err := svc.DriftCheck(ctx, models.DriftCheckRequest{
		SourceName:      "cninfo",
		CurrentStart:    currentDay,
		CurrentEnd:      currentDay.AddDate(0, 0, 1),
		PersistSnapshot: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-08..2026-03-09", result.CurrentWindow)
	assert.Equal(t, "2026-03-06..2026-03-07", result.BaselineWindow)
	assert.Equal(t, nlp.BuiltinVersion, result.RulesetVersion)

	assert.Equal(t, 2, result.Current.SampleSize)
	assert.Equal(t, 2, result.Baseline.SampleSize)
	assert.Zero(t, result.Current.HitRate)
	assert.Equal(t, 1.0, result.Baseline.HitRate)
	assert.Equal(t, "v1", result.Baseline.RulesetVersion)

	assert.InDelta(t, -1.0, result.HitRateDelta, 1e-9)
	assert.InDelta(t, -0.4, result.ScoreP50Delta, 1e-9)

	hitAlert := alertFor(result, "hit_rate")
	require.NotNil(t, hitAlert)
	assert.Equal(t, models.SeverityCritical, hitAlert.Severity)
	scoreAlert := alertFor(result, "score_p50")
	require.NotNil(t, scoreAlert)
	assert.Equal(t, models.SeverityCritical, scoreAlert.Severity)

	require.NotZero(t, result.SnapshotID)
	snap, err := client.NLPDriftSnapshot.Get(ctx, result.SnapshotID)
	require.NoError(t, err)
	assert.Equal(t, "cninfo", snap.SourceName)
	assert.Equal(t, result.CurrentWindow, snap.CurrentWindow)
	assert.Equal(t, 2, snap.SampleSize)
	assert.Equal(t, 2, snap.BaselineSampleSize)
	assert.InDelta(t, -1.0, snap.HitRateDelta, 1e-9)
	assert.Len(t, snap.Alerts, 2)

	// Swapping the windows shows improvement, which never alerts.
	result, err = svc.DriftCheck(ctx, models.DriftCheckRequest{
		SourceName:    "cninfo",
		CurrentStart:  baselineDay,
		CurrentEnd:    baselineDay.AddDate(0, 0, 1),
		BaselineStart: currentDay,
		BaselineEnd:   currentDay.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.HitRateDelta, 1e-9)
	assert.Empty(t, result.Alerts)
	assert.Zero(t, result.SnapshotID)
}

type stubComparator struct {
	byStart map[string]float64
}

func (c stubComparator) Compare(_ context.Context, _, _ string, start, _ time.Time) (*backtest.Comparison, error) {
	return &backtest.Comparison{TotalReturnDelta: c.byStart[start.Format("2006-01-02")]}, nil
}

func TestDriftCheck_ContributionDelta(t *testing.T) {
	client, _, events := setupGovernance(t)
	ctx := context.Background()

	svc := NewService(client, events, stubComparator{byStart: map[string]float64{
		"2026-03-08": 0.01,
		"2026-03-06": 0.08,
	}}, nil)

	result, err := svc.DriftCheck(ctx, models.DriftCheckRequest{
		SourceName:           "cninfo",
		CurrentStart:         currentDay,
		CurrentEnd:           currentDay.AddDate(0, 0, 1),
		ContributionSymbol:   "600519",
		ContributionStrategy: "ma5_event_tilt",
	})
	require.NoError(t, err)
	require.NotNil(t, result.ContributionDelta)
	assert.InDelta(t, -0.07, *result.ContributionDelta, 1e-9)

	alert := alertFor(result, "contribution")
	require.NotNil(t, alert)
	assert.Equal(t, models.SeverityCritical, alert.Severity)

	// Without a symbol and strategy the comparator is never consulted.
	result, err = svc.DriftCheck(ctx, models.DriftCheckRequest{
		CurrentStart: currentDay,
		CurrentEnd:   currentDay.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	assert.Nil(t, result.ContributionDelta)
}

func seedFeedbackRow(t *testing.T, client *ent.Client, eventID, polarity, eventType string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, client.NLPFeedback.Create().
		SetSourceName("cninfo").
		SetEventID(eventID).
		SetLabeler("analyst").
		SetLabelPolarity(polarity).
		SetLabelEventType(eventType).
		SetCreatedAt(createdAt).
		Exec(context.Background()))
}

func TestDriftCheck_FeedbackAccuracy(t *testing.T) {
	client, svc, events := setupGovernance(t)
	ctx := context.Background()
	seedWindowEvents(t, events)

	// Baseline labelers agree with the events; current labelers do not.
	seedFeedbackRow(t, client, "b-1", "positive", "share_buyback", baselineDay.Add(12*time.Hour))
	seedFeedbackRow(t, client, "b-2", "positive", "share_buyback", baselineDay.AddDate(0, 0, 1).Add(12*time.Hour))
	seedFeedbackRow(t, client, "c-1", "negative", "earnings_preannounce", currentDay.Add(12*time.Hour))
	seedFeedbackRow(t, client, "c-2", "negative", "earnings_preannounce", currentDay.AddDate(0, 0, 1).Add(12*time.Hour))

	req := models.DriftCheckRequest{
		SourceName:    "cninfo",
		CurrentStart:  currentDay,
		CurrentEnd:    currentDay.AddDate(0, 0, 1),
		CheckFeedback: true,
	}

	// Two samples per window is below the default minimum of 20.
	result, err := svc.DriftCheck(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, result.FeedbackPolarityAccuracyDelta)
	assert.Nil(t, result.FeedbackEventTypeAccuracyDelta)

	req.FeedbackMinSamples = 2
	result, err = svc.DriftCheck(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result.FeedbackPolarityAccuracyDelta)
	require.NotNil(t, result.FeedbackEventTypeAccuracyDelta)
	assert.InDelta(t, -1.0, *result.FeedbackPolarityAccuracyDelta, 1e-9)
	assert.InDelta(t, -1.0, *result.FeedbackEventTypeAccuracyDelta, 1e-9)

	polarityAlert := alertFor(result, "feedback_polarity_accuracy")
	require.NotNil(t, polarityAlert)
	assert.Equal(t, models.SeverityCritical, polarityAlert.Severity)
	typeAlert := alertFor(result, "feedback_event_type_accuracy")
	require.NotNil(t, typeAlert)
	assert.Equal(t, models.SeverityCritical, typeAlert.Severity)
}

func TestSubmitFeedback(t *testing.T) {
	client, svc, events := setupGovernance(t)
	ctx := context.Background()

	_, err := events.Ingest(ctx, "cninfo", []models.EventRow{
		metricEvent("ann-1", time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC), 0.8, true),
	})
	require.NoError(t, err)

	_, err = svc.SubmitFeedback(ctx, models.LabelEntry{EventID: "ann-1"}, "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.SubmitFeedback(ctx, models.LabelEntry{
		SourceName:    "cninfo",
		EventID:       "ann-1",
		LabelPolarity: "bullish",
	}, "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	badScore := 1.5
	_, err = svc.SubmitFeedback(ctx, models.LabelEntry{
		SourceName: "cninfo",
		EventID:    "ann-1",
		LabelScore: &badScore,
	}, "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.SubmitFeedback(ctx, models.LabelEntry{
		SourceName: "cninfo",
		EventID:    "ghost",
	}, "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	score := 0.4
	id, err := svc.SubmitFeedback(ctx, models.LabelEntry{
		SourceName:     "cninfo",
		EventID:        "ann-1",
		Labeler:        "analyst",
		LabelEventType: "share_buyback",
		LabelPolarity:  "neutral",
		LabelScore:     &score,
	}, "weaker than the headline suggests")
	require.NoError(t, err)

	row, err := client.NLPFeedback.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "neutral", row.LabelPolarity)
	assert.Equal(t, "weaker than the headline suggests", row.Comment)
	require.NotNil(t, row.LabelScore)
	assert.InDelta(t, 0.4, *row.LabelScore, 1e-9)
}

func TestAdjudicateLabels_PersistsConsensus(t *testing.T) {
	client, svc, _ := setupGovernance(t)
	ctx := context.Background()

	entries := []models.LabelEntry{
		{SourceName: "cninfo", EventID: "ann-1", Labeler: "a", LabelEventType: "share_buyback", LabelPolarity: "positive", PredictedScore: 0.7},
		{SourceName: "cninfo", EventID: "ann-1", Labeler: "b", LabelEventType: "share_buyback", LabelPolarity: "positive", PredictedScore: 0.8},
	}
	result, err := svc.AdjudicateLabels(ctx, models.AdjudicateRequest{Entries: entries, Persist: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Adjudicated)

	row, err := client.NLPConsensus.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "share_buyback", row.ConsensusEventType)
	assert.Equal(t, "positive", row.ConsensusPolarity)
	assert.Equal(t, 2, row.LabelCount)
	assert.False(t, row.Conflict)

	// Re-adjudication updates the existing row instead of duplicating it.
	entries[1].LabelPolarity = "neutral"
	_, err = svc.AdjudicateLabels(ctx, models.AdjudicateRequest{Entries: entries, Persist: true})
	require.NoError(t, err)

	count, err := client.NLPConsensus.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	row, err = client.NLPConsensus.Query().Only(ctx)
	require.NoError(t, err)
	assert.True(t, row.Conflict)
}
