package governance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/pkg/models"
)

func seedSnapshot(t *testing.T, client *ent.Client, source string, age time.Duration, hitDelta, scoreDelta float64, alerts []models.DriftAlert) int {
	t.Helper()
	builder := client.NLPDriftSnapshot.Create().
		SetRulesetVersion("v1").
		SetCurrentWindow("2026-03-08..2026-03-09").
		SetBaselineWindow("2026-03-06..2026-03-07").
		SetCurrentMetrics(map[string]interface{}{}).
		SetBaselineMetrics(map[string]interface{}{}).
		SetHitRateDelta(hitDelta).
		SetScoreP50Delta(scoreDelta).
		SetCreatedAt(time.Now().Add(-age))
	if source != "" {
		builder = builder.SetSourceName(source)
	}
	if len(alerts) > 0 {
		builder = builder.SetAlerts(alerts)
	}
	snap, err := builder.Save(context.Background())
	require.NoError(t, err)
	return snap.ID
}

func warningAlert() []models.DriftAlert {
	return []models.DriftAlert{{Metric: "hit_rate", Severity: models.SeverityWarning, Value: -0.2}}
}

func criticalAlert() []models.DriftAlert {
	return []models.DriftAlert{{Metric: "hit_rate", Severity: models.SeverityCritical, Value: -0.35}}
}

func TestDriftMonitor_LookbackGates(t *testing.T) {
	client, svc, _ := setupGovernance(t)
	ctx := context.Background()

	seedSnapshot(t, client, "cninfo", 24*time.Hour, -0.05, -0.02, nil)
	seedSnapshot(t, client, "cninfo", 40*24*time.Hour, -0.5, -0.3, criticalAlert())

	// A zero lookback is an explicit opt-out.
	result, err := svc.DriftMonitor(ctx, "cninfo", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, result.Points)
	assert.Equal(t, RiskInfo, result.LatestRiskLevel)

	// Negative lookback falls back to 30 days, excluding the aged critical.
	result, err = svc.DriftMonitor(ctx, "cninfo", 10, -1)
	require.NoError(t, err)
	require.Len(t, result.Points, 1)
	assert.Equal(t, RiskInfo, result.LatestRiskLevel)
}

func TestDriftMonitor_CriticalSequenceAndTrends(t *testing.T) {
	client, svc, _ := setupGovernance(t)
	ctx := context.Background()

	oldest := seedSnapshot(t, client, "cninfo", 3*24*time.Hour, -0.05, -0.02, nil)
	middle := seedSnapshot(t, client, "cninfo", 2*24*time.Hour, -0.20, -0.12, warningAlert())
	latest := seedSnapshot(t, client, "cninfo", 24*time.Hour, -0.35, -0.25, criticalAlert())

	// Snapshots for other sources stay out of the sequence.
	seedSnapshot(t, client, "sse", 24*time.Hour, -0.9, -0.9, criticalAlert())

	result, err := svc.DriftMonitor(ctx, "cninfo", 10, 7)
	require.NoError(t, err)
	require.Len(t, result.Points, 3)
	assert.Equal(t, []int{oldest, middle, latest}, []int{
		result.Points[0].SnapshotID,
		result.Points[1].SnapshotID,
		result.Points[2].SnapshotID,
	})
	assert.Equal(t, 1, result.Points[1].WarningCount)
	assert.Equal(t, 1, result.Points[2].CriticalCount)
	assert.Equal(t, RiskCritical, result.LatestRiskLevel)
	assert.InDelta(t, -0.30, result.Trends["hit_rate_delta"], 1e-9)
	assert.InDelta(t, -0.23, result.Trends["score_p50_delta"], 1e-9)
}

func TestDriftMonitor_RiskFromHistory(t *testing.T) {
	client, svc, _ := setupGovernance(t)
	ctx := context.Background()

	// Three warning snapshots keep the level at warning even when the
	// latest one is clean.
	for i := 4; i >= 2; i-- {
		seedSnapshot(t, client, "cninfo", time.Duration(i)*24*time.Hour, -0.2, -0.12, warningAlert())
	}
	seedSnapshot(t, client, "cninfo", 24*time.Hour, -0.02, -0.01, nil)

	result, err := svc.DriftMonitor(ctx, "cninfo", 10, 7)
	require.NoError(t, err)
	require.Len(t, result.Points, 4)
	assert.Zero(t, result.Points[3].WarningCount)
	assert.Equal(t, RiskWarning, result.LatestRiskLevel)

	// Two criticals anywhere in the window escalate past warning.
	seedSnapshot(t, client, "cninfo", 36*time.Hour, -0.4, -0.3, criticalAlert())
	seedSnapshot(t, client, "cninfo", 30*time.Hour, -0.4, -0.3, criticalAlert())

	result, err = svc.DriftMonitor(ctx, "cninfo", 10, 7)
	require.NoError(t, err)
	assert.Equal(t, RiskCritical, result.LatestRiskLevel)
}

func TestDriftMonitor_LimitBoundsSequence(t *testing.T) {
	client, svc, _ := setupGovernance(t)
	ctx := context.Background()

	seedSnapshot(t, client, "cninfo", 3*24*time.Hour, -0.05, -0.02, nil)
	middle := seedSnapshot(t, client, "cninfo", 2*24*time.Hour, -0.10, -0.05, nil)
	latest := seedSnapshot(t, client, "cninfo", 24*time.Hour, -0.15, -0.08, nil)

	result, err := svc.DriftMonitor(ctx, "cninfo", 2, 7)
	require.NoError(t, err)
	require.Len(t, result.Points, 2)
	assert.Equal(t, middle, result.Points[0].SnapshotID)
	assert.Equal(t, latest, result.Points[1].SnapshotID)
	assert.InDelta(t, -0.05, result.Trends["hit_rate_delta"], 1e-9)
}
