package sla

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/auditlog"
	"github.com/quantmuse/eventcore/ent/connectorfailure"
	"github.com/quantmuse/eventcore/ent/slaalertstate"
	"github.com/quantmuse/eventcore/pkg/adapters"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/services"
	testdb "github.com/quantmuse/eventcore/test/database"
)

func setupMonitor(t *testing.T) (*ent.Client, *Monitor) {
	t.Helper()
	db := testdb.NewTestClient(t)
	sources := services.NewSourceService(db.Client, nil)
	connectors := services.NewConnectorService(db.Client, sources, nil)
	ctx := context.Background()

	_, err := sources.RegisterSource(ctx, models.RegisterSourceRequest{SourceName: "cninfo"})
	require.NoError(t, err)
	_, err = connectors.RegisterConnector(ctx, models.RegisterConnectorRequest{
		ConnectorName: "cninfo_daily",
		SourceName:    "cninfo",
		ConnectorType: adapters.TypeFile,
	})
	require.NoError(t, err)

	return db.Client, NewMonitor(db.Client, connectors, audit.NewService(db.Client))
}

func setCheckpointAge(t *testing.T, client *ent.Client, age time.Duration) {
	t.Helper()
	ctx := context.Background()
	stamp := time.Now().Add(-age)
	n, err := client.ConnectorCheckpoint.Update().
		SetCheckpointPublishTime(stamp).
		Save(ctx)
	require.NoError(t, err)
	if n == 0 {
		require.NoError(t, client.ConnectorCheckpoint.Create().
			SetConnectorName("cninfo_daily").
			SetCheckpointPublishTime(stamp).
			Exec(ctx))
	}
}

func seedDeadFailures(t *testing.T, client *ent.Client, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, client.ConnectorFailure.Create().
			SetConnectorName("cninfo_daily").
			SetStatus("dead").
			SetPayload(map[string]interface{}{"phase": "ingest"}).
			Exec(context.Background()))
	}
}

func TestEvaluateSLA_HealthyConnector(t *testing.T) {
	client, monitor := setupMonitor(t)
	ctx := context.Background()

	// Never-run connectors have no freshness reference and no breaches.
	evals, err := monitor.EvaluateSLA(ctx)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Nil(t, evals[0].FreshnessMinutes)
	assert.Empty(t, evals[0].Breaches)

	setCheckpointAge(t, client, 5*time.Minute)
	evals, err = monitor.EvaluateSLA(ctx)
	require.NoError(t, err)
	require.NotNil(t, evals[0].FreshnessMinutes)
	assert.Equal(t, 5, *evals[0].FreshnessMinutes)
	assert.Empty(t, evals[0].Breaches)
}

func TestSyncSLAAlerts_OpenRepeatRecover(t *testing.T) {
	client, monitor := setupMonitor(t)
	ctx := context.Background()

	// 200 minutes stale: freshness warning. Two dead rows: dead backlog warning.
	setCheckpointAge(t, client, 200*time.Minute)
	seedDeadFailures(t, client, 2)

	result, err := monitor.SyncSLAAlerts(ctx, SyncRequest{TriggeredBy: "test"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Evaluated)
	assert.Equal(t, 2, result.Breaches)
	assert.Equal(t, 2, result.Emitted)
	assert.Zero(t, result.Skipped)
	assert.Equal(t, 2, result.OpenStates)
	assert.Zero(t, result.OpenEscalated)

	states, err := client.SLAAlertState.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	for _, state := range states {
		assert.True(t, state.IsOpen)
		assert.Equal(t, 1, state.RepeatCount)
		assert.NotNil(t, state.LastEmittedAt)
	}

	history, err := client.SLAHistory.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, history)

	emissions, err := client.AuditLog.Query().
		Where(auditlog.EventTypeEQ(audit.TypeSLA)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, emissions)

	// Second pass inside the cooldown: repeat counted, nothing emitted.
	result, err = monitor.SyncSLAAlerts(ctx, SyncRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Breaches)
	assert.Zero(t, result.Emitted)
	assert.Equal(t, 2, result.Skipped)

	states, err = client.SLAAlertState.Query().All(ctx)
	require.NoError(t, err)
	for _, state := range states {
		assert.Equal(t, 2, state.RepeatCount)
	}

	// Recovery: fresh data and an empty dead-letter queue close both alerts.
	setCheckpointAge(t, client, time.Minute)
	_, err = client.ConnectorFailure.Delete().
		Where(connectorfailure.ConnectorNameEQ("cninfo_daily")).
		Exec(ctx)
	require.NoError(t, err)

	result, err = monitor.SyncSLAAlerts(ctx, SyncRequest{})
	require.NoError(t, err)
	assert.Zero(t, result.Breaches)
	assert.Equal(t, 2, result.Recovered)
	assert.Zero(t, result.OpenStates)

	open, err := client.SLAAlertState.Query().
		Where(slaalertstate.IsOpenEQ(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, open)

	recoveries, err := client.AuditLog.Query().
		Where(auditlog.EventTypeEQ(audit.TypeSLARecovery)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, recoveries)
}

func TestSyncSLAAlerts_ThresholdEscalation(t *testing.T) {
	client, monitor := setupMonitor(t)
	ctx := context.Background()

	// 3000 minutes stale crosses the default escalation threshold (2880).
	setCheckpointAge(t, client, 3000*time.Minute)

	result, err := monitor.SyncSLAAlerts(ctx, SyncRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Breaches)
	assert.Equal(t, 1, result.Emitted)
	assert.Equal(t, 1, result.Escalated)
	assert.Equal(t, 1, result.OpenEscalated)

	state, err := client.SLAAlertState.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.EscalationLevel)
	assert.Equal(t, "escalated", string(state.Stage))
	assert.Equal(t, "critical", string(state.Severity))
	assert.NotNil(t, state.LastEscalatedAt)

	escalations, err := client.AuditLog.Query().
		Where(auditlog.EventTypeEQ(audit.TypeSLAEscalation)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, escalations)
}

func TestSyncSLAAlerts_SeverityChangeEmitsThroughCooldown(t *testing.T) {
	client, monitor := setupMonitor(t)
	ctx := context.Background()

	setCheckpointAge(t, client, 200*time.Minute)
	_, err := monitor.SyncSLAAlerts(ctx, SyncRequest{})
	require.NoError(t, err)

	// Same dedupe key, worse severity: cooldown must not suppress it.
	setCheckpointAge(t, client, 800*time.Minute)
	result, err := monitor.SyncSLAAlerts(ctx, SyncRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Emitted)

	state, err := client.SLAAlertState.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "critical", string(state.Severity))
	assert.Equal(t, 2, state.RepeatCount)
}
