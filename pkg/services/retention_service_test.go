package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/quantmuse/eventcore/test/database"
)

func TestRetention_PrunesAgedRows(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	now := time.Now()

	svc := NewRetentionService(client.Client, DefaultRetentionPolicy())

	// Connector runs: an aged success is pruned, an aged RUNNING row and a
	// recent success survive.
	require.NoError(t, client.ConnectorRun.Create().
		SetID(uuid.NewString()).
		SetConnectorName("cninfo_daily").
		SetSourceName("cninfo").
		SetStartedAt(now.AddDate(0, 0, -40)).
		SetStatus("success").
		Exec(ctx))
	require.NoError(t, client.ConnectorRun.Create().
		SetID(uuid.NewString()).
		SetConnectorName("cninfo_daily").
		SetSourceName("cninfo").
		SetStartedAt(now.AddDate(0, 0, -40)).
		SetStatus("running").
		Exec(ctx))
	require.NoError(t, client.ConnectorRun.Create().
		SetID(uuid.NewString()).
		SetConnectorName("cninfo_daily").
		SetSourceName("cninfo").
		SetStartedAt(now.AddDate(0, 0, -1)).
		SetStatus("success").
		Exec(ctx))

	// Failures: terminal rows past the cutoff go, pending rows never do.
	require.NoError(t, client.ConnectorFailure.Create().
		SetConnectorName("cninfo_daily").
		SetStatus("dead").
		SetPayload(map[string]interface{}{"phase": "fetch"}).
		SetUpdatedAt(now.AddDate(0, 0, -120)).
		Exec(ctx))
	require.NoError(t, client.ConnectorFailure.Create().
		SetConnectorName("cninfo_daily").
		SetStatus("pending").
		SetPayload(map[string]interface{}{"phase": "fetch"}).
		SetUpdatedAt(now.AddDate(0, 0, -120)).
		Exec(ctx))

	require.NoError(t, client.SLAHistory.Create().
		SetConnectorName("cninfo_daily").
		SetBreachType("freshness").
		SetSeverity("warning").
		SetStage("warning").
		SetObservedAt(now.AddDate(0, 0, -120)).
		Exec(ctx))

	require.NoError(t, client.AuditLog.Create().
		SetEventType("event_connector").
		SetPayload(map[string]interface{}{"k": "v"}).
		SetCreatedAt(now.AddDate(0, 0, -120)).
		Exec(ctx))
	require.NoError(t, client.AuditLog.Create().
		SetEventType("event_connector").
		SetPayload(map[string]interface{}{"k": "v"}).
		Exec(ctx))

	require.NoError(t, client.NLPDriftSnapshot.Create().
		SetRulesetVersion("v1").
		SetCurrentWindow("2026-01-01..2026-01-07").
		SetBaselineWindow("2025-12-01..2025-12-31").
		SetCurrentMetrics(map[string]interface{}{}).
		SetBaselineMetrics(map[string]interface{}{}).
		SetCreatedAt(now.AddDate(0, 0, -120)).
		Exec(ctx))

	deleted := svc.Prune(ctx)
	assert.Equal(t, 1, deleted["connector_runs"])
	assert.Equal(t, 1, deleted["connector_failures"])
	assert.Equal(t, 1, deleted["sla_history"])
	assert.Equal(t, 1, deleted["audit_logs"])
	assert.Equal(t, 1, deleted["nlp_drift_snapshots"])

	runs, err := client.ConnectorRun.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, runs)

	failures, err := client.ConnectorFailure.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, failures)

	logs, err := client.AuditLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, logs)
}

func TestRetention_ZeroPolicyDisablesPruning(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.AuditLog.Create().
		SetEventType("event_connector").
		SetPayload(map[string]interface{}{"k": "v"}).
		SetCreatedAt(time.Now().AddDate(-1, 0, 0)).
		Exec(ctx))

	svc := NewRetentionService(client.Client, RetentionPolicy{})
	deleted := svc.Prune(ctx)
	assert.Empty(t, deleted)

	logs, err := client.AuditLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, logs)
}
