package matrix

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/sourcestate"
	"github.com/quantmuse/eventcore/pkg/adapters"
	testdb "github.com/quantmuse/eventcore/test/database"
)

func writeRows(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func createConnector(t *testing.T, client *ent.Client, name string, config map[string]interface{}) *ent.Connector {
	t.Helper()
	conn, err := client.Connector.Create().
		SetConnectorName(name).
		SetSourceName("cninfo").
		SetConnectorType(adapters.TypeFile).
		SetConfig(config).
		Save(context.Background())
	require.NoError(t, err)
	return conn
}

func TestConsumeBudget_HourlyWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		allowed, err := engine.ConsumeBudget(ctx, "c", "primary", 2, now)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := engine.ConsumeBudget(ctx, "c", "primary", 2, now)
	require.NoError(t, err)
	assert.False(t, allowed)

	// The next hour window starts a fresh counter.
	allowed, err = engine.ConsumeBudget(ctx, "c", "primary", 2, now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, allowed)

	// Zero budget means unlimited.
	for i := 0; i < 5; i++ {
		allowed, err = engine.ConsumeBudget(ctx, "c", "unmetered", 0, now)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestNextCredential_RoundRobin(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	aliases := []string{"main", "backup"}
	creds := map[string]map[string]interface{}{
		"main":   {"token": "t1"},
		"backup": {"token": "t2"},
	}

	var seen []string
	for i := 0; i < 4; i++ {
		alias, secrets, err := engine.NextCredential(ctx, "c", "primary", aliases, creds)
		require.NoError(t, err)
		seen = append(seen, alias)
		assert.Equal(t, creds[alias], secrets)
	}
	assert.Equal(t, []string{"main", "backup", "main", "backup"}, seen)

	// No aliases configured: no rotation, no secrets.
	alias, secrets, err := engine.NextCredential(ctx, "c", "other", nil, creds)
	require.NoError(t, err)
	assert.Empty(t, alias)
	assert.Nil(t, secrets)
}

func TestSyncRegistry_DisablesRemovedCandidates(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	require.NoError(t, engine.SyncRegistry(ctx, "c", []Candidate{
		{SourceKey: "k1", ConnectorType: adapters.TypeFile, Priority: 1, Enabled: true},
		{SourceKey: "k2", ConnectorType: adapters.TypeFile, Priority: 2, Enabled: true},
	}))

	// Dropping k2 from the matrix disables its row but keeps the history.
	require.NoError(t, engine.SyncRegistry(ctx, "c", []Candidate{
		{SourceKey: "k1", ConnectorType: adapters.TypeFile, Priority: 5, Enabled: true},
	}))

	states, err := client.SourceState.Query().
		Where(sourcestate.ConnectorNameEQ("c")).
		Order(ent.Asc(sourcestate.FieldSourceKey)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.True(t, states[0].Enabled)
	assert.Equal(t, 5, states[0].Priority)
	assert.False(t, states[1].Enabled)
}

func TestFetch_FailoverToHealthyCandidate(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	good := writeRows(t, "good.json",
		`[{"source_event_id": "ann-1", "symbol": "600519", "title": "回购公告", "publish_time": "2026-03-10 09:00:00"}]`)
	conn := createConnector(t, client.Client, "cninfo_daily", map[string]interface{}{
		"failover": map[string]interface{}{"enabled": true},
		"source_matrix": []interface{}{
			map[string]interface{}{
				"source_key": "primary",
				"priority":   1,
				"config":     map[string]interface{}{"path": filepath.Join(t.TempDir(), "absent.json")},
			},
			map[string]interface{}{
				"source_key": "backup",
				"priority":   2,
				"config":     map[string]interface{}{"path": good},
			},
		},
	})

	outcome, err := engine.Fetch(ctx, conn, "", 0)
	require.NoError(t, err)
	assert.Equal(t, "backup", outcome.SelectedSourceKey)
	require.Len(t, outcome.Result.Records, 1)

	require.Len(t, outcome.Attempts, 2)
	assert.Equal(t, "primary", outcome.Attempts[0].SourceKey)
	assert.Equal(t, "FAILED", outcome.Attempts[0].Status)
	assert.Equal(t, "backup", outcome.Attempts[1].SourceKey)
	assert.Equal(t, "SUCCESS", outcome.Attempts[1].Status)

	primary, err := client.SourceState.Query().
		Where(sourcestate.ConnectorNameEQ("cninfo_daily"), sourcestate.SourceKeyEQ("primary")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, primary.ConsecutiveFailures)
	assert.Less(t, primary.HealthScore, 80.0)
	assert.False(t, primary.IsActive)
	assert.NotEmpty(t, primary.LastError)

	backup, err := client.SourceState.Query().
		Where(sourcestate.ConnectorNameEQ("cninfo_daily"), sourcestate.SourceKeyEQ("backup")).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, backup.IsActive)
	assert.Greater(t, backup.HealthScore, 80.0)
	require.NotNil(t, backup.CheckpointCursor)
	assert.Equal(t, outcome.Result.NextCursor, *backup.CheckpointCursor)
}

func TestFetch_BudgetExhaustion(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	good := writeRows(t, "good.json",
		`[{"source_event_id": "ann-1", "symbol": "600519", "title": "回购公告", "publish_time": "2026-03-10 09:00:00"}]`)
	conn := createConnector(t, client.Client, "cninfo_daily", map[string]interface{}{
		"path":                    good,
		"request_budget_per_hour": 1,
	})

	outcome, err := engine.Fetch(ctx, conn, "", 0)
	require.NoError(t, err)
	assert.Equal(t, "primary", outcome.SelectedSourceKey)

	outcome, err = engine.Fetch(ctx, conn, "", 0)
	require.ErrorIs(t, err, ErrAllCandidatesFailed)
	require.Len(t, outcome.Attempts, 1)
	assert.Equal(t, "SKIPPED_BUDGET", outcome.Attempts[0].Status)
}

func TestFetch_AllCandidatesFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	ctx := context.Background()

	conn := createConnector(t, client.Client, "cninfo_daily", map[string]interface{}{
		"path": filepath.Join(t.TempDir(), "absent.json"),
	})

	outcome, err := engine.Fetch(ctx, conn, "", 0)
	require.ErrorIs(t, err, ErrAllCandidatesFailed)
	require.Len(t, outcome.Attempts, 1)
	assert.Equal(t, "FAILED", outcome.Attempts[0].Status)
	assert.NotEmpty(t, outcome.Attempts[0].Error)
}
