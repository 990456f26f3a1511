package connector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/connectorcheckpoint"
	"github.com/quantmuse/eventcore/ent/connectorfailure"
	"github.com/quantmuse/eventcore/ent/connectorrun"
	"github.com/quantmuse/eventcore/pkg/adapters"
	"github.com/quantmuse/eventcore/pkg/matrix"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/services"
	testdb "github.com/quantmuse/eventcore/test/database"
)

type harness struct {
	client     *ent.Client
	connectors *services.ConnectorService
	events     *services.EventService
	runtime    *Runtime
	replay     *ReplayEngine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testdb.NewTestClient(t)
	sources := services.NewSourceService(db.Client, nil)
	connectors := services.NewConnectorService(db.Client, sources, nil)
	events := services.NewEventService(db.Client)

	_, err := sources.RegisterSource(context.Background(), models.RegisterSourceRequest{
		SourceName: "cninfo",
		Timezone:   "UTC",
	})
	require.NoError(t, err)

	return &harness{
		client:     db.Client,
		connectors: connectors,
		events:     events,
		runtime:    NewRuntime(db.Client, connectors, sources, events, matrix.NewEngine(db.Client), nil),
		replay:     NewReplayEngine(db.Client, connectors, sources, events, nil),
	}
}

func (h *harness) registerFileConnector(t *testing.T, name, path string) {
	t.Helper()
	_, err := h.connectors.RegisterConnector(context.Background(), models.RegisterConnectorRequest{
		ConnectorName: name,
		SourceName:    "cninfo",
		ConnectorType: adapters.TypeFile,
		Config:        map[string]interface{}{"path": path},
	})
	require.NoError(t, err)
}

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const twoGoodRecords = `[
	{"source_event_id": "ann-1", "symbol": "600519", "title": "回购股份公告", "publish_time": "2026-03-10 09:00:00"},
	{"source_event_id": "ann-2", "symbol": "000001", "title": "业绩预增公告", "publish_time": "2026-03-10 10:30:00"}
]`

func TestRun_SuccessAdvancesCheckpoint(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.registerFileConnector(t, "cninfo_daily", writeBatch(t, twoGoodRecords))

	result, err := h.runtime.Run(ctx, models.RunConnectorRequest{
		ConnectorName: "cninfo_daily",
		TriggeredBy:   "test",
	})
	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, 2, result.PulledCount)
	assert.Equal(t, 2, result.NormalizedCount)
	assert.Equal(t, 2, result.InsertedCount)
	assert.Zero(t, result.FailedCount)
	assert.Equal(t, "2026-03-10T10:30:00Z", result.CheckpointAfter)
	assert.Equal(t, "primary", result.SelectedSourceKey)

	run, err := h.client.ConnectorRun.Get(ctx, result.RunID)
	require.NoError(t, err)
	assert.Equal(t, connectorrun.StatusSuccess, run.Status)
	assert.NotNil(t, run.FinishedAt)
	assert.Equal(t, 2, run.InsertedCount)

	cp, err := h.client.ConnectorCheckpoint.Query().
		Where(connectorcheckpoint.ConnectorNameEQ("cninfo_daily")).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, cp.CheckpointCursor)
	assert.Equal(t, "2026-03-10T10:30:00Z", *cp.CheckpointCursor)
	assert.NotNil(t, cp.LastSuccessAt)

	events, err := h.events.ListEvents(ctx, models.EventFilter{SourceName: "cninfo"})
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// A second run over the same file pulls nothing past the cursor.
	result, err = h.runtime.Run(ctx, models.RunConnectorRequest{ConnectorName: "cninfo_daily"})
	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Zero(t, result.PulledCount)
	assert.Equal(t, "2026-03-10T10:30:00Z", result.CheckpointAfter)
}

func TestRun_DryRunLeavesNoTrace(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.registerFileConnector(t, "cninfo_daily", writeBatch(t, twoGoodRecords))

	result, err := h.runtime.Run(ctx, models.RunConnectorRequest{
		ConnectorName: "cninfo_daily",
		DryRun:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, "dry_run", result.Status)
	assert.Equal(t, 2, result.PulledCount)
	assert.Equal(t, 2, result.NormalizedCount)
	assert.Zero(t, result.InsertedCount)

	exists, err := h.client.ConnectorCheckpoint.Query().
		Where(connectorcheckpoint.ConnectorNameEQ("cninfo_daily")).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	events, err := h.events.ListEvents(ctx, models.EventFilter{SourceName: "cninfo"})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRun_PartialOnNormalizeFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.registerFileConnector(t, "cninfo_daily", writeBatch(t, `[
		{"source_event_id": "ann-1", "symbol": "600519", "title": "回购股份公告", "publish_time": "2026-03-10 09:00:00"},
		{"source_event_id": "ann-2", "title": "无代码公告", "publish_time": "2026-03-10 10:00:00"}
	]`))

	result, err := h.runtime.Run(ctx, models.RunConnectorRequest{ConnectorName: "cninfo_daily"})
	require.NoError(t, err)
	assert.Equal(t, "partial", result.Status)
	assert.Equal(t, 2, result.PulledCount)
	assert.Equal(t, 1, result.NormalizedCount)
	assert.Equal(t, 1, result.InsertedCount)
	assert.Equal(t, 1, result.FailedCount)

	failures, err := h.client.ConnectorFailure.Query().
		Where(connectorfailure.ConnectorNameEQ("cninfo_daily")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, connectorfailure.StatusPending, failures[0].Status)
	assert.Equal(t, "normalize", failures[0].Payload["phase"])
	assert.Equal(t, result.RunID, failures[0].RunID)

	// The good row still advanced the checkpoint past both records.
	assert.Equal(t, "2026-03-10T10:00:00Z", result.CheckpointAfter)
}

func TestRun_FetchFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.registerFileConnector(t, "cninfo_daily", filepath.Join(t.TempDir(), "absent.json"))

	result, err := h.runtime.Run(ctx, models.RunConnectorRequest{ConnectorName: "cninfo_daily"})
	require.NoError(t, err)
	assert.Equal(t, "failed", result.Status)
	assert.Contains(t, result.ErrorMessage, "all source matrix candidates failed")
	require.Len(t, result.SourceAttempts, 1)
	assert.Equal(t, "FAILED", result.SourceAttempts[0].Status)

	run, err := h.client.ConnectorRun.Get(ctx, result.RunID)
	require.NoError(t, err)
	assert.Equal(t, connectorrun.StatusFailed, run.Status)
	assert.NotNil(t, run.FinishedAt)
}

func TestRun_UnknownConnector(t *testing.T) {
	h := newHarness(t)

	_, err := h.runtime.Run(context.Background(), models.RunConnectorRequest{ConnectorName: "ghost"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestParseIndexedError(t *testing.T) {
	idx, msg := parseIndexedError("idx=3: validation error on field 'symbol': required")
	assert.Equal(t, 3, idx)
	assert.Equal(t, "validation error on field 'symbol': required", msg)

	idx, msg = parseIndexedError("plain failure")
	assert.Equal(t, -1, idx)
	assert.Equal(t, "plain failure", msg)

	idx, _ = parseIndexedError("idx=notanumber: x")
	assert.Equal(t, -1, idx)
}
