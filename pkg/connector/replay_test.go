package connector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/connectorfailure"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/services"
)

func seedFailure(t *testing.T, h *harness, payload models.FailurePayload, retryCount int) *ent.ConnectorFailure {
	t.Helper()
	row, err := h.client.ConnectorFailure.Create().
		SetConnectorName("cninfo_daily").
		SetSourceName("cninfo").
		SetRetryCount(retryCount).
		SetNextRetryAt(time.Now().Add(-time.Minute)).
		SetLastError(payload.Error).
		SetPayload(payloadToMap(payload)).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func goodRaw() models.RawAnnouncement {
	return models.RawAnnouncement{
		SourceEventID: "ann-9",
		Symbol:        "600519",
		Title:         "回购股份公告",
		PublishTime:   "2026-03-10 09:00:00",
	}
}

func TestReplayFailures_NormalizesRawRecord(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.registerFileConnector(t, "cninfo_daily", "unused.json")

	row := seedFailure(t, h, models.FailurePayload{
		Phase:     "normalize",
		RawRecord: ptrRaw(goodRaw()),
		Error:     "transient",
	}, 0)

	result, err := h.replay.ReplayFailures(ctx, "cninfo_daily", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Picked)
	assert.Equal(t, 1, result.Replayed)
	assert.Zero(t, result.Failed)
	assert.Equal(t, "replayed", result.Statuses[row.ID])

	reloaded, err := h.client.ConnectorFailure.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, connectorfailure.StatusReplayed, reloaded.Status)

	events, err := h.events.ListEvents(ctx, models.EventFilter{Symbol: "600519"})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestReplayFailures_BackoffAndDeath(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.registerFileConnector(t, "cninfo_daily", "unused.json")

	// An event payload that can never pass ingest validation.
	badEvent := &models.EventRow{EventID: "ann-bad", PublishTime: time.Now()}

	fresh := seedFailure(t, h, models.FailurePayload{Phase: "ingest", Event: badEvent}, 0)
	// Default max_retry is 3; this row is on its last attempt.
	exhausted := seedFailure(t, h, models.FailurePayload{Phase: "ingest", Event: badEvent}, 2)

	result, err := h.replay.ReplayFailures(ctx, "cninfo_daily", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Picked)
	assert.Zero(t, result.Replayed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Dead)
	assert.Contains(t, result.Errors[fresh.ID], "symbol")
	assert.Equal(t, "dead", result.Statuses[exhausted.ID])

	retried, err := h.client.ConnectorFailure.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, connectorfailure.StatusPending, retried.Status)
	assert.Equal(t, 1, retried.RetryCount)
	assert.True(t, retried.NextRetryAt.After(time.Now()))

	dead, err := h.client.ConnectorFailure.Get(ctx, exhausted.ID)
	require.NoError(t, err)
	assert.Equal(t, connectorfailure.StatusDead, dead.Status)
	assert.Equal(t, 3, dead.RetryCount)

	// The surviving row is backed off, so an immediate pass picks nothing.
	result, err = h.replay.ReplayFailures(ctx, "cninfo_daily", 0)
	require.NoError(t, err)
	assert.Zero(t, result.Picked)
}

func TestReplaySelectedFailures(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.registerFileConnector(t, "cninfo_daily", "unused.json")

	pending := seedFailure(t, h, models.FailurePayload{
		Phase:     "normalize",
		RawRecord: ptrRaw(goodRaw()),
	}, 0)
	replayed := seedFailure(t, h, models.FailurePayload{Phase: "normalize"}, 0)
	require.NoError(t, replayed.Update().SetStatus(connectorfailure.StatusReplayed).Exec(ctx))

	result, err := h.replay.ReplaySelectedFailures(ctx, "cninfo_daily", []int{pending.ID, replayed.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Picked)
	assert.Equal(t, 1, result.Replayed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "already replayed", result.Statuses[replayed.ID])

	_, err = h.replay.ReplaySelectedFailures(ctx, "cninfo_daily", nil)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = h.replay.ReplaySelectedFailures(ctx, "cninfo_daily", []int{999999})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRepairAndReplayFailures(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.registerFileConnector(t, "cninfo_daily", "unused.json")

	raw := goodRaw()
	raw.Symbol = ""
	broken := seedFailure(t, h, models.FailurePayload{
		Phase:     "normalize",
		RawRecord: &raw,
		Error:     "record has no symbol",
	}, 0)

	assert.ErrorIs(t, h.replay.RepairFailure(ctx, models.RepairFailureRequest{
		FailureID: broken.ID,
	}), services.ErrInvalidInput)

	result, err := h.replay.RepairAndReplayFailures(ctx, "cninfo_daily", []models.RepairFailureRequest{
		{
			FailureID:      broken.ID,
			PatchRawRecord: map[string]interface{}{"symbol": "600519"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Repaired)
	assert.Equal(t, 1, result.Replayed)
	assert.Empty(t, result.Errors)

	reloaded, err := h.client.ConnectorFailure.Get(ctx, broken.ID)
	require.NoError(t, err)
	assert.Equal(t, connectorfailure.StatusReplayed, reloaded.Status)

	events, err := h.events.ListEvents(ctx, models.EventFilter{Symbol: "600519"})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func ptrRaw(r models.RawAnnouncement) *models.RawAnnouncement { return &r }
