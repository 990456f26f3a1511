package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/pkg/adapters"
	"github.com/quantmuse/eventcore/pkg/models"
	testdb "github.com/quantmuse/eventcore/test/database"
)

func boolPtr(b bool) *bool { return &b }

func setupConnectorService(t *testing.T) (*ent.Client, *ConnectorService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sources := NewSourceService(client.Client, nil)
	_, err := sources.RegisterSource(context.Background(), models.RegisterSourceRequest{
		SourceName: "cninfo",
	})
	require.NoError(t, err)
	return client.Client, NewConnectorService(client.Client, sources, nil)
}

func TestRegisterConnector_CreateThenUpdate(t *testing.T) {
	_, svc := setupConnectorService(t)
	ctx := context.Background()

	id, err := svc.RegisterConnector(ctx, models.RegisterConnectorRequest{
		ConnectorName: "cninfo_daily",
		SourceName:    "cninfo",
		ConnectorType: adapters.TypeHTTPJSON,
		FetchLimit:    100,
		Config:        map[string]interface{}{"url": "http://example.test"},
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	again, err := svc.RegisterConnector(ctx, models.RegisterConnectorRequest{
		ConnectorName: "cninfo_daily",
		SourceName:    "cninfo",
		ConnectorType: adapters.TypeHTTPJSON,
		Enabled:       boolPtr(false),
		MaxRetry:      5,
	})
	require.NoError(t, err)
	assert.Equal(t, id, again)

	c, err := svc.GetConnector(ctx, "cninfo_daily")
	require.NoError(t, err)
	assert.False(t, c.Enabled)
	assert.Equal(t, 5, c.MaxRetry)
	// Config not present in the update request is preserved.
	assert.Equal(t, "http://example.test", c.Config["url"])
	assert.Equal(t, 100, c.FetchLimit)
}

func TestRegisterConnector_Validation(t *testing.T) {
	_, svc := setupConnectorService(t)
	ctx := context.Background()

	_, err := svc.RegisterConnector(ctx, models.RegisterConnectorRequest{
		SourceName: "cninfo", ConnectorType: adapters.TypeFile,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RegisterConnector(ctx, models.RegisterConnectorRequest{
		ConnectorName: "c", SourceName: "cninfo", ConnectorType: "smoke_signal",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// The referenced source must exist.
	_, err = svc.RegisterConnector(ctx, models.RegisterConnectorRequest{
		ConnectorName: "c", SourceName: "ghost", ConnectorType: adapters.TypeFile,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetEnabled(t *testing.T) {
	_, svc := setupConnectorService(t)
	ctx := context.Background()

	_, err := svc.RegisterConnector(ctx, models.RegisterConnectorRequest{
		ConnectorName: "cninfo_daily",
		SourceName:    "cninfo",
		ConnectorType: adapters.TypeFile,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetEnabled(ctx, "cninfo_daily", false))
	c, err := svc.GetConnector(ctx, "cninfo_daily")
	require.NoError(t, err)
	assert.False(t, c.Enabled)

	assert.ErrorIs(t, svc.SetEnabled(ctx, "ghost", true), ErrNotFound)
}

func TestListConnectors_EnabledOnly(t *testing.T) {
	_, svc := setupConnectorService(t)
	ctx := context.Background()

	for name, enabled := range map[string]bool{"on": true, "off": false} {
		_, err := svc.RegisterConnector(ctx, models.RegisterConnectorRequest{
			ConnectorName: name,
			SourceName:    "cninfo",
			ConnectorType: adapters.TypeFile,
			Enabled:       boolPtr(enabled),
		})
		require.NoError(t, err)
	}

	all, err := svc.ListConnectors(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	enabled, err := svc.ListConnectors(ctx, true)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "on", enabled[0].ConnectorName)
}

func TestConnectorStatus(t *testing.T) {
	client, svc := setupConnectorService(t)
	ctx := context.Background()

	_, err := svc.RegisterConnector(ctx, models.RegisterConnectorRequest{
		ConnectorName: "cninfo_daily",
		SourceName:    "cninfo",
		ConnectorType: adapters.TypeFile,
	})
	require.NoError(t, err)

	// Fresh connector: no checkpoint, no backlog.
	status, err := svc.ConnectorStatus(ctx, "cninfo_daily")
	require.NoError(t, err)
	assert.Empty(t, status.CheckpointCursor)
	assert.Nil(t, status.LastSuccessAt)
	assert.Zero(t, status.PendingFailures)
	assert.Zero(t, status.DeadFailures)

	now := time.Now()
	require.NoError(t, client.ConnectorCheckpoint.Create().
		SetConnectorName("cninfo_daily").
		SetCheckpointCursor("2026-03-10T10:00:00Z").
		SetLastRunAt(now).
		SetLastSuccessAt(now).
		Exec(ctx))
	for _, failureStatus := range []string{"pending", "pending", "dead"} {
		create := client.ConnectorFailure.Create().
			SetConnectorName("cninfo_daily").
			SetPayload(map[string]interface{}{"phase": "normalize"})
		if failureStatus == "dead" {
			create = create.SetStatus("dead")
		}
		require.NoError(t, create.Exec(ctx))
	}

	status, err = svc.ConnectorStatus(ctx, "cninfo_daily")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10T10:00:00Z", status.CheckpointCursor)
	require.NotNil(t, status.LastSuccessAt)
	assert.Equal(t, 2, status.PendingFailures)
	assert.Equal(t, 1, status.DeadFailures)

	_, err = svc.ConnectorStatus(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
