package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/ent/auditlog"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/models"
	testdb "github.com/quantmuse/eventcore/test/database"
)

func TestRegisterSource_CreateThenUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSourceService(client.Client, audit.NewService(client.Client))
	ctx := context.Background()

	id, err := svc.RegisterSource(ctx, models.RegisterSourceRequest{
		SourceName:       "cninfo",
		Provider:         "akshare",
		Timezone:         "Asia/Shanghai",
		ReliabilityScore: 0.9,
		CreatedBy:        "ops",
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	source, err := svc.GetSource(ctx, "cninfo")
	require.NoError(t, err)
	assert.Equal(t, "akshare", source.Provider)
	assert.Equal(t, 0.9, source.ReliabilityScore)
	// Unspecified type defaults to announcement.
	assert.Equal(t, "announcement", string(source.SourceType))

	// Re-registering the same name updates in place.
	again, err := svc.RegisterSource(ctx, models.RegisterSourceRequest{
		SourceName:       "cninfo",
		Provider:         "tushare",
		ReliabilityScore: 0.95,
	})
	require.NoError(t, err)
	assert.Equal(t, id, again)

	source, err = svc.GetSource(ctx, "cninfo")
	require.NoError(t, err)
	assert.Equal(t, "tushare", source.Provider)
	assert.Equal(t, 0.95, source.ReliabilityScore)

	trail, err := client.AuditLog.Query().
		Where(auditlog.EventTypeEQ(audit.TypeSource)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, trail)
}

func TestRegisterSource_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSourceService(client.Client, nil)
	ctx := context.Background()

	_, err := svc.RegisterSource(ctx, models.RegisterSourceRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RegisterSource(ctx, models.RegisterSourceRequest{
		SourceName: "x", SourceType: "rumor_mill",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RegisterSource(ctx, models.RegisterSourceRequest{
		SourceName: "x", ReliabilityScore: 1.5,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetSource_NotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSourceService(client.Client, nil)

	_, err := svc.GetSource(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSources_SortedByName(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSourceService(client.Client, nil)
	ctx := context.Background()

	for _, name := range []string{"sse", "cninfo", "eastmoney"} {
		_, err := svc.RegisterSource(ctx, models.RegisterSourceRequest{SourceName: name})
		require.NoError(t, err)
	}

	sources, err := svc.ListSources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, "cninfo", sources[0].SourceName)
	assert.Equal(t, "eastmoney", sources[1].SourceName)
	assert.Equal(t, "sse", sources[2].SourceName)
}
