package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/pkg/models"
)

func rec(id, publishTime string) models.RawAnnouncement {
	return models.RawAnnouncement{
		SourceEventID: id,
		Symbol:        "600519",
		Title:         "回购公告",
		PublishTime:   publishTime,
	}
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New("carrier_pigeon", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown connector type")
}

func TestFinalize_SortsAndDerivesCursor(t *testing.T) {
	records := []models.RawAnnouncement{
		rec("c", "2026-03-10 11:00:00"),
		rec("a", "2026-03-10 09:00:00"),
		rec("b", "2026-03-10 10:00:00"),
	}

	got := finalize(records, "", 0, time.UTC)
	require.Len(t, got.Records, 3)
	assert.Equal(t, "a", got.Records[0].SourceEventID)
	assert.Equal(t, "b", got.Records[1].SourceEventID)
	assert.Equal(t, "c", got.Records[2].SourceEventID)
	assert.Equal(t, "2026-03-10T11:00:00Z", got.NextCursor)
	require.NotNil(t, got.CheckpointPublishTime)
	assert.Equal(t, time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC), got.CheckpointPublishTime.UTC())
}

func TestFinalize_CursorDropsAtOrBefore(t *testing.T) {
	records := []models.RawAnnouncement{
		rec("a", "2026-03-10 09:00:00"),
		rec("b", "2026-03-10 10:00:00"), // exactly at cursor: dropped
		rec("c", "2026-03-10 11:00:00"),
	}

	got := finalize(records, "2026-03-10T10:00:00Z", 0, time.UTC)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "c", got.Records[0].SourceEventID)
	assert.Equal(t, "2026-03-10T11:00:00Z", got.NextCursor)
}

func TestFinalize_LimitTruncatesAfterSort(t *testing.T) {
	records := []models.RawAnnouncement{
		rec("c", "2026-03-10 11:00:00"),
		rec("a", "2026-03-10 09:00:00"),
		rec("b", "2026-03-10 10:00:00"),
	}

	got := finalize(records, "", 2, time.UTC)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "a", got.Records[0].SourceEventID)
	assert.Equal(t, "b", got.Records[1].SourceEventID)
	// The cursor advances only to the last returned record.
	assert.Equal(t, "2026-03-10T10:00:00Z", got.NextCursor)
}

func TestFinalize_UnparseableKeptAtTail(t *testing.T) {
	records := []models.RawAnnouncement{
		rec("bad", "someday soon"),
		rec("good", "2026-03-10 09:00:00"),
	}

	got := finalize(records, "", 0, time.UTC)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "good", got.Records[0].SourceEventID)
	assert.Equal(t, "bad", got.Records[1].SourceEventID)
	assert.Equal(t, "2026-03-10T09:00:00Z", got.NextCursor)
}

func TestFinalize_EmptyBatchKeepsCursor(t *testing.T) {
	records := []models.RawAnnouncement{
		rec("old", "2026-03-09 09:00:00"),
	}

	got := finalize(records, "2026-03-10T10:00:00Z", 0, time.UTC)
	assert.Empty(t, got.Records)
	assert.Equal(t, "2026-03-10T10:00:00Z", got.NextCursor)
	assert.Nil(t, got.CheckpointPublishTime)
}

func TestConfigAccessors(t *testing.T) {
	cfg := Config{
		"name":    "cninfo",
		"count":   float64(7),
		"seconds": 90,
		"tags":    []interface{}{"a", "b", 3},
		"scalar":  "solo",
		"nested":  map[string]interface{}{"k": "v"},
	}

	assert.Equal(t, "cninfo", cfg.String("name", "x"))
	assert.Equal(t, "x", cfg.String("missing", "x"))
	assert.Equal(t, 7, cfg.Int("count", 0))
	assert.Equal(t, 0, cfg.Int("name", 0))
	assert.Equal(t, 90*time.Second, cfg.Duration("seconds", time.Second))
	assert.Equal(t, time.Second, cfg.Duration("missing", time.Second))
	assert.Equal(t, []string{"a", "b"}, cfg.StringSlice("tags"))
	assert.Equal(t, []string{"solo"}, cfg.StringSlice("scalar"))
	assert.Equal(t, "v", cfg.Map("nested")["k"])
	assert.Nil(t, cfg.Map("name"))
}

func TestHTTPClient_TimeoutBounds(t *testing.T) {
	assert.Equal(t, DefaultTimeout, httpClient(Config{}).Timeout)
	assert.Equal(t, 30*time.Second, httpClient(Config{"timeout_seconds": 30}).Timeout)
	assert.Equal(t, MaxTimeout, httpClient(Config{"timeout_seconds": 600}).Timeout)
}
