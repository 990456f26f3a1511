package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileAdapter_RequiresPath(t *testing.T) {
	_, err := New(TypeFile, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.path")
}

func TestFileAdapter_JSONArrayWithColumnAlternates(t *testing.T) {
	path := writeFixture(t, "announcements.json", `[
		{"id": "ann-2", "code": "000001", "title": "业绩预增公告", "ann_date": "20260311", "link": "https://example.test/2", "exchange": "szse"},
		{"id": "ann-1", "code": "600519", "title": "回购股份公告", "ann_date": "20260310", "link": "https://example.test/1"}
	]`)

	adapter, err := New(TypeFile, Config{"path": path})
	require.NoError(t, err)

	got, err := adapter.Fetch(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, got.Records, 2)

	first := got.Records[0]
	assert.Equal(t, "ann-1", first.SourceEventID)
	assert.Equal(t, "600519", first.Symbol)
	assert.Equal(t, "回购股份公告", first.Title)
	assert.Equal(t, "20260310", first.PublishTime)
	assert.Equal(t, "https://example.test/1", first.URL)

	// Unmapped provider columns survive in metadata.
	assert.Equal(t, "szse", got.Records[1].Metadata["exchange"])

	// Compact dates resolve in Asia/Shanghai by default.
	assert.Equal(t, "2026-03-10T16:00:00Z", got.NextCursor)
}

func TestFileAdapter_JSONLAndCursorIdempotency(t *testing.T) {
	path := writeFixture(t, "announcements.jsonl",
		`{"source_event_id": "ann-1", "symbol": "600519", "title": "t1", "publish_time": "2026-03-10 09:00:00"}

{"source_event_id": "ann-2", "symbol": "600519", "title": "t2", "publish_time": "2026-03-10 10:00:00"}
`)

	adapter, err := New(TypeFile, Config{"path": path, "timezone": "UTC"})
	require.NoError(t, err)

	first, err := adapter.Fetch(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, first.Records, 2)
	assert.Equal(t, "2026-03-10T10:00:00Z", first.NextCursor)

	// Re-pulling the same file from the derived cursor yields nothing new.
	second, err := adapter.Fetch(context.Background(), first.NextCursor, 0)
	require.NoError(t, err)
	assert.Empty(t, second.Records)
	assert.Equal(t, first.NextCursor, second.NextCursor)
}

func TestFileAdapter_ColumnMapOverride(t *testing.T) {
	path := writeFixture(t, "rows.json",
		`[{"source_event_id": "ann-1", "headline": "重大合同中标", "title": "ignored", "publish_time": "2026-03-10 09:00:00"}]`)

	adapter, err := New(TypeFile, Config{
		"path":       path,
		"column_map": map[string]interface{}{"title": []interface{}{"headline"}},
	})
	require.NoError(t, err)

	got, err := adapter.Fetch(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, got.Records, 1)
	// The override replaces the default candidate list wholesale.
	assert.Equal(t, "重大合同中标", got.Records[0].Title)
	assert.Equal(t, "ignored", got.Records[0].Metadata["title"])
}

func TestFileAdapter_MalformedLine(t *testing.T) {
	path := writeFixture(t, "bad.jsonl",
		`{"source_event_id": "ann-1", "publish_time": "2026-03-10 09:00:00"}
{not json`)

	adapter, err := New(TypeFile, Config{"path": path})
	require.NoError(t, err)

	_, err = adapter.Fetch(context.Background(), "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse line 2")
}

func TestFileAdapter_MissingFile(t *testing.T) {
	adapter, err := New(TypeFile, Config{"path": filepath.Join(t.TempDir(), "absent.json")})
	require.NoError(t, err)

	_, err = adapter.Fetch(context.Background(), "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read source file")
}
