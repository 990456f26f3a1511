package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedDoc = `{
	"code": 0,
	"data": {
		"items": [
			{"id": "ann-1", "code": "600519", "title": "回购股份公告", "publish_time": "2026-03-10 09:00:00"},
			{"id": "ann-2", "code": "000001", "title": "业绩预增公告", "publish_time": "2026-03-10 10:30:00"}
		]
	}
}`

func TestHTTPJSONAdapter_RequiresURL(t *testing.T) {
	_, err := New(TypeHTTPJSON, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.url")
}

func TestHTTPJSONAdapter_RejectsUnsupportedMethod(t *testing.T) {
	_, err := New(TypeHTTPJSON, Config{"url": "http://example.test", "method": "delete"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET and POST")
}

func TestHTTPJSONAdapter_GetPassesCursorAndParams(t *testing.T) {
	var gotQuery map[string]string
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		gotHeader = r.Header.Get("X-Api-Key")
		w.Write([]byte(nestedDoc))
	}))
	defer server.Close()

	adapter, err := New(TypeHTTPJSON, Config{
		"url":          server.URL,
		"records_path": "data.items",
		"cursor_param": "since",
		"params":       map[string]interface{}{"market": "sse"},
		"headers":      map[string]interface{}{"X-Api-Key": "secret"},
		"timezone":     "UTC",
	})
	require.NoError(t, err)

	got, err := adapter.Fetch(context.Background(), "2026-03-10T00:00:00Z", 50)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10T00:00:00Z", gotQuery["since"])
	assert.Equal(t, "50", gotQuery["limit"])
	assert.Equal(t, "sse", gotQuery["market"])
	assert.Equal(t, "secret", gotHeader)

	require.Len(t, got.Records, 2)
	assert.Equal(t, "ann-1", got.Records[0].SourceEventID)
	assert.Equal(t, "600519", got.Records[0].Symbol)
	assert.Equal(t, "2026-03-10T10:30:00Z", got.NextCursor)
}

func TestHTTPJSONAdapter_PostSendsJSONBody(t *testing.T) {
	var gotBody map[string]interface{}
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(nestedDoc))
	}))
	defer server.Close()

	adapter, err := New(TypeHTTPJSON, Config{
		"url":          server.URL,
		"method":       "POST",
		"records_path": "data.items",
		"params":       map[string]interface{}{"api_name": "anns"},
		"timezone":     "UTC",
	})
	require.NoError(t, err)

	_, err = adapter.Fetch(context.Background(), "2026-03-09T00:00:00Z", 20)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "anns", gotBody["api_name"])
	assert.Equal(t, "2026-03-09T00:00:00Z", gotBody["cursor"])
	assert.Equal(t, float64(20), gotBody["limit"])
}

func TestHTTPJSONAdapter_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	adapter, err := New(TypeHTTPJSON, Config{"url": server.URL})
	require.NoError(t, err)

	_, err = adapter.Fetch(context.Background(), "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream returned HTTP 502")
}

func TestHTTPJSONAdapter_FixtureURL(t *testing.T) {
	path := writeFixture(t, "fixture.json", nestedDoc)

	adapter, err := New(TypeHTTPJSON, Config{
		"url":          "file://" + path,
		"records_path": "data.items",
		"timezone":     "UTC",
	})
	require.NoError(t, err)

	got, err := adapter.Fetch(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "业绩预增公告", got.Records[1].Title)
}

func TestExtractRecords(t *testing.T) {
	var doc interface{}
	require.NoError(t, json.Unmarshal([]byte(nestedDoc), &doc))

	rows, err := extractRecords(doc, "data.items")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = extractRecords(doc, "data.absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "absent" missing`)

	_, err = extractRecords(doc, "code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not resolve to a list")

	_, err = extractRecords([]interface{}{"scalar"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 0 is not an object")
}
