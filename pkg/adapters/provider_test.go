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

func TestTushareAdapter_RequiresToken(t *testing.T) {
	_, err := New(TypeTushare, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token credential")
}

func TestTushareAdapter_FieldItemRows(t *testing.T) {
	var gotReq tushareRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{
			"code": 0,
			"data": {
				"fields": ["ts_code", "ann_date", "title", "url"],
				"items": [
					["600519.SH", "20260311", "回购进展公告", "https://example.test/2"],
					["000001.SZ", "20260310", "业绩预增公告", "https://example.test/1"]
				]
			}
		}`))
	}))
	defer server.Close()

	adapter, err := New(TypeTushare, Config{
		"api_url": server.URL,
		"token":   "tk-1",
		"ts_code": "600519.SH",
	})
	require.NoError(t, err)

	got, err := adapter.Fetch(context.Background(), "", 0)
	require.NoError(t, err)

	assert.Equal(t, "anns_d", gotReq.APIName)
	assert.Equal(t, "tk-1", gotReq.Token)
	assert.Equal(t, "600519.SH", gotReq.Params["ts_code"])
	assert.NotEmpty(t, gotReq.Params["start_date"])
	assert.NotEmpty(t, gotReq.Params["end_date"])

	require.Len(t, got.Records, 2)
	// Positional frame rows come back sorted by publish time.
	assert.Equal(t, "000001.SZ", got.Records[0].TSCode)
	assert.Equal(t, "20260310", got.Records[0].PublishTime)
	assert.Equal(t, "600519.SH", got.Records[1].TSCode)
	assert.Equal(t, "2026-03-10T16:00:00Z", got.NextCursor)
}

func TestTushareAdapter_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"code": 40001, "msg": "token invalid"}`))
	}))
	defer server.Close()

	adapter, err := New(TypeTushare, Config{"api_url": server.URL, "token": "bad"})
	require.NoError(t, err)

	_, err = adapter.Fetch(context.Background(), "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token invalid")
}

func TestAkshareAdapter_RequiresBaseURL(t *testing.T) {
	_, err := New(TypeAkshare, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.base_url")
}

func TestAkshareAdapter_CandidateFallback(t *testing.T) {
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		switch r.URL.Path {
		case "/api/public/stock_notice_report":
			http.Error(w, "not supported", http.StatusNotFound)
		case "/api/public/stock_zh_a_alerts_cls":
			assert.Equal(t, "20260310", r.URL.Query().Get("date"))
			w.Write([]byte(`[
				{"代码": "600519", "公告标题": "回购股份公告", "公告日期": "2026-03-10", "公告链接": "https://example.test/1"}
			]`))
		default:
			http.Error(w, "unknown", http.StatusNotFound)
		}
	}))
	defer server.Close()

	adapter, err := New(TypeAkshare, Config{
		"base_url":         server.URL,
		"api_candidates":   []interface{}{"stock_notice_report", "stock_zh_a_alerts_cls"},
		"request_variants": []interface{}{map[string]interface{}{"date": "20260310"}},
	})
	require.NoError(t, err)

	got, err := adapter.Fetch(context.Background(), "", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/api/public/stock_notice_report",
		"/api/public/stock_zh_a_alerts_cls",
	}, calls)

	require.Len(t, got.Records, 1)
	// Chinese frame labels resolve through the default column map.
	assert.Equal(t, "600519", got.Records[0].Symbol)
	assert.Equal(t, "回购股份公告", got.Records[0].Title)
	assert.Equal(t, "2026-03-10", got.Records[0].PublishTime)
}

func TestAkshareAdapter_AllCandidatesFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter, err := New(TypeAkshare, Config{"base_url": server.URL})
	require.NoError(t, err)

	_, err = adapter.Fetch(context.Background(), "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all akshare api candidates failed")
}

func TestAkshareAdapter_EmptyFramesYieldEmptyBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	adapter, err := New(TypeAkshare, Config{"base_url": server.URL})
	require.NoError(t, err)

	got, err := adapter.Fetch(context.Background(), "prev-cursor", 0)
	require.NoError(t, err)
	assert.Empty(t, got.Records)
}
