package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/timeutil"
)

// tushareAdapter calls the tushare pro HTTP API. The api name defaults to
// anns_d (daily announcement list); the date window runs from the cursor
// minus lookback_days through today.
type tushareAdapter struct {
	apiURL       string
	apiName      string
	token        string
	tsCode       string
	fields       string
	lookbackDays int
	columnMap    ColumnMap
	location     string
	client       *http.Client
}

var tushareColumnDefaults = ColumnMap{
	"ts_code":      {"ts_code"},
	"symbol":       {"symbol"},
	"title":        {"title", "name"},
	"summary":      {"rec_time"},
	"content":      {"content"},
	"publish_time": {"ann_date", "pub_time"},
	"url":          {"url"},
}

type tushareRequest struct {
	APIName string            `json:"api_name"`
	Token   string            `json:"token"`
	Params  map[string]string `json:"params"`
	Fields  string            `json:"fields,omitempty"`
}

type tushareResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Fields []string        `json:"fields"`
		Items  [][]interface{} `json:"items"`
	} `json:"data"`
}

func newTushareAdapter(cfg Config) (*tushareAdapter, error) {
	token := cfg.String("token", "")
	if token == "" {
		return nil, fmt.Errorf("tushare adapter requires a token credential")
	}
	return &tushareAdapter{
		apiURL:       cfg.String("api_url", "http://api.tushare.pro"),
		apiName:      cfg.String("api_name", "anns_d"),
		token:        token,
		tsCode:       cfg.String("ts_code", ""),
		fields:       cfg.String("fields", ""),
		lookbackDays: cfg.Int("lookback_days", DefaultLookbackDays),
		columnMap:    mergeColumnMap(tushareColumnDefaults, cfg),
		location:     cfg.String("timezone", ""),
		client:       httpClient(cfg),
	}, nil
}

// Fetch implements Fetcher.
func (a *tushareAdapter) Fetch(ctx context.Context, cursor string, limit int) (*FetchResult, error) {
	loc := timeutil.LoadLocation(a.location)

	start := time.Now().UTC().AddDate(0, 0, -a.lookbackDays)
	if cursor != "" {
		if t, err := timeutil.ParsePublishTime(cursor, time.UTC); err == nil {
			start = t.AddDate(0, 0, -a.lookbackDays)
		}
	}

	params := map[string]string{
		"start_date": start.In(loc).Format("20060102"),
		"end_date":   time.Now().In(loc).Format("20060102"),
	}
	if a.tsCode != "" {
		params["ts_code"] = a.tsCode
	}

	payload, err := json.Marshal(tushareRequest{
		APIName: a.apiName,
		Token:   a.token,
		Params:  params,
		Fields:  a.fields,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal tushare request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call tushare %s: %w", a.apiName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tushare returned HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tushare response: %w", err)
	}

	var parsed tushareResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse tushare response: %w", err)
	}
	if parsed.Code != 0 {
		return nil, fmt.Errorf("tushare %s failed: %s", a.apiName, parsed.Msg)
	}

	records := make([]models.RawAnnouncement, 0, len(parsed.Data.Items))
	for _, item := range parsed.Data.Items {
		row := map[string]interface{}{}
		for i, field := range parsed.Data.Fields {
			if i < len(item) {
				row[field] = item[i]
			}
		}
		records = append(records, a.columnMap.recordFromRow(row))
	}
	return finalize(records, cursor, limit, loc), nil
}
