package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/timeutil"
)

// akshareAdapter pulls announcement frames from an aktools-style HTTP
// bridge. It walks api_candidates in order, and for each api iterates
// request_variants until one returns a non-empty frame. Frames arrive
// with Chinese column labels, resolved through the configurable column
// map.
type akshareAdapter struct {
	baseURL         string
	apiCandidates   []string
	requestVariants []map[string]interface{}
	columnMap       ColumnMap
	location        string
	client          *http.Client
}

var akshareColumnDefaults = ColumnMap{
	"symbol":       {"代码", "股票代码", "证券代码", "symbol"},
	"title":        {"公告标题", "标题", "title"},
	"summary":      {"公告类型", "类型", "summary"},
	"publish_time": {"公告日期", "发布时间", "日期", "publish_time"},
	"url":          {"公告链接", "网址", "链接", "url"},
}

func newAkshareAdapter(cfg Config) (*akshareAdapter, error) {
	baseURL := cfg.String("base_url", "")
	if baseURL == "" {
		return nil, fmt.Errorf("akshare adapter requires config.base_url")
	}
	candidates := cfg.StringSlice("api_candidates")
	if len(candidates) == 0 {
		candidates = []string{"stock_notice_report"}
	}
	variants := cfg.MapSlice("request_variants")
	if len(variants) == 0 {
		variants = []map[string]interface{}{{}}
	}
	return &akshareAdapter{
		baseURL:         baseURL,
		apiCandidates:   candidates,
		requestVariants: variants,
		columnMap:       mergeColumnMap(akshareColumnDefaults, cfg),
		location:        cfg.String("timezone", ""),
		client:          httpClient(cfg),
	}, nil
}

// Fetch implements Fetcher.
func (a *akshareAdapter) Fetch(ctx context.Context, cursor string, limit int) (*FetchResult, error) {
	var lastErr error
	for _, apiName := range a.apiCandidates {
		for _, variant := range a.requestVariants {
			rows, err := a.callAPI(ctx, apiName, variant)
			if err != nil {
				lastErr = err
				slog.Debug("akshare candidate failed",
					"api", apiName, "error", err)
				continue
			}
			if len(rows) == 0 {
				continue
			}
			records := make([]models.RawAnnouncement, 0, len(rows))
			for _, row := range rows {
				records = append(records, a.columnMap.recordFromRow(row))
			}
			return finalize(records, cursor, limit, timeutil.LoadLocation(a.location)), nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("all akshare api candidates failed: %w", lastErr)
	}
	return finalize(nil, cursor, limit, timeutil.LoadLocation(a.location)), nil
}

func (a *akshareAdapter) callAPI(ctx context.Context, apiName string, variant map[string]interface{}) ([]map[string]interface{}, error) {
	endpoint, err := url.Parse(fmt.Sprintf("%s/api/public/%s", a.baseURL, apiName))
	if err != nil {
		return nil, fmt.Errorf("parse akshare url: %w", err)
	}
	q := endpoint.Query()
	for k, v := range variant {
		q.Set(k, scalarString(v))
	}
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call akshare %s: %w", apiName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("akshare %s returned HTTP %d", apiName, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read akshare response: %w", err)
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("parse akshare %s frame: %w", apiName, err)
	}
	return rows, nil
}
