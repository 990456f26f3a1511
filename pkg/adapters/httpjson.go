package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/timeutil"
)

// httpJSONAdapter pulls a JSON document over HTTP and extracts records at
// a dotted path. file:// and local:// URLs serve offline fixtures.
type httpJSONAdapter struct {
	url         string
	method      string
	recordsPath string
	headers     map[string]string
	cursorParam string
	limitParam  string
	params      map[string]interface{}
	columnMap   ColumnMap
	location    string
	client      *http.Client
}

func newHTTPJSONAdapter(cfg Config) (*httpJSONAdapter, error) {
	endpoint := cfg.String("url", "")
	if endpoint == "" {
		return nil, fmt.Errorf("http_json adapter requires config.url")
	}
	method := strings.ToUpper(cfg.String("method", http.MethodGet))
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("http_json adapter supports GET and POST, got %s", method)
	}
	headers := map[string]string{}
	for k, v := range cfg.Map("headers") {
		headers[k] = scalarString(v)
	}
	return &httpJSONAdapter{
		url:         endpoint,
		method:      method,
		recordsPath: cfg.String("records_path", ""),
		headers:     headers,
		cursorParam: cfg.String("cursor_param", "cursor"),
		limitParam:  cfg.String("limit_param", "limit"),
		params:      cfg.Map("params"),
		columnMap:   mergeColumnMap(fileColumnDefaults, cfg),
		location:    cfg.String("timezone", ""),
		client:      httpClient(cfg),
	}, nil
}

// Fetch implements Fetcher.
func (a *httpJSONAdapter) Fetch(ctx context.Context, cursor string, limit int) (*FetchResult, error) {
	doc, err := a.fetchDocument(ctx, cursor, limit)
	if err != nil {
		return nil, err
	}
	rows, err := extractRecords(doc, a.recordsPath)
	if err != nil {
		return nil, err
	}
	records := make([]models.RawAnnouncement, 0, len(rows))
	for _, row := range rows {
		records = append(records, a.columnMap.recordFromRow(row))
	}
	return finalize(records, cursor, limit, timeutil.LoadLocation(a.location)), nil
}

func (a *httpJSONAdapter) fetchDocument(ctx context.Context, cursor string, limit int) (interface{}, error) {
	// Offline fixtures bypass the network entirely.
	if path, ok := fixturePath(a.url); ok {
		data, err := readFixture(path)
		if err != nil {
			return nil, err
		}
		var doc interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse fixture %s: %w", path, err)
		}
		return doc, nil
	}

	var req *http.Request
	var err error
	if a.method == http.MethodPost {
		body := map[string]interface{}{}
		for k, v := range a.params {
			body[k] = v
		}
		if cursor != "" {
			body[a.cursorParam] = cursor
		}
		if limit > 0 {
			body[a.limitParam] = limit
		}
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, fmt.Errorf("marshal request body: %w", marshalErr)
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(payload))
		if req != nil {
			req.Header.Set("Content-Type", "application/json")
		}
	} else {
		endpoint, parseErr := url.Parse(a.url)
		if parseErr != nil {
			return nil, fmt.Errorf("parse url: %w", parseErr)
		}
		q := endpoint.Query()
		for k, v := range a.params {
			q.Set(k, scalarString(v))
		}
		if cursor != "" {
			q.Set(a.cursorParam, cursor)
		}
		if limit > 0 {
			q.Set(a.limitParam, strconv.Itoa(limit))
		}
		endpoint.RawQuery = q.Encode()
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range a.headers {
		req.Header.Set(k, v)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", a.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned HTTP %d for %s", resp.StatusCode, a.url)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse response from %s: %w", a.url, err)
	}
	return doc, nil
}

// fixturePath recognizes file:// and local:// URLs.
func fixturePath(raw string) (string, bool) {
	switch {
	case strings.HasPrefix(raw, "file://"):
		return strings.TrimPrefix(raw, "file://"), true
	case strings.HasPrefix(raw, "local://"):
		return strings.TrimPrefix(raw, "local://"), true
	}
	return "", false
}

func readFixture(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return data, nil
}

// extractRecords walks a dotted path into the document and returns the
// record list found there. An empty path expects the document itself to
// be the list.
func extractRecords(doc interface{}, recordsPath string) ([]map[string]interface{}, error) {
	node := doc
	if recordsPath != "" {
		for _, part := range strings.Split(recordsPath, ".") {
			obj, ok := node.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("records_path %q: %q is not an object", recordsPath, part)
			}
			node, ok = obj[part]
			if !ok {
				return nil, fmt.Errorf("records_path %q: key %q missing", recordsPath, part)
			}
		}
	}
	list, ok := node.([]interface{})
	if !ok {
		return nil, fmt.Errorf("records_path %q does not resolve to a list", recordsPath)
	}
	rows := make([]map[string]interface{}, 0, len(list))
	for i, item := range list {
		row, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("record %d is not an object", i)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
