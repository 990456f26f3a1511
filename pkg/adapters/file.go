package adapters

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/timeutil"
)

// fileAdapter reads a JSON array or JSONL file in full on every fetch.
// Cursor filtering makes repeated pulls over the same file idempotent.
type fileAdapter struct {
	path      string
	columnMap ColumnMap
	location  string
}

var fileColumnDefaults = ColumnMap{
	"source_event_id": {"source_event_id", "event_id", "id"},
	"symbol":          {"symbol", "code"},
	"ts_code":         {"ts_code"},
	"title":           {"title"},
	"summary":         {"summary"},
	"content":         {"content", "text"},
	"publish_time":    {"publish_time", "ann_date", "date"},
	"url":             {"url", "link"},
}

func newFileAdapter(cfg Config) (*fileAdapter, error) {
	path := cfg.String("path", "")
	if path == "" {
		return nil, fmt.Errorf("file adapter requires config.path")
	}
	return &fileAdapter{
		path:      path,
		columnMap: mergeColumnMap(fileColumnDefaults, cfg),
		location:  cfg.String("timezone", ""),
	}, nil
}

// Fetch implements Fetcher.
func (a *fileAdapter) Fetch(_ context.Context, cursor string, limit int) (*FetchResult, error) {
	rows, err := readRowsFile(a.path)
	if err != nil {
		return nil, err
	}
	records := make([]models.RawAnnouncement, 0, len(rows))
	for _, row := range rows {
		records = append(records, a.columnMap.recordFromRow(row))
	}
	return finalize(records, cursor, limit, timeutil.LoadLocation(a.location)), nil
}

// readRowsFile parses a JSON list or, failing that, line-delimited JSON.
func readRowsFile(path string) ([]map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err == nil {
		return rows, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var row map[string]interface{}
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("parse line %d of %s: %w", lineNo, path, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return rows, nil
}
