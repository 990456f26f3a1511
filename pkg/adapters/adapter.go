// Package adapters implements the pluggable fetchers that pull raw
// announcement batches from upstream providers. Adapters are read-only:
// they never mutate external state, and they return batches ordered by
// publish time ascending with records at or before the cursor dropped.
package adapters

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/timeutil"
)

// Connector types with a registered adapter.
const (
	TypeFile     = "file"
	TypeHTTPJSON = "http_json"
	TypeTushare  = "tushare_announcement"
	TypeAkshare  = "akshare_announcement"
)

// Timeout bounds for network adapters.
const (
	DefaultTimeout = 10 * time.Second
	MaxTimeout     = 60 * time.Second
)

// DefaultLookbackDays bounds the initial full pull when no cursor exists.
const DefaultLookbackDays = 7

// FetchResult is one adapter batch.
type FetchResult struct {
	Records               []models.RawAnnouncement
	NextCursor            string
	CheckpointPublishTime *time.Time
}

// Fetcher pulls one batch given the connector's cursor and limit.
// cursor == "" means initial full pull bounded by the adapter's lookback.
type Fetcher interface {
	Fetch(ctx context.Context, cursor string, limit int) (*FetchResult, error)
}

// New builds the adapter for a connector type. cfg is the merged source
// config including any rotated credentials.
func New(connectorType string, cfg Config) (Fetcher, error) {
	switch connectorType {
	case TypeFile:
		return newFileAdapter(cfg)
	case TypeHTTPJSON:
		return newHTTPJSONAdapter(cfg)
	case TypeTushare:
		return newTushareAdapter(cfg)
	case TypeAkshare:
		return newAkshareAdapter(cfg)
	default:
		return nil, fmt.Errorf("unknown connector type %q", connectorType)
	}
}

// httpClient builds a client honoring the config timeout bounds.
func httpClient(cfg Config) *http.Client {
	timeout := cfg.Duration("timeout_seconds", DefaultTimeout)
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}
	return &http.Client{Timeout: timeout}
}

// finalize sorts records ascending by publish time, drops records at or
// before the cursor, truncates at limit, and derives the next cursor from
// the latest publish time observed. Records whose publish time cannot be
// parsed keep their input order at the tail so normalization can surface
// them as failures instead of losing them silently.
func finalize(records []models.RawAnnouncement, cursor string, limit int, loc *time.Location) *FetchResult {
	type timed struct {
		record models.RawAnnouncement
		at     time.Time
		ok     bool
	}

	var cursorTime time.Time
	hasCursor := false
	if cursor != "" {
		if t, err := timeutil.ParsePublishTime(cursor, time.UTC); err == nil {
			cursorTime = t
			hasCursor = true
		}
	}

	parsed := make([]timed, 0, len(records))
	for _, r := range records {
		t, err := timeutil.ParsePublishTime(r.PublishTime, loc)
		entry := timed{record: r, at: t, ok: err == nil}
		if entry.ok && hasCursor && !entry.at.After(cursorTime) {
			continue
		}
		parsed = append(parsed, entry)
	}
	sort.SliceStable(parsed, func(i, j int) bool {
		if parsed[i].ok != parsed[j].ok {
			return parsed[i].ok
		}
		return parsed[i].at.Before(parsed[j].at)
	})
	if limit > 0 && len(parsed) > limit {
		parsed = parsed[:limit]
	}

	result := &FetchResult{Records: make([]models.RawAnnouncement, 0, len(parsed))}
	var latest time.Time
	for _, entry := range parsed {
		result.Records = append(result.Records, entry.record)
		if entry.ok && entry.at.After(latest) {
			latest = entry.at
		}
	}
	if !latest.IsZero() {
		result.NextCursor = latest.UTC().Format(time.RFC3339)
		latestCopy := latest
		result.CheckpointPublishTime = &latestCopy
	} else if hasCursor {
		result.NextCursor = cursor
	}
	return result
}
