// Package timeutil parses the publish-time formats A-share providers emit
// and expands local calendar dates into UTC window bounds.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// layouts accepted for provider publish times, tried in order.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006/1/2",
	"20060102",
}

// ParsePublishTime parses a provider timestamp string in the given location
// and returns it in UTC. Accepted forms: YYYYMMDD, YYYY-MM-DD[ HH:MM[:SS]],
// YYYY/M/D[ HH:MM[:SS]] and ISO-8601. Values carrying their own offset keep it.
func ParsePublishTime(value string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty publish time")
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range layouts {
		var (
			t   time.Time
			err error
		)
		if strings.Contains(layout, "Z07:00") {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, loc)
		}
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable publish time %q", value)
}

// LoadLocation resolves a source timezone name, defaulting to
// Asia/Shanghai on empty and UTC on failure.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = "Asia/Shanghai"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DayBounds expands a local calendar date pair to UTC window bounds:
// [start 00:00:00, end 23:59:59.999999].
func DayBounds(start, end time.Time) (time.Time, time.Time) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999000, time.UTC)
	return s, e
}

// WindowLabel renders a window as "YYYY-MM-DD..YYYY-MM-DD".
func WindowLabel(start, end time.Time) string {
	return start.Format("2006-01-02") + ".." + end.Format("2006-01-02")
}

// HourWindow returns the UTC hour bucket key for t, e.g. "2026-08-25T07".
func HourWindow(t time.Time) string {
	return t.UTC().Format("2006-01-02T15")
}
