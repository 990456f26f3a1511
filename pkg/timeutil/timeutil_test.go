package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePublishTime_Formats(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "compact date",
			input: "20260312",
			want:  time.Date(2026, 3, 11, 16, 0, 0, 0, time.UTC),
		},
		{
			name:  "dashed datetime",
			input: "2026-03-12 09:30:00",
			want:  time.Date(2026, 3, 12, 1, 30, 0, 0, time.UTC),
		},
		{
			name:  "slashed single digits",
			input: "2026/3/2 9:05",
			want:  time.Date(2026, 3, 2, 1, 5, 0, 0, time.UTC),
		},
		{
			name:  "iso with offset keeps it",
			input: "2026-03-12T09:30:00+08:00",
			want:  time.Date(2026, 3, 12, 1, 30, 0, 0, time.UTC),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePublishTime(tc.input, shanghai)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParsePublishTime_Errors(t *testing.T) {
	_, err := ParsePublishTime("", time.UTC)
	require.Error(t, err)

	_, err = ParsePublishTime("not a date", time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a date")
}

func TestParsePublishTime_NilLocationDefaultsUTC(t *testing.T) {
	got, err := ParsePublishTime("2026-01-05", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, "Asia/Shanghai", LoadLocation("").String())
	assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
	assert.Equal(t, "America/New_York", LoadLocation("America/New_York").String())
}

func TestDayBounds(t *testing.T) {
	start := time.Date(2026, 2, 1, 14, 30, 0, 0, time.UTC)
	end := time.Date(2026, 2, 3, 1, 0, 0, 0, time.UTC)

	lo, hi := DayBounds(start, end)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), lo)
	assert.Equal(t, time.Date(2026, 2, 3, 23, 59, 59, 999999000, time.UTC), hi)
}

func TestWindowLabel(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-01..2026-02-07", WindowLabel(start, end))
}

func TestHourWindow(t *testing.T) {
	ts := time.Date(2026, 8, 25, 7, 59, 59, 0, time.FixedZone("CST", 8*3600))
	// 07:59 +08:00 is 23:59 UTC the previous day.
	assert.Equal(t, "2026-08-24T23", HourWindow(ts))
}
