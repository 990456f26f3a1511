package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/pkg/models"
)

func newTestStandardizer(t *testing.T) *Standardizer {
	t.Helper()
	return NewStandardizer(nil, "cninfo", 0.9, "Asia/Shanghai", "")
}

func TestNormalize_Deterministic(t *testing.T) {
	s := newTestStandardizer(t)
	raw := models.RawAnnouncement{
		SourceEventID: "ann-1",
		Symbol:        "600519.SH",
		Title:         "关于回购股份的公告",
		PublishTime:   "2026-03-12 09:30:00",
	}

	first, firstScore, warning, err := s.Normalize(raw)
	require.NoError(t, err)
	assert.Empty(t, warning)

	second, secondScore, _, err := s.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, firstScore, secondScore)

	assert.Equal(t, "ann-1", first.EventID)
	assert.Equal(t, "share_buyback", first.EventType)
	assert.Equal(t, PolarityPositive, first.Polarity)
	assert.Equal(t, time.Date(2026, 3, 12, 1, 30, 0, 0, time.UTC), first.PublishTime)
	// weight 0.6 scaled by reliability 0.9
	assert.InDelta(t, 0.54, first.Score, 1e-9)
	assert.Equal(t, BuiltinVersion, firstScore.RulesetVersion)
	assert.Equal(t, "builtin-v1", first.Metadata["nlp_ruleset_version"])
}

func TestNormalize_SyntheticEventID(t *testing.T) {
	s := newTestStandardizer(t)
	raw := models.RawAnnouncement{
		Symbol:      "000001.SZ",
		Title:       "无编号公告",
		PublishTime: "2026-03-12",
		URL:         "http://example.test/a/1",
	}

	row, _, _, err := s.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, SyntheticEventID("cninfo", raw.PublishTime, raw.Title, raw.URL), row.EventID)
	assert.Equal(t, true, row.Metadata["synthetic_event_id"])

	// Stable across calls, distinct across titles.
	other := raw
	other.Title = "另一份公告"
	otherRow, _, _, err := s.Normalize(other)
	require.NoError(t, err)
	assert.NotEqual(t, row.EventID, otherRow.EventID)
}

func TestNormalize_NoRuleHit(t *testing.T) {
	s := newTestStandardizer(t)
	row, score, warning, err := s.Normalize(models.RawAnnouncement{
		SourceEventID: "ann-2",
		Symbol:        "600000.SH",
		Title:         "日常关联交易公告",
		PublishTime:   "2026-03-12",
	})
	require.NoError(t, err)
	assert.Equal(t, GenericEventType, row.EventType)
	assert.Equal(t, PolarityNeutral, row.Polarity)
	assert.Zero(t, score.Score)
	assert.Contains(t, warning, "no ruleset rule matched")
}

func TestNormalize_ScoreSaturation(t *testing.T) {
	// Two hits with weights w1, w2 combine as 1-(1-w1)(1-w2), never past 1.
	s := NewStandardizer(nil, "src", 1.0, "", "")
	row, _, _, err := s.Normalize(models.RawAnnouncement{
		SourceEventID: "ann-3",
		Symbol:        "600000.SH",
		Title:         "业绩预增公告：拟增持股份",
		PublishTime:   "2026-03-12",
	})
	require.NoError(t, err)
	// earnings-preannounce-up (0.75) + holder-increase (0.55)
	assert.InDelta(t, 1-(1-0.75)*(1-0.55), row.Score, 1e-9)
	assert.LessOrEqual(t, row.Score, 1.0)
}

func TestNormalize_Failures(t *testing.T) {
	s := newTestStandardizer(t)

	_, _, _, err := s.Normalize(models.RawAnnouncement{Symbol: "600000.SH", PublishTime: "2026-03-12"})
	require.ErrorContains(t, err, "none of title, summary, content")

	_, _, _, err = s.Normalize(models.RawAnnouncement{Title: "公告", PublishTime: "2026-03-12"})
	require.ErrorContains(t, err, "no symbol")

	_, _, _, err = s.Normalize(models.RawAnnouncement{Title: "公告", Symbol: "600000.SH"})
	require.ErrorContains(t, err, "no parseable publish time")
}

func TestNormalize_DefaultSymbolAndMetadataDate(t *testing.T) {
	s := NewStandardizer(nil, "src", 1.0, "", "000002.SZ")
	row, _, _, err := s.Normalize(models.RawAnnouncement{
		SourceEventID: "ann-4",
		Title:         "停牌公告",
		Metadata:      map[string]interface{}{"ann_date": "20260310"},
	})
	require.NoError(t, err)
	assert.Equal(t, "000002.SZ", row.Symbol)
	// 2026-03-10 00:00 Asia/Shanghai == 2026-03-09 16:00 UTC
	assert.Equal(t, time.Date(2026, 3, 9, 16, 0, 0, 0, time.UTC), row.PublishTime)
}

func TestNormalize_SummaryTruncatedFromContent(t *testing.T) {
	s := newTestStandardizer(t)
	long := make([]rune, 600)
	for i := range long {
		long[i] = '测'
	}
	row, _, _, err := s.Normalize(models.RawAnnouncement{
		SourceEventID: "ann-5",
		Symbol:        "600000.SH",
		Title:         "公告",
		Content:       string(long),
		PublishTime:   "2026-03-12",
	})
	require.NoError(t, err)
	assert.Len(t, []rune(row.Summary), 500)
}
