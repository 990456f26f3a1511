package nlp

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/timeutil"
)

// Standardizer turns raw announcement records into normalized events.
// Given the same inputs and ruleset version, output is byte-identical.
type Standardizer struct {
	ruleset       *Ruleset
	sourceName    string
	reliability   float64
	location      *time.Location
	defaultSymbol string
}

// NewStandardizer builds a standardizer for one source. A nil ruleset
// falls back to builtin-v1.
func NewStandardizer(ruleset *Ruleset, sourceName string, reliability float64, timezone, defaultSymbol string) *Standardizer {
	if ruleset == nil {
		ruleset = BuiltinRuleset()
	}
	if reliability <= 0 || reliability > 1 {
		reliability = 1
	}
	return &Standardizer{
		ruleset:       ruleset,
		sourceName:    sourceName,
		reliability:   reliability,
		location:      timeutil.LoadLocation(timezone),
		defaultSymbol: defaultSymbol,
	}
}

// RulesetVersion returns the version the standardizer scores with.
func (s *Standardizer) RulesetVersion() string {
	return s.ruleset.Version
}

// Normalize converts one raw record. The returned warning is non-empty
// when the record normalized without any rule hit.
func (s *Standardizer) Normalize(raw models.RawAnnouncement) (models.EventRow, models.NLPScoreResult, string, error) {
	text := strings.TrimSpace(strings.Join([]string{raw.Title, raw.Summary, raw.Content}, "\n"))
	if text == "" {
		return models.EventRow{}, models.NLPScoreResult{}, "", fmt.Errorf("record has none of title, summary, content")
	}

	symbol := strings.TrimSpace(raw.Symbol)
	if symbol == "" {
		symbol = strings.TrimSpace(raw.TSCode)
	}
	if symbol == "" {
		symbol = s.defaultSymbol
	}
	if symbol == "" {
		return models.EventRow{}, models.NLPScoreResult{}, "", fmt.Errorf("record has no symbol and no default_symbol is configured")
	}

	publishTime, err := s.resolvePublishTime(raw)
	if err != nil {
		return models.EventRow{}, models.NLPScoreResult{}, "", err
	}

	hits := s.ruleset.match(text)
	score := scoreOf(hits, s.reliability)
	result := models.NLPScoreResult{
		RulesetVersion: s.ruleset.Version,
		EventType:      dominantEventType(hits),
		Polarity:       aggregatePolarity(hits),
		Score:          score,
		Confidence:     confidenceOf(len(hits), len(text)),
		MatchedRules:   ruleIDs(hits),
		Tags:           ruleTags(hits),
	}

	eventID := strings.TrimSpace(raw.SourceEventID)
	metadata := map[string]interface{}{
		"nlp_ruleset_version": result.RulesetVersion,
		"matched_rules":       strings.Join(result.MatchedRules, ","),
	}
	for k, v := range raw.Metadata {
		if _, reserved := metadata[k]; !reserved {
			metadata[k] = v
		}
	}
	if eventID == "" {
		eventID = SyntheticEventID(s.sourceName, raw.PublishTime, raw.Title, raw.URL)
		metadata["synthetic_event_id"] = true
	}

	summary := raw.Summary
	if summary == "" && raw.Content != "" {
		summary = truncate(raw.Content, 500)
	}

	row := models.EventRow{
		EventID:     eventID,
		Symbol:      symbol,
		EventType:   result.EventType,
		PublishTime: publishTime,
		Polarity:    result.Polarity,
		Score:       result.Score,
		Confidence:  result.Confidence,
		Title:       raw.Title,
		Summary:     summary,
		RawRef:      raw.URL,
		Tags:        result.Tags,
		Metadata:    metadata,
	}

	var warning string
	if len(hits) == 0 {
		warning = "no ruleset rule matched; event typed as " + GenericEventType
	}
	return row, result, warning, nil
}

// resolvePublishTime parses the record's publish time, falling back to
// metadata date fields before giving up.
func (s *Standardizer) resolvePublishTime(raw models.RawAnnouncement) (time.Time, error) {
	candidates := []string{raw.PublishTime}
	for _, key := range []string{"publish_time", "ann_date", "date"} {
		if v, ok := raw.Metadata[key].(string); ok {
			candidates = append(candidates, v)
		}
	}
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if t, err := timeutil.ParsePublishTime(c, s.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("record has no parseable publish time")
}

// SyntheticEventID derives a stable id for records that lack one upstream.
func SyntheticEventID(sourceName, publishTime, title, url string) string {
	sum := sha1.Sum([]byte(publishTime + "|" + title + "|" + url))
	return sourceName + "-" + hex.EncodeToString(sum[:])[:16]
}

// dominantEventType picks the matched type with the highest total weight.
// Ties resolve to the type seen first in ruleset order.
func dominantEventType(hits []models.NLPRule) string {
	if len(hits) == 0 {
		return GenericEventType
	}
	weights := map[string]float64{}
	order := map[string]int{}
	for i, hit := range hits {
		weights[hit.EventType] += hit.Weight
		if _, seen := order[hit.EventType]; !seen {
			order[hit.EventType] = i
		}
	}
	best := hits[0].EventType
	for eventType, weight := range weights {
		if weight > weights[best] || (weight == weights[best] && order[eventType] < order[best]) {
			best = eventType
		}
	}
	return best
}

// aggregatePolarity takes the weighted positive-minus-negative vote.
func aggregatePolarity(hits []models.NLPRule) string {
	var vote float64
	for _, hit := range hits {
		switch hit.Polarity {
		case PolarityPositive:
			vote += hit.Weight
		case PolarityNegative:
			vote -= hit.Weight
		}
	}
	switch {
	case vote > 0:
		return PolarityPositive
	case vote < 0:
		return PolarityNegative
	default:
		return PolarityNeutral
	}
}

// scoreOf combines rule weights saturating toward 1, then scales by the
// source reliability.
func scoreOf(hits []models.NLPRule, reliability float64) float64 {
	remainder := 1.0
	for _, hit := range hits {
		remainder *= 1 - hit.Weight
	}
	return (1 - remainder) * reliability
}

// confidenceOf grows with distinct rule hits and available text.
func confidenceOf(hitCount, textLen int) float64 {
	c := 0.2 + 0.15*float64(hitCount)
	if textLen > 200 {
		c += 0.1
	}
	if textLen > 1000 {
		c += 0.1
	}
	if c > 1 {
		c = 1
	}
	return c
}

func ruleIDs(hits []models.NLPRule) []string {
	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.RuleID)
	}
	sort.Strings(ids)
	return ids
}

func ruleTags(hits []models.NLPRule) []string {
	seen := map[string]bool{}
	var tags []string
	for _, hit := range hits {
		if hit.Tag != "" && !seen[hit.Tag] {
			seen[hit.Tag] = true
			tags = append(tags, hit.Tag)
		}
	}
	sort.Strings(tags)
	return tags
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
