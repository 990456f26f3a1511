package governance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/pkg/models"
)

func scorePtr(v float64) *float64 { return &v }

func entry(labeler, eventType, polarity string, labelScore *float64, predicted float64) models.LabelEntry {
	return models.LabelEntry{
		SourceName:     "cninfo",
		EventID:        "ann-1",
		Labeler:        labeler,
		LabelEventType: eventType,
		LabelPolarity:  polarity,
		LabelScore:     labelScore,
		PredictedScore: predicted,
	}
}

func TestAdjudicateGroup_CleanConsensus(t *testing.T) {
	entries := []models.LabelEntry{
		entry("a", "share_buyback", "positive", scorePtr(0.6), 0.5),
		entry("b", "share_buyback", "positive", scorePtr(0.7), 0.5),
		entry("c", "share_buyback", "positive", scorePtr(0.65), 0.5),
	}

	label := adjudicateGroup("cninfo", "ann-1", entries, false)
	assert.Equal(t, "share_buyback", label.ConsensusEventType)
	assert.Equal(t, "positive", label.ConsensusPolarity)
	assert.InDelta(t, 0.65, label.ConsensusScore, 1e-9) // median of label scores
	assert.InDelta(t, 1.0, label.Confidence, 1e-9)
	assert.Equal(t, 3, label.LabelCount)
	assert.False(t, label.Conflict)
	assert.Empty(t, label.ConflictReasons)
}

func TestAdjudicateGroup_Disagreement(t *testing.T) {
	entries := []models.LabelEntry{
		entry("a", "share_buyback", "positive", nil, 0.5),
		entry("b", "share_buyback", "positive", nil, 0.6),
		entry("c", "holder_increase", "negative", nil, 0.7),
	}

	label := adjudicateGroup("cninfo", "ann-1", entries, false)
	assert.Equal(t, "share_buyback", label.ConsensusEventType)
	assert.Equal(t, "positive", label.ConsensusPolarity)
	// No label scores: mean of predicted scores.
	assert.InDelta(t, 0.6, label.ConsensusScore, 1e-9)
	assert.True(t, label.Conflict)
	assert.Contains(t, label.ConflictReasons, "event_type disagreement")
	assert.Contains(t, label.ConflictReasons, "polarity disagreement")
}

func TestAdjudicateGroup_TieIsDeterministic(t *testing.T) {
	entries := []models.LabelEntry{
		entry("a", "litigation", "negative", nil, 0.4),
		entry("b", "contract_win", "positive", nil, 0.4),
	}

	label := adjudicateGroup("cninfo", "ann-1", entries, false)
	// Ties resolve to the lexicographically smallest key.
	assert.Equal(t, "contract_win", label.ConsensusEventType)
	assert.Equal(t, "negative", label.ConsensusPolarity)
	assert.Contains(t, label.ConflictReasons, "event_type tie")
	assert.Contains(t, label.ConflictReasons, "polarity tie")

	again := adjudicateGroup("cninfo", "ann-1", entries, false)
	assert.Equal(t, label, again)
}

func TestAdjudicateGroup_ScoreSpread(t *testing.T) {
	entries := []models.LabelEntry{
		entry("a", "dividend", "positive", scorePtr(0.1), 0.5),
		entry("b", "dividend", "positive", scorePtr(0.9), 0.5),
	}

	label := adjudicateGroup("cninfo", "ann-1", entries, false)
	assert.True(t, label.Conflict)
	assert.Contains(t, label.ConflictReasons, "score spread")
}

func TestAdjudicateGroup_UnanimityRequired(t *testing.T) {
	entries := []models.LabelEntry{
		entry("a", "dividend", "positive", nil, 0.5),
		entry("b", "dividend", "positive", nil, 0.5),
		entry("c", "litigation", "positive", nil, 0.5),
	}

	label := adjudicateGroup("cninfo", "ann-1", entries, true)
	assert.Contains(t, label.ConflictReasons, "unanimity required")
}

func TestAdjudicateLabels_SkipsSmallGroups(t *testing.T) {
	svc := &Service{}
	result, err := svc.AdjudicateLabels(context.Background(), models.AdjudicateRequest{
		Entries: []models.LabelEntry{
			entry("a", "dividend", "positive", nil, 0.5),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Zero(t, result.Adjudicated)
	assert.Empty(t, result.Labels)
}

func TestAdjudicateLabels_ValidatesEntries(t *testing.T) {
	svc := &Service{}
	_, err := svc.AdjudicateLabels(context.Background(), models.AdjudicateRequest{
		Entries: []models.LabelEntry{{EventID: "ann-1"}},
	})
	require.Error(t, err)
}
