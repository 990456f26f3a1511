package governance

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/eventrecord"
	"github.com/quantmuse/eventcore/ent/nlpconsensus"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/nlp"
	"github.com/quantmuse/eventcore/pkg/services"
)

// scoreStdConflict flags groups whose label scores disagree too widely.
const scoreStdConflict = 0.18

// SubmitFeedback records one labeler correction for an existing event.
func (s *Service) SubmitFeedback(ctx context.Context, entry models.LabelEntry, comment string) (int, error) {
	if entry.SourceName == "" {
		return 0, services.NewValidationError("source_name", "required")
	}
	if entry.EventID == "" {
		return 0, services.NewValidationError("event_id", "required")
	}
	switch entry.LabelPolarity {
	case "", nlp.PolarityPositive, nlp.PolarityNegative, nlp.PolarityNeutral:
	default:
		return 0, services.NewValidationError("label_polarity", fmt.Sprintf("unknown value %q", entry.LabelPolarity))
	}
	if entry.LabelScore != nil && (*entry.LabelScore < 0 || *entry.LabelScore > 1) {
		return 0, services.NewValidationError("label_score", "must be within [0,1]")
	}

	exists, err := s.client.EventRecord.Query().
		Where(
			eventrecord.SourceNameEQ(entry.SourceName),
			eventrecord.EventIDEQ(entry.EventID),
		).
		Exist(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("event %s/%s: %w", entry.SourceName, entry.EventID, services.ErrNotFound)
	}

	builder := s.client.NLPFeedback.Create().
		SetSourceName(entry.SourceName).
		SetEventID(entry.EventID)
	if entry.Labeler != "" {
		builder = builder.SetLabeler(entry.Labeler)
	}
	if entry.LabelEventType != "" {
		builder = builder.SetLabelEventType(entry.LabelEventType)
	}
	if entry.LabelPolarity != "" {
		builder = builder.SetLabelPolarity(entry.LabelPolarity)
	}
	if entry.LabelScore != nil {
		builder = builder.SetLabelScore(*entry.LabelScore)
	}
	if comment != "" {
		builder = builder.SetComment(comment)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to save feedback: %w", err)
	}
	return created.ID, nil
}

// AdjudicateLabels collapses multi-labeler entries into consensus rows.
// Groups below min_labelers are skipped, not counted as adjudicated.
func (s *Service) AdjudicateLabels(ctx context.Context, req models.AdjudicateRequest) (*models.AdjudicateResult, error) {
	minLabelers := req.MinLabelers
	if minLabelers <= 0 {
		minLabelers = 2
	}

	type groupKey struct{ source, event string }
	groups := map[groupKey][]models.LabelEntry{}
	var order []groupKey
	for _, entry := range req.Entries {
		if entry.SourceName == "" || entry.EventID == "" {
			return nil, services.NewValidationError("entries", "source_name and event_id are required on every entry")
		}
		key := groupKey{entry.SourceName, entry.EventID}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], entry)
	}

	result := &models.AdjudicateResult{}
	for _, key := range order {
		entries := groups[key]
		if len(entries) < minLabelers {
			result.Skipped++
			continue
		}
		label := adjudicateGroup(key.source, key.event, entries, req.RequireUnanimous)
		if label.Conflict {
			result.Conflicts++
		}
		result.Adjudicated++
		result.Labels = append(result.Labels, label)

		if req.Persist {
			if err := s.persistConsensus(ctx, label); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// adjudicateGroup is the pure consensus computation for one event.
func adjudicateGroup(sourceName, eventID string, entries []models.LabelEntry, requireUnanimous bool) models.ConsensusLabel {
	label := models.ConsensusLabel{
		SourceName: sourceName,
		EventID:    eventID,
		LabelCount: len(entries),
	}

	types := map[string]int{}
	polarities := map[string]int{}
	var labelScores, predictedScores []float64
	for _, entry := range entries {
		if entry.LabelEventType != "" {
			types[entry.LabelEventType]++
		}
		if entry.LabelPolarity != "" {
			polarities[entry.LabelPolarity]++
		}
		if entry.LabelScore != nil {
			labelScores = append(labelScores, *entry.LabelScore)
		}
		predictedScores = append(predictedScores, entry.PredictedScore)
	}

	topType, topTypeCount, typeTie := mode(types)
	topPolarity, topPolarityCount, polarityTie := mode(polarities)
	label.ConsensusEventType = topType
	label.ConsensusPolarity = topPolarity
	label.Confidence = (float64(topTypeCount)+float64(topPolarityCount)) / 2 / float64(len(entries))

	if len(labelScores) > 0 {
		label.ConsensusScore = median(labelScores)
	} else {
		label.ConsensusScore = mean(predictedScores)
	}

	if typeTie {
		label.ConflictReasons = append(label.ConflictReasons, "event_type tie")
	}
	if polarityTie {
		label.ConflictReasons = append(label.ConflictReasons, "polarity tie")
	}
	if topTypeCount < len(entries) && topTypeCount > 0 {
		label.ConflictReasons = append(label.ConflictReasons, "event_type disagreement")
	}
	if topPolarityCount < len(entries) && topPolarityCount > 0 {
		label.ConflictReasons = append(label.ConflictReasons, "polarity disagreement")
	}
	if len(labelScores) > 1 && stddev(labelScores) >= scoreStdConflict {
		label.ConflictReasons = append(label.ConflictReasons, "score spread")
	}
	if requireUnanimous && (topTypeCount < len(entries) || topPolarityCount < len(entries)) {
		label.ConflictReasons = append(label.ConflictReasons, "unanimity required")
	}
	label.Conflict = len(label.ConflictReasons) > 0
	return label
}

func (s *Service) persistConsensus(_ context.Context, label models.ConsensusLabel) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.NLPConsensus.Query().
		Where(
			nlpconsensus.SourceNameEQ(label.SourceName),
			nlpconsensus.EventIDEQ(label.EventID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query consensus: %w", err)
	}
	if existing != nil {
		return existing.Update().
			SetConsensusEventType(label.ConsensusEventType).
			SetConsensusPolarity(label.ConsensusPolarity).
			SetConsensusScore(label.ConsensusScore).
			SetConfidence(label.Confidence).
			SetLabelCount(label.LabelCount).
			SetConflict(label.Conflict).
			SetConflictReasons(label.ConflictReasons).
			Exec(ctx)
	}
	return s.client.NLPConsensus.Create().
		SetSourceName(label.SourceName).
		SetEventID(label.EventID).
		SetConsensusEventType(label.ConsensusEventType).
		SetConsensusPolarity(label.ConsensusPolarity).
		SetConsensusScore(label.ConsensusScore).
		SetConfidence(label.Confidence).
		SetLabelCount(label.LabelCount).
		SetConflict(label.Conflict).
		SetConflictReasons(label.ConflictReasons).
		Exec(ctx)
}

// mode returns the most frequent key, its count, and whether the top
// spot was tied. Ties resolve to the lexicographically smallest key so
// adjudication stays deterministic.
func mode(counts map[string]int) (string, int, bool) {
	if len(counts) == 0 {
		return "", 0, false
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best, bestCount := keys[0], counts[keys[0]]
	tie := false
	for _, k := range keys[1:] {
		switch {
		case counts[k] > bestCount:
			best, bestCount = k, counts[k]
			tie = false
		case counts[k] == bestCount:
			tie = true
		}
	}
	return best, bestCount, tie
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddev(values []float64) float64 {
	m := mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)))
}
