package governance

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/eventrecord"
	"github.com/quantmuse/eventcore/ent/nlpfeedback"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/metrics"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/nlp"
	"github.com/quantmuse/eventcore/pkg/services"
	"github.com/quantmuse/eventcore/pkg/timeutil"
)

// Default drift thresholds; a zero request field falls back here.
// Deltas are current minus baseline, so degradation is negative.
const (
	defaultHitRateWarning       = 0.15
	defaultHitRateCritical      = 0.30
	defaultScoreP50Warning      = 0.10
	defaultScoreP50Critical     = 0.20
	defaultContributionWarning  = 0.02
	defaultContributionCritical = 0.05
	defaultFeedbackWarning      = 0.10
	defaultFeedbackCritical     = 0.20
	defaultFeedbackMinSamples   = 20
)

// DriftCheck compares NLP metrics between the current window and a
// baseline, optionally folding in backtest contribution and feedback
// accuracy, and persists a snapshot when asked to.
func (s *Service) DriftCheck(ctx context.Context, req models.DriftCheckRequest) (*models.DriftResult, error) {
	if req.CurrentStart.IsZero() || req.CurrentEnd.IsZero() {
		return nil, services.NewValidationError("current_window", "current_start and current_end are required")
	}
	if req.CurrentEnd.Before(req.CurrentStart) {
		return nil, services.NewValidationError("current_window", "current_end precedes current_start")
	}

	baselineStart, baselineEnd := req.BaselineStart, req.BaselineEnd
	if baselineStart.IsZero() || baselineEnd.IsZero() {
		// Mirror the current span immediately before it.
		spanDays := int(req.CurrentEnd.Sub(req.CurrentStart).Hours()/24) + 1
		baselineEnd = req.CurrentStart.AddDate(0, 0, -1)
		baselineStart = baselineEnd.AddDate(0, 0, -(spanDays - 1))
	}

	currentRows, err := s.events.LoadEventRowsForMetrics(ctx, req.SourceName, req.CurrentStart, req.CurrentEnd)
	if err != nil {
		return nil, err
	}
	baselineRows, err := s.events.LoadEventRowsForMetrics(ctx, req.SourceName, baselineStart, baselineEnd)
	if err != nil {
		return nil, err
	}

	fallbackVersion := nlp.BuiltinVersion
	if active, err := s.GetActiveRuleset(ctx); err == nil && active != nil {
		fallbackVersion = active.Version
	}

	result := &models.DriftResult{
		SourceName:     req.SourceName,
		CurrentWindow:  timeutil.WindowLabel(req.CurrentStart, req.CurrentEnd),
		BaselineWindow: timeutil.WindowLabel(baselineStart, baselineEnd),
		Current:        nlp.ComputeWindowMetrics(currentRows, fallbackVersion),
		Baseline:       nlp.ComputeWindowMetrics(baselineRows, fallbackVersion),
	}
	result.RulesetVersion = result.Current.RulesetVersion
	result.HitRateDelta = result.Current.HitRate - result.Baseline.HitRate
	result.ScoreP50Delta = result.Current.ScoreP50 - result.Baseline.ScoreP50

	addBandAlert(result, "hit_rate", result.HitRateDelta,
		orDefault(req.HitRateWarning, defaultHitRateWarning),
		orDefault(req.HitRateCritical, defaultHitRateCritical))
	addBandAlert(result, "score_p50", result.ScoreP50Delta,
		orDefault(req.ScoreP50Warning, defaultScoreP50Warning),
		orDefault(req.ScoreP50Critical, defaultScoreP50Critical))

	if req.ContributionSymbol != "" && req.ContributionStrategy != "" && s.comparator != nil {
		if err := s.checkContribution(ctx, req, baselineStart, baselineEnd, result); err != nil {
			return nil, err
		}
	}

	if req.CheckFeedback {
		if err := s.checkFeedback(ctx, req, baselineStart, baselineEnd, result); err != nil {
			return nil, err
		}
	}

	for _, alert := range result.Alerts {
		metrics.DriftAlerts.WithLabelValues(alert.Severity).Inc()
	}

	if req.PersistSnapshot {
		snapshotID, err := s.persistSnapshot(ctx, req, result)
		if err != nil {
			return nil, err
		}
		result.SnapshotID = snapshotID
	}

	if s.audit != nil {
		s.audit.Emit(ctx, audit.TypeNLP, "", map[string]interface{}{
			"action":          "drift_check",
			"source_name":     req.SourceName,
			"current_window":  result.CurrentWindow,
			"baseline_window": result.BaselineWindow,
			"hit_rate_delta":  result.HitRateDelta,
			"score_p50_delta": result.ScoreP50Delta,
			"alert_count":     len(result.Alerts),
			"snapshot_id":     result.SnapshotID,
		})
	}
	return result, nil
}

// checkContribution invokes the external comparator for both windows and
// classifies the delta of deltas.
func (s *Service) checkContribution(ctx context.Context, req models.DriftCheckRequest, baselineStart, baselineEnd time.Time, result *models.DriftResult) error {
	current, err := s.comparator.Compare(ctx, req.ContributionSymbol, req.ContributionStrategy, req.CurrentStart, req.CurrentEnd)
	if err != nil {
		return fmt.Errorf("contribution compare (current): %w", err)
	}
	baseline, err := s.comparator.Compare(ctx, req.ContributionSymbol, req.ContributionStrategy, baselineStart, baselineEnd)
	if err != nil {
		return fmt.Errorf("contribution compare (baseline): %w", err)
	}
	delta := current.TotalReturnDelta - baseline.TotalReturnDelta
	result.ContributionDelta = &delta
	addBandAlert(result, "contribution", delta,
		orDefault(req.ContributionWarning, defaultContributionWarning),
		orDefault(req.ContributionCritical, defaultContributionCritical))
	return nil
}

// checkFeedback compares feedback agreement across the two windows.
// Alerts fire only when both windows carry enough samples.
func (s *Service) checkFeedback(ctx context.Context, req models.DriftCheckRequest, baselineStart, baselineEnd time.Time, result *models.DriftResult) error {
	minSamples := req.FeedbackMinSamples
	if minSamples <= 0 {
		minSamples = defaultFeedbackMinSamples
	}

	current, err := s.feedbackAccuracy(ctx, req.SourceName, req.CurrentStart, req.CurrentEnd)
	if err != nil {
		return err
	}
	baseline, err := s.feedbackAccuracy(ctx, req.SourceName, baselineStart, baselineEnd)
	if err != nil {
		return err
	}
	if current.SampleSize < minSamples || baseline.SampleSize < minSamples {
		return nil
	}

	polarityDelta := current.PolarityAccuracy - baseline.PolarityAccuracy
	typeDelta := current.EventTypeAccuracy - baseline.EventTypeAccuracy
	result.FeedbackPolarityAccuracyDelta = &polarityDelta
	result.FeedbackEventTypeAccuracyDelta = &typeDelta

	warning := orDefault(req.FeedbackWarning, defaultFeedbackWarning)
	critical := orDefault(req.FeedbackCritical, defaultFeedbackCritical)
	addBandAlert(result, "feedback_polarity_accuracy", polarityDelta, warning, critical)
	addBandAlert(result, "feedback_event_type_accuracy", typeDelta, warning, critical)
	return nil
}

// feedbackAccuracy joins feedback rows created in the window against
// their events and measures label agreement.
func (s *Service) feedbackAccuracy(ctx context.Context, sourceName string, start, end time.Time) (models.FeedbackAccuracy, error) {
	lo, hi := timeutil.DayBounds(start, end)
	query := s.client.NLPFeedback.Query().
		Where(
			nlpfeedback.CreatedAtGTE(lo),
			nlpfeedback.CreatedAtLTE(hi),
		)
	if sourceName != "" {
		query = query.Where(nlpfeedback.SourceNameEQ(sourceName))
	}
	rows, err := query.All(ctx)
	if err != nil {
		return models.FeedbackAccuracy{}, fmt.Errorf("failed to load feedback: %w", err)
	}

	acc := models.FeedbackAccuracy{SampleSize: len(rows)}
	var polaritySamples, polarityMatches, typeSamples, typeMatches int
	for _, row := range rows {
		event, err := s.client.EventRecord.Query().
			Where(
				eventrecord.SourceNameEQ(row.SourceName),
				eventrecord.EventIDEQ(row.EventID),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return models.FeedbackAccuracy{}, fmt.Errorf("failed to load event for feedback: %w", err)
		}
		if row.LabelPolarity != "" {
			polaritySamples++
			if row.LabelPolarity == string(event.Polarity) {
				polarityMatches++
			}
		}
		if row.LabelEventType != "" {
			typeSamples++
			if row.LabelEventType == event.EventType {
				typeMatches++
			}
		}
	}
	if polaritySamples > 0 {
		acc.PolarityAccuracy = float64(polarityMatches) / float64(polaritySamples)
	}
	if typeSamples > 0 {
		acc.EventTypeAccuracy = float64(typeMatches) / float64(typeSamples)
	}
	return acc, nil
}

func (s *Service) persistSnapshot(ctx context.Context, req models.DriftCheckRequest, result *models.DriftResult) (int, error) {
	builder := s.client.NLPDriftSnapshot.Create().
		SetRulesetVersion(result.RulesetVersion).
		SetCurrentWindow(result.CurrentWindow).
		SetBaselineWindow(result.BaselineWindow).
		SetSampleSize(result.Current.SampleSize).
		SetBaselineSampleSize(result.Baseline.SampleSize).
		SetCurrentMetrics(metricsToMap(result.Current)).
		SetBaselineMetrics(metricsToMap(result.Baseline)).
		SetHitRateDelta(result.HitRateDelta).
		SetScoreP50Delta(result.ScoreP50Delta).
		SetAlerts(result.Alerts)
	if req.SourceName != "" {
		builder = builder.SetSourceName(req.SourceName)
	}
	if result.ContributionDelta != nil {
		builder = builder.SetContributionDelta(*result.ContributionDelta)
	}
	if result.FeedbackPolarityAccuracyDelta != nil {
		builder = builder.SetFeedbackPolarityAccuracyDelta(*result.FeedbackPolarityAccuracyDelta)
	}
	if result.FeedbackEventTypeAccuracyDelta != nil {
		builder = builder.SetFeedbackEventTypeAccuracyDelta(*result.FeedbackEventTypeAccuracyDelta)
	}
	snapshot, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to persist drift snapshot: %w", err)
	}
	return snapshot.ID, nil
}

// addBandAlert classifies a delta against its (warning, critical)
// degradation bands. Only declines alert; critical supersedes warning.
func addBandAlert(result *models.DriftResult, metric string, delta, warning, critical float64) {
	switch {
	case delta <= -critical:
		result.Alerts = append(result.Alerts, models.DriftAlert{
			Metric:   metric,
			Severity: models.SeverityCritical,
			Value:    delta,
			Message:  fmt.Sprintf("%s dropped %.4f vs baseline (critical threshold %.4f)", metric, -delta, critical),
		})
	case delta <= -warning:
		result.Alerts = append(result.Alerts, models.DriftAlert{
			Metric:   metric,
			Severity: models.SeverityWarning,
			Value:    delta,
			Message:  fmt.Sprintf("%s dropped %.4f vs baseline (warning threshold %.4f)", metric, -delta, warning),
		})
	}
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func metricsToMap(m models.WindowMetrics) map[string]interface{} {
	data, err := json.Marshal(m)
	if err != nil {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}
