package governance

import (
	"context"
	"fmt"
	"time"

	"github.com/quantmuse/eventcore/ent"
	"github.com/quantmuse/eventcore/ent/nlpdriftsnapshot"
	"github.com/quantmuse/eventcore/pkg/models"
)

// Risk levels reported by the drift monitor.
const (
	RiskInfo     = "info"
	RiskWarning  = "warning"
	RiskCritical = "critical"
)

// DriftMonitor classifies the recent snapshot sequence for a source.
// lookbackDays == 0 yields no points and an info risk level; negative
// values fall back to 30 days. limit bounds the number of snapshots.
func (s *Service) DriftMonitor(ctx context.Context, sourceName string, limit, lookbackDays int) (*models.DriftMonitorResult, error) {
	result := &models.DriftMonitorResult{
		SourceName:      sourceName,
		Points:          []models.DriftPoint{},
		LatestRiskLevel: RiskInfo,
	}
	if lookbackDays == 0 {
		return result, nil
	}
	if lookbackDays < 0 {
		lookbackDays = 30
	}
	if limit <= 0 {
		limit = 10
	}

	query := s.client.NLPDriftSnapshot.Query().
		Where(nlpdriftsnapshot.CreatedAtGTE(time.Now().AddDate(0, 0, -lookbackDays)))
	if sourceName != "" {
		query = query.Where(nlpdriftsnapshot.SourceNameEQ(sourceName))
	}
	snapshots, err := query.
		Order(ent.Desc(nlpdriftsnapshot.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load drift snapshots: %w", err)
	}
	if len(snapshots) == 0 {
		return result, nil
	}

	// Oldest first for the point sequence.
	warningSnapshots, criticalSnapshots := 0, 0
	for i := len(snapshots) - 1; i >= 0; i-- {
		snap := snapshots[i]
		point := models.DriftPoint{
			SnapshotID:    snap.ID,
			CreatedAt:     snap.CreatedAt,
			HitRateDelta:  snap.HitRateDelta,
			ScoreP50Delta: snap.ScoreP50Delta,
		}
		for _, alert := range snap.Alerts {
			switch alert.Severity {
			case models.SeverityWarning:
				point.WarningCount++
			case models.SeverityCritical:
				point.CriticalCount++
			}
		}
		if point.WarningCount > 0 {
			warningSnapshots++
		}
		if point.CriticalCount > 0 {
			criticalSnapshots++
		}
		result.Points = append(result.Points, point)
	}

	latest := result.Points[len(result.Points)-1]
	first := result.Points[0]
	switch {
	case latest.CriticalCount > 0 || criticalSnapshots >= 2:
		result.LatestRiskLevel = RiskCritical
	case latest.WarningCount > 0 || warningSnapshots >= 3:
		result.LatestRiskLevel = RiskWarning
	}
	result.Trends = map[string]float64{
		"hit_rate_delta":  latest.HitRateDelta - first.HitRateDelta,
		"score_p50_delta": latest.ScoreP50Delta - first.ScoreP50Delta,
	}
	return result, nil
}
