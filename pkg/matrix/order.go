package matrix

import (
	"math"
	"sort"
	"time"
)

// CandidateState is the pure view of one SourceState row used by the
// ordering function.
type CandidateState struct {
	SourceKey           string
	Priority            int
	Enabled             bool
	HealthScore         float64
	ConsecutiveFailures int
	IsActive            bool
	LastAttemptAt       *time.Time
}

// EffectiveHealth applies the staleness penalty: candidates not attempted
// recently lose up to 20 points so a long-idle active source does not
// shadow fresher ones forever.
func EffectiveHealth(state CandidateState, now time.Time) float64 {
	if state.LastAttemptAt == nil {
		return state.HealthScore
	}
	minutes := now.Sub(*state.LastAttemptAt).Minutes()
	if minutes < 0 {
		minutes = 0
	}
	penalty := math.Min(20, minutes/30)
	return math.Max(0, state.HealthScore-penalty)
}

// OrderCandidates returns the attempt order for one run. With failover
// disabled only the single best candidate is returned (is_active first,
// then priority, then effective health). With failover enabled, active
// candidates at or above the health threshold go first, then everything
// else by effective health descending, priority ascending, source_key
// ascending; the list is cut at MaxCandidatesPerRun.
//
// Pure function: no I/O, no mutation of the input.
func OrderCandidates(states []CandidateState, failover FailoverConfig, now time.Time) []CandidateState {
	enabled := make([]CandidateState, 0, len(states))
	for _, s := range states {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	if len(enabled) == 0 {
		return nil
	}

	if !failover.Enabled {
		sort.SliceStable(enabled, func(i, j int) bool {
			if enabled[i].IsActive != enabled[j].IsActive {
				return enabled[i].IsActive
			}
			if enabled[i].Priority != enabled[j].Priority {
				return enabled[i].Priority < enabled[j].Priority
			}
			return EffectiveHealth(enabled[i], now) > EffectiveHealth(enabled[j], now)
		})
		return enabled[:1]
	}

	preferred := func(s CandidateState) int {
		if s.IsActive && EffectiveHealth(s, now) >= failover.HealthThreshold {
			return 0
		}
		return 1
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		pi, pj := preferred(enabled[i]), preferred(enabled[j])
		if pi != pj {
			return pi < pj
		}
		hi, hj := EffectiveHealth(enabled[i], now), EffectiveHealth(enabled[j], now)
		if hi != hj {
			return hi > hj
		}
		if enabled[i].Priority != enabled[j].Priority {
			return enabled[i].Priority < enabled[j].Priority
		}
		return enabled[i].SourceKey < enabled[j].SourceKey
	})

	max := failover.MaxCandidatesPerRun
	if max <= 0 || max > len(enabled) {
		max = len(enabled)
	}
	return enabled[:max]
}

// HealthAfterSuccess lifts the score toward 100 with a latency drag.
// The max(35, ...) floor lets a recovering source climb out of a deep
// failure trough in one hit.
func HealthAfterSuccess(health float64, latencyMS int64) float64 {
	next := math.Max(35, health) + 8 - float64(latencyMS)/2000
	return math.Min(100, next)
}

// HealthAfterFailure drops the score by a base penalty plus ramps for
// repeated failures and slow timeouts. consecutiveFailures is the count
// before this failure.
func HealthAfterFailure(health float64, consecutiveFailures int, latencyMS int64) float64 {
	penalty := 12 + math.Min(30, 4*float64(consecutiveFailures))
	if latencyMS > 5000 {
		penalty += float64(latencyMS-5000) / 1000
	}
	return math.Max(0, health-penalty)
}
