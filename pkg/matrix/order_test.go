package matrix

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(t time.Time) *time.Time { return &t }

func TestEffectiveHealth_StalenessPenalty(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	// Never attempted: no penalty.
	assert.Equal(t, 80.0, EffectiveHealth(CandidateState{HealthScore: 80}, now))

	// 60 minutes stale: 2 point penalty.
	state := CandidateState{HealthScore: 80, LastAttemptAt: ptr(now.Add(-60 * time.Minute))}
	assert.InDelta(t, 78, EffectiveHealth(state, now), 1e-9)

	// Penalty caps at 20 regardless of staleness.
	state.LastAttemptAt = ptr(now.Add(-72 * time.Hour))
	assert.InDelta(t, 60, EffectiveHealth(state, now), 1e-9)

	// Floor at zero.
	state.HealthScore = 10
	assert.Zero(t, EffectiveHealth(state, now))

	// Future attempt timestamps clamp to zero staleness.
	state.HealthScore = 50
	state.LastAttemptAt = ptr(now.Add(time.Hour))
	assert.Equal(t, 50.0, EffectiveHealth(state, now))
}

func TestOrderCandidates_FailoverDisabled(t *testing.T) {
	now := time.Now()
	states := []CandidateState{
		{SourceKey: "backup", Priority: 10, Enabled: true, HealthScore: 95},
		{SourceKey: "primary", Priority: 0, Enabled: true, HealthScore: 20, IsActive: true},
	}

	got := OrderCandidates(states, FailoverConfig{Enabled: false}, now)
	require.Len(t, got, 1)
	// Active wins even with terrible health when failover is off.
	assert.Equal(t, "primary", got[0].SourceKey)
}

func TestOrderCandidates_FailoverEnabled(t *testing.T) {
	now := time.Now()
	failover := FailoverConfig{Enabled: true, HealthThreshold: 40, MaxCandidatesPerRun: 3}
	states := []CandidateState{
		{SourceKey: "a", Priority: 0, Enabled: true, HealthScore: 30, IsActive: true},
		{SourceKey: "b", Priority: 10, Enabled: true, HealthScore: 90},
		{SourceKey: "c", Priority: 20, Enabled: true, HealthScore: 70},
		{SourceKey: "d", Priority: 30, Enabled: false, HealthScore: 100},
	}

	got := OrderCandidates(states, failover, now)
	require.Len(t, got, 3)
	// The active candidate is below threshold, so pure health order wins.
	assert.Equal(t, "b", got[0].SourceKey)
	assert.Equal(t, "c", got[1].SourceKey)
	assert.Equal(t, "a", got[2].SourceKey)
}

func TestOrderCandidates_ActiveAboveThresholdGoesFirst(t *testing.T) {
	now := time.Now()
	failover := DefaultFailover()
	states := []CandidateState{
		{SourceKey: "backup", Priority: 10, Enabled: true, HealthScore: 99},
		{SourceKey: "primary", Priority: 0, Enabled: true, HealthScore: 45, IsActive: true},
	}

	got := OrderCandidates(states, failover, now)
	require.Len(t, got, 2)
	assert.Equal(t, "primary", got[0].SourceKey)
	assert.Equal(t, "backup", got[1].SourceKey)
}

func TestOrderCandidates_CutAtMaxCandidates(t *testing.T) {
	now := time.Now()
	states := []CandidateState{
		{SourceKey: "a", Enabled: true, HealthScore: 90},
		{SourceKey: "b", Enabled: true, HealthScore: 80},
		{SourceKey: "c", Enabled: true, HealthScore: 70},
		{SourceKey: "d", Enabled: true, HealthScore: 60},
	}

	got := OrderCandidates(states, FailoverConfig{Enabled: true, HealthThreshold: 40, MaxCandidatesPerRun: 2}, now)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].SourceKey)
	assert.Equal(t, "b", got[1].SourceKey)
}

func TestOrderCandidates_TieBreaks(t *testing.T) {
	now := time.Now()
	states := []CandidateState{
		{SourceKey: "zeta", Priority: 5, Enabled: true, HealthScore: 50},
		{SourceKey: "alpha", Priority: 5, Enabled: true, HealthScore: 50},
		{SourceKey: "mid", Priority: 1, Enabled: true, HealthScore: 50},
	}

	got := OrderCandidates(states, DefaultFailover(), now)
	require.Len(t, got, 3)
	assert.Equal(t, "mid", got[0].SourceKey)
	assert.Equal(t, "alpha", got[1].SourceKey)
	assert.Equal(t, "zeta", got[2].SourceKey)
}

func TestOrderCandidates_AllDisabled(t *testing.T) {
	states := []CandidateState{{SourceKey: "a", Enabled: false}}
	assert.Nil(t, OrderCandidates(states, DefaultFailover(), time.Now()))
}

func TestHealthAfterSuccess(t *testing.T) {
	// Fast success from a healthy score.
	assert.InDelta(t, 88, HealthAfterSuccess(80, 0), 1e-9)
	// Cap at 100.
	assert.Equal(t, 100.0, HealthAfterSuccess(99, 0))
	// Recovery floor: one success lifts a dead source to at least 43-ish.
	assert.InDelta(t, 43, HealthAfterSuccess(0, 0), 1e-9)
	// Latency drag: 4s shaves 2 points.
	assert.InDelta(t, 86, HealthAfterSuccess(80, 4000), 1e-9)
}

func TestHealthAfterFailure(t *testing.T) {
	// First failure: base penalty only.
	assert.InDelta(t, 68, HealthAfterFailure(80, 0, 0), 1e-9)
	// Ramp with consecutive failures.
	assert.InDelta(t, 56, HealthAfterFailure(80, 3, 0), 1e-9)
	// Consecutive ramp caps at 30.
	assert.InDelta(t, 38, HealthAfterFailure(80, 100, 0), 1e-9)
	// Slow failure adds (latency-5000)/1000.
	assert.InDelta(t, 63, HealthAfterFailure(80, 0, 10000), 1e-9)
	// Floor at zero.
	assert.Zero(t, HealthAfterFailure(5, 10, 0))
}

func TestHealthBounds_Property(t *testing.T) {
	for h := 0.0; h <= 100; h += 12.5 {
		for _, lat := range []int64{0, 1000, 6000, 60000} {
			s := HealthAfterSuccess(h, lat)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 100.0)
			for fails := 0; fails < 12; fails += 3 {
				f := HealthAfterFailure(h, fails, lat)
				assert.GreaterOrEqual(t, f, 0.0)
				assert.Less(t, f, h+1e-9)
			}
		}
	}
}
