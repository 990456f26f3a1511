package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates_Empty(t *testing.T) {
	cfg := map[string]interface{}{
		"token":                   "abc",
		"request_budget_per_hour": 50,
		"credential_aliases":      []interface{}{"main"},
	}

	got := ParseCandidates("tushare_announcement", cfg)
	require.Len(t, got, 1)
	assert.Equal(t, "primary", got[0].SourceKey)
	assert.Equal(t, "tushare_announcement", got[0].ConnectorType)
	assert.Zero(t, got[0].Priority)
	assert.True(t, got[0].Enabled)
	assert.Equal(t, 50, got[0].BudgetPerHour)
	assert.Equal(t, []string{"main"}, got[0].CredAliases)
	// The synthetic candidate reuses the connector config itself.
	assert.Equal(t, "abc", got[0].Config["token"])
}

func TestParseCandidates_SortedAndDefaulted(t *testing.T) {
	cfg := map[string]interface{}{
		"source_matrix": []interface{}{
			map[string]interface{}{"source_key": "beta", "priority": 10},
			map[string]interface{}{"source_key": "alpha", "priority": 10},
			map[string]interface{}{
				"source_key":              "main",
				"priority":                1,
				"connector_type":          "http_json",
				"enabled":                 false,
				"request_budget_per_hour": 20,
				"config":                  map[string]interface{}{"url": "http://example.test"},
			},
			map[string]interface{}{"priority": 0}, // no source_key: dropped
			"not a map",                          // malformed: dropped
		},
	}

	got := ParseCandidates("tushare_announcement", cfg)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"main", "alpha", "beta"},
		[]string{got[0].SourceKey, got[1].SourceKey, got[2].SourceKey})

	assert.Equal(t, "http_json", got[0].ConnectorType)
	assert.False(t, got[0].Enabled)
	assert.Equal(t, 20, got[0].BudgetPerHour)
	assert.Equal(t, "http://example.test", got[0].Config["url"])

	// Missing fields fall back to defaults.
	assert.Equal(t, "tushare_announcement", got[1].ConnectorType)
	assert.True(t, got[1].Enabled)
	assert.Equal(t, 100, got[1].Priority)
	assert.NotNil(t, got[1].Config)
}

func TestParseFailover(t *testing.T) {
	assert.Equal(t, DefaultFailover(), ParseFailover(map[string]interface{}{}))

	got := ParseFailover(map[string]interface{}{
		"failover": map[string]interface{}{
			"enabled":                false,
			"health_threshold":       55.5,
			"max_candidates_per_run": 2,
		},
	})
	assert.False(t, got.Enabled)
	assert.Equal(t, 55.5, got.HealthThreshold)
	assert.Equal(t, 2, got.MaxCandidatesPerRun)

	// Out-of-range values are ignored.
	got = ParseFailover(map[string]interface{}{
		"failover": map[string]interface{}{
			"health_threshold":       250,
			"max_candidates_per_run": 0,
		},
	})
	assert.Equal(t, DefaultFailover().HealthThreshold, got.HealthThreshold)
	assert.Equal(t, DefaultFailover().MaxCandidatesPerRun, got.MaxCandidatesPerRun)
}

func TestCredentials(t *testing.T) {
	assert.Nil(t, Credentials(map[string]interface{}{}))

	got := Credentials(map[string]interface{}{
		"credentials": map[string]interface{}{
			"main":   map[string]interface{}{"token": "t1"},
			"backup": map[string]interface{}{"token": "t2"},
			"bogus":  "not a map",
		},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got["main"]["token"])
	assert.Equal(t, "t2", got["backup"]["token"])
}
