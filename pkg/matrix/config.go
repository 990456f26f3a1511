// Package matrix implements source selection for connectors: candidate
// parsing, health-scored ordering, hourly request budgets and
// round-robin credential rotation.
package matrix

import (
	"sort"
)

// Candidate is one parsed source_matrix entry.
type Candidate struct {
	SourceKey     string
	ConnectorType string
	Priority      int
	Enabled       bool
	Config        map[string]interface{}
	BudgetPerHour int
	CredAliases   []string
}

// FailoverConfig controls multi-candidate behavior for one connector.
type FailoverConfig struct {
	Enabled             bool
	HealthThreshold     float64
	MaxCandidatesPerRun int
}

// DefaultFailover is applied when config.failover is absent or partial.
func DefaultFailover() FailoverConfig {
	return FailoverConfig{
		Enabled:             true,
		HealthThreshold:     40,
		MaxCandidatesPerRun: 3,
	}
}

// ParseCandidates reads config.source_matrix into an ordered candidate
// list (priority asc, source_key asc). A missing or empty matrix yields
// a single synthetic "primary" candidate using the connector's own type
// and config.
func ParseCandidates(connectorType string, config map[string]interface{}) []Candidate {
	raw, _ := config["source_matrix"].([]interface{})
	candidates := make([]Candidate, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		c := Candidate{
			SourceKey:     stringValue(entry, "source_key"),
			ConnectorType: stringValue(entry, "connector_type"),
			Priority:      intValue(entry, "priority", 100),
			Enabled:       boolValue(entry, "enabled", true),
			BudgetPerHour: intValue(entry, "request_budget_per_hour", 0),
			CredAliases:   stringSlice(entry, "credential_aliases"),
		}
		if c.SourceKey == "" {
			continue
		}
		if c.ConnectorType == "" {
			c.ConnectorType = connectorType
		}
		if cfg, ok := entry["config"].(map[string]interface{}); ok {
			c.Config = cfg
		} else {
			c.Config = map[string]interface{}{}
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		primary := Candidate{
			SourceKey:     "primary",
			ConnectorType: connectorType,
			Priority:      0,
			Enabled:       true,
			Config:        config,
			BudgetPerHour: intValue(config, "request_budget_per_hour", 0),
			CredAliases:   stringSlice(config, "credential_aliases"),
		}
		return []Candidate{primary}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority < candidates[j].Priority
		}
		return candidates[i].SourceKey < candidates[j].SourceKey
	})
	return candidates
}

// ParseFailover reads config.failover over the defaults.
func ParseFailover(config map[string]interface{}) FailoverConfig {
	fc := DefaultFailover()
	raw, ok := config["failover"].(map[string]interface{})
	if !ok {
		return fc
	}
	if v, ok := raw["enabled"].(bool); ok {
		fc.Enabled = v
	}
	if v, ok := floatOf(raw["health_threshold"]); ok && v >= 0 && v <= 100 {
		fc.HealthThreshold = v
	}
	if v, ok := floatOf(raw["max_candidates_per_run"]); ok && v >= 1 {
		fc.MaxCandidatesPerRun = int(v)
	}
	return fc
}

// Credentials returns the alias -> secret map from connector config.
func Credentials(config map[string]interface{}) map[string]map[string]interface{} {
	raw, ok := config["credentials"].(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]map[string]interface{}, len(raw))
	for alias, v := range raw {
		if m, ok := v.(map[string]interface{}); ok {
			out[alias] = m
		}
	}
	return out
}

func stringValue(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolValue(m map[string]interface{}, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func intValue(m map[string]interface{}, key string, def int) int {
	if v, ok := floatOf(m[key]); ok {
		return int(v)
	}
	return def
}

func floatOf(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func stringSlice(m map[string]interface{}, key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
