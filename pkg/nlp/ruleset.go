// Package nlp normalizes raw announcement records into structured events
// using versioned pattern rulesets, and computes the window metrics the
// drift monitor compares.
package nlp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quantmuse/eventcore/pkg/models"
)

// Polarity values produced by the standardizer.
const (
	PolarityPositive = "positive"
	PolarityNegative = "negative"
	PolarityNeutral  = "neutral"
)

// GenericEventType is assigned when no rule matches.
const GenericEventType = "generic_announcement"

// compiledRule is one rule with its patterns ready for matching.
// Patterns that fail to compile as regexps fall back to case-insensitive
// substring matching, so plain CJK keywords work without escaping.
type compiledRule struct {
	rule     models.NLPRule
	regexps  []*regexp.Regexp
	literals []string
}

func (r *compiledRule) matches(text string) bool {
	for _, re := range r.regexps {
		if re.MatchString(text) {
			return true
		}
	}
	lower := strings.ToLower(text)
	for _, lit := range r.literals {
		if strings.Contains(lower, lit) {
			return true
		}
	}
	return false
}

// Ruleset is a compiled, immutable ruleset version.
type Ruleset struct {
	Version string
	rules   []compiledRule
}

// Compile validates and compiles a rules payload. Rule order is preserved
// and used as the deterministic tie-breaker during scoring.
func Compile(version string, rules []models.NLPRule) (*Ruleset, error) {
	if version == "" {
		return nil, fmt.Errorf("ruleset version is required")
	}
	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		if rule.RuleID == "" {
			return nil, fmt.Errorf("rule %d: rule_id is required", i)
		}
		if rule.Weight < 0 || rule.Weight > 1 {
			return nil, fmt.Errorf("rule %s: weight %v outside [0,1]", rule.RuleID, rule.Weight)
		}
		if len(rule.Patterns) == 0 {
			return nil, fmt.Errorf("rule %s: at least one pattern is required", rule.RuleID)
		}
		switch rule.Polarity {
		case PolarityPositive, PolarityNegative, PolarityNeutral:
		default:
			return nil, fmt.Errorf("rule %s: unknown polarity %q", rule.RuleID, rule.Polarity)
		}
		cr := compiledRule{rule: rule}
		for _, pattern := range rule.Patterns {
			if re, err := regexp.Compile("(?i)" + pattern); err == nil {
				cr.regexps = append(cr.regexps, re)
			} else {
				cr.literals = append(cr.literals, strings.ToLower(pattern))
			}
		}
		compiled = append(compiled, cr)
	}
	return &Ruleset{Version: version, rules: compiled}, nil
}

// RuleCount returns the number of rules in the set.
func (rs *Ruleset) RuleCount() int {
	return len(rs.rules)
}

// match returns the rules hit by text, in ruleset order.
func (rs *Ruleset) match(text string) []models.NLPRule {
	var hits []models.NLPRule
	for i := range rs.rules {
		if rs.rules[i].matches(text) {
			hits = append(hits, rs.rules[i].rule)
		}
	}
	return hits
}
