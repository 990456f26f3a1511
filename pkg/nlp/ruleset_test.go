package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmuse/eventcore/pkg/models"
)

func TestCompile_Validation(t *testing.T) {
	valid := models.NLPRule{
		RuleID:    "r1",
		EventType: "t",
		Polarity:  PolarityPositive,
		Weight:    0.5,
		Patterns:  []string{"增持"},
	}

	tests := []struct {
		name    string
		version string
		mutate  func(*models.NLPRule)
		wantErr string
	}{
		{name: "empty version", version: "", mutate: func(*models.NLPRule) {}, wantErr: "version is required"},
		{name: "missing rule id", version: "v1", mutate: func(r *models.NLPRule) { r.RuleID = "" }, wantErr: "rule_id is required"},
		{name: "weight above one", version: "v1", mutate: func(r *models.NLPRule) { r.Weight = 1.5 }, wantErr: "outside [0,1]"},
		{name: "no patterns", version: "v1", mutate: func(r *models.NLPRule) { r.Patterns = nil }, wantErr: "at least one pattern"},
		{name: "bad polarity", version: "v1", mutate: func(r *models.NLPRule) { r.Polarity = "bullish" }, wantErr: "unknown polarity"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rule := valid
			tc.mutate(&rule)
			_, err := Compile(tc.version, []models.NLPRule{rule})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestCompile_InvalidRegexFallsBackToLiteral(t *testing.T) {
	rs, err := Compile("v1", []models.NLPRule{{
		RuleID:    "broken-re",
		EventType: "t",
		Polarity:  PolarityNeutral,
		Weight:    0.4,
		Patterns:  []string{"[unclosed"},
	}})
	require.NoError(t, err)

	hits := rs.match("this text contains [unclosed literally")
	require.Len(t, hits, 1)
	assert.Equal(t, "broken-re", hits[0].RuleID)
}

func TestMatch_RegexCaseInsensitive(t *testing.T) {
	rs, err := Compile("v1", []models.NLPRule{{
		RuleID:    "st-flag",
		EventType: "delisting_risk",
		Polarity:  PolarityNegative,
		Weight:    0.8,
		Patterns:  []string{"^\\*st"},
	}})
	require.NoError(t, err)

	assert.Len(t, rs.match("*ST 某公司公告"), 1)
	assert.Empty(t, rs.match("正常公告"))
}

func TestBuiltinRuleset(t *testing.T) {
	rs := BuiltinRuleset()
	assert.Equal(t, BuiltinVersion, rs.Version)
	assert.Equal(t, len(BuiltinRules()), rs.RuleCount())

	hits := rs.match("公司发布业绩预增公告，预计净利润同比增长50%")
	require.NotEmpty(t, hits)
	assert.Equal(t, "earnings-preannounce-up", hits[0].RuleID)
}
