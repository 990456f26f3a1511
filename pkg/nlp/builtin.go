package nlp

import "github.com/quantmuse/eventcore/pkg/models"

// BuiltinVersion is the fallback ruleset applied when no ruleset has been
// activated in the store.
const BuiltinVersion = "builtin-v1"

// builtinRules covers the common A-share announcement categories. Weights
// reflect how strongly a hit alone should move the event score.
var builtinRules = []models.NLPRule{
	{
		RuleID:    "earnings-preannounce-up",
		EventType: "earnings_preannounce",
		Polarity:  PolarityPositive,
		Weight:    0.75,
		Tag:       "earnings",
		Patterns:  []string{"业绩预增", "预计净利润.*增长", "业绩快报.*增"},
	},
	{
		RuleID:    "earnings-preannounce-down",
		EventType: "earnings_preannounce",
		Polarity:  PolarityNegative,
		Weight:    0.75,
		Tag:       "earnings",
		Patterns:  []string{"业绩预亏", "预计净利润.*下降", "首亏", "续亏"},
	},
	{
		RuleID:    "restructuring",
		EventType: "major_restructuring",
		Polarity:  PolarityPositive,
		Weight:    0.7,
		Tag:       "capital",
		Patterns:  []string{"重大资产重组", "发行股份购买资产", "吸收合并"},
	},
	{
		RuleID:    "buyback",
		EventType: "share_buyback",
		Polarity:  PolarityPositive,
		Weight:    0.6,
		Tag:       "capital",
		Patterns:  []string{"回购股份", "股份回购"},
	},
	{
		RuleID:    "holder-reduction",
		EventType: "holder_reduction",
		Polarity:  PolarityNegative,
		Weight:    0.55,
		Tag:       "holder",
		Patterns:  []string{"减持", "拟减持"},
	},
	{
		RuleID:    "holder-increase",
		EventType: "holder_increase",
		Polarity:  PolarityPositive,
		Weight:    0.55,
		Tag:       "holder",
		Patterns:  []string{"增持", "拟增持"},
	},
	{
		RuleID:    "dividend",
		EventType: "dividend",
		Polarity:  PolarityPositive,
		Weight:    0.5,
		Tag:       "earnings",
		Patterns:  []string{"利润分配", "分红派息", "每10股派"},
	},
	{
		RuleID:    "contract-win",
		EventType: "contract_win",
		Polarity:  PolarityPositive,
		Weight:    0.6,
		Tag:       "business",
		Patterns:  []string{"中标", "签订.*重大合同", "框架协议"},
	},
	{
		RuleID:    "litigation",
		EventType: "litigation",
		Polarity:  PolarityNegative,
		Weight:    0.6,
		Tag:       "risk",
		Patterns:  []string{"诉讼", "仲裁", "立案调查"},
	},
	{
		RuleID:    "delisting-risk",
		EventType: "delisting_risk",
		Polarity:  PolarityNegative,
		Weight:    0.85,
		Tag:       "risk",
		Patterns:  []string{"退市风险警示", "终止上市", "\\*ST"},
	},
	{
		RuleID:    "trading-halt",
		EventType: "trading_halt",
		Polarity:  PolarityNeutral,
		Weight:    0.4,
		Tag:       "market",
		Patterns:  []string{"停牌", "复牌"},
	},
	{
		RuleID:    "guarantee",
		EventType: "external_guarantee",
		Polarity:  PolarityNegative,
		Weight:    0.45,
		Tag:       "risk",
		Patterns:  []string{"对外担保", "担保额度"},
	},
}

// BuiltinRuleset compiles and returns builtin-v1. The builtin payload is
// static, so compilation cannot fail.
func BuiltinRuleset() *Ruleset {
	rs, err := Compile(BuiltinVersion, builtinRules)
	if err != nil {
		panic(err)
	}
	return rs
}

// BuiltinRules returns a copy of the builtin rules payload for seeding.
func BuiltinRules() []models.NLPRule {
	out := make([]models.NLPRule, len(builtinRules))
	copy(out, builtinRules)
	return out
}
