package scoring

import "heartwise/models"

// FlagRule is one independent red-flag pattern. Rules never read each other's
// output; adding a rule means appending to the list, not editing neighbours.
type FlagRule struct {
	Name       string
	QuestionID string
	Values     []string
	Severity   models.Severity
	Category   models.FlagCategory
	Signal     string
	Guidance   string
}

// Evaluate returns a flag when any answer to the rule's question carries one
// of the triggering values, nil otherwise. A rule fires at most once per call.
func (r FlagRule) Evaluate(answers []models.Answer) *models.RedFlag {
	for _, a := range answers {
		if a.QuestionID != r.QuestionID {
			continue
		}
		for _, v := range r.Values {
			if a.Value == v {
				return &models.RedFlag{
					Severity: r.Severity,
					Category: r.Category,
					Signal:   r.Signal,
					Guidance: r.Guidance,
				}
			}
		}
	}
	return nil
}

var flagRules = []FlagRule{
	{
		Name:       "consent-dismissal",
		QuestionID: "boundaries-consent",
		Values:     []string{"boundaries-not-important", "flexible"},
		Severity:   models.SeverityCritical,
		Category:   models.FlagConsent,
		Signal:     "They treat your boundaries as negotiable",
		Guidance:   "Boundaries being dismissed early rarely improves with time. Take this seriously.",
	},
	{
		Name:       "unclear-status",
		QuestionID: "honesty-relationship-status",
		Values:     []string{"complicated", "seeing-others"},
		Severity:   models.SeverityHigh,
		Category:   models.FlagHonesty,
		Signal:     "Their relationship status is not clearly single",
		Guidance:   "Ask directly what their situation is before investing further.",
	},
	{
		Name:       "control-preference",
		QuestionID: "control-relationship-dynamics",
		Values:     []string{"prefers-control", "strict-traditional"},
		Severity:   models.SeverityMedium,
		Category:   models.FlagControl,
		Signal:     "They want a dynamic where they hold the control",
		Guidance:   "Notice whether your preferences carry equal weight in decisions.",
	},
	{
		Name:       "explosive-conflict",
		QuestionID: "emotional-conflict-style",
		Values:     []string{"explosive"},
		Severity:   models.SeverityMedium,
		Category:   models.FlagEmotional,
		Signal:     "Disagreements escalate into explosive conflict",
		Guidance:   "Watch how they repair after a blow-up, not just the blow-up itself.",
	},
	{
		Name:       "blames-all-exes",
		QuestionID: "trauma-past-relationships",
		Values:     []string{"all-their-fault"},
		Severity:   models.SeverityHigh,
		Category:   models.FlagTrauma,
		Signal:     "Every past relationship failure is someone else's fault",
		Guidance:   "A pattern of zero accountability tends to repeat with new partners.",
	},
	{
		Name:       "money-avoidance",
		QuestionID: "financial-approach",
		Values:     []string{"avoid-discussing"},
		Severity:   models.SeverityMedium,
		Category:   models.FlagFinancial,
		Signal:     "They refuse to discuss money",
		Guidance:   "Financial avoidance becomes a bigger issue as commitment deepens.",
	},
	{
		Name:       "anger-volatility",
		QuestionID: "safety-anger-management",
		Values:     []string{"often-lose-control", "physical-expression"},
		Severity:   models.SeverityCritical,
		Category:   models.FlagSafety,
		Signal:     "Their anger turns volatile or physical",
		Guidance:   "Physical expressions of anger are a safety concern. Trust your instincts and reach out to someone you trust.",
	},
}

// DetectRedFlags runs every rule over the full answer set and collects the
// flags that fire, in rule-declaration order.
func DetectRedFlags(answers []models.Answer) []models.RedFlag {
	var flags []models.RedFlag
	for _, rule := range flagRules {
		if flag := rule.Evaluate(answers); flag != nil {
			flags = append(flags, *flag)
		}
	}
	return flags
}

// Rules exposes the rule list for inspection (admin/debug surfaces)
func Rules() []FlagRule {
	out := make([]FlagRule, len(flagRules))
	copy(out, flagRules)
	return out
}
