package scoring

import "heartwise/models"

// Dedupe keeps the last answer per question ID, preserving the order of last
// occurrence. Duplicate submissions are a client bug; last-write-wins keeps
// scoring total instead of rejecting the call.
func Dedupe(answers []models.Answer) []models.Answer {
	last := make(map[string]int, len(answers))
	for i, a := range answers {
		last[a.QuestionID] = i
	}
	out := make([]models.Answer, 0, len(last))
	for i, a := range answers {
		if last[a.QuestionID] == i {
			out = append(out, a)
		}
	}
	return out
}

// Evaluate runs the full primary scoring path over an answer set and builds
// the compatibility verdict. It is total: malformed answers degrade to
// neutral defaults and an empty set yields a deterministic low-compatibility
// result rather than an error.
func Evaluate(answers []models.Answer) models.CompatibilityResult {
	answers = Dedupe(answers)

	categoryScores := AggregateCategories(answers)
	flags := DetectRedFlags(answers)

	raw := RawScore(answers)
	capped := CapScore(raw, flags)

	band, bandLabel, bandDescription := ClassifyBand(capped)
	action, actionLabel, actionGuidance := RecommendAction(capped, flags)
	strengths, awareness := ExtractHighlights(categoryScores)

	if flags == nil {
		flags = []models.RedFlag{}
	}
	if awareness == nil {
		awareness = []string{}
	}

	return models.CompatibilityResult{
		OverallScore:      capped,
		Band:              band,
		BandLabel:         bandLabel,
		BandDescription:   bandDescription,
		CategoryScores:    categoryScores,
		Strengths:         strengths,
		AwarenessAreas:    awareness,
		RedFlags:          flags,
		RecommendedAction: action,
		ActionLabel:       actionLabel,
		ActionGuidance:    actionGuidance,
	}
}
