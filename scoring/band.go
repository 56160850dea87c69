package scoring

import "heartwise/models"

type bandInfo struct {
	band        models.Band
	label       string
	description string
}

// Inclusive lower-bound thresholds, checked top down
var bands = []struct {
	min  int
	info bandInfo
}{
	{80, bandInfo{models.BandStrongAlignment, "Strong Alignment", "Your answers point to a genuinely compatible connection across the areas that matter."}},
	{65, bandInfo{models.BandPromising, "Promising", "There is real potential here, with a few areas worth paying attention to."}},
	{50, bandInfo{models.BandMixedSignals, "Mixed Signals", "Some things line up well and some clearly don't; look closer before deciding."}},
	{35, bandInfo{models.BandCaution, "Proceed with Caution", "Several answers suggest meaningful friction or concern in this connection."}},
	{0, bandInfo{models.BandLowCompatibility, "Low Compatibility", "The pattern in your answers points away from a healthy fit right now."}},
}

// ClassifyBand maps a capped score to its compatibility band
func ClassifyBand(score int) (models.Band, string, string) {
	for _, b := range bands {
		if score >= b.min {
			return b.info.band, b.info.label, b.info.description
		}
	}
	last := bands[len(bands)-1].info
	return last.band, last.label, last.description
}

var actionInfo = map[models.Action]struct {
	label    string
	guidance string
}{
	models.ActionProceed: {
		"Keep Exploring",
		"Nothing concerning surfaced. Keep getting to know each other at your own pace.",
	},
	models.ActionWithAwareness: {
		"Proceed with Awareness",
		"Move forward, but keep the flagged areas in view and see how they evolve.",
	},
	models.ActionPauseReflect: {
		"Pause and Reflect",
		"Before going further, take time to sit with what came up here, ideally with someone you trust.",
	},
}

// RecommendAction picks the next-step recommendation. This is an independent
// axis from the band: a critical flag forces pause-and-reflect regardless of
// score.
func RecommendAction(score int, flags []models.RedFlag) (models.Action, string, string) {
	hasCritical := false
	for _, f := range flags {
		if f.Severity == models.SeverityCritical {
			hasCritical = true
			break
		}
	}

	var action models.Action
	switch {
	case hasCritical || score < 40:
		action = models.ActionPauseReflect
	case len(flags) > 0 || score < 65:
		action = models.ActionWithAwareness
	default:
		action = models.ActionProceed
	}

	info := actionInfo[action]
	return action, info.label, info.guidance
}

// ExtractHighlights picks up to three strength categories (score >= 70,
// highest first) and up to three awareness areas (score < 60, lowest first).
// The two sets are disjoint by construction. When no category qualifies as a
// strength the list still carries a placeholder entry; callers expect a
// non-empty strengths list.
func ExtractHighlights(scores []models.CategoryScore) (strengths, awareness []string) {
	for _, cs := range scores { // already sorted descending
		if cs.Score >= 70 && len(strengths) < 3 {
			strengths = append(strengths, cs.Label)
		}
	}
	for i := len(scores) - 1; i >= 0; i-- {
		if scores[i].Score < 60 && len(awareness) < 3 {
			awareness = append(awareness, scores[i].Label)
		}
	}
	if len(strengths) == 0 {
		strengths = []string{"Not enough data yet - answer more questions for a clearer picture"}
	}
	return strengths, awareness
}
