// Package scoring implements the primary compatibility verdict: category
// aggregation, red-flag detection, score capping and band classification.
// Everything here is pure and synchronous; given the same answers the same
// verdict comes back every time.
package scoring

import (
	"math"
	"sort"

	"heartwise/catalog"
	"heartwise/models"
)

var categoryLabels = map[string]string{
	"boundaries":    "Boundaries & Consent",
	"honesty":       "Honesty & Transparency",
	"control":       "Power Dynamics",
	"emotional":     "Emotional Connection",
	"trauma":        "Past & Healing",
	"financial":     "Money & Planning",
	"safety":        "Safety",
	"communication": "Communication",
	"values":        "Values & Priorities",
	"lifestyle":     "Lifestyle Fit",
	"future":        "Future & Goals",
	"commitment":    "Commitment",
	"maturity":      "Maturity",
	"interest":      "Mutual Interest",
	"fun":           "Fun & Play",
	"general":       "General",
}

// CategoryLabel maps a category key to its display name
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// AggregateCategories groups answers by category and averages their weights.
// The result is sorted by score descending. Empty input yields an empty slice.
func AggregateCategories(answers []models.Answer) []models.CategoryScore {
	sums := make(map[string]int)
	counts := make(map[string]int)
	order := make([]string, 0, len(answers))

	for _, a := range answers {
		cat := catalog.CategoryOf(a)
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
		}
		sums[cat] += resolveWeight(a)
		counts[cat]++
	}

	scores := make([]models.CategoryScore, 0, len(order))
	for _, cat := range order {
		avg := int(math.Round(float64(sums[cat]) / float64(counts[cat])))
		scores = append(scores, models.CategoryScore{
			Category: cat,
			Score:    avg,
			Label:    CategoryLabel(cat),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// RawScore is the mean of per-answer weights, rounded. Empty input scores 0.
func RawScore(answers []models.Answer) int {
	if len(answers) == 0 {
		return 0
	}
	sum := 0
	for _, a := range answers {
		sum += resolveWeight(a)
	}
	return int(math.Round(float64(sum) / float64(len(answers))))
}

// resolveWeight fills in an omitted weight from the catalog. A zero weight
// means the client left it out; the catalog resolves it, with the neutral
// midpoint for unknown questions or values, so sparse answers stay neutral
// instead of dragging the mean to the floor.
func resolveWeight(a models.Answer) int {
	if a.Weight == 0 {
		return catalog.OptionWeight(a.QuestionID, a.Value)
	}
	return clampWeight(a.Weight)
}

func clampWeight(w int) int {
	if w < 0 {
		return 0
	}
	if w > 100 {
		return 100
	}
	return w
}
