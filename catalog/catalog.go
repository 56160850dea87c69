// Package catalog holds the fixed, versioned question list and tier filtering.
// The catalog is pure data loaded once at process start; the scoring engine
// consults it to resolve category and weight metadata for sparse answers.
package catalog

import (
	"strings"

	"heartwise/models"
)

// Version identifies the catalog revision shipped with this build
const Version = "2024.2"

// QuestionsForTier returns the questions unlocked at the given tier.
// Tiers are cumulative: premium includes free, exclusive includes both.
// Unknown tiers yield only the free set.
func QuestionsForTier(tier models.Tier) []models.Question {
	if tier.Rank() < 0 {
		tier = models.TierFree
	}
	out := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if tier.Includes(q.Tier) {
			out = append(out, q)
		}
	}
	return out
}

// CountForTier returns how many questions a tier unlocks
func CountForTier(tier models.Tier) int {
	return len(QuestionsForTier(tier))
}

// Lookup returns the question with the given ID, if it exists
func Lookup(id string) (models.Question, bool) {
	q, ok := byID[id]
	return q, ok
}

// OptionWeight resolves the weight of a value on a question. Unknown
// questions or values resolve to the neutral midpoint so scoring stays
// total over any input.
func OptionWeight(questionID, value string) int {
	q, ok := byID[questionID]
	if !ok {
		return 50
	}
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Weight
		}
	}
	return 50
}

// CategoryOf derives an answer's category: the question ID prefix before the
// first '-', then the answer's own category field, then "general".
func CategoryOf(a models.Answer) string {
	if i := strings.Index(a.QuestionID, "-"); i > 0 {
		return a.QuestionID[:i]
	}
	if a.Category != "" {
		return a.Category
	}
	return "general"
}

// QuestionText returns the catalog text for a question ID, falling back to
// the ID itself so keyword heuristics still have something to match on.
func QuestionText(id string) string {
	if q, ok := byID[id]; ok {
		return q.Text
	}
	return id
}

var byID = func() map[string]models.Question {
	m := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m
}()
