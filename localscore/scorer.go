// Package localscore is the self-contained fallback scoring path, used when
// the remote scorer cannot be reached. It re-derives a weighted score from
// answers, the asking user's profile and reflection notes, then applies a
// sequence of bounded adjustments. Unlike the primary path it scores rating
// values (strong-match .. red-flag), not option weights.
package localscore

import (
	"math"
	"strings"

	"heartwise/catalog"
	"heartwise/models"
)

// Fixed rating -> score table. Unrecognized values rate neutral so scoring
// stays total over any input.
var ratingScores = map[string]int{
	"strong-match": 100,
	"good":         75,
	"neutral":      50,
	"yellow-flag":  25,
	"red-flag":     0,
}

func ratingScore(value string) int {
	if s, ok := ratingScores[value]; ok {
		return s
	}
	return 50
}

// Keyword groups driving profile-aware weighting. Matched against the
// question text plus derived category, lowercased.
var (
	seriousKeywords  = []string{"values", "future", "goal", "emotion", "commitment"}
	casualKeywords   = []string{"communication", "lifestyle", "interest"}
	maturityKeywords = []string{"maturity", "accountab", "responsib"}
	funCommKeywords  = []string{"fun", "communicat"}
	goalKeywords     = []string{"goal", "future", "relationship", "commitment"}
	valuesKeywords   = []string{"values", "priorit"}
)

func questionContext(a models.Answer) string {
	return strings.ToLower(catalog.QuestionText(a.QuestionID) + " " + catalog.CategoryOf(a))
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// answerMultiplier computes the profile-driven weight for one answer.
// Multipliers compose multiplicatively when several apply.
func answerMultiplier(a models.Answer, profile models.UserProfile) float64 {
	weight := 1.0
	text := questionContext(a)

	switch profile.DatingGoal {
	case "marriage", "long-term":
		if matchesAny(text, seriousKeywords) {
			weight *= 1.5
		}
	case "casual":
		if matchesAny(text, casualKeywords) {
			weight *= 1.3
		}
	}

	if profile.Age >= 30 && matchesAny(text, maturityKeywords) {
		weight *= 1.2
	} else if profile.Age > 0 && profile.Age < 25 && matchesAny(text, funCommKeywords) {
		weight *= 1.1
	}

	category := catalog.CategoryOf(a)
	for _, v := range profile.Values {
		if v.Category != category {
			continue
		}
		if v.Importance == models.ImportanceHigh || v.Importance == models.ImportanceDealbreaker {
			weight *= 1.3
			break
		}
	}

	return weight
}

// baseScore is the profile-weighted mean of rating scores. An empty answer
// set rates neutral.
func baseScore(answers []models.Answer, profile models.UserProfile) int {
	if len(answers) == 0 {
		return 50
	}
	var weightedSum, weightSum float64
	for _, a := range answers {
		w := answerMultiplier(a, profile)
		weightedSum += float64(ratingScore(a.Value)) * w
		weightSum += w
	}
	return int(math.Round(weightedSum / weightSum))
}

// CategoryFor maps a fallback score to its five-level category. This scale
// is distinct from the primary path's bands on purpose.
func CategoryFor(score int) models.LocalCategory {
	switch {
	case score >= 85:
		return models.LocalHighPotential
	case score >= 65:
		return models.LocalWorthExploring
	case score >= 45:
		return models.LocalMixedSignals
	case score >= 25:
		return models.LocalCaution
	default:
		return models.LocalHighRisk
	}
}

// Scorer is the profile-weighted fallback scorer. The pattern store is the
// one mutable dependency; everything else is pure.
type Scorer struct {
	store PatternStore
}

// NewScorer creates a fallback scorer backed by the given pattern store
func NewScorer(store PatternStore) *Scorer {
	return &Scorer{store: store}
}

// Score runs the full fallback path: base weighting followed by the ordered
// adjustment sequence, clamped to 0-100.
func (s *Scorer) Score(answers []models.Answer, profile models.UserProfile, notes *models.ReflectionNotes) models.LocalScore {
	base := baseScore(answers, profile)

	sctx := &scoreContext{
		answers:  answers,
		profile:  profile,
		notes:    notes,
		base:     base,
		findings: DetectInconsistencies(answers),
		store:    s.store,
	}

	total := base
	for _, adj := range adjustments {
		total += adj.apply(sctx)
	}

	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return models.LocalScore{Score: total, Category: CategoryFor(total)}
}
