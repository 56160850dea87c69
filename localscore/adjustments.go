package localscore

import (
	"math"
	"strings"

	"heartwise/models"
)

// scoreContext carries everything an adjustment may consult. Adjustments are
// computed against the base score, not a running total; the final score is
// base plus the sum of all deltas.
type scoreContext struct {
	answers  []models.Answer
	profile  models.UserProfile
	notes    *models.ReflectionNotes
	base     int
	findings []Finding
	store    PatternStore
}

// adjustment is one named, independent scoring step. New steps are appended
// to the list; existing ones stay untouched.
type adjustment struct {
	name  string
	apply func(*scoreContext) int
}

var adjustments = []adjustment{
	{"goal-alignment", goalAlignment},
	{"age-maturity", ageMaturity},
	{"bio-keywords", bioKeywords},
	{"inconsistency-penalty", inconsistencyPenalty},
	{"reflection-notes", reflectionNotes},
	{"pattern-nudge", patternNudge},
}

// goalAlignment rewards or penalizes based on how goal-related answers sit
// against the user's declared dating goal.
func goalAlignment(sctx *scoreContext) int {
	var goalAnswers []models.Answer
	for _, a := range sctx.answers {
		if matchesAny(questionContext(a), goalKeywords) {
			goalAnswers = append(goalAnswers, a)
		}
	}
	if len(goalAnswers) == 0 {
		return 0
	}

	anyRed, anyStrong, allStrong := false, false, true
	for _, a := range goalAnswers {
		switch a.Value {
		case "red-flag":
			anyRed = true
			allStrong = false
		case "strong-match":
			anyStrong = true
		default:
			allStrong = false
		}
	}

	switch sctx.profile.DatingGoal {
	case "marriage":
		if anyRed {
			return -12
		}
		if anyStrong {
			return +5
		}
	case "casual":
		// every goal answer a strong match reads as a seriousness mismatch
		if allStrong {
			return -3
		}
	}
	return 0
}

// ageMaturity sums per-answer nudges on maturity questions for profiles 35+
func ageMaturity(sctx *scoreContext) int {
	if sctx.profile.Age < 35 {
		return 0
	}
	delta := 0
	for _, a := range sctx.answers {
		if !matchesAny(questionContext(a), maturityKeywords) {
			continue
		}
		switch a.Value {
		case "red-flag", "yellow-flag":
			delta -= 2
		case "strong-match":
			delta += 2
		}
	}
	return delta
}

// bioKeywords nudges values answers when the bio signals family, career or
// travel priorities
func bioKeywords(sctx *scoreContext) int {
	bio := strings.ToLower(sctx.profile.Bio)
	if !strings.Contains(bio, "family") && !strings.Contains(bio, "career") && !strings.Contains(bio, "travel") {
		return 0
	}
	delta := 0
	for _, a := range sctx.answers {
		if !matchesAny(questionContext(a), valuesKeywords) {
			continue
		}
		switch a.Value {
		case "strong-match":
			delta++
		case "red-flag":
			delta -= 3
		}
	}
	return delta
}

// inconsistencyPenalty charges for contradictory answers within a topic
func inconsistencyPenalty(sctx *scoreContext) int {
	delta := 0
	for _, f := range sctx.findings {
		switch f.Severity {
		case models.SeverityHigh:
			delta -= 10
		case models.SeverityMedium:
			delta -= 5
		}
	}
	return delta
}

// notePresent counts a notes field once it carries real content
func notePresent(field string) bool {
	return len(strings.TrimSpace(field)) > 30
}

// reflectionNotes reads the journaling fields as weak signals
func reflectionNotes(sctx *scoreContext) int {
	if sctx.notes == nil {
		return 0
	}
	good := notePresent(sctx.notes.BestMoment)
	worst := notePresent(sctx.notes.WorstMoment)
	vulnerable := notePresent(sctx.notes.VulnerableMoment)

	delta := 0
	switch {
	case good && worst:
		delta -= 3
	case good:
		delta += 5
	case worst:
		delta -= 8
	}
	if vulnerable && sctx.base >= 70 {
		delta += 3
	}
	return delta
}

// patternNudge pulls the score toward previously observed similar outcomes.
// This is the one non-deterministic step: it reads process-wide store state.
func patternNudge(sctx *scoreContext) int {
	if sctx.store == nil {
		return 0
	}
	similar := sctx.store.Query(sctx.base, CategoryFor(sctx.base))
	if len(similar) == 0 {
		return 0
	}
	sum := 0
	for _, entry := range similar {
		sum += entry.Score
	}
	avg := float64(sum) / float64(len(similar))
	return int(math.Round((avg - float64(sctx.base)) * 0.3))
}
