package localscore

import (
	"testing"

	"heartwise/models"
)

// Question IDs whose catalog text carries no goal, values, maturity or
// emotion keywords, so only the rating values drive the score.
var neutralIDs = []string{
	"safety-anger-management",
	"lifestyle-social-energy",
	"financial-approach",
	"communication-daily-checkins",
	"lifestyle-habits-alignment",
	"interest-curiosity-about-you",
}

func neutralAnswers(value string) []models.Answer {
	out := make([]models.Answer, len(neutralIDs))
	for i, id := range neutralIDs {
		out[i] = models.Answer{QuestionID: id, Value: value}
	}
	return out
}

func TestRatingScoreTable(t *testing.T) {
	tests := []struct {
		value string
		score int
	}{
		{"strong-match", 100},
		{"good", 75},
		{"neutral", 50},
		{"yellow-flag", 25},
		{"red-flag", 0},
		{"whatever-else", 50},
	}
	for _, tt := range tests {
		if got := ratingScore(tt.value); got != tt.score {
			t.Errorf("ratingScore(%q): expected %d, got %d", tt.value, tt.score, got)
		}
	}
}

func TestEmptyAnswersRateNeutral(t *testing.T) {
	scorer := NewScorer(NewMemoryPatternStore())
	result := scorer.Score(nil, models.UserProfile{}, nil)
	if result.Score != 50 {
		t.Errorf("Expected neutral 50 for empty answers, got %d", result.Score)
	}
	if result.Category != models.LocalMixedSignals {
		t.Errorf("Expected mixed-signals, got %s", result.Category)
	}
}

func TestFlatGoodAnswersScoreSeventyFive(t *testing.T) {
	scorer := NewScorer(NewMemoryPatternStore())
	result := scorer.Score(neutralAnswers("good"), models.UserProfile{Age: 28}, nil)
	if result.Score != 75 {
		t.Errorf("Expected 75 with no adjustments in play, got %d", result.Score)
	}
	if result.Category != models.LocalWorthExploring {
		t.Errorf("Expected worth-exploring, got %s", result.Category)
	}
}

func TestMarriageGoalRedFlagLandsAtSixtyEight(t *testing.T) {
	// Six strong matches on neutral questions plus one red-flagged goal
	// question give a weighted base of exactly 80; the goal-alignment
	// penalty then takes it to 68.
	answers := append(neutralAnswers("strong-match"),
		models.Answer{QuestionID: "future-shared-goals", Value: "red-flag"})
	profile := models.UserProfile{Age: 28, DatingGoal: "marriage"}

	scorer := NewScorer(NewMemoryPatternStore())
	result := scorer.Score(answers, profile, nil)
	if result.Score != 68 {
		t.Errorf("Expected 68, got %d", result.Score)
	}
	if result.Category != models.LocalWorthExploring {
		t.Errorf("Expected worth-exploring, got %s", result.Category)
	}
}

func TestSeriousGoalWeightsSeriousQuestionsHeavier(t *testing.T) {
	// A red flag on a values question should hurt a marriage-minded user
	// more than someone with no declared goal.
	answers := append(neutralAnswers("strong-match"),
		models.Answer{QuestionID: "values-family-importance", Value: "red-flag"})

	scorer := NewScorer(NewMemoryPatternStore())
	without := scorer.Score(answers, models.UserProfile{Age: 28}, nil)
	with := scorer.Score(answers, models.UserProfile{Age: 28, DatingGoal: "marriage"}, nil)

	if with.Score >= without.Score {
		t.Errorf("Marriage profile should score lower here: %d vs %d", with.Score, without.Score)
	}
}

func TestCategoryForThresholds(t *testing.T) {
	tests := []struct {
		score    int
		category models.LocalCategory
	}{
		{100, models.LocalHighPotential},
		{85, models.LocalHighPotential},
		{84, models.LocalWorthExploring},
		{65, models.LocalWorthExploring},
		{64, models.LocalMixedSignals},
		{45, models.LocalMixedSignals},
		{44, models.LocalCaution},
		{25, models.LocalCaution},
		{24, models.LocalHighRisk},
		{0, models.LocalHighRisk},
	}
	for _, tt := range tests {
		if got := CategoryFor(tt.score); got != tt.category {
			t.Errorf("CategoryFor(%d): expected %s, got %s", tt.score, tt.category, got)
		}
	}
}

func TestGoalAlignmentAdjustment(t *testing.T) {
	goalRed := []models.Answer{{QuestionID: "future-shared-goals", Value: "red-flag"}}
	goalStrong := []models.Answer{{QuestionID: "future-shared-goals", Value: "strong-match"}}

	tests := []struct {
		name    string
		answers []models.Answer
		goal    string
		delta   int
	}{
		{"marriage with red flag", goalRed, "marriage", -12},
		{"marriage with strong match", goalStrong, "marriage", +5},
		{"casual with all strong", goalStrong, "casual", -3},
		{"no declared goal", goalRed, "", 0},
		{"no goal answers", neutralAnswers("red-flag"), "marriage", 0},
	}
	for _, tt := range tests {
		sctx := &scoreContext{answers: tt.answers, profile: models.UserProfile{DatingGoal: tt.goal}, base: 80}
		if got := goalAlignment(sctx); got != tt.delta {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.delta, got)
		}
	}
}

func TestAgeMaturityAdjustment(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "maturity-accountability", Value: "red-flag"},
		{QuestionID: "maturity-patience", Value: "strong-match"},
		{QuestionID: "lifestyle-social-energy", Value: "red-flag"},
	}

	young := &scoreContext{answers: answers, profile: models.UserProfile{Age: 30}}
	if got := ageMaturity(young); got != 0 {
		t.Errorf("Under 35 should be exempt, got %d", got)
	}

	older := &scoreContext{answers: answers, profile: models.UserProfile{Age: 40}}
	if got := ageMaturity(older); got != 0 {
		t.Errorf("Expected -2 and +2 to cancel, got %d", got)
	}

	flaggedOnly := &scoreContext{
		answers: answers[:1],
		profile: models.UserProfile{Age: 40},
	}
	if got := ageMaturity(flaggedOnly); got != -2 {
		t.Errorf("Expected -2 for one flagged maturity answer, got %d", got)
	}
}

func TestBioKeywordsAdjustment(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "values-family-importance", Value: "strong-match"},
		{QuestionID: "values-spending-priorities", Value: "red-flag"},
	}

	plain := &scoreContext{answers: answers, profile: models.UserProfile{Bio: "I like hiking"}}
	if got := bioKeywords(plain); got != 0 {
		t.Errorf("Bio without trigger keywords should not adjust, got %d", got)
	}

	family := &scoreContext{answers: answers, profile: models.UserProfile{Bio: "Family means everything to me"}}
	if got := bioKeywords(family); got != -2 {
		t.Errorf("Expected +1 -3 = -2, got %d", got)
	}
}

func TestReflectionNotesAdjustment(t *testing.T) {
	long := "This moment genuinely mattered to me and I keep thinking about it."
	short := "It was fine."

	tests := []struct {
		name  string
		notes *models.ReflectionNotes
		base  int
		delta int
	}{
		{"no notes", nil, 80, 0},
		{"good moment only", &models.ReflectionNotes{BestMoment: long}, 60, +5},
		{"worst moment only", &models.ReflectionNotes{WorstMoment: long}, 60, -8},
		{"both present", &models.ReflectionNotes{BestMoment: long, WorstMoment: long}, 60, -3},
		{"short text does not count", &models.ReflectionNotes{BestMoment: short}, 60, 0},
		{"vulnerability bonus needs high base", &models.ReflectionNotes{VulnerableMoment: long}, 60, 0},
		{"vulnerability bonus at high base", &models.ReflectionNotes{VulnerableMoment: long}, 75, +3},
		{"good moment plus vulnerability", &models.ReflectionNotes{BestMoment: long, VulnerableMoment: long}, 80, +8},
	}
	for _, tt := range tests {
		sctx := &scoreContext{notes: tt.notes, base: tt.base}
		if got := reflectionNotes(sctx); got != tt.delta {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.delta, got)
		}
	}
}

func TestPatternNudgePullsTowardSimilarOutcomes(t *testing.T) {
	store := NewMemoryPatternStore()
	store.Record(Interaction{Score: 80, Category: models.LocalWorthExploring})
	store.Record(Interaction{Score: 80, Category: models.LocalWorthExploring})

	scorer := NewScorer(store)
	result := scorer.Score(neutralAnswers("good"), models.UserProfile{Age: 28}, nil)

	// Base 75, similar history averages 80: nudge is round(5 * 0.3) = 2
	if result.Score != 77 {
		t.Errorf("Expected 77 after pattern nudge, got %d", result.Score)
	}
}

func TestScoreClampsToRange(t *testing.T) {
	scorer := NewScorer(NewMemoryPatternStore())

	low := scorer.Score(
		append(neutralAnswers("red-flag"),
			models.Answer{QuestionID: "future-shared-goals", Value: "red-flag"}),
		models.UserProfile{Age: 40, DatingGoal: "marriage"},
		&models.ReflectionNotes{WorstMoment: "The whole evening left me feeling small and second-guessing myself."},
	)
	if low.Score < 0 || low.Score > 100 {
		t.Errorf("Score out of range: %d", low.Score)
	}
	if low.Category != models.LocalHighRisk {
		t.Errorf("Expected high-risk, got %s", low.Category)
	}

	high := scorer.Score(
		append(neutralAnswers("strong-match"),
			models.Answer{QuestionID: "future-shared-goals", Value: "strong-match"}),
		models.UserProfile{Age: 28, DatingGoal: "marriage"},
		nil,
	)
	if high.Score < 0 || high.Score > 100 {
		t.Errorf("Score out of range: %d", high.Score)
	}
	if high.Category != models.LocalHighPotential {
		t.Errorf("Expected high-potential, got %s", high.Category)
	}
}
