package services

import (
	"context"
	"log"
	"time"

	"heartwise/config"
	"heartwise/db"
	"heartwise/localscore"
	"heartwise/models"
	"heartwise/scoring"
)

// The pattern store lives for the process lifetime; see localscore.PatternStore
// for the interface a durable backend would implement.
var (
	patternStore localscore.PatternStore = localscore.NewMemoryPatternStore()
	localScorer                          = localscore.NewScorer(patternStore)
)

// InitScoringService initializes the Gemini client using the API key from
// the config
func InitScoringService(cfg *config.Config) {
	var err error
	geminiClient, err = initGemini(cfg.Gemini.ApiKey)
	if err != nil {
		panic("Failed to initialize Gemini client: " + err.Error())
	}
	if cfg.Gemini.Model != "" {
		geminiModel = cfg.Gemini.Model
	}
}

// mismatchDescriptions flattens detector output for the analysis payload
func mismatchDescriptions(mismatches []localscore.Mismatch, recommendations []string) []string {
	out := make([]string, 0, len(mismatches)+len(recommendations))
	for _, m := range mismatches {
		out = append(out, m.Description)
	}
	out = append(out, recommendations...)
	return out
}

// Analyze produces the AI enrichment for an assessment. The remote scorer is
// preferred; any failure switches to the local profile-weighted path. Either
// way the profile-mismatch findings ride along as advisory text.
func Analyze(ctx context.Context, answers []models.Answer, profile models.UserProfile, notes *models.ReflectionNotes) *models.AIAnalysis {
	mismatches, recommendations := localscore.DetectMismatches(answers, profile)

	analysis, err := RemoteScore(ctx, answers, profile, notes)
	if err != nil {
		log.Printf("Remote scorer unavailable, using local fallback: %v", err)
		local := localScorer.Score(answers, profile, notes)
		analysis = &models.AIAnalysis{
			Score:    local.Score,
			Category: local.Category,
			Source:   "local",
		}
	}
	analysis.Mismatches = mismatchDescriptions(mismatches, recommendations)

	patternStore.Record(localscore.Interaction{
		Score:     analysis.Score,
		Category:  analysis.Category,
		Goal:      profile.DatingGoal,
		Age:       profile.Age,
		Timestamp: time.Now(),
	})

	return analysis
}

// ScoreAssessment runs the full scoring flow for a user: the deterministic
// verdict, the AI analysis (remote or fallback), and persistence.
func ScoreAssessment(ctx context.Context, email string, answers []models.Answer, profile models.UserProfile, notes *models.ReflectionNotes) (*models.Assessment, error) {
	result := scoring.Evaluate(answers)
	analysis := Analyze(ctx, answers, profile, notes)

	assessment := &models.Assessment{
		Email:     email,
		Answers:   answers,
		Notes:     notes,
		Result:    result,
		Analysis:  analysis,
		CreatedAt: time.Now().Unix(),
	}

	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	id, err := db.SaveAssessment(dbCtx, assessment)
	if err != nil {
		// Scoring succeeded; persistence failure shouldn't eat the verdict
		log.Printf("Failed to persist assessment for %s: %v", email, err)
		return assessment, nil
	}
	log.Printf("Saved assessment %s for %s (score %d, band %s, analysis %s)",
		id, email, result.OverallScore, result.Band, analysis.Source)
	return assessment, nil
}

// AssessmentHistory returns the user's recent assessments
func AssessmentHistory(ctx context.Context, email string) ([]models.Assessment, error) {
	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.ListAssessments(dbCtx, email, 20)
}

// feedbackInteraction ties outcome feedback back to the verdict it judges.
// Without the scored assessment the interaction would carry no score or
// category and Query could never surface it for the pattern nudge.
func feedbackInteraction(assessment *models.Assessment, feedback models.OutcomeFeedback) localscore.Interaction {
	interaction := localscore.Interaction{
		Outcome:   feedback.Outcome,
		Feedback:  feedback.Comment,
		Timestamp: time.Now(),
	}
	if assessment != nil && assessment.Analysis != nil {
		interaction.Score = assessment.Analysis.Score
		interaction.Category = assessment.Analysis.Category
	}
	return interaction
}

// SubmitFeedback stamps the stored assessment with the outcome and folds the
// feedback into the pattern store against the original verdict. Store-side
// problems are logged and swallowed; the pattern memory is advisory and must
// never fail the caller.
func SubmitFeedback(ctx context.Context, email string, feedback models.OutcomeFeedback) {
	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	assessment, err := db.UpdateAssessmentOutcome(dbCtx, email, feedback.AssessmentID, feedback.Outcome)
	if err != nil {
		log.Printf("Failed to record outcome for %s: %v", email, err)
	}

	patternStore.Record(feedbackInteraction(assessment, feedback))
	patternStore.UpdatePattern("verdict-accuracy", "User-reported accuracy of compatibility verdicts", feedback.Accurate)
}
