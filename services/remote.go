package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"heartwise/catalog"
	"heartwise/localscore"
	"heartwise/models"
)

// remoteVerdict is the JSON shape the remote scorer is asked to return
type remoteVerdict struct {
	Score    int      `json:"score"`
	Category string   `json:"category"`
	Insights []string `json:"insights"`
}

// formatAnswers renders the answer set as a transcript for the prompt
func formatAnswers(answers []models.Answer) string {
	var sb strings.Builder
	for _, a := range answers {
		sb.WriteString(fmt.Sprintf("- [%s] %s -> %s\n", catalog.CategoryOf(a), catalog.QuestionText(a.QuestionID), a.Value))
	}
	return sb.String()
}

func formatProfile(profile models.UserProfile) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Age: %d, dating goal: %s\n", profile.Age, profile.DatingGoal))
	if profile.Bio != "" {
		sb.WriteString("Bio: " + profile.Bio + "\n")
	}
	for _, v := range profile.Values {
		sb.WriteString(fmt.Sprintf("Declared priority (%s, %s): %s\n", v.Category, v.Importance, v.Statement))
	}
	return sb.String()
}

func formatNotes(notes *models.ReflectionNotes) string {
	if notes == nil {
		return ""
	}
	var sb strings.Builder
	add := func(label, text string) {
		if strings.TrimSpace(text) != "" {
			sb.WriteString(label + ": " + text + "\n")
		}
	}
	add("Best moment", notes.BestMoment)
	add("Worst moment", notes.WorstMoment)
	add("Vulnerable moment", notes.VulnerableMoment)
	add("Shared values", notes.SharedValues)
	add("Gut feeling", notes.GutFeeling)
	return sb.String()
}

// RemoteScore asks the Gemini scorer for a compatibility analysis. The reply
// must be strict JSON; anything unparseable is treated as a failure so the
// caller can fall back to the local scorer.
func RemoteScore(ctx context.Context, answers []models.Answer, profile models.UserProfile, notes *models.ReflectionNotes) (*models.AIAnalysis, error) {
	prompt := fmt.Sprintf(
		`Act as a relationship compatibility analyst. A user reflected on someone they are dating
by rating observations about them. Ratings run strong-match > good > neutral > yellow-flag > red-flag.

User profile:
%s
Rated observations:
%s
Reflection notes:
%s
Return STRICT JSON only, no extra text, in this exact shape:
{
  "score": <integer 0-100>,
  "category": "<one of: high-potential, worth-exploring, mixed-signals, caution, high-risk>",
  "insights": ["<two to four short, concrete observations about this connection>"]
}
Score honestly: red flags on consent, safety or honesty must pull the score down hard.`,
		formatProfile(profile), formatAnswers(answers), formatNotes(notes))

	text, err := generateDefaultModelText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("remote scorer call failed: %w", err)
	}

	var verdict remoteVerdict
	if err := json.Unmarshal([]byte(text), &verdict); err != nil {
		return nil, fmt.Errorf("remote scorer returned malformed JSON: %w", err)
	}
	if verdict.Score < 0 || verdict.Score > 100 {
		return nil, fmt.Errorf("remote scorer returned out-of-range score %d", verdict.Score)
	}

	category := models.LocalCategory(verdict.Category)
	switch category {
	case models.LocalHighPotential, models.LocalWorthExploring, models.LocalMixedSignals,
		models.LocalCaution, models.LocalHighRisk:
	default:
		// Unknown label: re-derive from the score instead of failing the call
		category = localscore.CategoryFor(verdict.Score)
	}

	return &models.AIAnalysis{
		Score:    verdict.Score,
		Category: category,
		Source:   "remote",
		Insights: verdict.Insights,
	}, nil
}
