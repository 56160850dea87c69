package localscore

import (
	"fmt"
	"strings"

	"heartwise/catalog"
	"heartwise/models"
)

// Mismatch is one advisory gap between the answers and the asking user's
// stated profile. Mismatches never block or cap scoring.
type Mismatch struct {
	Description string          `json:"description"`
	Severity    models.Severity `json:"severity"`
}

// DetectMismatches compares the answer set against the profile on four axes:
// goal alignment, values alignment, age-appropriate maturity expectation and
// bio-keyword alignment. It returns the mismatches plus free-text
// recommendations.
func DetectMismatches(answers []models.Answer, profile models.UserProfile) ([]Mismatch, []string) {
	var mismatches []Mismatch
	var recommendations []string

	// Goal alignment: a serious goal with red-flagged goal answers is the
	// strongest mismatch signal.
	goalAnswers := answersMatching(answers, goalKeywords)
	if profile.DatingGoal == "marriage" || profile.DatingGoal == "long-term" {
		for _, a := range goalAnswers {
			if a.Value == "red-flag" {
				mismatches = append(mismatches, Mismatch{
					Description: fmt.Sprintf("You want %s but their answers on goals point the other way", profile.DatingGoal),
					Severity:    models.SeverityHigh,
				})
				recommendations = append(recommendations, "Have a direct conversation about where this is heading before investing more.")
				break
			}
		}
	}

	// Values alignment, including self-declared priorities. More than half
	// of value answers at yellow/red is a medium mismatch.
	valueAnswers := answersMatching(answers, valuesKeywords)
	if len(valueAnswers) > 0 {
		flagged := 0
		for _, a := range valueAnswers {
			if a.Value == "yellow-flag" || a.Value == "red-flag" {
				flagged++
			}
		}
		if flagged*2 > len(valueAnswers) {
			mismatches = append(mismatches, Mismatch{
				Description: "More than half of the value-related answers raised concerns",
				Severity:    models.SeverityMedium,
			})
			recommendations = append(recommendations, "Values gaps tend to widen over time; name them explicitly now.")
		}
		for _, v := range profile.Values {
			if v.Importance != models.ImportanceDealbreaker {
				continue
			}
			for _, a := range valueAnswers {
				if a.Value == "red-flag" && catalog.CategoryOf(a) == v.Category {
					mismatches = append(mismatches, Mismatch{
						Description: fmt.Sprintf("A red flag touches a dealbreaker you declared: %s", v.Statement),
						Severity:    models.SeverityHigh,
					})
					break
				}
			}
		}
	}

	// Age-appropriate maturity expectation
	if profile.Age >= 35 {
		maturityAnswers := answersMatching(answers, maturityKeywords)
		flagged := 0
		for _, a := range maturityAnswers {
			if a.Value == "yellow-flag" || a.Value == "red-flag" {
				flagged++
			}
		}
		if flagged >= 2 {
			mismatches = append(mismatches, Mismatch{
				Description: "At your stage, repeated maturity concerns deserve extra weight",
				Severity:    models.SeverityMedium,
			})
			recommendations = append(recommendations, "Watch how they handle responsibility over the next few weeks.")
		}
	}

	// Bio-keyword alignment
	bio := strings.ToLower(profile.Bio)
	for _, kw := range []string{"family", "career", "travel"} {
		if !strings.Contains(bio, kw) {
			continue
		}
		for _, a := range valueAnswers {
			if a.Value == "red-flag" {
				mismatches = append(mismatches, Mismatch{
					Description: fmt.Sprintf("Your bio highlights %s but their values answers clash with it", kw),
					Severity:    models.SeverityLow,
				})
				break
			}
		}
	}

	return mismatches, recommendations
}
