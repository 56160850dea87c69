package localscore

import (
	"strings"
	"testing"

	"heartwise/models"
)

func hasSeverity(mismatches []Mismatch, severity models.Severity) bool {
	for _, m := range mismatches {
		if m.Severity == severity {
			return true
		}
	}
	return false
}

func TestGoalMismatchForSeriousDaters(t *testing.T) {
	answers := []models.Answer{{QuestionID: "future-shared-goals", Value: "red-flag"}}
	profile := models.UserProfile{DatingGoal: "marriage"}

	mismatches, recommendations := DetectMismatches(answers, profile)
	if !hasSeverity(mismatches, models.SeverityHigh) {
		t.Fatalf("Expected a high mismatch, got %+v", mismatches)
	}
	if len(recommendations) == 0 {
		t.Error("A goal mismatch should come with a recommendation")
	}

	// The same answers raise nothing for a casual dater
	casual, _ := DetectMismatches(answers, models.UserProfile{DatingGoal: "casual"})
	if len(casual) != 0 {
		t.Errorf("Casual profile should not trigger the goal mismatch, got %+v", casual)
	}
}

func TestMajorityFlaggedValuesMismatch(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "values-family-importance", Value: "red-flag"},
		{QuestionID: "values-spending-priorities", Value: "yellow-flag"},
		{QuestionID: "values-alignment-extra", Value: "good"},
	}

	mismatches, _ := DetectMismatches(answers, models.UserProfile{})
	if !hasSeverity(mismatches, models.SeverityMedium) {
		t.Errorf("Two of three flagged value answers should rate medium, got %+v", mismatches)
	}

	// Exactly half flagged is below the threshold
	even := []models.Answer{
		{QuestionID: "values-family-importance", Value: "red-flag"},
		{QuestionID: "values-spending-priorities", Value: "good"},
	}
	mismatches, _ = DetectMismatches(even, models.UserProfile{})
	if hasSeverity(mismatches, models.SeverityMedium) {
		t.Errorf("Half flagged should not trigger the values mismatch, got %+v", mismatches)
	}
}

func TestDealbreakerTouchedByRedFlag(t *testing.T) {
	answers := []models.Answer{{QuestionID: "values-family-importance", Value: "red-flag"}}
	profile := models.UserProfile{
		Values: []models.ValueStatement{
			{Category: "values", Statement: "wants a close family", Importance: models.ImportanceDealbreaker},
		},
	}

	mismatches, _ := DetectMismatches(answers, profile)
	found := false
	for _, m := range mismatches {
		if m.Severity == models.SeverityHigh && strings.Contains(m.Description, "wants a close family") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a high dealbreaker mismatch naming the statement, got %+v", mismatches)
	}
}

func TestDealbreakerInOtherCategoryStaysQuiet(t *testing.T) {
	// The red flag sits in the values category; a future-category
	// dealbreaker is untouched by it
	answers := []models.Answer{{QuestionID: "values-family-importance", Value: "red-flag"}}
	profile := models.UserProfile{
		Values: []models.ValueStatement{
			{Category: "future", Statement: "wants to settle abroad", Importance: models.ImportanceDealbreaker},
		},
	}

	mismatches, _ := DetectMismatches(answers, profile)
	if hasSeverity(mismatches, models.SeverityHigh) {
		t.Errorf("A dealbreaker in an unrelated category must not fire, got %+v", mismatches)
	}
}

func TestMaturityMismatchForOlderProfiles(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "maturity-accountability", Value: "red-flag"},
		{QuestionID: "maturity-patience", Value: "yellow-flag"},
	}

	mismatches, _ := DetectMismatches(answers, models.UserProfile{Age: 38})
	if !hasSeverity(mismatches, models.SeverityMedium) {
		t.Errorf("Two flagged maturity answers at 38 should rate medium, got %+v", mismatches)
	}

	mismatches, _ = DetectMismatches(answers, models.UserProfile{Age: 29})
	if len(mismatches) != 0 {
		t.Errorf("Under 35 the maturity axis stays quiet, got %+v", mismatches)
	}
}

func TestBioKeywordMismatch(t *testing.T) {
	answers := []models.Answer{{QuestionID: "values-family-importance", Value: "red-flag"}}
	profile := models.UserProfile{Bio: "Family first, always"}

	mismatches, _ := DetectMismatches(answers, profile)
	if !hasSeverity(mismatches, models.SeverityLow) {
		t.Errorf("Expected a low bio-keyword mismatch, got %+v", mismatches)
	}
}

func TestNoMismatchesOnCleanInput(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "future-shared-goals", Value: "strong-match"},
		{QuestionID: "values-family-importance", Value: "good"},
	}
	profile := models.UserProfile{Age: 40, DatingGoal: "marriage", Bio: "Career and travel"}

	mismatches, recommendations := DetectMismatches(answers, profile)
	if len(mismatches) != 0 || len(recommendations) != 0 {
		t.Errorf("Expected nothing on clean input, got %+v / %v", mismatches, recommendations)
	}
}
