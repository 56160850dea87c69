package services

import (
	"testing"

	"heartwise/localscore"
	"heartwise/models"
)

func TestFeedbackInteractionCarriesOriginalVerdict(t *testing.T) {
	assessment := &models.Assessment{
		Analysis: &models.AIAnalysis{Score: 72, Category: models.LocalWorthExploring},
	}
	feedback := models.OutcomeFeedback{Outcome: "ended-well", Accurate: true, Comment: "spot on"}

	interaction := feedbackInteraction(assessment, feedback)
	if interaction.Score != 72 || interaction.Category != models.LocalWorthExploring {
		t.Errorf("Expected the original verdict on the interaction, got score %d category %s",
			interaction.Score, interaction.Category)
	}
	if interaction.Outcome != "ended-well" || interaction.Feedback != "spot on" {
		t.Errorf("Feedback fields did not carry over: %+v", interaction)
	}

	// A recorded feedback interaction must be reachable by Query so it can
	// influence future pattern nudges
	store := localscore.NewMemoryPatternStore()
	store.Record(interaction)
	if similar := store.Query(72, models.LocalWorthExploring); len(similar) != 1 {
		t.Errorf("Expected the feedback interaction to surface in Query, got %d", len(similar))
	}
}

func TestFeedbackInteractionWithoutAssessment(t *testing.T) {
	feedback := models.OutcomeFeedback{Outcome: "ended-badly", Accurate: false}

	interaction := feedbackInteraction(nil, feedback)
	if interaction.Outcome != "ended-badly" {
		t.Errorf("Expected the outcome to carry over, got %+v", interaction)
	}

	noAnalysis := &models.Assessment{}
	interaction = feedbackInteraction(noAnalysis, feedback)
	if interaction.Score != 0 || interaction.Category != "" {
		t.Errorf("Expected no verdict fields without an analysis, got %+v", interaction)
	}
}

func TestMismatchDescriptionsFlattensBothLists(t *testing.T) {
	mismatches := []localscore.Mismatch{
		{Description: "goals point apart", Severity: models.SeverityHigh},
	}
	recommendations := []string{"talk about it directly"}

	out := mismatchDescriptions(mismatches, recommendations)
	if len(out) != 2 || out[0] != "goals point apart" || out[1] != "talk about it directly" {
		t.Errorf("Unexpected flattened output: %v", out)
	}
}
