package scoring

import (
	"testing"

	"heartwise/models"
)

func TestAggregateCategoriesAveragesAndSorts(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "communication-daily-checkins", Weight: 90},
		{QuestionID: "communication-active-listening", Weight: 70},
		{QuestionID: "values-family-importance", Weight: 75},
		{QuestionID: "safety-anger-management", Weight: 90},
	}

	scores := AggregateCategories(answers)
	if len(scores) != 3 {
		t.Fatalf("Expected 3 categories, got %d", len(scores))
	}
	if scores[0].Category != "safety" || scores[0].Score != 90 {
		t.Errorf("Expected safety=90 first, got %s=%d", scores[0].Category, scores[0].Score)
	}
	if scores[1].Category != "communication" || scores[1].Score != 80 {
		t.Errorf("Expected communication=80, got %s=%d", scores[1].Category, scores[1].Score)
	}
	if scores[2].Category != "values" || scores[2].Score != 75 {
		t.Errorf("Expected values=75 last, got %s=%d", scores[2].Category, scores[2].Score)
	}
}

func TestAggregateRoundsHalfUp(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "communication-daily-checkins", Weight: 70},
		{QuestionID: "communication-active-listening", Weight: 75},
	}

	scores := AggregateCategories(answers)
	if len(scores) != 1 || scores[0].Score != 73 {
		t.Errorf("Expected rounded average 73, got %+v", scores)
	}
}

func TestCategoryFallsBackToIDPrefixThenGeneral(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "custom-unknown-question", Weight: 60},
		{QuestionID: "nodash", Weight: 40},
	}

	scores := AggregateCategories(answers)
	if len(scores) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(scores))
	}
	found := map[string]int{}
	for _, s := range scores {
		found[s.Category] = s.Score
	}
	if found["custom"] != 60 {
		t.Errorf("Expected unknown question to bucket under its ID prefix, got %v", found)
	}
	if found["general"] != 40 {
		t.Errorf("Expected prefix-less question to bucket under general, got %v", found)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	scores := AggregateCategories(nil)
	if scores == nil || len(scores) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", scores)
	}
}

func TestRawScoreClampsWeights(t *testing.T) {
	answers := []models.Answer{
		{QuestionID: "a-1", Weight: 150},
		{QuestionID: "a-2", Weight: -20},
	}
	if got := RawScore(answers); got != 50 {
		t.Errorf("Expected clamped mean 50, got %d", got)
	}
	if got := RawScore(nil); got != 0 {
		t.Errorf("Expected 0 for empty input, got %d", got)
	}
}

func TestOmittedWeightsResolveFromCatalog(t *testing.T) {
	// No weight supplied: the catalog knows this option is worth 95
	known := []models.Answer{{QuestionID: "boundaries-consent", Value: "always-respects"}}
	if got := RawScore(known); got != 95 {
		t.Errorf("Expected the catalog weight 95, got %d", got)
	}

	// Unknown question and value rate the neutral midpoint, not 0
	unknown := []models.Answer{{QuestionID: "mystery-question", Value: "unrecognized-value"}}
	if got := RawScore(unknown); got != 50 {
		t.Errorf("Expected neutral 50 for an unknown answer, got %d", got)
	}

	scores := AggregateCategories(known)
	if len(scores) != 1 || scores[0].Score != 95 {
		t.Errorf("Category aggregation should resolve omitted weights too, got %+v", scores)
	}
}

func TestCategoryLabelFallsBackToKey(t *testing.T) {
	if CategoryLabel("values") != "Values & Priorities" {
		t.Errorf("Unexpected label for values: %s", CategoryLabel("values"))
	}
	if CategoryLabel("astrology") != "astrology" {
		t.Errorf("Unknown category should label as itself, got %s", CategoryLabel("astrology"))
	}
}
