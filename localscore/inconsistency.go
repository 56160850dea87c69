package localscore

import "heartwise/models"

// Finding is one detected contradiction within a semantic topic
type Finding struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Questions   []string        `json:"questions"`
	Severity    models.Severity `json:"severity"`
}

var (
	emotionTopic       = []string{"emotion", "feel", "stress"}
	communicationTopic = []string{"communicat", "listen", "express"}
)

func answersMatching(answers []models.Answer, keywords []string) []models.Answer {
	var subset []models.Answer
	for _, a := range answers {
		if matchesAny(questionContext(a), keywords) {
			subset = append(subset, a)
		}
	}
	return subset
}

func questionIDs(answers []models.Answer) []string {
	ids := make([]string, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}
	return ids
}

// DetectInconsistencies scans answer subsets for contradictory ratings
// within a topic. Emotional contradictions (a strong-match next to a
// red-flag) rate medium; scattered communication ratings that include a
// red-flag rate low.
func DetectInconsistencies(answers []models.Answer) []Finding {
	var findings []Finding

	emotional := answersMatching(answers, emotionTopic)
	if len(emotional) >= 2 {
		hasStrong, hasRed := false, false
		for _, a := range emotional {
			switch a.Value {
			case "strong-match":
				hasStrong = true
			case "red-flag":
				hasRed = true
			}
		}
		if hasStrong && hasRed {
			findings = append(findings, Finding{
				Type:        "emotional-contradiction",
				Description: "Emotional answers swing between a strong match and a red flag",
				Questions:   questionIDs(emotional),
				Severity:    models.SeverityMedium,
			})
		}
	}

	communication := answersMatching(answers, communicationTopic)
	if len(communication) >= 2 {
		seen := make(map[string]bool, len(communication))
		hasRed := false
		for _, a := range communication {
			seen[a.Value] = true
			if a.Value == "red-flag" {
				hasRed = true
			}
		}
		if len(seen) == len(communication) && hasRed {
			findings = append(findings, Finding{
				Type:        "communication-scatter",
				Description: "Communication answers are scattered and include a red flag",
				Questions:   questionIDs(communication),
				Severity:    models.SeverityLow,
			})
		}
	}

	return findings
}
