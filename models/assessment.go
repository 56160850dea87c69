package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AIAnalysis is the enrichment pass attached to an assessment. Source records
// whether the remote scorer produced it or the local fallback did.
type AIAnalysis struct {
	Score      int           `json:"score" bson:"score"`
	Category   LocalCategory `json:"category" bson:"category"`
	Source     string        `json:"source" bson:"source"` // "remote" or "local"
	Insights   []string      `json:"insights,omitempty" bson:"insights,omitempty"`
	Mismatches []string      `json:"mismatches,omitempty" bson:"mismatches,omitempty"`
}

// Assessment is one stored scoring run for a user
type Assessment struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Email     string              `json:"email" bson:"email"`
	Answers   []Answer            `json:"answers" bson:"answers"`
	Notes     *ReflectionNotes    `json:"notes,omitempty" bson:"notes,omitempty"`
	Result    CompatibilityResult `json:"result" bson:"result"`
	Analysis  *AIAnalysis         `json:"analysis,omitempty" bson:"analysis,omitempty"`
	Outcome   string              `json:"outcome,omitempty" bson:"outcome,omitempty"`
	CreatedAt int64               `json:"createdAt" bson:"createdAt"`
}

// OutcomeFeedback is the user's later report on how the connection went,
// fed back into the pattern store
type OutcomeFeedback struct {
	AssessmentID string `json:"assessmentId" bson:"assessmentId"`
	Outcome      string `json:"outcome" bson:"outcome"` // e.g. "still-dating", "ended-well", "ended-badly"
	Accurate     bool   `json:"accurate" bson:"accurate"`
	Comment      string `json:"comment,omitempty" bson:"comment,omitempty"`
}
