package structs

import "heartwise/models"

// ScoreRequest is the payload for a full scoring run
type ScoreRequest struct {
	Answers []models.Answer         `json:"answers" binding:"required"`
	Profile *models.UserProfile     `json:"profile"`
	Notes   *models.ReflectionNotes `json:"notes"`
}

// ScoreResponse pairs the deterministic verdict with the AI analysis
type ScoreResponse struct {
	Result   models.CompatibilityResult `json:"result"`
	Analysis *models.AIAnalysis         `json:"analysis,omitempty"`
}

// FeedbackRequest reports how the connection actually went
type FeedbackRequest struct {
	AssessmentID string `json:"assessmentId"`
	Outcome      string `json:"outcome" binding:"required"`
	Accurate     *bool  `json:"accurate" binding:"required"`
	Comment      string `json:"comment"`
}

// UpdateProfileRequest carries editable profile fields
type UpdateProfileRequest struct {
	DisplayName string              `json:"displayName"`
	AvatarURL   string              `json:"avatarUrl"`
	Profile     *models.UserProfile `json:"profile"`
}
