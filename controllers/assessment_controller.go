package controllers

import (
	"net/http"

	"heartwise/models"
	"heartwise/services"
	"heartwise/structs"

	"github.com/gin-gonic/gin"
)

// ScoreAssessment runs the full scoring flow over the submitted answers and
// returns the verdict plus the AI analysis
func ScoreAssessment(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request structs.ScoreRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	profile := models.UserProfile{}
	if request.Profile != nil {
		profile = *request.Profile
	}

	assessment, err := services.ScoreAssessment(c, email, request.Answers, profile, request.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Scoring failed"})
		return
	}

	c.JSON(http.StatusOK, structs.ScoreResponse{
		Result:   assessment.Result,
		Analysis: assessment.Analysis,
	})
}

// GetAssessmentHistory returns the user's recent assessments, newest first
func GetAssessmentHistory(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	assessments, err := services.AssessmentHistory(c, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": assessments})
}

// SubmitFeedback records how the connection turned out. The pattern store is
// advisory, so this endpoint always acknowledges valid input.
func SubmitFeedback(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request structs.FeedbackRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	services.SubmitFeedback(c, email, models.OutcomeFeedback{
		AssessmentID: request.AssessmentID,
		Outcome:      request.Outcome,
		Accurate:     request.Accurate != nil && *request.Accurate,
		Comment:      request.Comment,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Feedback recorded"})
}
