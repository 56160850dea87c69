package controllers

import (
	"net/http"

	"heartwise/catalog"
	"heartwise/models"

	"github.com/gin-gonic/gin"
)

// GetQuestions returns the question catalog unlocked at the requested tier.
// Unknown or missing tiers fall back to the free set.
func GetQuestions(c *gin.Context) {
	tier := models.Tier(c.DefaultQuery("tier", string(models.TierFree)))
	if tier.Rank() < 0 {
		tier = models.TierFree
	}

	questions := catalog.QuestionsForTier(tier)
	c.JSON(http.StatusOK, gin.H{
		"version":   catalog.Version,
		"tier":      tier,
		"count":     len(questions),
		"questions": questions,
	})
}
