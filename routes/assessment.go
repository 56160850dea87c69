package routes

import (
	"heartwise/controllers"

	"github.com/gin-gonic/gin"
)

func GetQuestionsRouteHandler(ctx *gin.Context) {
	controllers.GetQuestions(ctx)
}

// SetupAssessmentRoutes registers the scoring endpoints on an authenticated group
func SetupAssessmentRoutes(group *gin.RouterGroup) {
	group.POST("/assessment/score", controllers.ScoreAssessment)
	group.GET("/assessment/history", controllers.GetAssessmentHistory)
	group.POST("/assessment/feedback", controllers.SubmitFeedback)
}
