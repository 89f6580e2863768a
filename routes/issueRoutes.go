package routes

import (
	"civicdispatch-be/controllers"
	"civicdispatch-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine) {
	issue := r.Group("/api/issue")
	{
		issue.POST("/create", middlewares.ReportRateLimiter(10), controllers.CreateIssue)
		issue.GET("/all", controllers.GetAllIssues)
		issue.GET("/recent", controllers.RecentIssues)
		issue.POST("/:id/vote", controllers.VoteOnIssue)
		issue.POST("/:id/comment", controllers.CommentOnIssue)

		issue.POST("/:id/resolve", middlewares.AuthMiddleware(), controllers.ResolveIssue)
		issue.POST("/:id/assign", middlewares.AuthMiddleware(), controllers.AssignIssue)
		issue.POST("/:id/note", middlewares.AuthMiddleware(), controllers.AddNote)
	}

	rewards := r.Group("/api/rewards")
	{
		rewards.GET("/:phone", controllers.GetRewards)
		rewards.POST("/:phone/redeem", controllers.RedeemRewards)
	}
}
