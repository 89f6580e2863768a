package routes

import (
	"civicdispatch-be/controllers"
	"civicdispatch-be/middlewares"

	"github.com/gin-gonic/gin"
)

// DashboardRoutes sets up the authority dashboard routes
func DashboardRoutes(r *gin.Engine) {
	dashboard := r.Group("/api/dashboard", middlewares.AuthMiddleware())
	{
		dashboard.GET("", controllers.GetDashboard)
		dashboard.GET("/alerts", controllers.GetAlerts)
		dashboard.GET("/analytics", controllers.GetAnalytics)
	}
}
