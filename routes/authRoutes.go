package routes

import (
	"civicdispatch-be/controllers"
	"civicdispatch-be/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authority session routes
func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", controllers.LoginAuthority)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)
		auth.POST("/logout", controllers.LogoutAuthority)
	}
}
