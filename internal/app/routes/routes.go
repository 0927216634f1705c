package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/enrolldesk/enrolldesk/internal/app/controllers"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	collegeController *controllers.CollegeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.List)
			students.POST("", studentController.Submit)
			students.GET("/:id", studentController.Get)
			students.GET("/:id/verify", studentController.Verify)
			students.PATCH("/:id", studentController.Update)
		}

		colleges := authenticated.Group("/colleges")
		{
			colleges.GET("", collegeController.List)
			colleges.POST("", collegeController.Create)
		}

		authenticated.GET("/dashboard", studentController.Dashboard)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
