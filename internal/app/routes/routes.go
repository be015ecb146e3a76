package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mertcan/eduportal/internal/app/controllers"
	"github.com/mertcan/eduportal/internal/app/models/dto"
	"github.com/mertcan/eduportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	resourceController *controllers.ResourceController,
	scholarshipController *controllers.ScholarshipController,
	timetableController *controllers.TimetableController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      dto.SuccessResponse{Message: "ok"},
			Timestamp: time.Now(),
		})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.Me)

		authenticated.GET("/dashboard/stats", dashboardController.Stats)

		// Reads are open to every signed-in role
		authenticated.GET("/resources", resourceController.ListResources)
		authenticated.GET("/scholarships", scholarshipController.ListScholarships)
		authenticated.GET("/timetable", timetableController.ListTimetable)

		// Mutations require the faculty role
		facultyOnly := authenticated.Group("")
		facultyOnly.Use(authMiddleware.FacultyRequired())
		{
			facultyOnly.POST("/resources", resourceController.CreateResource)
			facultyOnly.DELETE("/resources/:id", resourceController.DeleteResource)

			facultyOnly.POST("/scholarships", scholarshipController.CreateScholarship)
			facultyOnly.DELETE("/scholarships/:id", scholarshipController.DeleteScholarship)

			facultyOnly.POST("/timetable", timetableController.CreateEntry)
			facultyOnly.DELETE("/timetable/:id", timetableController.DeleteEntry)
		}
	}
}
