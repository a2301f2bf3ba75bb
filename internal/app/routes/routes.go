package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tumelo/reportal/internal/app/controllers"
	"github.com/tumelo/reportal/internal/middleware"
)

// SetupRouter configures all application routes. The record endpoints are
// public, matching the portal's original surface; only the profile lookup
// requires a session token.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	ratingController *controllers.RatingController,
	reportController *controllers.ReportController,
	lecturerController *controllers.LecturerController,
	moduleController *controllers.ModuleController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Auth
	v1.POST("/register", authController.Register)
	v1.POST("/login", authController.Login)
	v1.GET("/auth/me", authMiddleware.JWTAuth(), authController.Me)

	// Ratings
	ratings := v1.Group("/ratings")
	{
		ratings.POST("", ratingController.CreateRating)
		ratings.GET("", ratingController.GetAllRatings)
		ratings.GET("/student/:id", ratingController.GetRatingsByStudent)
		ratings.GET("/lecturer/:id", ratingController.GetRatingsByLecturer)
	}

	// Reports
	reports := v1.Group("/reports")
	{
		reports.POST("", reportController.CreateReport)
		reports.GET("", reportController.GetAllReports)
		reports.GET("/lecturer/:id", reportController.GetReportsByLecturer)
	}

	// Lecturer roster
	prl := v1.Group("/prl")
	{
		prl.GET("/lecturers", lecturerController.GetLecturers)
		prl.POST("/lecturers", lecturerController.AddLecturer)
	}

	// Streams and modules reference data
	v1.GET("/streams", moduleController.GetStreams)
	v1.GET("/modules", moduleController.GetAllModules)
	v1.GET("/modules/:stream", moduleController.GetModulesByStream)

	// Courses reference data
	v1.GET("/courses", courseController.GetCourses)
}
