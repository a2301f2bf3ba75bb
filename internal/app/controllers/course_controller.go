package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tumelo/reportal/internal/app/services"
	"github.com/tumelo/reportal/internal/middleware"
)

// CourseController serves the courses reference table
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetCourses serves the raw courses table
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course "Courses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}
