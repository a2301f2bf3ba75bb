package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/models/dto"
	"github.com/tumelo/reportal/internal/app/services"
	"github.com/tumelo/reportal/internal/metrics"
	"github.com/tumelo/reportal/internal/middleware"
)

// ReportController handles lecture report submission and listings
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// CreateReport handles report submission
// @Summary Submit a lecture report
// @Description Stores a lecturer's record of one delivered lecture session
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.CreateReportRequest true "Report data"
// @Success 200 {object} dto.CreateReportResponse "Report submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports [post]
func (c *ReportController) CreateReport(ctx *gin.Context) {
	var req dto.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	if req.LecturerID == 0 || req.CourseCode == "" || req.WeekOfReporting == "" ||
		req.DateOfLecture == "" || req.Topic == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Lecturer ID, course code, week, date and topic are required"))
		return
	}

	report := &models.Report{
		LecturerID:       req.LecturerID,
		CourseCode:       req.CourseCode,
		WeekOfReporting:  req.WeekOfReporting,
		DateOfLecture:    req.DateOfLecture,
		Topic:            req.Topic,
		LearningOutcomes: req.LearningOutcomes,
		Recommendations:  req.Recommendations,
		StudentsPresent:  req.StudentsPresent,
		TotalStudents:    req.TotalStudents,
	}

	id, err := c.reportService.CreateReport(ctx, report)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	metrics.ReportsSubmitted.Inc()
	ctx.JSON(http.StatusOK, dto.CreateReportResponse{
		Message:  "Report submitted successfully",
		ReportID: id,
	})
}

// GetAllReports lists every report, newest first
// @Summary List all lecture reports
// @Tags reports
// @Produce json
// @Success 200 {array} models.Report "Reports"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports [get]
func (c *ReportController) GetAllReports(ctx *gin.Context) {
	reports, err := c.reportService.ListReports(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reports)
}

// GetReportsByLecturer lists one lecturer's reports, newest first
// @Summary List a lecturer's reports
// @Tags reports
// @Produce json
// @Param id path int true "Lecturer ID"
// @Success 200 {array} models.Report "Reports"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecturer ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/lecturer/{id} [get]
func (c *ReportController) GetReportsByLecturer(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Lecturer ID must be a valid number"))
		return
	}

	reports, err := c.reportService.ListReportsByLecturer(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reports)
}
