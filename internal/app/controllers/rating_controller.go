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

// RatingController handles rating submission and listings
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// CreateRating handles rating submission
// @Summary Submit a lecturer rating
// @Description Stores a student's rating of a lecturer for one module occurrence
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body dto.CreateRatingRequest true "Rating data"
// @Success 200 {object} dto.CreateRatingResponse "Rating added successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ratings [post]
func (c *RatingController) CreateRating(ctx *gin.Context) {
	var req dto.CreateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	if req.StudentID == 0 || req.LecturerID == 0 || req.Rating == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID, lecturer ID and rating are required"))
		return
	}

	rating := &models.Rating{
		StudentID:    req.StudentID,
		LecturerID:   req.LecturerID,
		LecturerName: req.LecturerName,
		ModuleName:   req.ModuleName,
		ModuleCode:   req.ModuleCode,
		Programme:    req.Programme,
		YearOfStudy:  req.YearOfStudy,
		Rating:       req.Rating,
		Comments:     req.Comments,
	}

	id, err := c.ratingService.CreateRating(ctx, rating)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	metrics.RatingsSubmitted.Inc()
	ctx.JSON(http.StatusOK, dto.CreateRatingResponse{
		Message:  "Rating added successfully",
		RatingID: id,
	})
}

// GetAllRatings lists every rating, newest first
// @Summary List all ratings
// @Tags ratings
// @Produce json
// @Success 200 {array} models.Rating "Ratings"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ratings [get]
func (c *RatingController) GetAllRatings(ctx *gin.Context) {
	ratings, err := c.ratingService.ListRatings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ratings)
}

// GetRatingsByStudent lists one student's ratings, newest first
// @Summary List a student's ratings
// @Tags ratings
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} models.Rating "Ratings"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ratings/student/{id} [get]
func (c *RatingController) GetRatingsByStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID must be a valid number"))
		return
	}

	ratings, err := c.ratingService.ListRatingsByStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ratings)
}

// GetRatingsByLecturer lists the ratings targeting a lecturer, newest first
// @Summary List a lecturer's received ratings
// @Tags ratings
// @Produce json
// @Param id path int true "Lecturer ID"
// @Success 200 {array} models.Rating "Ratings"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecturer ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ratings/lecturer/{id} [get]
func (c *RatingController) GetRatingsByLecturer(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Lecturer ID must be a valid number"))
		return
	}

	ratings, err := c.ratingService.ListRatingsByLecturer(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ratings)
}
