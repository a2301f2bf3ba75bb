package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tumelo/reportal/internal/app/models/dto"
	"github.com/tumelo/reportal/internal/app/services"
	"github.com/tumelo/reportal/internal/middleware"
)

// LecturerController handles the PRL lecturer roster
type LecturerController struct {
	lecturerService services.LecturerService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService services.LecturerService) *LecturerController {
	return &LecturerController{lecturerService: lecturerService}
}

// GetLecturers lists all lecturer accounts
// @Summary List lecturers
// @Tags lecturers
// @Produce json
// @Success 200 {array} dto.LecturerResponse "Lecturers"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prl/lecturers [get]
func (c *LecturerController) GetLecturers(ctx *gin.Context) {
	lecturers, err := c.lecturerService.ListLecturers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.LecturerResponse, 0, len(lecturers))
	for _, l := range lecturers {
		out = append(out, dto.LecturerResponse{
			UserID: l.ID,
			Name:   l.Name,
			Email:  l.Email,
			Role:   string(l.Role),
		})
	}
	ctx.JSON(http.StatusOK, out)
}

// AddLecturer creates a lecturer account with a temporary password
// @Summary Add a lecturer
// @Tags lecturers
// @Accept json
// @Produce json
// @Param request body dto.AddLecturerRequest true "Lecturer data"
// @Success 200 {object} dto.AddLecturerResponse "Lecturer added successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 409 {object} dto.ErrorResponse "Lecturer already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prl/lecturers [post]
func (c *LecturerController) AddLecturer(ctx *gin.Context) {
	var req dto.AddLecturerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	if req.Name == "" || req.Email == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("All fields are required"))
		return
	}

	id, err := c.lecturerService.AddLecturer(ctx, req.Name, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AddLecturerResponse{
		Message:    "Lecturer added successfully",
		LecturerID: id,
	})
}
