package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tumelo/reportal/internal/app/services"
	"github.com/tumelo/reportal/internal/middleware"
)

// ModuleController serves stream and module reference data
type ModuleController struct {
	moduleService services.ModuleService
}

// NewModuleController creates a new ModuleController
func NewModuleController(moduleService services.ModuleService) *ModuleController {
	return &ModuleController{moduleService: moduleService}
}

// GetStreams serves the fixed stream reference list
// @Summary List streams
// @Tags modules
// @Produce json
// @Success 200 {array} models.Stream "Streams"
// @Router /streams [get]
func (c *ModuleController) GetStreams(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.moduleService.ListStreams())
}

// GetAllModules lists the modules of every stream
// @Summary List all modules
// @Description Reads the four per-stream tables and concatenates the rows
// @Tags modules
// @Produce json
// @Success 200 {array} models.Module "Modules with stream labels"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules [get]
func (c *ModuleController) GetAllModules(ctx *gin.Context) {
	modules, err := c.moduleService.ListAllModules(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, modules)
}

// GetModulesByStream lists the modules of one stream
// @Summary List a stream's modules
// @Tags modules
// @Produce json
// @Param stream path string true "Stream name"
// @Success 200 {array} models.Module "Modules"
// @Failure 400 {object} dto.ErrorResponse "Invalid stream name"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /modules/{stream} [get]
func (c *ModuleController) GetModulesByStream(ctx *gin.Context) {
	modules, err := c.moduleService.ListModulesByStream(ctx, ctx.Param("stream"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, modules)
}
