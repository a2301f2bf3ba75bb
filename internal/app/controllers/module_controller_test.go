package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/pkg/apperrors"
)

func newModuleTestRouter(svc *MockModuleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewModuleController(svc)
	router.GET("/api/v1/streams", controller.GetStreams)
	router.GET("/api/v1/modules", controller.GetAllModules)
	router.GET("/api/v1/modules/:stream", controller.GetModulesByStream)
	return router
}

func getJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestModuleController_GetStreams(t *testing.T) {
	w := getJSON(newModuleTestRouter(new(MockModuleService)), "/api/v1/streams")

	assert.Equal(t, http.StatusOK, w.Code)

	var streams []models.Stream
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &streams))
	assert.Len(t, streams, 4)
	assert.Equal(t, "IS", streams[0].Code)
}

func TestModuleController_GetModulesByStream(t *testing.T) {
	svc := new(MockModuleService)
	svc.On("ListModulesByStream", mock.Anything, "information systems").Return([]*models.Module{
		{Code: "IS301", Name: "Business Analysis"},
	}, nil)

	w := getJSON(newModuleTestRouter(svc), "/api/v1/modules/information%20systems")

	assert.Equal(t, http.StatusOK, w.Code)

	var modules []models.Module
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &modules))
	assert.Len(t, modules, 1)
	assert.Equal(t, "IS301", modules[0].Code)
}

func TestModuleController_GetModulesByStream_UnknownStream(t *testing.T) {
	svc := new(MockModuleService)
	svc.On("ListModulesByStream", mock.Anything, "astrology").
		Return(nil, apperrors.ErrUnknownStream)

	w := getJSON(newModuleTestRouter(svc), "/api/v1/modules/astrology")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestModuleController_GetAllModules(t *testing.T) {
	svc := new(MockModuleService)
	svc.On("ListAllModules", mock.Anything).Return([]*models.Module{
		{Code: "IS301", Name: "Business Analysis", Stream: "Information Systems"},
		{Code: "IT101", Name: "IT Fundamentals", Stream: "Information Technology"},
	}, nil)

	w := getJSON(newModuleTestRouter(svc), "/api/v1/modules")

	assert.Equal(t, http.StatusOK, w.Code)

	var modules []models.Module
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &modules))
	assert.Len(t, modules, 2)
	assert.Equal(t, "Information Systems", modules[0].Stream)
}
