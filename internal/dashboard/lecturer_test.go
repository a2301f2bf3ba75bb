package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/models/dto"
	"github.com/tumelo/reportal/internal/client"
)

func TestLecturerView_LoadAndAverageRating(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/reports/lecturer/2", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Report{
			{ID: 2, LecturerID: 2, CourseCode: "DIWA2110", WeekOfReporting: "6", Topic: "Responsive layouts", StudentsPresent: 38, TotalStudents: 45},
		})
	})
	mux.HandleFunc("GET /api/v1/ratings/lecturer/2", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Rating{
			{ID: 2, LecturerID: 2, Rating: 5},
			{ID: 1, LecturerID: 2, Rating: 4},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	view := NewLecturerView(models.User{ID: 2, Name: "Mpho Khaketla", Role: models.RoleLecturer}, client.New(srv.URL))
	assert.NoError(t, view.Load(context.Background()))

	assert.Len(t, view.Reports(), 1)
	assert.Len(t, view.Ratings(), 2)
	assert.InDelta(t, 4.5, view.AverageRating(), 0.001)
	assert.Contains(t, view.Summary(), "attendance 38/45")
}

func TestLecturerView_SubmitReport_SetsOwnLecturerID(t *testing.T) {
	var got dto.CreateReportRequest
	submitted := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/reports", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		submitted = true
		json.NewEncoder(w).Encode(dto.CreateReportResponse{Message: "Report submitted successfully", ReportID: 5})
	})
	mux.HandleFunc("GET /api/v1/reports/lecturer/2", func(w http.ResponseWriter, r *http.Request) {
		reports := []models.Report{}
		if submitted {
			reports = append(reports, models.Report{ID: 5, LecturerID: 2, CourseCode: "DIWA2110", Topic: "Responsive layouts"})
		}
		json.NewEncoder(w).Encode(reports)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	view := NewLecturerView(models.User{ID: 2, Role: models.RoleLecturer}, client.New(srv.URL))
	assert.NoError(t, view.Load(context.Background()))
	assert.Empty(t, view.Reports())

	resp, err := view.SubmitReport(context.Background(), dto.CreateReportRequest{
		LecturerID: 999, // caller-supplied IDs are overridden by the session
		CourseCode: "DIWA2110",
		Topic:      "Responsive layouts",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), resp.ReportID)
	assert.Equal(t, int64(2), got.LecturerID)

	// The view reflects the server's list after the write, not a local patch
	assert.Len(t, view.Reports(), 1)
	assert.Equal(t, int64(5), view.Reports()[0].ID)
}

func TestLecturerView_AverageRating_NoRatings(t *testing.T) {
	view := NewLecturerView(models.User{ID: 2}, nil)
	assert.Zero(t, view.AverageRating())
}
