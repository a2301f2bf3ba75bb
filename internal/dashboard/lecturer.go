package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/models/dto"
	"github.com/tumelo/reportal/internal/client"
	"github.com/tumelo/reportal/internal/pkg/logger"
)

// LecturerView shows a lecturer's submitted reports and received ratings.
type LecturerView struct {
	user models.User
	api  *client.Client

	reports []*models.Report
	ratings []*models.Rating
}

// NewLecturerView creates the lecturer dashboard.
func NewLecturerView(user models.User, api *client.Client) *LecturerView {
	return &LecturerView{user: user, api: api}
}

// Role returns the lecturer role.
func (v *LecturerView) Role() models.Role { return models.RoleLecturer }

// Load fetches the lecturer's reports and ratings concurrently. A failed
// fetch degrades to an empty collection.
func (v *LecturerView) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		reports, err := v.api.ListReportsByLecturer(ctx, v.user.ID)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load lecturer reports")
			reports = nil
		}
		v.reports = reports
	}()

	go func() {
		defer wg.Done()
		ratings, err := v.api.ListRatingsByLecturer(ctx, v.user.ID)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load lecturer ratings")
			ratings = nil
		}
		v.ratings = ratings
	}()

	wg.Wait()
	return nil
}

// Reports returns the loaded reports, newest first.
func (v *LecturerView) Reports() []*models.Report { return v.reports }

// Ratings returns the ratings this lecturer received, newest first.
func (v *LecturerView) Ratings() []*models.Rating { return v.ratings }

// SubmitReport posts a lecture report under this lecturer's account. On
// success the report list is re-fetched rather than patched locally.
func (v *LecturerView) SubmitReport(ctx context.Context, req dto.CreateReportRequest) (*dto.CreateReportResponse, error) {
	req.LecturerID = v.user.ID
	resp, err := v.api.CreateReport(ctx, req)
	if err != nil {
		return nil, err
	}

	reports, err := v.api.ListReportsByLecturer(ctx, v.user.ID)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to refresh lecturer reports")
		return resp, nil
	}
	v.reports = reports
	return resp, nil
}

// AverageRating returns the mean of all received ratings, or 0 when none.
func (v *LecturerView) AverageRating() float64 {
	if len(v.ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range v.ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(v.ratings))
}

// Summary renders the lecturer overview with per-report attendance.
func (v *LecturerView) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lecturer dashboard for %s\n", v.user.Name)
	fmt.Fprintf(&b, "Reports submitted: %d\n", len(v.reports))
	for _, r := range v.reports {
		fmt.Fprintf(&b, "  %s week %s: %s (attendance %d/%d)\n",
			r.CourseCode, r.WeekOfReporting, r.Topic, r.StudentsPresent, r.TotalStudents)
	}
	fmt.Fprintf(&b, "Ratings received: %d (average %.1f/5)\n", len(v.ratings), v.AverageRating())
	return b.String()
}
