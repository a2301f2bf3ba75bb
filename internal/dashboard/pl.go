package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/client"
	"github.com/tumelo/reportal/internal/client/store"
	"github.com/tumelo/reportal/internal/pkg/logger"
)

// LecturerSummary is one row of the PL monitoring table.
type LecturerSummary struct {
	LecturerID    int64
	Name          string
	ReportCount   int
	RatingCount   int
	AverageRating float64
}

// PLView is the programme leader dashboard: faculty-wide aggregates over
// reports, ratings, courses and modules.
type PLView struct {
	user  models.User
	api   *client.Client
	local *store.Store

	reports []*models.Report
	ratings []*models.Rating
	courses []*models.Course
	modules []*models.Module
}

// NewPLView creates the PL dashboard.
func NewPLView(user models.User, api *client.Client, local *store.Store) *PLView {
	return &PLView{user: user, api: api, local: local}
}

// Role returns the PL role.
func (v *PLView) Role() models.Role { return models.RolePL }

// Load fetches reports, ratings, courses and modules concurrently. A failed
// fetch degrades to an empty collection.
func (v *PLView) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		reports, err := v.api.ListReports(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load reports")
			reports = nil
		}
		v.reports = reports
	}()

	go func() {
		defer wg.Done()
		ratings, err := v.api.ListRatings(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load ratings")
			ratings = nil
		}
		v.ratings = ratings
	}()

	go func() {
		defer wg.Done()
		courses, err := v.api.ListCourses(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load courses")
			courses = nil
		}
		v.courses = courses
	}()

	go func() {
		defer wg.Done()
		modules, err := v.api.ListModules(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load modules")
			modules = nil
		}
		v.modules = modules
	}()

	wg.Wait()
	return nil
}

// Reports returns all loaded reports.
func (v *PLView) Reports() []*models.Report { return v.reports }

// Courses returns the course catalogue.
func (v *PLView) Courses() []*models.Course { return v.courses }

// Modules returns the faculty-wide module catalogue.
func (v *PLView) Modules() []*models.Module { return v.modules }

// LecturerSummaries aggregates report counts and rating averages per
// lecturer, ordered by name.
func (v *PLView) LecturerSummaries() []LecturerSummary {
	byID := map[int64]*LecturerSummary{}

	for _, r := range v.reports {
		s, ok := byID[r.LecturerID]
		if !ok {
			s = &LecturerSummary{LecturerID: r.LecturerID, Name: r.LecturerName}
			byID[r.LecturerID] = s
		}
		s.ReportCount++
	}
	for _, r := range v.ratings {
		s, ok := byID[r.LecturerID]
		if !ok {
			s = &LecturerSummary{LecturerID: r.LecturerID, Name: r.LecturerName}
			byID[r.LecturerID] = s
		}
		s.RatingCount++
		s.AverageRating += float64(r.Rating)
	}

	out := make([]LecturerSummary, 0, len(byID))
	for _, s := range byID {
		if s.RatingCount > 0 {
			s.AverageRating /= float64(s.RatingCount)
		}
		out = append(out, *s)
	}
	// Stable order for display and export
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// OverallAttendance returns faculty-wide attendance as a percentage over all
// reports, or 0 when no report carries a class size.
func (v *PLView) OverallAttendance() float64 {
	present, total := 0, 0
	for _, r := range v.reports {
		present += r.StudentsPresent
		total += r.TotalStudents
	}
	if total == 0 {
		return 0
	}
	return float64(present) / float64(total) * 100
}

// ExportRows returns the monitoring table as rows of cells, header first.
// Serialization to a file format is up to the caller.
func (v *PLView) ExportRows() [][]string {
	rows := [][]string{{"lecturer", "reports", "ratings", "average_rating"}}
	for _, s := range v.LecturerSummaries() {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.ReportCount),
			strconv.Itoa(s.RatingCount),
			fmt.Sprintf("%.1f", s.AverageRating),
		})
	}
	return rows
}

// AddModule appends a module to the locally stored copy of a stream's
// catalogue. The server catalogue is fixed; the edit is visible on this
// device only.
func (v *PLView) AddModule(stream string, module models.Module) error {
	local, ok, err := v.local.StreamModules(stream)
	if err != nil {
		return err
	}
	if !ok {
		for _, m := range v.modules {
			if strings.EqualFold(m.Stream, stream) {
				local = append(local, *m)
			}
		}
	}
	module.Stream = stream
	return v.local.SaveStreamModules(stream, append(local, module))
}

// StreamModules returns the locally edited stream catalogue when present,
// falling back to the server copy.
func (v *PLView) StreamModules(stream string) ([]models.Module, error) {
	local, ok, err := v.local.StreamModules(stream)
	if err != nil {
		return nil, err
	}
	if ok {
		return local, nil
	}
	var out []models.Module
	for _, m := range v.modules {
		if strings.EqualFold(m.Stream, stream) {
			out = append(out, *m)
		}
	}
	return out, nil
}

// Summary renders the PL overview.
func (v *PLView) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PL dashboard for %s\n", v.user.Name)
	fmt.Fprintf(&b, "Reports: %d, ratings: %d\n", len(v.reports), len(v.ratings))
	fmt.Fprintf(&b, "Overall attendance: %.0f%%\n", v.OverallAttendance())
	for _, s := range v.LecturerSummaries() {
		fmt.Fprintf(&b, "  %s: %d reports, avg rating %.1f\n", s.Name, s.ReportCount, s.AverageRating)
	}
	fmt.Fprintf(&b, "Courses: %d, modules: %d\n", len(v.courses), len(v.modules))
	return b.String()
}
