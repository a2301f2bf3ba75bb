package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/models/dto"
	"github.com/tumelo/reportal/internal/client"
	"github.com/tumelo/reportal/internal/client/store"
	"github.com/tumelo/reportal/internal/pkg/logger"
)

// ReportFilter narrows the PRL report list. Every field is a free-text,
// case-insensitive substring match; empty fields match everything.
type ReportFilter struct {
	Lecturer string
	Course   string
	Week     string
	Stream   string
}

// PRLView is the principal lecturer dashboard: every lecture report with
// review state, the lecturer roster, and ad hoc student reports.
type PRLView struct {
	user  models.User
	api   *client.Client
	local *store.Store

	reports        []*models.Report
	lecturers      []*dto.LecturerResponse
	feedback       map[int64]string
	studentReports []store.StudentReport
	codeStream     map[string]string // module code -> stream name
}

// NewPRLView creates the PRL dashboard.
func NewPRLView(user models.User, api *client.Client, local *store.Store) *PRLView {
	return &PRLView{user: user, api: api, local: local}
}

// Role returns the PRL role.
func (v *PRLView) Role() models.Role { return models.RolePRL }

// Load fetches reports, the roster and the module catalogue concurrently,
// plus local feedback and student reports. A failed fetch degrades to an
// empty collection.
func (v *PRLView) Load(ctx context.Context) error {
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
		lecturers, err := v.api.ListLecturers(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load lecturer roster")
			lecturers = nil
		}
		v.lecturers = lecturers
	}()

	go func() {
		defer wg.Done()
		modules, err := v.api.ListModules(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load module catalogue")
			modules = nil
		}
		codeStream := make(map[string]string, len(modules))
		for _, m := range modules {
			codeStream[strings.ToLower(m.Code)] = m.Stream
		}
		v.codeStream = codeStream
	}()

	go func() {
		defer wg.Done()
		feedback, err := v.local.AllFeedback()
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load local feedback")
			feedback = map[int64]string{}
		}
		v.feedback = feedback

		studentReports, err := v.local.StudentReports()
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load local student reports")
			studentReports = nil
		}
		v.studentReports = studentReports
	}()

	wg.Wait()
	return nil
}

// Reports returns the loaded reports with any local feedback overlaid.
func (v *PRLView) Reports() []*models.Report {
	out := make([]*models.Report, len(v.reports))
	for i, r := range v.reports {
		cp := *r
		cp.PRLFeedback = v.feedback[r.ID]
		out[i] = &cp
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FilterReports applies the filter to the loaded reports. The stream filter
// matches the stream the report's course code belongs to.
func (v *PRLView) FilterReports(f ReportFilter) []*models.Report {
	var out []*models.Report
	for _, r := range v.Reports() {
		if f.Lecturer != "" && !containsFold(r.LecturerName, f.Lecturer) {
			continue
		}
		if f.Course != "" && !containsFold(r.CourseCode, f.Course) {
			continue
		}
		if f.Week != "" && !containsFold(r.WeekOfReporting, f.Week) {
			continue
		}
		if f.Stream != "" {
			stream := v.codeStream[strings.ToLower(r.CourseCode)]
			if !containsFold(stream, f.Stream) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// AttachFeedback stores feedback for a report on this device. The report on
// the server is untouched; a fresh fetch shows it without the feedback.
func (v *PRLView) AttachFeedback(reportID int64, feedback string) error {
	if err := v.local.SaveFeedback(reportID, feedback); err != nil {
		return err
	}
	if v.feedback == nil {
		v.feedback = map[int64]string{}
	}
	v.feedback[reportID] = feedback
	return nil
}

// PendingReports returns reports without local feedback.
func (v *PRLView) PendingReports() []*models.Report {
	var out []*models.Report
	for _, r := range v.Reports() {
		if r.PRLFeedback == "" {
			out = append(out, r)
		}
	}
	return out
}

// ReviewedReports returns reports with local feedback attached.
func (v *PRLView) ReviewedReports() []*models.Report {
	var out []*models.Report
	for _, r := range v.Reports() {
		if r.PRLFeedback != "" {
			out = append(out, r)
		}
	}
	return out
}

// Lecturers returns the loaded roster.
func (v *PRLView) Lecturers() []*dto.LecturerResponse { return v.lecturers }

// AddLecturer adds a lecturer account. The roster is re-fetched afterwards
// rather than patched locally, so the view shows what the server stored.
func (v *PRLView) AddLecturer(ctx context.Context, name, email string) (*dto.AddLecturerResponse, error) {
	resp, err := v.api.AddLecturer(ctx, dto.AddLecturerRequest{Name: name, Email: email})
	if err != nil {
		return nil, err
	}

	lecturers, err := v.api.ListLecturers(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to refresh lecturer roster")
		return resp, nil
	}
	v.lecturers = lecturers
	return resp, nil
}

// StudentReports returns the local ad hoc student reports.
func (v *PRLView) StudentReports() []store.StudentReport { return v.studentReports }

// AddStudentReport records an ad hoc student report on this device.
func (v *PRLView) AddStudentReport(studentID int64, studentName, moduleCode, text string) (store.StudentReport, error) {
	rep := store.StudentReport{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		StudentName: studentName,
		ModuleCode:  moduleCode,
		Text:        text,
		CreatedAt:   time.Now(),
	}
	if err := v.local.AppendStudentReport(rep); err != nil {
		return store.StudentReport{}, err
	}
	v.studentReports = append(v.studentReports, rep)
	return rep, nil
}

// RespondToStudentReport attaches feedback to an ad hoc student report.
func (v *PRLView) RespondToStudentReport(id, feedback string) error {
	if err := v.local.SetStudentReportFeedback(id, feedback); err != nil {
		return err
	}
	for i := range v.studentReports {
		if v.studentReports[i].ID == id {
			v.studentReports[i].Feedback = feedback
		}
	}
	return nil
}

// Summary renders the PRL overview.
func (v *PRLView) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PRL dashboard for %s\n", v.user.Name)
	fmt.Fprintf(&b, "Reports: %d (%d pending review, %d reviewed)\n",
		len(v.reports), len(v.PendingReports()), len(v.ReviewedReports()))
	fmt.Fprintf(&b, "Lecturers on roster: %d\n", len(v.lecturers))
	fmt.Fprintf(&b, "Student reports (local): %d\n", len(v.studentReports))
	return b.String()
}
