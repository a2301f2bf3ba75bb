package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/app/models/dto"
	"github.com/tumelo/reportal/internal/client"
	"github.com/tumelo/reportal/internal/client/store"
	"github.com/tumelo/reportal/internal/pkg/logger"
)

// ErrEmptyRating is returned when every sub-criterion is left at zero.
var ErrEmptyRating = errors.New("please rate at least one criterion")

// RatingCriteria are the sub-criteria a student scores, each 0-5 where zero
// means "not rated". The stored rating is the rounded mean of the nonzero
// entries.
type RatingCriteria struct {
	TeachingQuality int
	Preparation     int
	Support         int
	Fairness        int
	Engagement      int
}

// Overall computes the rounded mean of the nonzero sub-criteria. The second
// return is false when nothing was rated.
func (c RatingCriteria) Overall() (int, bool) {
	values := []int{c.TeachingQuality, c.Preparation, c.Support, c.Fairness, c.Engagement}
	sum, count := 0, 0
	for _, v := range values {
		if v > 0 {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return int(math.Round(float64(sum) / float64(count))), true
}

// RatingForm is a student's rating submission before aggregation.
type RatingForm struct {
	LecturerID   int64
	LecturerName string
	ModuleName   string
	ModuleCode   string
	Programme    string
	YearOfStudy  string
	Criteria     RatingCriteria
	Comments     string
}

// StudentView shows a student's own ratings and local attendance records.
type StudentView struct {
	user  models.User
	api   *client.Client
	local *store.Store

	ratings    []*models.Rating
	attendance []store.AttendanceRecord
}

// NewStudentView creates the student dashboard.
func NewStudentView(user models.User, api *client.Client, local *store.Store) *StudentView {
	return &StudentView{user: user, api: api, local: local}
}

// Role returns the student role.
func (v *StudentView) Role() models.Role { return models.RoleStudent }

// Load fetches the student's ratings and local attendance concurrently. A
// failed fetch degrades to an empty collection.
func (v *StudentView) Load(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		ratings, err := v.api.ListRatingsByStudent(ctx, v.user.ID)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load student ratings")
			ratings = nil
		}
		v.ratings = ratings
	}()

	go func() {
		defer wg.Done()
		records, err := v.local.Attendance()
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load local attendance")
			records = nil
		}
		v.attendance = records
	}()

	wg.Wait()
	return nil
}

// Ratings returns the loaded ratings, newest first.
func (v *StudentView) Ratings() []*models.Rating { return v.ratings }

// SubmitRating aggregates the sub-criteria and posts the rating. An all-zero
// form is rejected without issuing a request. On success the student's rating
// list is re-fetched rather than patched locally.
func (v *StudentView) SubmitRating(ctx context.Context, form RatingForm) (*dto.CreateRatingResponse, error) {
	overall, ok := form.Criteria.Overall()
	if !ok {
		return nil, ErrEmptyRating
	}

	resp, err := v.api.CreateRating(ctx, dto.CreateRatingRequest{
		StudentID:    v.user.ID,
		LecturerID:   form.LecturerID,
		LecturerName: form.LecturerName,
		ModuleName:   form.ModuleName,
		ModuleCode:   form.ModuleCode,
		Programme:    form.Programme,
		YearOfStudy:  form.YearOfStudy,
		Rating:       overall,
		Comments:     form.Comments,
	})
	if err != nil {
		return nil, err
	}

	ratings, err := v.api.ListRatingsByStudent(ctx, v.user.ID)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to refresh student ratings")
		return resp, nil
	}
	v.ratings = ratings
	return resp, nil
}

// MarkAttendance records class attendance on this device only.
func (v *StudentView) MarkAttendance(moduleCode, date string, present bool) error {
	rec := store.AttendanceRecord{
		StudentID:  v.user.ID,
		ModuleCode: moduleCode,
		Date:       date,
		Present:    present,
	}
	if err := v.local.AppendAttendance(rec); err != nil {
		return err
	}
	v.attendance = append(v.attendance, rec)
	return nil
}

// Attendance returns the locally recorded attendance.
func (v *StudentView) Attendance() []store.AttendanceRecord { return v.attendance }

// AttendanceRate returns the percentage of recorded classes marked present,
// or 0 when nothing is recorded.
func (v *StudentView) AttendanceRate() float64 {
	if len(v.attendance) == 0 {
		return 0
	}
	present := 0
	for _, rec := range v.attendance {
		if rec.Present {
			present++
		}
	}
	return float64(present) / float64(len(v.attendance)) * 100
}

// Summary renders the student overview.
func (v *StudentView) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Student dashboard for %s\n", v.user.Name)
	fmt.Fprintf(&b, "Ratings submitted: %d\n", len(v.ratings))
	for _, r := range v.ratings {
		fmt.Fprintf(&b, "  %s (%s): %d/5\n", r.LecturerName, r.ModuleCode, r.Rating)
	}
	fmt.Fprintf(&b, "Attendance records: %d (%.0f%% present)\n", len(v.attendance), v.AttendanceRate())
	return b.String()
}
