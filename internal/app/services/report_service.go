package services

import (
	"context"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/pkg/apperrors"
)

// reportService implements ReportService over the report store.
type reportService struct {
	reports ReportStore
}

// NewReportService creates a new ReportService
func NewReportService(reports ReportStore) ReportService {
	return &reportService{reports: reports}
}

// CreateReport stores one lecture session record.
func (s *reportService) CreateReport(ctx context.Context, report *models.Report) (int64, error) {
	if report.StudentsPresent < 0 || report.TotalStudents < 0 {
		return 0, apperrors.NewBadRequestError("Attendance counts cannot be negative")
	}
	if report.TotalStudents > 0 && report.StudentsPresent > report.TotalStudents {
		return 0, apperrors.NewBadRequestError("Students present cannot exceed total students")
	}
	return s.reports.CreateReport(ctx, report)
}

func (s *reportService) ListReports(ctx context.Context) ([]*models.Report, error) {
	return s.reports.ListReports(ctx)
}

func (s *reportService) ListReportsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Report, error) {
	return s.reports.ListReportsByLecturer(ctx, lecturerID)
}
