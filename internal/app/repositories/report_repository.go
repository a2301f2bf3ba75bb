package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/pkg/logger"
)

// ReportRepository handles lecture report database operations
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateReport inserts a new lecture report and returns its ID
func (r *ReportRepository) CreateReport(ctx context.Context, report *models.Report) (int64, error) {
	sql, args, err := r.sb.Insert("reports").
		Columns("lecturer_id", "course_code", "week_of_reporting", "date_of_lecture", "topic",
			"learning_outcomes", "recommendations", "students_present", "total_students").
		Values(report.LecturerID, report.CourseCode, report.WeekOfReporting, report.DateOfLecture,
			report.Topic, report.LearningOutcomes, report.Recommendations,
			report.StudentsPresent, report.TotalStudents).
		Suffix("RETURNING report_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create report SQL")
		return 0, fmt.Errorf("failed to build create report query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create report query")
		return 0, fmt.Errorf("error creating report: %w", err)
	}

	return id, nil
}

var reportColumns = []string{
	"r.report_id", "r.lecturer_id", "r.course_code", "r.week_of_reporting",
	"r.date_of_lecture", "r.topic", "r.learning_outcomes", "r.recommendations",
	"r.students_present", "r.total_students", "r.created_at",
	"u.name AS lecturer_name",
}

// ListReports retrieves all reports, newest first, with lecturer names joined.
func (r *ReportRepository) ListReports(ctx context.Context) ([]*models.Report, error) {
	builder := r.sb.Select(reportColumns...).
		From("reports r").
		Join("users u ON r.lecturer_id = u.user_id").
		OrderBy("r.created_at DESC")
	return r.queryReports(ctx, builder)
}

// ListReportsByLecturer retrieves one lecturer's reports, newest first.
func (r *ReportRepository) ListReportsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Report, error) {
	builder := r.sb.Select(reportColumns...).
		From("reports r").
		Join("users u ON r.lecturer_id = u.user_id").
		Where(squirrel.Eq{"r.lecturer_id": lecturerID}).
		OrderBy("r.created_at DESC")
	return r.queryReports(ctx, builder)
}

func (r *ReportRepository) queryReports(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Report, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list reports SQL")
		return nil, fmt.Errorf("failed to build list reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reports query")
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	reports := []*models.Report{}
	for rows.Next() {
		report := &models.Report{}
		if err := rows.Scan(
			&report.ID, &report.LecturerID, &report.CourseCode, &report.WeekOfReporting,
			&report.DateOfLecture, &report.Topic, &report.LearningOutcomes, &report.Recommendations,
			&report.StudentsPresent, &report.TotalStudents, &report.CreatedAt,
			&report.LecturerName,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning report row")
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating report rows")
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return reports, nil
}
