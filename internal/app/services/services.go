// Package services holds the business operations between the HTTP controllers
// and the repositories. Controllers depend on the interfaces declared here;
// tests substitute mocks for the store interfaces.
package services

import (
	"context"

	"github.com/tumelo/reportal/internal/app/models"
)

// UserStore is the user persistence surface the services consume.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListLecturers(ctx context.Context) ([]*models.User, error)
}

// RatingStore is the rating persistence surface.
type RatingStore interface {
	CreateRating(ctx context.Context, rating *models.Rating) (int64, error)
	ListRatings(ctx context.Context) ([]*models.Rating, error)
	ListRatingsByStudent(ctx context.Context, studentID int64) ([]*models.Rating, error)
	ListRatingsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Rating, error)
}

// ReportStore is the report persistence surface.
type ReportStore interface {
	CreateReport(ctx context.Context, report *models.Report) (int64, error)
	ListReports(ctx context.Context) ([]*models.Report, error)
	ListReportsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Report, error)
}

// ModuleStore reads one per-stream module table at a time.
type ModuleStore interface {
	ListStreamModules(ctx context.Context, table string) ([]*models.Module, error)
}

// CourseStore reads the courses reference table.
type CourseStore interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
}

// AuthService handles registration, login and profile lookups.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

// RatingService handles rating submission and listings.
type RatingService interface {
	CreateRating(ctx context.Context, rating *models.Rating) (int64, error)
	ListRatings(ctx context.Context) ([]*models.Rating, error)
	ListRatingsByStudent(ctx context.Context, studentID int64) ([]*models.Rating, error)
	ListRatingsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Rating, error)
}

// ReportService handles lecture report submission and listings.
type ReportService interface {
	CreateReport(ctx context.Context, report *models.Report) (int64, error)
	ListReports(ctx context.Context) ([]*models.Report, error)
	ListReportsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Report, error)
}

// LecturerService handles the PRL lecturer roster.
type LecturerService interface {
	ListLecturers(ctx context.Context) ([]*models.User, error)
	AddLecturer(ctx context.Context, name, email string) (int64, error)
}

// ModuleService serves stream and module reference data.
type ModuleService interface {
	ListStreams() []models.Stream
	ListAllModules(ctx context.Context) ([]*models.Module, error)
	ListModulesByStream(ctx context.Context, stream string) ([]*models.Module, error)
}

// CourseService serves the courses reference table.
type CourseService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
}
