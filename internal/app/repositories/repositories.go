package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared not-found error for all repositories.
var ErrNotFound = errors.New("record not found")

// Repositories bundles every repository for dependency wiring.
type Repositories struct {
	UserRepository   *UserRepository
	RatingRepository *RatingRepository
	ReportRepository *ReportRepository
	ModuleRepository *ModuleRepository
	CourseRepository *CourseRepository
}

// NewRepositories creates all repositories over a shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db),
		RatingRepository: NewRatingRepository(db),
		ReportRepository: NewReportRepository(db),
		ModuleRepository: NewModuleRepository(db),
		CourseRepository: NewCourseRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}
