package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/pkg/logger"
)

// RatingRepository handles rating database operations
type RatingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateRating inserts a new rating and returns its ID
func (r *RatingRepository) CreateRating(ctx context.Context, rating *models.Rating) (int64, error) {
	sql, args, err := r.sb.Insert("ratings").
		Columns("student_id", "lecturer_id", "lecturer_name", "module_name", "module_code",
			"programme", "year_of_study", "rating", "comments", "created_at").
		Values(rating.StudentID, rating.LecturerID, rating.LecturerName, rating.ModuleName,
			rating.ModuleCode, rating.Programme, rating.YearOfStudy, rating.Rating,
			rating.Comments, squirrel.Expr("NOW()")).
		Suffix("RETURNING rating_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create rating SQL")
		return 0, fmt.Errorf("failed to build create rating query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create rating query")
		return 0, fmt.Errorf("error creating rating: %w", err)
	}

	return id, nil
}

// ratingColumns are the rating row columns joined with the lecturer name.
var ratingColumns = []string{
	"r.rating_id", "r.student_id", "r.lecturer_id",
	"COALESCE(u.name, r.lecturer_name) AS lecturer_name",
	"r.module_name", "r.module_code", "r.programme", "r.year_of_study",
	"r.rating", "r.comments", "r.created_at",
}

// ListRatings retrieves all ratings, newest first, with lecturer names joined.
func (r *RatingRepository) ListRatings(ctx context.Context) ([]*models.Rating, error) {
	builder := r.sb.Select(ratingColumns...).
		From("ratings r").
		LeftJoin("users u ON r.lecturer_id = u.user_id").
		OrderBy("r.created_at DESC")
	return r.queryRatings(ctx, builder, false)
}

// ListRatingsByStudent retrieves one student's ratings, newest first.
func (r *RatingRepository) ListRatingsByStudent(ctx context.Context, studentID int64) ([]*models.Rating, error) {
	builder := r.sb.Select(ratingColumns...).
		From("ratings r").
		LeftJoin("users u ON r.lecturer_id = u.user_id").
		Where(squirrel.Eq{"r.student_id": studentID}).
		OrderBy("r.created_at DESC")
	return r.queryRatings(ctx, builder, false)
}

// ListRatingsByLecturer retrieves the ratings targeting a lecturer, newest
// first, with the rating student's name joined in.
func (r *RatingRepository) ListRatingsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Rating, error) {
	cols := append(append([]string{}, ratingColumns...), "s.name AS student_name")
	builder := r.sb.Select(cols...).
		From("ratings r").
		Join("users s ON r.student_id = s.user_id").
		LeftJoin("users u ON r.lecturer_id = u.user_id").
		Where(squirrel.Eq{"r.lecturer_id": lecturerID}).
		OrderBy("r.created_at DESC")
	return r.queryRatings(ctx, builder, true)
}

func (r *RatingRepository) queryRatings(ctx context.Context, builder squirrel.SelectBuilder, withStudent bool) ([]*models.Rating, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list ratings SQL")
		return nil, fmt.Errorf("failed to build list ratings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list ratings query")
		return nil, fmt.Errorf("error querying ratings: %w", err)
	}
	defer rows.Close()

	ratings := []*models.Rating{}
	for rows.Next() {
		rating := &models.Rating{}
		dest := []any{
			&rating.ID, &rating.StudentID, &rating.LecturerID, &rating.LecturerName,
			&rating.ModuleName, &rating.ModuleCode, &rating.Programme, &rating.YearOfStudy,
			&rating.Rating, &rating.Comments, &rating.CreatedAt,
		}
		if withStudent {
			dest = append(dest, &rating.StudentName)
		}
		if err := rows.Scan(dest...); err != nil {
			logger.Error().Err(err).Msg("Error scanning rating row")
			return nil, fmt.Errorf("error scanning rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating rating rows")
		return nil, fmt.Errorf("error iterating rating rows: %w", err)
	}

	return ratings, nil
}
