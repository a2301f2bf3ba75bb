package services

import (
	"context"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/pkg/apperrors"
)

// ratingService implements RatingService over the rating store.
type ratingService struct {
	ratings RatingStore
}

// NewRatingService creates a new RatingService
func NewRatingService(ratings RatingStore) RatingService {
	return &ratingService{ratings: ratings}
}

// CreateRating stores a student's rating of a lecturer. Ratings are immutable
// once created; there is no update path.
func (s *ratingService) CreateRating(ctx context.Context, rating *models.Rating) (int64, error) {
	if rating.Rating < 1 || rating.Rating > 5 {
		return 0, apperrors.NewBadRequestError("Rating must be between 1 and 5")
	}
	if rating.Comments == "" {
		rating.Comments = "No additional comments"
	}
	return s.ratings.CreateRating(ctx, rating)
}

func (s *ratingService) ListRatings(ctx context.Context) ([]*models.Rating, error) {
	return s.ratings.ListRatings(ctx)
}

func (s *ratingService) ListRatingsByStudent(ctx context.Context, studentID int64) ([]*models.Rating, error) {
	return s.ratings.ListRatingsByStudent(ctx, studentID)
}

func (s *ratingService) ListRatingsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Rating, error) {
	return s.ratings.ListRatingsByLecturer(ctx, lecturerID)
}
