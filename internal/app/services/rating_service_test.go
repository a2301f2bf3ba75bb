package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/pkg/apperrors"
)

func TestRatingService_CreateRating(t *testing.T) {
	store := new(MockRatingStore)
	store.On("CreateRating", mock.Anything, mock.MatchedBy(func(r *models.Rating) bool {
		return r.Rating == 4 && r.Comments == "Great lecturer"
	})).Return(int64(11), nil)

	svc := NewRatingService(store)
	id, err := svc.CreateRating(context.Background(), &models.Rating{
		StudentID:  1,
		LecturerID: 2,
		Rating:     4,
		Comments:   "Great lecturer",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestRatingService_CreateRating_DefaultComment(t *testing.T) {
	store := new(MockRatingStore)
	store.On("CreateRating", mock.Anything, mock.MatchedBy(func(r *models.Rating) bool {
		return r.Comments == "No additional comments"
	})).Return(int64(12), nil)

	svc := NewRatingService(store)
	_, err := svc.CreateRating(context.Background(), &models.Rating{
		StudentID:  1,
		LecturerID: 2,
		Rating:     5,
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestRatingService_CreateRating_OutOfRange(t *testing.T) {
	store := new(MockRatingStore)
	svc := NewRatingService(store)

	for _, value := range []int{0, -1, 6} {
		_, err := svc.CreateRating(context.Background(), &models.Rating{
			StudentID:  1,
			LecturerID: 2,
			Rating:     value,
		})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest, "rating %d must be rejected", value)
	}
	store.AssertNotCalled(t, "CreateRating", mock.Anything, mock.Anything)
}
