package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tumelo/reportal/internal/app/models"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	args := m.Called(ctx, name, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) CreateRating(ctx context.Context, rating *models.Rating) (int64, error) {
	args := m.Called(ctx, rating)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingService) ListRatings(ctx context.Context) ([]*models.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rating), args.Error(1)
}

func (m *MockRatingService) ListRatingsByStudent(ctx context.Context, studentID int64) ([]*models.Rating, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rating), args.Error(1)
}

func (m *MockRatingService) ListRatingsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Rating, error) {
	args := m.Called(ctx, lecturerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rating), args.Error(1)
}

type MockModuleService struct {
	mock.Mock
}

func (m *MockModuleService) ListStreams() []models.Stream {
	return models.Streams
}

func (m *MockModuleService) ListAllModules(ctx context.Context) ([]*models.Module, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Module), args.Error(1)
}

func (m *MockModuleService) ListModulesByStream(ctx context.Context, stream string) ([]*models.Module, error) {
	args := m.Called(ctx, stream)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Module), args.Error(1)
}
