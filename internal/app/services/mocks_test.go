package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tumelo/reportal/internal/app/models"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) ListLecturers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

type MockRatingStore struct {
	mock.Mock
}

func (m *MockRatingStore) CreateRating(ctx context.Context, rating *models.Rating) (int64, error) {
	args := m.Called(ctx, rating)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingStore) ListRatings(ctx context.Context) ([]*models.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rating), args.Error(1)
}

func (m *MockRatingStore) ListRatingsByStudent(ctx context.Context, studentID int64) ([]*models.Rating, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rating), args.Error(1)
}

func (m *MockRatingStore) ListRatingsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Rating, error) {
	args := m.Called(ctx, lecturerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Rating), args.Error(1)
}

type MockReportStore struct {
	mock.Mock
}

func (m *MockReportStore) CreateReport(ctx context.Context, report *models.Report) (int64, error) {
	args := m.Called(ctx, report)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportStore) ListReports(ctx context.Context) ([]*models.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Report), args.Error(1)
}

func (m *MockReportStore) ListReportsByLecturer(ctx context.Context, lecturerID int64) ([]*models.Report, error) {
	args := m.Called(ctx, lecturerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Report), args.Error(1)
}

type MockModuleStore struct {
	mock.Mock
}

func (m *MockModuleStore) ListStreamModules(ctx context.Context, table string) ([]*models.Module, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Module), args.Error(1)
}

type MockCourseStore struct {
	mock.Mock
}

func (m *MockCourseStore) ListCourses(ctx context.Context) ([]*models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Course), args.Error(1)
}
