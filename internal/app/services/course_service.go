package services

import (
	"context"

	"github.com/tumelo/reportal/internal/app/models"
)

// courseService implements CourseService over the course store.
type courseService struct {
	courses CourseStore
}

// NewCourseService creates a new CourseService
func NewCourseService(courses CourseStore) CourseService {
	return &courseService{courses: courses}
}

func (s *courseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.ListCourses(ctx)
}
