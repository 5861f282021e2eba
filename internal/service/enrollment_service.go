package service

import (
	"context"
	"errors"
	"time"

	"course-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type EnrollmentService struct {
	enrollments EnrollmentStore
	courses     CourseStore
}

func NewEnrollmentService(enrollments EnrollmentStore, courses CourseStore) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, courses: courses}
}

// Enroll adds the user to the course. Enrolling twice answers the existing
// enrollment instead of creating a duplicate.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID, userID string) (*models.Enrollment, error) {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	existing, err := s.enrollments.FindByCourseAndUser(ctx, courseID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	enrollment := &models.Enrollment{
		ID:         uuid.NewString(),
		CourseID:   courseID,
		UserID:     userID,
		Status:     models.EnrollmentStatusActive,
		EnrolledAt: time.Now(),
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ListForUser(ctx context.Context, userID string) ([]models.Enrollment, error) {
	return s.enrollments.FindByUser(ctx, userID)
}

func (s *EnrollmentService) CountActive(ctx context.Context, courseID string) (int64, error) {
	return s.enrollments.CountActiveByCourse(ctx, courseID)
}
