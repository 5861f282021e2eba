package service

import (
	"context"

	"course-service/internal/models"
)

// Store interfaces consumed by the services. The mongo repositories in
// internal/repository satisfy them; tests substitute in-memory fakes.
// Absence is reported as mongo.ErrNoDocuments by single-document lookups.

type CourseStore interface {
	FindAll(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type SectionStore interface {
	Create(ctx context.Context, section *models.Section) error
	FindByID(ctx context.Context, id string) (*models.Section, error)
	FindByCourse(ctx context.Context, courseID string) ([]models.Section, error)
	DeleteByCourse(ctx context.Context, courseID string) error
}

type VideoStore interface {
	Create(ctx context.Context, video *models.Video) error
	FindByID(ctx context.Context, id string) (*models.Video, error)
	FindByCourse(ctx context.Context, courseID string, sortByOrder bool) ([]models.Video, error)
	DeleteByCourse(ctx context.Context, courseID string) error
}

type DeadlineStore interface {
	Create(ctx context.Context, deadline *models.Deadline) error
	FindByCourse(ctx context.Context, courseID string) ([]models.Deadline, error)
	DeleteByCourse(ctx context.Context, courseID string) error
}

type CounterStore interface {
	Next(ctx context.Context, courseID, kind string) (int, error)
	DeleteByCourse(ctx context.Context, courseID string) error
}

type AssignmentStore interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	FindByID(ctx context.Context, id string) (*models.Assignment, error)
	FindByCourse(ctx context.Context, courseID string) ([]models.Assignment, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]models.Assignment, error)
}

type SubmissionStore interface {
	Create(ctx context.Context, submission *models.AssignmentSubmission) error
	FindByUser(ctx context.Context, userID string) ([]models.AssignmentSubmission, error)
}

type ProgressStore interface {
	Upsert(ctx context.Context, progress *models.VideoProgress) (*models.VideoProgress, error)
	FindByUserAndVideo(ctx context.Context, userID, videoID string) (*models.VideoProgress, error)
	FindByUserAndVideos(ctx context.Context, userID string, videoIDs []string) (map[string]models.VideoProgress, error)
	TotalWatchedSeconds(ctx context.Context, userID string) (int, error)
}

type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	FindByCourseAndUser(ctx context.Context, courseID, userID string) (*models.Enrollment, error)
	FindByUser(ctx context.Context, userID string) ([]models.Enrollment, error)
	CountActiveByCourse(ctx context.Context, courseID string) (int64, error)
}
