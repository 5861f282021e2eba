package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-service/internal/cache"
	"course-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// CourseService owns the course catalog: listing, creation, the aggregated
// detail view and the cascade delete.
type CourseService struct {
	courses   CourseStore
	sections  SectionStore
	videos    VideoStore
	deadlines DeadlineStore
	counters  CounterStore
	cache     *cache.Cache
}

func NewCourseService(courses CourseStore, sections SectionStore, videos VideoStore, deadlines DeadlineStore, counters CounterStore, c *cache.Cache) *CourseService {
	return &CourseService{
		courses:   courses,
		sections:  sections,
		videos:    videos,
		deadlines: deadlines,
		counters:  counters,
		cache:     c,
	}
}

func detailCacheKey(courseID string) string {
	return "course:detail:" + courseID
}

func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courses.FindAll(ctx)
}

func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if course.Title == "" {
		return fmt.Errorf("%w: course title is required", ErrInvalidInput)
	}
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now()
	}
	return s.courses.Create(ctx, course)
}

// GetCourseDetail returns the course with its sections sorted by order and
// its videos. The aggregate is cached; mutations to the course's content
// invalidate the entry.
func (s *CourseService) GetCourseDetail(ctx context.Context, courseID string) (*models.CourseDetail, error) {
	var cached models.CourseDetail
	if hit, err := s.cache.Get(ctx, detailCacheKey(courseID), &cached); err == nil && hit {
		return &cached, nil
	}

	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	sections, err := s.sections.FindByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	videos, err := s.videos.FindByCourse(ctx, courseID, false)
	if err != nil {
		return nil, err
	}

	detail := &models.CourseDetail{
		Course:   *course,
		Sections: sections,
		Videos:   videos,
	}
	// A failed cache write is not a failure of the read.
	_ = s.cache.Set(ctx, detailCacheKey(courseID), detail)
	return detail, nil
}

// DeleteCourse removes the course and everything it owns: videos, deadlines,
// sections, the course document and its order counters, in that order. The
// deletes are independent writes, not a transaction; a crash mid-sequence
// can leave orphaned children behind.
func (s *CourseService) DeleteCourse(ctx context.Context, courseID string) error {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCourseNotFound
		}
		return err
	}
	if err := s.videos.DeleteByCourse(ctx, courseID); err != nil {
		return err
	}
	if err := s.deadlines.DeleteByCourse(ctx, courseID); err != nil {
		return err
	}
	if err := s.sections.DeleteByCourse(ctx, courseID); err != nil {
		return err
	}
	if err := s.courses.Delete(ctx, courseID); err != nil {
		return err
	}
	if err := s.counters.DeleteByCourse(ctx, courseID); err != nil {
		return err
	}
	return s.cache.Invalidate(ctx, detailCacheKey(courseID))
}
