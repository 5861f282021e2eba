package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-service/internal/cache"
	"course-service/internal/models"
	"course-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContentService handles instructor authoring: appending sections, videos
// and deadlines to a course. Append positions come from the per-course
// counters, so order values are assigned 1..N with no duplicates even under
// concurrent appends.
type ContentService struct {
	courses   CourseStore
	sections  SectionStore
	videos    VideoStore
	deadlines DeadlineStore
	counters  CounterStore
	cache     *cache.Cache
}

func NewContentService(courses CourseStore, sections SectionStore, videos VideoStore, deadlines DeadlineStore, counters CounterStore, c *cache.Cache) *ContentService {
	return &ContentService{
		courses:   courses,
		sections:  sections,
		videos:    videos,
		deadlines: deadlines,
		counters:  counters,
		cache:     c,
	}
}

func (s *ContentService) courseExists(ctx context.Context, courseID string) error {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCourseNotFound
		}
		return err
	}
	return nil
}

func (s *ContentService) AddSection(ctx context.Context, courseID, title string) (*models.Section, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: section title is required", ErrInvalidInput)
	}
	if err := s.courseExists(ctx, courseID); err != nil {
		return nil, err
	}
	order, err := s.counters.Next(ctx, courseID, repository.KindSection)
	if err != nil {
		return nil, err
	}
	section := &models.Section{
		ID:        uuid.NewString(),
		CourseID:  courseID,
		Title:     title,
		Order:     order,
		CreatedAt: time.Now(),
	}
	if err := s.sections.Create(ctx, section); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, detailCacheKey(courseID))
	return section, nil
}

func (s *ContentService) Sections(ctx context.Context, courseID string) ([]models.Section, error) {
	return s.sections.FindByCourse(ctx, courseID)
}

// AddVideo appends a video to the course. A referenced section must exist;
// duration and resolution bounds are enforced before anything is written.
func (s *ContentService) AddVideo(ctx context.Context, courseID string, video *models.Video) (*models.Video, error) {
	if err := s.courseExists(ctx, courseID); err != nil {
		return nil, err
	}
	if video.SectionID != "" {
		if _, err := s.sections.FindByID(ctx, video.SectionID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrSectionNotFound
			}
			return nil, err
		}
	}
	if err := video.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	order, err := s.counters.Next(ctx, courseID, repository.KindVideo)
	if err != nil {
		return nil, err
	}
	video.ID = uuid.NewString()
	video.CourseID = courseID
	video.Order = order
	video.CreatedAt = time.Now()
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, detailCacheKey(courseID))
	return video, nil
}

// Videos is the teacher-facing listing, sorted ascending by order.
func (s *ContentService) Videos(ctx context.Context, courseID string) ([]models.Video, error) {
	return s.videos.FindByCourse(ctx, courseID, true)
}

func (s *ContentService) AddDeadline(ctx context.Context, courseID string, deadline *models.Deadline) (*models.Deadline, error) {
	if deadline.Title == "" {
		return nil, fmt.Errorf("%w: deadline title is required", ErrInvalidInput)
	}
	if deadline.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: deadline dueDate is required", ErrInvalidInput)
	}
	if err := s.courseExists(ctx, courseID); err != nil {
		return nil, err
	}
	deadline.ID = uuid.NewString()
	deadline.CourseID = courseID
	deadline.CreatedAt = time.Now()
	if err := s.deadlines.Create(ctx, deadline); err != nil {
		return nil, err
	}
	return deadline, nil
}

func (s *ContentService) Deadlines(ctx context.Context, courseID string) ([]models.Deadline, error) {
	return s.deadlines.FindByCourse(ctx, courseID)
}
