package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-service/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProgressService keeps one watch-state record per (user, video) and
// answers the per-course and per-user progress views.
type ProgressService struct {
	progress ProgressStore
	videos   VideoStore
}

func NewProgressService(progress ProgressStore, videos VideoStore) *ProgressService {
	return &ProgressService{progress: progress, videos: videos}
}

// UpsertProgress overwrites the stored watch state for the pair. The new
// value wins even when it is smaller than what was stored: rewinding a
// video legitimately regresses watchedSeconds.
func (s *ProgressService) UpsertProgress(ctx context.Context, userID, videoID string, watchedSeconds int, completed bool) (*models.VideoProgress, error) {
	if watchedSeconds < 0 {
		return nil, fmt.Errorf("%w: watchedSeconds must not be negative", ErrInvalidInput)
	}
	if _, err := s.videos.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return s.progress.Upsert(ctx, &models.VideoProgress{
		ID:             uuid.NewString(),
		UserID:         userID,
		VideoID:        videoID,
		WatchedSeconds: watchedSeconds,
		Completed:      completed,
		LastWatched:    time.Now(),
	})
}

// GetProgress never fails on absence: a pair with no stored record answers
// the zero-value default.
func (s *ProgressService) GetProgress(ctx context.Context, userID, videoID string) (*models.VideoProgress, error) {
	progress, err := s.progress.FindByUserAndVideo(ctx, userID, videoID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.VideoProgress{WatchedSeconds: 0, Completed: false}, nil
		}
		return nil, err
	}
	return progress, nil
}

func (s *ProgressService) TotalWatchedSeconds(ctx context.Context, userID string) (int, error) {
	return s.progress.TotalWatchedSeconds(ctx, userID)
}

// VideosWithProgress lists a course's videos sorted by order, left-joined
// with the user's progress. Unwatched videos carry a nil progress, not an
// error.
func (s *ProgressService) VideosWithProgress(ctx context.Context, courseID, userID string) ([]models.VideoWithProgress, error) {
	videos, err := s.videos.FindByCourse(ctx, courseID, true)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}
	progresses, err := s.progress.FindByUserAndVideos(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.VideoWithProgress, len(videos))
	for i, v := range videos {
		result[i] = models.VideoWithProgress{Video: v}
		if p, ok := progresses[v.ID]; ok {
			result[i].Progress = &models.ProgressInfo{
				WatchedSeconds: p.WatchedSeconds,
				Completed:      p.Completed,
				LastWatched:    p.LastWatched,
			}
		}
	}
	return result, nil
}
