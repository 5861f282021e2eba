package models

import "time"

// VideoProgress is the single record of one user's watch state on one video.
// At most one document exists per (user_id, video_id) pair.
type VideoProgress struct {
	ID             string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         string    `bson:"user_id" json:"userId,omitempty"`
	VideoID        string    `bson:"video_id" json:"videoId,omitempty"`
	WatchedSeconds int       `bson:"watched_seconds" json:"watchedSeconds"`
	Completed      bool      `bson:"completed" json:"completed"`
	LastWatched    time.Time `bson:"last_watched" json:"lastWatched,omitempty"`
}
