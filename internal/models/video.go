package models

import (
	"fmt"
	"time"
)

const (
	MinVideoDuration = 1
	MaxVideoDuration = 3600
)

// VideoResolutions is the closed set of accepted resolution labels.
var VideoResolutions = map[string]bool{
	"720p":  true,
	"1080p": true,
	"1440p": true,
	"2160p": true,
}

const DefaultResolution = "1080p"

type Video struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	CourseID    string    `bson:"course_id" json:"courseId"`
	SectionID   string    `bson:"section_id,omitempty" json:"sectionId,omitempty"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	URL         string    `bson:"url" json:"url"`
	Duration    int       `bson:"duration" json:"duration"` // seconds
	Resolution  string    `bson:"resolution" json:"resolution"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// Validate checks the bounded fields. An empty resolution is coerced to the
// default before checking.
func (v *Video) Validate() error {
	if v.Title == "" {
		return fmt.Errorf("video title is required")
	}
	if v.URL == "" {
		return fmt.Errorf("video url is required")
	}
	if v.Duration < MinVideoDuration || v.Duration > MaxVideoDuration {
		return fmt.Errorf("duration must be between 1 second and 1 hour (3600 seconds)")
	}
	if v.Resolution == "" {
		v.Resolution = DefaultResolution
	}
	if !VideoResolutions[v.Resolution] {
		return fmt.Errorf("resolution %q is not supported", v.Resolution)
	}
	return nil
}

// FormatDuration renders the duration as MM:SS, or HH:MM:SS past the hour.
func (v *Video) FormatDuration() string {
	hours := v.Duration / 3600
	minutes := (v.Duration % 3600) / 60
	seconds := v.Duration % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// VideoWithProgress pairs a video with one user's watch state. Progress is
// nil when the user has never opened the video.
type VideoWithProgress struct {
	Video
	Progress *ProgressInfo `json:"progress"`
}

type ProgressInfo struct {
	WatchedSeconds int       `json:"watchedSeconds"`
	Completed      bool      `json:"completed"`
	LastWatched    time.Time `json:"lastWatched"`
}
