package service

import "errors"

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrVideoNotFound      = errors.New("video not found")
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrInvalidInput marks constraint violations in request payloads. The
	// boundary maps it to a 400; everything else unexpected becomes a 500.
	ErrInvalidInput = errors.New("invalid input")
)
