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

// AssignmentService creates multiple-choice assignments and grades
// submissions against them.
type AssignmentService struct {
	assignments AssignmentStore
	submissions SubmissionStore
}

func NewAssignmentService(assignments AssignmentStore, submissions SubmissionStore) *AssignmentService {
	return &AssignmentService{assignments: assignments, submissions: submissions}
}

func (s *AssignmentService) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	if err := assignment.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	assignment.ID = uuid.NewString()
	assignment.CreatedAt = time.Now()
	return s.assignments.Create(ctx, assignment)
}

func (s *AssignmentService) ListByCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	return s.assignments.FindByCourse(ctx, courseID)
}

// Submit grades the answers against the assignment's key and records the
// attempt. Every call inserts a fresh submission; earlier attempts by the
// same user are kept untouched.
func (s *AssignmentService) Submit(ctx context.Context, assignmentID, userID string, answers []models.Answer) (*models.AssignmentSubmission, error) {
	assignment, err := s.assignments.FindByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	submission := &models.AssignmentSubmission{
		ID:           uuid.NewString(),
		AssignmentID: assignmentID,
		UserID:       userID,
		Answers:      answers,
		Score:        assignment.Grade(answers),
		SubmittedAt:  time.Now(),
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// ListSubmissionsForUser returns the user's submissions, each joined with
// its assignment. A submission whose assignment has since been deleted is
// still listed, with a nil assignment.
func (s *AssignmentService) ListSubmissionsForUser(ctx context.Context, userID string) ([]models.SubmissionWithAssignment, error) {
	submissions, err := s.submissions.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(submissions))
	seen := make(map[string]bool)
	for _, sub := range submissions {
		if !seen[sub.AssignmentID] {
			seen[sub.AssignmentID] = true
			ids = append(ids, sub.AssignmentID)
		}
	}
	assignments, err := s.assignments.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	joined := make([]models.SubmissionWithAssignment, 0, len(submissions))
	for _, sub := range submissions {
		entry := models.SubmissionWithAssignment{AssignmentSubmission: sub}
		if a, ok := assignments[sub.AssignmentID]; ok {
			assignment := a
			entry.Assignment = &assignment
		}
		joined = append(joined, entry)
	}
	return joined, nil
}
