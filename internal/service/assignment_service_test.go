package service

import (
	"context"
	"errors"
	"testing"

	"course-service/internal/models"
)

func newAssignmentFixture() (*AssignmentService, *fakeAssignmentStore, *fakeSubmissionStore) {
	assignments := newFakeAssignmentStore()
	submissions := &fakeSubmissionStore{}
	return NewAssignmentService(assignments, submissions), assignments, submissions
}

func seedAssignment(store *fakeAssignmentStore) models.Assignment {
	a := models.Assignment{
		ID:       "a1",
		CourseID: "c1",
		Title:    "Quiz 1",
		Questions: []models.AssignmentQuestion{
			{Question: "q1", Options: []string{"a", "b"}, CorrectAnswer: 1},
			{Question: "q2", Options: []string{"a", "b"}, CorrectAnswer: 0},
		},
	}
	store.assignments[a.ID] = a
	return a
}

func TestSubmitScoresAndPersists(t *testing.T) {
	svc, assignments, submissions := newAssignmentFixture()
	seedAssignment(assignments)
	ctx := context.Background()

	sub, err := svc.Submit(ctx, "a1", "u1", []models.Answer{{SelectedOption: 1}, {SelectedOption: 0}})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Score != 100 {
		t.Errorf("expected score 100, got %v", sub.Score)
	}
	if len(submissions.submissions) != 1 {
		t.Fatalf("expected 1 stored submission, got %d", len(submissions.submissions))
	}
	if submissions.submissions[0].UserID != "u1" || submissions.submissions[0].AssignmentID != "a1" {
		t.Error("stored submission not keyed to caller and assignment")
	}
	if sub.SubmittedAt.IsZero() {
		t.Error("expected a submission timestamp")
	}
}

func TestSubmitHalfCorrect(t *testing.T) {
	svc, assignments, _ := newAssignmentFixture()
	seedAssignment(assignments)

	sub, err := svc.Submit(context.Background(), "a1", "u1", []models.Answer{{SelectedOption: 0}, {SelectedOption: 0}})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Score != 50 {
		t.Errorf("expected score 50, got %v", sub.Score)
	}
}

func TestSubmitAssignmentMissing(t *testing.T) {
	svc, _, _ := newAssignmentFixture()
	if _, err := svc.Submit(context.Background(), "ghost", "u1", nil); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("expected ErrAssignmentNotFound, got %v", err)
	}
}

// Repeat submissions are kept as independent records, never deduplicated.
func TestSubmitTwiceKeepsBothAttempts(t *testing.T) {
	svc, assignments, submissions := newAssignmentFixture()
	seedAssignment(assignments)
	ctx := context.Background()

	first, err := svc.Submit(ctx, "a1", "u1", []models.Answer{{SelectedOption: 1}, {SelectedOption: 0}})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Submit(ctx, "a1", "u1", []models.Answer{{SelectedOption: 0}, {SelectedOption: 1}})
	if err != nil {
		t.Fatal(err)
	}

	if len(submissions.submissions) != 2 {
		t.Fatalf("expected 2 stored submissions, got %d", len(submissions.submissions))
	}
	if first.ID == second.ID {
		t.Error("expected distinct submission ids")
	}
	if first.Score != 100 || second.Score != 0 {
		t.Errorf("expected scores 100 and 0, got %v and %v", first.Score, second.Score)
	}
}

func TestCreateAssignmentRejectsBadKey(t *testing.T) {
	svc, _, _ := newAssignmentFixture()
	bad := &models.Assignment{
		CourseID: "c1",
		Title:    "Quiz",
		Questions: []models.AssignmentQuestion{
			{Question: "q", Options: []string{"only"}, CorrectAnswer: 3},
		},
	}
	if err := svc.CreateAssignment(context.Background(), bad); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListSubmissionsJoinsAssignments(t *testing.T) {
	svc, assignments, submissions := newAssignmentFixture()
	seedAssignment(assignments)

	submissions.submissions = append(submissions.submissions,
		models.AssignmentSubmission{ID: "s1", AssignmentID: "a1", UserID: "u1", Score: 100},
		models.AssignmentSubmission{ID: "s2", AssignmentID: "deleted", UserID: "u1", Score: 50},
		models.AssignmentSubmission{ID: "s3", AssignmentID: "a1", UserID: "someone-else", Score: 0},
	)

	listed, err := svc.ListSubmissionsForUser(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 submissions for u1, got %d", len(listed))
	}
	for _, entry := range listed {
		switch entry.ID {
		case "s1":
			if entry.Assignment == nil || entry.Assignment.Title != "Quiz 1" {
				t.Error("expected s1 joined with its assignment")
			}
		case "s2":
			if entry.Assignment != nil {
				t.Error("expected s2 to carry a nil assignment after deletion")
			}
		default:
			t.Errorf("unexpected submission %s in listing", entry.ID)
		}
	}
}
