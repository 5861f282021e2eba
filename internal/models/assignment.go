package models

import (
	"fmt"
	"time"
)

type AssignmentQuestion struct {
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correct_answer" json:"correctAnswer"`
}

type Assignment struct {
	ID          string               `bson:"_id,omitempty" json:"id"`
	CourseID    string               `bson:"course_id" json:"courseId"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Questions   []AssignmentQuestion `bson:"questions" json:"questions"`
	DueDate     time.Time            `bson:"due_date" json:"dueDate"`
	CreatedAt   time.Time            `bson:"created_at" json:"createdAt"`
}

// Answer is one picked option, paired positionally with the assignment's
// questions at grading time.
type Answer struct {
	QuestionIndex  int `bson:"question_index" json:"questionIndex"`
	SelectedOption int `bson:"selected_option" json:"selectedOption"`
}

type AssignmentSubmission struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	AssignmentID string    `bson:"assignment_id" json:"assignmentId"`
	UserID       string    `bson:"user_id" json:"userId"`
	Answers      []Answer  `bson:"answers" json:"answers"`
	Score        float64   `bson:"score" json:"score"`
	SubmittedAt  time.Time `bson:"submitted_at" json:"submittedAt"`
}

// SubmissionWithAssignment annotates a submission with its assignment.
// Assignment is nil when the assignment was deleted after the attempt.
type SubmissionWithAssignment struct {
	AssignmentSubmission
	Assignment *Assignment `json:"assignment"`
}

// Validate rejects assignments whose answer keys point outside their own
// option lists.
func (a *Assignment) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("assignment title is required")
	}
	if a.CourseID == "" {
		return fmt.Errorf("assignment courseId is required")
	}
	for i, q := range a.Questions {
		if q.Question == "" {
			return fmt.Errorf("question %d: text is required", i)
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("question %d: at least one option is required", i)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("question %d: correctAnswer %d is out of range", i, q.CorrectAnswer)
		}
	}
	return nil
}

// Grade scores a set of submitted answers against the answer key and returns
// a percentage in [0,100].
//
// Answers are paired with questions by position. A shorter answers slice
// grades only the submitted prefix while the denominator stays the full
// question count, so missing answers count as wrong. Answers beyond the
// question count are ignored. An assignment with no questions scores 0.
func (a *Assignment) Grade(answers []Answer) float64 {
	if len(a.Questions) == 0 {
		return 0
	}
	correct := 0
	for i := range a.Questions {
		if i >= len(answers) {
			break
		}
		if answers[i].SelectedOption == a.Questions[i].CorrectAnswer {
			correct++
		}
	}
	return float64(correct) / float64(len(a.Questions)) * 100
}
