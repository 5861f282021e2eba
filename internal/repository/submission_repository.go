package repository

import (
	"context"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubmissionRepository struct {
	Col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{Col: db.Collection("assignment_submissions")}
}

// Create inserts unconditionally: repeat attempts by the same user on the
// same assignment are kept as separate documents.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.AssignmentSubmission) error {
	_, err := r.Col.InsertOne(ctx, submission)
	return err
}

func (r *SubmissionRepository) FindByUser(ctx context.Context, userID string) ([]models.AssignmentSubmission, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var submissions []models.AssignmentSubmission
	for cur.Next(ctx) {
		var s models.AssignmentSubmission
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, cur.Err()
}
