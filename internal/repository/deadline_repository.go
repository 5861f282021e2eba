package repository

import (
	"context"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DeadlineRepository struct {
	Col *mongo.Collection
}

func NewDeadlineRepository(db *mongo.Database) *DeadlineRepository {
	return &DeadlineRepository{Col: db.Collection("deadlines")}
}

func (r *DeadlineRepository) Create(ctx context.Context, deadline *models.Deadline) error {
	_, err := r.Col.InsertOne(ctx, deadline)
	return err
}

// FindByCourse returns the course's deadlines sorted ascending by due date.
func (r *DeadlineRepository) FindByCourse(ctx context.Context, courseID string) ([]models.Deadline, error) {
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var deadlines []models.Deadline
	for cur.Next(ctx) {
		var d models.Deadline
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		deadlines = append(deadlines, d)
	}
	return deadlines, cur.Err()
}

func (r *DeadlineRepository) DeleteByCourse(ctx context.Context, courseID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"course_id": courseID})
	return err
}
