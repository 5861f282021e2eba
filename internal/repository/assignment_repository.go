package repository

import (
	"context"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssignmentRepository struct {
	Col *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{Col: db.Collection("assignments")}
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	_, err := r.Col.InsertOne(ctx, assignment)
	return err
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepository) FindByCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	cur, err := r.Col.Find(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var assignments []models.Assignment
	for cur.Next(ctx) {
		var a models.Assignment
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, cur.Err()
}

// FindByIDs returns the assignments keyed by id. Missing ids are simply
// absent from the map.
func (r *AssignmentRepository) FindByIDs(ctx context.Context, ids []string) (map[string]models.Assignment, error) {
	if len(ids) == 0 {
		return map[string]models.Assignment{}, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	assignments := make(map[string]models.Assignment)
	for cur.Next(ctx) {
		var a models.Assignment
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		assignments[a.ID] = a
	}
	return assignments, cur.Err()
}
