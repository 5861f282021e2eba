package repository

import (
	"context"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EnrollmentRepository struct {
	Col *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{Col: db.Collection("enrollments")}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	_, err := r.Col.InsertOne(ctx, enrollment)
	return err
}

func (r *EnrollmentRepository) FindByCourseAndUser(ctx context.Context, courseID, userID string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.Col.FindOne(ctx, bson.M{"course_id": courseID, "user_id": userID}).Decode(&enrollment)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) FindByUser(ctx context.Context, userID string) ([]models.Enrollment, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var enrollments []models.Enrollment
	for cur.Next(ctx) {
		var e models.Enrollment
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, cur.Err()
}

func (r *EnrollmentRepository) CountActiveByCourse(ctx context.Context, courseID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{
		"course_id": courseID,
		"status":    models.EnrollmentStatusActive,
	})
}
