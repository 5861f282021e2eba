package repository

import (
	"context"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SectionRepository struct {
	Col *mongo.Collection
}

func NewSectionRepository(db *mongo.Database) *SectionRepository {
	return &SectionRepository{Col: db.Collection("sections")}
}

func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	_, err := r.Col.InsertOne(ctx, section)
	return err
}

func (r *SectionRepository) FindByID(ctx context.Context, id string) (*models.Section, error) {
	var section models.Section
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&section)
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// FindByCourse returns the course's sections sorted ascending by order.
func (r *SectionRepository) FindByCourse(ctx context.Context, courseID string) ([]models.Section, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sections []models.Section
	for cur.Next(ctx) {
		var s models.Section
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, cur.Err()
}

func (r *SectionRepository) DeleteByCourse(ctx context.Context, courseID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"course_id": courseID})
	return err
}
