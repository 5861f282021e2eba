package repository

import (
	"context"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VideoRepository struct {
	Col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{Col: db.Collection("videos")}
}

func (r *VideoRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "order", Value: 1}},
	})
	return err
}

func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	_, err := r.Col.InsertOne(ctx, video)
	return err
}

func (r *VideoRepository) FindByID(ctx context.Context, id string) (*models.Video, error) {
	var video models.Video
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// FindByCourse returns the course's videos; sorted ascending by order when
// sortByOrder is set, insertion order otherwise.
func (r *VideoRepository) FindByCourse(ctx context.Context, courseID string, sortByOrder bool) ([]models.Video, error) {
	opts := options.Find()
	if sortByOrder {
		opts.SetSort(bson.D{{Key: "order", Value: 1}})
	}
	cur, err := r.Col.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var videos []models.Video
	for cur.Next(ctx) {
		var v models.Video
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, cur.Err()
}

func (r *VideoRepository) DeleteByCourse(ctx context.Context, courseID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"course_id": courseID})
	return err
}
