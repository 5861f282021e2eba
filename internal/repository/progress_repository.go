package repository

import (
	"context"

	"course-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("video_progress")}
}

// CreateIndexes enforces the one-document-per-(user, video) invariant.
func (r *ProgressRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "video_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Upsert overwrites the stored watch state for the (user, video) pair, or
// creates it. Prior values are discarded, not merged.
func (r *ProgressRepository) Upsert(ctx context.Context, progress *models.VideoProgress) (*models.VideoProgress, error) {
	filter := bson.M{"user_id": progress.UserID, "video_id": progress.VideoID}
	update := bson.M{
		"$set": bson.M{
			"watched_seconds": progress.WatchedSeconds,
			"completed":       progress.Completed,
			"last_watched":    progress.LastWatched,
		},
		"$setOnInsert": bson.M{
			"_id":      progress.ID,
			"user_id":  progress.UserID,
			"video_id": progress.VideoID,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.VideoProgress
	if err := r.Col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *ProgressRepository) FindByUserAndVideo(ctx context.Context, userID, videoID string) (*models.VideoProgress, error) {
	var progress models.VideoProgress
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "video_id": videoID}).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// FindByUserAndVideos returns the user's progress restricted to the given
// video ids, keyed by video id.
func (r *ProgressRepository) FindByUserAndVideos(ctx context.Context, userID string, videoIDs []string) (map[string]models.VideoProgress, error) {
	if len(videoIDs) == 0 {
		return map[string]models.VideoProgress{}, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{
		"user_id":  userID,
		"video_id": bson.M{"$in": videoIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	progresses := make(map[string]models.VideoProgress)
	for cur.Next(ctx) {
		var p models.VideoProgress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		progresses[p.VideoID] = p
	}
	return progresses, cur.Err()
}

// TotalWatchedSeconds sums watched_seconds across all of the user's progress
// documents, zero when the user has none.
func (r *ProgressRepository) TotalWatchedSeconds(ctx context.Context, userID string) (int, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"user_id": userID}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$watched_seconds"},
		}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
