package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Content kinds with an append order maintained per course.
const (
	KindSection = "section"
	KindVideo   = "video"
)

// CounterRepository hands out append positions for sections and videos.
// One counter document exists per (course, kind); Next bumps it with an
// atomic $inc upsert so concurrent appends to the same course can never
// observe the same position. Sequential appends yield 1, 2, 3, ...
type CounterRepository struct {
	Col *mongo.Collection
}

func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{Col: db.Collection("content_counters")}
}

func (r *CounterRepository) Next(ctx context.Context, courseID, kind string) (int, error) {
	filter := bson.M{"course_id": courseID, "kind": kind}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	if err := r.Col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// DeleteByCourse drops a course's counters so a recreated course id starts
// numbering from 1 again.
func (r *CounterRepository) DeleteByCourse(ctx context.Context, courseID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"course_id": courseID})
	return err
}
