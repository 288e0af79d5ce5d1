package mongo

import (
	"context"
	"estate-service/internal/domain/activity"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultActivityLimit = 50

type ActivityRepository struct {
	collection *mongo.Collection
}

func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{collection: db.Collection(CollectionActivities)}
}

func (r *ActivityRepository) Insert(ctx context.Context, a *activity.Activity) error {
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		return errFailedInsert("activity", err)
	}

	a.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*activity.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errFailedFind("activities", err)
	}
	defer cursor.Close(ctx)

	activities := []*activity.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, errFailedDecode("activities", err)
	}

	return activities, nil
}
