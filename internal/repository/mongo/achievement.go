package mongo

import (
	"context"
	"estate-service/internal/domain/achievement"
	apperrors "estate-service/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AchievementRepository struct {
	collection *mongo.Collection
}

func NewAchievementRepository(db *DB) *AchievementRepository {
	return &AchievementRepository{collection: db.Collection(CollectionAchievements)}
}

// Latest returns the most recently inserted record. History is retained;
// writes always insert a new row.
func (r *AchievementRepository) Latest(ctx context.Context) (*achievement.Record, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "lastUpdated", Value: -1}})

	rec := &achievement.Record{}
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound(errAchievementNotFound)
		}
		return nil, errFailedFind("achievement record", err)
	}

	return rec, nil
}

func (r *AchievementRepository) Insert(ctx context.Context, rec *achievement.Record) (*achievement.Record, error) {
	rec.ID = primitive.NilObjectID

	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return nil, errFailedInsert("achievement record", err)
	}

	rec.ID = result.InsertedID.(primitive.ObjectID)
	return rec, nil
}
