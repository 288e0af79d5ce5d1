package mongo

import (
	"context"
	"estate-service/internal/domain/newsletter"
	apperrors "estate-service/pkg/errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NewsletterRepository struct {
	collection *mongo.Collection
}

func NewNewsletterRepository(db *DB) *NewsletterRepository {
	return &NewsletterRepository{collection: db.Collection(CollectionNewsletter)}
}

// Create inserts a subscriber. The unique email index turns a duplicate
// subscription into ErrEmailExists.
func (r *NewsletterRepository) Create(ctx context.Context, s *newsletter.Subscriber) (*newsletter.Subscriber, error) {
	s.SubscribedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, s)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.EmailExists("email already subscribed")
		}
		return nil, errFailedInsert("newsletter subscriber", err)
	}

	s.ID = result.InsertedID.(primitive.ObjectID)
	return s, nil
}

func (r *NewsletterRepository) List(ctx context.Context) ([]*newsletter.Subscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errFailedFind("newsletter subscribers", err)
	}
	defer cursor.Close(ctx)

	subscribers := []*newsletter.Subscriber{}
	if err := cursor.All(ctx, &subscribers); err != nil {
		return nil, errFailedDecode("newsletter subscribers", err)
	}

	return subscribers, nil
}

func (r *NewsletterRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errFailedDelete("newsletter subscriber", err)
	}

	if result.DeletedCount == 0 {
		return apperrors.NotFound("newsletter subscriber not found")
	}

	return nil
}

func (r *NewsletterRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errFailedCount("newsletter subscribers", err)
	}
	return count, nil
}
