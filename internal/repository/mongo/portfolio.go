package mongo

import (
	"context"
	"estate-service/internal/domain/portfolio"
	apperrors "estate-service/pkg/errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PortfolioRepository struct {
	collection *mongo.Collection
}

func NewPortfolioRepository(db *DB) *PortfolioRepository {
	return &PortfolioRepository{collection: db.Collection(CollectionPortfolio)}
}

func (r *PortfolioRepository) Create(ctx context.Context, item *portfolio.Item) (*portfolio.Item, error) {
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	if item.Images == nil {
		item.Images = []string{}
	}

	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, errFailedInsert("portfolio item", err)
	}

	item.ID = result.InsertedID.(primitive.ObjectID)
	return item, nil
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*portfolio.Item, error) {
	item := &portfolio.Item{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound(errPortfolioNotFound)
		}
		return nil, errFailedFind("portfolio item", err)
	}

	return item, nil
}

func (r *PortfolioRepository) List(ctx context.Context) ([]*portfolio.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errFailedFind("portfolio items", err)
	}
	defer cursor.Close(ctx)

	items := []*portfolio.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, errFailedDecode("portfolio items", err)
	}

	return items, nil
}

func (r *PortfolioRepository) ListPublic(ctx context.Context, filter portfolio.PublicFilter) ([]*portfolio.Item, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, errFailedFind("portfolio items", err)
	}
	defer cursor.Close(ctx)

	items := []*portfolio.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, errFailedDecode("portfolio items", err)
	}

	return items, nil
}

func (r *PortfolioRepository) Update(ctx context.Context, id primitive.ObjectID, input portfolio.UpdateInput) error {
	set := bson.M{"updatedAt": time.Now()}

	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Value != nil {
		set["value"] = *input.Value
	}
	if input.Date != nil {
		set["date"] = *input.Date
	}
	if input.Client != nil {
		set["client"] = *input.Client
	}
	if input.Location != nil {
		set["location"] = *input.Location
	}
	if input.Duration != nil {
		set["duration"] = *input.Duration
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Images != nil {
		set["images"] = input.Images
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return errFailedUpdate("portfolio item", err)
	}

	if result.MatchedCount == 0 {
		return apperrors.NotFound(errPortfolioNotFound)
	}

	return nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errFailedDelete("portfolio item", err)
	}

	if result.DeletedCount == 0 {
		return apperrors.NotFound(errPortfolioNotFound)
	}

	return nil
}

func (r *PortfolioRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errFailedCount("portfolio items", err)
	}
	return count, nil
}
