package mongo

import (
	"context"
	"estate-service/internal/domain/property"
	apperrors "estate-service/pkg/errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// caseInsensitiveMatch builds a literal substring match. Filter values come
// from query strings, so regex metacharacters must not reach the server.
func caseInsensitiveMatch(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

type PropertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository(db *DB) *PropertyRepository {
	return &PropertyRepository{collection: db.Collection(CollectionProperties)}
}

func (r *PropertyRepository) Create(ctx context.Context, p *property.Property) (*property.Property, error) {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	if p.Images == nil {
		p.Images = []string{}
	}

	result, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return nil, errFailedInsert("property", err)
	}

	p.ID = result.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*property.Property, error) {
	p := &property.Property{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound(errPropertyNotFound)
		}
		return nil, errFailedFind("property", err)
	}

	return p, nil
}

// List returns all properties, newest first. Admin-facing.
func (r *PropertyRepository) List(ctx context.Context) ([]*property.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errFailedFind("properties", err)
	}
	defer cursor.Close(ctx)

	properties := []*property.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, errFailedDecode("properties", err)
	}

	return properties, nil
}

// ListPublic returns active properties matching the public filter, newest first.
func (r *PropertyRepository) ListPublic(ctx context.Context, filter property.PublicFilter) ([]*property.Property, error) {
	query := bson.M{"status": property.StatusActive}

	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.PropertyType != "" {
		query["propertyType"] = filter.PropertyType
	}
	if filter.Location != "" {
		query["location"] = caseInsensitiveMatch(filter.Location)
	}
	if filter.MinBedrooms > 0 {
		query["bedrooms"] = bson.M{"$gte": filter.MinBedrooms}
	}
	if filter.MinPrice > 0 {
		query["price"] = bson.M{"$gte": filter.MinPrice}
	}
	if filter.MaxPrice > 0 {
		if existing, ok := query["price"].(bson.M); ok {
			existing["$lte"] = filter.MaxPrice
		} else {
			query["price"] = bson.M{"$lte": filter.MaxPrice}
		}
	}
	if filter.Query != "" {
		pattern := caseInsensitiveMatch(filter.Query)
		query["$or"] = []bson.M{
			{"title": pattern},
			{"location": pattern},
			{"description": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * filter.Limit)).SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, errFailedFind("properties", err)
	}
	defer cursor.Close(ctx)

	properties := []*property.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, errFailedDecode("properties", err)
	}

	return properties, nil
}

func (r *PropertyRepository) Update(ctx context.Context, id primitive.ObjectID, input property.UpdateInput) error {
	set := bson.M{"updatedAt": time.Now()}

	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Location != nil {
		set["location"] = *input.Location
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.PropertyType != nil {
		set["propertyType"] = *input.PropertyType
	}
	if input.Bedrooms != nil {
		set["bedrooms"] = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		set["bathrooms"] = *input.Bathrooms
	}
	if input.Area != nil {
		set["area"] = *input.Area
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Images != nil {
		set["images"] = input.Images
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return errFailedUpdate("property", err)
	}

	if result.MatchedCount == 0 {
		return apperrors.NotFound(errPropertyNotFound)
	}

	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errFailedDelete("property", err)
	}

	if result.DeletedCount == 0 {
		return apperrors.NotFound(errPropertyNotFound)
	}

	return nil
}

func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errFailedCount("properties", err)
	}
	return count, nil
}

func (r *PropertyRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, errFailedCount("properties", err)
	}
	return count, nil
}
