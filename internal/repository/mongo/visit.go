package mongo

import (
	"context"
	"estate-service/internal/domain/visit"
	apperrors "estate-service/pkg/errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VisitRepository struct {
	collection *mongo.Collection
}

func NewVisitRepository(db *DB) *VisitRepository {
	return &VisitRepository{collection: db.Collection(CollectionVisits)}
}

func (r *VisitRepository) Create(ctx context.Context, v *visit.Visit) (*visit.Visit, error) {
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt

	result, err := r.collection.InsertOne(ctx, v)
	if err != nil {
		return nil, errFailedInsert("visit request", err)
	}

	v.ID = result.InsertedID.(primitive.ObjectID)
	return v, nil
}

func (r *VisitRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*visit.Visit, error) {
	v := &visit.Visit{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(v)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound(errVisitNotFound)
		}
		return nil, errFailedFind("visit request", err)
	}

	return v, nil
}

func (r *VisitRepository) List(ctx context.Context) ([]*visit.Visit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errFailedFind("visit requests", err)
	}
	defer cursor.Close(ctx)

	visits := []*visit.Visit{}
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, errFailedDecode("visit requests", err)
	}

	return visits, nil
}

func (r *VisitRepository) Update(ctx context.Context, id primitive.ObjectID, input visit.UpdateInput) error {
	set := bson.M{"updatedAt": time.Now()}

	if input.FirstName != nil {
		set["firstName"] = *input.FirstName
	}
	if input.LastName != nil {
		set["lastName"] = *input.LastName
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.PreferredDate != nil {
		set["preferredDate"] = *input.PreferredDate
	}
	if input.PreferredTime != nil {
		set["preferredTime"] = *input.PreferredTime
	}
	if input.Message != nil {
		set["message"] = *input.Message
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return errFailedUpdate("visit request", err)
	}

	if result.MatchedCount == 0 {
		return apperrors.NotFound(errVisitNotFound)
	}

	return nil
}

func (r *VisitRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errFailedDelete("visit request", err)
	}

	if result.DeletedCount == 0 {
		return apperrors.NotFound(errVisitNotFound)
	}

	return nil
}

func (r *VisitRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, errFailedCount("visit requests", err)
	}
	return count, nil
}
