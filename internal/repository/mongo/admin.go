package mongo

import (
	"context"
	"estate-service/internal/domain/admin"
	apperrors "estate-service/pkg/errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminRepository struct {
	collection *mongo.Collection
}

func NewAdminRepository(db *DB) *AdminRepository {
	return &AdminRepository{collection: db.Collection(CollectionAdmins)}
}

func (r *AdminRepository) Create(ctx context.Context, input admin.CreateAdminInput) (*admin.Admin, error) {
	a := &admin.Admin{
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Name:         input.Name,
		Role:         input.Role,
		CreatedAt:    time.Now(),
	}

	result, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.Conflict("admin with this email already exists")
		}
		return nil, errFailedInsert("admin", err)
	}

	a.ID = result.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	a := &admin.Admin{}
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound(errAdminNotFound)
		}
		return nil, errFailedFind("admin", err)
	}

	return a, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*admin.Admin, error) {
	a := &admin.Admin{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound(errAdminNotFound)
		}
		return nil, errFailedFind("admin", err)
	}

	return a, nil
}
