package mongo

import (
	"context"
	"estate-service/internal/domain/team"
	apperrors "estate-service/pkg/errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TeamRepository struct {
	collection *mongo.Collection
}

func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{collection: db.Collection(CollectionTeamMembers)}
}

func (r *TeamRepository) Create(ctx context.Context, m *team.Member) (*team.Member, error) {
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	if m.Skills == nil {
		m.Skills = []string{}
	}

	result, err := r.collection.InsertOne(ctx, m)
	if err != nil {
		return nil, errFailedInsert("team member", err)
	}

	m.ID = result.InsertedID.(primitive.ObjectID)
	return m, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*team.Member, error) {
	m := &team.Member{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(m)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound(errTeamMemberNotFound)
		}
		return nil, errFailedFind("team member", err)
	}

	return m, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]*team.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errFailedFind("team members", err)
	}
	defer cursor.Close(ctx)

	members := []*team.Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, errFailedDecode("team members", err)
	}

	return members, nil
}

func (r *TeamRepository) Update(ctx context.Context, id primitive.ObjectID, input team.UpdateInput) error {
	set := bson.M{"updatedAt": time.Now()}

	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Position != nil {
		set["position"] = *input.Position
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Bio != nil {
		set["bio"] = *input.Bio
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Skills != nil {
		set["skills"] = input.Skills
	}
	if input.SocialLinks != nil {
		set["socialLinks"] = *input.SocialLinks
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return errFailedUpdate("team member", err)
	}

	if result.MatchedCount == 0 {
		return apperrors.NotFound(errTeamMemberNotFound)
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errFailedDelete("team member", err)
	}

	if result.DeletedCount == 0 {
		return apperrors.NotFound(errTeamMemberNotFound)
	}

	return nil
}

func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errFailedCount("team members", err)
	}
	return count, nil
}
