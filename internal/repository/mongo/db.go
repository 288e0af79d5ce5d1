package mongo

import (
	"context"
	"estate-service/internal/config"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout = 10 * time.Second

	CollectionAdmins       = "admins"
	CollectionProperties   = "properties"
	CollectionTeamMembers  = "team_members"
	CollectionPortfolio    = "portfolio"
	CollectionVisits       = "schedule_visits"
	CollectionContacts     = "contacts"
	CollectionNewsletter   = "newsletter"
	CollectionActivities   = "activities"
	CollectionAchievements = "achievements"

	errFailedConnectFmt       = "failed to connect to mongodb: %w"
	errFailedPingFmt          = "failed to ping mongodb: %w"
	errFailedEnsureIndexesFmt = "failed to ensure indexes: %w"
)

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func New(cfg *config.MongoConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf(errFailedConnectFmt, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf(errFailedPingFmt, err)
	}

	return &DB{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}

func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

// EnsureIndexes creates the unique email indexes the application relies on.
// Index creation is idempotent on the server side.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := db.Collection(CollectionAdmins).Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		return fmt.Errorf(errFailedEnsureIndexesFmt, err)
	}

	if _, err := db.Collection(CollectionNewsletter).Indexes().CreateOne(ctx, uniqueEmail); err != nil {
		return fmt.Errorf(errFailedEnsureIndexesFmt, err)
	}

	return nil
}
