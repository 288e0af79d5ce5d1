package mongo

import (
	"context"
	"estate-service/internal/domain/contact"
	apperrors "estate-service/pkg/errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trendMonths = 6

type ContactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *DB) *ContactRepository {
	return &ContactRepository{collection: db.Collection(CollectionContacts)}
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) (*contact.Contact, error) {
	c.Timestamp = time.Now()

	result, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return nil, errFailedInsert("contact", err)
	}

	c.ID = result.InsertedID.(primitive.ObjectID)
	return c, nil
}

// List returns one page of contacts, newest first, with the total count for
// the pagination envelope.
func (r *ContactRepository) List(ctx context.Context, page, limit int) ([]*contact.Contact, int64, error) {
	if page < 1 {
		page = 1
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, errFailedCount("contacts", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, errFailedFind("contacts", err)
	}
	defer cursor.Close(ctx)

	contacts := []*contact.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, errFailedDecode("contacts", err)
	}

	return contacts, total, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":      status,
			"lastUpdated": time.Now(),
		},
	})
	if err != nil {
		return errFailedUpdate("contact", err)
	}

	if result.MatchedCount == 0 {
		return apperrors.NotFound(errContactNotFound)
	}

	return nil
}

func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errFailedCount("contacts", err)
	}
	return count, nil
}

func (r *ContactRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, errFailedCount("contacts", err)
	}
	return count, nil
}

// Analytics aggregates the contact collection for the dashboard overview:
// totals, per-service distribution and a monthly trend over the last six
// months.
func (r *ContactRepository) Analytics(ctx context.Context) (*contact.Analytics, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, err
	}

	newCount, err := r.CountByStatus(ctx, contact.StatusNew)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthly, err := r.collection.CountDocuments(ctx, bson.M{"timestamp": bson.M{"$gte": monthStart}})
	if err != nil {
		return nil, errFailedCount("contacts", err)
	}

	serviceStats, err := r.serviceStats(ctx)
	if err != nil {
		return nil, err
	}

	trend, err := r.monthlyTrend(ctx, now.AddDate(0, -trendMonths, 0))
	if err != nil {
		return nil, err
	}

	return &contact.Analytics{
		TotalContacts:   total,
		NewContacts:     newCount,
		MonthlyContacts: monthly,
		ServiceStats:    serviceStats,
		MonthlyTrend:    trend,
	}, nil
}

func (r *ContactRepository) serviceStats(ctx context.Context) ([]contact.ServiceStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$service",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errFailedFind("contact service stats", err)
	}
	defer cursor.Close(ctx)

	stats := []contact.ServiceStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, errFailedDecode("contact service stats", err)
	}

	return stats, nil
}

func (r *ContactRepository) monthlyTrend(ctx context.Context, since time.Time) ([]contact.MonthlyCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"timestamp": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$timestamp"},
				"month": bson.M{"$month": "$timestamp"},
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errFailedFind("contact monthly trend", err)
	}
	defer cursor.Close(ctx)

	var raw []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, errFailedDecode("contact monthly trend", err)
	}

	trend := make([]contact.MonthlyCount, 0, len(raw))
	for _, row := range raw {
		trend = append(trend, contact.MonthlyCount{
			Year:  row.ID.Year,
			Month: row.ID.Month,
			Count: row.Count,
		})
	}

	return trend, nil
}
