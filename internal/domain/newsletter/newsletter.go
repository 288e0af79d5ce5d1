package newsletter

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusActive = "active"

	SourceWebsite = "website"
)

type Subscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	Status       string             `bson:"status" json:"status"`
	Source       string             `bson:"source" json:"source"`
	SubscribedAt time.Time          `bson:"subscribedAt" json:"subscribedAt"`
}
