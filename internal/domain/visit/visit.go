package visit

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var Statuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

type Visit struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName     string             `bson:"firstName" json:"firstName"`
	LastName      string             `bson:"lastName" json:"lastName"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	PropertyID    primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	PreferredDate string             `bson:"preferredDate" json:"preferredDate"`
	PreferredTime string             `bson:"preferredTime" json:"preferredTime"`
	Message       string             `bson:"message" json:"message"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type UpdateInput struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Phone         *string
	PreferredDate *string
	PreferredTime *string
	Message       *string
	Status        *string
}
