package contact

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusNew        = "new"
	StatusContacted  = "contacted"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusClosed     = "closed"

	SourceWebsite  = "website"
	DefaultService = "General Inquiry"
)

var Statuses = []string{StatusNew, StatusContacted, StatusInProgress, StatusCompleted, StatusClosed}

type Contact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	Service     string             `bson:"service" json:"service"`
	Message     string             `bson:"message" json:"message"`
	Status      string             `bson:"status" json:"status"`
	Source      string             `bson:"source" json:"source"`
	IPAddress   string             `bson:"ipAddress" json:"-"`
	UserAgent   string             `bson:"userAgent" json:"-"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	LastUpdated time.Time          `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

// Analytics is the aggregate view served to the admin dashboard.
type Analytics struct {
	TotalContacts   int64          `json:"totalContacts"`
	NewContacts     int64          `json:"newContacts"`
	MonthlyContacts int64          `json:"monthlyContacts"`
	ServiceStats    []ServiceStat  `json:"serviceStats"`
	MonthlyTrend    []MonthlyCount `json:"monthlyTrend"`
}

type ServiceStat struct {
	Service string `bson:"_id" json:"service"`
	Count   int64  `bson:"count" json:"count"`
}

type MonthlyCount struct {
	Year  int   `bson:"year" json:"year"`
	Month int   `bson:"month" json:"month"`
	Count int64 `bson:"count" json:"count"`
}
