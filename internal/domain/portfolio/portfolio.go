package portfolio

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusCompleted = "completed"
	StatusOngoing   = "ongoing"
	StatusPlanned   = "planned"
)

var (
	Categories = []string{"valuation", "management", "brokerage", "survey", "development"}
	Statuses   = []string{StatusCompleted, StatusOngoing, StatusPlanned}
)

type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Value       string             `bson:"value" json:"value"`
	Date        string             `bson:"date" json:"date"`
	Client      string             `bson:"client" json:"client"`
	Location    string             `bson:"location" json:"location"`
	Duration    string             `bson:"duration" json:"duration"`
	Status      string             `bson:"status" json:"status"`
	Images      []string           `bson:"images" json:"images"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type UpdateInput struct {
	Title       *string
	Category    *string
	Description *string
	Value       *string
	Date        *string
	Client      *string
	Location    *string
	Duration    *string
	Status      *string
	Images      []string
}

type PublicFilter struct {
	Category string
	Status   string
}

const notAvailable = "Not available"

type PublicView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Value       string   `json:"value"`
	Date        string   `json:"date"`
	Client      string   `json:"client"`
	Location    string   `json:"location"`
	Duration    string   `json:"duration"`
	Status      string   `json:"status"`
	Images      []string `json:"images"`
}

func (i *Item) Public() PublicView {
	v := PublicView{
		ID:          i.ID.Hex(),
		Title:       i.Title,
		Category:    i.Category,
		Description: i.Description,
		Value:       i.Value,
		Date:        i.Date,
		Client:      i.Client,
		Location:    i.Location,
		Duration:    i.Duration,
		Status:      i.Status,
		Images:      i.Images,
	}

	if v.Value == "" {
		v.Value = notAvailable
	}
	if v.Client == "" {
		v.Client = notAvailable
	}
	if v.Location == "" {
		v.Location = notAvailable
	}
	if v.Duration == "" {
		v.Duration = notAvailable
	}
	if v.Images == nil {
		v.Images = []string{}
	}

	return v
}
