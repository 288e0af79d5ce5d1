package property

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeSale = "sale"
	TypeRent = "rent"

	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusSold     = "sold"
	StatusRented   = "rented"
)

var (
	Types         = []string{TypeSale, TypeRent}
	PropertyTypes = []string{"house", "apartment", "villa", "office", "land", "commercial"}
	Statuses      = []string{StatusActive, StatusInactive, StatusSold, StatusRented}
)

type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Location     string             `bson:"location" json:"location"`
	Price        float64            `bson:"price" json:"price"`
	Type         string             `bson:"type" json:"type"`
	PropertyType string             `bson:"propertyType" json:"propertyType"`
	Bedrooms     int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int                `bson:"bathrooms" json:"bathrooms"`
	Area         float64            `bson:"area" json:"area"`
	Description  string             `bson:"description" json:"description"`
	Status       string             `bson:"status" json:"status"`
	Images       []string           `bson:"images" json:"images"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UpdateInput carries partial field replacements. Nil pointers leave the
// stored value untouched; Images is the fully merged replacement list.
type UpdateInput struct {
	Title        *string
	Location     *string
	Price        *float64
	Type         *string
	PropertyType *string
	Bedrooms     *int
	Bathrooms    *int
	Area         *float64
	Description  *string
	Status       *string
	Images       []string
}

// PublicFilter is the canonical public-listing filter contract.
type PublicFilter struct {
	Type         string
	Location     string
	PropertyType string
	MinBedrooms  int
	MinPrice     float64
	MaxPrice     float64
	Query        string
	Page         int
	Limit        int
}

const notAvailable = "Not available"

// PublicView is the reduced-field projection safe for unauthenticated
// consumption. Optional fields default to an explicit sentinel so the
// frontend always sees a stable shape.
type PublicView struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Price        float64  `json:"price"`
	Type         string   `json:"type"`
	PropertyType string   `json:"propertyType"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Area         float64  `json:"area"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
}

func (p *Property) Public() PublicView {
	v := PublicView{
		ID:           p.ID.Hex(),
		Title:        p.Title,
		Location:     p.Location,
		Price:        p.Price,
		Type:         p.Type,
		PropertyType: p.PropertyType,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Area:         p.Area,
		Description:  p.Description,
		Images:       p.Images,
	}

	if v.Location == "" {
		v.Location = notAvailable
	}
	if v.Description == "" {
		v.Description = notAvailable
	}
	if v.Images == nil {
		v.Images = []string{}
	}

	return v
}
