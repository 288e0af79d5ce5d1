package achievement

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldListings          = "listings"
	FieldPropertiesManaged = "propertiesManaged"
	FieldTransactions      = "transactions"
	FieldProjects          = "projects"

	errUnknownFieldFmt = "unknown achievement field: %s"
)

var Fields = []string{FieldListings, FieldPropertiesManaged, FieldTransactions, FieldProjects}

// Record is one version of the site-wide counters. Updates insert a new
// record rather than mutating in place; the latest-by-time record is current.
type Record struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Listings          int                `bson:"listings" json:"listings"`
	PropertiesManaged int                `bson:"propertiesManaged" json:"propertiesManaged"`
	Transactions      int                `bson:"transactions" json:"transactions"`
	Projects          int                `bson:"projects" json:"projects"`
	LastUpdated       time.Time          `bson:"lastUpdated" json:"lastUpdated"`
	UpdatedBy         string             `bson:"updatedBy" json:"updatedBy"`
}

// Defaults is the seed record used when the collection is empty.
func Defaults() Record {
	return Record{
		LastUpdated: time.Now(),
		UpdatedBy:   "system",
	}
}

// Next builds the successor record: values carried forward from prev with the
// non-nil inputs applied.
func (prev Record) Next(listings, propertiesManaged, transactions, projects *int, updatedBy string) Record {
	next := Record{
		ID:                primitive.NilObjectID,
		Listings:          prev.Listings,
		PropertiesManaged: prev.PropertiesManaged,
		Transactions:      prev.Transactions,
		Projects:          prev.Projects,
		LastUpdated:       time.Now(),
		UpdatedBy:         updatedBy,
	}

	if listings != nil {
		next.Listings = *listings
	}
	if propertiesManaged != nil {
		next.PropertiesManaged = *propertiesManaged
	}
	if transactions != nil {
		next.Transactions = *transactions
	}
	if projects != nil {
		next.Projects = *projects
	}

	return next
}

// NextField patches exactly one named counter, copying the rest from prev.
func (prev Record) NextField(field string, value int, updatedBy string) (Record, error) {
	switch field {
	case FieldListings:
		return prev.Next(&value, nil, nil, nil, updatedBy), nil
	case FieldPropertiesManaged:
		return prev.Next(nil, &value, nil, nil, updatedBy), nil
	case FieldTransactions:
		return prev.Next(nil, nil, &value, nil, updatedBy), nil
	case FieldProjects:
		return prev.Next(nil, nil, nil, &value, updatedBy), nil
	default:
		return Record{}, fmt.Errorf(errUnknownFieldFmt, field)
	}
}
