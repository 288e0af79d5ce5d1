package admin

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateAdminInput struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
}

// Identity is the decoded token identity attached to authenticated requests.
type Identity struct {
	AdminID primitive.ObjectID `json:"adminId"`
	Email   string             `json:"email"`
	Name    string             `json:"name"`
	Role    string             `json:"role"`
}
