package activity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Type classifies which part of the system an activity record refers to.
type Type string

const (
	TypeProperty      Type = "property"
	TypeTeam          Type = "team"
	TypePortfolio     Type = "portfolio"
	TypeAdmin         Type = "admin"
	TypeScheduleVisit Type = "schedule_visit"
	TypeAchievement   Type = "achievement"
)

// Action is the admin mutation that produced the record.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionLogin  Action = "login"
)

type Activity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action      Action             `bson:"action" json:"action"`
	Description string             `bson:"description" json:"description"`
	Type        Type               `bson:"type" json:"type"`
	AdminID     primitive.ObjectID `bson:"adminId,omitempty" json:"adminId,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
