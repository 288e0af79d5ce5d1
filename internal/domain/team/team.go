package team

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxSkills = 50

const (
	errSkillsNotArrayFmt = "skills must be a JSON array or a comma-separated string"
	errTooManySkillsFmt  = "skills must not exceed %d entries"
)

type SocialLinks struct {
	LinkedIn string `bson:"linkedin" json:"linkedin"`
	Twitter  string `bson:"twitter" json:"twitter"`
	Email    string `bson:"email" json:"email"`
}

type Member struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Position    string             `bson:"position" json:"position"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	Bio         string             `bson:"bio" json:"bio"`
	Image       string             `bson:"image" json:"image"`
	Skills      []string           `bson:"skills" json:"skills"`
	SocialLinks SocialLinks        `bson:"socialLinks" json:"socialLinks"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type UpdateInput struct {
	Name        *string
	Position    *string
	Email       *string
	Phone       *string
	Bio         *string
	Image       *string
	Skills      []string
	SocialLinks *SocialLinks
}

// PublicView drops timestamps and exposes only fields the marketing site renders.
type PublicView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Position    string      `json:"position"`
	Bio         string      `json:"bio"`
	Image       string      `json:"image"`
	Skills      []string    `json:"skills"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

func (m *Member) Public() PublicView {
	v := PublicView{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Position:    m.Position,
		Bio:         m.Bio,
		Image:       m.Image,
		Skills:      m.Skills,
		SocialLinks: m.SocialLinks,
	}

	if v.Skills == nil {
		v.Skills = []string{}
	}

	return v
}

// NormalizeSkills canonicalizes the skills form value into an ordered list of
// trimmed, non-empty strings. A JSON array is accepted as-is; any other JSON
// value is rejected rather than guessed at; everything else is treated as a
// comma-separated string.
func NormalizeSkills(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}, nil
	}

	var parts []string
	if strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "\"") {
		if err := json.Unmarshal([]byte(raw), &parts); err != nil {
			return nil, fmt.Errorf(errSkillsNotArrayFmt)
		}
	} else {
		parts = strings.Split(raw, ",")
	}

	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		skills = append(skills, p)
	}

	if len(skills) > maxSkills {
		return nil, fmt.Errorf(errTooManySkillsFmt, maxSkills)
	}

	return skills, nil
}
