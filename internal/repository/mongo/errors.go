package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	errAdminNotFound       = "admin not found"
	errPropertyNotFound    = "property not found"
	errTeamMemberNotFound  = "team member not found"
	errPortfolioNotFound   = "portfolio item not found"
	errVisitNotFound       = "visit request not found"
	errContactNotFound     = "contact not found"
	errAchievementNotFound = "no achievement record"
)

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func errFailedInsert(entity string, err error) error {
	return fmt.Errorf("failed to insert %s: %w", entity, err)
}

func errFailedFind(entity string, err error) error {
	return fmt.Errorf("failed to find %s: %w", entity, err)
}

func errFailedUpdate(entity string, err error) error {
	return fmt.Errorf("failed to update %s: %w", entity, err)
}

func errFailedDelete(entity string, err error) error {
	return fmt.Errorf("failed to delete %s: %w", entity, err)
}

func errFailedDecode(entity string, err error) error {
	return fmt.Errorf("failed to decode %s: %w", entity, err)
}

func errFailedCount(entity string, err error) error {
	return fmt.Errorf("failed to count %s: %w", entity, err)
}
