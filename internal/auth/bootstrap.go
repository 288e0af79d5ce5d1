package auth

import (
	"context"
	"errors"
	"estate-service/internal/config"
	"estate-service/internal/domain/admin"
	apperrors "estate-service/pkg/errors"
	"estate-service/pkg/password"
	"fmt"
	"strings"
)

const (
	errBootstrapLookupFmt = "failed to look up default admin: %w"
	errBootstrapHashFmt   = "failed to hash default admin password: %w"
	errBootstrapCreateFmt = "failed to create default admin: %w"
)

type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*admin.Admin, error)
	Create(ctx context.Context, input admin.CreateAdminInput) (*admin.Admin, error)
}

// EnsureDefaultAdmin creates the configured default admin account if it does
// not already exist. Safe to run on every startup.
func EnsureDefaultAdmin(ctx context.Context, store AdminStore, cfg *config.AdminConfig) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Email))

	_, err := store.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf(errBootstrapLookupFmt, err)
	}

	hash, err := password.Hash(cfg.Password)
	if err != nil {
		return fmt.Errorf(errBootstrapHashFmt, err)
	}

	_, err = store.Create(ctx, admin.CreateAdminInput{
		Email:        email,
		PasswordHash: hash,
		Name:         cfg.Name,
		Role:         admin.RoleAdmin,
	})
	if err != nil {
		// A concurrent startup may have inserted it first.
		if errors.Is(err, apperrors.ErrConflict) {
			return nil
		}
		return fmt.Errorf(errBootstrapCreateFmt, err)
	}

	return nil
}
