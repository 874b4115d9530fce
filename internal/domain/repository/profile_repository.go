// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"fintwin/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when no profile exists for an email.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository is the Profile Store: profile documents keyed by email.
type ProfileRepository interface {
	// Upsert creates the profile for an unseen email (defaults, then patch) or applies the
	// patch over the stored one. Storage failures return a PersistenceError.
	Upsert(ctx context.Context, email string, patch *entity.ProfilePatch) (*entity.Profile, error)

	// SaveUserClass persists the classification label (and updatedAt) for an existing
	// profile. No other field is written, so concurrent saves are never reverted.
	SaveUserClass(ctx context.Context, email string, class entity.UserClass) error

	// FindByEmail reads a profile by key.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
}
