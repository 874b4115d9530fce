// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fintwin/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile ingestion and lookup.
type ProfileUsecase interface {
	// SaveProfile upserts the profile, then tries once to classify it. Only storage
	// failures of the upsert are returned.
	SaveProfile(ctx context.Context, input *SaveProfileInput) (*entity.Profile, error)
	GetProfile(ctx context.Context, email string) (*entity.Profile, error)
}

// --- Input DTOs ---

// SaveProfileInput carries the identity key and the fields present in the payload.
type SaveProfileInput struct {
	Email string
	Patch *entity.ProfilePatch
}
