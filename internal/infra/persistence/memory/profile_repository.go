// Package memory keeps profiles in process memory. It backs local development and
// handler tests without a running database.
package memory

import (
	"context"
	"sync"
	"time"

	"fintwin/internal/domain/entity"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/repository"
)

// ProfileRepository is an in-memory implementation of repository.ProfileRepository.
type ProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]entity.Profile
	err      error
	now      func() time.Time
}

// NewProfileRepository creates an empty in-memory store.
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[string]entity.Profile),
		now:      time.Now,
	}
}

// WithError makes every subsequent call fail with a PersistenceError wrapping err.
func (r *ProfileRepository) WithError(err error) *ProfileRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err

	return r
}

// Upsert creates or patches the profile stored under email.
func (r *ProfileRepository) Upsert(_ context.Context, email string, patch *entity.ProfilePatch) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, domainerrors.NewPersistenceError(r.err, "failed to upsert profile")
	}

	now := r.now()
	stored, ok := r.profiles[email]
	if !ok {
		created := entity.NewProfile(email, patch, now)
		r.profiles[email] = *created
		result := *created

		return &result, nil
	}

	stored.Apply(patch, now)
	r.profiles[email] = stored
	result := stored

	return &result, nil
}

// SaveUserClass sets the label on the stored profile, leaving the other fields alone.
func (r *ProfileRepository) SaveUserClass(_ context.Context, email string, class entity.UserClass) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return domainerrors.NewPersistenceError(r.err, "failed to save user class")
	}
	stored, ok := r.profiles[email]
	if !ok {
		return domainerrors.NewPersistenceError(repository.ErrProfileNotFound, "failed to save user class")
	}

	stored.UserClass = class
	stored.UpdatedAt = r.now()
	r.profiles[email] = stored

	return nil
}

// FindByEmail returns a copy of the stored profile.
func (r *ProfileRepository) FindByEmail(_ context.Context, email string) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, domainerrors.NewPersistenceError(r.err, "failed to find profile")
	}
	stored, ok := r.profiles[email]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return &stored, nil
}

// Len returns the number of stored profiles.
func (r *ProfileRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.profiles)
}
