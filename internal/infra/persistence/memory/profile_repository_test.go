package memory

import (
	"context"
	"testing"

	"fintwin/internal/domain/entity"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestProfileRepository_UpsertCreatesOnce(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()
	patch := &entity.ProfilePatch{Name: ptr("Asha"), Age: ptr(24), MonthlyIncome: ptr(50000.0)}

	first, err := repo.Upsert(ctx, "a@x.com", patch)
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, "a@x.com", &entity.ProfilePatch{MonthlySpending: ptr(20000.0)})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, 50000.0, second.MonthlyIncome)
	assert.Equal(t, 20000.0, second.MonthlySpending)
	assert.Equal(t, entity.UserClassUnknown, second.UserClass)
}

func TestProfileRepository_UpsertReturnsCopy(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	created, err := repo.Upsert(ctx, "a@x.com", &entity.ProfilePatch{MonthlyIncome: ptr(1.0)})
	require.NoError(t, err)
	created.UserClass = entity.UserClassYOLO

	stored, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, entity.UserClassUnknown, stored.UserClass)
	assert.Empty(t, stored.Name)
}

func TestProfileRepository_SaveUserClassWritesOnlyTheLabel(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()
	_, err := repo.Upsert(ctx, "a@x.com", &entity.ProfilePatch{Name: ptr("Asha"), Age: ptr(24), MonthlyIncome: ptr(100.0)})
	require.NoError(t, err)

	// A later save lands between the classification and its write-back.
	_, err = repo.Upsert(ctx, "a@x.com", &entity.ProfilePatch{MonthlyIncome: ptr(999.0)})
	require.NoError(t, err)
	require.NoError(t, repo.SaveUserClass(ctx, "a@x.com", entity.UserClassSaver))

	stored, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, entity.UserClassSaver, stored.UserClass)
	assert.Equal(t, 999.0, stored.MonthlyIncome)
	assert.Equal(t, "Asha", stored.Name)
}

func TestProfileRepository_SaveUserClassMissingProfile(t *testing.T) {
	repo := NewProfileRepository()

	err := repo.SaveUserClass(context.Background(), "missing@x.com", entity.UserClassSaver)

	var persistenceErr *domainerrors.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	assert.Zero(t, repo.Len())
}

func TestProfileRepository_Errors(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, repository.ErrProfileNotFound)

	repo.WithError(errors.New("disk full"))
	_, err = repo.Upsert(ctx, "a@x.com", &entity.ProfilePatch{Name: ptr("Asha"), Age: ptr(24)})

	var persistenceErr *domainerrors.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Contains(t, err.Error(), "disk full")
}
