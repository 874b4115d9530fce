// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"fintwin/internal/domain/entity"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/repository"
	"fintwin/internal/infra/persistence/model"
	"fintwin/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements repository.ProfileRepository on the gen query API.
type profileRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		q:   query.Use(db),
		now: time.Now,
	}
}

// Upsert locks the row for the email, then either inserts a defaulted profile or
// updates only the columns present in the patch.
func (repo *profileRepository) Upsert(ctx context.Context, email string, patch *entity.ProfilePatch) (*entity.Profile, error) {
	var result *entity.Profile

	err := repo.q.Transaction(func(tx *query.Query) error {
		p := tx.ProfileModel
		existing, err := p.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(p.Email.Eq(email)).
			First()

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created, err := repo.create(ctx, tx, email, patch)
			if err != nil {
				return err
			}
			result = created

			return nil
		case err != nil:
			return toPersistenceError(err, "failed to find profile")
		}

		profile := toProfileDomain(existing)
		profile.Apply(patch, repo.now())

		if _, err := p.WithContext(ctx).
			Select(fieldsOf(p.GetFieldByName, patchColumns(patch))...).
			Where(p.Email.Eq(email)).
			Updates(fromProfileDomain(profile)); err != nil {
			return toPersistenceError(err, "failed to update profile")
		}
		result = profile

		return nil
	})
	if err != nil {
		return nil, toPersistenceError(err, "failed to upsert profile")
	}

	return result, nil
}

// create inserts a new profile. A concurrent first save for the same email lands on
// the ON CONFLICT branch and overwrites only the fields this payload carries.
func (repo *profileRepository) create(ctx context.Context, tx *query.Query, email string, patch *entity.ProfilePatch) (*entity.Profile, error) {
	p := tx.ProfileModel
	created := entity.NewProfile(email, patch, repo.now())
	profileM := fromProfileDomain(created)

	if err := p.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: p.Email.ColumnName().String()}},
			DoUpdates: clause.AssignmentColumns(patchColumns(patch)),
		},
		clause.Returning{},
	).Create(profileM); err != nil {
		return nil, toPersistenceError(err, "failed to create profile")
	}

	return toProfileDomain(profileM), nil
}

// SaveUserClass writes the classifier label and updated_at, leaving every other
// column as concurrent saves left it.
func (repo *profileRepository) SaveUserClass(ctx context.Context, email string, class entity.UserClass) error {
	p := repo.q.ProfileModel

	info, err := p.WithContext(ctx).
		Where(p.Email.Eq(email)).
		UpdateSimple(
			p.UserClass.Value(class.String()),
			p.UpdatedAt.Value(repo.now()),
		)
	if err != nil {
		return toPersistenceError(err, "failed to save user class")
	}
	if info.RowsAffected == 0 {
		return domainerrors.NewPersistenceError(repository.ErrProfileNotFound, "failed to save user class")
	}

	return nil
}

// FindByEmail retrieves a single profile by its key.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	p := repo.q.ProfileModel

	profileM, err := p.WithContext(ctx).Where(p.Email.Eq(email)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, toPersistenceError(err, "failed to find profile")
	}

	return toProfileDomain(profileM), nil
}

// patchColumns lists the columns a patch touches, always including updated_at.
// user_class, email and created_at are never among them.
func patchColumns(patch *entity.ProfilePatch) []string {
	columns := make([]string, 0, 14)
	if patch != nil {
		if patch.Name != nil {
			columns = append(columns, "name")
		}
		if patch.Age != nil {
			columns = append(columns, "age")
		}
		if patch.Role != nil {
			columns = append(columns, "role")
		}
		if patch.Pincode != nil {
			columns = append(columns, "pincode")
		}
		if patch.MonthlyIncome != nil {
			columns = append(columns, "monthly_income")
		}
		if patch.MonthlySpending != nil {
			columns = append(columns, "monthly_spending")
		}
		if patch.IsInvestor != nil {
			columns = append(columns, "is_investor")
		}
		if patch.Investments != nil {
			columns = append(columns, "investments_gold", "investments_fd", "investments_stocks", "investments_crypto")
		}
		if patch.CostOfLiving != nil {
			columns = append(columns, "cost_of_living")
		}
	}

	return append(columns, "updated_at")
}

// fieldsOf resolves column names to typed query fields.
func fieldsOf(lookup func(string) (field.OrderExpr, bool), columns []string) []field.Expr {
	fields := make([]field.Expr, 0, len(columns))
	for _, column := range columns {
		if f, ok := lookup(column); ok {
			fields = append(fields, f)
		}
	}

	return fields
}

func toProfileDomain(m *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		Email:           m.Email,
		Name:            m.Name,
		Age:             m.Age,
		Role:            entity.Role(m.Role),
		Pincode:         m.Pincode,
		MonthlyIncome:   m.MonthlyIncome,
		MonthlySpending: m.MonthlySpending,
		IsInvestor:      entity.InvestorFlag(m.IsInvestor),
		Investments: entity.Investments{
			Gold:   m.Investments.Gold,
			FD:     m.Investments.FD,
			Stocks: m.Investments.Stocks,
			Crypto: m.Investments.Crypto,
		},
		CostOfLiving: m.CostOfLiving,
		UserClass:    entity.UserClass(m.UserClass),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromProfileDomain(p *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		Email:           p.Email,
		Name:            p.Name,
		Age:             p.Age,
		Role:            p.Role.String(),
		Pincode:         p.Pincode,
		MonthlyIncome:   p.MonthlyIncome,
		MonthlySpending: p.MonthlySpending,
		IsInvestor:      p.IsInvestor.String(),
		Investments: model.InvestmentsModel{
			Gold:   p.Investments.Gold,
			FD:     p.Investments.FD,
			Stocks: p.Investments.Stocks,
			Crypto: p.Investments.Crypto,
		},
		CostOfLiving: p.CostOfLiving,
		UserClass:    p.UserClass.String(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
