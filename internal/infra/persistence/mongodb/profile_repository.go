package mongodb

import (
	"context"
	"time"

	"fintwin/internal/domain/entity"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/repository"
	"fintwin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	fieldEmail           = "email"
	fieldName            = "name"
	fieldAge             = "age"
	fieldRole            = "role"
	fieldPincode         = "pincode"
	fieldMonthlyIncome   = "monthlyIncome"
	fieldMonthlySpending = "monthlySpending"
	fieldIsInvestor      = "isInvestor"
	fieldInvestments     = "investments"
	fieldCostOfLiving    = "costOfLiving"
	fieldUserClass       = "userClass"
	fieldCreatedAt       = "createdAt"
	fieldUpdatedAt       = "updatedAt"
)

type profileRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewProfileRepository is the constructor for the MongoDB profile store.
func NewProfileRepository(collection *mongo.Collection) repository.ProfileRepository {
	return &profileRepository{
		collection: collection,
		now:        time.Now,
	}
}

// Upsert runs a single findOneAndUpdate keyed by email. Present fields go to $set and
// defaults for absent ones to $setOnInsert, so an existing document keeps them.
func (repo *profileRepository) Upsert(ctx context.Context, email string, patch *entity.ProfilePatch) (*entity.Profile, error) {
	update := buildUpsertUpdate(patch, repo.now())
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(true)

	var doc model.ProfileDocument
	err := repo.collection.FindOneAndUpdate(ctx, bson.M{fieldEmail: email}, update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		// Lost an insert race for the same email; the document exists now.
		err = repo.collection.FindOneAndUpdate(ctx, bson.M{fieldEmail: email}, update, opts).Decode(&doc)
	}
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to upsert profile")
	}

	return toProfileDomain(&doc), nil
}

// SaveUserClass sets only userClass and updatedAt on the stored document.
func (repo *profileRepository) SaveUserClass(ctx context.Context, email string, class entity.UserClass) error {
	res, err := repo.collection.UpdateOne(ctx, bson.M{fieldEmail: email}, bson.M{
		"$set": bson.M{
			fieldUserClass: class.String(),
			fieldUpdatedAt: repo.now(),
		},
	})
	if err != nil {
		return domainerrors.NewPersistenceError(err, "failed to save user class")
	}
	if res.MatchedCount == 0 {
		return domainerrors.NewPersistenceError(repository.ErrProfileNotFound, "failed to save user class")
	}

	return nil
}

// FindByEmail retrieves a single profile by its key.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var doc model.ProfileDocument
	if err := repo.collection.FindOne(ctx, bson.M{fieldEmail: email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find profile")
	}

	return toProfileDomain(&doc), nil
}

// buildUpsertUpdate splits the patch into $set (present fields) and $setOnInsert
// (defaults for absent fields). A key never appears in both.
func buildUpsertUpdate(patch *entity.ProfilePatch, now time.Time) bson.M {
	set := bson.M{fieldUpdatedAt: now}
	onInsert := bson.M{
		fieldName:            "",
		fieldAge:             0,
		fieldRole:            entity.RoleStudent.String(),
		fieldMonthlyIncome:   0.0,
		fieldMonthlySpending: 0.0,
		fieldIsInvestor:      entity.InvestorNo.String(),
		fieldInvestments:     model.InvestmentsDocument{},
		fieldCostOfLiving:    0.0,
		fieldUserClass:       entity.UserClassUnknown.String(),
		fieldCreatedAt:       now,
	}

	put := func(field string, value any) {
		set[field] = value
		delete(onInsert, field)
	}

	if patch != nil {
		if patch.Name != nil {
			put(fieldName, *patch.Name)
		}
		if patch.Age != nil {
			put(fieldAge, *patch.Age)
		}
		if patch.Role != nil {
			put(fieldRole, patch.Role.String())
		}
		if patch.Pincode != nil {
			put(fieldPincode, *patch.Pincode)
		}
		if patch.MonthlyIncome != nil {
			put(fieldMonthlyIncome, *patch.MonthlyIncome)
		}
		if patch.MonthlySpending != nil {
			put(fieldMonthlySpending, *patch.MonthlySpending)
		}
		if patch.IsInvestor != nil {
			put(fieldIsInvestor, patch.IsInvestor.String())
		}
		if patch.Investments != nil {
			resolved := patch.Investments.Resolve()
			put(fieldInvestments, model.InvestmentsDocument{
				Gold:   resolved.Gold,
				FD:     resolved.FD,
				Stocks: resolved.Stocks,
				Crypto: resolved.Crypto,
			})
		}
		if patch.CostOfLiving != nil {
			put(fieldCostOfLiving, *patch.CostOfLiving)
		}
	}

	return bson.M{
		"$set":         set,
		"$setOnInsert": onInsert,
	}
}

func toProfileDomain(doc *model.ProfileDocument) *entity.Profile {
	return &entity.Profile{
		Email:           doc.Email,
		Name:            doc.Name,
		Age:             doc.Age,
		Role:            entity.Role(doc.Role),
		Pincode:         doc.Pincode,
		MonthlyIncome:   doc.MonthlyIncome,
		MonthlySpending: doc.MonthlySpending,
		IsInvestor:      entity.InvestorFlag(doc.IsInvestor),
		Investments: entity.Investments{
			Gold:   doc.Investments.Gold,
			FD:     doc.Investments.FD,
			Stocks: doc.Investments.Stocks,
			Crypto: doc.Investments.Crypto,
		},
		CostOfLiving: doc.CostOfLiving,
		UserClass:    entity.UserClass(doc.UserClass),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
