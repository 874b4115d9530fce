package postgres

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"fintwin/internal/domain/entity"
	domainerrors "fintwin/internal/domain/errors"
	"fintwin/internal/domain/repository"
	"fintwin/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ptr[T any](v T) *T {
	return &v
}

// sqlRecorder captures the rendered statements gorm traces.
type sqlRecorder struct {
	mu         sync.Mutex
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	statement, _ := fc()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, statement)
}

func (r *sqlRecorder) find(prefix string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, statement := range r.statements {
		if strings.HasPrefix(statement, prefix) {
			return statement
		}
	}

	return ""
}

// dryRunPool satisfies gorm.ConnPool without a server. In dry-run mode nothing is
// executed; it only has to hand out transactions.
type dryRunPool struct{}

func (dryRunPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errors.New("dry run")
}

func (dryRunPool) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, errors.New("dry run")
}

func (dryRunPool) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("dry run")
}

func (dryRunPool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (p dryRunPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	return &dryRunTx{dryRunPool: p}, nil
}

type dryRunTx struct {
	dryRunPool
}

func (*dryRunTx) Commit() error   { return nil }
func (*dryRunTx) Rollback() error { return nil }

func newDryRunRepository(t *testing.T, now time.Time) (*profileRepository, *sqlRecorder) {
	t.Helper()

	recorder := &sqlRecorder{}
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: dryRunPool{}}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               recorder,
	})
	require.NoError(t, err)

	return &profileRepository{
		q:   query.Use(db),
		now: func() time.Time { return now },
	}, recorder
}

func TestPatchColumns(t *testing.T) {
	tests := []struct {
		name  string
		patch *entity.ProfilePatch
		want  []string
	}{
		{
			name:  "nil patch touches only updated_at",
			patch: nil,
			want:  []string{"updated_at"},
		},
		{
			name:  "income only",
			patch: &entity.ProfilePatch{MonthlyIncome: ptr(50000.0)},
			want:  []string{"monthly_income", "updated_at"},
		},
		{
			name:  "investments replace all four columns",
			patch: &entity.ProfilePatch{Investments: &entity.InvestmentsPatch{Gold: ptr(1000.0)}},
			want:  []string{"investments_gold", "investments_fd", "investments_stocks", "investments_crypto", "updated_at"},
		},
		{
			name: "create payload",
			patch: &entity.ProfilePatch{
				Name:       ptr("Asha"),
				Age:        ptr(24),
				Role:       ptr(entity.RoleProfessional),
				IsInvestor: ptr(entity.InvestorYes),
			},
			want: []string{"name", "age", "role", "is_investor", "updated_at"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, patchColumns(tt.patch))
		})
	}
}

func TestPatchColumns_NeverIncludesImmutableFields(t *testing.T) {
	columns := patchColumns(&entity.ProfilePatch{
		Name:            ptr("Asha"),
		Age:             ptr(24),
		Role:            ptr(entity.RoleStudent),
		Pincode:         ptr("560001"),
		MonthlyIncome:   ptr(1.0),
		MonthlySpending: ptr(1.0),
		IsInvestor:      ptr(entity.InvestorNo),
		Investments:     &entity.InvestmentsPatch{},
		CostOfLiving:    ptr(1.0),
	})

	assert.NotContains(t, columns, "created_at")
	assert.NotContains(t, columns, "user_class")
	assert.NotContains(t, columns, "email")
}

func TestFieldsOf_ResolvesEveryPatchColumn(t *testing.T) {
	repo, _ := newDryRunRepository(t, time.Now())
	p := repo.q.ProfileModel

	columns := patchColumns(&entity.ProfilePatch{
		Name:            ptr("Asha"),
		Age:             ptr(24),
		Role:            ptr(entity.RoleStudent),
		Pincode:         ptr("560001"),
		MonthlyIncome:   ptr(1.0),
		MonthlySpending: ptr(1.0),
		IsInvestor:      ptr(entity.InvestorNo),
		Investments:     &entity.InvestmentsPatch{},
		CostOfLiving:    ptr(1.0),
	})
	fields := fieldsOf(p.GetFieldByName, columns)

	require.Len(t, fields, len(columns))
	for i, f := range fields {
		assert.Equal(t, columns[i], f.ColumnName().String())
	}
	assert.Empty(t, fieldsOf(p.GetFieldByName, []string{"no_such_column"}))
}

func TestProfileRepository_UpsertUpdatesOnlyPatchedColumns(t *testing.T) {
	repo, recorder := newDryRunRepository(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := repo.Upsert(context.Background(), "a@x.com", &entity.ProfilePatch{MonthlyIncome: ptr(999.0)})
	require.NoError(t, err)

	selectSQL := recorder.find("SELECT")
	assert.Contains(t, selectSQL, `"email" = 'a@x.com'`)
	assert.Contains(t, selectSQL, "FOR UPDATE")

	updateSQL := recorder.find("UPDATE")
	require.NotEmpty(t, updateSQL)
	assert.Contains(t, updateSQL, `"monthly_income"=999`)
	assert.Contains(t, updateSQL, `"updated_at"=`)
	assert.Contains(t, updateSQL, `"email" = 'a@x.com'`)
	assert.NotContains(t, updateSQL, `"name"=`)
	assert.NotContains(t, updateSQL, `"user_class"=`)
	assert.NotContains(t, updateSQL, `"created_at"=`)
}

func TestProfileRepository_CreateMergesOnConflict(t *testing.T) {
	repo, recorder := newDryRunRepository(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	created, err := repo.create(context.Background(), repo.q, "a@x.com", &entity.ProfilePatch{
		Name: ptr("Asha"),
		Age:  ptr(24),
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", created.Name)
	assert.Equal(t, entity.UserClassUnknown, created.UserClass)

	insertSQL := recorder.find("INSERT")
	require.NotEmpty(t, insertSQL)
	assert.Contains(t, insertSQL, `INSERT INTO "profiles"`)
	assert.Contains(t, insertSQL, `ON CONFLICT ("email") DO UPDATE SET`)
	assert.Contains(t, insertSQL, `"name"="excluded"."name"`)
	assert.Contains(t, insertSQL, `"updated_at"="excluded"."updated_at"`)
	assert.NotContains(t, insertSQL, `"user_class"="excluded"`)
	assert.NotContains(t, insertSQL, `"monthly_income"="excluded"`)
	assert.Contains(t, insertSQL, "RETURNING")
}

func TestProfileRepository_SaveUserClassWritesOnlyTheLabel(t *testing.T) {
	repo, recorder := newDryRunRepository(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	err := repo.SaveUserClass(context.Background(), "a@x.com", entity.UserClassSaver)

	// A dry run affects no rows, which reads as a missing profile.
	var persistenceErr *domainerrors.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	require.ErrorIs(t, err, repository.ErrProfileNotFound)

	updateSQL := recorder.find("UPDATE")
	require.NotEmpty(t, updateSQL)
	assert.Contains(t, updateSQL, `UPDATE "profiles" SET`)
	assert.Contains(t, updateSQL, `"user_class"='Saver'`)
	assert.Contains(t, updateSQL, `"updated_at"=`)
	assert.Contains(t, updateSQL, `"email" = 'a@x.com'`)
	for _, column := range []string{"name", "age", "monthly_income", "monthly_spending", "investments_gold", "cost_of_living"} {
		assert.NotContains(t, updateSQL, `"`+column+`"=`)
	}
}

func TestProfileRepository_FindByEmailQuery(t *testing.T) {
	repo, recorder := newDryRunRepository(t, time.Now())

	_, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)

	selectSQL := recorder.find("SELECT")
	assert.Contains(t, selectSQL, `FROM "profiles"`)
	assert.Contains(t, selectSQL, `"email" = 'a@x.com'`)
	assert.Contains(t, selectSQL, "LIMIT 1")
}

func TestProfileMapping(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	profile := &entity.Profile{
		Email:           "a@x.com",
		Name:            "Asha",
		Age:             24,
		Role:            entity.RoleProfessional,
		Pincode:         "560001",
		MonthlyIncome:   50000,
		MonthlySpending: 20000,
		IsInvestor:      entity.InvestorYes,
		Investments:     entity.Investments{Gold: 1000, FD: 2000, Stocks: 3000, Crypto: 4000},
		CostOfLiving:    25000,
		UserClass:       entity.UserClassInvestor,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	assert.Equal(t, profile, toProfileDomain(fromProfileDomain(profile)))
}

func TestToPersistenceError(t *testing.T) {
	require.NoError(t, toPersistenceError(nil, "noop"))

	err := toPersistenceError(errors.New(`ERROR: null value in column "name" (SQLSTATE 23502)`), "failed to create profile")
	var persistenceErr *domainerrors.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "failed to create profile: missing required profile field", persistenceErr.Details())

	already := domainerrors.NewPersistenceError(errors.New("boom"), "inner")
	assert.Same(t, already, toPersistenceError(already, "outer"))
}
