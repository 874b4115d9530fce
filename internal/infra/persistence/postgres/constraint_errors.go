package postgres

import (
	"strings"

	domainerrors "fintwin/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// toPersistenceError keeps app errors as they are and wraps everything
// else, including constraint violations, as a PersistenceError.
func toPersistenceError(err error, details string) error {
	if err == nil {
		return nil
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case isNotNullConstraintViolation(err):
		details += ": missing required profile field"
	case isCheckConstraintViolation(err):
		details += ": check constraint violated"
	}

	return domainerrors.NewPersistenceError(err, details)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		strings.Contains(err.Error(), "23514") // PostgreSQL check_violation error code
}
