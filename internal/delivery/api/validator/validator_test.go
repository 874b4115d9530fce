package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type holdings struct {
	Gold *float64 `json:"gold" validate:"omitempty,gte=0"`
}

type payload struct {
	Email    string    `json:"email" validate:"required"`
	Income   *float64  `json:"monthlyIncome" validate:"omitempty,gte=0"`
	Holdings *holdings `json:"investments"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	negative := -1.0

	require.NoError(t, v.Validate(&payload{Email: "a@x.com"}))

	err := v.Validate(&payload{Income: &negative, Holdings: &holdings{Gold: &negative}})
	require.Error(t, err)

	var fieldErrs ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.ElementsMatch(t, ValidationErrors{
		{Field: "email", Rule: "required"},
		{Field: "monthlyIncome", Rule: "gte"},
		{Field: "investments.gold", Rule: "gte"},
	}, fieldErrs)
}
