package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "name", Message: "field is required"},
			{Field: "age", Message: "must be at most 120"},
		}
		assert.Equal(t, "validation failed: name: field is required; age: must be at most 120", errs.Error())
	})
}

func TestValidationErrors_Fields(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "name"},
		{Field: "age"},
		{Field: "name"},
	}
	assert.Equal(t, []string{"name", "age"}, errs.Fields())
	assert.True(t, errs.Has("age"))
	assert.False(t, errs.Has("email"))
}

func TestApply(t *testing.T) {
	t.Run("returns nil when every rule passes", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "sebastian"),
			validator.RangeNum("age", 27, 0, 120),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", ""),
			validator.RangeNum("age", 200, 0, 120),
			validator.ValidEmail("email", "email@email.com"),
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"name", "age"}, verrs.Fields())
	})

	t.Run("extract works through wrapping", func(t *testing.T) {
		err := fmt.Errorf("submit: %w", validator.Apply(validator.RequiredString("name", " ")))
		assert.True(t, validator.IsValidationError(err))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestPasses(t *testing.T) {
	t.Run("true when all rules hold", func(t *testing.T) {
		assert.True(t, validator.Passes(
			validator.MinLenString("name", "abc", 1),
			validator.MaxLenString("name", "abc", 3),
		))
	})

	t.Run("stops at the first failing rule", func(t *testing.T) {
		calls := 0
		counting := validator.Rule{Check: func() bool { calls++; return true }}
		failing := validator.Rule{Check: func() bool { return false }}

		assert.False(t, validator.Passes(failing, counting))
		assert.Zero(t, calls)
	})

	t.Run("true for no rules", func(t *testing.T) {
		assert.True(t, validator.Passes())
	})
}
