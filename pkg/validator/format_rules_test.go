package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"email@email.com",
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"1234567890@example.com",
		}
		for _, email := range validEmails {
			assert.True(t, validator.ValidEmail("email", email).Check(), "Email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"",
			"x",
			"plainaddress",
			"@missingdomain.com",
			"a@b@c.com",
			"user name@example.com",
		}
		for _, email := range invalidEmails {
			assert.False(t, validator.ValidEmail("email", email).Check(), "Email should be invalid: %s", email)
		}
	})

	t.Run("error metadata", func(t *testing.T) {
		rule := validator.ValidEmail("contact", "x")
		assert.Equal(t, "contact", rule.Error.Field)
		assert.Equal(t, "must be a valid email address", rule.Error.Message)
	})
}
