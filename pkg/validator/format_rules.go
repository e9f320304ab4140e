package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// playground.Validate caches struct metadata and is safe for concurrent use.
var emailValidate = playground.New()

// ValidEmail validates the structure of an email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailValidate.Var(value, "required,email") == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}
