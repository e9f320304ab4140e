package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// CharLen returns the number of characters in s after NFC normalisation.
func CharLen(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return CharLen(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Params:  map[string]any{"min": min},
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return CharLen(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Params:  map[string]any{"max": max},
		},
	}
}

// LenBetween validates that the character count lies in [min, max].
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := CharLen(value)
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters long", min, max),
			Params:  map[string]any{"min": min, "max": max},
		},
	}
}
