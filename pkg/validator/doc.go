// Package validator provides small, composable predicate rules for strings
// and numbers together with error metadata describing each failure.
//
// A Rule bundles a boolean Check with a ValidationError. Apply evaluates
// rules and aggregates failures into ValidationErrors, which satisfies the
// error interface. Callers that only care about the outcome, such as the
// maybe-based field validators in pkg/fields, use Passes and drop the detail.
//
// # Architecture
//
// Each source file groups a family of rules:
//   - string_rules.go  – presence and length checks
//   - numeric_rules.go – range checks over the Numeric constraint
//   - format_rules.go  – structural email check
//
// String lengths are measured in characters of the NFC-normalised value, so
// "é" counts as one character whether it arrives precomposed or as "e" plus a
// combining accent. Email syntax is delegated to
// github.com/go-playground/validator/v10.
//
// The package keeps no mutable state and all rules are goroutine-safe.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.MaxLenString("name", name, 20),
//	    validator.RangeNum("age", age, 0, 120),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Fields()
//	}
//
//	ok := validator.Passes(validator.ValidEmail("email", email))
package validator
