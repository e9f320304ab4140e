package form

import (
	"github.com/dmitrymomot/formkit/pkg/fields"
	"github.com/dmitrymomot/formkit/pkg/maybe"
)

// Validator turns Raw input into a Record.
type Validator struct {
	name  fields.Validator[fields.Name]
	email fields.Validator[fields.Email]
	age   fields.Validator[fields.Age]
}

// Option configures a Validator.
type Option func(*Validator)

// WithLimits replaces all three field validators with those of l.
func WithLimits(l fields.Limits) Option {
	return func(v *Validator) {
		v.name = l.Name
		v.email = l.Email
		v.age = l.Age
	}
}

// WithName overrides the name validator. Nil is ignored.
func WithName(fn fields.Validator[fields.Name]) Option {
	return func(v *Validator) {
		if fn != nil {
			v.name = fn
		}
	}
}

// WithEmail overrides the email validator. Nil is ignored.
func WithEmail(fn fields.Validator[fields.Email]) Option {
	return func(v *Validator) {
		if fn != nil {
			v.email = fn
		}
	}
}

// WithAge overrides the age validator. Nil is ignored.
func WithAge(fn fields.Validator[fields.Age]) Option {
	return func(v *Validator) {
		if fn != nil {
			v.age = fn
		}
	}
}

// New returns a Validator using fields.DefaultLimits unless overridden.
func New(opts ...Option) *Validator {
	v := &Validator{}
	WithLimits(fields.DefaultLimits())(v)
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks name, email and age in that order and stops at the first
// field that fails. The zero Validator behaves like New().
func (v *Validator) Validate(raw Raw) maybe.Maybe[Record] {
	nameFn, emailFn, ageFn := v.validators()
	return maybe.Bind(nameFn(raw.Get(FieldName)), func(name fields.Name) maybe.Maybe[Record] {
		return maybe.Bind(emailFn(raw.Get(FieldEmail)), func(email fields.Email) maybe.Maybe[Record] {
			return maybe.Bind(ageFn(raw.Get(FieldAge)), func(age fields.Age) maybe.Maybe[Record] {
				return maybe.Present(Record{Name: name, Email: email, Age: age})
			})
		})
	})
}

// validators returns the configured field validators, using the
// DefaultLimits ones for any that are unset.
func (v *Validator) validators() (fields.Validator[fields.Name], fields.Validator[fields.Email], fields.Validator[fields.Age]) {
	name, email, age := v.name, v.email, v.age
	if name == nil {
		name = fields.ParseName
	}
	if email == nil {
		email = fields.ParseEmail
	}
	if age == nil {
		age = fields.ParseAge
	}
	return name, email, age
}

var defaultValidator = New()

// Validate validates raw with the default policy.
func Validate(raw Raw) maybe.Maybe[Record] {
	return defaultValidator.Validate(raw)
}
