package form

import (
	"encoding/json"

	"github.com/dmitrymomot/formkit/pkg/fields"
)

// Field keys recognised in Raw.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldAge   = "age"
)

// Raw maps field names to unvalidated input. Missing keys read as "".
type Raw map[string]string

// Get returns the raw value for key, or "" if it is missing.
func (r Raw) Get(key string) string {
	return r[key]
}

// Record is a fully validated form.
type Record struct {
	Name  fields.Name
	Email fields.Email
	Age   fields.Age
}

// MarshalJSON encodes the record with plain field values.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Age   int    `json:"age"`
	}{
		Name:  r.Name.String(),
		Email: r.Email.String(),
		Age:   r.Age.Int(),
	})
}
