package fields

import (
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/maybe"
)

// Validator maps a raw field value to a validated one.
type Validator[A any] func(raw string) maybe.Maybe[A]

// Name is a non-empty, length-bounded display name.
type Name struct{ value string }

func (n Name) String() string { return n.value }

// Email is an email address accepted by the active email policy.
type Email struct{ value string }

func (e Email) String() string { return e.value }

// Age is an integer within the configured age range.
type Age struct{ value int }

func (a Age) Int() int { return a.value }

func (a Age) String() string { return strconv.Itoa(a.value) }
