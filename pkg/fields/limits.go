package fields

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/config"
)

// Limits holds the thresholds used by the field validators.
type Limits struct {
	NameMaxLen  int  `env:"FORMKIT_NAME_MAX_LEN" envDefault:"20"`
	AgeMin      int  `env:"FORMKIT_AGE_MIN" envDefault:"0"`
	AgeMax      int  `env:"FORMKIT_AGE_MAX" envDefault:"120"`
	StrictEmail bool `env:"FORMKIT_STRICT_EMAIL" envDefault:"false"`
}

// DefaultLimits returns names of 1–20 characters, ages 0–120 and a lenient
// email policy.
func DefaultLimits() Limits {
	return Limits{
		NameMaxLen: 20,
		AgeMin:     0,
		AgeMax:     120,
	}
}

// LoadLimits reads Limits from the environment.
func LoadLimits() (Limits, error) {
	var l Limits
	if err := config.Load(&l); err != nil {
		return Limits{}, err
	}
	if err := l.Validate(); err != nil {
		return Limits{}, err
	}
	return l, nil
}

// Validate checks that the limits describe a non-empty policy.
func (l Limits) Validate() error {
	if l.NameMaxLen < 1 {
		return fmt.Errorf("%w: name max length %d", ErrInvalidLimits, l.NameMaxLen)
	}
	if l.AgeMin > l.AgeMax {
		return fmt.Errorf("%w: age range [%d, %d]", ErrInvalidLimits, l.AgeMin, l.AgeMax)
	}
	return nil
}
