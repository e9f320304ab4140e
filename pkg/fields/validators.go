package fields

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/formkit/pkg/maybe"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Name returns Present when raw has between 1 and NameMaxLen characters.
// The value is kept exactly as given.
func (l Limits) Name(raw string) maybe.Maybe[Name] {
	if !validator.Passes(validator.LenBetween("name", raw, 1, l.NameMaxLen)) {
		return maybe.Absent[Name]()
	}
	return maybe.Present(Name{value: raw})
}

// Email accepts any input unless StrictEmail is set, in which case it
// delegates to ParseStrictEmail.
func (l Limits) Email(raw string) maybe.Maybe[Email] {
	if l.StrictEmail {
		return ParseStrictEmail(raw)
	}
	return ParseEmail(raw)
}

// Age parses raw as an integer and accepts it when it lies in
// [AgeMin, AgeMax].
func (l Limits) Age(raw string) maybe.Maybe[Age] {
	return maybe.Bind(ParseInt(raw), func(n int) maybe.Maybe[Age] {
		if !validator.Passes(validator.RangeNum("age", n, l.AgeMin, l.AgeMax)) {
			return maybe.Absent[Age]()
		}
		return maybe.Present(Age{value: n})
	})
}

// ParseName validates a name with DefaultLimits.
func ParseName(raw string) maybe.Maybe[Name] {
	return DefaultLimits().Name(raw)
}

// ParseEmail always succeeds; no format check is made.
func ParseEmail(raw string) maybe.Maybe[Email] {
	return maybe.Present(Email{value: raw})
}

// ParseStrictEmail succeeds only for structurally valid addresses.
func ParseStrictEmail(raw string) maybe.Maybe[Email] {
	if !validator.Passes(validator.ValidEmail("email", raw)) {
		return maybe.Absent[Email]()
	}
	return maybe.Present(Email{value: raw})
}

// ParseInt reads a base-10 integer from the start of raw. Leading
// whitespace and one sign are accepted and anything after the digits is
// ignored, so "27 ", "27abc" and "2.5" give 27, 27 and 2. Input without
// digits and out-of-range values yield Absent.
func ParseInt(raw string) maybe.Maybe[int] {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return maybe.Absent[int]()
	}
	return maybe.FromError(strconv.Atoi(sign + s[:end]))
}

// ParseAge validates an age with DefaultLimits.
func ParseAge(raw string) maybe.Maybe[Age] {
	return DefaultLimits().Age(raw)
}
