package fields_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/fields"
	"github.com/dmitrymomot/formkit/pkg/maybe"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"empty", "", false},
		{"single character", "a", true},
		{"typical", "sebastian", true},
		{"exactly 20 characters", strings.Repeat("a", 20), true},
		{"21 characters", strings.Repeat("a", 21), false},
		{"20 multibyte characters", strings.Repeat("ü", 20), true},
		{"whitespace counts as content", " ", true},
		{"20 emoji", strings.Repeat("😀", 20), true},
		{"21 emoji", strings.Repeat("😀", 21), false},
		{"20 decomposed accented letters", strings.Repeat("e\u0301", 20), true},
		{"21 decomposed accented letters", strings.Repeat("e\u0301", 21), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fields.ParseName(tt.raw)
			require.Equal(t, tt.valid, got.IsPresent())
			if tt.valid {
				v, _ := got.Get()
				assert.Equal(t, tt.raw, v.String(), "name must be embedded unchanged")
			}
		})
	}
}

func TestParseEmail(t *testing.T) {
	for _, raw := range []string{"email@email.com", "x", ""} {
		got := fields.ParseEmail(raw)
		require.True(t, got.IsPresent(), "raw=%q", raw)
		v, _ := got.Get()
		assert.Equal(t, raw, v.String())
	}
}

func TestParseStrictEmail(t *testing.T) {
	assert.True(t, fields.ParseStrictEmail("email@email.com").IsPresent())
	assert.True(t, fields.ParseStrictEmail("x").IsAbsent())
	assert.True(t, fields.ParseStrictEmail("").IsAbsent())
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		raw  string
		want maybe.Maybe[int]
	}{
		{"0", maybe.Present(0)},
		{"27", maybe.Present(27)},
		{"-1", maybe.Present(-1)},
		{"+5", maybe.Present(5)},
		{"abc", maybe.Absent[int]()},
		{"", maybe.Absent[int]()},
		{"27abc", maybe.Present(27)},
		{" 27", maybe.Present(27)},
		{"27 ", maybe.Present(27)},
		{"\t\n-12px", maybe.Present(-12)},
		{"2.5", maybe.Present(2)},
		{"0x1A", maybe.Present(0)},
		{"-", maybe.Absent[int]()},
		{"+", maybe.Absent[int]()},
		{"+-3", maybe.Absent[int]()},
		{"   ", maybe.Absent[int]()},
		{"abc27", maybe.Absent[int]()},
		{"99999999999999999999999", maybe.Absent[int]()},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, fields.ParseInt(tt.raw))
		})
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		want  int
	}{
		{"-1", false, 0},
		{"0", true, 0},
		{"27", true, 27},
		{"120", true, 120},
		{"121", false, 0},
		{"200", false, 0},
		{"abc", false, 0},
		{"", false, 0},
		{"27 ", true, 27},
		{"27abc", true, 27},
		{" -1", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := fields.ParseAge(tt.raw)
			require.Equal(t, tt.valid, got.IsPresent())
			if tt.valid {
				v, _ := got.Get()
				assert.Equal(t, tt.want, v.Int())
				assert.Equal(t, strconv.Itoa(tt.want), v.String())
			}
		})
	}
}

func TestLimits(t *testing.T) {
	t.Run("custom name length", func(t *testing.T) {
		l := fields.Limits{NameMaxLen: 3, AgeMax: 120}
		assert.True(t, l.Name("abc").IsPresent())
		assert.True(t, l.Name("abcd").IsAbsent())
	})

	t.Run("custom age range", func(t *testing.T) {
		l := fields.Limits{NameMaxLen: 20, AgeMin: 18, AgeMax: 65}
		assert.True(t, l.Age("17").IsAbsent())
		assert.True(t, l.Age("18").IsPresent())
		assert.True(t, l.Age("65").IsPresent())
		assert.True(t, l.Age("66").IsAbsent())
	})

	t.Run("strict email", func(t *testing.T) {
		lenient := fields.DefaultLimits()
		strict := fields.DefaultLimits()
		strict.StrictEmail = true

		assert.True(t, lenient.Email("x").IsPresent())
		assert.True(t, strict.Email("x").IsAbsent())
		assert.True(t, strict.Email("email@email.com").IsPresent())
	})

	t.Run("validators are usable as Validator values", func(t *testing.T) {
		l := fields.DefaultLimits()
		var (
			name  fields.Validator[fields.Name]  = l.Name
			email fields.Validator[fields.Email] = fields.ParseEmail
			age   fields.Validator[fields.Age]   = l.Age
		)
		assert.True(t, name("sebastian").IsPresent())
		assert.True(t, email("x").IsPresent())
		assert.True(t, age("27").IsPresent())
	})
}

func TestLimitsValidate(t *testing.T) {
	assert.NoError(t, fields.DefaultLimits().Validate())
	assert.ErrorIs(t, fields.Limits{NameMaxLen: 0, AgeMax: 120}.Validate(), fields.ErrInvalidLimits)
	assert.ErrorIs(t, fields.Limits{NameMaxLen: 20, AgeMin: 10, AgeMax: 5}.Validate(), fields.ErrInvalidLimits)
}
