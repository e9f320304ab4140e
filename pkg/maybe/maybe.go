package maybe

import "fmt"

// Maybe holds either a value of type A (Present) or nothing (Absent).
// The zero value is Absent.
type Maybe[A any] struct {
	value A
	ok    bool
}

// Present wraps v.
func Present[A any](v A) Maybe[A] {
	return Maybe[A]{value: v, ok: true}
}

// Absent returns the empty variant for type A.
func Absent[A any]() Maybe[A] {
	return Maybe[A]{}
}

// IsPresent reports whether m carries a value.
func (m Maybe[A]) IsPresent() bool {
	return m.ok
}

// IsAbsent reports whether m is empty.
func (m Maybe[A]) IsAbsent() bool {
	return !m.ok
}

// Get returns the wrapped value and true, or the zero value and false.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.ok
}

// OrElse returns the wrapped value or fallback when m is Absent.
func (m Maybe[A]) OrElse(fallback A) A {
	if m.ok {
		return m.value
	}
	return fallback
}

// String implements fmt.Stringer.
func (m Maybe[A]) String() string {
	if m.ok {
		return fmt.Sprintf("Present(%v)", m.value)
	}
	return "Absent"
}
