package maybe

// Match collapses m into a C by calling onPresent with the wrapped value or
// onAbsent when there is none. Exactly one handler runs, exactly once.
// Panics with ErrNilHandler if either handler is nil.
func Match[A, C any](m Maybe[A], onPresent func(A) C, onAbsent func() C) C {
	if onPresent == nil || onAbsent == nil {
		panic(ErrNilHandler)
	}
	if m.ok {
		return onPresent(m.value)
	}
	return onAbsent()
}

// Bind runs step on the value of m. If m is Absent, step is never called and
// the result is Absent. Panics with ErrNilHandler if step is nil, even when
// m is Absent.
func Bind[A, B any](m Maybe[A], step func(A) Maybe[B]) Maybe[B] {
	return Match(m, step, Absent[B])
}

// Map applies f to the value of m, if any. Panics with ErrNilHandler if f
// is nil.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if f == nil {
		panic(ErrNilHandler)
	}
	return Bind(m, func(a A) Maybe[B] {
		return Present(f(a))
	})
}

// Filter keeps the value of m only when pred holds for it. Panics with
// ErrNilHandler if pred is nil.
func Filter[A any](m Maybe[A], pred func(A) bool) Maybe[A] {
	if pred == nil {
		panic(ErrNilHandler)
	}
	return Bind(m, func(a A) Maybe[A] {
		if pred(a) {
			return Present(a)
		}
		return Absent[A]()
	})
}
