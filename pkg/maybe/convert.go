package maybe

// FromOK converts a comma-ok pair, such as a map lookup, into a Maybe.
func FromOK[A any](v A, ok bool) Maybe[A] {
	if !ok {
		return Absent[A]()
	}
	return Present(v)
}

// FromError converts a value/error pair into a Maybe, dropping the error.
func FromError[A any](v A, err error) Maybe[A] {
	return FromOK(v, err == nil)
}
