package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Source records where input was read from under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Line records a 1-based input position under the key "line".
func Line(n int) slog.Attr {
	return slog.Int("line", n)
}

// Outcome records "valid" or "invalid" under the key "outcome".
func Outcome(valid bool) slog.Attr {
	if valid {
		return slog.String("outcome", "valid")
	}
	return slog.String("outcome", "invalid")
}

// Count records a named counter.
func Count(name string, n int) slog.Attr {
	return slog.Int(name, n)
}
