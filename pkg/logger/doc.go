// Package logger builds *slog.Logger instances from functional options and
// offers attribute helpers that keep key names consistent.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it in a decorator that injects attributes
// pulled from context.Context on every record.
//
// Options:
//
//   - WithDevelopment / WithProduction / WithEnvironment – presets per environment
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format
//   - WithLevel, WithOutput, WithAttr – level, destination and static attrs
//   - WithContextExtractors / WithContextValue – attrs taken from context
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "formcheck"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Info("batch validated",
//	    logger.Count("accepted", accepted),
//	    logger.Count("rejected", rejected),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally. The validation packages never log; only the outer
// application does.
package logger
