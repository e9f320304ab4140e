// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more `.env` files into the process environment;
//     later files override earlier ones.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so repeated calls are cheap.
//   - MustLoad and MustLoadEnv panic on failure for start-up code.
//   - ResetCache and ForceReloadConfig exist mainly for tests.
//
// # Usage
//
//	type Limits struct {
//	    NameMaxLen int `env:"FORMKIT_NAME_MAX_LEN" envDefault:"20"`
//	}
//
//	var limits Limits
//	if err := config.Load(&limits); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Failures wrap one of the sentinel errors below and can be matched with
// errors.Is:
//
//   - ErrParsingConfig – env vars could not be parsed into the struct
//   - ErrLoadingEnvFile – a .env file could not be read
//   - ErrNilPointer     – nil destination passed to Load
package config
