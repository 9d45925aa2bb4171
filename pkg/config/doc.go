// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is read once, if present.
//   - Additional files can be read explicitly with LoadEnv.
//   - Struct fields are populated from `env` tags, optionally under a common prefix.
//   - Each (type, prefix) pair is parsed once and cached for the lifetime of the process.
//
// # Usage
//
//	type Config struct {
//	    DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
//	    LogLevel      string `env:"LOG_LEVEL" envDefault:"warn"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("VALIDATOR_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicit .env file could not be loaded.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the cache between tests that change the environment.
package config
