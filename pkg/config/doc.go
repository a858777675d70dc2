// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` for
// reading and parsing, and `github.com/go-playground/validator/v10` for
// checking the parsed struct:
//
//   - Load reads an optional `.env` file once per process, parses the
//     environment into the struct using `env` tags, then runs `validate`
//     tags over the result.
//   - LoadEnv reads explicit dotenv files; existing variables are kept.
//   - MustLoad panics on failure for configuration the process cannot start
//     without.
//
// # Usage
//
//	type Config struct {
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//		LogFormat string `env:"LOG_FORMAT" validate:"omitempty,oneof=json text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("REGFORM_")); err != nil {
//		return err
//	}
//
// # Error Handling
//
// Errors are joined with one of the sentinels in errors.go, so callers can
// tell a parse failure (ErrParsingConfig) from a rule violation
// (ErrInvalidConfig) with errors.Is.
package config
