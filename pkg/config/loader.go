package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	defaultEnvLoaded sync.Once

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// LoadEnv reads the given dotenv files into the process environment.
// Variables that are already set are left untouched. Unlike the implicit
// .env load done by Load, a missing file here is an error.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v according to its `env` tags and
// then validates it against its `validate` tags.
//
// On first use Load also reads a .env file from the working directory if one
// exists.
//
// Example:
//
//	type AppConfig struct {
//		Env      string `env:"APP_ENV" envDefault:"development" validate:"oneof=development staging production"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		// errors.Is(err, config.ErrParsingConfig) or config.ErrInvalidConfig
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if err := validate.Struct(v); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Option tweaks how Load reads the environment.
type Option func(*options)

type options struct {
	prefix string
}

// WithPrefix prepends prefix to every variable name read by Load,
// e.g. WithPrefix("REGFORM_") reads REGFORM_LOG_LEVEL for `env:"LOG_LEVEL"`.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}
