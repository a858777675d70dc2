package regform

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/regform/pkg/config"
	"github.com/dmitrymomot/regform/pkg/engine"
	"github.com/dmitrymomot/regform/pkg/environment"
	"github.com/dmitrymomot/regform/pkg/logger"
)

// Config is read from the environment by LoadConfig.
type Config struct {
	Env       environment.Environment `env:"APP_ENV" envDefault:"development" validate:"oneof=development staging production"`
	Name      string                  `env:"APP_NAME" envDefault:"regform" validate:"required"`
	LogLevel  string                  `env:"LOG_LEVEL"`
	LogFormat string                  `env:"LOG_FORMAT" validate:"omitempty,oneof=json text"`
}

// LoadConfig reads Config from the environment (and a .env file if present).
// LogLevel is checked with logger.ParseLevel, so it is case-insensitive.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel != "" {
		if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
			return Config{}, errors.Join(config.ErrInvalidConfig, err)
		}
	}
	return cfg, nil
}

// NewLogger builds the logger described by c, writing to w. LogLevel and
// LogFormat override the environment preset when set. Every record carries
// the validation trigger when there is one in the context.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(c.Env, c.Name),
		logger.WithOutput(w),
		logger.WithContextExtractors(engine.TriggerAttr),
	}
	if c.LogLevel != "" {
		lvl, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("regform: %w", err)
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return logger.New(opts...), nil
}
