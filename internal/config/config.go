package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Load when a setting is missing or out of
// range.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix is prepended to every environment variable the site reads.
const EnvPrefix = "LASTLOOK"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// devSessionSecret is only used when running in development without a
// configured secret.
const devSessionSecret = "development-only-session-secret-change-me"

// Provider is the read-only view of the configuration handed to the rest of
// the application.
type Provider interface {
	GetAddr() string
	GetBaseURL() string
	GetSessionSecret() string
	GetEnv() string
	IsDevelopment() bool
	GetShutdownTimeout() time.Duration
	GetRateLimit() int
	GetExportDir() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr            string        `mapstructure:"addr" validate:"required,hostname_port"`
	BaseURL         string        `mapstructure:"base_url" validate:"required,url"`
	SessionSecret   string        `mapstructure:"session_secret" validate:"required,min=32"`
	Env             string        `mapstructure:"env" validate:"oneof=development production"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	RateLimit       int           `mapstructure:"rate_limit" validate:"gt=0"`
	ExportDir       string        `mapstructure:"export_dir" validate:"required"`
}

var defaults = map[string]any{
	"addr":             ":8080",
	"base_url":         "http://localhost:8080",
	"session_secret":   "",
	"env":              EnvDevelopment,
	"shutdown_timeout": 10 * time.Second,
	"rate_limit":       10,
	"export_dir":       "public",
}

// flagKeys maps configuration keys to the command-line flags that may
// override them.
var flagKeys = map[string]string{
	"addr":       "addr",
	"base_url":   "base-url",
	"export_dir": "out",
}

// Load reads the configuration. A .env file is loaded first if present,
// then LASTLOOK_* environment variables, then any flags in fs that were set
// on the command line. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if fs != nil {
		for key, name := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
		if dev, err := fs.GetBool("dev"); err == nil && dev {
			v.Set("env", EnvDevelopment)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.SessionSecret == "" && cfg.Env == EnvDevelopment {
		cfg.SessionSecret = devSessionSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) GetAddr() string                   { return c.Addr }
func (c *Config) GetBaseURL() string                { return c.BaseURL }
func (c *Config) GetSessionSecret() string          { return c.SessionSecret }
func (c *Config) GetEnv() string                    { return c.Env }
func (c *Config) IsDevelopment() bool               { return c.Env == EnvDevelopment }
func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }
func (c *Config) GetRateLimit() int                 { return c.RateLimit }
func (c *Config) GetExportDir() string              { return c.ExportDir }
