package app

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/aussiebroadwan/accounts/pkg/cryptox"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env                 string        `envconfig:"ENV" default:"dev"`                   // dev, staging, production
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`            // debug, info, warn, error
	LogFormat           string        `envconfig:"LOG_FORMAT" default:"json"`           // json, text
	Port                int           `envconfig:"PORT" default:"8080"`                 // HTTP server port
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"` // graceful shutdown timeout

	DatabaseDriver string `envconfig:"ACCOUNTS_DATABASE_DRIVER" default:"sqlite"`    // sqlite or postgres
	DatabaseFile   string `envconfig:"ACCOUNTS_DATABASE_FILE" default:"accounts.db"` // sqlite only
	DatabaseURI    string `envconfig:"DATABASE_URI"`                                 // postgres only
	PepperFile     string `envconfig:"ACCOUNTS_PEPPER_FILE" default:"pepper"`        // created on first start

	Argon2Memory      uint32 `envconfig:"ARGON2_MEMORY_KIB" default:"19456"`
	Argon2Iterations  uint32 `envconfig:"ARGON2_ITERATIONS" default:"2"`
	Argon2Parallelism uint8  `envconfig:"ARGON2_PARALLELISM" default:"1"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// LoadConfig reads configuration from environment variables and validates it.
func LoadConfig() (Config, error) {
	cfg, err := ReadEnv()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadEnv reads configuration from environment variables without validating,
// so callers can layer overrides first.
func ReadEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			return fmt.Errorf("ACCOUNTS_DATABASE_FILE is required for the %s driver", DriverSQLite)
		}
	case DriverPostgres:
		if c.DatabaseURI == "" {
			return fmt.Errorf("DATABASE_URI is required for the %s driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown database driver %q (want %s or %s)", c.DatabaseDriver, DriverSQLite, DriverPostgres)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// IsProduction returns true when the service runs in production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// HashParams returns the Argon2id parameters for new password hashes.
func (c Config) HashParams() cryptox.Params {
	p := cryptox.DefaultParams()
	p.Memory = c.Argon2Memory
	p.Iterations = c.Argon2Iterations
	p.Parallelism = c.Argon2Parallelism
	return p
}
