package config

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/jobboard/pkg/httpserver"
	"github.com/dmitrymomot/jobboard/pkg/pg"
)

// Config is the complete service configuration.
type Config struct {
	App  App
	Log  Log
	HTTP httpserver.Config
	DB   pg.Config
	Auth Auth
}

type App struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"jobboard"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Auth struct {
	// SecretKey signs identity tokens. It is removed from the process
	// environment once read.
	SecretKey  string        `env:"AUTH_SECRET_KEY,required,notEmpty,unset"`
	TokenTTL   time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"` // 0 issues tokens without expiry
	BcryptCost int           `env:"AUTH_BCRYPT_COST" envDefault:"12"`
}

// Load reads optional .env files and parses the environment into Config.
func Load(files ...string) (Config, error) {
	if err := LoadEnv(files...); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that tags cannot express.
func (c Config) Validate() error {
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return errors.Join(ErrInvalidConfig,
			fmt.Errorf("AUTH_BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Auth.TokenTTL < 0 {
		return errors.Join(ErrInvalidConfig, errors.New("AUTH_TOKEN_TTL must not be negative"))
	}
	return nil
}
