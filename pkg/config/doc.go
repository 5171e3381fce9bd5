// Package config loads the service configuration from the environment.
//
// Values come from process environment variables, optionally seeded from
// .env files through github.com/joho/godotenv, and are parsed into tagged
// structs with github.com/caarlos0/env/v11. Variables already present in the
// environment win over .env files.
//
// Load returns the full application Config:
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//
// Parse is the generic building block for any tagged struct:
//
//	var db pg.Config
//	if err := config.Parse(&db); err != nil {
//		return err
//	}
package config
