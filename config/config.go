/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads and validates the process configuration. Values come
// from the environment (optionally seeded from a .env file); a YAML file can
// be used instead by pointing CONFIG_FILE at it. The loaded Config is
// constructed once at startup and injected into every component that needs
// it; nothing reads the environment after startup.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface of the service.
type Config struct {
	// Allowed CORS origins, comma separated.
	Origins string `env:"ORIGINS,default=" yaml:"origins"`

	// Token signing.
	SecretKey                string `env:"SECRET_KEY,required" yaml:"secret_key"`
	Algorithm                string `env:"ALGORITHM,default=HS256" yaml:"algorithm"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES,default=30" yaml:"access_token_expire_minutes"`

	// Document store.
	Endpoint            string `env:"ENDPOINT,default=" yaml:"endpoint"`
	AccessKey           string `env:"AWS_ACCESS_KEY,required" yaml:"aws_access_key"`
	SecretAccessKey     string `env:"AWS_SECRET_KEY,required" yaml:"aws_secret_key"`
	Region              string `env:"AWS_REGION,default=us-east-1" yaml:"aws_region"`
	DatabaseID          string `env:"DATABASE_ID,required" yaml:"database_id"`
	AccountsContainerID string `env:"ACCOUNTS_CONTAINER_ID,default=accounts" yaml:"accounts_container_id"`
	UsersContainerID    string `env:"USERS_CONTAINER_ID,default=users" yaml:"users_container_id"`

	// Paging.
	MaxPageSize int `env:"MAX_PAGE_SIZE,default=100" yaml:"max_page_size"`
	// LegacyPageOffsets preserves the historical offset computation, which
	// scales page offsets by MaxPageSize instead of the caller's page size.
	// Sequential pagination only lines up under it when results_per_page
	// equals MaxPageSize; enable it solely for byte-for-byte compatibility
	// with the previous service.
	LegacyPageOffsets bool `env:"LEGACY_PAGE_OFFSETS,default=false" yaml:"legacy_page_offsets"`

	// Serving.
	ListenAddr string `env:"LISTEN_ADDR,default=:8080" yaml:"listen_addr"`
	LogLevel   string `env:"LOG_LEVEL,default=info" yaml:"log_level"`
}

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// Load builds the configuration from the environment. A .env file in the
// working directory is honored when present. If CONFIG_FILE is set, the
// named YAML file is loaded instead of the environment.
func Load() (*Config, error) {
	// Missing .env is fine; explicit environment wins anyway.
	_ = godotenv.Load()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return LoadFile(path)
	}

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile builds the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 30,
		Region:                   "us-east-1",
		AccountsContainerID:      "accounts",
		UsersContainerID:         "users",
		MaxPageSize:              100,
		ListenAddr:               ":8080",
		LogLevel:                 "info",
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration is serviceable. The process must not
// start with blank required values or an unusable signing algorithm.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"SECRET_KEY", c.SecretKey},
		{"AWS_ACCESS_KEY", c.AccessKey},
		{"AWS_SECRET_KEY", c.SecretAccessKey},
		{"DATABASE_ID", c.DatabaseID},
		{"ACCOUNTS_CONTAINER_ID", c.AccountsContainerID},
		{"USERS_CONTAINER_ID", c.UsersContainerID},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s must be defined", r.name)
		}
	}

	if !supportedAlgorithms[c.Algorithm] {
		return fmt.Errorf("unsupported signing algorithm %q", c.Algorithm)
	}
	if c.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("MAX_PAGE_SIZE must be positive")
	}
	return nil
}

// OriginList splits the configured CORS origins, dropping blanks.
func (c *Config) OriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.Origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// TableName returns the store table backing a container, namespaced by the
// database identifier.
func (c *Config) TableName(containerID string) string {
	return c.DatabaseID + "." + containerID
}
