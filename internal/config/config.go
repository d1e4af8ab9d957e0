// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig
	Translate TranslateConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// TranslateConfig selects and configures the translation provider.
type TranslateConfig struct {
	Provider          string
	DefaultTargetLang string
	Credentials       string
	ProjectID         string
	MyMemoryEmail     string
	Timeout           time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// New returns a viper instance reading the environment, with defaults set.
// Callers may bind command-line flags to the same keys before Load.
func New() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8000)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("TRANSLATION_PROVIDER", "googlefree")
	v.SetDefault("DEFAULT_TARGET_LANG", "es")
	v.SetDefault("PROVIDER_TIMEOUT", time.Duration(0))
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	return v
}

// Load reads configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("HOST"),
			Port:            v.GetInt("PORT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Translate: TranslateConfig{
			Provider:          v.GetString("TRANSLATION_PROVIDER"),
			DefaultTargetLang: v.GetString("DEFAULT_TARGET_LANG"),
			Credentials:       v.GetString("GOOGLE_APPLICATION_CREDENTIALS"),
			ProjectID:         v.GetString("GOOGLE_PROJECT_ID"),
			MyMemoryEmail:     v.GetString("MYMEMORY_EMAIL"),
			Timeout:           v.GetDuration("PROVIDER_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must not be negative")
	}
	if c.Translate.Provider == "" {
		return fmt.Errorf("TRANSLATION_PROVIDER is required")
	}
	if c.Translate.DefaultTargetLang == "" {
		return fmt.Errorf("DEFAULT_TARGET_LANG is required")
	}
	if c.Translate.Timeout < 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must not be negative")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format)
	}
	return nil
}
