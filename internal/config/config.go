// Package config loads application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config groups the application configuration.
type Config struct {
	App   AppConfig
	Store StoreConfig
	HTTP  HTTPConfig
}

// AppConfig is general application configuration.
type AppConfig struct {
	Env      string // development, production
	LogLevel string // trace, debug, info, warn, error
}

// StoreConfig locates the XLSX workbook backing the inventory and job log.
type StoreConfig struct {
	Path string
}

// HTTPConfig configures the web adapter's listener.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables (and optionally a
// .env file in the working directory). Env vars take priority. Expected
// names: APP_ENV, LOG_LEVEL, STORE_PATH, HTTP_HOST, HTTP_PORT.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_PATH", "base_datos.xlsx")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Path: v.GetString("STORE_PATH"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
	}
	return cfg, nil
}
