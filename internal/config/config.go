// Package config loads the duel client configuration from viper.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config represents the complete client configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
}

// ServerConfig locates the remote authority
type ServerConfig struct {
	// URL is the authority base URL; /new and /guess are appended to it
	URL string `mapstructure:"url" yaml:"url"`
	// Timeout bounds each request (0 = wait for the response)
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// File receives the log; empty logs to stderr in line mode and nowhere in the TUI
	File string `mapstructure:"file" yaml:"file"`
}

// UIConfig controls the front end
type UIConfig struct {
	// Plain forces the line-mode interface even on a terminal
	Plain bool `mapstructure:"plain" yaml:"plain"`
	// AutoStart requests a new game as soon as the client starts
	AutoStart bool `mapstructure:"auto_start" yaml:"auto_start"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "http://localhost:5000",
			Timeout: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(ConfigDir(), "duel.log"),
		},
		UI: UIConfig{
			Plain:     false,
			AutoStart: true,
		},
	}
}

// SetDefaults registers every default with viper
func SetDefaults() {
	d := Default()
	viper.SetDefault("server.url", d.Server.URL)
	viper.SetDefault("server.timeout", d.Server.Timeout)
	viper.SetDefault("logging.level", d.Logging.Level)
	viper.SetDefault("logging.file", d.Logging.File)
	viper.SetDefault("ui.plain", d.UI.Plain)
	viper.SetDefault("ui.auto_start", d.UI.AutoStart)
}

// Get unmarshals the current viper state
func Get() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Server.URL = strings.TrimSpace(cfg.Server.URL)
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server.url must be an http(s) URL, got %q", c.Server.URL)
	}
	if c.Server.Timeout < 0 {
		return errors.New("server.timeout must not be negative")
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// ConfigDir returns the directory holding config.yaml and the log file
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "duel")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "duel")
}

// ConfigFile returns the default config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
