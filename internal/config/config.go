// Package config resolves emojihub settings from defaults, an optional JSONC
// file, and EMOJIHUB_* environment variables, in that order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"
)

// Config holds every tunable the binary reads at startup.
type Config struct {
	APIBaseURL     string        `env:"EMOJIHUB_API_URL"`
	HTTPTimeout    time.Duration `env:"EMOJIHUB_HTTP_TIMEOUT"`
	Store          string        `env:"EMOJIHUB_STORE"`
	StorePath      string        `env:"EMOJIHUB_STORE_PATH"`
	BannerDuration time.Duration `env:"EMOJIHUB_BANNER_DURATION"`
	WebAddr        string        `env:"EMOJIHUB_WEB_ADDR"`
	LogLevel       string        `env:"EMOJIHUB_LOG_LEVEL"`
	LogFile        string        `env:"EMOJIHUB_LOG_FILE"`
	UpdateOwner    string        `env:"EMOJIHUB_UPDATE_OWNER"`
	UpdateRepo     string        `env:"EMOJIHUB_UPDATE_REPO"`
}

// fileConfig mirrors Config for the JSONC file, where durations are strings.
type fileConfig struct {
	APIBaseURL     string `json:"apiBaseURL"`
	HTTPTimeout    string `json:"httpTimeout"`
	Store          string `json:"store"`
	StorePath      string `json:"storePath"`
	BannerDuration string `json:"bannerDuration"`
	WebAddr        string `json:"webAddr"`
	LogLevel       string `json:"logLevel"`
	LogFile        string `json:"logFile"`
	UpdateOwner    string `json:"updateOwner"`
	UpdateRepo     string `json:"updateRepo"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		APIBaseURL:     "https://emojihub.yurace.pro",
		HTTPTimeout:    30 * time.Second,
		Store:          "file",
		StorePath:      filepath.Join(DataDir(), "favorites.json"),
		BannerDuration: 2 * time.Second,
		WebAddr:        ":8080",
		LogLevel:       "info",
		UpdateOwner:    "emojihub",
		UpdateRepo:     "emojihub",
	}
}

// Load builds the configuration. A missing config file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		path = DefaultFile()
	}
	if err := cfg.mergeFile(path); err != nil {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.UseStore(cfg.Store)
	return cfg, nil
}

// UseStore selects the favorites backend. A .json store path is renamed to
// .db for sqlite.
func (c *Config) UseStore(kind string) {
	c.Store = kind
	if kind == "sqlite" && strings.HasSuffix(c.StorePath, ".json") {
		c.StorePath = strings.TrimSuffix(c.StorePath, ".json") + ".db"
	}
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&c.APIBaseURL, fc.APIBaseURL)
	setString(&c.Store, fc.Store)
	setString(&c.StorePath, fc.StorePath)
	setString(&c.WebAddr, fc.WebAddr)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.LogFile, fc.LogFile)
	setString(&c.UpdateOwner, fc.UpdateOwner)
	setString(&c.UpdateRepo, fc.UpdateRepo)
	if err := setDuration(&c.HTTPTimeout, fc.HTTPTimeout); err != nil {
		return fmt.Errorf("config httpTimeout: %w", err)
	}
	if err := setDuration(&c.BannerDuration, fc.BannerDuration); err != nil {
		return fmt.Errorf("config bannerDuration: %w", err)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

// Level maps LogLevel onto slog. Unknown names fall back to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ConfigDir is $XDG_CONFIG_HOME/emojihub (or the OS equivalent).
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".emojihub"
	}
	return filepath.Join(dir, "emojihub")
}

// DefaultFile is the JSONC config file consulted when none is given.
func DefaultFile() string {
	return filepath.Join(ConfigDir(), "config.jsonc")
}

// DataDir holds the favorites store.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "emojihub")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".emojihub"
	}
	return filepath.Join(home, ".local", "share", "emojihub")
}
