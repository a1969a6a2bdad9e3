package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/voyagekit/skytravel/pkg/travel"
)

// Config is the on-disk configuration, read from
// ~/.config/skytravel/config.toml (or $XDG_CONFIG_HOME/skytravel/).
type Config struct {
	APIKey          string      `toml:"api_key"`
	Country         string      `toml:"country"`
	Currency        string      `toml:"currency"`
	Locale          string      `toml:"locale"`
	UserIP          string      `toml:"user_ip"`
	RemoveIDs       bool        `toml:"remove_ids"`
	KeepSingleLists bool        `toml:"keep_single_lists"`
	Cache           CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the response cache backend.
type CacheConfig struct {
	// Backend is one of "file" (default), "redis", "bolt" or "none".
	Backend string `toml:"backend"`

	// TTL is a Go duration string, e.g. "30m". Default one hour.
	TTL string `toml:"ttl"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	// BoltPath is the database file for the bolt backend. Defaults to
	// cache.db inside the cache directory.
	BoltPath string `toml:"bolt_path"`
}

// loadConfig reads the configuration file. A missing file is not an error;
// it yields the zero configuration so environment overrides still apply.
// SKYTRAVEL_API_KEY always wins over the file.
func (c *CLI) loadConfig() (Config, error) {
	path := c.ConfigPath
	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if c.ConfigPath != "" {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	if key := os.Getenv("SKYTRAVEL_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	return cfg, nil
}

// configPath returns the default configuration file location using the XDG
// standard (~/.config/skytravel/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// travelConfig maps the file settings onto the client configuration.
func (cfg Config) travelConfig() travel.Config {
	return travel.Config{
		APIKey:          cfg.APIKey,
		Country:         cfg.Country,
		Currency:        cfg.Currency,
		Locale:          cfg.Locale,
		UserIP:          cfg.UserIP,
		RemoveIDs:       cfg.RemoveIDs,
		KeepSingleLists: cfg.KeepSingleLists,
	}
}
