// Package cli implements the skytravel command-line interface.
//
// This package provides commands for searching flight, hotel and car-hire
// prices, geo and reference lookups, and managing the response cache. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/voyagekit/skytravel/pkg/buildinfo"
	"github.com/voyagekit/skytravel/pkg/cache"
	"github.com/voyagekit/skytravel/pkg/travel"
)

// appName is the application name used for directories and display.
const appName = "skytravel"

// defaultCacheTTL is how long cached responses stay fresh when the
// configuration does not say otherwise.
const defaultCacheTTL = time.Hour

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the default configuration file location.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Skytravel searches flight, hotel and car-hire prices",
		Long:         `Skytravel is a CLI client for the travel partner API: cached and live flight prices, hotel and car-hire offers, place autosuggest and localisation reference data.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "path to config.toml")

	root.AddCommand(c.flightsCommand())
	root.AddCommand(c.carhireCommand())
	root.AddCommand(c.hotelsCommand())
	root.AddCommand(c.placesCommand())
	root.AddCommand(c.referenceCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newClient builds the API client from the configuration file, the
// SKYTRAVEL_API_KEY environment override and the cache settings.
func (c *CLI) newClient(ctx context.Context, noCache bool) (*travel.Client, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key: set api_key in the config file or SKYTRAVEL_API_KEY")
	}

	opts := []travel.Option{travel.WithLogger(c.Logger)}
	if !noCache {
		backend, ttl, err := newCacheBackend(ctx, cfg.Cache)
		if err != nil {
			return nil, err
		}
		opts = append(opts, travel.WithCache(backend, ttl))
	}
	return travel.NewClient(cfg.travelConfig(), opts...), nil
}

// newCacheBackend selects the cache implementation named by the
// configuration: file (the default), redis, bolt or none.
func newCacheBackend(ctx context.Context, cfg CacheConfig) (cache.Cache, time.Duration, error) {
	ttl := defaultCacheTTL
	if cfg.TTL != "" {
		parsed, err := time.ParseDuration(cfg.TTL)
		if err != nil {
			return nil, 0, fmt.Errorf("parse cache ttl: %w", err)
		}
		ttl = parsed
	}

	switch cfg.Backend {
	case "", "file":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), ttl, nil
		}
		backend, err := cache.NewFileCache(dir)
		return backend, ttl, err
	case "redis":
		backend, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return backend, ttl, err
	case "bolt":
		path := cfg.BoltPath
		if path == "" {
			dir, err := cacheDir()
			if err != nil {
				return nil, 0, err
			}
			path = filepath.Join(dir, "cache.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, 0, err
		}
		backend, err := cache.NewBoltCache(path)
		return backend, ttl, err
	case "none":
		return cache.NewNullCache(), ttl, nil
	default:
		return nil, 0, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/skytravel/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
