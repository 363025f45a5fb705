package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
// The four resource URLs address standalone backend functions; every one of
// them must be provided.
type Config struct {
	RunAddress           string
	OrdersURL            string
	SettingsURL          string
	PlaylistURL          string
	TariffsURL           string
	BackendTimeout       time.Duration
	PlaylistPollInterval time.Duration
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultBackendTimeout       = 10 * time.Second
	defaultPlaylistPollInterval = 10 * time.Second
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		OrdersURL:            getString(lookup, "ORDERS_URL", ""),
		SettingsURL:          getString(lookup, "SETTINGS_URL", ""),
		PlaylistURL:          getString(lookup, "PLAYLIST_URL", ""),
		TariffsURL:           getString(lookup, "TARIFFS_URL", ""),
		BackendTimeout:       getDuration(lookup, "BACKEND_TIMEOUT", defaultBackendTimeout),
		PlaylistPollInterval: getDuration(lookup, "PLAYLIST_POLL_INTERVAL", defaultPlaylistPollInterval),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("djstation", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		backendTimeoutStr  = cfg.BackendTimeout.String()
		pollIntervalStr    = cfg.PlaylistPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.OrdersURL, "orders-url", cfg.OrdersURL, "Orders resource URL")
	fs.StringVar(&cfg.SettingsURL, "settings-url", cfg.SettingsURL, "Settings resource URL")
	fs.StringVar(&cfg.PlaylistURL, "playlist-url", cfg.PlaylistURL, "Playlist resource URL")
	fs.StringVar(&cfg.TariffsURL, "tariffs-url", cfg.TariffsURL, "Tariffs resource URL")
	fs.StringVar(&backendTimeoutStr, "backend-timeout", backendTimeoutStr, "Per-request backend timeout")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between playlist polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.BackendTimeout, err = time.ParseDuration(backendTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid backend timeout: %w", err)
	}

	if cfg.PlaylistPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.BackendTimeout <= 0 {
		cfg.BackendTimeout = defaultBackendTimeout
	}

	if cfg.PlaylistPollInterval <= 0 {
		cfg.PlaylistPollInterval = defaultPlaylistPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	required := []struct {
		name  string
		value string
	}{
		{"orders", cfg.OrdersURL},
		{"settings", cfg.SettingsURL},
		{"playlist", cfg.PlaylistURL},
		{"tariffs", cfg.TariffsURL},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%s resource URL must be provided", r.name)
		}
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
