package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"arabus.dev/busboard/storage"
)

const (
	DefaultDataSource      = "data/bus-data.json"
	DefaultRefreshInterval = 30 * time.Second
	DefaultFetchTimeout    = 10 * time.Second
	DefaultMaxDatasetSize  = 16 << 20 // 16 MB
)

type Config struct {
	// Dataset location: path, file:// or http(s) URL.
	DataSource string

	// Favorites storage DSN, see storage.Open.
	Store string

	// Namespace favorites are stored under.
	Namespace string

	// How often the watch loop re-renders.
	RefreshInterval time.Duration

	FetchTimeout   time.Duration
	MaxDatasetSize int
}

// Loads configuration from the environment. A .env file in the
// working directory is read first, if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataSource: getenvDefault("BUSBOARD_DATA", DefaultDataSource),
		Store:      getenvDefault("BUSBOARD_STORE", defaultStore()),
		Namespace:  getenvDefault("BUSBOARD_NAMESPACE", storage.DefaultNamespace),
	}

	// Refresh interval (seconds)
	if v := os.Getenv("BUSBOARD_REFRESH_SECONDS"); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil || sec <= 0 {
			return nil, fmt.Errorf("invalid BUSBOARD_REFRESH_SECONDS: %q", v)
		}
		cfg.RefreshInterval = time.Duration(sec) * time.Second
	} else {
		cfg.RefreshInterval = DefaultRefreshInterval
	}

	// Dataset fetch timeout (milliseconds)
	if v := os.Getenv("BUSBOARD_FETCH_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid BUSBOARD_FETCH_TIMEOUT_MS: %q", v)
		}
		cfg.FetchTimeout = time.Duration(ms) * time.Millisecond
	} else {
		cfg.FetchTimeout = DefaultFetchTimeout
	}

	// Max dataset size (bytes)
	if v := os.Getenv("BUSBOARD_MAX_DATASET_BYTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid BUSBOARD_MAX_DATASET_BYTES: %q", v)
		}
		cfg.MaxDatasetSize = n
	} else {
		cfg.MaxDatasetSize = DefaultMaxDatasetSize
	}

	return cfg, nil
}

// Favorites live next to the user's other dotfiles by default.
func defaultStore() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "memory"
	}
	return "file:" + filepath.Join(home, ".busboard.json")
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
