package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Port string `toml:"port"`

	// Project tree holding product/ and src/
	Root string `toml:"root"`

	// URL prefix under which raw artifacts are served
	AssetPrefix string `toml:"asset_prefix"`

	// Auth; empty disables it
	APIKey string `toml:"api_key"`

	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:        "8090",
		Root:        ".",
		AssetPrefix: "/assets",
		LogLevel:    "info",
	}
}

// Load builds the configuration from defaults, then the optional TOML file
// at path (or $PLANVIEW_CONFIG when path is empty), then the environment.
// A named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PLANVIEW_CONFIG")
	}
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.Root = envOr("PLANVIEW_ROOT", cfg.Root)
	cfg.AssetPrefix = envOr("PLANVIEW_ASSET_PREFIX", cfg.AssetPrefix)
	cfg.APIKey = envOr("PLANVIEW_API_KEY", cfg.APIKey)
	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)

	cfg.AssetPrefix = "/" + strings.Trim(cfg.AssetPrefix, "/")
	if cfg.AssetPrefix == "/" {
		cfg.AssetPrefix = "/assets"
	}

	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("project root %q does not exist", c.Root)
		}
		return fmt.Errorf("stat project root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project root %q is not a directory", c.Root)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
