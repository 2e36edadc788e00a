package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/hana-site/internal/assets"
)

// EnvPrefix is the prefix for environment overrides. Nested keys use a
// double underscore: HANA_SERVER__PORT -> server.port.
const EnvPrefix = "HANA_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HANA_*). A .env file in the working
// directory is loaded into the environment first if present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// A configured include list replaces the defaults instead of being
	// merged into them element by element.
	if k.Exists("assets.include") {
		cfg.Assets.Include = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps HANA_SERVER__ALLOW_ALL_ORIGINS to server.allow_all_origins.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized logging.level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats is the set of recognized logging.format values.
var validLogFormats = map[LogFormat]bool{
	LogFormatConsole: true,
	LogFormatJSON:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}
	if c.Server.ReadHeaderTimeoutSeconds < 0 {
		return fmt.Errorf("server.read_header_timeout_seconds must be non-negative")
	}
	if c.Server.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("server.shutdown_timeout_seconds must be non-negative")
	}

	if c.View.ScrollThreshold <= 0 {
		return fmt.Errorf("view.scroll_threshold must be positive")
	}

	if len(c.Assets.Include) == 0 {
		return fmt.Errorf("assets.include must list at least one pattern")
	}
	for _, p := range c.Assets.Include {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("assets.include contains an empty pattern")
		}
	}
	if bad, ok := assets.ValidatePatterns(c.Assets.Include); !ok {
		return fmt.Errorf("assets.include: invalid glob %q", bad)
	}

	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}

	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging.level %q: must be one of debug, info, warn, error", c.Logging.Level)
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid logging.format %q: must be one of console, json", c.Logging.Format)
	}

	return nil
}
