// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// AppName names the binary, the config directory and the user agent.
	AppName = "randquote"

	// EnvPrefix is the prefix of environment variable overrides.
	EnvPrefix = "RANDQUOTE_"

	// DefaultProvider is used when no provider is configured or the name is unknown.
	DefaultProvider = "forismatic"

	// DefaultLanguage is the quote language when none is given.
	DefaultLanguage = "en"

	// DefaultForismaticURL is the Forismatic API endpoint.
	DefaultForismaticURL = "https://api.forismatic.com/api/1.0/"

	// DefaultHapesireURL is the Hapesire API endpoint; the language is appended as a path segment.
	DefaultHapesireURL = "https://hapesire.vercel.app/api/quote"

	// DefaultClientTimeout bounds a single provider request.
	DefaultClientTimeout = 30 * time.Second

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 10

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// configFileName is looked up under the user config directory.
	configFileName = "config.yaml"
)

// Config is the root configuration structure.
// Section structs carry no "required" tag of their own: the validator dives
// into them and reports the missing leaf key.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Quote     QuoteConfig     `koanf:"quote"`
	Providers ProvidersConfig `koanf:"providers"`
	Client    ClientConfig    `koanf:"client"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name    string `koanf:"name"    validate:"required"`
	Version string `koanf:"version" validate:"required"`
}

// QuoteConfig selects and formats the quote.
type QuoteConfig struct {
	Language       string `koanf:"language"        validate:"required"`
	Provider       string `koanf:"provider"`
	ASCIIQuotation bool   `koanf:"ascii_quotation"`
	NoColors       bool   `koanf:"no_colors"`
	JSON           bool   `koanf:"json"`
	// WrapWidth of 0 means "use the terminal width".
	WrapWidth int `koanf:"wrap_width" validate:"omitempty,min=3"`
}

// ProvidersConfig contains the endpoints of the quote providers.
type ProvidersConfig struct {
	Forismatic ServiceEndpointConfig `koanf:"forismatic"`
	Hapesire   ServiceEndpointConfig `koanf:"hapesire"`
}

// ServiceEndpointConfig contains configuration for a downstream service endpoint.
type ServiceEndpointConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
}

// ClientConfig contains HTTP client settings for the quote providers.
type ClientConfig struct {
	Timeout   time.Duration `koanf:"timeout"    validate:"required,min=100ms"`
	UserAgent string        `koanf:"user_agent"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// File is an explicit YAML config path. It must exist when set.
	// When empty, the user config file is read if present.
	File string

	// Overrides are applied last, typically from explicitly set CLI flags.
	// Keys use the koanf dotted form, e.g. "quote.language".
	Overrides map[string]any
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":    AppName,
		"app.version": "dev",

		"quote.language":        DefaultLanguage,
		"quote.provider":        DefaultProvider,
		"quote.ascii_quotation": false,
		"quote.no_colors":       false,
		"quote.json":            false,
		"quote.wrap_width":      0,

		"providers.forismatic.base_url": DefaultForismaticURL,
		"providers.hapesire.base_url":   DefaultHapesireURL,

		"client.timeout":    DefaultClientTimeout.String(),
		"client.user_agent": "",

		"log.level":            "warn",
		"log.format":           "pretty",
		"log.file.enabled":     false,
		"log.file.path":        "",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  AppName,
		"telemetry.sampling_rate": 1.0,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Overrides (explicit CLI flags)
//  2. Environment variables (RANDQUOTE_ prefix)
//  3. Config file (opts.File, or the user config file if present)
//  4. Default values
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	base := defaults()

	err := k.Load(confmap.Provider(base, "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load config file
	if opts.File != "" {
		err = k.Load(file.Provider(opts.File), yaml.Parser())
		if err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", opts.File, err)
		}
	} else if path := UserConfigPath(); path != "" {
		err = loadFileIfExists(k, path)
		if err != nil {
			return nil, fmt.Errorf("loading user config: %w", err)
		}
	}

	// 3. Load environment variables with RANDQUOTE_ prefix
	err = k.Load(env.Provider(EnvPrefix, ".", envKeyMapper(base)), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// 4. Load overrides
	if len(opts.Overrides) > 0 {
		err = k.Load(confmap.Provider(opts.Overrides, "."), nil)
		if err != nil {
			return nil, fmt.Errorf("loading overrides: %w", err)
		}
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// UserConfigPath returns the per-user config file location, or "" if unknown.
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, AppName, configFileName)
}

// envKeyMapper maps RANDQUOTE_QUOTE_WRAP_WIDTH to "quote.wrap_width".
// Underscores are ambiguous between nesting and key names, so known keys are
// resolved against the defaults.
func envKeyMapper(known map[string]any) func(string) string {
	lookup := make(map[string]string, len(known))
	for key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if key, ok := lookup[name]; ok {
			return key
		}

		return strings.ReplaceAll(name, "_", ".")
	}
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
