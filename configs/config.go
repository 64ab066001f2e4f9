package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileConfig defines the structure loaded from the optional YAML
// configuration file. It holds operator data that is awkward to carry
// in environment variables.
type FileConfig struct {
	// ExcludeWebsites are domains dropped from every query's results,
	// in addition to any per-call exclusions.
	ExcludeWebsites []string `yaml:"exclude_websites"`
}

// Config holds the application configuration. Fields are loaded from
// environment variables with the prefix "GNEWS_", merged with the YAML
// file when one is configured.
type Config struct {
	// Config file path (loaded first from env). Empty means no file.
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	ListenAddr        string        `envconfig:"LISTEN_ADDR" default:":8080"`
	AdminAddr         string        `envconfig:"ADMIN_ADDR" default:":8081"`
	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	// FeedBaseURL points at the news source's RSS root. Overridable so
	// tests and mirrors can stand in for the real endpoint.
	FeedBaseURL string `envconfig:"FEED_BASE_URL" default:"https://news.google.com/rss"`

	// Fallbacks applied when a tool call omits an argument.
	DefaultLanguage   string `envconfig:"DEFAULT_LANGUAGE" default:"en"`
	DefaultCountry    string `envconfig:"DEFAULT_COUNTRY" default:"US"`
	DefaultPeriod     string `envconfig:"DEFAULT_PERIOD" default:"7d"`
	DefaultMaxResults int    `envconfig:"DEFAULT_MAX_RESULTS" default:"10"`

	// ExcludeWebsites merges the env value (comma-separated) with the
	// file's list.
	ExcludeWebsites []string `envconfig:"EXCLUDE_WEBSITES"`

	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	LogLevel                 string `envconfig:"LOG_LEVEL" default:"info"`
}

// ParsedLogLevel returns the slog.Level based on the configured
// LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Load loads configuration from environment variables, then merges in
// the YAML file when GNEWS_CONFIG_FILE points at one.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("gnews", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if cfg.ConfigFilePath == "" {
		slog.Info("No config file path specified (GNEWS_CONFIG_FILE), using defaults/env vars only.")
		cfg.ExcludeWebsites = mergeExcludes(cfg.ExcludeWebsites)
		return &cfg, nil
	}

	yamlFile, err := os.ReadFile(cfg.ConfigFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", cfg.ConfigFilePath, err)
	}

	var fileCfg FileConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", cfg.ConfigFilePath, err)
	}
	slog.Info("Loaded configuration from file.", "path", cfg.ConfigFilePath)

	cfg.ExcludeWebsites = mergeExcludes(cfg.ExcludeWebsites, fileCfg.ExcludeWebsites)
	return &cfg, nil
}

// mergeExcludes concatenates the env and file exclusion lists,
// trimming, lowercasing and deduplicating.
func mergeExcludes(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, raw := range list {
			site := strings.ToLower(strings.TrimSpace(raw))
			if site == "" {
				continue
			}
			if _, dup := seen[site]; dup {
				continue
			}
			seen[site] = struct{}{}
			out = append(out, site)
		}
	}
	return out
}
