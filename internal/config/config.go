// Package config provides configuration types, defaults and validation for
// the registrar.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zjrosen/registrar/internal/log"
	"github.com/zjrosen/registrar/internal/registration"
)

// Config holds all configuration options for the registrar.
type Config struct {
	Accounts    AccountsConfig    `mapstructure:"accounts" yaml:"accounts"`
	UI          UIConfig          `mapstructure:"ui" yaml:"ui"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
	Tracing     TracingConfig     `mapstructure:"tracing" yaml:"tracing"`
	SearchCache SearchCacheConfig `mapstructure:"search_cache" yaml:"search_cache"`
}

// AccountsConfig holds the seed accounts loaded at startup.
type AccountsConfig struct {
	AdminID       string           `mapstructure:"admin_id" yaml:"admin_id"`
	AdminPassword string           `mapstructure:"admin_password" yaml:"admin_password"`
	Students      []StudentAccount `mapstructure:"students" yaml:"students"`
}

// StudentAccount is one seeded student.
type StudentAccount struct {
	ID       string `mapstructure:"id" yaml:"id"`
	Password string `mapstructure:"password" yaml:"password"`
}

// UIConfig holds console presentation options.
type UIConfig struct {
	ShowCredentials bool `mapstructure:"show_credentials" yaml:"show_credentials"` // Print seed accounts before login
	Color           bool `mapstructure:"color" yaml:"color"`                       // Style output when writing to a terminal
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
	Level   string `mapstructure:"level" yaml:"level"` // debug, info (default), warn, error
}

// TracingConfig holds OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled controls whether console actions are traced.
	// Default: false
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter" yaml:"exporter"`

	// FilePath is the output file for "file" exporter.
	FilePath string `mapstructure:"file_path" yaml:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
}

// SearchCacheConfig controls memoization of course searches.
type SearchCacheConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	TTL     string `mapstructure:"ttl" yaml:"ttl"` // Go duration, e.g. "5m"
}

// Expiration returns the parsed TTL, falling back to five minutes when the
// value is empty or invalid.
func (s SearchCacheConfig) Expiration() time.Duration {
	d, err := time.ParseDuration(s.TTL)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// Seed converts the accounts section to the registration seed configuration.
func (c Config) Seed() registration.Config {
	students := make([]registration.SeedAccount, 0, len(c.Accounts.Students))
	for _, s := range c.Accounts.Students {
		students = append(students, registration.SeedAccount{ID: s.ID, Password: s.Password})
	}
	return registration.Config{
		AdminID:       c.Accounts.AdminID,
		AdminPassword: c.Accounts.AdminPassword,
		SeedStudents:  students,
	}
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.LevelInfo
	}
	return level
}

// DefaultLogPath returns ~/.config/registrar/registrar.log, or a file in the
// working directory if the home directory is unavailable.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "registrar.log"
	}
	return filepath.Join(home, ".config", "registrar", "registrar.log")
}

// DefaultTracesFilePath returns ~/.config/registrar/traces/traces.jsonl or
// empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "registrar", "traces", "traces.jsonl")
}

// Defaults returns the default configuration: the stock seed accounts, the
// credential banner on, logging and tracing off.
func Defaults() Config {
	seed := registration.DefaultConfig()
	students := make([]StudentAccount, 0, len(seed.SeedStudents))
	for _, s := range seed.SeedStudents {
		students = append(students, StudentAccount{ID: s.ID, Password: s.Password})
	}

	return Config{
		Accounts: AccountsConfig{
			AdminID:       seed.AdminID,
			AdminPassword: seed.AdminPassword,
			Students:      students,
		},
		UI: UIConfig{
			ShowCredentials: true,
			Color:           true,
		},
		Log: LogConfig{
			Enabled: false,
			Path:    DefaultLogPath(),
			Level:   "info",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     DefaultTracesFilePath(),
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		SearchCache: SearchCacheConfig{
			Enabled: true,
			TTL:     "5m",
		},
	}
}

// Validate checks every section and joins all problems into one error.
func Validate(c Config) error {
	var errs []error
	if err := c.Seed().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("accounts: %w", err))
	}
	if err := ValidateLog(c.Log); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateSearchCache(c.SearchCache); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ValidateLog checks the log level and requires a path when logging is on.
func ValidateLog(l LogConfig) error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if l.Enabled && strings.TrimSpace(l.Path) == "" {
		return fmt.Errorf("log.path is required when log.enabled is true")
	}
	return nil
}

// ValidateTracing reports every problem in the tracing section. Exporter
// requirements only apply while tracing is enabled.
func ValidateTracing(t TracingConfig) error {
	var errs []error
	if t.SampleRate < 0 || t.SampleRate > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_rate must be within [0, 1], got %v", t.SampleRate))
	}

	switch t.Exporter {
	case "", "none", "stdout":
	case "file":
		if t.Enabled && strings.TrimSpace(t.FilePath) == "" {
			errs = append(errs, errors.New("tracing.file_path is required for the file exporter"))
		}
	case "otlp":
		if t.Enabled && strings.TrimSpace(t.OTLPEndpoint) == "" {
			errs = append(errs, errors.New("tracing.otlp_endpoint is required for the otlp exporter"))
		}
	default:
		errs = append(errs, fmt.Errorf("tracing.exporter: unknown exporter %q (want none, file, stdout or otlp)", t.Exporter))
	}
	return errors.Join(errs...)
}

// ValidateSearchCache checks that a configured TTL parses as a positive duration.
func ValidateSearchCache(s SearchCacheConfig) error {
	if s.TTL == "" {
		return nil
	}
	d, err := time.ParseDuration(s.TTL)
	if err != nil {
		return fmt.Errorf("search_cache.ttl: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("search_cache.ttl must be positive, got %s", s.TTL)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Registrar Configuration

# Seed accounts created when the console starts.
accounts:
  admin_id: admin
  admin_password: password
  students:
    - id: student1
      password: pass123
    - id: student2
      password: pass123

# Console settings
ui:
  show_credentials: true  # Print the seed accounts before each login prompt
  color: true             # Style headings and errors when writing to a terminal

# Debug log (JSON lines)
log:
  enabled: false
  # path: ~/.config/registrar/registrar.log
  level: info             # debug, info, warn, error

# OpenTelemetry tracing of console actions
tracing:
  enabled: false
  exporter: file          # none, file, stdout, otlp
  # file_path: ~/.config/registrar/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0

# Course search memoization, flushed on every catalog or enrollment change
search_cache:
  enabled: true
  ttl: 5m
`
}

// WriteDefaultConfig creates a config file with default settings at the given path.
// Creates parent directories if they don't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
