// Package config loads and validates the pagectl configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagectl/internal/pagination"
)

// CurrentVersion is the config schema version written by New.
const CurrentVersion = "1.0"

// supportedVersions is the constraint a config file's version must satisfy.
const supportedVersions = "^1.0"

// Environment variables that override file values.
const (
	EnvConfigPath = "PAGECTL_CONFIG"
	EnvLogLevel   = "PAGECTL_LOG_LEVEL"
	EnvLogFile    = "PAGECTL_LOG_FILE"
)

// Common configuration errors.
var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrUnsupportedVersion = errors.New("unsupported config version")
)

// Config is the on-disk pagectl configuration.
type Config struct {
	Version    string           `yaml:"version"`
	Pagination PaginationConfig `yaml:"pagination"`
	Labels     LabelsConfig     `yaml:"labels"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PaginationConfig mirrors pagination.Config with file-friendly names.
type PaginationConfig struct {
	PageSizes         []int `yaml:"page_sizes"          validate:"required,min=1,dive,gt=0"`
	TotalItems        int   `yaml:"total_items"         validate:"gte=0"`
	PagesUnknown      bool  `yaml:"pages_unknown"`
	Disabled          bool  `yaml:"disabled"`
	IsLastPage        bool  `yaml:"is_last_page"`
	PageInputDisabled bool  `yaml:"page_input_disabled"`
	Page              int   `yaml:"page"                validate:"gte=0"`
	PageSize          int   `yaml:"page_size"           validate:"gte=0"`
}

// LabelsConfig holds the affordance captions and the number locale.
type LabelsConfig struct {
	Backward     string `yaml:"backward"`
	Forward      string `yaml:"forward"`
	ItemsPerPage string `yaml:"items_per_page"`
	PageNumber   string `yaml:"page_number"`
	// Locale selects digit grouping for the range text. Empty keeps the stock text.
	Locale string `yaml:"locale"`
}

// New returns a Config populated with defaults.
func New() *Config {
	labels := pagination.DefaultLabels()
	return &Config{
		Version: CurrentVersion,
		Pagination: PaginationConfig{
			PageSizes: []int{10, 20, 30, 40, 50},
		},
		Labels: LabelsConfig{
			Backward:     labels.Backward,
			Forward:      labels.Forward,
			ItemsPerPage: labels.ItemsPerPage,
			PageNumber:   labels.PageNumber,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the file at path over the defaults, applies overrides from the process
// environment, and validates the result.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup.
func LoadWithEnv(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	cfg.ApplyEnv(lookupEnv)

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies environment variable overrides using lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.Logging.File = v
	}
}

//nolint:gochecknoglobals // validator caches struct metadata; one instance is intended.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}
	if err := validate.Struct(c.Pagination); err != nil {
		return fmt.Errorf("%w: pagination: %w", ErrInvalidConfig, err)
	}
	if dups := lo.FindDuplicates(c.Pagination.PageSizes); len(dups) > 0 {
		return fmt.Errorf("%w: pagination.page_sizes contains duplicates %v", ErrInvalidConfig, dups)
	}
	if c.Labels.Locale != "" {
		if _, err := language.Parse(c.Labels.Locale); err != nil {
			return fmt.Errorf("%w: labels.locale %q: %w", ErrInvalidConfig, c.Labels.Locale, err)
		}
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, v, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, v, supportedVersions)
	}
	return nil
}

// ToPagination converts the file section into the controller's configuration.
func (p PaginationConfig) ToPagination() pagination.Config {
	return pagination.Config{
		PageSizes:         append([]int(nil), p.PageSizes...),
		TotalItems:        p.TotalItems,
		PagesUnknown:      p.PagesUnknown,
		Disabled:          p.Disabled,
		IsLastPage:        p.IsLastPage,
		PageInputDisabled: p.PageInputDisabled,
		Page:              p.Page,
		PageSize:          p.PageSize,
	}
}

// ToLabels converts the captions into pagination.Labels.
func (l LabelsConfig) ToLabels() pagination.Labels {
	return pagination.Labels{
		Backward:     l.Backward,
		Forward:      l.Forward,
		ItemsPerPage: l.ItemsPerPage,
		PageNumber:   l.PageNumber,
	}.WithDefaults()
}

// Text returns the range formatters for the configured locale.
// An empty or unparsable locale yields the stock text.
func (l LabelsConfig) Text() pagination.Text {
	if l.Locale == "" {
		return pagination.DefaultText()
	}
	tag, err := language.Parse(l.Locale)
	if err != nil {
		return pagination.DefaultText()
	}
	return pagination.LocalizedText(tag)
}

// Write saves c as YAML to path, creating parent directories.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the config path from PAGECTL_CONFIG or ~/.pagectl/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".pagectl", "config.yaml"), nil
}
