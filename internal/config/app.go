package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Defaults for the application configuration
const (
	DefaultBaseURL      = "http://localhost:8000"
	DefaultOptimizePath = "/api/optimize-sales"
	DefaultLocale       = "en-US"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultTUILogFile   = "salesopt-tui.log"
	EnvPrefix           = "SALESOPT"
)

// Config is the runtime configuration of the client
type Config struct {
	Optimizer OptimizerConfig `mapstructure:"optimizer"`
	Display   DisplayConfig   `mapstructure:"display"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// OptimizerConfig locates the remote optimizer service
type OptimizerConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Path    string `mapstructure:"path"`
}

// DisplayConfig controls result formatting
type DisplayConfig struct {
	Locale string `mapstructure:"locale"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputFile string `mapstructure:"output_file"`
}

// Endpoint returns the full optimization URL
func (c OptimizerConfig) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + c.Path
}

// LanguageTag returns the parsed display locale
func (c DisplayConfig) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// Default returns the configuration used when no file or environment overrides are present
func Default() *Config {
	return &Config{
		Optimizer: OptimizerConfig{BaseURL: DefaultBaseURL, Path: DefaultOptimizePath},
		Display:   DisplayConfig{Locale: DefaultLocale},
		Logging:   LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load reads configuration from an optional YAML file and SALESOPT_* environment variables.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	return LoadWithViper(viper.New(), path)
}

// LoadWithViper is Load on a caller-supplied viper instance, so flags can be bound first
func LoadWithViper(v *viper.Viper, path string) (*Config, error) {
	defaults := map[string]interface{}{
		"optimizer.base_url":  DefaultBaseURL,
		"optimizer.path":      DefaultOptimizePath,
		"display.locale":      DefaultLocale,
		"logging.level":       DefaultLogLevel,
		"logging.format":      DefaultLogFormat,
		"logging.output_file": "",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the client cannot work with
func Validate(cfg *Config) error {
	if err := validateBaseURL(cfg.Optimizer.BaseURL); err != nil {
		return err
	}
	if !strings.HasPrefix(cfg.Optimizer.Path, "/") {
		return errors.New("optimizer.path must start with /")
	}
	if _, err := language.Parse(cfg.Display.Locale); err != nil {
		return fmt.Errorf("invalid display.locale %q: %w", cfg.Display.Locale, err)
	}
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", cfg.Logging.Level)
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", cfg.Logging.Format)
	}
	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return errors.New("optimizer.base_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid optimizer.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("optimizer.base_url must use http or https")
	}
	if u.Host == "" {
		return errors.New("optimizer.base_url must include a host")
	}
	return nil
}
