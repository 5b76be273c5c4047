package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel    = "warn"
	defaultLogEncoding = "json"
)

// Settings holds options that shape logging and output but never which lines
// match.
type Settings struct {
	LogLevel    string
	LogEncoding string
	Highlight   bool
}

// fileSettings mirrors the settings file. YAML and TOML share the keys.
type fileSettings struct {
	LogLevel    string `yaml:"log_level" toml:"log_level"`
	LogEncoding string `yaml:"log_encoding" toml:"log_encoding"`
	Highlight   *bool  `yaml:"highlight" toml:"highlight"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	LogLevel    *string
	LogEncoding *string
	Highlight   *bool
}

// LoadSettings resolves Settings with precedence:
// CLI flags > config file > Environment variables > Defaults
func LoadSettings(overrides *CLIOverrides) (Settings, error) {
	s := defaultSettings()

	// Apply environment variables first so the file can override them
	applyEnvSettings(&s)

	if overrides != nil && overrides.ConfigFile != "" {
		fileCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Settings{}, fmt.Errorf("load config file: %w", err)
		}
		applyFileSettings(&s, fileCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&s, overrides)
	}

	if err := validateSettings(s); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// defaultSettings returns Settings with default values.
func defaultSettings() Settings {
	return Settings{
		LogLevel:    defaultLogLevel,
		LogEncoding: defaultLogEncoding,
	}
}

// loadFromFile reads a settings file, choosing the decoder by extension.
func loadFromFile(path string) (*fileSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg fileSettings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	}

	return &fileCfg, nil
}

// applyFileSettings applies config file values that are present.
func applyFileSettings(s *Settings, fileCfg *fileSettings) {
	if fileCfg.LogLevel != "" {
		s.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogEncoding != "" {
		s.LogEncoding = fileCfg.LogEncoding
	}
	if fileCfg.Highlight != nil {
		s.Highlight = *fileCfg.Highlight
	}
}

// applyEnvSettings applies environment variable configuration.
func applyEnvSettings(s *Settings) {
	if level := strings.TrimSpace(os.Getenv("MINIGREP_LOG_LEVEL")); level != "" {
		s.LogLevel = level
	}

	if encoding := strings.TrimSpace(os.Getenv("MINIGREP_LOG_ENCODING")); encoding != "" {
		s.LogEncoding = encoding
	}

	if raw := strings.TrimSpace(os.Getenv("MINIGREP_HIGHLIGHT")); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			s.Highlight = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(s *Settings, overrides *CLIOverrides) {
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		s.LogLevel = *overrides.LogLevel
	}
	if overrides.LogEncoding != nil && *overrides.LogEncoding != "" {
		s.LogEncoding = *overrides.LogEncoding
	}
	if overrides.Highlight != nil {
		s.Highlight = *overrides.Highlight
	}
}

// validateSettings validates the final settings.
func validateSettings(s Settings) error {
	if _, err := zapcore.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidSettings, s.LogLevel)
	}
	switch s.LogEncoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log encoding %q must be json or console", ErrInvalidSettings, s.LogEncoding)
	}
	return nil
}
