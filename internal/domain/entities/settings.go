package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a field is absent from the settings file.
const (
	DefaultResolver            = "pypi"
	DefaultIndexURL            = "https://pypi.org"
	DefaultWorkers             = 4
	DefaultQueryTimeoutSeconds = 30
)

// Settings is the runtime configuration for a comparison run.
type Settings struct {
	Resolver            string `yaml:"resolver"`              // "pypi" or "pip"
	IndexURL            string `yaml:"index_url"`             // Base URL of the package index, ${ENV_VAR} expanded
	PipBinary           string `yaml:"pip_binary"`            // Explicit pip binary; empty means discover
	Workers             int    `yaml:"workers"`               // Concurrent index queries
	QueryTimeoutSeconds int    `yaml:"query_timeout_seconds"` // Per-query timeout
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns settings with every field at its default value.
func DefaultSettings() *Settings {
	return &Settings{
		Resolver:            DefaultResolver,
		IndexURL:            DefaultIndexURL,
		Workers:             DefaultWorkers,
		QueryTimeoutSeconds: DefaultQueryTimeoutSeconds,
	}
}

// NewSettings reads and parses a settings file, expanding environment
// variables and filling defaults for absent fields.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	settings.IndexURL = expandEnv(settings.IndexURL)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindSettingsFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindSettingsFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depcheck.yaml",
		".depcheck.yml",
		"depcheck.yaml",
		"depcheck.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("settings file not found in default locations")
}

// QueryTimeout returns the per-query timeout as a duration.
func (s *Settings) QueryTimeout() time.Duration {
	return time.Duration(s.QueryTimeoutSeconds) * time.Second
}

// Validate checks for usable configuration values.
func (s *Settings) Validate() error {
	if s.Resolver == "" {
		return errors.New("resolver is required")
	}
	if s.IndexURL == "" {
		return errors.New("index_url is required")
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	if s.QueryTimeoutSeconds < 1 {
		return fmt.Errorf("query_timeout_seconds must be at least 1, got %d", s.QueryTimeoutSeconds)
	}
	return nil
}

// expandEnv replaces ${ENV_VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
