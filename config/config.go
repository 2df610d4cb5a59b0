package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Selection  SelectionConfig  `json:"selection" yaml:"selection"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Filters    FilterConfig     `json:"filters" yaml:"filters"`
}

// SelectionConfig holds commit selection scoring configuration.
type SelectionConfig struct {
	MaxCommits          int      `json:"maxCommits" yaml:"maxCommits"` // Default: 50
	Bonus               int      `json:"bonus" yaml:"bonus"`           // Added once per significance keyword found
	Penalty             int      `json:"penalty" yaml:"penalty"`       // Subtracted once per triviality keyword found
	SignificantKeywords []string `json:"significantKeywords" yaml:"significantKeywords"`
	TrivialKeywords     []string `json:"trivialKeywords" yaml:"trivialKeywords"`
}

// GenerationConfig holds settings for the changelog generation request.
type GenerationConfig struct {
	Model          string  `json:"model" yaml:"model"`
	APIVersion     string  `json:"apiVersion" yaml:"apiVersion"`
	MaxTokens      int     `json:"maxTokens" yaml:"maxTokens"`
	Temperature    float64 `json:"temperature" yaml:"temperature"`
	TimeoutSeconds int     `json:"timeoutSeconds" yaml:"timeoutSeconds"`
}

// Timeout returns the request timeout as a duration.
func (g GenerationConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// FilterConfig holds commit filtering options.
type FilterConfig struct {
	ExcludeAuthors []string `json:"excludeAuthors" yaml:"excludeAuthors"` // Glob patterns matched against author names
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Selection: SelectionConfig{
			MaxCommits: 50,
			Bonus:      10,
			Penalty:    15,
			SignificantKeywords: []string{
				"feature",
				"add",
				"implement",
				"fix",
				"update",
				"improve",
				"refactor",
				"introduce",
				"support",
				"breaking",
				"security",
				"performance",
				"deprecate",
				"api",
			},
			TrivialKeywords: []string{
				"typo",
				"whitespace",
				"formatting",
				"indent",
			},
		},
		Generation: GenerationConfig{
			Model:          "claude-3-5-sonnet-latest",
			APIVersion:     "2023-06-01",
			MaxTokens:      4096,
			Temperature:    0.5,
			TimeoutSeconds: 10,
		},
		Filters: FilterConfig{
			ExcludeAuthors: []string{},
		},
	}
}

// Validate reports the first invalid setting, if any.
func (c *Config) Validate() error {
	if c.Selection.MaxCommits < 1 {
		return fmt.Errorf("selection.maxCommits must be at least 1, got %d", c.Selection.MaxCommits)
	}
	if c.Generation.TimeoutSeconds < 1 {
		return fmt.Errorf("generation.timeoutSeconds must be at least 1, got %d", c.Generation.TimeoutSeconds)
	}
	if c.Generation.MaxTokens < 1 {
		return fmt.Errorf("generation.maxTokens must be at least 1, got %d", c.Generation.MaxTokens)
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 1 {
		return fmt.Errorf("generation.temperature must be within [0, 1], got %g", c.Generation.Temperature)
	}
	if strings.TrimSpace(c.Generation.Model) == "" {
		return fmt.Errorf("generation.model must not be empty")
	}
	return nil
}

// configFileNames lists the file names searched when no path is given.
var configFileNames = []string{".changelog.json", ".changelog.yaml", ".changelog.yml"}

// LoadConfig loads configuration from a file, merging with defaults.
// YAML is used for .yaml/.yml files, JSON otherwise.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = discoverConfig()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	return cfg, nil
}

func discoverConfig() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}
	for _, dir := range dirs {
		for _, name := range configFileNames {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

// SaveConfig saves configuration to a file as indented JSON.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
