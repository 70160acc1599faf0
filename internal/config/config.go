package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsonsift
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Display DisplayConfig `yaml:"display"`
	Search  SearchConfig  `yaml:"search"`
	Dev     DevConfig     `yaml:"dev"`
}

// OutputConfig controls how filtered JSON is serialized and named
type OutputConfig struct {
	IndentWidth    int    `yaml:"indent_width"`
	FilenamePrefix string `yaml:"filename_prefix"`
	DefaultName    string `yaml:"default_name"`
}

// DisplayConfig controls tree rendering
type DisplayConfig struct {
	MarkerSelected   string `yaml:"marker_selected"`
	MarkerDeselected string `yaml:"marker_deselected"`
	RootLabel        string `yaml:"root_label"`
}

// SearchConfig controls path searching
type SearchConfig struct {
	CaseSensitive bool `yaml:"case_sensitive"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			IndentWidth:    2,
			FilenamePrefix: "filtered_",
			DefaultName:    "output.json",
		},
		Display: DisplayConfig{
			MarkerSelected:   "[x]",
			MarkerDeselected: "[ ]",
			RootLabel:        "(document)",
		},
		Search: SearchConfig{
			CaseSensitive: false,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults so partial files only override what they set
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonsift.yml", ".jsonsift.yaml", "jsonsift.yml", "jsonsift.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// ExportName derives the download file name for a document. Named sources get
// the configured prefix; unnamed sources fall back to the default name.
func (c *Config) ExportName(sourceName string) string {
	if sourceName == "" {
		return c.Output.FilenamePrefix + c.Output.DefaultName
	}
	return c.Output.FilenamePrefix + sourceName
}

// LoadConfigWithCLI loads config with CLI argument precedence. A non-positive
// CLI indent means "not set" and leaves the config value alone.
func LoadConfigWithCLI(configPath string, cliIndent int) (*Config, error) {
	cfg := NewConfig()

	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliIndent > 0 {
		cfg.Output.IndentWidth = cliIndent
	}

	return cfg, nil
}
