package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ludo-technologies/jcleanup/internal/constants"
)

// Default performance settings
const (
	// DefaultMaxGoroutines is the number of parallel file workers when the
	// configured value is invalid
	DefaultMaxGoroutines = 4

	// DefaultTimeoutSeconds bounds a whole check run
	DefaultTimeoutSeconds = 300
)

// Config represents the main configuration structure
type Config struct {
	// Checks holds the rule toggles and thresholds
	Checks ChecksConfig `json:"checks" mapstructure:"checks" yaml:"checks"`

	// Analysis holds general scan configuration
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Performance holds parallel execution configuration
	Performance PerformanceConfig `json:"performance,omitempty" mapstructure:"performance" yaml:"performance"`
}

// ChecksConfig holds per-rule configuration. Thresholded rules use -1 as the
// "disabled" sentinel.
type ChecksConfig struct {
	// UnusedImports toggles the syntax-tree based unused-import rule
	UnusedImports bool `json:"unusedImports" mapstructure:"unused_imports" yaml:"unused_imports"`

	// MaxLineLength is the maximum allowed line length; a line of exactly
	// this length already violates. -1 disables the rule.
	MaxLineLength int `json:"maxLineLength" mapstructure:"max_line_length" yaml:"max_line_length"`

	// NewlineAtEOF toggles the trailing-newline rule
	NewlineAtEOF bool `json:"newlineAtEof" mapstructure:"newline_at_eof" yaml:"newline_at_eof"`

	// Todos toggles the TODO marker rule
	Todos bool `json:"todos" mapstructure:"todos" yaml:"todos"`

	// MaxParameters is the maximum allowed method parameter count.
	// -1 disables the rule.
	MaxParameters int `json:"maxParameters" mapstructure:"max_parameters" yaml:"max_parameters"`
}

// AnalysisConfig holds general scan configuration
type AnalysisConfig struct {
	// SourceRoot is scanned when the command receives no path argument
	SourceRoot string `json:"sourceRoot" mapstructure:"source_root" yaml:"source_root"`

	// ExcludePatterns are glob patterns of files and directories to skip
	ExcludePatterns []string `json:"exclude,omitempty" mapstructure:"exclude" yaml:"exclude"`

	// RespectGitignore skips files ignored by the root's .gitignore
	RespectGitignore bool `json:"respectGitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowDetails controls whether per-file results are printed
	ShowDetails bool `json:"showDetails" mapstructure:"show_details" yaml:"show_details"`
}

// PerformanceConfig holds parallel execution configuration
type PerformanceConfig struct {
	// MaxGoroutines is the number of files checked concurrently
	MaxGoroutines int `json:"maxGoroutines" mapstructure:"max_goroutines" yaml:"max_goroutines"`

	// TimeoutSeconds bounds a whole run; 0 uses the default
	TimeoutSeconds int `json:"timeoutSeconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns the default configuration: boolean rules enabled,
// thresholded rules disabled
func DefaultConfig() *Config {
	return &Config{
		Checks: ChecksConfig{
			UnusedImports: true,
			MaxLineLength: constants.ThresholdDisabled,
			NewlineAtEOF:  true,
			Todos:         true,
			MaxParameters: constants.ThresholdDisabled,
		},
		Analysis: AnalysisConfig{
			SourceRoot:       constants.DefaultSourceRoot,
			ExcludePatterns:  []string{},
			RespectGitignore: true,
		},
		Output: OutputConfig{
			Format:      constants.OutputFormatText,
			ShowDetails: false,
		},
		Performance: PerformanceConfig{
			MaxGoroutines:  DefaultMaxGoroutines,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context: when no
// explicit path is given, config files are discovered from the target
// directory upward
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// A fresh viper instance per load avoids shared mutable state
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common
// locations, starting at the target path and walking upward
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		"jcleanup.yaml",
		"jcleanup.yml",
		".jcleanup.yaml",
		".jcleanup.toml",
		"jcleanup.json",
		".jcleanup.json",
	}

	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}
				if parent := filepath.Dir(dir); parent == dir {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	// XDG config directory (Linux/Mac standard)
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		configDir := filepath.Join(home, ".config", constants.ToolName)
		if config := searchConfigInDirectory(configDir, candidates); config != "" {
			return config
		}
	}

	// JCLEANUP_CONFIG environment variable as fallback
	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if err := c.Checks.Validate(); err != nil {
		return err
	}

	validFormats := map[string]bool{
		constants.OutputFormatText: true,
		constants.OutputFormatJSON: true,
		constants.OutputFormatYAML: true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml", c.Output.Format)
	}

	if c.Performance.MaxGoroutines < 0 {
		return fmt.Errorf("performance.max_goroutines must be >= 0, got %d", c.Performance.MaxGoroutines)
	}

	return nil
}

// Validate validates the per-rule configuration
func (c *ChecksConfig) Validate() error {
	if c.MaxLineLength != constants.ThresholdDisabled && c.MaxLineLength < 1 {
		return fmt.Errorf("checks.max_line_length must be >= 1 or %d to disable, got %d",
			constants.ThresholdDisabled, c.MaxLineLength)
	}
	if c.MaxParameters != constants.ThresholdDisabled && c.MaxParameters < 0 {
		return fmt.Errorf("checks.max_parameters must be >= 0 or %d to disable, got %d",
			constants.ThresholdDisabled, c.MaxParameters)
	}
	return nil
}

// LineLengthEnabled reports whether the line-length rule runs
func (c *ChecksConfig) LineLengthEnabled() bool {
	return c.MaxLineLength != constants.ThresholdDisabled
}

// ParamCountEnabled reports whether the parameter-count rule runs
func (c *ChecksConfig) ParamCountEnabled() bool {
	return c.MaxParameters != constants.ThresholdDisabled
}

// AnyEnabled reports whether at least one rule runs
func (c *ChecksConfig) AnyEnabled() bool {
	return c.UnusedImports || c.NewlineAtEOF || c.Todos ||
		c.LineLengthEnabled() || c.ParamCountEnabled()
}
