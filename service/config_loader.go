package service

import (
	"os"
	"path/filepath"

	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/config"
)

// ConfigurationLoaderImpl loads configuration files and converts them into
// check requests.
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.CheckRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return c.convertToCheckRequest(cfg), nil
}

// LoadDefaultConfig loads the discovered configuration, falling back to the
// built-in defaults when no config file exists near the target path.
func (c *ConfigurationLoaderImpl) LoadDefaultConfig(targetPath string) *domain.CheckRequest {
	cfg, err := config.LoadConfigWithTarget("", targetPath)
	if err == nil {
		return c.convertToCheckRequest(cfg)
	}

	// Fall back to hardcoded default configuration
	cfg = config.DefaultConfig()
	return c.convertToCheckRequest(cfg)
}

// FindDefaultConfigFile searches for a default configuration file
func (c *ConfigurationLoaderImpl) FindDefaultConfigFile() string {
	// List of possible config file names in order of preference
	configFiles := []string{
		"jcleanup.yaml",
		"jcleanup.yml",
		".jcleanup.yaml",
		".jcleanup.toml",
		"jcleanup.json",
		".jcleanup.json",
	}

	// Check current directory
	for _, file := range configFiles {
		if _, err := os.Stat(file); err == nil {
			return file
		}
	}

	// Check parent directories up to root
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, file := range configFiles {
			configPath := filepath.Join(currentDir, file)
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

// MergeConfig merges CLI flag values over a configuration-file request.
// Flag values are applied only when they were explicitly set, so the
// changed map keys follow the flag names.
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.CheckRequest, override *domain.CheckRequest, changed map[string]bool) *domain.CheckRequest {
	merged := *base

	// Paths always come from command arguments
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	if changed["check-unused-imports"] {
		merged.CheckUnusedImports = override.CheckUnusedImports
	}
	if changed["max-line-length"] {
		merged.MaxLineLength = override.MaxLineLength
	}
	if changed["check-newline"] {
		merged.CheckNewlineAtEOF = override.CheckNewlineAtEOF
	}
	if changed["check-todos"] {
		merged.CheckTodos = override.CheckTodos
	}
	if changed["max-parameters"] {
		merged.MaxParameters = override.MaxParameters
	}

	if changed["format"] && override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if changed["verbose"] {
		merged.ShowDetails = override.ShowDetails
	}

	if changed["exclude"] {
		merged.ExcludePatterns = override.ExcludePatterns
	}
	if changed["jobs"] && override.Concurrency > 0 {
		merged.Concurrency = override.Concurrency
	}

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}

// convertToCheckRequest converts a Config to a CheckRequest
func (c *ConfigurationLoaderImpl) convertToCheckRequest(cfg *config.Config) *domain.CheckRequest {
	return &domain.CheckRequest{
		// Paths are set by the caller, not from config
		Paths: []string{},

		// Rule settings
		CheckUnusedImports: cfg.Checks.UnusedImports,
		MaxLineLength:      cfg.Checks.MaxLineLength,
		CheckNewlineAtEOF:  cfg.Checks.NewlineAtEOF,
		CheckTodos:         cfg.Checks.Todos,
		MaxParameters:      cfg.Checks.MaxParameters,

		// Output settings
		OutputFormat: domain.OutputFormat(cfg.Output.Format),
		ShowDetails:  cfg.Output.ShowDetails,

		// Analysis settings
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
		Concurrency:     cfg.Performance.MaxGoroutines,
	}
}

// ValidateConfig validates a merged check request
func (c *ConfigurationLoaderImpl) ValidateConfig(req *domain.CheckRequest) error {
	cfg := config.ChecksConfig{
		UnusedImports: req.CheckUnusedImports,
		MaxLineLength: req.MaxLineLength,
		NewlineAtEOF:  req.CheckNewlineAtEOF,
		Todos:         req.CheckTodos,
		MaxParameters: req.MaxParameters,
	}
	if err := cfg.Validate(); err != nil {
		return domain.NewConfigError("invalid check configuration", err)
	}

	validFormats := map[domain.OutputFormat]bool{
		domain.OutputFormatText: true,
		domain.OutputFormatJSON: true,
		domain.OutputFormatYAML: true,
	}
	if !validFormats[req.OutputFormat] {
		return domain.NewUnsupportedFormatError(string(req.OutputFormat))
	}

	if req.Concurrency < 0 {
		return domain.NewValidationError("jobs cannot be negative")
	}

	return nil
}
