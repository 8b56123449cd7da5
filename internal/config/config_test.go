package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ludo-technologies/jcleanup/internal/constants"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Checks.UnusedImports {
		t.Error("unused_imports should default to true")
	}
	if cfg.Checks.MaxLineLength != constants.ThresholdDisabled {
		t.Errorf("max_line_length should default to %d, got %d",
			constants.ThresholdDisabled, cfg.Checks.MaxLineLength)
	}
	if !cfg.Checks.NewlineAtEOF {
		t.Error("newline_at_eof should default to true")
	}
	if !cfg.Checks.Todos {
		t.Error("todos should default to true")
	}
	if cfg.Checks.MaxParameters != constants.ThresholdDisabled {
		t.Errorf("max_parameters should default to %d, got %d",
			constants.ThresholdDisabled, cfg.Checks.MaxParameters)
	}
	if cfg.Analysis.SourceRoot != constants.DefaultSourceRoot {
		t.Errorf("source_root should default to %q, got %q",
			constants.DefaultSourceRoot, cfg.Analysis.SourceRoot)
	}
	if cfg.Output.Format != constants.OutputFormatText {
		t.Errorf("format should default to text, got %q", cfg.Output.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jcleanup.yaml")
	content := `checks:
  unused_imports: false
  max_line_length: 100
  max_parameters: 5
analysis:
  source_root: src/main/java
output:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Checks.UnusedImports {
		t.Error("unused_imports should be false")
	}
	if cfg.Checks.MaxLineLength != 100 {
		t.Errorf("max_line_length should be 100, got %d", cfg.Checks.MaxLineLength)
	}
	if cfg.Checks.MaxParameters != 5 {
		t.Errorf("max_parameters should be 5, got %d", cfg.Checks.MaxParameters)
	}
	// Unset keys keep their defaults
	if !cfg.Checks.NewlineAtEOF {
		t.Error("newline_at_eof should keep its default true")
	}
	if cfg.Analysis.SourceRoot != "src/main/java" {
		t.Errorf("source_root should be src/main/java, got %q", cfg.Analysis.SourceRoot)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("format should be json, got %q", cfg.Output.Format)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoadConfigWithTargetDiscovery(t *testing.T) {
	dir := t.TempDir()
	content := "checks:\n  max_line_length: 90\n"
	if err := os.WriteFile(filepath.Join(dir, "jcleanup.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	nested := filepath.Join(dir, "src", "main", "java")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("Failed to create nested dir: %v", err)
	}

	cfg, err := LoadConfigWithTarget("", nested)
	if err != nil {
		t.Fatalf("LoadConfigWithTarget failed: %v", err)
	}
	if cfg.Checks.MaxLineLength != 90 {
		t.Errorf("max_line_length should be discovered as 90, got %d", cfg.Checks.MaxLineLength)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero line length", func(c *Config) { c.Checks.MaxLineLength = 0 }, true},
		{"negative line length other than sentinel", func(c *Config) { c.Checks.MaxLineLength = -2 }, true},
		{"zero max parameters is allowed", func(c *Config) { c.Checks.MaxParameters = 0 }, false},
		{"negative max parameters other than sentinel", func(c *Config) { c.Checks.MaxParameters = -3 }, true},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"negative goroutines", func(c *Config) { c.Performance.MaxGoroutines = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestChecksConfigHelpers(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Checks.LineLengthEnabled() {
		t.Error("Line length rule should be disabled by default")
	}
	if cfg.Checks.ParamCountEnabled() {
		t.Error("Param count rule should be disabled by default")
	}
	if !cfg.Checks.AnyEnabled() {
		t.Error("Boolean rules should be enabled by default")
	}

	cfg.Checks = ChecksConfig{
		MaxLineLength: 120,
		MaxParameters: -1,
	}
	if !cfg.Checks.LineLengthEnabled() {
		t.Error("Line length rule should be enabled at 120")
	}
	if !cfg.Checks.AnyEnabled() {
		t.Error("AnyEnabled should see the line length rule")
	}

	cfg.Checks = ChecksConfig{MaxLineLength: -1, MaxParameters: -1}
	if cfg.Checks.AnyEnabled() {
		t.Error("AnyEnabled should be false with every rule off")
	}
}

func TestConfigTemplatesParse(t *testing.T) {
	for _, strictness := range []Strictness{StrictnessRelaxed, StrictnessStandard, StrictnessStrict} {
		t.Run(string(strictness), func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "jcleanup.yaml")
			content := GetFullConfigTemplate(strictness)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("Failed to write template: %v", err)
			}

			cfg, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("Template should load cleanly: %v", err)
			}

			preset := GetStrictnessPresets()[strictness]
			if cfg.Checks.MaxLineLength != preset.MaxLineLength {
				t.Errorf("max_line_length should be %d, got %d",
					preset.MaxLineLength, cfg.Checks.MaxLineLength)
			}
			if cfg.Checks.MaxParameters != preset.MaxParameters {
				t.Errorf("max_parameters should be %d, got %d",
					preset.MaxParameters, cfg.Checks.MaxParameters)
			}
			if cfg.Checks.Todos != preset.Todos {
				t.Errorf("todos should be %v, got %v", preset.Todos, cfg.Checks.Todos)
			}
		})
	}
}

func TestMinimalConfigTemplateParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jcleanup.yaml")
	if err := os.WriteFile(path, []byte(GetMinimalConfigTemplate()), 0644); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Minimal template should load cleanly: %v", err)
	}
	if cfg.Checks.MaxLineLength != 120 {
		t.Errorf("max_line_length should be 120, got %d", cfg.Checks.MaxLineLength)
	}
	if !strings.HasPrefix(GetMinimalConfigTemplate(), "# jcleanup configuration") {
		t.Error("Template should carry its header comment")
	}
}
