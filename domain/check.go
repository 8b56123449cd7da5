package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// Severity represents the severity of a reported violation
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// CheckRequest represents a request to run the cleanup checks
type CheckRequest struct {
	// Input directories or files to scan
	Paths []string

	// Rule toggles and thresholds. A threshold of -1 disables the rule.
	CheckUnusedImports bool
	MaxLineLength      int
	CheckNewlineAtEOF  bool
	CheckTodos         bool
	MaxParameters      int

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	ShowDetails  bool

	// Analysis options
	ExcludePatterns []string
	Concurrency     int

	// Configuration
	ConfigPath string
}

// Violation represents a single reported instance of a rule being broken
type Violation struct {
	// Rule is the rule that was broken (e.g. "no-todos")
	Rule string `json:"rule" yaml:"rule"`

	// Severity of the violation; the gate reports warnings only
	Severity Severity `json:"severity" yaml:"severity"`

	// Message is a human-readable description
	Message string `json:"message" yaml:"message"`

	// File is the path of the offending file
	File string `json:"file" yaml:"file"`

	// Line is the 1-based line number, 0 when the violation is file-wide
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	// Actual is the observed value, when meaningful
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Threshold is the configured limit, when meaningful
	Threshold string `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

// CheckSummary provides aggregate statistics for a run
type CheckSummary struct {
	FilesScanned     int            `json:"files_scanned" yaml:"files_scanned"`
	FilesSkipped     int            `json:"files_skipped" yaml:"files_skipped"`
	ParseFailures    int            `json:"parse_failures" yaml:"parse_failures"`
	TotalViolations  int            `json:"total_violations" yaml:"total_violations"`
	ViolationsByRule map[string]int `json:"violations_by_rule,omitempty" yaml:"violations_by_rule,omitempty"`
}

// FileResult represents the outcome of checking a single file
type FileResult struct {
	Path       string      `json:"path" yaml:"path"`
	Violations []Violation `json:"violations,omitempty" yaml:"violations,omitempty"`

	// Violated is the OR across all enabled checks for this file
	Violated bool `json:"violated" yaml:"violated"`

	// Skipped is set when the file could not be read
	Skipped bool `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	// ParseFailed is set when the syntax-tree check could not parse the file
	ParseFailed bool `json:"parse_failed,omitempty" yaml:"parse_failed,omitempty"`
}

// CheckResult represents the result of a full check run
type CheckResult struct {
	Passed      bool         `json:"passed" yaml:"passed"`
	ExitCode    int          `json:"exit_code" yaml:"exit_code"`
	Violations  []Violation  `json:"violations" yaml:"violations"`
	Files       []FileResult `json:"files,omitempty" yaml:"files,omitempty"`
	Summary     CheckSummary `json:"summary" yaml:"summary"`
	Duration    int64        `json:"duration_ms" yaml:"duration_ms"`
	GeneratedAt string       `json:"generated_at" yaml:"generated_at"`
	Version     string       `json:"version" yaml:"version"`
}

// CheckService defines the core business logic of the cleanup gate
type CheckService interface {
	// Run applies all enabled checks to the files under the request paths
	Run(ctx context.Context, req CheckRequest) (*CheckResult, error)
}

// JavaFileReader defines Java-specific file operations
type JavaFileReader interface {
	CollectJavaFiles(paths []string, excludePatterns []string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	IsValidJavaFile(path string) bool
	FileExists(path string) (bool, error)
}

// OutputFormatter defines the interface for formatting check results
type OutputFormatter interface {
	// Format formats the result according to the specified format
	Format(result *CheckResult, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(result *CheckResult, format OutputFormat, writer io.Writer) error
}
