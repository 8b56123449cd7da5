package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "jcleanup"

	// ConfigFileName is the default config file name
	ConfigFileName = "jcleanup.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "JCLEANUP"

	// SourceFileExtension is the file extension of scanned sources
	SourceFileExtension = ".java"

	// DefaultSourceRoot is scanned when no path is given
	DefaultSourceRoot = "src"
)

// Check rule name constants
const (
	CheckUnusedImports = "unused-imports"
	CheckLineLength    = "max-line-length"
	CheckNewlineAtEOF  = "newline-at-eof"
	CheckTodos         = "no-todos"
	CheckParamCount    = "max-parameters"
)

// ThresholdDisabled is the sentinel for "this rule does not run"
const ThresholdDisabled = -1

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)
