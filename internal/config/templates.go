package config

import "strconv"

// Strictness represents the gate strictness level
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// StrictnessPreset holds rule thresholds for a strictness level
type StrictnessPreset struct {
	MaxLineLength int
	MaxParameters int
	Todos         bool
}

// GetStrictnessPresets returns presets for the supported strictness levels
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			MaxLineLength: -1, // No limit
			MaxParameters: -1, // No limit
			Todos:         false,
		},
		StrictnessStandard: {
			MaxLineLength: 120,
			MaxParameters: 7,
			Todos:         true,
		},
		StrictnessStrict: {
			MaxLineLength: 100,
			MaxParameters: 4,
			Todos:         true,
		},
	}
}

// GetFullConfigTemplate returns the documented YAML config template
func GetFullConfigTemplate(strictness Strictness) string {
	preset := GetStrictnessPresets()[strictness]

	return `# jcleanup configuration
# Documentation: https://github.com/ludo-technologies/jcleanup

# ==============================================================================
# CHECKS
# ==============================================================================
# Thresholded rules use -1 for "disabled".
checks:
  # Report imports whose simple identifier is never referenced as an
  # expression, parameter type, thrown type, or caught type.
  unused_imports: true

  # Maximum allowed line length. A line of exactly this length already
  # violates. -1 disables the rule.
  max_line_length: ` + strconv.Itoa(preset.MaxLineLength) + `

  # Require a trailing newline at end of file.
  newline_at_eof: true

  # Report every line containing a literal TODO marker.
  todos: ` + strconv.FormatBool(preset.Todos) + `

  # Maximum allowed method parameter count (single-line signatures only).
  # -1 disables the rule.
  max_parameters: ` + strconv.Itoa(preset.MaxParameters) + `

# ==============================================================================
# ANALYSIS SCOPE
# ==============================================================================
analysis:
  # Directory scanned when the command receives no path argument.
  source_root: src

  # Glob patterns of files and directories to skip.
  exclude:
    - "**/generated/**"
    - "**/target/**"

  # Skip files ignored by the source root's .gitignore.
  respect_gitignore: true

# ==============================================================================
# OUTPUT SETTINGS
# ==============================================================================
output:
  # Output format: text, json, yaml
  format: text

  # Print per-file results in addition to the summary.
  show_details: false

# ==============================================================================
# PERFORMANCE
# ==============================================================================
performance:
  # Number of files checked concurrently (0 = default).
  max_goroutines: 4
`
}

// GetMinimalConfigTemplate returns a minimal config template
func GetMinimalConfigTemplate() string {
	return `# jcleanup configuration (minimal)
# See full options: https://github.com/ludo-technologies/jcleanup

checks:
  unused_imports: true
  max_line_length: 120
  newline_at_eof: true
  todos: true
  max_parameters: 7

analysis:
  source_root: src
`
}
