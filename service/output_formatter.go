package service

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/jcleanup/domain"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// WriteJSON writes data as indented JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Format formats the check result according to the specified format
func (f *OutputFormatterImpl) Format(result *domain.CheckResult, format domain.OutputFormat) (string, error) {
	var sb strings.Builder
	if err := f.Write(result, format, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write writes the check result in the specified format
func (f *OutputFormatterImpl) Write(result *domain.CheckResult, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, result)
	case domain.OutputFormatYAML:
		return f.writeYAML(result, writer)
	case domain.OutputFormatText:
		return f.writeText(result, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *OutputFormatterImpl) writeYAML(result *domain.CheckResult, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(result)
}

func (f *OutputFormatterImpl) writeText(result *domain.CheckResult, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Code Cleanup Check ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", result.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n", result.Version)
	fmt.Fprintf(writer, "Duration: %dms\n\n", result.Duration)

	// Summary
	fmt.Fprintf(writer, "Summary:\n")
	fmt.Fprintf(writer, "  Files scanned: %d\n", result.Summary.FilesScanned)
	if result.Summary.FilesSkipped > 0 {
		fmt.Fprintf(writer, "  Files skipped: %d\n", result.Summary.FilesSkipped)
	}
	if result.Summary.ParseFailures > 0 {
		fmt.Fprintf(writer, "  Parse failures: %d\n", result.Summary.ParseFailures)
	}
	fmt.Fprintf(writer, "  Total violations: %d\n", result.Summary.TotalViolations)
	fmt.Fprintf(writer, "\n")

	// Rule distribution
	if len(result.Summary.ViolationsByRule) > 0 {
		fmt.Fprintf(writer, "Violations by rule:\n")
		rules := make([]string, 0, len(result.Summary.ViolationsByRule))
		for rule := range result.Summary.ViolationsByRule {
			rules = append(rules, rule)
		}
		sort.Strings(rules)
		for _, rule := range rules {
			fmt.Fprintf(writer, "  %s: %d\n", rule, result.Summary.ViolationsByRule[rule])
		}
		fmt.Fprintf(writer, "\n")
	}

	// File details
	for _, file := range result.Files {
		if len(file.Violations) == 0 {
			continue
		}
		fmt.Fprintf(writer, "%s:\n", file.Path)
		for _, v := range file.Violations {
			if v.Line > 0 {
				fmt.Fprintf(writer, "  Line %d: %s [%s]\n", v.Line, v.Message, v.Rule)
			} else {
				fmt.Fprintf(writer, "  %s [%s]\n", v.Message, v.Rule)
			}
		}
	}

	if result.Passed {
		fmt.Fprintf(writer, "No violations found.\n")
	} else {
		fmt.Fprintf(writer, "\nResult: FAIL (%d violations)\n", result.Summary.TotalViolations)
	}

	return nil
}

var _ domain.OutputFormatter = (*OutputFormatterImpl)(nil)
