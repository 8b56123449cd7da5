package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/constants"
)

// methodSignaturePattern recognizes a method-like signature written entirely
// on one line: an optional modifier/return-type prefix, the method name, and
// a parenthesized parameter list. Multi-line signatures are not matched, and
// the comma split below treats every comma as a parameter separator (nested
// generics, array literals, and annotation arguments are not understood).
// This fragility is intentional and documented; the rule is a heuristic, not
// a parser.
var methodSignaturePattern = regexp.MustCompile(`^\s*(?:[\w<>\[\]]+\s+)+?(\w+)\s*\(([^)]*)\)\s*\{?`)

// ParamCountCheck reports method signatures declaring more than Max
// parameters.
type ParamCountCheck struct {
	Max int
}

// NewParamCountCheck creates a new parameter-count check
func NewParamCountCheck(max int) *ParamCountCheck {
	return &ParamCountCheck{Max: max}
}

// Name returns the rule name
func (c *ParamCountCheck) Name() string {
	return constants.CheckParamCount
}

// Run applies the rule to a single file
func (c *ParamCountCheck) Run(file *SourceFile) ([]domain.Violation, error) {
	var violations []domain.Violation
	for i, line := range file.Lines {
		match := methodSignaturePattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}

		methodName := match[1]
		paramBlock := strings.TrimSpace(match[2])
		if paramBlock == "" {
			// A zero-parameter signature never violates
			continue
		}

		paramCount := len(strings.Split(paramBlock, ","))
		if paramCount > c.Max {
			violations = append(violations, domain.Violation{
				Rule:      c.Name(),
				Severity:  domain.SeverityWarning,
				Message:   fmt.Sprintf("method '%s' has %d parameters (max allowed: %d)", methodName, paramCount, c.Max),
				File:      file.Path,
				Line:      i + 1,
				Actual:    strconv.Itoa(paramCount),
				Threshold: strconv.Itoa(c.Max),
			})
		}
	}
	return violations, nil
}
