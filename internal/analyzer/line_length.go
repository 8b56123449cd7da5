package analyzer

import (
	"fmt"
	"strconv"

	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/constants"
)

// LineLengthCheck reports every line whose length reaches the configured
// maximum. A line of exactly Max characters already violates: the threshold
// is strictly-greater-than Max-1.
type LineLengthCheck struct {
	Max int
}

// NewLineLengthCheck creates a new line-length check
func NewLineLengthCheck(max int) *LineLengthCheck {
	return &LineLengthCheck{Max: max}
}

// Name returns the rule name
func (c *LineLengthCheck) Name() string {
	return constants.CheckLineLength
}

// Run applies the rule to a single file
func (c *LineLengthCheck) Run(file *SourceFile) ([]domain.Violation, error) {
	var violations []domain.Violation
	for i, line := range file.Lines {
		if len(line) > c.Max-1 {
			violations = append(violations, domain.Violation{
				Rule:      c.Name(),
				Severity:  domain.SeverityWarning,
				Message:   fmt.Sprintf("line exceeds maximum length (%d >= %d)", len(line), c.Max),
				File:      file.Path,
				Line:      i + 1,
				Actual:    strconv.Itoa(len(line)),
				Threshold: strconv.Itoa(c.Max),
			})
		}
	}
	return violations, nil
}
