package analyzer

import (
	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/constants"
)

// NewlineCheck reports files whose last byte is neither LF nor CR.
// Empty files are fine.
type NewlineCheck struct{}

// NewNewlineCheck creates a new trailing-newline check
func NewNewlineCheck() *NewlineCheck {
	return &NewlineCheck{}
}

// Name returns the rule name
func (c *NewlineCheck) Name() string {
	return constants.CheckNewlineAtEOF
}

// Run applies the rule to a single file
func (c *NewlineCheck) Run(file *SourceFile) ([]domain.Violation, error) {
	if len(file.Raw) == 0 {
		return nil, nil
	}

	last := file.Raw[len(file.Raw)-1]
	if last == '\n' || last == '\r' {
		return nil, nil
	}

	return []domain.Violation{{
		Rule:     c.Name(),
		Severity: domain.SeverityWarning,
		Message:  "missing newline at end of file",
		File:     file.Path,
	}}, nil
}
