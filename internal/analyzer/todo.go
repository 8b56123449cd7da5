package analyzer

import (
	"fmt"
	"strings"

	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/constants"
)

// todoMarker is matched literally anywhere in a line: comments, string
// literals, and identifiers alike.
const todoMarker = "TODO"

// TodoCheck reports every line containing a TODO marker.
type TodoCheck struct{}

// NewTodoCheck creates a new TODO check
func NewTodoCheck() *TodoCheck {
	return &TodoCheck{}
}

// Name returns the rule name
func (c *TodoCheck) Name() string {
	return constants.CheckTodos
}

// Run applies the rule to a single file
func (c *TodoCheck) Run(file *SourceFile) ([]domain.Violation, error) {
	var violations []domain.Violation
	for i, line := range file.Lines {
		if strings.Contains(line, todoMarker) {
			violations = append(violations, domain.Violation{
				Rule:     c.Name(),
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("TODO found: %s", strings.TrimSpace(line)),
				File:     file.Path,
				Line:     i + 1,
			})
		}
	}
	return violations, nil
}
