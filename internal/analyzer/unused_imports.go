package analyzer

import (
	"fmt"

	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/constants"
	"github.com/ludo-technologies/jcleanup/internal/parser"
)

// UnusedImportCheck parses a file into a syntax tree and reports imports
// whose simple identifier is never referenced.
//
// An identifier counts as used when it appears as an expression, as a
// parameter's declared base type, as a declared thrown exception type, or as
// a caught exception's declared type. Known limitations, inherited rather
// than hidden: wildcard and static imports are matched by their last path
// segment, and type usages appearing only in annotations, generic type
// arguments, or local variable declarations are not tracked.
type UnusedImportCheck struct{}

// NewUnusedImportCheck creates a new unused-import check
func NewUnusedImportCheck() *UnusedImportCheck {
	return &UnusedImportCheck{}
}

// Name returns the rule name
func (c *UnusedImportCheck) Name() string {
	return constants.CheckUnusedImports
}

// Run applies the rule to a single file. A parse failure fails the whole
// check for this file; there is no silent fallback.
func (c *UnusedImportCheck) Run(file *SourceFile) ([]domain.Violation, error) {
	p := parser.NewParser()
	defer p.Close()

	ast, err := p.ParseFile(file.Path, file.Raw)
	if err != nil {
		return nil, domain.NewParseError(file.Path, err)
	}

	used := CollectUsedNames(ast)

	var violations []domain.Violation
	for _, imp := range ast.Imports() {
		if used[imp.Name] {
			continue
		}
		violations = append(violations, domain.Violation{
			Rule:     c.Name(),
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("unused import: %s", imp.Raw),
			File:     file.Path,
			Line:     imp.Location.StartLine,
		})
	}
	return violations, nil
}

// CollectUsedNames walks the syntax tree once and gathers every identifier
// referenced as an expression, a parameter's declared type name, a declared
// thrown exception type name, or a caught exception's declared type name.
func CollectUsedNames(root *parser.Node) map[string]bool {
	used := make(map[string]bool)
	root.Walk(func(n *parser.Node) bool {
		switch n.Type {
		case parser.NodeIdentifier:
			used[n.Name] = true
		case parser.NodeMethodDeclaration, parser.NodeConstructorDeclaration:
			for _, param := range n.Params {
				if param.ParamType != nil {
					used[param.ParamType.Name] = true
				}
			}
			for _, thrown := range n.Throws {
				used[thrown.Name] = true
			}
		case parser.NodeCatchClause:
			for _, caught := range n.CatchTypes {
				used[caught.Name] = true
			}
		}
		return true
	})
	delete(used, "")
	return used
}
