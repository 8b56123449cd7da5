package analyzer

import (
	"os"
	"strings"

	"github.com/ludo-technologies/jcleanup/domain"
)

// SourceFile is an immutable snapshot of a file under check: its path, raw
// bytes, and text lines (1-based line number = slice index + 1).
type SourceFile struct {
	Path  string
	Raw   []byte
	Lines []string
}

// NewSourceFile creates a SourceFile from raw bytes
func NewSourceFile(path string, raw []byte) *SourceFile {
	return &SourceFile{
		Path:  path,
		Raw:   raw,
		Lines: splitLines(raw),
	}
}

// LoadSourceFile reads a file from disk into a SourceFile
func LoadSourceFile(path string) (*SourceFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFileNotFoundError(path, err)
		}
		return nil, err
	}
	return NewSourceFile(path, raw), nil
}

// splitLines splits raw bytes into text lines. A trailing newline does not
// produce an extra empty line, and CRLF endings are normalized.
func splitLines(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	lines := strings.Split(string(raw), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Check is an independent rule applied to a single source file. Checks are
// pure: they read the file and their own configuration, and report violations
// without mutating shared state.
type Check interface {
	// Name returns the rule name
	Name() string

	// Run applies the rule and returns its violations. A non-nil error means
	// the check itself could not run (e.g. the file failed to parse); it does
	// not imply anything about the other checks.
	Run(file *SourceFile) ([]domain.Violation, error)
}
