package analyzer

import (
	"strings"
	"testing"
)

func TestLineLengthCheck(t *testing.T) {
	check := NewLineLengthCheck(80)

	tests := []struct {
		name       string
		line       string
		violations int
	}{
		{"short line", strings.Repeat("a", 40), 0},
		{"line just under the limit", strings.Repeat("a", 79), 0},
		{"line exactly at the limit", strings.Repeat("a", 80), 1},
		{"line over the limit", strings.Repeat("a", 81), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := NewSourceFile("A.java", []byte(tt.line+"\n"))
			violations, err := check.Run(file)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if len(violations) != tt.violations {
				t.Errorf("Expected %d violations, got %d", tt.violations, len(violations))
			}
		})
	}
}

func TestLineLengthCheckReportsEveryLongLine(t *testing.T) {
	check := NewLineLengthCheck(10)
	content := "short\n" +
		strings.Repeat("x", 20) + "\n" +
		"also short\n" + // exactly 10 characters, violates
		strings.Repeat("y", 15) + "\n"

	file := NewSourceFile("A.java", []byte(content))
	violations, err := check.Run(file)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(violations) != 3 {
		t.Fatalf("Expected 3 violations, got %d", len(violations))
	}

	if violations[0].Line != 2 {
		t.Errorf("First violation should be on line 2, got %d", violations[0].Line)
	}
	if violations[1].Line != 3 {
		t.Errorf("Second violation should be on line 3, got %d", violations[1].Line)
	}
	if violations[2].Line != 4 {
		t.Errorf("Third violation should be on line 4, got %d", violations[2].Line)
	}

	v := violations[0]
	if v.Actual != "20" {
		t.Errorf("Actual should be 20, got %q", v.Actual)
	}
	if v.Threshold != "10" {
		t.Errorf("Threshold should be 10, got %q", v.Threshold)
	}
}
