package analyzer

import (
	"strings"
	"testing"
)

func TestTodoCheck(t *testing.T) {
	check := NewTodoCheck()

	tests := []struct {
		name       string
		content    string
		violations int
	}{
		{"no todos", "class A {\n}\n", 0},
		{"line comment todo", "// TODO fix this\n", 1},
		{"block comment todo", "/* TODO: refactor */\n", 1},
		{"todo in string literal", `String s = "TODO later";` + "\n", 1},
		{"lowercase todo is not matched", "// todo fix this\n", 0},
		{"multiple todos", "// TODO one\nint x;\n// TODO two\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := NewSourceFile("A.java", []byte(tt.content))
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

func TestTodoCheckMessageContainsTrimmedLine(t *testing.T) {
	check := NewTodoCheck()
	file := NewSourceFile("A.java", []byte("    // TODO clean up\n"))

	violations, err := check.Run(file)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(violations))
	}

	v := violations[0]
	if v.Line != 1 {
		t.Errorf("Line should be 1, got %d", v.Line)
	}
	if !strings.Contains(v.Message, "// TODO clean up") {
		t.Errorf("Message should contain the trimmed line, got %q", v.Message)
	}
	if strings.Contains(v.Message, "    //") {
		t.Errorf("Message should not contain leading whitespace, got %q", v.Message)
	}
}
