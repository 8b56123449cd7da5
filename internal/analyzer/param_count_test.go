package analyzer

import (
	"testing"
)

func TestParamCountCheck(t *testing.T) {
	tests := []struct {
		name       string
		max        int
		line       string
		violations int
	}{
		{"under the limit", 3, "public void process(int a, int b) {", 0},
		{"exactly at the limit", 3, "public void process(int a, int b, int c) {", 0},
		{"over the limit", 3, "public void process(int a, int b, int c, int d) {", 1},
		{"zero parameters never violate", 0, "public void run() {", 0},
		{"constructor-like signature", 1, "public Point(int x, int y) {", 1},
		{"control flow is not a signature", 0, "if (a && b) {", 0},
		{"declaration without body brace", 2, "abstract void handle(String a, String b, String c);", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := NewParamCountCheck(tt.max)
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

func TestParamCountCheckViolationFields(t *testing.T) {
	check := NewParamCountCheck(2)
	file := NewSourceFile("A.java", []byte("public int add(int a, int b, int c) {\n"))

	violations, err := check.Run(file)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(violations))
	}

	v := violations[0]
	if v.Message != "method 'add' has 3 parameters (max allowed: 2)" {
		t.Errorf("Unexpected message: %q", v.Message)
	}
	if v.Line != 1 {
		t.Errorf("Line should be 1, got %d", v.Line)
	}
	if v.Actual != "3" || v.Threshold != "2" {
		t.Errorf("Actual/Threshold should be 3/2, got %s/%s", v.Actual, v.Threshold)
	}
}

// Every comma separates, including commas inside generic type arguments.
// The count is over-approximate for such signatures.
func TestParamCountCheckCountsGenericCommas(t *testing.T) {
	check := NewParamCountCheck(1)
	file := NewSourceFile("A.java", []byte("void store(Map<String,Integer> values) {\n"))

	violations, err := check.Run(file)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(violations))
	}
	if violations[0].Actual != "2" {
		t.Errorf("Naive comma split should count 2 parameters, got %s", violations[0].Actual)
	}
}
