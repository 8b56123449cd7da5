package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/constants"
)

// testJavaReader implements domain.JavaFileReader over the real filesystem,
// with an optional path whose reads fail
type testJavaReader struct {
	failPath string
}

func (r *testJavaReader) CollectJavaFiles(paths []string, excludePatterns []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(path) == constants.SourceFileExtension {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func (r *testJavaReader) ReadFile(path string) ([]byte, error) {
	if r.failPath != "" && path == r.failPath {
		return nil, fmt.Errorf("simulated read failure for %s", path)
	}
	return os.ReadFile(path)
}

func (r *testJavaReader) IsValidJavaFile(path string) bool {
	return filepath.Ext(path) == constants.SourceFileExtension
}

func (r *testJavaReader) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func writeJavaFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func newTestRunner(log domain.LogSink) *CheckRunner {
	return NewCheckRunner(&testJavaReader{}, log, NewParallelExecutor())
}

// disabledRequest returns a request with every rule off; tests enable the
// rules they exercise
func disabledRequest(paths ...string) domain.CheckRequest {
	return domain.CheckRequest{
		Paths:         paths,
		MaxLineLength: constants.ThresholdDisabled,
		MaxParameters: constants.ThresholdDisabled,
	}
}

func TestCheckRunnerFindsViolations(t *testing.T) {
	dir := t.TempDir()
	writeJavaFile(t, dir, "Clean.java", "class Clean {\n}\n")
	longLine := strings.Repeat("x", 130)
	offending := writeJavaFile(t, dir, "Long.java", longLine+"\n")

	log := NewCaptureLogSink()
	runner := newTestRunner(log)

	req := disabledRequest(dir)
	req.MaxLineLength = 120

	result, err := runner.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Passed {
		t.Error("Run should fail with a violation present")
	}
	if result.ExitCode != 1 {
		t.Errorf("ExitCode should be 1, got %d", result.ExitCode)
	}
	if len(result.Violations) != 1 {
		t.Fatalf("Expected 1 violation, got %d", len(result.Violations))
	}

	v := result.Violations[0]
	if v.File != offending {
		t.Errorf("Violation file should be %s, got %s", offending, v.File)
	}
	if v.Rule != constants.CheckLineLength {
		t.Errorf("Violation rule should be %s, got %s", constants.CheckLineLength, v.Rule)
	}

	// Violations are logged as warnings with file and line
	found := false
	for _, w := range log.Warnings {
		if strings.Contains(w, offending+":1:") && strings.Contains(w, "line exceeds maximum length") {
			found = true
		}
	}
	if !found {
		t.Errorf("Violation warning not logged, got %v", log.Warnings)
	}

	// The closing summary names the violation count
	last := log.Infos[len(log.Infos)-1]
	if !strings.Contains(last, "1") {
		t.Errorf("Summary line should carry the violation count, got %q", last)
	}
}

func TestCheckRunnerCleanRun(t *testing.T) {
	dir := t.TempDir()
	writeJavaFile(t, dir, "Clean.java", "class Clean {\n}\n")

	log := NewCaptureLogSink()
	runner := newTestRunner(log)

	req := disabledRequest(dir)
	req.CheckUnusedImports = true
	req.CheckNewlineAtEOF = true
	req.CheckTodos = true

	result, err := runner.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !result.Passed {
		t.Errorf("Clean tree should pass, got violations %v", result.Violations)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode should be 0, got %d", result.ExitCode)
	}
	if result.Summary.FilesScanned != 1 {
		t.Errorf("FilesScanned should be 1, got %d", result.Summary.FilesScanned)
	}

	last := log.Infos[len(log.Infos)-1]
	if last != "No violations found." {
		t.Errorf("Closing summary should be 'No violations found.', got %q", last)
	}
}

func TestCheckRunnerMissingRootPasses(t *testing.T) {
	log := NewCaptureLogSink()
	runner := newTestRunner(log)

	req := disabledRequest(filepath.Join(t.TempDir(), "no-such-dir"))
	req.CheckNewlineAtEOF = true

	result, err := runner.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !result.Passed {
		t.Error("A missing source root should be treated as a clean run")
	}
	if result.Summary.FilesScanned != 0 {
		t.Errorf("FilesScanned should be 0, got %d", result.Summary.FilesScanned)
	}

	found := false
	for _, w := range log.Warnings {
		if strings.Contains(w, "does not exist") {
			found = true
		}
	}
	if !found {
		t.Errorf("Missing root should be logged as a warning, got %v", log.Warnings)
	}
}

func TestCheckRunnerEmptyRootPasses(t *testing.T) {
	log := NewCaptureLogSink()
	runner := newTestRunner(log)

	req := disabledRequest(t.TempDir())
	req.CheckNewlineAtEOF = true
	req.CheckTodos = true

	result, err := runner.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.Passed {
		t.Error("An empty tree should pass")
	}
}

func TestCheckRunnerAccumulatesAcrossChecksAndFiles(t *testing.T) {
	dir := t.TempDir()
	// First file violates the newline rule, second the TODO rule, third is
	// clean. The clean file must not reset the overall outcome.
	writeJavaFile(t, dir, "A.java", "class A {}")
	writeJavaFile(t, dir, "B.java", "// TODO later\nclass B {}\n")
	writeJavaFile(t, dir, "C.java", "class C {}\n")

	log := NewCaptureLogSink()
	runner := newTestRunner(log)

	req := disabledRequest(dir)
	req.CheckNewlineAtEOF = true
	req.CheckTodos = true

	result, err := runner.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Passed {
		t.Error("Run should fail")
	}
	if result.Summary.TotalViolations != 2 {
		t.Errorf("Expected 2 violations, got %d", result.Summary.TotalViolations)
	}
	if result.Summary.ViolationsByRule[constants.CheckNewlineAtEOF] != 1 {
		t.Errorf("Expected 1 newline violation, got %d",
			result.Summary.ViolationsByRule[constants.CheckNewlineAtEOF])
	}
	if result.Summary.ViolationsByRule[constants.CheckTodos] != 1 {
		t.Errorf("Expected 1 TODO violation, got %d",
			result.Summary.ViolationsByRule[constants.CheckTodos])
	}
}

func TestCheckRunnerParseErrorDoesNotSuppressOtherChecks(t *testing.T) {
	dir := t.TempDir()
	// Unparseable, contains a TODO, and has no trailing newline
	path := writeJavaFile(t, dir, "Broken.java", "class {{{ // TODO fix")

	log := NewCaptureLogSink()
	runner := newTestRunner(log)

	req := disabledRequest(dir)
	req.CheckUnusedImports = true
	req.CheckNewlineAtEOF = true
	req.CheckTodos = true

	result, err := runner.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Passed {
		t.Error("Run should fail on the remaining checks")
	}
	if result.Summary.ParseFailures != 1 {
		t.Errorf("ParseFailures should be 1, got %d", result.Summary.ParseFailures)
	}
	if result.Summary.ViolationsByRule[constants.CheckTodos] != 1 {
		t.Error("TODO check should still run after the parse failure")
	}
	if result.Summary.ViolationsByRule[constants.CheckNewlineAtEOF] != 1 {
		t.Error("Newline check should still run after the parse failure")
	}

	found := false
	for _, w := range log.Warnings {
		if strings.Contains(w, constants.CheckUnusedImports) && strings.Contains(w, path) {
			found = true
		}
	}
	if !found {
		t.Errorf("Parse failure should be logged as a warning, got %v", log.Warnings)
	}
}

func TestCheckRunnerSkipsUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeJavaFile(t, dir, "Good.java", "class Good {}\n")
	bad := writeJavaFile(t, dir, "Bad.java", "class Bad {}\n")

	log := NewCaptureLogSink()
	runner := NewCheckRunner(&testJavaReader{failPath: bad}, log, NewParallelExecutor())

	req := disabledRequest(dir)
	req.CheckNewlineAtEOF = true

	result, err := runner.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !result.Passed {
		t.Error("An unreadable file should be skipped, not failed")
	}
	if result.Summary.FilesSkipped != 1 {
		t.Errorf("FilesSkipped should be 1, got %d", result.Summary.FilesSkipped)
	}
	if result.Summary.FilesScanned != 1 {
		t.Errorf("FilesScanned should be 1, got %d", result.Summary.FilesScanned)
	}
	if len(log.Errors) == 0 {
		t.Error("The read failure should be logged as an error")
	}
}

func TestCheckRunnerDeterministicFileOrder(t *testing.T) {
	dir := t.TempDir()
	writeJavaFile(t, dir, "B.java", "class B {}")
	writeJavaFile(t, dir, "A.java", "class A {}")
	writeJavaFile(t, dir, "C.java", "class C {}")

	log := NewCaptureLogSink()
	runner := newTestRunner(log)

	req := disabledRequest(dir)
	req.CheckNewlineAtEOF = true
	req.Concurrency = 4

	result, err := runner.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Files) != 3 {
		t.Fatalf("Expected 3 file results, got %d", len(result.Files))
	}
	for i := 1; i < len(result.Files); i++ {
		if result.Files[i-1].Path > result.Files[i].Path {
			t.Errorf("File results should be sorted, got %s before %s",
				result.Files[i-1].Path, result.Files[i].Path)
		}
	}
}

func TestCheckRunnerPhase(t *testing.T) {
	log := NewCaptureLogSink()
	runner := newTestRunner(log)

	if runner.Phase() != PhaseIdle {
		t.Errorf("New runner should be idle, got %s", runner.Phase())
	}

	req := disabledRequest(t.TempDir())
	req.CheckNewlineAtEOF = true
	if _, err := runner.Run(context.Background(), req); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if runner.Phase() != PhaseDone {
		t.Errorf("Finished runner should be done, got %s", runner.Phase())
	}
}

func TestBuildChecks(t *testing.T) {
	req := disabledRequest()
	if len(BuildChecks(req)) != 0 {
		t.Error("No checks should be built with every rule off")
	}

	req.CheckUnusedImports = true
	req.CheckNewlineAtEOF = true
	req.CheckTodos = true
	req.MaxLineLength = 120
	req.MaxParameters = 7

	checks := BuildChecks(req)
	if len(checks) != 5 {
		t.Fatalf("Expected 5 checks, got %d", len(checks))
	}

	names := map[string]bool{}
	for _, c := range checks {
		names[c.Name()] = true
	}
	for _, want := range []string{
		constants.CheckUnusedImports,
		constants.CheckLineLength,
		constants.CheckNewlineAtEOF,
		constants.CheckTodos,
		constants.CheckParamCount,
	} {
		if !names[want] {
			t.Errorf("Missing check %s", want)
		}
	}
}
