package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/analyzer"
	"github.com/ludo-technologies/jcleanup/internal/constants"
	"github.com/ludo-technologies/jcleanup/internal/version"
)

// RunPhase identifies the stage a check run is currently in.
type RunPhase string

const (
	PhaseIdle        RunPhase = "idle"
	PhaseScanning    RunPhase = "scanning"
	PhaseChecking    RunPhase = "checking"
	PhaseAggregating RunPhase = "aggregating"
	PhaseDone        RunPhase = "done"
)

// CheckRunner applies the enabled source checks to a Java source tree.
// It implements domain.CheckService.
type CheckRunner struct {
	reader   domain.JavaFileReader
	log      domain.LogSink
	executor *ParallelExecutorImpl

	mu    sync.RWMutex
	phase RunPhase
}

// NewCheckRunner creates a check runner backed by the given file reader,
// log sink and task executor.
func NewCheckRunner(reader domain.JavaFileReader, log domain.LogSink, executor *ParallelExecutorImpl) *CheckRunner {
	if executor == nil {
		executor = NewParallelExecutor()
	}
	return &CheckRunner{
		reader:   reader,
		log:      log,
		executor: executor,
		phase:    PhaseIdle,
	}
}

// Phase reports the stage the runner is currently in. Safe to call from
// other goroutines while a run is in flight.
func (r *CheckRunner) Phase() RunPhase {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.phase
}

func (r *CheckRunner) setPhase(p RunPhase) {
	r.mu.Lock()
	r.phase = p
	r.mu.Unlock()
}

// BuildChecks assembles the check list for a request. Checks whose
// threshold is the disabled sentinel or whose toggle is off are left out.
func BuildChecks(req domain.CheckRequest) []analyzer.Check {
	var checks []analyzer.Check
	if req.CheckUnusedImports {
		checks = append(checks, analyzer.NewUnusedImportCheck())
	}
	if req.MaxLineLength != constants.ThresholdDisabled {
		checks = append(checks, analyzer.NewLineLengthCheck(req.MaxLineLength))
	}
	if req.CheckNewlineAtEOF {
		checks = append(checks, analyzer.NewNewlineCheck())
	}
	if req.CheckTodos {
		checks = append(checks, analyzer.NewTodoCheck())
	}
	if req.MaxParameters != constants.ThresholdDisabled {
		checks = append(checks, analyzer.NewParamCountCheck(req.MaxParameters))
	}
	return checks
}

// Run scans the request paths for Java sources, applies every enabled
// check to each file and aggregates the outcome. A missing source root is
// reported as a warning and treated as a clean run; unreadable files are
// skipped; a check that errors on a file (for example a parse failure)
// does not suppress the remaining checks on that file.
func (r *CheckRunner) Run(ctx context.Context, req domain.CheckRequest) (*domain.CheckResult, error) {
	start := time.Now()
	r.setPhase(PhaseScanning)
	defer r.setPhase(PhaseDone)

	checks := BuildChecks(req)

	roots := make([]string, 0, len(req.Paths))
	for _, p := range req.Paths {
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				r.log.Warnf("source directory does not exist: %s", p)
				continue
			}
			return nil, domain.NewFileNotFoundError(p, err)
		}
		roots = append(roots, p)
	}

	var files []string
	if len(roots) > 0 && len(checks) > 0 {
		var err error
		files, err = r.reader.CollectJavaFiles(roots, req.ExcludePatterns)
		if err != nil {
			return nil, domain.NewAnalysisError("failed to collect Java files", err)
		}
	}
	r.log.Infof("Scanning code for issues in: %s", joinPaths(req.Paths))

	r.setPhase(PhaseChecking)

	if req.Concurrency > 0 {
		r.executor.SetMaxConcurrency(req.Concurrency)
	}

	results := make([]domain.FileResult, len(files))
	tasks := make([]domain.ExecutableTask, len(files))
	for i, path := range files {
		tasks[i] = &fileCheckTask{
			path:   path,
			checks: checks,
			runner: r,
			out:    &results[i],
		}
	}

	if err := r.executor.Execute(ctx, tasks); err != nil {
		// Task errors are already handled per file; only a context error
		// (cancellation or timeout) reaches this point.
		var agg *AggregatedError
		if !errors.As(err, &agg) {
			return nil, err
		}
	}

	r.setPhase(PhaseAggregating)

	result := &domain.CheckResult{
		Files:       results,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}
	summary := domain.CheckSummary{ViolationsByRule: make(map[string]int)}

	violated := false
	for _, fr := range results {
		switch {
		case fr.Skipped:
			summary.FilesSkipped++
		default:
			summary.FilesScanned++
		}
		if fr.ParseFailed {
			summary.ParseFailures++
		}
		for _, v := range fr.Violations {
			summary.ViolationsByRule[v.Rule]++
			result.Violations = append(result.Violations, v)
		}
		// Accumulate only; a clean file never clears a prior failure.
		violated = violated || fr.Violated
	}
	summary.TotalViolations = len(result.Violations)

	result.Summary = summary
	result.Passed = !violated
	result.Duration = time.Since(start).Milliseconds()
	if result.Passed {
		result.ExitCode = 0
		r.log.Infof("No violations found.")
	} else {
		result.ExitCode = 1
		r.log.Infof("Code cleanup violations found: %d", summary.TotalViolations)
	}
	return result, nil
}

// checkFile runs every enabled check against one file and returns the
// per-file outcome. Violations are logged as they are found.
func (r *CheckRunner) checkFile(path string, checks []analyzer.Check) domain.FileResult {
	res := domain.FileResult{Path: path}

	raw, err := r.reader.ReadFile(path)
	if err != nil {
		r.log.Errorf("error reading file %s: %v", path, err)
		res.Skipped = true
		return res
	}
	src := analyzer.NewSourceFile(path, raw)

	violated := false
	for _, check := range checks {
		violations, err := check.Run(src)
		if err != nil {
			var derr domain.DomainError
			if errors.As(err, &derr) && derr.Code == domain.ErrCodeParseError {
				res.ParseFailed = true
			}
			r.log.Warnf("%s check failed for %s: %v", check.Name(), path, err)
			continue
		}
		for _, v := range violations {
			r.logViolation(v)
		}
		res.Violations = append(res.Violations, violations...)
		violated = violated || len(violations) > 0
	}
	res.Violated = violated
	return res
}

func (r *CheckRunner) logViolation(v domain.Violation) {
	if v.Line > 0 {
		r.log.Warnf("%s:%d: %s", v.File, v.Line, v.Message)
	} else {
		r.log.Warnf("%s: %s", v.File, v.Message)
	}
}

func joinPaths(paths []string) string {
	switch len(paths) {
	case 0:
		return "."
	case 1:
		return paths[0]
	}
	out := paths[0]
	for _, p := range paths[1:] {
		out += ", " + p
	}
	return out
}

// fileCheckTask adapts one file check to the executor's task interface.
type fileCheckTask struct {
	path   string
	checks []analyzer.Check
	runner *CheckRunner
	out    *domain.FileResult
}

func (t *fileCheckTask) Name() string { return t.path }

func (t *fileCheckTask) IsEnabled() bool { return true }

func (t *fileCheckTask) Execute(ctx context.Context) (any, error) {
	*t.out = t.runner.checkFile(t.path, t.checks)
	return t.out, nil
}

var _ domain.CheckService = (*CheckRunner)(nil)
