package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/jcleanup/app"
	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/config"
	"github.com/ludo-technologies/jcleanup/internal/constants"
	"github.com/ludo-technologies/jcleanup/service"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkUnusedImports bool
	checkMaxLineLength int
	checkNewline       bool
	checkTodos         bool
	checkMaxParameters int
	checkFormat        string
	checkJSON          bool
	checkVerbose       bool
	checkNoProgress    bool
	checkExclude       []string
	checkJobs          int
	checkConfigPath    string
	checkSourceRoot    string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check a Java source tree for cleanliness violations",
		Long: `Scan Java sources and fail when cleanliness rules are violated.

Exit codes:
  0 - All checks pass
  1 - One or more violations found
  2 - Analysis error (unreadable config, invalid flags, etc.)

Examples:
  # Check the default source root with default rules
  jcleanup check

  # Enforce a line length limit
  jcleanup check --max-line-length 120 src/main/java

  # Limit method parameter counts, skip the TODO scan
  jcleanup check --max-parameters 5 --check-todos=false src

  # JSON output for machine parsing
  jcleanup check --json src`,
		RunE:          runCheck,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().BoolVar(&checkUnusedImports, "check-unused-imports", true,
		"Report imports never referenced in the file")
	cmd.Flags().IntVar(&checkMaxLineLength, "max-line-length", constants.ThresholdDisabled,
		"Maximum allowed line length (-1 disables the rule)")
	cmd.Flags().BoolVar(&checkNewline, "check-newline", true,
		"Require a newline at end of file")
	cmd.Flags().BoolVar(&checkTodos, "check-todos", true,
		"Report TODO markers")
	cmd.Flags().IntVar(&checkMaxParameters, "max-parameters", constants.ThresholdDisabled,
		"Maximum allowed method parameters (-1 disables the rule)")
	cmd.Flags().StringVarP(&checkFormat, "format", "f", constants.OutputFormatText,
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show detailed output")
	cmd.Flags().BoolVar(&checkNoProgress, "no-progress", false,
		"Disable the progress bar")
	cmd.Flags().StringSliceVarP(&checkExclude, "exclude", "e", nil,
		"Glob patterns of files and directories to skip")
	cmd.Flags().IntVar(&checkJobs, "jobs", 0,
		"Number of files checked concurrently (0 uses the configured default)")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVar(&checkSourceRoot, "source", constants.DefaultSourceRoot,
		"Source root scanned when no path argument is given")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	// Load configuration
	cfg, err := config.LoadConfigWithTarget(checkConfigPath, target)
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	paths := args
	if len(paths) == 0 {
		if cmd.Flags().Changed("source") {
			paths = []string{checkSourceRoot}
		} else {
			paths = []string{cfg.Analysis.SourceRoot}
		}
	}

	loader := service.NewConfigurationLoader()
	base := requestFromConfig(cfg)

	override := &domain.CheckRequest{
		Paths:              paths,
		CheckUnusedImports: checkUnusedImports,
		MaxLineLength:      checkMaxLineLength,
		CheckNewlineAtEOF:  checkNewline,
		CheckTodos:         checkTodos,
		MaxParameters:      checkMaxParameters,
		OutputFormat:       domain.OutputFormat(checkFormat),
		OutputWriter:       os.Stdout,
		ShowDetails:        checkVerbose,
		ExcludePatterns:    checkExclude,
		Concurrency:        checkJobs,
		ConfigPath:         checkConfigPath,
	}

	changed := map[string]bool{}
	for _, name := range []string{
		"check-unused-imports", "max-line-length", "check-newline",
		"check-todos", "max-parameters", "format", "verbose", "exclude", "jobs",
	} {
		changed[name] = cmd.Flags().Changed(name)
	}

	req := loader.MergeConfig(base, override, changed)
	if checkJSON {
		req.OutputFormat = domain.OutputFormatJSON
	}

	if err := loader.ValidateConfig(req); err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	// Progress is auto-disabled for non-text output and non-TTY/CI
	showProgress := !checkNoProgress &&
		req.OutputFormat == domain.OutputFormatText &&
		service.IsInteractiveEnvironment()
	pm := service.NewProgressManager(showProgress)
	defer pm.Close()

	fileHelper := app.NewFileHelper()
	fileHelper.RespectGitignore = cfg.Analysis.RespectGitignore
	logSink := service.NewStderrLogSink()
	executor := service.NewParallelExecutorWithProgress(&cfg.Performance, pm)
	runner := service.NewCheckRunner(fileHelper, logSink, executor)

	useCase := app.NewCheckUseCase(runner, service.NewOutputFormatter())

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Performance.TimeoutSeconds)*time.Second)
	defer cancel()

	result, err := useCase.Execute(ctx, *req)
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	if !result.Passed {
		// Output already printed by the use case
		return &CheckExitError{Code: 1, Message: ""}
	}
	return nil
}

// requestFromConfig converts the loaded config into a base request
func requestFromConfig(cfg *config.Config) *domain.CheckRequest {
	return &domain.CheckRequest{
		CheckUnusedImports: cfg.Checks.UnusedImports,
		MaxLineLength:      cfg.Checks.MaxLineLength,
		CheckNewlineAtEOF:  cfg.Checks.NewlineAtEOF,
		CheckTodos:         cfg.Checks.Todos,
		MaxParameters:      cfg.Checks.MaxParameters,
		OutputFormat:       domain.OutputFormat(cfg.Output.Format),
		ShowDetails:        cfg.Output.ShowDetails,
		ExcludePatterns:    cfg.Analysis.ExcludePatterns,
		Concurrency:        cfg.Performance.MaxGoroutines,
	}
}
