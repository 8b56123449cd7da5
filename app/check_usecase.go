package app

import (
	"context"
	"fmt"

	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/constants"
)

// CheckUseCase orchestrates the code cleanup check workflow
type CheckUseCase struct {
	service   domain.CheckService
	formatter domain.OutputFormatter
}

// NewCheckUseCase creates a new check use case
func NewCheckUseCase(service domain.CheckService, formatter domain.OutputFormatter) *CheckUseCase {
	return &CheckUseCase{
		service:   service,
		formatter: formatter,
	}
}

// Execute performs the complete check workflow: validate the request, run
// the checks and write the formatted result to the request's output writer.
func (uc *CheckUseCase) Execute(ctx context.Context, req domain.CheckRequest) (*domain.CheckResult, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	result, err := uc.service.Run(ctx, req)
	if err != nil {
		return nil, domain.NewAnalysisError("code cleanup check failed", err)
	}

	if req.OutputWriter != nil {
		if err := uc.formatter.Write(result, req.OutputFormat, req.OutputWriter); err != nil {
			return nil, domain.NewOutputError("failed to write check result", err)
		}
	}

	return result, nil
}

// validateRequest validates the check request
func (uc *CheckUseCase) validateRequest(req domain.CheckRequest) error {
	if len(req.Paths) == 0 {
		return fmt.Errorf("no input paths specified")
	}

	if req.MaxLineLength != constants.ThresholdDisabled && req.MaxLineLength < 1 {
		return fmt.Errorf("max line length must be >= 1 or %d to disable", constants.ThresholdDisabled)
	}

	if req.MaxParameters != constants.ThresholdDisabled && req.MaxParameters < 0 {
		return fmt.Errorf("max parameters must be >= 0 or %d to disable", constants.ThresholdDisabled)
	}

	if req.Concurrency < 0 {
		return fmt.Errorf("concurrency cannot be negative")
	}

	switch req.OutputFormat {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML:
	default:
		return fmt.Errorf("unsupported output format: %s", req.OutputFormat)
	}

	return nil
}

// CheckUseCaseBuilder provides a builder for creating CheckUseCase
type CheckUseCaseBuilder struct {
	service   domain.CheckService
	formatter domain.OutputFormatter
}

// NewCheckUseCaseBuilder creates a new builder
func NewCheckUseCaseBuilder() *CheckUseCaseBuilder {
	return &CheckUseCaseBuilder{}
}

// WithService sets the check service
func (b *CheckUseCaseBuilder) WithService(service domain.CheckService) *CheckUseCaseBuilder {
	b.service = service
	return b
}

// WithFormatter sets the output formatter
func (b *CheckUseCaseBuilder) WithFormatter(formatter domain.OutputFormatter) *CheckUseCaseBuilder {
	b.formatter = formatter
	return b
}

// Build creates the CheckUseCase with the configured dependencies
func (b *CheckUseCaseBuilder) Build() (*CheckUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("check service is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}
	return NewCheckUseCase(b.service, b.formatter), nil
}
