package service

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ludo-technologies/jcleanup/domain"
)

// LogSinkImpl implements domain.LogSink by appending prefixed lines to a
// writer. Appends are serialized so the sink can be shared by parallel file
// workers.
type LogSinkImpl struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewLogSink creates a log sink writing to the given writer
func NewLogSink(writer io.Writer) *LogSinkImpl {
	return &LogSinkImpl{writer: writer}
}

// NewStderrLogSink creates a log sink writing to stderr
func NewStderrLogSink() *LogSinkImpl {
	return NewLogSink(os.Stderr)
}

// Infof appends an informational message
func (s *LogSinkImpl) Infof(format string, args ...any) {
	s.append("INFO", format, args)
}

// Warnf appends a warning message
func (s *LogSinkImpl) Warnf(format string, args ...any) {
	s.append("WARN", format, args)
}

// Errorf appends an error message
func (s *LogSinkImpl) Errorf(format string, args ...any) {
	s.append("ERROR", format, args)
}

func (s *LogSinkImpl) append(level, format string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.writer, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}

// CaptureLogSink records messages for tests
type CaptureLogSink struct {
	mu       sync.Mutex
	Infos    []string
	Warnings []string
	Errors   []string
}

// NewCaptureLogSink creates a capturing log sink
func NewCaptureLogSink() *CaptureLogSink {
	return &CaptureLogSink{}
}

// Infof records an informational message
func (s *CaptureLogSink) Infof(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Infos = append(s.Infos, fmt.Sprintf(format, args...))
}

// Warnf records a warning message
func (s *CaptureLogSink) Warnf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

// Errorf records an error message
func (s *CaptureLogSink) Errorf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
}

// All returns every recorded message grouped by level
func (s *CaptureLogSink) All() (infos, warnings, errors []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Infos...),
		append([]string(nil), s.Warnings...),
		append([]string(nil), s.Errors...)
}

var _ domain.LogSink = (*LogSinkImpl)(nil)
var _ domain.LogSink = (*CaptureLogSink)(nil)
