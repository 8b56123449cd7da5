package domain

// LogSink is an append-only sink for run diagnostics. It is passed explicitly
// into the runner instead of relying on ambient logging state so that tests
// can capture emitted messages. Implementations must be safe for concurrent
// use.
type LogSink interface {
	// Infof appends an informational message
	Infof(format string, args ...any)

	// Warnf appends a warning message
	Warnf(format string, args ...any)

	// Errorf appends an error message
	Errorf(format string, args ...any)
}
