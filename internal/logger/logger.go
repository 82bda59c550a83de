// Package logger provides the site's verbose logging.
// Debug, Info, Warn and Section only print when verbose mode is on
// (the --verbose flag); Error always prints. Output goes to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Writer returns the current output writer.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

func logf(always bool, level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if always || verbose {
		fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { logf(false, "DEBUG", format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { logf(false, "INFO", format, args...) }

// Warn prints a warning if verbose mode is enabled.
func Warn(format string, args ...any) { logf(false, "WARN", format, args...) }

// Error prints an error regardless of verbose mode.
func Error(format string, args ...any) { logf(true, "ERROR", format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
