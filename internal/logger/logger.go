// Package logger provides verbose logging for skym.
// When verbose mode is enabled via the --verbose flag or SKYM_VERBOSE,
// debug messages are printed to stderr to show how input is read,
// ranked and picked.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
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

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	logf("\n=== ", "%s ===", name)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("[WARN] ", format, args...)
}

// logf writes one line under the read lock so SetOutput cannot race a write.
func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Timed logs how long an operation took once the returned func is called.
//
//	defer logger.Timed("rank %d candidates", n)()
func Timed(format string, args ...any) func() {
	if !IsVerbose() {
		return func() {}
	}
	start := time.Now()
	msg := fmt.Sprintf(format, args...)
	return func() {
		Debug("%s took %s", msg, time.Since(start).Round(time.Microsecond))
	}
}
