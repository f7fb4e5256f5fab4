// Package logger provides levelled diagnostic output for kioku.
// Warnings are always written to stderr; debug and info messages are
// written only when verbose mode is enabled via the --verbose flag, so
// the search and reload pipelines can be traced without cluttering
// normal command output.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the minimum severity that is written.
type Level int

const (
	// LevelDebug writes everything.
	LevelDebug Level = iota
	// LevelInfo writes info and warnings.
	LevelInfo
	// LevelWarn writes warnings only.
	LevelWarn
	// LevelSilent writes nothing.
	LevelSilent
)

var (
	mu     sync.RWMutex
	level            = LevelWarn
	output io.Writer = os.Stderr
)

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// CurrentLevel returns the active level.
func CurrentLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetVerbose switches between LevelDebug (true) and LevelWarn (false).
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// IsVerbose returns true if debug output is enabled.
func IsVerbose() bool {
	return CurrentLevel() == LevelDebug
}

// SetOutput sets the output writer.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(l Level, tag, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l < level {
		return
	}
	fmt.Fprintf(output, "["+tag+"] "+format+"\n", args...)
}

// Debug writes a message when verbose mode is enabled.
func Debug(format string, args ...any) {
	write(LevelDebug, "DEBUG", format, args...)
}

// Info writes an informational message when verbose mode is enabled.
func Info(format string, args ...any) {
	write(LevelInfo, "INFO", format, args...)
}

// Warn writes a warning unless the logger is silenced.
func Warn(format string, args ...any) {
	write(LevelWarn, "WARN", format, args...)
}

// Section writes a section header when verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if level == LevelDebug {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
