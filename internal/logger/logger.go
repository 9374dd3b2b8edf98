package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Options controls where log records go and how detailed they are.
type Options struct {
	// Verbose lowers the level to Debug.
	Verbose bool
	// ToFile appends JSON records to the application log file.
	ToFile bool
	// ToStderr mirrors records to stderr. Never set it for the TUI.
	ToStderr bool
}

var defaultLogger *slog.Logger

// GetLogFilePath determines the path for the application log file based on XDG spec.
func GetLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "checklists", "app.log"), nil
}

func openLogFile() (*os.File, error) {
	logFilePath, err := GetLogFilePath()
	if err != nil {
		return nil, err
	}
	// 0750: user rwx, group rx, others ---
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
}

// New builds a JSON logger for opts. File logging failures are reported on
// stderr and logging continues without the file.
func New(opts Options) *slog.Logger {
	var writers []io.Writer
	if opts.ToFile {
		f, err := openLogFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v. File logging disabled.\n", err)
		} else {
			// The handle is released by the OS on exit.
			writers = append(writers, f)
		}
	}
	if opts.ToStderr {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// InitLogger installs the default logger. Call it once at startup.
func InitLogger(opts Options) {
	defaultLogger = New(opts)
	if opts.ToFile {
		if p, err := GetLogFilePath(); err == nil {
			Debug("Logging configured.", "file", p, "stderr", opts.ToStderr)
		}
	}
}

// SetLogger replaces the default logger, e.g. with a discard logger in tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// L returns the current default logger.
func L() *slog.Logger {
	checkLogger()
	return defaultLogger
}

// checkLogger falls back to warnings-only stderr logging when InitLogger was
// never called (tests, library use).
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

