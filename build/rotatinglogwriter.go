package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

const (
	// LogTypeStdOut indicates that the log records should be written to
	// standard out.
	LogTypeStdOut = "stdout"

	// LogTypeNone indicates no logging should be performed. Valid log
	// levels are still accepted so they can be passed to subsystems
	// that perform their own filtering.
	LogTypeNone = "none"

	// DefaultPrefix is the default prefix attached to each sub-logger's
	// records so the subsystem the record came from can be identified.
	DefaultPrefix = "COIN"
)

// LogWriter is a stub type whose concrete Write method is provided by the
// build-tagged log.go/log_filelog.go files, allowing the logging
// destination to be chosen at compile time.
type LogWriter struct {
	io.Writer
}

// logWriter is the default destination records are written to when no
// rotating file logger has been installed.
var logWriter = os.Stdout

// RotatingLogWriter is a wrapper around the logging subsystem that pipes
// writes to both standard out, and a rotating log file within the log
// directory. UseLogger and NewSubLogger should be used to obtain access
// to a Logger instance rooted at this writer.
type RotatingLogWriter struct {
	logLevel string

	root *rotator.Rotator
}

// NewRotatingLogWriter returns a RotatingLogWriter at the "info" log
// level with no log file attached; InitLogRotator attaches one.
func NewRotatingLogWriter() *RotatingLogWriter {
	return &RotatingLogWriter{
		logLevel: "info",
	}
}

// InitLogRotator initializes the log file rotator to write logs to
// logFile and create roll files in the same directory, creating the
// directory if it is missing. Until it is called, Write sends records to
// stdout only.
func (r *RotatingLogWriter) InitLogRotator(logFile string, maxLogFileSize int64,
	maxLogFiles int) error {

	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("unable to create log directory: %w", err)
	}

	rotator, err := rotator.New(
		logFile, int64(maxLogFileSize*1024), false, maxLogFiles,
	)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	r.root = rotator
	return nil
}

// Write writes the byte slice to both stdout, and the file rotator, if
// one has been initialized.
func (r *RotatingLogWriter) Write(b []byte) (int, error) {
	if r.root != nil {
		_, _ = r.root.Write(b)
	}
	return logWriter.Write(b)
}

// GenSubLogger creates a new sub logger rooted at this writer, with the
// given subsystem tag attached to every record.
func (r *RotatingLogWriter) GenSubLogger(tag string) slog.Logger {
	return slog.NewBackend(r).Logger(tag)
}

// SetLogLevels records level as the level RegisterSubLogger applies to
// loggers registered after this call. Loggers registered earlier keep
// their current level; the writer keeps no list of them.
func (r *RotatingLogWriter) SetLogLevels(level string) {
	r.logLevel = level
}

// RegisterSubLogger sets logger's level to the writer's recorded log
// level, if that level string is valid. The subsystem name is not used.
func (r *RotatingLogWriter) RegisterSubLogger(subsystem string, logger slog.Logger) {
	level, ok := slog.LevelFromString(r.logLevel)
	if ok {
		logger.SetLevel(level)
	}
}

// NewSubLogger constructs a new subsystem logger by calling genLogger
// with subsystem, or returns slog.Disabled when genLogger is nil.
func NewSubLogger(subsystem string, genLogger func(string) slog.Logger) slog.Logger {
	if genLogger == nil {
		return slog.Disabled
	}
	return genLogger(subsystem)
}
