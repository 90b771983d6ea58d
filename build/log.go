// +build !filelog

package build

// LoggingType is a log type that writes to stdout.
const LoggingType = LogTypeStdOut

// Write writes the provided byte slice to stdout.
func (w *LogWriter) Write(b []byte) (int, error) {
	return logWriter.Write(b)
}
