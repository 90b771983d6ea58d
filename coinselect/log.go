package coinselect

import (
	"github.com/decred/dcrwutxo/build"
	"github.com/decred/slog"
)

// log is the package level logger used throughout the coinselect package.
// It is disabled by default until UseLogger is called by a caller wiring
// this library into an application's logging infrastructure.
var log slog.Logger

func init() {
	UseLogger(build.NewSubLogger("CSEL", nil))
}

// DisableLog disables all library log output. Logging output is disabled
// by default until UseLogger is called.
func DisableLog() {
	log = slog.Disabled
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	log = logger
}
