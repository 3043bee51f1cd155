package routelog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Level names mirror spec §6's logging levels. DEBUG and INFO/SUCCESS map
// onto logr's leveled Info (V=1 and V=0 respectively); WARNING and ERROR
// map onto logr's Error, since logr reserves Error for conditions a caller
// should be able to filter on independent of verbosity.
const (
	LevelDebug   = "DEBUG"
	LevelInfo    = "INFO"
	LevelSuccess = "SUCCESS"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// NewConsole returns a logr.Logger that writes timestamp-prefixed lines to w.
// verbosity controls how many V-levels of Info are emitted; 0 suppresses
// DEBUG-level messages, 1 (or more) includes them.
func NewConsole(w io.Writer, verbosity int) logr.Logger {
	sink := funcr.NewJSON(
		func(obj string) { fmt.Fprintln(w, obj) },
		funcr.Options{
			LogTimestamp: true,
			TimestampFormat: time.RFC3339,
			Verbosity:    verbosity,
		},
	)

	return logr.New(sink)
}

// NewStderr is a convenience constructor: a console logger over os.Stderr
// at INFO-and-above verbosity. The CLI entrypoint calls NewConsole
// directly so it can pass its -v flag.
func NewStderr() logr.Logger {
	return NewConsole(os.Stderr, 0)
}

// Debug-level helper: logs at V(1), matching spec's DEBUG level.
func Debug(log logr.Logger, msg string, keysAndValues ...interface{}) {
	log.V(1).Info(msg, keysAndValues...)
}

// Success-level helper: logs at V(0) with an explicit level tag, matching
// spec's SUCCESS level (there is no logr equivalent, so it is carried as
// a structured field rather than inventing a new verb).
func Success(log logr.Logger, msg string, keysAndValues ...interface{}) {
	log.Info(msg, append([]interface{}{"level", LevelSuccess}, keysAndValues...)...)
}

// Warning-level helper: logs via Error with a nil error, matching spec's
// WARNING level (non-fatal, but above INFO in severity).
func Warning(log logr.Logger, msg string, keysAndValues ...interface{}) {
	log.Error(nil, msg, append([]interface{}{"level", LevelWarning}, keysAndValues...)...)
}
