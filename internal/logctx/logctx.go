// Package logctx wires structured, leveled logging into the four engines via
// github.com/charmbracelet/log. Every CLI run is tagged with a run id
// (github.com/google/uuid) so its log lines can be correlated when several
// runs' output is interleaved (e.g. captured in a shared CI log).
//
// Library packages never reach for a global logger: they accept a
// *log.Logger (nil-safe) and fall back to a discarding logger, so importing
// partition/floorplan/routing/pathfind as a library never prints anything
// uninvited.
package logctx

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a logger for one CLI invocation, tagged with a fresh run id.
// verbose raises the level from Warn to Debug.
func New(engine string, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          engine,
	})
	return logger.With("run_id", uuid.NewString())
}

// Discard returns a logger that drops every line, used as the nil-safe
// default inside library code when the caller passed no logger.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OrDiscard returns l if non-nil, otherwise Discard(). Library entrypoints
// call this once at the top so the rest of the function can log
// unconditionally.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
