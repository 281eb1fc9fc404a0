// Package logging configures the seelog logger of the adpos commands.
package logging

import (
	"fmt"
	"io"

	log "github.com/cihub/seelog"
)

const format = "adpos: [%LEV] %Msg%n"

// Level returns the seelog minimum level for a -v count. Counts below one,
// including the -1 of an absent flag, keep the default warn level.
func Level(verbosity int) string {
	switch {
	case verbosity <= 0:
		return "warn"
	case verbosity == 1:
		return "info"
	case verbosity == 2:
		return "debug"
	default:
		return "trace"
	}
}

// Setup replaces the package logger of seelog with a synchronous one
// writing to w, usually stderr, so that logs never mix with the report.
func Setup(w io.Writer, verbosity int) error {
	level, ok := log.LogLevelFromString(Level(verbosity))
	if !ok {
		return fmt.Errorf("unknown log level %q", Level(verbosity))
	}

	logger, err := log.LoggerFromWriterWithMinLevelAndFormat(w, level, format)
	if err != nil {
		return err
	}

	return log.ReplaceLogger(logger)
}
