package scribble

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables diagnostic logging to stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// DebugMode reports whether diagnostic logging is on.
func (e *Engine) DebugMode() bool {
	return e.debug
}

// debugf prints a "[scribble]" line to stderr when debug mode is on.
func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[scribble] "+format+"\n", args...)
}

// debugCheckHistory warns on stderr when the undo stack grows past the
// threshold without a limit set.
const debugMaxHistoryDepth = 500

func (e *Engine) debugCheckHistory() {
	if !e.debug || e.board.history.Limit > 0 {
		return
	}
	if u, _ := e.board.history.Depth(); u > debugMaxHistoryDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[scribble] warning: undo depth %d exceeds %d with no history limit\n",
			u, debugMaxHistoryDepth)
	}
}
