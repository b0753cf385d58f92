package ui

import (
	"time"

	"runpad/internal/system"
)

// Bubble Tea messages

// sessionEventMsg is delivered whenever the session fires a callback; the
// model re-reads Status/Output rather than trusting the trigger kind.
type sessionEventMsg struct{ kind eventKind }

// periodic tick for the status bar clock
type tickMsg time.Time

// git info updates
type gitInfoMsg struct{ info system.GitInfo }

// help overlay rendered markdown
type helpRenderedMsg struct {
	out string
	err error
}

// history persisted after a run
type historySavedMsg struct{ entries []string }
