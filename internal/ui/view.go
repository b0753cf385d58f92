package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	zone "github.com/lrstanley/bubblezone"

	appver "runpad/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	b := &strings.Builder{}
	b.WriteString("\n")
	b.WriteString(renderInputBox(m.width, m.ti.View()))
	if m.ti.Focused() && m.slashVisible {
		b.WriteString(renderSlashOverlay(m.width, m.slashFiltered, m.slashIndex))
	}
	b.WriteString("\n")

	// Status line; mouse clicks on it toggle folding.
	b.WriteString("  ")
	b.WriteString(zone.Mark("session.status", renderHighlighted(m.term.Status())))
	b.WriteString("\n\n")

	if m.helpVisible {
		b.WriteString(m.helpText)
	} else if m.vpReady {
		b.WriteString(m.vp.View())
		b.WriteString("\n")
	}

	if m.notice != "" {
		fmt.Fprintf(b, "  %s\n", m.notice)
	}
	b.WriteString(m.renderStatusBarLine())
	return zone.Scan(b.String())
}

// renderStatusBarLine builds the bar under the output pane: clock and fold
// state on the left, version and git info on the right.
func (m model) renderStatusBarLine() string {
	now := m.now
	if now.IsZero() {
		now = time.Now()
	}
	left := now.Format("15:04:05")
	if m.cwd != "" {
		left += " · " + shortenPath(m.cwd)
	}
	if m.term.IsRunning() {
		left += " · running"
	}
	if m.term.IsFolded() {
		left += " · folded"
	} else {
		left += " · full"
	}

	right := "v" + appver.AppVersion
	if m.git.InRepo {
		seg := " · " + m.git.Branch
		if m.git.Dirty {
			seg += "*"
		}
		right = seg + " · " + right
	}
	return renderStatusBar(m.width, " "+left, right+" ")
}

// shortenPath abbreviates the home prefix to ~ for the status bar.
func shortenPath(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if p == home {
		return "~"
	}
	if strings.HasPrefix(p, home+string(os.PathSeparator)) {
		return "~" + p[len(home):]
	}
	return p
}
