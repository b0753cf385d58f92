package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# runpad

Type a command and press **enter** to run it. Starting a new command kills
the previous one. Quoted arguments use double quotes: ` + "`echo \"hello world\"`" + `.

## Keys

| Key | Action |
|-----|--------|
| enter | run the typed command |
| ctrl+f | toggle folded/full output (or click the status line) |
| ctrl+k | kill the running command |
| up / down | cycle command history |
| / | command palette (/fold, /kill, /clear, /history, /settings, /help, /exit) |
| ? | this help |
| esc | close overlay |
| ctrl+c | quit |

## Status line

` + "`= time: 3s status: 0 =`" + ` shows elapsed time and, once the command
finished, its exit code. ` + "`...`" + ` means output exceeds the configured
line cap; unfold to see everything (bounded at 128 KiB per stream).
`

// renderHelpCmd renders the help markdown off the update loop.
func renderHelpCmd(width int) tea.Cmd {
	return func() tea.Msg {
		w := width - 4
		if w < 40 {
			w = 40
		}
		if w > 100 {
			w = 100
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(w),
		)
		if err != nil {
			return helpRenderedMsg{err: err}
		}
		out, err := r.Render(helpMarkdown)
		return helpRenderedMsg{out: out, err: err}
	}
}
