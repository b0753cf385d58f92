package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if zone.Get("session.status").InBounds(msg) {
				m.term.ToggleFold()
				m.refreshOutput()
				return m, nil
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := msg.Width - 2
		if inner < 10 {
			inner = 10
		}
		tiw := inner - 3 // account for " > " prompt
		if tiw < 5 {
			tiw = 5
		}
		m.ti.Width = tiw

		vpH := msg.Height - 10
		if vpH < 3 {
			vpH = 3
		}
		if !m.vpReady {
			m.vp = viewport.New(msg.Width, vpH)
			m.vpReady = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = vpH
		}
		m.refreshOutput()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case sessionEventMsg:
		m.refreshOutput()
		return m, waitEventCmd(m.relay)

	case tickMsg:
		m.now = time.Time(msg)
		cmds := []tea.Cmd{tickCmd()}
		if m.now.Sub(m.lastGitCheck) > 10*time.Second {
			m.lastGitCheck = m.now
			cmds = append(cmds, gitInfoCmd(m.cwd))
		}
		return m, tea.Batch(cmds...)

	case gitInfoMsg:
		m.git = msg.info
		return m, nil

	case helpRenderedMsg:
		if msg.err != nil {
			m.notice = "help unavailable: " + msg.err.Error()
			return m, nil
		}
		m.helpText = msg.out
		m.helpVisible = true
		return m, nil

	case historySavedMsg:
		m.history = msg.entries
		m.histIdx = len(m.history)
		m.ti.SetSuggestions(m.history)
		return m, nil
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.term.Kill()
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if m.helpVisible {
			m.helpVisible = false
			return m, nil
		}
		if m.slashVisible {
			m.ti.SetValue("")
			m.refreshSlash()
			return m, nil
		}
		m.notice = ""
		return m, nil

	case "ctrl+f":
		m.term.ToggleFold()
		m.refreshOutput()
		return m, nil

	case "ctrl+k":
		m.term.Kill()
		return m, nil

	case "?":
		// Only treat as help when not mid-command.
		if strings.TrimSpace(m.ti.Value()) == "" {
			if m.helpVisible {
				m.helpVisible = false
				return m, nil
			}
			return m, renderHelpCmd(m.width)
		}

	case "up":
		if m.slashVisible {
			if m.slashIndex > 0 {
				m.slashIndex--
			}
			return m, nil
		}
		return m.historyPrev(), nil

	case "down":
		if m.slashVisible {
			if m.slashIndex < len(m.slashFiltered)-1 {
				m.slashIndex++
			}
			return m, nil
		}
		return m.historyNext(), nil

	case "enter":
		if m.slashVisible && len(m.slashFiltered) > 0 {
			cmd := m.slashFiltered[m.slashIndex]
			m.ti.SetValue("")
			m.refreshSlash()
			return m.execSlash(cmd.Name)
		}
		return m.runInput()
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.refreshSlash()
	return m, cmd
}

// runInput starts the typed command, or dispatches it as a slash command.
func (m model) runInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.ti.Value())
	if value == "" {
		return m, nil
	}
	if strings.HasPrefix(value, "/") {
		m.ti.SetValue("")
		m.refreshSlash()
		return m.execSlash(value)
	}
	m.notice = ""
	m.helpVisible = false
	m.term.Run(value)
	m.ti.SetValue("")
	m.refreshSlash()
	m.refreshOutput()
	return m, appendHistoryCmd(m.histPath, value)
}

func (m model) execSlash(name string) (tea.Model, tea.Cmd) {
	switch name {
	case "/fold", "/unfold":
		m.term.ToggleFold()
		m.refreshOutput()
	case "/kill", "/stop":
		m.term.Kill()
	case "/clear":
		m.ti.SetValue("")
		m.notice = ""
	case "/history":
		return m.historyPrev(), nil
	case "/settings":
		return m, settingsFormCmd()
	case "/help":
		return m, renderHelpCmd(m.width)
	case "/exit", "/quit":
		m.term.Kill()
		m.quitting = true
		return m, tea.Quit
	default:
		m.notice = "unknown command: " + name
	}
	return m, nil
}

func (m model) historyPrev() model {
	if len(m.history) == 0 {
		return m
	}
	if m.histIdx == len(m.history) {
		m.draft = m.ti.Value()
	}
	if m.histIdx > 0 {
		m.histIdx--
	}
	m.ti.SetValue(m.history[m.histIdx])
	m.ti.CursorEnd()
	m.refreshSlash()
	return m
}

func (m model) historyNext() model {
	if m.histIdx >= len(m.history) {
		return m
	}
	m.histIdx++
	if m.histIdx == len(m.history) {
		m.ti.SetValue(m.draft)
	} else {
		m.ti.SetValue(m.history[m.histIdx])
	}
	m.ti.CursorEnd()
	m.refreshSlash()
	return m
}

// refreshOutput re-renders the session's output view into the viewport and
// keeps the most recent lines visible.
func (m *model) refreshOutput() {
	if !m.vpReady {
		return
	}
	m.vp.SetContent(renderHighlighted(m.term.Output()))
	m.vp.GotoBottom()
}
