package ui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"runpad/internal/settings"
	"runpad/internal/store"
	"runpad/internal/system"
	"runpad/internal/terminal"
)

// Model for TUI
type model struct {
	term     *terminal.Terminal
	relay    *relay
	settings *settings.Store
	quitting bool

	cwd      string
	width    int
	height   int

	// command input
	ti       textinput.Model
	history  []string
	histPath string
	histIdx  int // index into history while navigating; len(history) = live input
	draft    string

	// output pane
	vp      viewport.Model
	vpReady bool

	// status bar state
	now          time.Time
	git          system.GitInfo
	lastGitCheck time.Time

	// slash palette state
	slashVisible  bool
	slashFiltered []SlashCmd
	slashIndex    int
	notice        string

	// help overlay (glamour-rendered)
	helpVisible bool
	helpText    string
}

func initialModel(st *settings.Store) model {
	wd, _ := os.Getwd()
	r := newRelay()

	var spawner terminal.Spawner = terminal.ExecSpawner{}
	if st.UsePty() {
		spawner = terminal.PtySpawner{}
	}
	term := terminal.New(spawner, st, r.events(), wd)

	m := model{
		term:     term,
		relay:    r,
		settings: st,
		cwd:      wd,
	}

	ti := textinput.New()
	ti.Prompt = " > "
	ti.Placeholder = `Try "go test ./..."`
	ti.CharLimit = 4096
	ti.ShowSuggestions = true
	ti.Focus()
	m.ti = ti

	if p, err := store.HistoryPath(); err == nil {
		m.histPath = p
		if h, err := store.LoadHistory(p); err == nil {
			m.history = h
			m.ti.SetSuggestions(h)
		}
	}
	m.histIdx = len(m.history)
	return m
}

// InitialModel is the public constructor for app.
func InitialModel(st *settings.Store) tea.Model { return initialModel(st) }

func (m model) Init() tea.Cmd {
	return tea.Batch(waitEventCmd(m.relay), tickCmd(), gitInfoCmd(m.cwd))
}
