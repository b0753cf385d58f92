package ui

import (
	"context"
	"os"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"runpad/internal/store"
	"runpad/internal/system"
)

// Commands

// waitEventCmd blocks on the relay channel and resurfaces session events as
// Bubble Tea messages. Re-issued after every delivery.
func waitEventCmd(r *relay) tea.Cmd {
	return func() tea.Msg {
		k, ok := <-r.ch
		if !ok {
			return nil
		}
		return sessionEventMsg{kind: k}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func gitInfoCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		info, _ := system.GetGitInfo(ctx, dir)
		return gitInfoMsg{info: info}
	}
}

// settingsFormCmd suspends the TUI and runs the settings form in its place.
// Saved changes reach the session through the settings store's file watcher.
func settingsFormCmd() tea.Cmd {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	return tea.ExecProcess(exec.Command(exe, "settings"), func(err error) tea.Msg {
		if err != nil {
			system.Logger.Warn("settings form failed", "err", err)
		}
		return nil
	})
}

// appendHistoryCmd persists a ran command and returns the refreshed list.
func appendHistoryCmd(path, command string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		entries, err := store.AppendHistory(path, command)
		if err != nil {
			system.Logger.Warn("history save failed", "err", err)
			return nil
		}
		return historySavedMsg{entries: entries}
	}
}
