package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// SlashCmd is one entry in the command palette.
type SlashCmd struct {
	Name    string
	Aliases []string
	Desc    string
}

var slashCmds = []SlashCmd{
	{Name: "/fold", Aliases: []string{"/unfold"}, Desc: "Toggle folded output view"},
	{Name: "/kill", Aliases: []string{"/stop"}, Desc: "Kill the running command"},
	{Name: "/clear", Desc: "Clear the command input"},
	{Name: "/history", Desc: "Cycle through command history"},
	{Name: "/settings", Desc: "Edit settings in a form"},
	{Name: "/help", Desc: "Show keybindings and usage"},
	{Name: "/exit", Aliases: []string{"/quit"}, Desc: "Exit runpad"},
}

// refreshSlash recomputes palette visibility and matches from the input.
func (m *model) refreshSlash() {
	v := m.ti.Value()
	if !strings.HasPrefix(v, "/") {
		m.slashVisible = false
		m.slashFiltered = nil
		m.slashIndex = 0
		return
	}
	m.slashVisible = true
	q := strings.TrimSpace(v)
	if sp := strings.IndexAny(q, " \t"); sp >= 0 {
		q = q[:sp]
	}
	m.slashFiltered = filterSlashCommands(q)
	if m.slashIndex >= len(m.slashFiltered) {
		m.slashIndex = 0
	}
}

// filterSlashCommands fuzzy-matches the query against names and aliases.
func filterSlashCommands(query string) []SlashCmd {
	if query == "/" {
		return slashCmds
	}
	q := strings.TrimPrefix(strings.ToLower(query), "/")

	// Build the haystack: every name and alias, mapped back to its command.
	var keys []string
	var owner []int
	for i, c := range slashCmds {
		keys = append(keys, strings.TrimPrefix(c.Name, "/"))
		owner = append(owner, i)
		for _, a := range c.Aliases {
			keys = append(keys, strings.TrimPrefix(a, "/"))
			owner = append(owner, i)
		}
	}
	seen := map[int]bool{}
	var res []SlashCmd
	for _, match := range fuzzy.Find(q, keys) {
		idx := owner[match.Index]
		if !seen[idx] {
			seen[idx] = true
			res = append(res, slashCmds[idx])
		}
	}
	return res
}
