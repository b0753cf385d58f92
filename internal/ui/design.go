package ui

import (
	"github.com/charmbracelet/lipgloss"

	"runpad/internal/highlight"
)

// Design centralizes the TUI color palette and common styles.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color
	Blue    lipgloss.Color
	Yellow  lipgloss.Color
	Magenta lipgloss.Color
	Cyan    lipgloss.Color
	Red     lipgloss.Color

	Text      lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color

	Bg     lipgloss.Color
	Border lipgloss.Color

	BarFG lipgloss.AdaptiveColor
	BarBG lipgloss.AdaptiveColor
}

// Vitesse defines the current global design theme for the TUI.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Magenta: lipgloss.Color("#d9739f"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),

	Bg:     lipgloss.Color("#181818"),
	Border: lipgloss.Color("#252525"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// BorderStyle returns a style with the standard border color.
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Border)
}

// StatusBarBase returns the base style for the status bar.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// applyTag layers one highlight tag's visual attributes onto st.
// Overlapping ranges (a color inside a bold span) compose by repeated
// application.
func applyTag(st lipgloss.Style, tag highlight.Tag) lipgloss.Style {
	switch tag {
	case highlight.TagKeyword:
		return st.Foreground(Vitesse.Primary)
	case highlight.TagPunctuation:
		return st.Foreground(Vitesse.Muted)
	case highlight.TagTime:
		return st.Foreground(Vitesse.Blue)
	case highlight.TagStatusOK:
		return st.Foreground(Vitesse.Primary).Bold(true)
	case highlight.TagStatusErr:
		return st.Foreground(Vitesse.Red).Bold(true)
	case highlight.TagPath:
		return st.Foreground(Vitesse.Cyan).Underline(true)
	case highlight.TagError:
		return st.Foreground(Vitesse.Red).Bold(true)
	case highlight.TagANSIBold:
		return st.Bold(true)
	case highlight.TagANSIDim:
		return st.Faint(true)
	case highlight.TagANSIUnderline:
		return st.Underline(true)
	case highlight.TagANSIRed:
		return st.Foreground(Vitesse.Red)
	case highlight.TagANSIGreen:
		return st.Foreground(Vitesse.Primary)
	case highlight.TagANSIYellow:
		return st.Foreground(Vitesse.Yellow)
	case highlight.TagANSIBlue:
		return st.Foreground(Vitesse.Blue)
	case highlight.TagANSIMagenta:
		return st.Foreground(Vitesse.Magenta)
	case highlight.TagANSICyan:
		return st.Foreground(Vitesse.Cyan)
	case highlight.TagANSIWhite:
		return st.Foreground(Vitesse.Text)
	}
	return st
}
