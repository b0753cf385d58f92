package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"

	"runpad/internal/highlight"
)

// Render styles a session view for terminal display. Exported for the
// one-shot CLI path, which prints the same themed output as the TUI.
func Render(ht highlight.Text) string { return renderHighlighted(ht) }

// renderHighlighted applies the theme's styles to a session view by
// splitting the text at range boundaries and styling each segment with
// every range that covers it (so a color inside a bold span composes).
func renderHighlighted(ht highlight.Text) string {
	if len(ht.Ranges) == 0 {
		return ht.Text
	}
	set := map[int]struct{}{0: {}, len(ht.Text): {}}
	for _, r := range ht.Ranges {
		if r.Start >= 0 && r.Start <= len(ht.Text) {
			set[r.Start] = struct{}{}
		}
		if r.End >= 0 && r.End <= len(ht.Text) {
			set[r.End] = struct{}{}
		}
	}
	bounds := make([]int, 0, len(set))
	for p := range set {
		bounds = append(bounds, p)
	}
	sort.Ints(bounds)

	var sb strings.Builder
	for i := 0; i+1 < len(bounds); i++ {
		a, b := bounds[i], bounds[i+1]
		seg := ht.Text[a:b]
		st := lipgloss.NewStyle()
		styled := false
		for _, r := range ht.Ranges {
			if r.Start <= a && b <= r.End {
				st = applyTag(st, r.Tag)
				styled = true
			}
		}
		if styled && strings.TrimSpace(seg) != "" {
			// Style per line so multi-line segments do not leak backgrounds.
			lines := strings.Split(seg, "\n")
			for j, ln := range lines {
				lines[j] = st.Render(ln)
			}
			seg = strings.Join(lines, "\n")
		}
		sb.WriteString(seg)
	}
	return sb.String()
}

// renderInputBox draws a single-line bordered input box at the given width.
func renderInputBox(width int, content string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	if w < 10 {
		w = 10
	}
	inner := w - 2
	cw := xansi.StringWidth(content)
	if cw > inner {
		content = xansi.Truncate(content, inner, "")
		cw = inner
	}
	pad := inner - cw
	border := BorderStyle()
	var sb strings.Builder
	sb.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	sb.WriteString(border.Render("│"))
	sb.WriteString(content)
	if pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(border.Render("│") + "\n")
	sb.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	return sb.String()
}

// renderSlashOverlay draws the filtered palette under the input box.
func renderSlashOverlay(width int, cmds []SlashCmd, sel int) string {
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	accent := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary)
	dim := lipgloss.NewStyle().Foreground(Vitesse.Muted)
	var sb strings.Builder
	if len(cmds) == 0 {
		sb.WriteString(dim.Render("  no matches") + "\n")
		return sb.String()
	}
	const maxItems = 8
	if len(cmds) > maxItems {
		cmds = cmds[:maxItems]
		if sel >= maxItems {
			sel = maxItems - 1
		}
	}
	for i, c := range cmds {
		name := runewidth.FillRight(c.Name, 12)
		line := "  " + name + " " + c.Desc
		if xansi.StringWidth(line) > inner {
			line = xansi.Truncate(line, inner, "…")
		}
		if i == sel {
			sb.WriteString(accent.Render("›") + accent.Render(line[1:]) + "\n")
		} else {
			sb.WriteString(dim.Render(line) + "\n")
		}
	}
	return sb.String()
}

// renderStatusBar draws a single status bar line with left/right content.
func renderStatusBar(width int, left, right string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	lw := xansi.StringWidth(left)
	rw := xansi.StringWidth(right)
	if lw+rw > w {
		maxL := w - rw - 1
		if maxL < 0 {
			maxL = 0
		}
		left = xansi.Truncate(left, maxL, "…")
		lw = xansi.StringWidth(left)
	}
	pad := w - lw - rw
	if pad < 0 {
		pad = 0
	}
	return StatusBarBase().Render(left+strings.Repeat(" ", pad)+right) + "\n"
}
