package settings

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunForm launches an interactive form editing the settings file.
func RunForm() error {
	current, _ := Load()

	lines := strconv.Itoa(current.MaxOutputLines)
	usePty := current.UsePty

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(22).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(22).Foreground(green).Bold(true)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("runpad settings").
				Description("Applied to the running session on the next render."),
			huh.NewInput().
				Title("Max output lines").
				Description("Folded output line cap (1-10000)").
				Value(&lines).
				Validate(func(v string) error {
					n, err := strconv.Atoi(v)
					if err != nil || n < 1 || n > 10000 {
						return fmt.Errorf("enter a number between 1 and 10000")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Run on a pty").
				Description("Gives child tools a tty for colors/progress").
				Value(&usePty),
		),
	).WithTheme(theme).WithWidth(64)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	n, _ := strconv.Atoi(lines)
	next := Settings{MaxOutputLines: n, UsePty: usePty}
	if err := Save(next); err != nil {
		return err
	}
	fmt.Println("\n✓ settings saved")
	return nil
}
