package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"runpad/internal/settings"
	"runpad/internal/terminal"
	"runpad/internal/ui"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("folded", false, "print only the folded tail of the output")
	runCmd.Flags().Bool("pty", false, "run the command on a pseudo-terminal")
	runCmd.Flags().StringP("dir", "C", "", "working directory for the command")
}

var runCmd = &cobra.Command{
	Use:   "run [command...]",
	Short: "Run one command and print its session view",
	Long: "Runs the command through the same session engine as the TUI: output " +
		"is ANSI-decoded, styled and optionally folded. Exits with the command's " +
		"exit code.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folded, _ := cmd.Flags().GetBool("folded")
		usePty, _ := cmd.Flags().GetBool("pty")
		dir, _ := cmd.Flags().GetString("dir")

		st := settings.NewStore()
		defer st.Close()

		var spawner terminal.Spawner = terminal.ExecSpawner{}
		if usePty || st.UsePty() {
			spawner = terminal.PtySpawner{}
		}
		term := terminal.New(spawner, st, terminal.Events{}, dir)
		term.Run(strings.Join(args, " "))
		term.WaitForCompletion()
		if !folded {
			term.ToggleFold()
		}

		fmt.Println(ui.Render(term.Status()))
		if out := ui.Render(term.Output()); out != "" {
			fmt.Print(out)
			if !strings.HasSuffix(out, "\n") {
				fmt.Println()
			}
		}

		if code, ok := term.ExitCode(); ok && code != 0 {
			return exitError{code: code}
		}
		return nil
	},
}

// exitError carries the child's exit code through cobra to main.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e exitError) ExitCode() int { return e.code }
