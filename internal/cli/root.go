package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"runpad/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "runpad",
	Short: "runpad – a single-command terminal session",
	Long: "runpad runs one command at a time, decodes its ANSI output into a " +
		"styled view and folds long output to the interesting tail. Starting a " +
		"new command kills the previous one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Pass child exit codes through untouched.
		var ee interface{ ExitCode() int }
		if errors.As(err, &ee) && ee.ExitCode() > 0 {
			os.Exit(ee.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
