package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"runpad/internal/store"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Bool("clear", false, "delete all saved history")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear saved command history",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.HistoryPath()
		if err != nil {
			return err
		}
		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			if err := store.ClearHistory(p); err != nil {
				return err
			}
			fmt.Println("history cleared")
			return nil
		}
		entries, err := store.LoadHistory(p)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Println(e)
		}
		return nil
	},
}
