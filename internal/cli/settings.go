package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"runpad/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().Bool("schema", false, "print the settings JSON schema and exit")
	settingsCmd.Flags().Bool("path", false, "print the settings file path and exit")
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit runpad settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		if ok, _ := cmd.Flags().GetBool("schema"); ok {
			out, err := settings.MarshalSchema()
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		if ok, _ := cmd.Flags().GetBool("path"); ok {
			p, err := settings.Path()
			if err != nil {
				return err
			}
			fmt.Println(p)
			return nil
		}
		return settings.RunForm()
	},
}
