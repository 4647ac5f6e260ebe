package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kharchpani-dev/kharchpani/internal/config"
	"github.com/kharchpani-dev/kharchpani/internal/prefs"
)

func newThemeCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Show or set the UI theme preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir := config.ResolveDir(*dir)

			if len(args) == 0 {
				theme, err := prefs.LoadTheme(dataDir)
				if err != nil {
					return err
				}
				fmt.Println(theme)
				return nil
			}

			if err := prefs.SaveTheme(dataDir, args[0]); err != nil {
				return err
			}
			fmt.Printf("Theme set to %s\n", args[0])
			return nil
		},
	}
}
