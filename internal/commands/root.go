// Package commands wires the CLI, the thin presentation adapter over the
// tracker service.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kharchpani-dev/kharchpani/internal/buildinfo"
	"github.com/kharchpani-dev/kharchpani/internal/config"
	"github.com/kharchpani-dev/kharchpani/internal/tracker"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "kharchpani",
		Short:   "Personal expense tracking on a single JSON document",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", "", "data directory (default: $KHARCHPANI_DIR or .)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand(&dir))
	rootCmd.AddCommand(newEditCommand(&dir))
	rootCmd.AddCommand(newDeleteCommand(&dir))
	rootCmd.AddCommand(newListCommand(&dir))
	rootCmd.AddCommand(newSummaryCommand(&dir))
	rootCmd.AddCommand(newImportCommand(&dir))
	rootCmd.AddCommand(newExportCommand(&dir))
	rootCmd.AddCommand(newPaidCommand(&dir))
	rootCmd.AddCommand(newThemeCommand(&dir))
	rootCmd.AddCommand(newLogCommand(&dir))

	return rootCmd
}

// newService resolves the data directory and builds the tracker service
// with that directory's configuration.
func newService(dirFlag string) (*tracker.Service, string, error) {
	dataDir := config.ResolveDir(dirFlag)
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, "", err
	}
	return tracker.NewService(dataDir, cfg), dataDir, nil
}
