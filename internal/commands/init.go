package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kharchpani-dev/kharchpani/internal/config"
	"github.com/kharchpani-dev/kharchpani/internal/gitops"
	"github.com/kharchpani-dev/kharchpani/internal/store"
)

func newInitCommand() *cobra.Command {
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new expense data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, useGit)
		},
	}

	cmd.Flags().BoolVar(&useGit, "git", false, "keep a git history of the data directory")

	return cmd
}

func runInit(dir string, useGit bool) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// An empty document, so the first load has something to read.
	docPath := filepath.Join(dir, store.FileName)
	if _, err := os.Stat(docPath); os.IsNotExist(err) {
		if err := store.WriteDocument(docPath, nil); err != nil {
			return fmt.Errorf("writing empty document: %w", err)
		}
	}

	cfg := config.Default()
	cfg.Git.AutoCommit = useGit
	if err := config.Save(dir, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if useGit && !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		if _, err := gitops.CommitAll(dir, "init: new expense directory", cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	fmt.Printf("Initialized expense directory at %s\n", dir)
	return nil
}
