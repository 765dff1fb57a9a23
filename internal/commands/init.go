package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmt/internal/config"
	"github.com/cleared-dev/stmt/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var prefix string
	var withGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a stmt.yaml and the working directory layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(pick(args, 0, "."))
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, prefix, withGit)
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "account prefix used by cleanup and arrange")
	cmd.Flags().BoolVar(&withGit, "git", false, "initialize a git repository and enable auto-commit")

	return cmd
}

func runInit(dir, prefix string, withGit bool) error {
	cfg := config.Default()
	cfg.Cleanup.Prefix = prefix
	cfg.Arrange.Group = prefix
	cfg.Git.AutoCommit = withGit

	dirs := []string{
		cfg.Paths.Raw,
		cfg.Paths.Clean,
		cfg.Paths.Arranged,
		filepath.Dir(cfg.Paths.RunLog),
	}
	if prefix != "" {
		dirs = append(dirs, filepath.Join(cfg.Paths.Raw, prefix))
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Raw exports stay out of version control.
	gitignore := cfg.Paths.Raw + "/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if withGit && !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
	}

	fmt.Printf("Initialized stmt project at %s\n", dir)
	return nil
}
