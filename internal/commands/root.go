package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmt/internal/buildinfo"
	"github.com/cleared-dev/stmt/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "stmt",
		Short:   "Bank statement cleanup and monthly arrangement",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "path to stmt.yaml")

	rootCmd.AddCommand(
		newInitCommand(),
		newCleanupCommand(&configPath),
		newArrangeCommand(&configPath),
		newExportCommand(),
	)

	return rootCmd
}
