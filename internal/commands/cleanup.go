package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmt/internal/pipeline"
	"github.com/cleared-dev/stmt/internal/runlog"
)

func newCleanupCommand(configPath *string) *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "cleanup [source] [output] [prefix]",
		Short: "Normalize raw bank exports into cleaned files",
		Long: "Reads every CSV under <source>/<prefix>, assigns each transaction a\n" +
			"deterministic ID and writes one cleaned file per export to\n" +
			"<output>/<prefix>/<prefix>_<first>_<last>.csv.",
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			source := pick(args, 0, e.cfg.Paths.Raw)
			output := pick(args, 1, e.cfg.Paths.Clean)
			prefix := pick(args, 2, e.cfg.Cleanup.Prefix)
			return runCleanup(e, source, output, prefix, keep || e.cfg.Cleanup.Keep)
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "keep existing output instead of clearing it")

	return cmd
}

func runCleanup(e *env, source, output, prefix string, keep bool) error {
	rec := runlog.NewRecorder("cleanup")
	cleaner := pipeline.NewCleaner(e.log, rec, pipeline.Options{Keep: keep})

	sum, err := cleaner.Run(source, output, prefix)
	if err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	if err := e.saveRunLog(rec); err != nil {
		return err
	}

	fmt.Printf("Done: cleaned %d of %d files into %s (%d skipped)\n",
		len(sum.Written), sum.Files, sum.OutputPath, len(sum.Skipped))
	return nil
}
