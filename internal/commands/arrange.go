package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/stmt/internal/gitops"
	"github.com/cleared-dev/stmt/internal/pipeline"
	"github.com/cleared-dev/stmt/internal/runlog"
)

func newArrangeCommand(configPath *string) *cobra.Command {
	var keep bool
	var commit bool

	cmd := &cobra.Command{
		Use:   "arrange [source] [output] [group]",
		Short: "Merge cleaned files into deduplicated monthly files",
		Long: "Reads every cleaned CSV under <source>/<group> and merges its\n" +
			"transactions into <output>/<group>/<year>/<MM_Mon>.csv, keyed by\n" +
			"transaction ID.",
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*configPath)
			if err != nil {
				return err
			}
			source := pick(args, 0, e.cfg.Paths.Clean)
			output := pick(args, 1, e.cfg.Paths.Arranged)
			group := pick(args, 2, e.cfg.Arrange.Group)
			return runArrange(e, source, output, group,
				keep || e.cfg.Arrange.Keep,
				commit || e.cfg.Git.AutoCommit)
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "merge into existing monthly files instead of rebuilding them")
	cmd.Flags().BoolVar(&commit, "commit", false, "commit the arranged output to git")

	return cmd
}

func runArrange(e *env, source, output, group string, keep, commit bool) error {
	rec := runlog.NewRecorder("arrange")
	arranger := pipeline.NewArranger(e.log, rec, pipeline.Options{Keep: keep})

	sum, err := arranger.Run(source, output, group)
	if err != nil {
		return fmt.Errorf("arrange: %w", err)
	}
	if err := e.saveRunLog(rec); err != nil {
		return err
	}

	if commit {
		author := gitops.Author{Name: e.cfg.Git.AuthorName, Email: e.cfg.Git.AuthorEmail}
		msg := fmt.Sprintf("arrange: %s (run %s)", group, rec.RunID())
		hash, err := gitops.CommitPath(sum.OutputPath, msg, author)
		if err != nil {
			return fmt.Errorf("committing arranged output: %w", err)
		}
		if hash != "" {
			e.log.Info().Str("commit", hash).Msg("Snapshot committed")
		}
	}

	fmt.Printf("Done: arranged %d of %d files into %s (%d monthly files, %d skipped)\n",
		sum.Processed(), sum.Files, sum.OutputPath, len(sum.Written), len(sum.Skipped))
	return nil
}
