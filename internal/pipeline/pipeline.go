// Package pipeline runs the two batch modes over a directory tree:
// cleanup (raw exports to cleaned files) and arrange (cleaned files to
// monthly files).
package pipeline

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/stmt/internal/fsutil"
	"github.com/cleared-dev/stmt/internal/runlog"
)

// ErrMissingOutputDir is returned when no output directory was given.
var ErrMissingOutputDir = errors.New("output directory must have a value")

// Skip records a source file that was not processed.
type Skip struct {
	Path   string
	Reason error
}

// Summary describes a finished run.
type Summary struct {
	SourcePath string
	OutputPath string
	Files      int      // CSV files found
	Written    []string // output files written, in order
	Skipped    []Skip
}

// Processed returns the number of source files that produced output.
func (s *Summary) Processed() int {
	return s.Files - len(s.Skipped)
}

// Options are shared by Cleaner and Arranger.
type Options struct {
	// Keep leaves existing output in place instead of clearing the output
	// directory first.
	Keep bool
}

// base holds what both modes share: logging, the run log and output
// directory preparation.
type base struct {
	log  zerolog.Logger
	rec  *runlog.Recorder
	opts Options
}

// prepareOutput creates the output directory and, unless Keep is set,
// deletes everything inside it.
func (b *base) prepareOutput(dir string) error {
	created, err := fsutil.EnsureDir(dir)
	if err != nil {
		return err
	}
	if created {
		b.log.Info().Str("dir", dir).Msg("Create directory")
	}
	if b.opts.Keep {
		return nil
	}

	removed, err := fsutil.ClearDir(dir)
	if err != nil {
		return fmt.Errorf("clearing output directory: %w", err)
	}
	for _, path := range removed {
		b.log.Info().Str("path", path).Msg("Delete")
	}
	return nil
}

func (b *base) skip(sum *Summary, path string, reason error) {
	b.log.Warn().Str("file", path).Err(reason).Msg("Skip file")
	sum.Skipped = append(sum.Skipped, Skip{Path: path, Reason: reason})
	b.rec.Record(path, runlog.OutcomeSkipped, reason.Error(), "")
}
