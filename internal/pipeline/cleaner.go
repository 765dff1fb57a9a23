package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/stmt/internal/fsutil"
	"github.com/cleared-dev/stmt/internal/importer"
	"github.com/cleared-dev/stmt/internal/journal"
	"github.com/cleared-dev/stmt/internal/runlog"
)

// Cleaner converts raw bank exports into cleaned files named
// <prefix>_<minDate>_<maxDate>.csv.
type Cleaner struct {
	base
}

// NewCleaner creates a Cleaner. rec receives one entry per source file.
func NewCleaner(log zerolog.Logger, rec *runlog.Recorder, opts Options) *Cleaner {
	return &Cleaner{base{log: log, rec: rec, opts: opts}}
}

// Run cleans every CSV file below <sourceDir>/<prefix> into
// <outputDir>/<prefix>. Invalid files are skipped; filesystem errors abort
// the run.
func (c *Cleaner) Run(sourceDir, outputDir, prefix string) (*Summary, error) {
	if outputDir == "" {
		return nil, ErrMissingOutputDir
	}

	sum := &Summary{
		SourcePath: filepath.Join(sourceDir, prefix),
		OutputPath: filepath.Join(outputDir, prefix),
	}
	c.log.Info().
		Str("source", sum.SourcePath).
		Str("output", sum.OutputPath).
		Str("prefix", prefix).
		Msg("Cleanup start")

	if err := c.prepareOutput(sum.OutputPath); err != nil {
		return nil, err
	}

	files, err := fsutil.WalkCSV(sum.SourcePath)
	if err != nil {
		return nil, err
	}

	for _, path := range files {
		sum.Files++
		c.log.Info().Int("n", sum.Files).Str("file", path).Msg("Clean file")

		out, err := c.cleanFile(path, sum.OutputPath, prefix)
		if err != nil {
			if isRejection(err) {
				c.skip(sum, path, err)
				continue
			}
			return nil, err
		}
		sum.Written = append(sum.Written, out)
	}

	c.log.Info().
		Int("files", sum.Files).
		Int("written", len(sum.Written)).
		Int("skipped", len(sum.Skipped)).
		Msg("Cleanup done")
	return sum, nil
}

// cleanFile normalizes one raw file and writes the cleaned result. It
// returns the output path.
func (c *Cleaner) cleanFile(path, outputDir, prefix string) (string, error) {
	lines, err := fsutil.ReadLines(path)
	if err != nil {
		return "", rejection{err}
	}

	res, err := importer.Parse(lines)
	if err != nil {
		return "", rejection{err}
	}
	c.log.Info().Str("file", path).Str("delimiter", res.Delimiter).Msg("CSV delimiter")

	minDate, maxDate := importer.DateRange(res.Transactions)
	out := filepath.Join(outputDir, CleanedFileName(prefix, minDate, maxDate))

	rows := make([]string, 0, len(res.Transactions)+1)
	rows = append(rows, journal.Header)
	for _, txn := range res.Transactions {
		rows = append(rows, txn.Line)
	}

	created, err := fsutil.WriteLines(out, rows)
	if err != nil {
		return "", err
	}
	if created {
		c.log.Info().Str("dir", filepath.Dir(out)).Msg("Create directory")
	}
	c.log.Info().Str("path", out).Int("transactions", len(res.Transactions)).Msg("Save as")

	c.rec.Record(path, runlog.OutcomeWritten, fmt.Sprintf("%d transactions", len(res.Transactions)), out)
	return out, nil
}

// CleanedFileName returns <prefix>_<minDate>_<maxDate>.csv.
func CleanedFileName(prefix, minDate, maxDate string) string {
	return fmt.Sprintf("%s_%s_%s.csv", prefix, minDate, maxDate)
}
