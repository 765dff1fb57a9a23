package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/stmt/internal/fsutil"
	"github.com/cleared-dev/stmt/internal/journal"
	"github.com/cleared-dev/stmt/internal/runlog"
)

// ErrNoTransactions means a cleaned file holds a header but no rows.
var ErrNoTransactions = errors.New("no transactions")

// Arranger merges cleaned files into monthly files under
// <outputDir>/<group>/<year>/<MM_Mon>.csv.
type Arranger struct {
	base
}

// NewArranger creates an Arranger. rec receives one entry per source file.
func NewArranger(log zerolog.Logger, rec *runlog.Recorder, opts Options) *Arranger {
	return &Arranger{base{log: log, rec: rec, opts: opts}}
}

// Run merges every CSV file below <sourceDir>/<group> into the monthly files
// of <outputDir>/<group>. Monthly files never hold two rows with the same
// transaction ID.
func (a *Arranger) Run(sourceDir, outputDir, group string) (*Summary, error) {
	if outputDir == "" {
		return nil, ErrMissingOutputDir
	}

	sum := &Summary{
		SourcePath: filepath.Join(sourceDir, group),
		OutputPath: filepath.Join(outputDir, group),
	}
	a.log.Info().
		Str("source", sum.SourcePath).
		Str("output", sum.OutputPath).
		Str("group", group).
		Msg("Arrange start")

	if err := a.prepareOutput(sum.OutputPath); err != nil {
		return nil, err
	}

	files, err := fsutil.WalkCSV(sum.SourcePath)
	if err != nil {
		return nil, err
	}

	store := journal.NewService(sum.OutputPath, a.log)
	for _, path := range files {
		sum.Files++
		a.log.Info().Int("n", sum.Files).Str("file", path).Msg("Process file")

		written, err := a.arrangeFile(store, path)
		if err != nil {
			if isRejection(err) {
				a.skip(sum, path, err)
				continue
			}
			return nil, err
		}
		sum.Written = appendUnique(sum.Written, written...)
	}

	a.log.Info().
		Int("files", sum.Files).
		Int("monthly_files", len(sum.Written)).
		Int("skipped", len(sum.Skipped)).
		Msg("Arrange done")
	return sum, nil
}

// arrangeFile merges one cleaned file and returns the monthly files it
// touched.
func (a *Arranger) arrangeFile(store *journal.Service, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rejection{fmt.Errorf("opening %s: %w", path, err)}
	}
	defer f.Close()

	file, err := journal.ReadTransactions(f)
	if err != nil {
		return nil, rejection{err}
	}
	if len(file.Transactions) == 0 {
		return nil, rejection{ErrNoTransactions}
	}

	groups := journal.Classify(file.Transactions)
	a.log.Debug().Str("file", path).Int("months", groups.Len()).Msg("Classify")
	for _, key := range groups.Keys() {
		if _, err := store.MonthPath(key); err != nil {
			return nil, rejection{err}
		}
	}

	var written []string
	for _, key := range groups.Keys() {
		res, err := store.Merge(key, file.Header, groups.Batch(key))
		if err != nil {
			return nil, err
		}
		a.log.Info().
			Str("group", key.String()).
			Int("incoming", res.Incoming).
			Int("added", res.Added()).
			Int("replaced", res.Replaced).
			Int("stored", res.Stored).
			Msg("Merge")
		written = append(written, res.Path)
	}

	a.rec.Record(path, runlog.OutcomeMerged,
		fmt.Sprintf("%d transactions into %d monthly files", len(file.Transactions), len(written)),
		store.Root())
	return written, nil
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, have := range list {
			if have == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}
