// Package runlog keeps an append-only CSV record of every file a cleanup or
// arrange run looked at and what became of it.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Outcome is what a run did with one source file.
type Outcome string

const (
	OutcomeWritten Outcome = "written"
	OutcomeMerged  Outcome = "merged"
	OutcomeSkipped Outcome = "skipped"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp time.Time
	RunID     string
	Mode      string // "cleanup" or "arrange"
	Source    string
	Outcome   Outcome
	Details   string
	Output    string
}

// Header is the CSV header for run-log.csv.
const Header = "timestamp,run_id,mode,source,outcome,details,output"

const (
	numFields    = 7
	colTimestamp = 0
	colRunID     = 1
	colMode      = 2
	colSource    = 3
	colOutcome   = 4
	colDetails   = 5
	colOutput    = 6
)

// NewRunID returns a fresh identifier shared by all entries of one run.
func NewRunID() string {
	return uuid.NewString()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colMode] = e.Mode
	row[colSource] = e.Source
	row[colOutcome] = string(e.Outcome)
	row[colDetails] = e.Details
	row[colOutput] = e.Output
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		RunID:     record[colRunID],
		Mode:      record[colMode],
		Source:    record[colSource],
		Outcome:   Outcome(record[colOutcome]),
		Details:   record[colDetails],
		Output:    record[colOutput],
	}, nil
}

// Append writes entries to the log at path, creating the file, its
// directory and the header if needed.
func Append(path string, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating run log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries of the log at path.
// Returns an empty slice if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Recorder collects the entries of one run.
type Recorder struct {
	runID   string
	mode    string
	now     func() time.Time
	entries []Entry
}

// NewRecorder starts collecting entries for a new run of mode.
func NewRecorder(mode string) *Recorder {
	return &Recorder{runID: NewRunID(), mode: mode, now: time.Now}
}

// RunID returns the run's identifier.
func (r *Recorder) RunID() string {
	return r.runID
}

// Record adds an entry for source.
func (r *Recorder) Record(source string, outcome Outcome, details, output string) {
	r.entries = append(r.entries, Entry{
		Timestamp: r.now().UTC(),
		RunID:     r.runID,
		Mode:      r.mode,
		Source:    source,
		Outcome:   outcome,
		Details:   details,
		Output:    output,
	})
}

// Entries returns the collected entries.
func (r *Recorder) Entries() []Entry {
	return r.entries
}
