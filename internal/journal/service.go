package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/stmt/internal/model"
)

// Service stores monthly transaction files under
// <root>/<year>/<MM_Mon>.csv.
type Service struct {
	root string
	log  zerolog.Logger
}

// NewService creates a journal Service rooted at root.
func NewService(root string, log zerolog.Logger) *Service {
	return &Service{root: root, log: log}
}

// Root returns the directory holding the year directories.
func (s *Service) Root() string {
	return s.root
}

// MergeResult describes one monthly file after a merge.
type MergeResult struct {
	Key      model.GroupKey
	Path     string
	Existing int // rows before the merge
	Incoming int // rows in the batch
	Replaced int // stored rows whose line the batch changed
	Stored   int // rows after the merge
}

// Added returns how many new IDs the merge contributed.
func (r MergeResult) Added() int {
	return r.Stored - r.Existing
}

// Merge loads the monthly file for key if it exists, adds batch to it and
// rewrites it sorted by ID. header replaces the stored header line.
func (s *Service) Merge(key model.GroupKey, header string, batch []model.Transaction) (MergeResult, error) {
	path, err := s.MonthPath(key)
	if err != nil {
		return MergeResult{}, err
	}

	existing, err := s.ReadMonth(key)
	if err != nil {
		return MergeResult{}, err
	}

	var set RecordSet
	if existing != nil {
		set.Extend(existing.Transactions)
	}
	before := set.Len()

	replaced := 0
	for _, txn := range batch {
		if old, ok := set.Get(txn.ID); ok && !sameRow(old, txn) {
			replaced++
		}
	}
	set.Extend(batch)

	if err := s.writeMonth(path, header, set.Sorted()); err != nil {
		return MergeResult{}, err
	}

	return MergeResult{
		Key:      key,
		Path:     path,
		Existing: before,
		Incoming: len(batch),
		Replaced: replaced,
		Stored:   set.Len(),
	}, nil
}

func sameRow(a, b model.Transaction) bool {
	return strings.Join(MarshalTransaction(a), ",") == strings.Join(MarshalTransaction(b), ",")
}

// ReadMonth reads the monthly file for key. It returns nil if the file does
// not exist.
func (s *Service) ReadMonth(key model.GroupKey) (*File, error) {
	path, err := s.MonthPath(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening monthly file %s: %w", path, err)
	}
	defer f.Close()

	s.log.Debug().Str("path", path).Msg("Open")

	file, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading monthly file %s: %w", path, err)
	}
	return file, nil
}

// MonthPath returns the path of the monthly file for key.
func (s *Service) MonthPath(key model.GroupKey) (string, error) {
	name, err := key.FileName()
	if err != nil {
		return "", fmt.Errorf("monthly file for %s: %w", key, err)
	}
	return filepath.Join(s.root, key.Year, name), nil
}

func (s *Service) writeMonth(path, header string, txns []model.Transaction) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating monthly dir: %w", err)
		}
		s.log.Info().Str("dir", dir).Msg("Create directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating monthly file %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteTransactions(f, header, txns); err != nil {
		return fmt.Errorf("writing monthly file %s: %w", path, err)
	}
	return f.Close()
}
