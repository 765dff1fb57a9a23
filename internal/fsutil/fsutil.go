// Package fsutil holds the plain file operations the pipelines need: whole
// file line I/O, existence checks, CSV discovery and recursive removal.
package fsutil

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ReadLines returns the lines of a text file in order, split on '\n'. A
// trailing newline does not start an extra line and '\r' is left in place.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), nil
}

// WriteLines writes lines to path, one per line, replacing any existing
// file. Missing parent directories are created; created reports whether that
// happened.
func WriteLines(path string, lines []string) (created bool, err error) {
	created, err = EnsureDir(filepath.Dir(path))
	if err != nil {
		return false, err
	}

	f, err := os.Create(path)
	if err != nil {
		return created, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return created, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return created, fmt.Errorf("writing %s: %w", path, err)
	}
	return created, f.Close()
}

// EnsureDir creates dir and its parents if missing. An existing directory is
// not an error.
func EnsureDir(dir string) (created bool, err error) {
	if IsDir(dir) {
		return false, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return true, nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// List returns the full paths of the entries of dir, sorted by name.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = filepath.Join(dir, e.Name())
	}
	return paths, nil
}

// RemoveFile deletes a single file.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// RemoveTree deletes path. Directories are emptied depth first and then
// removed.
func RemoveTree(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	if !info.IsDir() {
		return RemoveFile(path)
	}

	children, err := List(path)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := RemoveTree(child); err != nil {
			return err
		}
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing directory %s: %w", path, err)
	}
	return nil
}

// ClearDir removes every entry inside dir, leaving dir itself in place.
// It returns the removed top-level paths.
func ClearDir(dir string) ([]string, error) {
	children, err := List(dir)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if err := RemoveTree(child); err != nil {
			return nil, err
		}
	}
	return children, nil
}

// IsCSV reports whether name has a .csv extension, ignoring case.
func IsCSV(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}

// WalkCSV returns every CSV file below root, recursing into subdirectories,
// in lexical order. A missing root yields no files.
func WalkCSV(root string) ([]string, error) {
	if !Exists(root) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsCSV(d.Name()) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}
