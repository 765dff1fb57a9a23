// Package importer turns raw bank statement exports into normalized
// transactions.
//
// A raw export is a header line followed by data lines:
//
//	Date,Description,Amount,Balance
//	20160831,"TRANSFER FROM SOUTHDOWNS CARD NO. 7271 92-0436-2271 SONJA",20000,19048.98
//
// Either ',' or ';' may separate the columns. Lines are split naively on the
// delimiter; quoted fields containing the delimiter are not supported.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cleared-dev/stmt/internal/model"
)

var (
	// ErrEmptyFile means the file has no data lines after the header.
	ErrEmptyFile = errors.New("file empty or has no transactions")
	// ErrUndetectableDelimiter means the header contains neither ';' nor ','.
	ErrUndetectableDelimiter = errors.New("unable to detect CSV delimiter")
	// ErrMalformedHeader means the header is not Date,Description,Amount,Balance.
	ErrMalformedHeader = errors.New("column titles row missing or invalid")
	// ErrMalformedRow means a data line has fewer than four columns.
	ErrMalformedRow = errors.New("malformed row")
	// ErrInvalidDate means a date is not an eight digit YYYYMMDD value.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidAmount means an amount or balance is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Header column titles of a raw export, in order.
var headerTitles = []string{"Date", "Description", "Amount", "Balance"}

// Header returns the expected raw header for a delimiter.
func Header(delim string) string {
	return strings.Join(headerTitles, delim)
}

// DetectDelimiter returns ";" if the header line contains one, else "," if
// it contains one.
func DetectDelimiter(header string) (string, error) {
	switch {
	case strings.Contains(header, ";"):
		return ";", nil
	case strings.Contains(header, ","):
		return ",", nil
	}
	return "", ErrUndetectableDelimiter
}

// ValidateHeader checks that lines hold a header and at least one more line,
// and returns the header's delimiter.
func ValidateHeader(lines []string) (string, error) {
	if len(lines) < 2 {
		return "", ErrEmptyFile
	}
	delim, err := DetectDelimiter(lines[0])
	if err != nil {
		return "", err
	}
	if got := strings.TrimSpace(lines[0]); got != Header(delim) {
		return "", fmt.Errorf("%w: got %q", ErrMalformedHeader, got)
	}
	return delim, nil
}

// Result is a successfully normalized raw file.
type Result struct {
	Delimiter    string
	Transactions []model.Transaction // source order
}

// Parse validates and normalizes all lines of a raw file. The first invalid
// line rejects the whole file. Blank lines are ignored.
func Parse(lines []string) (*Result, error) {
	delim, err := ValidateHeader(lines)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		raw, err := ParseRow(line, delim)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txn, err := Normalize(raw, delim)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	if len(txns) == 0 {
		return nil, ErrEmptyFile
	}
	return &Result{Delimiter: delim, Transactions: txns}, nil
}

// DateRange returns the earliest and latest compact dates in txns.
func DateRange(txns []model.Transaction) (minDate, maxDate string) {
	for i, txn := range txns {
		if i == 0 || txn.Date < minDate {
			minDate = txn.Date
		}
		if i == 0 || txn.Date > maxDate {
			maxDate = txn.Date
		}
	}
	return minDate, maxDate
}
