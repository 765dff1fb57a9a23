package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/stmt/internal/model"
	"github.com/cleared-dev/stmt/internal/trxid"
)

// Header is the CSV header of cleaned and monthly transaction files.
const Header = "TrxId,Date,Description,Amount,Balance,Type"

const (
	numFields  = 6
	colID      = 0
	colDate    = 1
	colDesc    = 2
	colAmount  = 3
	colBalance = 4
	colType    = 5
)

// File is a cleaned or monthly transaction file: its header line and rows in
// file order.
type File struct {
	Header       string
	Transactions []model.Transaction
}

// ReadTransactions reads a cleaned transaction file. The first record is the
// header and is returned as-is.
func ReadTransactions(r io.Reader) (*File, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return &File{}, nil
	}

	f := &File{Header: strings.Join(records[0], ",")}
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		f.Transactions = append(f.Transactions, txn)
	}
	return f, nil
}

// WriteTransactions writes header followed by txns. An empty header writes
// the default Header.
func WriteTransactions(w io.Writer, header string, txns []model.Transaction) error {
	if header == "" {
		header = Header
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(strings.TrimSpace(header), ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a cleaned CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = txn.ID
	row[colDate] = txn.ISODate()
	row[colDesc] = txn.Description
	row[colAmount] = txn.AmountText
	row[colBalance] = txn.BalanceText
	row[colType] = txn.Type.String()
	return row
}

// UnmarshalTransaction converts a cleaned CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date := strings.ReplaceAll(record[colDate], "-", "")
	if len(date) != 8 {
		return model.Transaction{}, fmt.Errorf("parsing date %q", record[colDate])
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	var typ model.TrxType
	switch record[colType] {
	case model.Credit.String():
		typ = model.Credit
	case model.Debit.String():
		typ = model.Debit
	default:
		return model.Transaction{}, fmt.Errorf("parsing type %q", record[colType])
	}

	if err := checkID(record[colID], date, typ); err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		ID:          record[colID],
		Date:        date,
		Description: record[colDesc],
		Amount:      amount,
		Balance:     balance,
		AmountText:  record[colAmount],
		BalanceText: record[colBalance],
		Type:        typ,
		Line:        strings.Join(record, ","),
	}, nil
}

// checkID verifies that id encodes the row's own date and, for IDs of
// standard width, its type.
func checkID(id, date string, typ model.TrxType) error {
	if id == "" {
		return errors.New("missing transaction ID")
	}
	if !strings.HasPrefix(id, date) {
		return fmt.Errorf("transaction ID %q does not match date %s", id, model.ISODate(date))
	}
	// Overflowing amount fragments widen the ID past Len.
	if len(id) != trxid.Len {
		return nil
	}
	parts, err := trxid.Parse(id)
	if err != nil {
		return err
	}
	if parts.Type != typ {
		return fmt.Errorf("transaction ID %q does not match type %s", id, typ)
	}
	return nil
}
