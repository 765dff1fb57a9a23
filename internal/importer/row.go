package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/stmt/internal/journal"
	"github.com/cleared-dev/stmt/internal/model"
	"github.com/cleared-dev/stmt/internal/normalize"
	"github.com/cleared-dev/stmt/internal/trxid"
)

const (
	numFields  = 4
	colDate    = 0
	colDesc    = 1
	colAmount  = 2
	colBalance = 3
)

// ParseRow splits a raw data line into its columns. Columns past the fourth
// are ignored.
func ParseRow(line, delim string) (model.RawRow, error) {
	cols := strings.Split(strings.TrimSpace(line), delim)
	if len(cols) < numFields {
		return model.RawRow{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRow, numFields, len(cols))
	}
	return model.RawRow{
		Date:        cols[colDate],
		Description: cols[colDesc],
		Amount:      cols[colAmount],
		Balance:     cols[colBalance],
	}, nil
}

// Normalize converts a raw row into a normalized transaction with its ID and
// canonical line.
func Normalize(raw model.RawRow, delim string) (model.Transaction, error) {
	if !validDate(raw.Date) {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw.Date)
	}

	amountText := strings.TrimSpace(raw.Amount)
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: amount %q", ErrInvalidAmount, raw.Amount)
	}

	balanceText := strings.TrimSpace(raw.Balance)
	balance, err := decimal.NewFromString(balanceText)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: balance %q", ErrInvalidAmount, raw.Balance)
	}

	desc := normalize.Description(raw.Description, delim)
	typ := model.TypeOf(amount)

	txn := model.Transaction{
		ID:          trxid.Build(raw.Date, normalize.Fragment(desc), amount, balance, typ),
		Date:        raw.Date,
		Description: desc,
		Amount:      amount,
		Balance:     balance,
		AmountText:  amountText,
		BalanceText: balanceText,
		Type:        typ,
	}
	txn.Line = FormatLine(txn)
	return txn, nil
}

// FormatLine renders the canonical cleaned row:
// id,YYYY-MM-DD,description,amount,balance,type.
func FormatLine(txn model.Transaction) string {
	return strings.Join(journal.MarshalTransaction(txn), ",")
}

// validDate accepts eight ASCII digits that are not all zero.
func validDate(s string) bool {
	if len(s) != 8 {
		return false
	}
	nonZero := false
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
		if s[i] != '0' {
			nonZero = true
		}
	}
	return nonZero
}
