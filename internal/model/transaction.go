package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TrxType classifies a transaction by the sign of its amount.
type TrxType int

const (
	Credit TrxType = 1
	Debit  TrxType = 2
)

// String returns the single digit used in IDs and cleaned rows.
func (t TrxType) String() string {
	return fmt.Sprintf("%d", int(t))
}

// TypeOf returns Credit for amounts >= 0 and Debit otherwise.
func TypeOf(amount decimal.Decimal) TrxType {
	if amount.IsNegative() {
		return Debit
	}
	return Credit
}

// RawRow is one data line of a raw bank export, split into its four columns.
type RawRow struct {
	Date        string
	Description string
	Amount      string
	Balance     string
}

// Transaction is a normalized transaction as stored in cleaned and monthly files.
type Transaction struct {
	ID          string          // 32-char composite, see trxid.Build
	Date        string          // YYYYMMDD
	Description string          // scrubbed
	Amount      decimal.Decimal // negative = debit
	Balance     decimal.Decimal
	AmountText  string // source token, written back verbatim
	BalanceText string
	Type        TrxType
	Line        string // canonical serialized row
}

// ISODate returns the date as YYYY-MM-DD.
func (t Transaction) ISODate() string {
	return ISODate(t.Date)
}

// Key returns the (year, month) bucket of the transaction.
func (t Transaction) Key() GroupKey {
	return GroupKey{Year: t.Date[:4], Month: t.Date[4:6]}
}

// ISODate converts a compact YYYYMMDD date to YYYY-MM-DD.
func ISODate(compact string) string {
	if len(compact) != 8 {
		return compact
	}
	return compact[:4] + "-" + compact[4:6] + "-" + compact[6:8]
}
