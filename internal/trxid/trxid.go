// Package trxid builds and parses transaction IDs.
//
// An ID is a fixed-width concatenation of a transaction's own fields:
//
//	20160831 1SONJA 00200000 +01904898 1
//	date     desc   amount   balance   type
//
// Identical fields always produce the same ID, so the ID doubles as the
// deduplication key. It begins with the date, so IDs sort chronologically.
package trxid

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/stmt/internal/model"
)

const (
	// Len is the width of an ID whose fields fit their fragments.
	Len = dateLen + descLen + amountLen + balanceLen + typeLen

	dateLen    = 8
	descLen    = 6
	amountLen  = 8
	balanceLen = 1 + amountLen
	typeLen    = 1
)

// Parts holds the fragments of a parsed ID.
type Parts struct {
	Date    string
	Desc    string
	Amount  string
	Balance string
	Type    model.TrxType
}

// Build returns the ID for a transaction. date is YYYYMMDD and descFrag is
// a normalize.Fragment. Amounts wider than their fragment are not rejected;
// they make the ID longer than Len.
func Build(date, descFrag string, amount, balance decimal.Decimal, typ model.TrxType) string {
	var b strings.Builder
	b.Grow(Len)
	b.WriteString(date)
	b.WriteString(descFrag)
	b.WriteString(AmountFragment(amount))
	b.WriteString(BalanceFragment(balance))
	b.WriteString(typ.String())
	return b.String()
}

// AmountFragment returns the digits of |amount| without the decimal point,
// left-padded with '0' to 8 characters. Whole amounts carry one fractional
// zero, so 20000 encodes as "00200000".
func AmountFragment(amount decimal.Decimal) string {
	return zeroPad(digits(amount.Abs()), amountLen)
}

// BalanceFragment returns a sign character followed by the AmountFragment
// encoding of |balance|.
func BalanceFragment(balance decimal.Decimal) string {
	sign := "+"
	if balance.IsNegative() {
		sign = "-"
	}
	return sign + zeroPad(digits(balance.Abs()), amountLen)
}

// Parse splits an ID of exactly Len characters into its fragments.
func Parse(id string) (Parts, error) {
	if len(id) != Len {
		return Parts{}, fmt.Errorf("invalid transaction ID %q: expected %d characters, got %d", id, Len, len(id))
	}

	rest := id
	take := func(n int) string {
		s := rest[:n]
		rest = rest[n:]
		return s
	}

	p := Parts{
		Date:    take(dateLen),
		Desc:    take(descLen),
		Amount:  take(amountLen),
		Balance: take(balanceLen),
	}
	if !isDigits(p.Date) {
		return Parts{}, fmt.Errorf("invalid date in transaction ID %q", id)
	}
	if p.Balance[0] != '+' && p.Balance[0] != '-' {
		return Parts{}, fmt.Errorf("invalid balance sign in transaction ID %q", id)
	}

	switch t := take(typeLen); t {
	case model.Credit.String():
		p.Type = model.Credit
	case model.Debit.String():
		p.Type = model.Debit
	default:
		return Parts{}, fmt.Errorf("invalid type %q in transaction ID %q", t, id)
	}
	return p, nil
}

// GroupKeyOf returns the (year, month) bucket encoded at the front of an ID.
func GroupKeyOf(id string) (model.GroupKey, error) {
	if len(id) < dateLen || !isDigits(id[:dateLen]) {
		return model.GroupKey{}, fmt.Errorf("invalid transaction ID %q", id)
	}
	return model.GroupKey{Year: id[:4], Month: id[4:6]}, nil
}

// digits renders d in its shortest form with at least one fractional digit
// and drops the decimal point.
func digits(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return strings.Replace(s, ".", "", 1)
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
