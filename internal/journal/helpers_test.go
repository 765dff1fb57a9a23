package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/stmt/internal/model"
	"github.com/cleared-dev/stmt/internal/normalize"
	"github.com/cleared-dev/stmt/internal/trxid"
)

// txn builds a normalized transaction the way the importer does.
func txn(t *testing.T, date, desc, amount, balance string) model.Transaction {
	t.Helper()
	amt, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	bal, err := decimal.NewFromString(balance)
	require.NoError(t, err)

	typ := model.TypeOf(amt)
	return model.Transaction{
		ID:          trxid.Build(date, normalize.Fragment(desc), amt, bal, typ),
		Date:        date,
		Description: desc,
		Amount:      amt,
		Balance:     bal,
		AmountText:  amount,
		BalanceText: balance,
		Type:        typ,
	}
}
