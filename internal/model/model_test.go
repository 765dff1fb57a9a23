package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		amount string
		want   TrxType
	}{
		{"20000", Credit},
		{"0", Credit},
		{"-0.01", Debit},
		{"-150.00", Debit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeOf(decimal.RequireFromString(tt.amount)), "amount %s", tt.amount)
	}
}

func TestTrxTypeString(t *testing.T) {
	assert.Equal(t, "1", Credit.String())
	assert.Equal(t, "2", Debit.String())
}

func TestISODate(t *testing.T) {
	assert.Equal(t, "2016-08-31", ISODate("20160831"))
	assert.Equal(t, "2016", ISODate("2016"))

	txn := Transaction{Date: "20160115"}
	assert.Equal(t, "2016-01-15", txn.ISODate())
	assert.Equal(t, GroupKey{Year: "2016", Month: "01"}, txn.Key())
}

func TestGroupKeyFileName(t *testing.T) {
	tests := []struct {
		month string
		want  string
	}{
		{"01", "01_Jan.csv"},
		{"06", "06_Jun.csv"},
		{"12", "12_Dec.csv"},
	}
	for _, tt := range tests {
		got, err := GroupKey{Year: "2016", Month: tt.month}.FileName()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestGroupKeyFileName_Invalid(t *testing.T) {
	for _, month := range []string{"00", "13", "xx", ""} {
		_, err := GroupKey{Year: "2016", Month: month}.FileName()
		assert.Error(t, err, "month %q", month)
	}
}

func TestGroupKeyString(t *testing.T) {
	assert.Equal(t, "2016-08", GroupKey{Year: "2016", Month: "08"}.String())
}
