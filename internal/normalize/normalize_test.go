package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescription(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		delim string
		want  string
	}{
		{
			name:  "statement sample",
			raw:   `"TRANSFER FROM    SOUTHDOWNS CARD NO. 7271 92-0436-2271 SONJA"`,
			delim: ",",
			want:  "TRANSFER SOUTHDOWNS 7271 92-0436-2271 SONJA",
		},
		{
			name:  "disallowed characters dropped",
			raw:   "SHOP@HOME (PTY) LTD!",
			delim: ",",
			want:  "SHOPHOME PTY LTD",
		},
		{
			name:  "allowed punctuation kept",
			raw:   "A/B *C -D _E +F &G #H :I |J",
			delim: ",",
			want:  "A/B *C -D _E +F &G #H :I |J",
		},
		{
			name:  "bank noise removed",
			raw:   "ABSA BANK IBANK PAYMENT TO LANDLORD",
			delim: ",",
			want:  "PAYMENT LANDLORD",
		},
		{
			name:  "purchase and fees",
			raw:   "PURCHASE SPAR NOTIFIC FEE",
			delim: ";",
			want:  "SPAR",
		},
		{
			name:  "cash deposit",
			raw:   "CASH DEP BRANCH",
			delim: ",",
			want:  "CASH BRANCH",
		},
		{
			name:  "deposit removed",
			raw:   "ACB CREDIT DEPOSIT:EXTERNAL",
			delim: ",",
			want:  "CREDIT",
		},
		{
			name:  "sms fee",
			raw:   "SMS KENNISGEWINGS 0001",
			delim: ",",
			want:  "0001",
		},
		{
			name:  "whitespace collapsed",
			raw:   "  GROCER    STORE   ",
			delim: ",",
			want:  "GROCER STORE",
		},
		{
			name:  "empty",
			raw:   "",
			delim: ",",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Description(tt.raw, tt.delim))
		})
	}
}

func TestDescription_TruncatesCardNumber(t *testing.T) {
	card := "12345678901234567890123"
	assert.Len(t, card, 23)

	got := Description("FUEL STATION "+card, ",")
	assert.Equal(t, "FUEL STATION 90123", got)
}

func TestDescription_KeepsOtherTrailingNumbers(t *testing.T) {
	tests := []string{
		"FUEL STATION 1234567890123456789012",   // 22 digits
		"FUEL STATION 123456789012345678901234", // 24 digits
		"FUEL STATION 1234567890123456789012X",  // not numeric
	}
	for _, raw := range tests {
		assert.Equal(t, raw, Description(raw, ","))
	}
}

func TestDescription_CardNumberOnly(t *testing.T) {
	assert.Equal(t, "90123", Description("12345678901234567890123", ","))
}

func TestFragment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TRANSFER SOUTHDOWNS 7271 92-0436-2271 SONJA", "1SONJA"},
		{"CASH", "00CASH"},
		{"A B", "0000AB"},
		{"ABCDEF", "ABCDEF"},
		{"", "000000"},
		{"GROCER STORE", "RSTORE"},
	}
	for _, tt := range tests {
		got := Fragment(tt.in)
		assert.Equal(t, tt.want, got, "Fragment(%q)", tt.in)
		assert.Len(t, got, FragmentLen)
	}
}

func TestFragment_IgnoresAllWhitespace(t *testing.T) {
	assert.Equal(t, Fragment("ABC DEF"), Fragment(strings.ReplaceAll("ABC DEF", " ", "\t")))
}
