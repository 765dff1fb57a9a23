// Package normalize scrubs bank transaction descriptions down to their
// meaningful words and derives the short description fragment used in IDs.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// FragmentLen is the width of a description fragment.
const FragmentLen = 6

// cardNumberLen is the length of the masked card number some banks append.
const cardNumberLen = 23

// cardNumberKeep is how many trailing card number digits survive.
const cardNumberKeep = 5

var multiSpace = regexp.MustCompile(`\s\s+`)

// noise is applied in order.
var noise = []struct{ old, new string }{
	{" FROM", ""},
	{" TO", ""},
	{"ABSA BANK", ""},
	{"IBANK", ""},
	{"ACB", ""},
	{"PURCHASE", ""},
	{"NOTIFIC FEE", ""},
	{":EXTERNAL", ""},
	{"DEPOSIT", ""},
	{"CASH DEP", "CASH"},
	{"SMS KENNISGEWINGS", ""},
	{"CARD NO", ""},
}

// Description cleans a raw description field. delim is the delimiter of the
// source file.
func Description(raw, delim string) string {
	s := strings.Map(keepRune, raw)
	if delim != "" {
		s = strings.ReplaceAll(s, delim, " ")
	}
	for _, n := range noise {
		s = strings.ReplaceAll(s, n.old, n.new)
	}
	s = multiSpace.ReplaceAllString(s, " ")
	s = truncateCardNumber(s)
	return strings.TrimSpace(s)
}

// Fragment returns the last FragmentLen non-space characters of a cleaned
// description, left-padded with '0' when shorter.
func Fragment(cleaned string) string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cleaned)
	if len(compact) <= FragmentLen {
		return strings.Repeat("0", FragmentLen-len(compact)) + compact
	}
	return compact[len(compact)-FragmentLen:]
}

func keepRune(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return r
	case strings.ContainsRune("/*-_+&#:| ", r):
		return r
	}
	return -1
}

// truncateCardNumber shortens a trailing 23 digit card number to its last
// five digits.
func truncateCardNumber(s string) string {
	i := strings.LastIndexByte(s, ' ')
	last := s[i+1:]
	if len(last) != cardNumberLen || !isDigits(last) {
		return s
	}
	return s[:i+1] + last[cardNumberLen-cardNumberKeep:]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
