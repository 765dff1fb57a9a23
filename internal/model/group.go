package model

import (
	"fmt"
	"strconv"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// GroupKey identifies a monthly bucket.
type GroupKey struct {
	Year  string // "2016"
	Month string // "01".."12"
}

// String returns "YYYY-MM".
func (k GroupKey) String() string {
	return k.Year + "-" + k.Month
}

// MonthName returns the bucket's file stem, e.g. "01_Jan".
func (k GroupKey) MonthName() (string, error) {
	m, err := strconv.Atoi(k.Month)
	if err != nil || m < 1 || m > 12 {
		return "", fmt.Errorf("invalid month %q", k.Month)
	}
	return fmt.Sprintf("%02d_%s", m, monthNames[m-1]), nil
}

// FileName returns the monthly file name, e.g. "01_Jan.csv".
func (k GroupKey) FileName() (string, error) {
	stem, err := k.MonthName()
	if err != nil {
		return "", err
	}
	return stem + ".csv", nil
}
