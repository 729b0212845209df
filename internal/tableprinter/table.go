package tableprinter

import (
	"unicode/utf8"

	"github.com/PhilipKram/rtab/internal/records"
)

// Table holds parsed records together with the width reserved for each
// column.
type Table struct {
	Records []records.Record
	Widths  []int
}

// NewTable builds a Table from recs, computing column widths once.
func NewTable(recs []records.Record) *Table {
	return &Table{
		Records: recs,
		Widths:  CalculateWidths(recs),
	}
}

// CalculateWidths returns the maximum field length, in characters, for each
// column. The column count is taken from the first record; fields beyond it
// are ignored.
func CalculateWidths(recs []records.Record) []int {
	if len(recs) == 0 {
		return []int{}
	}

	widths := make([]int, len(recs[0]))
	for _, rec := range recs {
		for i, field := range rec {
			if i >= len(widths) {
				break
			}
			if n := utf8.RuneCountInString(field); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// cell returns the field at column i of rec, or "" when rec is short.
func cell(rec records.Record, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

// padRight left-justifies s in a field of length characters.
func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + spaces(length-n)
}
