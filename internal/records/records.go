package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one row of input: its fields in order, trimmed of surrounding
// whitespace.
type Record []string

// ParseError reports a failure to read records from an input.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseFile reads all records from the CSV file at path.
func ParseFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	defer f.Close()

	recs, err := Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return recs, nil
}

// Parse reads all records from r. Every record must have the same number of
// fields as the first one.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0 // same count as the first record
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	var recs []Record
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		recs = append(recs, Record(fields))
	}
	return recs, nil
}
