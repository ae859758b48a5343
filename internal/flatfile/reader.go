package flatfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/transform"
)

// Record maps column names to trimmed field values for a single row.
//
// Columns whose raw value is empty are absent from the map, as are columns
// that become empty after stripping and trimming. Callers look fields up
// with the map's zero-value semantics, so "unset" and "empty" behave
// identically.
type Record map[string]string

// Get returns the value for a column, or "" when the column is unset.
func (r Record) Get(column string) string { return r[column] }

// Has reports whether the column carries a non-empty value.
func (r Record) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// ParseError reports a source file the reader could not tokenize. The whole
// file is atomic: when a ParseError is returned, no rows are returned with it.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadFile reads an entire delimited file under the given dialect and
// returns one Record per row, in file order. Any failure, from opening the
// file to a column-count mismatch mid-stream, discards all rows already
// read and returns a ParseError.
func ReadFile(path string, d Dialect) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{File: path, Err: err}
	}
	defer f.Close()

	records, err := readAll(transform.NewReader(f, d.Encoding.NewDecoder()), d)
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &ParseError{File: path, Line: pe.Line, Err: pe.Err}
		}
		return nil, &ParseError{File: path, Err: err}
	}
	return records, nil
}

// readAll tokenizes the decoded stream. Split out from ReadFile so tests can
// feed in-memory data without temp files.
func readAll(r io.Reader, d Dialect) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = d.FieldDelimiter
	cr.FieldsPerRecord = d.fieldCount()

	// The exports are machine-generated, not quote-disciplined: free-text
	// columns may carry stray double quotes mid-field.
	cr.LazyQuotes = true

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}

		rec := make(Record, len(d.Columns))
		for i, name := range d.Columns {
			value := row[i]
			if value == "" {
				continue
			}
			if d.StripTrailingByte {
				value = stripLastRune(value)
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			rec[name] = value
		}
		records = append(records, rec)
	}
}

// stripLastRune drops the final rune of a non-empty string.
func stripLastRune(s string) string {
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
