// package search implements exact-match lookup over the raw rows of a contacts file.
//
// Search works on the file text rather than on decoded contacts: a row only needs three fields to be
// considered, its id is never interpreted. A row matches when any field equals the query exactly
// (case-sensitive, no substring matching).
package search

import (
	"fmt"
	"io"

	"github.com/desertthunder/contacts/internal/codec"
)

// Row is the raw fields of one matching line.
type Row []string

// Matches reports whether any field equals query.
func (r Row) Matches(query string) bool {
	for _, f := range r {
		if f == query {
			return true
		}
	}
	return false
}

// Filter returns the rows of contents matching query, in file order. Malformed rows are skipped.
func Filter(query, contents string, header bool) []Row {
	rows := []Row{}
	for _, line := range codec.Lines(contents, header) {
		fields, err := codec.DecodeRow(line.Text)
		if err != nil {
			continue
		}
		if row := Row(fields); row.Matches(query) {
			rows = append(rows, row)
		}
	}
	return rows
}

// Search filters contents and writes every match to sink as a delimited line.
//
// No match yields an empty result. The only failure is a write error on sink.
func Search(query, contents string, header bool, sink io.Writer) ([]Row, error) {
	rows := Filter(query, contents, header)
	for _, row := range rows {
		if err := codec.EncodeRow(sink, row); err != nil {
			return nil, fmt.Errorf("failed to write search result: %w", err)
		}
	}
	return rows, nil
}
