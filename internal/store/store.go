package store

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/contacts/internal/codec"
	"github.com/desertthunder/contacts/internal/models"
	"github.com/desertthunder/contacts/internal/shared"
)

// Options controls how a contacts file is interpreted.
type Options struct {
	Header bool        // First line is a header row
	Logger *log.Logger // Receives malformed-line notices; nil disables them
}

// Result holds the contacts decoded from a file.
type Result struct {
	Records   []models.Contact // Well-formed records in file order
	Malformed []int            // Line numbers that failed to decode
}

// Count returns the number of successfully decoded records.
func (r *Result) Count() int { return len(r.Records) }

// Parse decodes contents line by line. It never fails: malformed and blank lines are recorded and skipped.
func Parse(contents string, opts Options) *Result {
	result := &Result{Records: []models.Contact{}}

	for _, line := range codec.Lines(contents, opts.Header) {
		c, err := codec.Decode(line.Text)
		if err != nil {
			result.Malformed = append(result.Malformed, line.Number)
			if opts.Logger != nil {
				opts.Logger.Debug("skipping line", "line", line.Number, "error", err)
			}
			continue
		}
		result.Records = append(result.Records, c)
	}

	if opts.Logger != nil && len(result.Malformed) > 0 {
		opts.Logger.Warn("skipped malformed lines", "count", len(result.Malformed), "loaded", result.Count())
	}

	return result
}

// Load reads the file at path and parses it.
func Load(path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrIO, err)
	}
	return Parse(string(data), opts), nil
}

// Append encodes c and writes it to the end of w.
func Append(w io.Writer, c models.Contact) error {
	if err := codec.EncodeTo(w, c); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrWrite, err)
	}
	return nil
}

// ErrIDsExhausted is returned by [NextID] when the largest id is already the maximum uint64.
var ErrIDsExhausted = errors.New("no contact ids left above the largest id")

// NextID returns one more than the largest id in records, or 1 when there are none.
func NextID(records []models.Contact) (uint64, error) {
	var highest uint64
	for _, c := range records {
		if c.ID > highest {
			highest = c.ID
		}
	}
	if highest == math.MaxUint64 {
		return 0, ErrIDsExhausted
	}
	return highest + 1, nil
}

// Create makes an empty contacts file at path, writing the header row when opts.Header is set.
//
// An existing file is left untouched and reported as an error.
func Create(path string, opts Options) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrIO, err)
	}
	defer f.Close()

	if opts.Header {
		if _, err := io.WriteString(f, codec.EncodeHeader()); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrWrite, err)
		}
	}
	return nil
}
