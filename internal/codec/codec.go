package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/desertthunder/contacts/internal/models"
)

const (
	// Separator is the field separator of the contacts file.
	Separator = ','
	// FieldCount is the number of fields in a well-formed line.
	FieldCount = 3
)

// Header is the optional first line of a contacts file.
var Header = []string{"id", "name", "email"}

// ErrMalformed classifies a line that does not hold exactly one contact.
var ErrMalformed = errors.New("malformed line")

// Line is one line of a contacts file and its 1-based position.
type Line struct {
	Number int
	Text   string
}

// Lines splits file contents into numbered lines, dropping the first line when header is set.
//
// A trailing newline does not produce an extra empty line.
func Lines(contents string, header bool) []Line {
	if contents == "" {
		return nil
	}

	raw := strings.Split(strings.TrimSuffix(contents, "\n"), "\n")
	lines := make([]Line, 0, len(raw))
	for i, text := range raw {
		if header && i == 0 {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: strings.TrimSuffix(text, "\r")})
	}
	return lines
}

// DecodeRow splits a line into its raw fields without interpreting them.
//
// Stray quotes inside an unquoted field are kept literally (O"Brien).
func DecodeRow(line string) ([]string, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return nil, fmt.Errorf("%w: blank line", ErrMalformed)
	}

	r := csv.NewReader(strings.NewReader(line))
	r.Comma = Separator
	r.FieldsPerRecord = FieldCount
	r.LazyQuotes = true

	fields, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if _, err := r.Read(); err != io.EOF {
		return nil, fmt.Errorf("%w: more than one record on the line", ErrMalformed)
	}

	return fields, nil
}

// Decode parses one line into a [models.Contact].
//
// The id must be a base-10 unsigned integer with no surrounding whitespace. Name and email may be empty.
func Decode(line string) (models.Contact, error) {
	fields, err := DecodeRow(line)
	if err != nil {
		return models.Contact{}, err
	}

	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: invalid id %q", ErrMalformed, fields[0])
	}

	return models.Contact{ID: id, Name: fields[1], Email: fields[2]}, nil
}

// EncodeTo writes c to w as a single newline-terminated line.
func EncodeTo(w io.Writer, c models.Contact) error {
	return writeRow(w, []string{strconv.FormatUint(c.ID, 10), c.Name, c.Email})
}

// Encode returns the line for c, including its trailing newline.
func Encode(c models.Contact) string {
	var b strings.Builder
	// strings.Builder never fails a write
	_ = EncodeTo(&b, c)
	return b.String()
}

// EncodeHeader returns the header line, including its trailing newline.
func EncodeHeader() string {
	var b strings.Builder
	_ = writeRow(&b, Header)
	return b.String()
}

// EncodeRow writes raw fields to w as one line.
func EncodeRow(w io.Writer, fields []string) error {
	return writeRow(w, fields)
}

func writeRow(w io.Writer, fields []string) error {
	cw := csv.NewWriter(w)
	cw.Comma = Separator

	if err := cw.Write(fields); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
