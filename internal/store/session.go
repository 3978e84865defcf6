package store

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/desertthunder/contacts/internal/codec"
	"github.com/desertthunder/contacts/internal/models"
	"github.com/desertthunder/contacts/internal/shared"
)

// Session is an open contacts file together with the records loaded from it.
type Session struct {
	path     string
	file     *os.File
	opts     Options
	contents strings.Builder
	result   *Result
}

// Open opens the contacts file for reading and appending, then loads it.
func Open(path string, opts Options) (*Session, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrIO, err)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", shared.ErrIO, err)
	}

	s := &Session{path: path, file: f, opts: opts}
	s.contents.Write(data)
	s.result = Parse(s.contents.String(), opts)
	return s, nil
}

// Path returns the path of the underlying file.
func (s *Session) Path() string { return s.path }

// Records returns the loaded contacts, including those added during this session.
func (s *Session) Records() []models.Contact { return s.result.Records }

// Count returns the number of loaded contacts.
func (s *Session) Count() int { return s.result.Count() }

// Malformed returns the line numbers skipped while loading.
func (s *Session) Malformed() []int { return s.result.Malformed }

// Contents returns the raw file text as of the last write.
func (s *Session) Contents() string { return s.contents.String() }

// Add assigns the next id to a new contact, appends it to the file and to the loaded records.
func (s *Session) Add(name, email string) (models.Contact, error) {
	if s.file == nil {
		return models.Contact{}, fmt.Errorf("%w: session is closed", shared.ErrWrite)
	}

	id, err := NextID(s.result.Records)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}

	c := models.NewContact(id, name, email)
	if err := c.Validate(); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", shared.ErrInvalidInput, err)
	}

	var line strings.Builder
	switch current := s.contents.String(); {
	case current == "" && s.opts.Header:
		line.WriteString(codec.EncodeHeader())
	case current != "" && !strings.HasSuffix(current, "\n"):
		line.WriteString("\n")
	}

	if err := Append(&line, c); err != nil {
		return models.Contact{}, err
	}

	if _, err := io.WriteString(s.file, line.String()); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %v", shared.ErrWrite, err)
	}

	s.contents.WriteString(line.String())
	s.result.Records = append(s.result.Records, c)
	return c, nil
}

// Close releases the file handle.
func (s *Session) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
