package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/desertthunder/contacts/internal/models"
	"github.com/desertthunder/contacts/internal/shared"
	tu "github.com/desertthunder/contacts/internal/testing"
)

func TestSession(t *testing.T) {
	t.Run("Open loads records", func(t *testing.T) {
		path := tu.MustWriteFile(t, t.TempDir(), "contacts.csv", "1,Alice,alice@x.com\n\n2,Bob,\n")

		s, err := Open(path, Options{})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		if s.Count() != 2 {
			t.Errorf("Count() = %d, want 2", s.Count())
		}
		if len(s.Malformed()) != 1 {
			t.Errorf("Malformed() = %v, want one entry", s.Malformed())
		}
		if s.Path() != path {
			t.Errorf("Path() = %s, want %s", s.Path(), path)
		}
	})

	t.Run("Open missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "missing.csv"), Options{})
		if !errors.Is(err, shared.ErrIO) {
			t.Errorf("expected ErrIO, got %v", err)
		}
	})

	t.Run("Add refuses to reuse an id after the maximum", func(t *testing.T) {
		contents := "18446744073709551615,Max,\n"
		path := tu.MustWriteFile(t, t.TempDir(), "contacts.csv", contents)

		s, err := Open(path, Options{})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		for _, name := range []string{"A", "B"} {
			_, err := s.Add(name, "")
			if !errors.Is(err, shared.ErrInvalidInput) || !errors.Is(err, ErrIDsExhausted) {
				t.Errorf("Add(%q) error = %v, want ErrInvalidInput wrapping ErrIDsExhausted", name, err)
			}
		}

		if s.Count() != 1 {
			t.Errorf("Count() = %d, want 1", s.Count())
		}
		if got := tu.MustReadFile(t, path); got != contents {
			t.Errorf("file changed to %q", got)
		}
	})

	t.Run("Add appends and updates loaded records", func(t *testing.T) {
		path := tu.MustWriteFile(t, t.TempDir(), "contacts.csv", "1,Alice,alice@x.com\n7,Bob,\n")

		s, err := Open(path, Options{})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}

		c, err := s.Add(" Carol ", "")
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if c != (models.Contact{ID: 8, Name: "Carol"}) {
			t.Errorf("Add() = %+v", c)
		}
		if s.Count() != 3 {
			t.Errorf("Count() after Add = %d, want 3", s.Count())
		}
		if s.Contents() != "1,Alice,alice@x.com\n7,Bob,\n8,Carol,\n" {
			t.Errorf("Contents() = %q", s.Contents())
		}
		if err := s.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		if got := tu.MustReadFile(t, path); got != "1,Alice,alice@x.com\n7,Bob,\n8,Carol,\n" {
			t.Errorf("file contents = %q", got)
		}

		reopened, err := Open(path, Options{})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer reopened.Close()
		if reopened.Count() != 3 {
			t.Errorf("reloaded Count() = %d, want 3", reopened.Count())
		}
	})

	t.Run("Add terminates an unterminated last line", func(t *testing.T) {
		path := tu.MustWriteFile(t, t.TempDir(), "contacts.csv", "1,Alice,")

		s, err := Open(path, Options{})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if _, err := s.Add("Bob", "bob@x.com"); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		s.Close()

		if got := tu.MustReadFile(t, path); got != "1,Alice,\n2,Bob,bob@x.com\n" {
			t.Errorf("file contents = %q", got)
		}
	})

	t.Run("Add writes header into empty file", func(t *testing.T) {
		path := tu.MustWriteFile(t, t.TempDir(), "contacts.csv", "")

		s, err := Open(path, Options{Header: true})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if _, err := s.Add("Alice", ""); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		s.Close()

		if got := tu.MustReadFile(t, path); got != "id,name,email\n1,Alice,\n" {
			t.Errorf("file contents = %q", got)
		}
	})

	t.Run("Add rejects invalid contact", func(t *testing.T) {
		path := tu.MustWriteFile(t, t.TempDir(), "contacts.csv", "1,Alice,\n")

		s, err := Open(path, Options{})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer s.Close()

		if _, err := s.Add("   ", "x@x.com"); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if s.Count() != 1 {
			t.Errorf("Count() = %d, want 1", s.Count())
		}
		if got := tu.MustReadFile(t, path); got != "1,Alice,\n" {
			t.Errorf("file was modified: %q", got)
		}
	})

	t.Run("Add after Close", func(t *testing.T) {
		path := tu.MustWriteFile(t, t.TempDir(), "contacts.csv", "")

		s, err := Open(path, Options{})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if err := s.Close(); err != nil {
			t.Errorf("second Close() error = %v", err)
		}
		if _, err := s.Add("Alice", ""); !errors.Is(err, shared.ErrWrite) {
			t.Errorf("expected ErrWrite, got %v", err)
		}
	})
}
