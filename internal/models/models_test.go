package models

import (
	"errors"
	"testing"
)

func TestContact(t *testing.T) {
	t.Run("NewContact trims input", func(t *testing.T) {
		c := NewContact(4, "  Dana ", " dana@example.com\t")
		if c.Name != "Dana" || c.Email != "dana@example.com" {
			t.Errorf("expected trimmed fields, got %+v", c)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tt := []struct {
			name    string
			contact Contact
			wantErr error
		}{
			{name: "name and email", contact: Contact{ID: 1, Name: "Alice", Email: "alice@x.com"}},
			{name: "name only", contact: Contact{ID: 2, Name: "Bob"}},
			{name: "blank name", contact: Contact{ID: 3, Name: "   "}, wantErr: ErrMissingName},
			{name: "newline in name", contact: Contact{ID: 4, Name: "Car\nol"}, wantErr: ErrMultilineText},
			{name: "carriage return in email", contact: Contact{ID: 5, Name: "Eve", Email: "e@x.com\r"}, wantErr: ErrMultilineText},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				err := tc.contact.Validate()
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
				}
			})
		}
	})

	t.Run("String", func(t *testing.T) {
		if got := (Contact{ID: 1, Name: "Alice", Email: "alice@x.com"}).String(); got != "#1 Alice <alice@x.com>" {
			t.Errorf("unexpected String() %q", got)
		}
		if got := (Contact{ID: 2, Name: "Bob"}).String(); got != "#2 Bob" {
			t.Errorf("unexpected String() %q", got)
		}
	})

	t.Run("Fields", func(t *testing.T) {
		got := (Contact{ID: 7, Name: "Gus"}).Fields()
		if len(got) != 3 || got[0] != "7" || got[1] != "Gus" || got[2] != "" {
			t.Errorf("unexpected Fields() %q", got)
		}
	})
}
