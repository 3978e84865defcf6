// package models defines the data model for the contact manager
package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingName   = errors.New("name is required")
	ErrMultilineText = errors.New("fields may not span multiple lines")
)

// Contact is a single record of the contacts file.
type Contact struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// NewContact creates a [Contact] with surrounding whitespace trimmed from name and email.
func NewContact(id uint64, name, email string) Contact {
	return Contact{ID: id, Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
}

// HasEmail reports whether the contact carries an email address.
func (c Contact) HasEmail() bool { return c.Email != "" }

// Fields returns the contact in file column order.
func (c Contact) Fields() []string {
	return []string{fmt.Sprintf("%d", c.ID), c.Name, c.Email}
}

// Validate checks the contact can be written as a single well-formed line.
//
// Decoded contacts are not validated: an empty name read from disk is kept as-is.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingName
	}
	for _, f := range []string{c.Name, c.Email} {
		if strings.ContainsAny(f, "\r\n") {
			return ErrMultilineText
		}
	}
	return nil
}

func (c Contact) String() string {
	if !c.HasEmail() {
		return fmt.Sprintf("#%d %s", c.ID, c.Name)
	}
	return fmt.Sprintf("#%d %s <%s>", c.ID, c.Name, c.Email)
}
