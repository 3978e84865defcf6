package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/contacts/internal/models"
)

var _ list.Item = contactItem{}

// contactItem wraps [models.Contact] to implement [list.Item].
type contactItem struct {
	contact models.Contact
}

// FilterValue lets the fuzzy filter match on name and email together.
func (i contactItem) FilterValue() string {
	return strings.TrimSpace(i.contact.Name + " " + i.contact.Email)
}

func (i contactItem) Title() string {
	if i.contact.Name == "" {
		return fmt.Sprintf("#%d (no name)", i.contact.ID)
	}
	return i.contact.Name
}

func (i contactItem) Description() string {
	if !i.contact.HasEmail() {
		return fmt.Sprintf("#%d • no email", i.contact.ID)
	}
	return fmt.Sprintf("#%d • %s", i.contact.ID, i.contact.Email)
}

func toItems(contacts []models.Contact) []list.Item {
	items := make([]list.Item, len(contacts))
	for i, c := range contacts {
		items[i] = contactItem{contact: c}
	}
	return items
}
