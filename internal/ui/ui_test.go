package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/contacts/internal/models"
	"github.com/desertthunder/contacts/internal/store"
	tu "github.com/desertthunder/contacts/internal/testing"
)

func loaded(t *testing.T, result *store.Result, err error) *Model {
	t.Helper()
	m := NewModel("contacts.csv", func() (*store.Result, error) { return result, err })
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(m.Init()())
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel(t *testing.T) {
	result := &store.Result{
		Records: []models.Contact{
			{ID: 1, Name: "Alice", Email: "alice@x.com"},
			{ID: 2, Name: "Bob"},
		},
		Malformed: []int{3},
	}

	t.Run("loads contacts", func(t *testing.T) {
		m := loaded(t, result, nil)

		if got := len(m.list.Items()); got != 2 {
			t.Fatalf("expected 2 items, got %d", got)
		}
		view := m.View()
		if !strings.Contains(view, "2 contacts") || !strings.Contains(view, "1 malformed lines skipped") {
			t.Errorf("unexpected status line: %s", view)
		}
	})

	t.Run("enter shows details and esc returns", func(t *testing.T) {
		m := loaded(t, result, nil)

		m.Update(keyMsg("enter"))
		if m.view != DetailView || m.selected == nil || m.selected.ID != 1 {
			t.Fatalf("expected detail view of contact 1, got view %v selected %+v", m.view, m.selected)
		}
		if !strings.Contains(m.View(), "alice@x.com") {
			t.Errorf("detail view missing email: %s", m.View())
		}

		m.Update(keyMsg("esc"))
		if m.view != ListView || m.selected != nil {
			t.Errorf("expected list view after esc")
		}
	})

	t.Run("q quits", func(t *testing.T) {
		m := loaded(t, result, nil)

		_, cmd := m.Update(keyMsg("q"))
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})

	t.Run("load error is shown", func(t *testing.T) {
		m := loaded(t, nil, errors.New("boom"))

		if !strings.Contains(m.View(), "boom") {
			t.Errorf("expected error in view: %s", m.View())
		}
	})

	t.Run("FileLoader reads the store", func(t *testing.T) {
		path := tu.MustWriteFile(t, t.TempDir(), "contacts.csv", "1,Alice,\nbad\n")

		got, err := FileLoader(path, store.Options{})()
		if err != nil {
			t.Fatalf("FileLoader() error = %v", err)
		}
		if got.Count() != 1 || len(got.Malformed) != 1 {
			t.Errorf("unexpected result %+v", got)
		}
	})

	t.Run("contactItem", func(t *testing.T) {
		item := contactItem{contact: models.Contact{ID: 4}}
		if item.Title() != "#4 (no name)" || item.Description() != "#4 • no email" {
			t.Errorf("unexpected item rendering %q / %q", item.Title(), item.Description())
		}
		if got := (contactItem{contact: models.Contact{ID: 1, Name: "Alice", Email: "a@x.com"}}).FilterValue(); got != "Alice a@x.com" {
			t.Errorf("unexpected FilterValue %q", got)
		}
	})
}
