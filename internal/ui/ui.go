package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/contacts/internal/models"
	"github.com/desertthunder/contacts/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListView ViewState = iota
	DetailView
)

// Loader reads the contacts shown by the browser.
type Loader func() (*store.Result, error)

// FileLoader returns a [Loader] reading the contacts file at path.
func FileLoader(path string, opts store.Options) Loader {
	return func() (*store.Result, error) { return store.Load(path, opts) }
}

type contactsLoadedMsg struct {
	result *store.Result
	err    error
}

// Model represents the TUI application state.
type Model struct {
	view     ViewState
	load     Loader
	source   string
	width    int
	height   int
	list     list.Model
	selected *models.Contact
	skipped  int
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model; source is shown in the list title.
func NewModel(source string, load Loader) *Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Contacts • %s", source)
	l.SetShowHelp(false)

	return &Model{
		view:   ListView,
		load:   load,
		source: source,
		list:   l,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init loads the contacts.
func (m *Model) Init() tea.Cmd {
	return m.fetchContacts()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ListView:
			return m.handleListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}

	case contactsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.skipped = len(msg.result.Malformed)
		return m, m.list.SetItems(toItems(msg.result.Records))
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress r to retry, q to quit", m.err))
	}

	switch m.view {
	case ListView:
		return m.renderList()
	case DetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// keys belong to the filter input while it is open
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.reload):
		return m, m.fetchContacts()
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.list.SelectedItem().(contactItem); ok {
			c := item.contact
			m.selected = &c
			m.view = DetailView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = ListView
		m.selected = nil
	}
	return m, nil
}

func (m *Model) fetchContacts() tea.Cmd {
	return func() tea.Msg {
		result, err := m.load()
		return contactsLoadedMsg{result: result, err: err}
	}
}

func (m *Model) renderList() string {
	status := styles.help.Render(fmt.Sprintf("%d contacts", len(m.list.Items())))
	if m.skipped > 0 {
		status += " " + styles.warn.Render(fmt.Sprintf("(%d malformed lines skipped)", m.skipped))
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.filter, m.keys.reload, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n\n%s", m.list.View(), status, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return ""
	}

	name := m.selected.Name
	if name == "" {
		name = "(no name)"
	}
	email := m.selected.Email
	if email == "" {
		email = "-"
	}

	title := styles.title.Render(name)
	info := fmt.Sprintf("%s %d\n%s %s\n%s %s",
		styles.label.Render("ID:   "), m.selected.ID,
		styles.label.Render("Name: "), name,
		styles.label.Render("Email:"), email,
	)

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n\n%s", title, info, m.help.ShortHelpView(helpKeys))
}
