// Package dashboard implements the two-pane phonebook TUI. It owns the
// contact collection, hosts the entry form in the left pane and lists the
// collection in the right pane.
package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/smileynet/phonebook/internal/contact"
	"github.com/smileynet/phonebook/internal/form"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// titleHeight is the number of lines used by a pane title and its spacer.
const titleHeight = 2

// Model is the root Bubble Tea model for the phonebook TUI.
type Model struct {
	form     form.Model
	contacts []contact.Contact
	formOpts []form.Option
	log      *zap.Logger
	width    int
	height   int
	list     viewport.Model
	keys     keys
	help     help.Model
}

// Option configures a Model.
type Option func(*Model)

// WithContacts sets the initial collection.
func WithContacts(contacts []contact.Contact) Option {
	return func(m *Model) {
		m.contacts = contacts
	}
}

// WithLogger sets the logger shared with the form.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// WithFormOptions passes extra options to the hosted form.
func WithFormOptions(opts ...form.Option) Option {
	return func(m *Model) {
		m.formOpts = append(m.formOpts, opts...)
	}
}

// NewModel creates a dashboard holding the given collection.
func NewModel(opts ...Option) Model {
	m := Model{
		log:  zap.NewNop(),
		list: viewport.New(0, 0),
		keys: KeyMap(),
		help: help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	formOpts := append([]form.Option{
		form.WithContacts(m.contacts),
		form.WithLogger(m.log),
	}, m.formOpts...)
	m.form = form.New(nil, formOpts...)
	m.list.SetContent(renderList(m.contacts, 0))
	return m
}

// Contacts returns the current collection.
func (m Model) Contacts() []contact.Contact {
	return m.contacts
}

// Form returns the hosted form.
func (m Model) Form() form.Model {
	return m.form
}

// Init starts the form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles incoming messages. Keys not bound by the dashboard go to
// the form.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}

	case form.ContactAddedMsg:
		m.appendContact(msg.Contact)
		return m, nil
	}

	return m.updateForm(msg)
}

func (m Model) resize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	leftWidth, rightWidth := PaneWidths(msg.Width)
	listWidth := rightWidth - borderChrome
	if listWidth < 0 {
		listWidth = 0
	}
	listHeight := m.contentHeight() - titleHeight
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.Width = listWidth
	m.list.Height = listHeight
	m.list.SetContent(renderList(m.contacts, listWidth))

	formWidth := leftWidth - borderChrome
	if formWidth < 0 {
		formWidth = 0
	}
	return m.updateForm(tea.WindowSizeMsg{Width: formWidth, Height: m.contentHeight()})
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.form.Update(msg)
	m.form = updated.(form.Model)
	return m, cmd
}

// appendContact adds c to a fresh copy of the collection so callers holding
// the previous slice never see it change.
func (m *Model) appendContact(c contact.Contact) {
	next := make([]contact.Contact, len(m.contacts), len(m.contacts)+1)
	copy(next, m.contacts)
	m.contacts = append(next, c)

	m.form.SetContacts(m.contacts)
	m.list.SetContent(renderList(m.contacts, m.list.Width))
	m.list.GotoBottom()
	m.log.Debug("collection updated", zap.Int("size", len(m.contacts)))
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout with help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	leftStyle := FocusedBorder().
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle := UnfocusedBorder().
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	left := titleStyle.Render("New contact") + "\n\n" + m.form.View()
	right := listTitle(len(m.contacts)) + "\n\n" + m.list.View()

	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftStyle.Render(left), rightStyle.Render(right))
	return lipgloss.JoinVertical(lipgloss.Left, panes, m.help.View(m.keys))
}
