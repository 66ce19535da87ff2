package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smileynet/phonebook/internal/contact"
)

// RequiredHint is shown when a field is submitted empty.
const RequiredHint = "Please fill out this field."

// inputWidth is the default text input width before a WindowSizeMsg arrives.
const inputWidth = 32

// Model is the Bubble Tea model for the contact entry form.
type Model struct {
	name     textinput.Model
	number   textinput.Model
	focus    Focus
	mode     Mode
	alert    string // Message of the blocking notification in ModeAlerting.
	hint     string // Field-level validation hint; cleared on the next edit.
	contacts []contact.Contact
	add      AddFunc
	newID    func() string
	log      *zap.Logger
	editKeys editKeys
	alertKey alertKeys
	help     help.Model
	width    int
}

// Option configures a Model.
type Option func(*Model)

// WithContacts sets the collection used for duplicate checks.
func WithContacts(contacts []contact.Contact) Option {
	return func(m *Model) {
		m.contacts = contacts
	}
}

// WithIDFunc sets the identifier source for new contacts.
func WithIDFunc(fn func() string) Option {
	return func(m *Model) {
		m.newID = fn
	}
}

// WithLogger sets the logger passed to the submission dispatcher.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// New creates an empty form with the name field focused. add receives every
// accepted contact; a nil add reports contacts as ContactAddedMsg.
func New(add AddFunc, opts ...Option) Model {
	if add == nil {
		add = EmitAdded
	}

	name := textinput.New()
	name.Prompt = "> "
	name.Placeholder = "Jacob Mercer"
	name.Width = inputWidth

	number := textinput.New()
	number.Prompt = "> "
	number.Placeholder = "+1 202-555-0191"
	number.Width = inputWidth

	m := Model{
		name:     name,
		number:   number,
		add:      add,
		newID:    uuid.NewString,
		log:      zap.NewNop(),
		editKeys: EditKeyMap(),
		alertKey: AlertKeyMap(),
		help:     help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.name.Focus()
	return m
}

// SetContacts replaces the collection used for duplicate checks.
// The form only reads it.
func (m *Model) SetContacts(contacts []contact.Contact) {
	m.contacts = contacts
}

// SetName replaces the name field value.
func (m *Model) SetName(v string) {
	m.name.SetValue(v)
}

// SetNumber replaces the number field value.
func (m *Model) SetNumber(v string) {
	m.number.SetValue(v)
}

// Values returns the current field values.
func (m Model) Values() contact.FormState {
	return contact.FormState{Name: m.name.Value(), Number: m.number.Value()}
}

// Focused returns the focused control.
func (m Model) Focused() Focus {
	return m.focus
}

// Mode returns the interaction state.
func (m Model) Mode() Mode {
	return m.mode
}

// Alert returns the message of the shown notification, or "".
func (m Model) Alert() string {
	return m.alert
}

// Hint returns the current field-level validation hint, or "".
func (m Model) Hint() string {
	return m.hint
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		w := msg.Width - len(m.name.Prompt) - 1
		if w < 1 {
			w = 1
		}
		m.name.Width = w
		m.number.Width = w
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeAlerting {
			return m.handleAlertKey(msg)
		}
		return m.handleEditKey(msg)
	}

	return m.updateInputs(msg)
}

// handleAlertKey swallows every key except the dismissal keys.
func (m Model) handleAlertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.alertKey.Dismiss) {
		m.mode = ModeEditing
		m.alert = ""
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editKeys.Next):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.editKeys.Prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.editKeys.Submit):
		cmd := m.submit()
		return m, cmd
	}

	m.hint = ""
	return m.updateInputs(msg)
}

// updateInputs forwards msg to the text inputs. Unfocused inputs ignore keys.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var nameCmd, numberCmd tea.Cmd
	m.name, nameCmd = m.name.Update(msg)
	m.number, numberCmd = m.number.Update(msg)
	return m, tea.Batch(nameCmd, numberCmd)
}

// setFocus moves focus to f and returns the input's blink command, if any.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.name.Blur()
	m.number.Blur()
	switch f {
	case FocusName:
		return m.name.Focus()
	case FocusNumber:
		return m.number.Focus()
	}
	return nil
}

// submit runs the field format checks the way a browser form would, then
// hands the values to the dispatcher. Fields are reset only on acceptance.
func (m *Model) submit() tea.Cmd {
	values := m.Values()

	if f, hint := m.fieldProblem(values); hint != "" {
		m.hint = hint
		return m.setFocus(f)
	}

	var cmd tea.Cmd
	d := contact.NewDispatcher(
		func(c contact.Contact) { cmd = m.add(c) },
		contact.WithIDFunc(m.newID),
		contact.WithLogger(m.log),
		contact.WithNotifier(func(msg string) {
			m.mode = ModeAlerting
			m.alert = msg
		}),
	)

	if _, err := d.Submit(&values, m.contacts); err != nil {
		return nil
	}

	m.name.SetValue(values.Name)
	m.number.SetValue(values.Number)
	m.hint = ""
	focusCmd := m.setFocus(FocusName)
	return tea.Batch(cmd, focusCmd)
}

// fieldProblem returns the first field that would block a browser form
// submission and the hint to show for it.
func (m Model) fieldProblem(v contact.FormState) (Focus, string) {
	switch {
	case v.Name == "":
		return FocusName, RequiredHint
	case !contact.ValidName(contact.Trimmed(v.Name)):
		return FocusName, contact.NameHint
	case v.Number == "":
		return FocusNumber, RequiredHint
	case !contact.ValidNumber(contact.Trimmed(v.Number)):
		return FocusNumber, contact.NumberHint
	}
	return FocusName, ""
}

// View renders the form, or the alert box while a notification is shown.
func (m Model) View() string {
	if m.mode == ModeAlerting {
		return m.viewAlert()
	}

	var b strings.Builder
	b.WriteString(labelStyle(m.focus == FocusName).Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle(m.focus == FocusNumber).Render("Number"))
	b.WriteString("\n")
	b.WriteString(m.number.View())
	b.WriteString("\n\n")
	b.WriteString(buttonStyle(m.focus == FocusSubmit).Render("Add Contact"))

	if m.hint != "" {
		width := m.width
		if width <= 0 {
			width = inputWidth * 2
		}
		b.WriteString("\n\n")
		b.WriteString(hintStyle().Width(width).Render(m.hint))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.editKeys))
	return b.String()
}

func (m Model) viewAlert() string {
	box := alertStyle().Render(m.alert + "\n\n[Enter] OK")
	return lipgloss.JoinVertical(lipgloss.Left, box, m.help.View(m.alertKey))
}
