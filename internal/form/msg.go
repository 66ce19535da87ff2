// Package form implements the contact entry form as a Bubble Tea component.
// It holds the two field values, enforces the field formats before a
// submission is attempted, and hands accepted contacts to its host.
package form

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/phonebook/internal/contact"
)

// Focus identifies the focused form control.
type Focus int

const (
	FocusName   Focus = iota // Name text input.
	FocusNumber              // Number text input.
	FocusSubmit              // "Add Contact" button.
)

// focusCount is the number of focusable controls.
const focusCount = 3

// Mode is the form's interaction state.
type Mode int

const (
	ModeEditing  Mode = iota // Fields accept input.
	ModeAlerting             // A blocking notification is shown; only dismissal keys work.
)

// AddFunc receives each accepted contact. The returned command is run by
// the Bubble Tea program, which lets the host update its own state.
type AddFunc func(c contact.Contact) tea.Cmd

// ContactAddedMsg reports an accepted contact to the host model.
type ContactAddedMsg struct {
	Contact contact.Contact
}

// EmitAdded is an AddFunc that reports the contact as a ContactAddedMsg.
func EmitAdded(c contact.Contact) tea.Cmd {
	return func() tea.Msg {
		return ContactAddedMsg{Contact: c}
	}
}
