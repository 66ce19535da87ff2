package form

import "github.com/charmbracelet/bubbles/key"

// editKeys holds key bindings while the form is being edited.
type editKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

// ShortHelp returns the editing bindings for the help bar.
func (k editKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit}
}

// FullHelp returns the editing bindings grouped for expanded help.
func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Submit}}
}

// alertKeys holds key bindings while an alert is shown.
type alertKeys struct {
	Dismiss key.Binding
}

// ShortHelp returns the alert bindings for the help bar.
func (k alertKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

// FullHelp returns the alert bindings grouped for expanded help.
func (k alertKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss}}
}

// EditKeyMap returns the key bindings for editing.
func EditKeyMap() editKeys {
	return editKeys{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		// Enter submits from any control, as in a browser form.
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add contact"),
		),
	}
}

// AlertKeyMap returns the key bindings for a shown alert.
func AlertKeyMap() alertKeys {
	return alertKeys{
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "ok"),
		),
	}
}
