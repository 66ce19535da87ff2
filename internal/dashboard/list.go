package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/phonebook/internal/contact"
)

// emptyList is shown when the collection has no entries.
const emptyList = "No contacts yet."

// renderList renders one line per contact in collection order. Names are
// padded to a common column when width allows.
func renderList(contacts []contact.Contact, width int) string {
	if len(contacts) == 0 {
		return numberStyle.Render(emptyList)
	}

	col := 0
	for _, c := range contacts {
		if w := lipgloss.Width(c.Name); w > col {
			col = w
		}
	}
	if width > 0 && col > width/2 {
		col = 0
	}

	var b strings.Builder
	for i, c := range contacts {
		if i > 0 {
			b.WriteString("\n")
		}
		name := c.Name
		if pad := col - lipgloss.Width(name); pad > 0 {
			name += strings.Repeat(" ", pad)
		}
		fmt.Fprintf(&b, "%s  %s", nameStyle.Render(name), numberStyle.Render(c.Number))
	}
	return b.String()
}

// listTitle returns the list pane header.
func listTitle(n int) string {
	return titleStyle.Render(fmt.Sprintf("Contacts (%d)", n))
}
