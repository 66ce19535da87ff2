// Package contact holds the phonebook domain: contact records, the form
// state behind the entry form, validation against an existing collection,
// and the dispatcher that turns an accepted form into a new contact.
package contact

import "strings"

// Contact is a single phonebook entry.
type Contact struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Number string `yaml:"number" json:"number"`
}

// FormState holds the raw values of the two entry fields.
// The zero value is the initial (empty) state.
type FormState struct {
	Name   string
	Number string
}

// SetName replaces the name field value. No validation happens here.
func (f *FormState) SetName(v string) {
	f.Name = v
}

// SetNumber replaces the number field value. No validation happens here.
func (f *FormState) SetNumber(v string) {
	f.Number = v
}

// Reset clears both fields.
func (f *FormState) Reset() {
	f.Name = ""
	f.Number = ""
}

// Trimmed returns a copy with surrounding whitespace removed from both fields.
func (f FormState) Trimmed() FormState {
	return FormState{
		Name:   Trimmed(f.Name),
		Number: Trimmed(f.Number),
	}
}

// Trimmed removes leading and trailing whitespace.
func Trimmed(s string) string {
	return strings.TrimSpace(s)
}
