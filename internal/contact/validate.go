package contact

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Rejection reasons. Match them with errors.Is.
var (
	ErrBlank           = errors.New("contact: name and number are required")
	ErrDuplicateName   = errors.New("contact: duplicate name")
	ErrDuplicateNumber = errors.New("contact: duplicate number")
	ErrInvalidName     = errors.New("contact: invalid name format")
	ErrInvalidNumber   = errors.New("contact: invalid number format")
)

// Rejection is a validation failure. Message is what the user sees and is
// empty when the failure is reported silently (blank fields).
type Rejection struct {
	Reason  error
	Message string
}

func (r *Rejection) Error() string {
	if r.Message == "" {
		return r.Reason.Error()
	}
	return r.Reason.Error() + ": " + r.Message
}

func (r *Rejection) Unwrap() error {
	return r.Reason
}

// Message returns the user-facing message carried by err, or "" if there is none.
func Message(err error) string {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Message
	}
	return ""
}

// Validate checks f against the existing collection. Rules run in order and
// the first failure wins: blank fields, duplicate name (case-insensitive),
// duplicate number (exact). Both sides are compared trimmed. A nil
// collection is treated as empty.
func Validate(f FormState, existing []Contact) error {
	t := f.Trimmed()
	if t.Name == "" || t.Number == "" {
		return &Rejection{Reason: ErrBlank}
	}

	key := nameKey(t.Name)
	for _, c := range existing {
		if nameKey(c.Name) == key {
			return &Rejection{
				Reason:  ErrDuplicateName,
				Message: fmt.Sprintf("%s is already in contacts", t.Name),
			}
		}
	}

	for _, c := range existing {
		if Trimmed(c.Number) == t.Number {
			return &Rejection{
				Reason:  ErrDuplicateNumber,
				Message: fmt.Sprintf("The number %s is already in contacts", t.Number),
			}
		}
	}
	return nil
}

// nameKey folds case after NFC normalization so that names differing only
// in case or composition compare equal.
func nameKey(name string) string {
	return cases.Fold().String(norm.NFC.String(Trimmed(name)))
}
