package contact

import "regexp"

// NameHint describes the accepted name format to the user.
const NameHint = "Name may contain only letters, apostrophe, dash and spaces. For example Adrian, Jacob Mercer, Charles de Batz de Castelmore d'Artagnan."

// NumberHint describes the accepted number format to the user.
const NumberHint = "Phone number must be digits and can contain spaces, dashes, parentheses and can start with +"

// letters covers the Latin and Cyrillic alphabets.
const letters = `a-zA-Zа-яА-ЯёЁ`

// namePattern accepts letter runs joined by single apostrophes, hyphens or spaces.
var namePattern = regexp.MustCompile(`^[` + letters + `]+(?:['\- ][` + letters + `]+)*$`)

// numberPattern accepts an optional leading +, then up to five digit groups
// separated by spaces, dashes, dots or parentheses.
var numberPattern = regexp.MustCompile(`^\+?\d{1,4}?[\-.\s]?\(?\d{1,3}?\)?[\-.\s]?\d{1,4}[\-.\s]?\d{1,4}[\-.\s]?\d{1,9}$`)

// ValidName reports whether name (already trimmed) matches the name format.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ValidNumber reports whether number (already trimmed) matches the number format.
func ValidNumber(number string) bool {
	return numberPattern.MatchString(number)
}

// CheckFormat applies the field format rules to the trimmed form values.
// Blank fields are left to Validate.
func CheckFormat(f FormState) error {
	t := f.Trimmed()
	if t.Name != "" && !ValidName(t.Name) {
		return &Rejection{Reason: ErrInvalidName, Message: NameHint}
	}
	if t.Number != "" && !ValidNumber(t.Number) {
		return &Rejection{Reason: ErrInvalidNumber, Message: NumberHint}
	}
	return nil
}
