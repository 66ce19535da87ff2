package contact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DecodeCollection reads a YAML list of contacts. Entries without an ID get
// a generated one. Every entry is trimmed and checked against the entries
// before it with the same rules as a form submission, so the result
// satisfies the collection invariants.
func DecodeCollection(r io.Reader) ([]Contact, error) {
	var raw []Contact
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Empty or comment-only documents decode to EOF.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("contact: parsing collection: %w", err)
	}

	out := make([]Contact, 0, len(raw))
	ids := make(map[string]struct{}, len(raw))
	for i, c := range raw {
		f := FormState{Name: c.Name, Number: c.Number}
		if err := Validate(f, out); err != nil {
			return nil, fmt.Errorf("contact: entry %d: %w", i+1, err)
		}
		if err := CheckFormat(f); err != nil {
			return nil, fmt.Errorf("contact: entry %d: %w", i+1, err)
		}

		id := Trimmed(c.ID)
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := ids[id]; dup {
			return nil, fmt.Errorf("contact: entry %d: duplicate id %q", i+1, id)
		}
		ids[id] = struct{}{}

		t := f.Trimmed()
		out = append(out, Contact{ID: id, Name: t.Name, Number: t.Number})
	}
	return out, nil
}

// LoadCollection reads and decodes the named collection file from fsys.
func LoadCollection(fsys fs.FS, name string) ([]Contact, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("contact: reading %s: %w", name, err)
	}
	return DecodeCollection(bytes.NewReader(data))
}

// EncodeCollection writes contacts as a YAML list.
func EncodeCollection(w io.Writer, contacts []Contact) error {
	if contacts == nil {
		contacts = []Contact{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(contacts); err != nil {
		return fmt.Errorf("contact: encoding collection: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("contact: encoding collection: %w", err)
	}
	return nil
}
