package contact

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestDecodeCollection_Valid(t *testing.T) {
	// Given: a YAML collection with one entry missing an ID
	src := `
- id: id-1
  name: " Rosie Simpson "
  number: "459-12-56"
- name: Hermione Kline
  number: "443-89-12"
`

	// When: it is decoded
	got, err := DecodeCollection(strings.NewReader(src))

	// Then: entries are trimmed and every entry has an ID
	if err != nil {
		t.Fatalf("DecodeCollection() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != (Contact{ID: "id-1", Name: "Rosie Simpson", Number: "459-12-56"}) {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].ID == "" {
		t.Error("got[1].ID should be generated")
	}
}

func TestDecodeCollection_Empty(t *testing.T) {
	for _, src := range []string{"", "# nothing here\n"} {
		got, err := DecodeCollection(strings.NewReader(src))
		if err != nil {
			t.Fatalf("DecodeCollection(%q) error = %v", src, err)
		}
		if len(got) != 0 {
			t.Errorf("DecodeCollection(%q) len = %d, want 0", src, len(got))
		}
	}
}

func TestDecodeCollection_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "duplicate name",
			src:     "- {name: Bob, number: '555-12-34'}\n- {name: bob, number: '555-12-35'}\n",
			wantErr: ErrDuplicateName,
			wantMsg: "entry 2",
		},
		{
			name:    "duplicate number",
			src:     "- {name: Bob, number: '555-12-34'}\n- {name: Ann, number: '555-12-34'}\n",
			wantErr: ErrDuplicateNumber,
			wantMsg: "The number 555-12-34 is already in contacts",
		},
		{
			name:    "blank",
			src:     "- {name: '', number: '555-12-34'}\n",
			wantErr: ErrBlank,
			wantMsg: "entry 1",
		},
		{
			name:    "bad number",
			src:     "- {name: Bob, number: 'n/a'}\n",
			wantErr: ErrInvalidNumber,
			wantMsg: "entry 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCollection(strings.NewReader(tt.src))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestDecodeCollection_DuplicateID(t *testing.T) {
	src := "- {id: a, name: Bob, number: '555-12-34'}\n- {id: a, name: Ann, number: '555-12-35'}\n"

	_, err := DecodeCollection(strings.NewReader(src))
	if err == nil || !strings.Contains(err.Error(), `duplicate id "a"`) {
		t.Fatalf("error = %v, want duplicate id", err)
	}
}

func TestDecodeCollection_UnknownField(t *testing.T) {
	src := "- {name: Bob, number: '555-12-34', email: bob@example.com}\n"

	if _, err := DecodeCollection(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadCollection(t *testing.T) {
	fsys := fstest.MapFS{
		"contacts.yaml": &fstest.MapFile{Data: []byte("- {id: a, name: Bob, number: '555-12-34'}\n")},
	}

	got, err := LoadCollection(fsys, "contacts.yaml")
	if err != nil {
		t.Fatalf("LoadCollection() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Bob" {
		t.Errorf("got = %+v", got)
	}

	if _, err := LoadCollection(fsys, "missing.yaml"); err == nil {
		t.Error("LoadCollection(missing) should fail")
	}
}

func TestEncodeCollection_RoundTrip(t *testing.T) {
	in := []Contact{
		{ID: "a", Name: "Bob", Number: "555-12-34"},
		{ID: "b", Name: "Анна", Number: "+1 202-555-0191"},
	}

	var buf bytes.Buffer
	if err := EncodeCollection(&buf, in); err != nil {
		t.Fatalf("EncodeCollection() error = %v", err)
	}
	out, err := DecodeCollection(&buf)
	if err != nil {
		t.Fatalf("DecodeCollection() error = %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestEncodeCollection_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeCollection(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("EncodeCollection(nil) = %q, want %q", got, "[]")
	}
}
