package sharedstring

import (
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Compile-time interface assertions
var (
	_ fmt.Stringer             = String{}
	_ fmt.GoStringer           = String{}
	_ io.WriterTo              = String{}
	_ encoding.TextMarshaler   = String{}
	_ json.Marshaler           = String{}
	_ io.ReaderFrom            = (*String)(nil)
	_ fmt.Scanner              = (*String)(nil)
	_ encoding.TextUnmarshaler = (*String)(nil)
	_ json.Unmarshaler         = (*String)(nil)
)

// FromReader builds a String from everything r yields until EOF.
func FromReader(r io.Reader) (String, error) {
	var s String
	if _, err := s.ReadFrom(r); err != nil {
		return String{}, err
	}
	return s, nil
}

// String returns the content, implementing fmt.Stringer.
func (s String) String() string {
	return s.Str()
}

// GoString implements fmt.GoStringer for %#v formatting.
func (s String) GoString() string {
	return fmt.Sprintf("sharedstring.New(%q)", s.Str())
}

// WriteTo writes the content to w, implementing io.WriterTo.
func (s String) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.Str())
	return int64(n), err
}

// ReadFrom reads r until EOF and rebinds this value to the bytes read,
// implementing io.ReaderFrom. The rebind follows the usual rule: the new
// buffer is fully built before the old reference is released, and on error
// the value keeps its previous binding.
func (s *String) ReadFrom(r io.Reader) (int64, error) {
	var sb strings.Builder
	n, err := io.Copy(&sb, r)
	if err != nil {
		return n, err
	}
	s.Assign(sb.String())
	return n, nil
}

// Scan implements fmt.Scanner. It reads one whitespace-delimited token and
// rebinds this value to it, the single constructing read operation in the
// API.
func (s *String) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	s.Assign(string(tok))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s String) MarshalText() ([]byte, error) {
	return []byte(s.Str()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, rebinding to a copy
// of text.
func (s *String) UnmarshalText(text []byte) error {
	s.AssignBytes(text)
	return nil
}

// MarshalJSON encodes the content as a JSON string.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Str())
}

// UnmarshalJSON decodes a JSON string and rebinds to it.
func (s *String) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.Assign(v)
	return nil
}
