// Package manifest describes head elements as data.
//
// A manifest is a YAML document listing elements by kind:
//
//	elements:
//	  - kind: page
//	    title: Docs
//	    description: Reference manual
//	  - kind: stylesheet
//	    href: /static/main.css
//	    id: main
//	  - kind: google
//	    index: false
//	    no_translate: true
//
// Field names are the snake_case form of the element's Go fields. URL fields
// hold literal strings. Build turns a manifest into elements; FromElements
// goes the other way for elements whose values are all literal.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm/hxhead"
)

var (
	// ErrUnknownKind is returned for an entry whose kind is missing or not
	// recognized.
	ErrUnknownKind = errors.New("manifest: unknown element kind")

	// ErrInvalidEntry is returned for an entry with an unknown field or a
	// field of the wrong type.
	ErrInvalidEntry = errors.New("manifest: invalid entry")

	// ErrNotSerializable is returned by FromElements for an element holding a
	// value that is only known at render time.
	ErrNotSerializable = errors.New("manifest: element is not serializable")
)

// Entry is one element of a manifest. The "kind" field selects the element
// type; the remaining fields are its attributes.
type Entry map[string]any

// Kind returns the entry's kind, or "" when it has none.
func (e Entry) Kind() string {
	k, _ := e["kind"].(string)
	return k
}

// Manifest is an ordered list of element entries.
type Manifest struct {
	Elements []Entry `yaml:"elements" msgpack:"elements"`
}

// Decode reads a YAML manifest from r.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// LoadFile reads a YAML manifest from path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes m to w as YAML.
func (m *Manifest) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return enc.Close()
}

// Build converts every entry into its element, in order.
func (m *Manifest) Build() ([]hxhead.Element, error) {
	out := make([]hxhead.Element, 0, len(m.Elements))
	for i, e := range m.Elements {
		el, err := build(e)
		if err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i, e.Kind(), err)
		}
		out = append(out, el)
	}
	return out, nil
}

// Head builds the manifest's elements into a new Head.
func (m *Manifest) Head(opts ...hxhead.Option) (*hxhead.Head, error) {
	els, err := m.Build()
	if err != nil {
		return nil, err
	}
	return hxhead.NewWithOptions(opts, els...), nil
}
