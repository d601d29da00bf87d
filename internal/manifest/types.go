package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Class identifies one dependency section of the manifest
type Class string

const (
	ClassRuntime     Class = "dependencies"
	ClassDevelopment Class = "devDependencies"
	ClassPeer        Class = "peerDependencies"
)

// Classes lists the dependency sections in enumeration order
var Classes = []Class{ClassRuntime, ClassDevelopment, ClassPeer}

// Manifest holds the dependency sections of a package.json
type Manifest struct {
	Dependencies     Section `json:"dependencies"`
	DevDependencies  Section `json:"devDependencies"`
	PeerDependencies Section `json:"peerDependencies"`
}

// Section is a name to version-constraint map that remembers file order
type Section struct {
	names    []string
	versions map[string]string
}

// NewSection builds a section from name/version pairs in the given order
func NewSection(pairs ...string) Section {
	var s Section
	for i := 0; i+1 < len(pairs); i += 2 {
		s.add(pairs[i], pairs[i+1])
	}
	return s
}

func (s *Section) add(name, version string) {
	if s.versions == nil {
		s.versions = make(map[string]string)
	}
	if _, ok := s.versions[name]; !ok {
		s.names = append(s.names, name)
	}
	s.versions[name] = version
}

// Names returns the dependency names in file order
func (s Section) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Version returns the constraint declared for name
func (s Section) Version(name string) (string, bool) {
	v, ok := s.versions[name]
	return v, ok
}

// Len returns the number of dependencies in the section
func (s Section) Len() int {
	return len(s.names)
}

// UnmarshalJSON decodes an object while keeping key order
func (s *Section) UnmarshalJSON(data []byte) error {
	*s = Section{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrInvalidSection
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return ErrInvalidSection
		}
		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		version, ok := valTok.(string)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidSection, name)
		}
		s.add(name, version)
	}

	_, err = dec.Token()
	return err
}

// Section returns the section for a dependency class
func (m *Manifest) Section(c Class) Section {
	switch c {
	case ClassRuntime:
		return m.Dependencies
	case ClassDevelopment:
		return m.DevDependencies
	case ClassPeer:
		return m.PeerDependencies
	default:
		return Section{}
	}
}

// AllNames returns the de-duplicated union of every section: runtime names
// first, then development, then peer. A name is emitted at its first occurrence.
func (m *Manifest) AllNames() []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, c := range Classes {
		for _, name := range m.Section(c).names {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// ClassOf returns the first section that declares name
func (m *Manifest) ClassOf(name string) (Class, bool) {
	for _, c := range Classes {
		if _, ok := m.Section(c).versions[name]; ok {
			return c, true
		}
	}
	return "", false
}
