package tag

import (
	"strings"

	"github.com/parfait-bio/parfait/pkg/errors"
)

// Map is an insertion-ordered collection of optional fields keyed by name.
// The zero value is ready to use. Serialization preserves the order in
// which fields were added, so a parsed record writes its tags back in the
// order they appeared in the input.
type Map struct {
	fields []Field
	index  map[string]int
}

// Len returns the number of fields.
func (m *Map) Len() int {
	return len(m.fields)
}

// Get returns the value for name.
func (m *Map) Get(name string) (Value, bool) {
	if m.index == nil {
		return nil, false
	}
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.fields[i].Val, true
}

// Set stores the value for name, replacing an existing field in place so
// its position in the serialization order is kept.
func (m *Map) Set(name string, v Value) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[name]; ok {
		m.fields[i].Val = v
		return
	}
	m.index[name] = len(m.fields)
	m.fields = append(m.fields, Field{Name: name, Val: v})
}

// Add stores the value for name, failing if the name is already present.
// The existing field is kept unchanged on failure.
func (m *Map) Add(name string, v Value) error {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if _, ok := m.index[name]; ok {
		return errors.New(errors.ErrCodeDuplicateTag, "duplicate tag %q", name)
	}
	m.index[name] = len(m.fields)
	m.fields = append(m.fields, Field{Name: name, Val: v})
	return nil
}

// Delete removes the field for name, reporting whether it was present.
func (m *Map) Delete(name string) bool {
	if m.index == nil {
		return false
	}
	i, ok := m.index[name]
	if !ok {
		return false
	}
	m.fields = append(m.fields[:i], m.fields[i+1:]...)
	delete(m.index, name)
	for n, j := range m.index {
		if j > i {
			m.index[n] = j - 1
		}
	}
	return true
}

// Fields returns the fields in insertion order. The returned slice is
// shared with the map and must not be modified.
func (m *Map) Fields() []Field {
	return m.fields
}

// Clone returns a copy of the map with the same field order.
func (m *Map) Clone() Map {
	var out Map
	for _, f := range m.fields {
		out.Set(f.Name, f.Val)
	}
	return out
}

// String renders all fields tab-separated in insertion order.
func (m *Map) String() string {
	parts := make([]string, len(m.fields))
	for i, f := range m.fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, "\t")
}
