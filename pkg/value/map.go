package value

import "strings"

// Map is a string-keyed mapping that remembers insertion order.
// A nil *Map behaves as an empty, read-only mapping.
type Map struct {
	keys    []string
	entries map[string]Value
}

func NewMap() *Map {
	return &Map{entries: make(map[string]Value)}
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.entries[key]
	return ok
}

func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.entries[key]
	return v, ok
}

// Set stores v under key. An existing key keeps its position.
func (m *Map) Set(key string, v Value) {
	if m.entries == nil {
		m.entries = make(map[string]Value)
	}
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, exists := m.entries[key]; !exists {
		return false
	}
	delete(m.entries, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Range calls fn for each entry in order until fn returns false.
func (m *Map) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.entries[k]) {
			return
		}
	}
}

func (m *Map) Clone() *Map {
	out := NewMap()
	m.Range(func(key string, v Value) bool {
		out.Set(key, v.Clone())
		return true
	})
	return out
}

func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, k := range m.Keys() {
		if other.keys[i] != k {
			return false
		}
		if !m.entries[k].Equal(other.entries[k]) {
			return false
		}
	}
	return true
}

// SplitPath splits a dotted key such as "projects.alpha.issues" into its
// segments. Empty segments are kept so that "a..b" addresses the "" key.
func SplitPath(key string) []string {
	return strings.Split(key, ".")
}

// Lookup descends through nested mappings. It fails when a segment is missing
// or when a non-final segment holds something other than a mapping.
func (m *Map) Lookup(segments []string) (Value, bool) {
	if len(segments) == 0 {
		return FromMap(m), m != nil
	}
	current := m
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current.Get(seg)
		if !ok {
			return Value{}, false
		}
		current, ok = next.AsMap()
		if !ok {
			return Value{}, false
		}
	}
	return current.Get(segments[len(segments)-1])
}

// Assign stores v at the path, creating empty mappings for every missing
// intermediate segment. An intermediate segment that holds a scalar or a
// sequence is replaced by an empty mapping.
func (m *Map) Assign(segments []string, v Value) {
	if len(segments) == 0 {
		return
	}
	current := m
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current.Get(seg)
		child, isMap := next.AsMap()
		if !ok || !isMap {
			child = NewMap()
			current.Set(seg, FromMap(child))
		}
		current = child
	}
	current.Set(segments[len(segments)-1], v)
}

// Remove deletes the final segment without creating anything on the way.
// It reports false when any segment along the path is absent.
func (m *Map) Remove(segments []string) bool {
	if len(segments) == 0 {
		return false
	}
	current := m
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current.Get(seg)
		if !ok {
			return false
		}
		current, ok = next.AsMap()
		if !ok {
			return false
		}
	}
	return current.Delete(segments[len(segments)-1])
}
