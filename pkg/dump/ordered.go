package dump

// Entry is one key/value pair of a container.
type Entry struct {
	Key   string
	Value interface{}
}

// Lister is implemented by containers that know their own entry order.
// The dump lists their entries in exactly that order.
type Lister interface {
	DumpEntries() []Entry
}

// OrderedMap is a string-keyed map that remembers insertion order.
// Document loaders use it so dumps follow the source file's order.
type OrderedMap struct {
	entries []Entry
	index   map[string]int
}

// NewOrderedMap returns an empty map.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{index: make(map[string]int)}
}

// Set stores value under key. Replacing a key keeps its original position.
func (m *OrderedMap) Set(key string, value interface{}) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key string) (interface{}, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	return len(m.entries)
}

// DumpEntries implements Lister.
func (m *OrderedMap) DumpEntries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
