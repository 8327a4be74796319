package models

// SettingEntry is one authoritative setting as supplied by the schema source:
// its current default (still YAML-typed, normalized lazily on comparison) and
// the documentation URL for the setting.
type SettingEntry struct {
	Name    string
	Default interface{}
	DocURL  string
}

// Schema is the authoritative set of settings for the host version being
// compared against. It preserves the order the schema source declared the
// settings in, which drives the ordering of the Missing report.
type Schema struct {
	entries []SettingEntry
	index   map[string]int
}

func NewSchema(entries []SettingEntry) *Schema {
	s := &Schema{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if _, ok := s.index[e.Name]; !ok {
			s.index[e.Name] = i
		}
	}
	return s
}

func (s *Schema) Len() int {
	return len(s.entries)
}

// Entries returns the settings in declaration order.
func (s *Schema) Entries() []SettingEntry {
	return s.entries
}

func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *Schema) Lookup(name string) (SettingEntry, bool) {
	i, ok := s.index[name]
	if !ok {
		return SettingEntry{}, false
	}
	return s.entries[i], true
}
