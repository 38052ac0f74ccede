package kvstore

// Has reports whether key is present. An empty key is never present.
func (s *Store) Has(key string) bool {
	if key == "" {
		return false
	}
	_, found := s.table[key]
	return found
}

// Get returns the entry's value in textual form: the bare string for a
// Single value, a JSON array of strings for a Multi value (non-ASCII left
// unescaped). The second result is false if the key is absent.
func (s *Store) Get(key string) (string, bool) {
	v, found := s.table[key]
	if !found {
		if s.verbose {
			s.logf("store: GET.NOTFOUND %s", key)
		}
		return "", false
	}
	var text string
	switch v := v.(type) {
	case Single:
		text = string(v)
	case Multi:
		text = string(appendTextList(nil, v, false))
	}
	if s.verbose {
		s.logf("store: GET %s => %s", key, text)
	}
	return text, true
}

// First returns the first string of the entry's value: the whole string for
// a Single value, the first element for a Multi value. A stored empty
// string is a valid value and is returned with found == true.
func (s *Store) First(key string) (string, bool) {
	v, found := s.table[key]
	if !found {
		return "", false
	}
	return valueFirst(v), true
}

// All returns a copy of the entry's full ordered value list, length 1 for a
// Single value.
func (s *Store) All(key string) ([]string, bool) {
	v, found := s.table[key]
	if !found {
		return nil, false
	}
	return valueStrings(v), true
}

// Depth returns the number of strings stored under key: 0 if absent, 1 for
// a Single value, the list length for a Multi value.
func (s *Store) Depth(key string) int {
	v, found := s.table[key]
	if !found {
		return 0
	}
	return valueDepth(v)
}

// Entry returns the entry as a {"key":value} JSON fragment with non-ASCII
// characters left unescaped.
func (s *Store) Entry(key string) (string, bool) {
	v, found := s.table[key]
	if !found {
		return "", false
	}
	buf := []byte{'{'}
	buf = appendTextEntry(buf, key, v, false)
	buf = append(buf, '}')
	return string(buf), true
}

// Tuple returns the entry flattened as [key, value, value, ...].
func (s *Store) Tuple(key string) ([]string, bool) {
	v, found := s.table[key]
	if !found {
		return nil, false
	}
	return append([]string{key}, valueStrings(v)...), true
}
