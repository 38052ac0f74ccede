package kvstore

import "slices"

// Append adds value to the entry under key. An absent key behaves like Set.
// A Single entry is always promoted to a two-element Multi, even when the
// new value equals the old one. A Multi entry skips values it already
// contains. Empty key or empty value is a no-op.
func (s *Store) Append(key, value string) {
	if key == "" || value == "" {
		return
	}
	v, found := s.table[key]
	if !found {
		s.Set(key, value)
		return
	}
	switch v := v.(type) {
	case Single:
		s.table[key] = Multi{string(v), value}
		if s.maxDepth < 2 {
			s.maxDepth = 2
		}
	case Multi:
		if slices.Contains(v, value) {
			if s.verbose {
				s.logf("store: APPEND.DUP %s => %s", key, value)
			}
			return
		}
		grown := append(slices.Clone(v), value)
		s.table[key] = grown
		if len(grown) > s.maxDepth {
			s.maxDepth = len(grown)
		}
	}
	s.dirty = true
	if s.verbose {
		s.logf("store: APPEND %s => %s", key, value)
	}
}

// AppendList adds all values to the entry under key, in order. An absent
// key gets the list stored directly as a Multi, even for a one-element
// list. An existing key receives one Append per element; afterwards
// maxDepth is raised to at least the input list length. Empty key or empty
// list is a no-op.
func (s *Store) AppendList(key string, values []string) {
	if key == "" || len(values) == 0 {
		return
	}
	if _, found := s.table[key]; !found {
		s.table[key] = Multi(slices.Clone(values))
		s.keyCount++
		if len(values) > s.maxDepth {
			s.maxDepth = len(values)
		}
		s.dirty = true
		if s.verbose {
			s.logf("store: APPEND.NEW %s => %v", key, values)
		}
		return
	}
	for _, value := range values {
		s.Append(key, value)
	}
	if len(values) > s.maxDepth {
		s.maxDepth = len(values)
	}
}
