package kvstore

// Set stores value under key, replacing any existing value wholesale (a
// prior Multi collapses back to Single). An empty key is a no-op. A new key
// increments the key count; replacing the deepest entry with a scalar
// triggers a full maxDepth rescan.
func (s *Store) Set(key, value string) {
	if key == "" {
		return
	}
	old, existed := s.table[key]
	s.table[key] = Single(value)
	if existed {
		if d := valueDepth(old); d > 1 && d == s.maxDepth {
			s.rescanDepth()
		}
	} else {
		s.keyCount++
		if s.maxDepth < 1 {
			s.maxDepth = 1
		}
	}
	s.dirty = true
	if s.verbose {
		s.logf("store: SET %s => %s", key, value)
	}
}

// SetList stores values under key as Set(key, values[0]) followed by
// appending the remainder. Empty key or empty list is a no-op.
func (s *Store) SetList(key string, values []string) {
	if key == "" || len(values) == 0 {
		return
	}
	s.Set(key, values[0])
	s.AppendList(key, values[1:])
}
