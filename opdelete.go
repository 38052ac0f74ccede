package kvstore

// Remove deletes the entry under key; absent keys are a no-op. Removing the
// last entry resets maxDepth to 0; removing an entry whose depth equaled
// maxDepth triggers a full rescan (removing a shallower entry never changes
// maxDepth).
func (s *Store) Remove(key string) {
	v, found := s.table[key]
	if !found {
		return
	}
	delete(s.table, key)
	s.keyCount--
	if s.keyCount == 0 {
		s.maxDepth = 0
	} else if valueDepth(v) == s.maxDepth {
		s.rescanDepth()
	}
	s.dirty = true
	if s.verbose {
		s.logf("store: REMOVE %s", key)
	}
}
