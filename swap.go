package kvstore

import "fmt"

// SwapOne transposes the entry under key: its scalar value becomes the key
// and the old key becomes the value. Fails with ErrKeyNotFound for an
// absent key and with ErrNotScalar when the entry holds more than one
// value.
//
// When the value already exists as a key, unique == true fails with
// ErrValueIsKey and leaves the store unchanged; unique == false appends the
// old key as an additional value under the existing entry instead of
// renaming, which can raise that entry's depth above 1 and make a later
// swap of it fail. An entry mapped to its own key swaps to itself: a
// successful no-op in either mode.
func (s *Store) SwapOne(key string, unique bool) error {
	v, found := s.table[key]
	if !found {
		return fmt.Errorf("kvstore: swap %q: %w", key, ErrKeyNotFound)
	}
	if valueDepth(v) > 1 {
		return fmt.Errorf("kvstore: swap %q: %w", key, ErrNotScalar)
	}
	value := valueFirst(v)
	if value == "" {
		return fmt.Errorf("kvstore: swap %q: %w", key, ErrEmptyValue)
	}
	if value == key {
		// transposing x => x is the identity; the merge path would
		// destroy the entry
		return nil
	}

	if _, taken := s.table[value]; taken {
		if unique {
			return fmt.Errorf("kvstore: swap %q: %q: %w", key, value, ErrValueIsKey)
		}
		s.Append(value, key)
		s.Remove(key)
		if s.verbose {
			s.logf("store: SWAP.MERGE %s => %s", key, value)
		}
		return nil
	}

	delete(s.table, key)
	s.table[value] = Single(key)
	s.dirty = true
	if s.verbose {
		s.logf("store: SWAP %s <=> %s", key, value)
	}
	return nil
}

// SwapAll transposes every entry. An empty store succeeds trivially; a
// store with maxDepth > 1 fails up front without mutating. The key set is
// snapshotted once and walked in map order; the first SwapOne failure
// aborts the pass.
//
// Entries swapped before the failure are NOT rolled back: a partial failure
// leaves the store in a mixed state. This is the documented contract; use
// SwapAllAtomic for all-or-nothing behavior.
func (s *Store) SwapAll(unique bool) error {
	if s.keyCount == 0 {
		return nil
	}
	if s.maxDepth > 1 {
		return fmt.Errorf("kvstore: swap all: %w", ErrNotScalar)
	}
	for _, key := range s.Keys() {
		if err := s.SwapOne(key, unique); err != nil {
			return err
		}
	}
	return nil
}

// SwapAllAtomic is SwapAll staged against a scratch copy of the table:
// the store is updated only if every individual swap succeeds, and is left
// untouched on any failure.
func (s *Store) SwapAllAtomic(unique bool) error {
	if s.keyCount == 0 {
		return nil
	}
	if s.maxDepth > 1 {
		return fmt.Errorf("kvstore: swap all: %w", ErrNotScalar)
	}

	staged := New(Options{})
	staged.table = make(map[string]Value, s.keyCount)
	for key, v := range s.table {
		staged.table[key] = cloneValue(v)
	}
	staged.keyCount = s.keyCount
	staged.maxDepth = s.maxDepth

	for _, key := range staged.Keys() {
		if err := staged.SwapOne(key, unique); err != nil {
			return err
		}
	}

	s.table = staged.table
	s.keyCount = staged.keyCount
	s.maxDepth = staged.maxDepth
	s.dirty = true
	return nil
}
