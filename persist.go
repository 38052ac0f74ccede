package kvstore

import (
	"errors"
	"fmt"
)

// Load builds a store from the snapshot in st. A backend that has never
// been written yields a fresh empty store, not an error; a malformed
// snapshot is a hard error. The loaded store is clean.
func Load(st Storage, opt Options) (*Store, error) {
	data, err := st.ReadSnapshot()
	if errors.Is(err, ErrNoSnapshot) {
		return New(opt), nil
	}
	if err != nil {
		return nil, err
	}
	table, err := parseTable(data)
	if err != nil {
		return nil, err
	}
	s := New(opt)
	s.adoptTable(table)
	if s.verbose {
		s.logf("store: LOAD %d entries, depth %d", s.keyCount, s.maxDepth)
	}
	return s, nil
}

// Persist writes the store's compact snapshot to st and clears the dirty
// flag on success. The entry table itself is never altered.
func (s *Store) Persist(st Storage) error {
	data := Marshal(s, ModeCompact)
	if err := st.WriteSnapshot(data); err != nil {
		return fmt.Errorf("kvstore: persist: %w", err)
	}
	s.dirty = false
	if s.verbose {
		s.logf("store: PERSIST %d entries, %d bytes", s.keyCount, len(data))
	}
	return nil
}
