package kvstore

import "slices"

// Store is an in-memory table of string keys mapped to Single or Multi
// values. Not safe for concurrent use.
type Store struct {
	table    map[string]Value
	keyCount int
	maxDepth int
	dirty    bool

	logf    func(format string, args ...any)
	verbose bool
}

type Options struct {
	Logf    func(format string, args ...any)
	Verbose bool
}

// New returns an empty store. A fresh store is clean (not dirty).
func New(opt Options) *Store {
	s := &Store{
		table:   make(map[string]Value),
		logf:    opt.Logf,
		verbose: opt.Verbose,
	}
	if s.logf == nil {
		s.logf = func(format string, args ...any) {}
	}
	return s
}

// Count returns the number of entries.
func (s *Store) Count() int {
	return s.keyCount
}

// MaxDepth returns the largest depth across all entries, 0 for an empty
// store.
func (s *Store) MaxDepth() int {
	return s.maxDepth
}

// Dirty reports whether in-memory state has diverged from the last
// persisted snapshot.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Clear removes all entries and resets the counters. The store is dirty
// afterwards.
func (s *Store) Clear() {
	s.table = make(map[string]Value)
	s.keyCount = 0
	s.maxDepth = 0
	s.dirty = true
	if s.verbose {
		s.logf("store: CLEAR")
	}
}

// Keys returns all keys. The order is Go's map iteration order, i.e.
// deliberately unspecified; use SortedKeys for a stable order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, s.keyCount)
	for key := range s.table {
		keys = append(keys, key)
	}
	return keys
}

// SortedKeys returns all keys in byte-lexicographic order (see Compare).
func (s *Store) SortedKeys() []string {
	keys := s.Keys()
	slices.SortFunc(keys, Compare)
	return keys
}

// rescanDepth recomputes maxDepth by a full table scan. Called by mutators
// when the entry that defined the current maximum may have shrunk or gone.
func (s *Store) rescanDepth() {
	max := 0
	for _, v := range s.table {
		if d := valueDepth(v); d > max {
			max = d
		}
	}
	s.maxDepth = max
}
