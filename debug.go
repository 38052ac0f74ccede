package kvstore

import (
	"fmt"
	"strings"
)

// String returns the pretty snapshot form (indented, non-ASCII unescaped).
func (s *Store) String() string {
	return string(Marshal(s, ModePretty))
}

// Dump returns a diagnostic printout of the table and its counters.
func (s *Store) Dump() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "store: %d entries, max depth %d, dirty %v\n", s.keyCount, s.maxDepth, s.dirty)
	for _, key := range s.SortedKeys() {
		v := s.table[key]
		switch v := v.(type) {
		case Single:
			fmt.Fprintf(&buf, "  %s => %q\n", key, string(v))
		case Multi:
			fmt.Fprintf(&buf, "  %s => %d values %q\n", key, len(v), []string(v))
		}
	}
	return buf.String()
}
