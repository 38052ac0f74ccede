package kvstore

import "testing"

func headStore(t testing.TB) *Store {
	t.Helper()
	s := testStore(t)
	s.Set("hello", "world")
	s.SetList("head", []string{"shoulders", "knees", "and", "toes"})
	s.SetList("heap", []string{"one", "two", "three", "four", "five", "six", "seven"})
	return s
}

func TestClosest_NoMatch(t *testing.T) {
	s := testStore(t)
	_, found := s.Closest("anything")
	deepEqual(t, found, false)

	s.Set("k", "v")
	_, found = s.Closest("")
	deepEqual(t, found, false)
}

func TestClosest_ExactMatch(t *testing.T) {
	s := headStore(t)
	for _, key := range s.Keys() {
		got, found := s.Closest(key)
		deepEqual(t, found, true)
		deepEqual(t, got, key)
	}
}

func TestClosest_SingleEntryAlwaysWins(t *testing.T) {
	s := testStore(t)
	s.Set("zebra", "stripes")
	got, found := s.Closest("xylophone")
	deepEqual(t, found, true)
	deepEqual(t, got, "zebra")
}

func TestClosest_TieBreaks(t *testing.T) {
	s := headStore(t)

	// distance ties at 3 for all keys; "hello" has the closest length
	got, _ := s.Closest("hence")
	deepEqual(t, got, "hello")

	// distance and length tie between "head" and "heap"; the byte code at
	// the first differing position decides: |e-d| = 1 beats |e-p| = 11
	got, _ = s.Closest("heae")
	deepEqual(t, got, "head")

	// same tie the other way around: |n-p| = 2 beats |n-d| = 10
	got, _ = s.Closest("hean")
	deepEqual(t, got, "heap")
}

func TestClosest_StableOnFullTie(t *testing.T) {
	s := testStore(t)
	s.Set("aab", "1")
	s.Set("aad", "2")

	// distance 1 to both, equal lengths, equal byte difference at the
	// differing position (|c-b| == |c-d|): the first key in sorted order
	// wins
	got, _ := s.Closest("aac")
	deepEqual(t, got, "aab")
}

func TestClosest_PrefixCandidate(t *testing.T) {
	s := testStore(t)
	s.Set("hand", "1")
	s.Set("handle", "2")

	// both are distance 1 with equal length difference, and both share the
	// query as a common prefix (byte difference 0): sorted order decides
	got, _ := s.Closest("handl")
	deepEqual(t, got, "hand")
}
