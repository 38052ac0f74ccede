package kvstore

import "testing"

func TestDistance_Basics(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"hence", "hello", 3},
		{"heae", "head", 1},
		{"hean", "heap", 1},
		{"a", "b", 1},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, wanted %d", tt.a, tt.b, got, tt.want)
		}
		if got := Distance(tt.b, tt.a); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, wanted %d (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestDistance_TriangleInequality(t *testing.T) {
	words := []string{"", "a", "ab", "abc", "kitten", "sitting", "head", "heap", "hello", "world"}
	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				if Distance(a, c) > Distance(a, b)+Distance(b, c) {
					t.Errorf("triangle inequality violated for %q, %q, %q", a, b, c)
				}
			}
		}
	}
}

func TestDistance_Penalized(t *testing.T) {
	// a substitution now costs as much as a deletion plus an insertion
	deepEqual(t, DistancePenalized("a", "b"), 2)
	deepEqual(t, DistancePenalized("abc", "abc"), 0)
	deepEqual(t, DistancePenalized("", "abc"), 3)
	deepEqual(t, DistancePenalized("kitten", "sitting"), 5)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "abd", -3}, // first difference at position 3
		{"abd", "abc", 3},
		{"b", "a", 1},
		{"head", "heap", -4},
		{"hand", "handle", -4}, // prefix: length of the shorter string
		{"handle", "hand", 4},
		{"a", "ab", -1},
		{"", "a", -1}, // shorter side is empty: clamped to 1
		{"a", "", 1},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, wanted %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompare_OrdersSortedKeys(t *testing.T) {
	s := testStore(t)
	for _, key := range []string{"heap", "head", "hello", "hand", "handle"} {
		s.Set(key, "x")
	}
	deepEqual(t, s.SortedKeys(), []string{"hand", "handle", "head", "heap", "hello"})
}
