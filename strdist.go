package kvstore

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-byte insertions, deletions and substitutions
// turning one into the other. Symmetric, zero iff a == b, and satisfies the
// triangle inequality.
func Distance(a, b string) int {
	return editDistance(a, b, false)
}

// DistancePenalized is Distance with substitutions costing 2 instead of 1,
// so that a substitution is never cheaper than a deletion plus an
// insertion.
func DistancePenalized(a, b string) int {
	return editDistance(a, b, true)
}

// editDistance is the classic two-row dynamic program, O(len(a)*len(b))
// time and O(min(len(a), len(b))) space.
func editDistance(a, b string, penalizeSubst bool) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	substCost := 1
	if penalizeSubst {
		substCost = 2
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			d := prev[j-1]
			if a[i-1] != b[j-1] {
				d += substCost
			}
			if x := prev[j] + 1; x < d {
				d = x
			}
			if x := curr[j-1] + 1; x < d {
				d = x
			}
			curr[j] = d
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Compare orders a and b byte-lexicographically. It returns 0 when the
// strings are equal; otherwise the magnitude of the result is the 1-based
// position of the first differing byte (the length of the shorter string,
// at least 1, when one is a prefix of the other), negative when a sorts
// before b and positive when after.
func Compare(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -(i + 1)
			}
			return i + 1
		}
	}
	if len(a) == len(b) {
		return 0
	}
	pos := max(n, 1)
	if len(a) < len(b) {
		return -pos
	}
	return pos
}
