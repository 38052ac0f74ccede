package kvstore

// Closest returns the stored key most similar to query. An exact match is
// returned as is; a one-entry store always returns its sole key. Otherwise
// every key is ranked by edit distance to query, ties broken by smaller
// length difference, then by smaller byte-code difference at the first
// differing position, then by scan order (keys are scanned in SortedKeys
// order, and the earliest best candidate wins).
func (s *Store) Closest(query string) (string, bool) {
	if query == "" || s.keyCount == 0 {
		return "", false
	}
	if s.Has(query) {
		return query, true
	}
	keys := s.SortedKeys()
	if len(keys) == 1 {
		return keys[0], true
	}

	best := keys[0]
	bestDist := Distance(query, best)
	for _, key := range keys[1:] {
		d := Distance(query, key)
		switch {
		case d < bestDist:
		case d > bestDist:
			continue
		default:
			dl := lengthDiff(query, key)
			bl := lengthDiff(query, best)
			if dl > bl {
				continue
			}
			if dl == bl && byteDiffAtSplit(query, key) >= byteDiffAtSplit(query, best) {
				continue
			}
		}
		best, bestDist = key, d
	}
	if s.verbose {
		s.logf("store: CLOSEST %s => %s (distance %d)", query, best, bestDist)
	}
	return best, true
}

func lengthDiff(a, b string) int {
	return absInt(len(a) - len(b))
}

// byteDiffAtSplit returns the absolute byte-code difference between a and b
// at the first position where they diverge (per Compare, clamped to the
// first byte). Zero when one string is a prefix of the other.
func byteDiffAtSplit(a, b string) int {
	pos := absInt(Compare(a, b))
	if pos == 0 {
		pos = 1
	}
	if pos > len(a) || pos > len(b) {
		return 0
	}
	return absInt(int(a[pos-1]) - int(b[pos-1]))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
