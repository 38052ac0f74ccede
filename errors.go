package kvstore

import "errors"

// Sentinel causes for swap and snapshot failures. Operational failures are
// reported as errors wrapping these; nothing in this package panics for a
// missing key or a refused swap.
var (
	// ErrKeyNotFound is returned by SwapOne for an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotScalar is returned when a swap touches an entry holding more
	// than one value.
	ErrNotScalar = errors.New("entry is not scalar")

	// ErrValueIsKey is returned by a unique swap when the entry's value is
	// already present as another key.
	ErrValueIsKey = errors.New("value already exists as a key")

	// ErrEmptyValue is returned when a swap would turn an empty string into
	// a key.
	ErrEmptyValue = errors.New("entry value is empty")

	// ErrSnapshotInvalid is returned when persisted data is not a flat JSON
	// object of strings and string arrays.
	ErrSnapshotInvalid = errors.New("invalid snapshot")
)
