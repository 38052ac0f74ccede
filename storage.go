package kvstore

import "errors"

// ErrNoSnapshot is returned by Storage.ReadSnapshot when the backend has
// never been written to.
var ErrNoSnapshot = errors.New("no snapshot")

// Storage is a snapshot backend (plain file, Bolt, in-memory, ...). A
// snapshot is the compact textual form produced by Marshal; backends store
// and retrieve it wholesale, never partially.
type Storage interface {
	// ReadSnapshot returns the last written snapshot, or ErrNoSnapshot.
	ReadSnapshot() ([]byte, error)

	// WriteSnapshot replaces the stored snapshot with data.
	WriteSnapshot(data []byte) error

	// Exists reports whether a snapshot has been written.
	Exists() bool

	// Size returns the stored snapshot size in bytes (0 if none or unknown).
	Size() int64

	// Close releases backend resources.
	Close() error
}
