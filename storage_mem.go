package kvstore

import (
	"fmt"
	"slices"
)

// MemStorage is a transient in-memory snapshot backend intended for tests.
type MemStorage struct {
	data    []byte
	written bool
}

func NewMemStorage() *MemStorage {
	return &MemStorage{}
}

func (ms *MemStorage) ReadSnapshot() ([]byte, error) {
	if !ms.written {
		return nil, fmt.Errorf("kvstore: mem: %w", ErrNoSnapshot)
	}
	return slices.Clone(ms.data), nil
}

func (ms *MemStorage) WriteSnapshot(data []byte) error {
	ms.data = slices.Clone(data)
	ms.written = true
	return nil
}

func (ms *MemStorage) Exists() bool { return ms.written }

func (ms *MemStorage) Size() int64 { return int64(len(ms.data)) }

func (ms *MemStorage) Close() error { return nil }
