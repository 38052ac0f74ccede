package kvstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const fileReadChunk = 4096

// FileStorage keeps the snapshot in a single file, replaced atomically on
// every write via a temp file and rename.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (fs *FileStorage) Path() string { return fs.path }

func (fs *FileStorage) ReadSnapshot() ([]byte, error) {
	f, err := os.Open(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("kvstore: %s: %w", fs.path, ErrNoSnapshot)
		}
		return nil, fmt.Errorf("kvstore: read snapshot: %w", err)
	}
	defer f.Close()

	var data []byte
	chunk := make([]byte, fileReadChunk)
	for {
		n, err := f.Read(chunk)
		data = append(data, chunk[:n]...)
		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return nil, fmt.Errorf("kvstore: read snapshot: %w", err)
		}
	}
}

func (fs *FileStorage) WriteSnapshot(data []byte) error {
	dir := filepath.Dir(fs.path)
	tmp, err := os.CreateTemp(dir, ".kvstore-*")
	if err != nil {
		return fmt.Errorf("kvstore: write snapshot: %w", err)
	}
	tmpName := tmp.Name()

	for off := 0; off < len(data); off += fileReadChunk {
		end := min(off+fileReadChunk, len(data))
		if _, err := tmp.Write(data[off:end]); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("kvstore: write snapshot: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("kvstore: write snapshot: %w", err)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("kvstore: write snapshot: %w", err)
	}
	return nil
}

func (fs *FileStorage) Exists() bool {
	_, err := os.Stat(fs.path)
	return err == nil
}

func (fs *FileStorage) Size() int64 {
	st, err := os.Stat(fs.path)
	if err != nil {
		return 0
	}
	return st.Size()
}

func (fs *FileStorage) Close() error { return nil }
