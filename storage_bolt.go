package kvstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var boltEntriesBucket = []byte("entries")

const (
	recordSingle uint8 = 1
	recordMulti  uint8 = 2
)

// boltRecord is the msgpack encoding of one entry value inside the Bolt
// bucket. Kind disambiguates Single("") from an absent value.
type boltRecord struct {
	Kind   uint8    `msgpack:"k"`
	Single string   `msgpack:"s"`
	Multi  []string `msgpack:"m"`
}

// BoltStorage keeps the snapshot in a Bolt database, one msgpack record
// per key inside a single bucket. Writes replace the bucket wholesale.
type BoltStorage struct {
	bdb *bbolt.DB
}

func OpenBoltStorage(path string) (*BoltStorage, error) {
	bopt := &bbolt.Options{Timeout: 10 * time.Second}
	bdb, err := bbolt.Open(path, 0666, bopt)
	if err != nil {
		return nil, fmt.Errorf("kvstore: %w", err)
	}
	return &BoltStorage{bdb: bdb}, nil
}

func (bs *BoltStorage) ReadSnapshot() ([]byte, error) {
	table := make(map[string]Value)
	err := bs.bdb.View(func(btx *bbolt.Tx) error {
		buck := btx.Bucket(boltEntriesBucket)
		if buck == nil {
			return ErrNoSnapshot
		}
		return buck.ForEach(func(k, raw []byte) error {
			v, err := decodeBoltRecord(raw)
			if err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
			table[string(k)] = v
			return nil
		})
	})
	if errors.Is(err, ErrNoSnapshot) {
		return nil, fmt.Errorf("kvstore: bolt: %w", ErrNoSnapshot)
	}
	if err != nil {
		return nil, fmt.Errorf("kvstore: bolt read: %w", err)
	}

	snap := New(Options{})
	snap.adoptTable(table)
	return Marshal(snap, ModeCompact), nil
}

func (bs *BoltStorage) WriteSnapshot(data []byte) error {
	table, err := parseTable(data)
	if err != nil {
		return err
	}
	err = bs.bdb.Update(func(btx *bbolt.Tx) error {
		if btx.Bucket(boltEntriesBucket) != nil {
			if err := btx.DeleteBucket(boltEntriesBucket); err != nil {
				return err
			}
		}
		buck, err := btx.CreateBucket(boltEntriesBucket)
		if err != nil {
			return err
		}
		for key, v := range table {
			raw, err := encodeBoltRecord(v)
			if err != nil {
				return err
			}
			if err := buck.Put([]byte(key), raw); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("kvstore: bolt write: %w", err)
	}
	return nil
}

func (bs *BoltStorage) Exists() bool {
	var found bool
	_ = bs.bdb.View(func(btx *bbolt.Tx) error {
		found = btx.Bucket(boltEntriesBucket) != nil
		return nil
	})
	return found
}

// Size returns the total size of keys and values in the entries bucket.
// Counted record by record: bucket stats report zero page usage for
// buckets small enough to be inlined in their parent.
func (bs *BoltStorage) Size() int64 {
	var size int64
	_ = bs.bdb.View(func(btx *bbolt.Tx) error {
		buck := btx.Bucket(boltEntriesBucket)
		if buck == nil {
			return nil
		}
		return buck.ForEach(func(k, v []byte) error {
			size += int64(len(k) + len(v))
			return nil
		})
	})
	return size
}

func (bs *BoltStorage) Close() error {
	return bs.bdb.Close()
}

func encodeBoltRecord(v Value) ([]byte, error) {
	var rec boltRecord
	switch v := v.(type) {
	case Single:
		rec = boltRecord{Kind: recordSingle, Single: string(v)}
	case Multi:
		rec = boltRecord{Kind: recordMulti, Multi: v}
	}
	return msgpack.Marshal(rec)
}

func decodeBoltRecord(raw []byte) (Value, error) {
	var rec boltRecord
	if err := msgpack.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	switch rec.Kind {
	case recordSingle:
		return Single(rec.Single), nil
	case recordMulti:
		if len(rec.Multi) == 0 {
			return nil, fmt.Errorf("empty list record")
		}
		return Multi(rec.Multi), nil
	default:
		return nil, fmt.Errorf("unknown record kind %d", rec.Kind)
	}
}
