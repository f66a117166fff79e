package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BucketState holds the document record.
const BucketState = "state"

// BoltBackend keeps the document as one record in a bbolt database.
type BoltBackend struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database at path and its bucket. A second
// process holding the file lock makes this fail after one second.
func OpenBolt(path string) (*BoltBackend, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(BucketState)); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", BucketState, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltBackend{db: db}, nil
}

// Read returns a copy of the stored record, or ErrNotFound.
func (b *BoltBackend) Read() ([]byte, error) {
	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bk := tx.Bucket([]byte(BucketState))
		if bk == nil {
			return fmt.Errorf("bucket %s not found", BucketState)
		}

		v := bk.Get([]byte(Key))
		if v == nil {
			return ErrNotFound
		}

		// v is only valid during the transaction.
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	})
	return data, err
}

// Write stores data in a single update transaction.
func (b *BoltBackend) Write(data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bk := tx.Bucket([]byte(BucketState))
		if bk == nil {
			return fmt.Errorf("bucket %s not found", BucketState)
		}
		return bk.Put([]byte(Key), data)
	})
}

// Close closes the database.
func (b *BoltBackend) Close() error {
	return b.db.Close()
}
