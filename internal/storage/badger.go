// ABOUTME: Badger-backed Blob implementation, the default backend.
// ABOUTME: A local embedded KV store standing in for device storage.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"
)

// BadgerBlob stores records in an embedded Badger database.
type BadgerBlob struct {
	db *badger.DB
}

// Compile-time check that BadgerBlob implements Blob.
var _ Blob = (*BadgerBlob)(nil)

// OpenBadger opens or creates a Badger database rooted at dir.
func OpenBadger(dir string) (*BadgerBlob, error) {
	if err := os.MkdirAll(filepath.Dir(dir), 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerBlob{db: db}, nil
}

func (b *BadgerBlob) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (b *BadgerBlob) Put(key string, value []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (b *BadgerBlob) Close() error {
	return b.db.Close()
}
