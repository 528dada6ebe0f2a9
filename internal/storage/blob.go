// ABOUTME: Blob persistence contract for store snapshots.
// ABOUTME: Each store owns one key and rewrites its full record on every mutation.
package storage

import "errors"

// ErrNotFound is returned by Get when a key has no stored value.
var ErrNotFound = errors.New("not found")

// Blob is a key/value store holding one serialized record per key.
// Writes replace the whole value; there are no partial updates.
type Blob interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}
