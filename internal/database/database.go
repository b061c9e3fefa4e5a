// Package database provides durable cache persistence using BoltDB.
//
// Cached artifacts are stored as timestamped JSON blobs. A blob loaded
// after its TTL has elapsed reads as absent; writers always overwrite
// the whole blob. Persistence is best effort: a missing or broken store
// degrades to re-fetching, never to a request failure.
package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	dbFileMode = 0600
	dbDirMode  = 0755

	defaultDBFile = "cache.db"
)

var blobBucket = []byte("blobs")

// Store is the cache persistence interface used by the services.
type Store interface {
	// LoadBlob returns the payload stored under key if it is younger
	// than ttl, or nil when absent or expired.
	LoadBlob(key string, ttl time.Duration) ([]byte, error)
	// SaveBlob overwrites the payload stored under key and stamps it
	// with the current time.
	SaveBlob(key string, payload []byte) error
	// ClearBlob removes the payload stored under key.
	ClearBlob(key string) error
	// Close closes the underlying database.
	Close() error
}

// envelope wraps a payload with its write time, epoch milliseconds.
type envelope struct {
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// BoltStore implements Store on a single-file BoltDB database.
type BoltStore struct {
	db *bolt.DB
}

// NewBolt opens (or creates) the database at dbPath. An empty path uses
// the default file in the current directory.
func NewBolt(dbPath string) (*BoltStore, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, dbFileMode, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(blobBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create blob bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) LoadBlob(key string, ttl time.Duration) ([]byte, error) {
	var payload []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(blobBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			// Unreadable blob counts as absent.
			return nil
		}

		written := time.UnixMilli(env.Timestamp)
		if time.Since(written) >= ttl {
			return nil
		}

		payload = append([]byte(nil), env.Payload...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load blob %q: %w", key, err)
	}

	return payload, nil
}

func (s *BoltStore) SaveBlob(key string, payload []byte) error {
	raw, err := json.Marshal(envelope{
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("failed to encode blob %q: %w", key, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(blobBucket).Put([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to save blob %q: %w", key, err)
	}

	return nil
}

func (s *BoltStore) ClearBlob(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(blobBucket).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to clear blob %q: %w", key, err)
	}
	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
