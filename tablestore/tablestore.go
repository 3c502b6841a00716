// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

// Package tablestore persists named feature tables and side data
// collections in a single boltdb file.
package tablestore

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	featuretable "github.com/molecula/featuretable"
)

var (
	// ErrStoreClosed is returned when operating on a closed store.
	ErrStoreClosed = errors.New("tablestore: store closed")

	// ErrNotFound is returned when the named table or side data
	// collection is not in the store.
	ErrNotFound = errors.New("tablestore: name not found")

	bucketTables   = []byte("tables")
	bucketSideData = []byte("sidedata")
)

// Store is an on-disk storage engine for named feature tables and side
// data collections.
type Store struct {
	mu sync.RWMutex
	db *bolt.DB

	// File path to database file.
	Path string
}

// NewStore returns a new instance of Store backed by the given path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Open opens and initializes the store file.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := bolt.Open(s.Path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return errors.Wrapf(err, "opening store: %s", s.Path)
	}
	s.db = db

	return s.db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketTables); err != nil {
			return errors.Wrap(err, "creating tables bucket")
		}
		if _, err := tx.CreateBucketIfNotExists(bucketSideData); err != nil {
			return errors.Wrap(err, "creating sidedata bucket")
		}
		return nil
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Remove deletes the store file from disk.
func (s *Store) Remove() error {
	if err := s.Close(); err != nil {
		return err
	}
	return os.Remove(s.Path)
}

// tableEnvelope is the persisted form of a Matrix: id sequences plus the
// non-zero entries in coordinate form, so disk usage tracks occupancy.
type tableEnvelope struct {
	SampleIDs  []string            `json:"sample_ids"`
	FeatureIDs []string            `json:"feature_ids"`
	Cells      []featuretable.Cell `json:"cells"`
}

// PutTable stores the matrix under name, replacing any previous value.
func (s *Store) PutTable(name string, m *featuretable.Matrix) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrStoreClosed
	}

	buf, err := json.Marshal(tableEnvelope{
		SampleIDs:  m.SampleIDs(),
		FeatureIDs: m.FeatureIDs(),
		Cells:      m.Cells(),
	})
	if err != nil {
		return errors.Wrap(err, "encoding table")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTables).Put([]byte(name), buf)
	})
}

// Table returns the matrix stored under name.
func (s *Store) Table(name string) (*featuretable.Matrix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrStoreClosed
	}

	var env tableEnvelope
	if err := s.db.View(func(tx *bolt.Tx) error {
		buf := tx.Bucket(bucketTables).Get([]byte(name))
		if buf == nil {
			return ErrNotFound
		}
		return json.Unmarshal(buf, &env)
	}); err != nil {
		return nil, err
	}
	m, err := featuretable.NewMatrixFromCells(env.Cells, env.SampleIDs, env.FeatureIDs)
	return m, errors.Wrapf(err, "decoding table %q", name)
}

// DeleteTable removes the named table. Deleting an absent name is not an
// error.
func (s *Store) DeleteTable(name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrStoreClosed
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTables).Delete([]byte(name))
	})
}

// Tables returns the stored table names in key order.
func (s *Store) Tables() ([]string, error) {
	return s.keys(bucketTables)
}

// PutSideData stores the collection under name, replacing any previous
// value.
func (s *Store) PutSideData(name string, d featuretable.SideData) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrStoreClosed
	}

	buf, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "encoding side data")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSideData).Put([]byte(name), buf)
	})
}

// SideData returns the collection stored under name.
func (s *Store) SideData(name string) (featuretable.SideData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrStoreClosed
	}

	var d featuretable.SideData
	if err := s.db.View(func(tx *bolt.Tx) error {
		buf := tx.Bucket(bucketSideData).Get([]byte(name))
		if buf == nil {
			return ErrNotFound
		}
		return json.Unmarshal(buf, &d)
	}); err != nil {
		return nil, err
	}
	return d, nil
}

// DeleteSideData removes the named collection. Deleting an absent name
// is not an error.
func (s *Store) DeleteSideData(name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrStoreClosed
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSideData).Delete([]byte(name))
	})
}

// SideDataNames returns the stored side data names in key order.
func (s *Store) SideDataNames() ([]string, error) {
	return s.keys(bucketSideData)
}

func (s *Store) keys(bucket []byte) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrStoreClosed
	}

	var names []string
	if err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return names, nil
}
