// Package storage keeps a small on-disk history of completed runs. It stores
// summaries only, never resource payloads: bookkeeping, not state.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var bucketRuns = []byte("runs")

// RunRecord summarizes one completed enumeration run.
type RunRecord struct {
	Timestamp       string   `json:"timestamp"`
	AccountID       string   `json:"account_id"`
	Regions         []string `json:"regions"`
	Resources       int      `json:"resources"`
	ResourceTypes   int      `json:"resource_types"`
	NotListed       int      `json:"not_listed"`
	OutputFile      string   `json:"output_file"`
	DurationSeconds float64  `json:"duration_seconds"`
}

// RunStore is a bbolt-backed append-only run history.
type RunStore struct {
	db *bbolt.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*RunStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRuns)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history database: %w", err)
	}

	return &RunStore{db: db}, nil
}

// Close closes the store.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// Append records one run. Keys are timestamp plus a sequence number, so runs
// sharing a timestamp still sort in insertion order.
func (s *RunStore) Append(record RunRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRuns)

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}

		value, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to encode run record: %w", err)
		}

		key := fmt.Sprintf("%s-%08d", record.Timestamp, seq)
		return bucket.Put([]byte(key), value)
	})
}

// List returns up to limit run records, newest first. A non-positive limit
// returns everything.
func (s *RunStore) List(limit int) ([]RunRecord, error) {
	var records []RunRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(bucketRuns).Cursor()
		for k, v := cursor.Last(); k != nil; k, v = cursor.Prev() {
			if limit > 0 && len(records) >= limit {
				break
			}
			var record RunRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to decode run record %s: %w", k, err)
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
