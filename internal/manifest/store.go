package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"pkg.jsn.cam/datagen/pkg/dataset"
)

var runsBucket = []byte("runs")

// Run records one generation run: which files were produced, with what
// seed, and when.
type Run struct {
	ID        string             `json:"id"`
	StartedAt time.Time          `json:"started_at"`
	Seed      uint64             `json:"seed"`
	Files     []dataset.FileInfo `json:"files"`
}

// NewRun assembles a Run with a fresh ID for the given results.
func NewRun(startedAt time.Time, seed uint64, files []dataset.FileInfo) Run {
	return Run{
		ID:        uuid.New().String(),
		StartedAt: startedAt,
		Seed:      seed,
		Files:     files,
	}
}

// Store is a bbolt-backed manifest of generation runs.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the manifest database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a run keyed by its ID.
func (s *Store) Record(run Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run %s: %w", run.ID, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), data)
	})
}

// Get retrieves a run by ID.
func (s *Store) Get(id string) (Run, error) {
	var run Run
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("run not found: %s", id)
		}
		return json.Unmarshal(v, &run)
	})
	return run, err
}

// List returns all recorded runs.
func (s *Store) List() ([]Run, error) {
	var runs []Run
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(_, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return err
			}
			runs = append(runs, run)
			return nil
		})
	})
	return runs, err
}
