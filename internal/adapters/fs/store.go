// Package fs provides a single-file JSON implementation of ports.Store,
// intended for offline CLI use and tests.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Internmain07/I-INTERN-sub000/internal/adapters/wire"
	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
)

const storeFileName = "applications.json"

// Store implements ports.Store using a JSON file with atomic writes.
// A process-wide mutex serializes writers; the optimistic status check in
// Save still applies so concurrent transitions resolve to one winner.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore creates a Store persisting under the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the full path to the store file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, storeFileName)
}

// Load retrieves the record with the given id.
func (s *Store) Load(ctx context.Context, id string) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return domain.Record{}, err
	}
	rec, ok := records[id]
	if !ok {
		return domain.Record{}, domain.ErrNotFound
	}
	return rec, nil
}

// Save persists the record if the stored status still equals expect.
func (s *Store) Save(ctx context.Context, rec domain.Record, expect domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	current, ok := records[rec.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if current.Status != expect {
		return domain.ErrConflict
	}

	records[rec.ID] = rec
	return s.write(records)
}

// Create persists a fresh record. Fails if the id already exists.
func (s *Store) Create(ctx context.Context, rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := records[rec.ID]; ok {
		return domain.ErrConflict
	}

	records[rec.ID] = rec
	return s.write(records)
}

// List returns all records ordered by application time.
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}

	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppliedAt.Equal(out[j].AppliedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].AppliedAt.Before(out[j].AppliedAt)
	})
	return out, nil
}

// read loads the store file. A missing file is an empty store.
func (s *Store) read() (map[string]domain.Record, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]domain.Record{}, nil
		}
		return nil, err
	}

	var payloads []wire.RecordPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, err
	}

	records := make(map[string]domain.Record, len(payloads))
	for _, p := range payloads {
		rec, err := p.ToRecord()
		if err != nil && !errors.Is(err, domain.ErrUnknownStatus) {
			return nil, err
		}
		records[rec.ID] = rec
	}
	return records, nil
}

// write persists all records atomically (temp file, then rename).
func (s *Store) write(records map[string]domain.Record) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}

	payloads := make([]wire.RecordPayload, 0, len(records))
	for _, rec := range records {
		payloads = append(payloads, wire.FromRecord(rec))
	}
	sort.Slice(payloads, func(i, j int) bool { return payloads[i].ID < payloads[j].ID })

	data, err := json.MarshalIndent(payloads, "", "  ")
	if err != nil {
		return err
	}

	path := s.Path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
