// Package sqlite provides a SQLite-backed implementation of ports.Store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Internmain07/I-INTERN-sub000/internal/adapters/wire"
	"github.com/Internmain07/I-INTERN-sub000/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS applications (
	id                 TEXT PRIMARY KEY,
	status             TEXT NOT NULL,
	applied_at         INTEGER NOT NULL,
	offer_sent_at      INTEGER,
	offer_responded_at INTEGER,
	hired_at           INTEGER
);
`

// Store persists application records in SQLite. The status column holds the
// canonical snake_case form produced by the wire package, and Save performs
// its optimistic check against that column so concurrent transitions on one
// record resolve to a single winner.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite application store and bootstraps the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load retrieves the record with the given id.
func (s *Store) Load(ctx context.Context, id string) (domain.Record, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT id, status, applied_at, offer_sent_at, offer_responded_at, hired_at
		FROM applications WHERE id = ?`, id)
	return scanRecord(row)
}

// Save persists the record if the stored status still equals expect.
// Returns domain.ErrConflict when the status moved underneath the caller
// and domain.ErrNotFound when the record does not exist.
func (s *Store) Save(ctx context.Context, rec domain.Record, expect domain.Status) error {
	res, err := s.sqlDB.ExecContext(ctx, `
		UPDATE applications
		SET status = ?, offer_sent_at = ?, offer_responded_at = ?, hired_at = ?
		WHERE id = ? AND status = ?`,
		wire.FormatStatus(rec.Status),
		nullMillis(rec.OfferSentAt),
		nullMillis(rec.OfferRespondedAt),
		nullMillis(rec.HiredAt),
		rec.ID,
		wire.FormatStatus(expect),
	)
	if err != nil {
		return fmt.Errorf("save application: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save application: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing updated: distinguish a missing record from a lost race.
	if _, err := s.Load(ctx, rec.ID); err != nil {
		return err
	}
	return domain.ErrConflict
}

// Create persists a fresh record. Fails with domain.ErrConflict if the id
// already exists.
func (s *Store) Create(ctx context.Context, rec domain.Record) error {
	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO applications (id, status, applied_at, offer_sent_at, offer_responded_at, hired_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		wire.FormatStatus(rec.Status),
		toMillis(rec.AppliedAt),
		nullMillis(rec.OfferSentAt),
		nullMillis(rec.OfferRespondedAt),
		nullMillis(rec.HiredAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrConflict
		}
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

// List returns all records ordered by application time.
func (s *Store) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, status, applied_at, offer_sent_at, offer_responded_at, hired_at
		FROM applications ORDER BY applied_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.Record, error) {
	var (
		rec       domain.Record
		rawStatus string
		appliedAt int64
		offerSent sql.NullInt64
		responded sql.NullInt64
		hiredAt   sql.NullInt64
	)
	err := row.Scan(&rec.ID, &rawStatus, &appliedAt, &offerSent, &responded, &hiredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("scan application: %w", err)
	}

	// An unknown stored status falls back to Applied per the boundary
	// contract; the store stays readable either way.
	rec.Status, _ = wire.ParseStatus(rawStatus)
	rec.AppliedAt = fromMillis(appliedAt)
	if offerSent.Valid {
		rec.OfferSentAt = fromMillis(offerSent.Int64)
	}
	if responded.Valid {
		rec.OfferRespondedAt = fromMillis(responded.Int64)
	}
	if hiredAt.Valid {
		rec.HiredAt = fromMillis(hiredAt.Int64)
	}
	return rec, nil
}

func nullMillis(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return toMillis(t)
}
