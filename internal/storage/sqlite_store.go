package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sgarcia/romaday/internal/models"
	"github.com/sgarcia/romaday/internal/trip"
)

const schema = `
CREATE TABLE IF NOT EXISTS completions (
	namespace TEXT NOT NULL,
	id        TEXT NOT NULL,
	completed INTEGER NOT NULL,
	PRIMARY KEY (namespace, id)
);
CREATE TABLE IF NOT EXISTS track_points (
	id          TEXT PRIMARY KEY,
	lat         REAL NOT NULL,
	lng         REAL NOT NULL,
	recorded_at TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	return s.open()
}

// open lazily creates the database and its schema. The schema is two
// flat tables, so it ships embedded instead of as migration files.
func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) LoadCompletions() ([]models.Completion, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, ErrNoData
	}
	if err := s.open(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT id, completed FROM completions WHERE namespace = ?", trip.StorageNamespace)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		var c models.Completion
		var done int
		if err := rows.Scan(&c.ID, &done); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		c.Completed = done != 0
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(completions) == 0 {
		return nil, ErrNoData
	}
	return completions, nil
}

func (s *SQLiteStore) SaveCompletions(completions []models.Completion) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completions WHERE namespace = ?", trip.StorageNamespace); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	for _, c := range completions {
		done := 0
		if c.Completed {
			done = 1
		}
		if _, err := tx.Exec(
			"INSERT INTO completions (namespace, id, completed) VALUES (?, ?, ?)",
			trip.StorageNamespace, c.ID, done); err != nil {
			return fmt.Errorf("failed to save completion %s: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ResetCompletions() error {
	if err := s.open(); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM completions WHERE namespace = ?", trip.StorageNamespace)
	return err
}

func (s *SQLiteStore) AppendTrackPoint(p models.TrackPoint) error {
	if err := s.open(); err != nil {
		return err
	}
	_, err := s.db.Exec(
		"INSERT INTO track_points (id, lat, lng, recorded_at) VALUES (?, ?, ?, ?)",
		p.ID, p.Coords.Lat, p.Coords.Lng, p.RecordedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to record track point: %w", err)
	}
	return nil
}

func (s *SQLiteStore) TrackPoints() ([]models.TrackPoint, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, ErrNoData
	}
	if err := s.open(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT id, lat, lng, recorded_at FROM track_points ORDER BY recorded_at")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer rows.Close()

	var points []models.TrackPoint
	for rows.Next() {
		var p models.TrackPoint
		var ts string
		if err := rows.Scan(&p.ID, &p.Coords.Lat, &p.Coords.Lng, &ts); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			p.RecordedAt = parsed
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// DB exposes the underlying handle for diagnostics.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}
