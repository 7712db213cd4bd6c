package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sgarcia/romaday/internal/models"
	"github.com/sgarcia/romaday/internal/trip"
)

type fileStore struct {
	Version     int                 `json:"version"`
	Namespace   string              `json:"namespace"`
	Completions []models.Completion `json:"completions"`
	Track       []models.TrackPoint `json:"track"`
}

type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	return s.write(&fileStore{Version: 1, Namespace: trip.StorageNamespace})
}

func (s *JSONStore) read() (*fileStore, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	store := &fileStore{}
	if err := json.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	// Progress recorded against a different itinerary version is stale
	// by definition; start over rather than mis-merge.
	if store.Namespace != trip.StorageNamespace {
		return nil, ErrNoData
	}
	return store, nil
}

func (s *JSONStore) write(store *fileStore) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

// readOrEmpty loads the store for a write operation, falling back to a
// fresh store when nothing usable exists.
func (s *JSONStore) readOrEmpty() *fileStore {
	store, err := s.read()
	if err != nil {
		return &fileStore{Version: 1, Namespace: trip.StorageNamespace}
	}
	return store
}

func (s *JSONStore) LoadCompletions() ([]models.Completion, error) {
	store, err := s.read()
	if err != nil {
		return nil, err
	}
	if len(store.Completions) == 0 {
		return nil, ErrNoData
	}
	return store.Completions, nil
}

func (s *JSONStore) SaveCompletions(completions []models.Completion) error {
	store := s.readOrEmpty()
	store.Completions = completions
	return s.write(store)
}

func (s *JSONStore) ResetCompletions() error {
	store := s.readOrEmpty()
	store.Completions = nil
	return s.write(store)
}

func (s *JSONStore) AppendTrackPoint(p models.TrackPoint) error {
	store := s.readOrEmpty()
	store.Track = append(store.Track, p)
	return s.write(store)
}

func (s *JSONStore) TrackPoints() ([]models.TrackPoint, error) {
	store, err := s.read()
	if err != nil {
		return nil, err
	}
	return store.Track, nil
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Close() error {
	return nil
}
