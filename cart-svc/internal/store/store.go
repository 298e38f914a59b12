package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Collection string

const (
	CollectionCart      Collection = "cart"
	CollectionFavorites Collection = "favorites"
)

// Store is durable key-value persistence for the session's collections.
// Get fails closed: absent or corrupt data reads as an empty collection and
// never surfaces an error for it. Save overwrites the whole collection and
// emits the collection's change event.
type Store interface {
	Get(c Collection, into interface{}) error
	Save(c Collection, data interface{}) error
}

// FileStore keeps one JSON file per collection under a session directory.
type FileStore struct {
	dir string
	bus *Bus
}

func NewFileStore(dir string, bus *Bus) *FileStore {
	return &FileStore{dir: dir, bus: bus}
}

func (s *FileStore) path(c Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}

func (s *FileStore) Get(c Collection, into interface{}) error {
	data, err := os.ReadFile(s.path(c))
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, into); err != nil {
		// Corrupt payload reads as empty rather than poisoning the session.
		return nil
	}
	return nil
}

func (s *FileStore) Save(c Collection, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(s.path(c), payload, 0644); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(NewEvent(c))
	}
	return nil
}

var _ Store = (*FileStore)(nil)
