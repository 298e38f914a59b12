package store

import (
	"encoding/json"
	"sync"
)

// MemoryStore holds collections in memory. Used in tests and as a fallback
// when no data directory is configured.
type MemoryStore struct {
	mu   sync.Mutex
	data map[Collection][]byte
	bus  *Bus
}

func NewMemoryStore(bus *Bus) *MemoryStore {
	return &MemoryStore{data: make(map[Collection][]byte), bus: bus}
}

func (s *MemoryStore) Get(c Collection, into interface{}) error {
	s.mu.Lock()
	payload, ok := s.data[c]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(payload, into); err != nil {
		return nil
	}
	return nil
}

func (s *MemoryStore) Save(c Collection, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[c] = payload
	s.mu.Unlock()
	if s.bus != nil {
		s.bus.Publish(NewEvent(c))
	}
	return nil
}

var _ Store = (*MemoryStore)(nil)
