package storage

import (
	"sync"
)

// In memory implementation of Storage. Values are kept in their
// encoded form so that corrupt data can be simulated in tests.
type MemoryStorage struct {
	Values map[string]string

	mutex sync.Mutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		Values: map[string]string{},
	}
}

func (s *MemoryStorage) LoadFavorites(namespace string) ([]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	value, found := s.Values[namespace]
	if !found {
		return []string{}, nil
	}
	return decodeKeys(value)
}

func (s *MemoryStorage) SaveFavorites(namespace string, keys []string) error {
	value, err := encodeKeys(keys)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.Values[namespace] = value
	return nil
}

func (s *MemoryStorage) Close() error {
	return nil
}
