package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Keeps all namespaces in a single JSON file, mapping namespace to
// encoded list. The file is rewritten on every save.
type FileStorage struct {
	Path string

	mutex sync.Mutex
}

func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("file storage requires a path")
	}
	return &FileStorage{Path: path}, nil
}

func (f *FileStorage) LoadFavorites(namespace string) ([]string, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	records, err := f.load()
	if err != nil {
		return nil, err
	}

	value, found := records[namespace]
	if !found {
		return []string{}, nil
	}
	return decodeKeys(value)
}

func (f *FileStorage) SaveFavorites(namespace string, keys []string) error {
	value, err := encodeKeys(keys)
	if err != nil {
		return err
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	records, err := f.load()
	if err != nil {
		// Don't let one corrupt file block saving forever.
		records = map[string]string{}
	}
	records[namespace] = value

	return f.save(records)
}

func (f *FileStorage) Close() error {
	return nil
}

func (f *FileStorage) load() (map[string]string, error) {
	records := map[string]string{}

	buf, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}

	err = json.Unmarshal(buf, &records)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling: %w", err)
	}

	return records, nil
}

func (f *FileStorage) save(records map[string]string) error {
	buf, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshalling: %w", err)
	}

	err = os.WriteFile(f.Path, buf, 0644)
	if err != nil {
		return fmt.Errorf("writing: %w", err)
	}

	return nil
}
