package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is the persistence collaborator every list service writes
// through: one opaque string payload per named collection. Load happens
// once, at service construction; Save after every mutation.
type Store interface {
	Load(name string) (payload string, ok bool, err error)
	Save(name, payload string) error
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// OpenStore picks the backend from STORE_DRIVER: "file" (default) keeps
// one JSON file per collection under DATA_DIR, "mysql" keeps payloads
// in a store_records table.
func OpenStore() (Store, error) {
	driver := strings.ToLower(envOrDefault("STORE_DRIVER", "file"))
	switch driver {
	case "file":
		return NewFileStore(envOrDefault("DATA_DIR", "./data"))
	case "mysql":
		return ConnectDatabase()
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want file or mysql)", driver)
	}
}

// FileStore writes each collection to <dir>/<name>.json, whole-payload,
// synchronously. Matches the single-operator model: no locking beyond
// what the services themselves do.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) Load(name string) (string, bool, error) {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(b), true, nil
}

func (s *FileStore) Save(name, payload string) error {
	return os.WriteFile(s.path(name), []byte(payload), 0o644)
}
