package config

import (
	"encoding/json"
	"os"
	"strconv"
)

// Store is the persistence collaborator for sink configuration. The
// canonical form is a single flat JSON object with every value serialized
// as a string.
type Store interface {
	GetString(key, def string) string
	GetLong(key string, def int64) int64
	SetConfigData(blob string)
	GetConfigData() string
	WriteConfig() error
}

// MemStore keeps the blob in memory. Used in tests and when no state path
// is configured.
type MemStore struct {
	blob   string
	fields map[string]string
	writes int
}

func NewMemStore(blob string) *MemStore {
	s := &MemStore{}
	s.SetConfigData(blob)
	return s
}

func (s *MemStore) GetString(key, def string) string {
	if v, ok := s.fields[key]; ok {
		return v
	}
	return def
}

func (s *MemStore) GetLong(key string, def int64) int64 {
	v, ok := s.fields[key]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (s *MemStore) SetConfigData(blob string) {
	s.blob = blob
	s.fields = parseBlob(blob)
}

func (s *MemStore) GetConfigData() string {
	return s.blob
}

func (s *MemStore) WriteConfig() error {
	s.writes++
	return nil
}

// Writes reports how many times WriteConfig was called.
func (s *MemStore) Writes() int {
	return s.writes
}

// FileStore persists the blob to a file on WriteConfig.
type FileStore struct {
	MemStore
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		s.SetConfigData("")
		return s, nil
	}
	s.SetConfigData(string(data))
	return s, nil
}

func (s *FileStore) WriteConfig() error {
	s.writes++
	return os.WriteFile(s.path, []byte(s.blob), 0o644)
}

func parseBlob(blob string) map[string]string {
	fields := make(map[string]string)
	if blob == "" {
		return fields
	}
	// Malformed blobs yield an empty field set, never an error.
	_ = json.Unmarshal([]byte(blob), &fields)
	return fields
}
