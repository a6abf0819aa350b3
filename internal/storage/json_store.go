package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stemsi/exstem-roster/internal/model"
)

// JSONFileStore persists roster snapshots as pretty-printed JSON arrays.
type JSONFileStore struct {
	dir string
}

// NewJSONFileStore creates a store that resolves relative file names under dir.
func NewJSONFileStore(dir string) *JSONFileStore {
	return &JSONFileStore{dir: dir}
}

// Path returns the file path a name resolves to.
func (s *JSONFileStore) Path(name string) string {
	if filepath.IsAbs(name) || s.dir == "" {
		return name
	}
	return filepath.Join(s.dir, name)
}

// Save writes records to the named file, replacing it atomically.
func (s *JSONFileStore) Save(ctx context.Context, name string, records []model.StudentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if records == nil {
		records = []model.StudentRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')

	path := s.Path(name)
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Load reads and parses the named file. The returned error wraps the cause,
// so a missing file can be detected with errors.Is(err, fs.ErrNotExist).
func (s *JSONFileStore) Load(ctx context.Context, name string) ([]model.StudentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []model.StudentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}
