package store

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"civicdispatch-be/models"
)

// FileStore persists the collection as one JSON array in a single file,
// mirroring the product's original single-blob storage.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// LoadAll reads the whole collection. Absent or corrupt files yield an empty
// collection; empty state is always valid.
func (f *FileStore) LoadAll(_ context.Context) []models.Issue {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return []models.Issue{}
	}
	var issues []models.Issue
	if err := json.Unmarshal(data, &issues); err != nil {
		log.Printf("Unparsable issue collection at %s, treating as empty: %v", f.Path, err)
		return []models.Issue{}
	}
	if issues == nil {
		issues = []models.Issue{}
	}
	return issues
}

// SaveAll replaces the persisted collection. The write goes through a temp
// file and rename so readers never observe a torn record.
func (f *FileStore) SaveAll(_ context.Context, issues []models.Issue) error {
	if issues == nil {
		issues = []models.Issue{}
	}
	data, err := json.Marshal(issues)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.Path), ".civic_issues-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}
