package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps credentials in a JSON file readable only by the owner
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads credentials from disk. A missing or unreadable file yields
// empty credentials rather than an error: a corrupt session file must not
// wedge the client, it just means signing in again.
func (s *FileStore) Load() (Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Credentials{}, nil
		}
		return Credentials{}, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, nil
	}
	return creds, nil
}

// Save writes credentials to disk, creating parent directories as needed
func (s *FileStore) Save(creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the session file if present
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
