package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// credentialFile is the on-disk shape of the persisted session.
type credentialFile struct {
	AccessToken string `toml:"access_token"`
}

// FileStore persists the session token as a TOML file with 0600 permissions.
// It is the desktop analogue of the browser's local storage slot.
type FileStore struct {
	path string
}

// NewFileStore creates a file store at path. Parent directories are created
// lazily on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted token. A missing file is not an error.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read credential file: %w", err)
	}

	var creds credentialFile
	if err := toml.Unmarshal(data, &creds); err != nil {
		return "", fmt.Errorf("parse credential file: %w", err)
	}

	return creds.AccessToken, nil
}

// Save writes the token, creating the parent directory if needed.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}

	data, err := toml.Marshal(credentialFile{AccessToken: token})
	if err != nil {
		return fmt.Errorf("encode credential file: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}

	return nil
}

// Clear removes the credential file. A missing file is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}
