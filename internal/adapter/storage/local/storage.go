// Package local stores asset files on the local filesystem and serves them
// under a configurable URL prefix.
package local

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nmoreaux/storyforge-backend/internal/config"
)

// Storage writes asset files into a single flat directory.
type Storage struct {
	dir     string
	baseURL string
}

// New creates the media directory if needed and returns a Storage.
func New(cfg config.MediaConfig) (*Storage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create media dir %s: %w", cfg.Dir, err)
	}
	return &Storage{
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Save writes data under the given filename and returns the byte count.
func (s *Storage) Save(filename string, data []byte) (int64, error) {
	if err := validFilename(filename); err != nil {
		return 0, err
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("storage: write %s: %w", filename, err)
	}
	return int64(len(data)), nil
}

// Delete removes the file for the given filename. A missing file is not an
// error: the asset record is the source of truth and the file may already
// be gone.
func (s *Storage) Delete(filename string) error {
	if err := validFilename(filename); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove %s: %w", filename, err)
	}
	return nil
}

// URL returns the public URL for a stored filename.
func (s *Storage) URL(filename string) string {
	return s.baseURL + "/" + filename
}

// Dir returns the directory files are stored in.
func (s *Storage) Dir() string {
	return s.dir
}

// validFilename rejects names that could escape the media directory.
func validFilename(filename string) error {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return fmt.Errorf("storage: invalid filename %q", filename)
	}
	return nil
}
