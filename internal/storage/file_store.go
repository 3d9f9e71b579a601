package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStore buffers uploaded files on disk while a request is in flight.
type FileStore struct {
	basePath string
}

// NewFileStore creates the base directory if missing.
func NewFileStore(basePath string) (*FileStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("upload base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// SaveUpload writes an uploaded file under the base directory and returns
// its path.
func (f *FileStore) SaveUpload(name string, r io.Reader) (string, error) {
	target := filepath.Join(f.basePath, safeFilename(name))
	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create buffered file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("write buffered file: %w", err)
	}
	return target, nil
}

// Remove deletes a buffered file.
func (f *FileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove buffered file: %w", err)
	}
	return nil
}

func safeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	name = strings.TrimSpace(name)
	if name == "" {
		return "upload"
	}
	return name
}
