package storage

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStorage is a flat, directory-scoped store. Names are relative to the base directory.
type FileStorage interface {
	EnsureDir() error
	List(match func(name string) bool) ([]string, error)
	Save(name string, data io.Reader) error
	Get(name string) (io.ReadCloser, error)
	Delete(name string) error
	Exists(name string) bool
	Path(name string) string
}

type fileStorage struct {
	basePath string
}

func NewFileStorage(basePath string) FileStorage {
	return &fileStorage{basePath: basePath}
}

func (s *fileStorage) EnsureDir() error {
	return os.MkdirAll(s.basePath, 0755)
}

// List returns the names of regular files directly inside the base directory
// accepted by match, sorted by name. Subdirectories are never descended into.
func (s *fileStorage) List(match func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !match(entry.Name()) {
			continue
		}
		if !s.isRegular(entry) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// isRegular follows symlinks, so a link to a file counts as a file.
func (s *fileStorage) isRegular(entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(s.Path(entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Save writes data to name. A failed write leaves no file behind.
func (s *fileStorage) Save(name string, data io.Reader) error {
	fullPath := s.Path(name)

	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}

	if _, err = io.Copy(file, data); err != nil {
		file.Close()
		os.Remove(fullPath)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(fullPath)
		return err
	}
	return nil
}

func (s *fileStorage) Get(name string) (io.ReadCloser, error) {
	return os.Open(s.Path(name))
}

func (s *fileStorage) Delete(name string) error {
	return os.Remove(s.Path(name))
}

func (s *fileStorage) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return !os.IsNotExist(err)
}

func (s *fileStorage) Path(name string) string {
	return filepath.Join(s.basePath, name)
}
