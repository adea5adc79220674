package digest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirSource reads the digest layout from a local directory.
type DirSource struct {
	root string
}

// NewDirSource creates a DirSource. root is the directory that contains the
// digests folder; dir is that folder's name.
func NewDirSource(root, dir string) *DirSource {
	return &DirSource{root: filepath.Join(root, filepath.FromSlash(dir))}
}

func (s *DirSource) path(name string) string {
	return filepath.Join(s.root, name)
}

// Index reads and decodes index.json.
func (s *DirSource) Index(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.read(IndexFile)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	return decodeIndex(data)
}

// Exists stats the date's document.
func (s *DirSource) Exists(ctx context.Context, date Date) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := os.Stat(s.path(date.String() + ".md"))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Fetch reads the date's document.
func (s *DirSource) Fetch(ctx context.Context, date Date) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.read(date.String() + ".md")
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", date, err)
	}
	return data, nil
}

func (s *DirSource) read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, err
}
