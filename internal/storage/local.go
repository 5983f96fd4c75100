package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalImageStore keeps images as flat files below <root>/<category>/
type LocalImageStore struct {
	root string
}

// NewLocalImageStore creates the category directories below root
func NewLocalImageStore(root string) (*LocalImageStore, error) {
	for _, c := range Categories {
		if err := os.MkdirAll(filepath.Join(root, string(c)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create image directory: %w", err)
		}
	}
	return &LocalImageStore{root: root}, nil
}

func (s *LocalImageStore) path(category Category, name string) string {
	return filepath.Join(s.root, string(category), name)
}

// Save writes to a temporary file first so readers never see partial images
func (s *LocalImageStore) Save(_ context.Context, category Category, name string, r io.Reader) error {
	if err := validate(category, name); err != nil {
		return err
	}

	dir := filepath.Join(s.root, string(category))
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(category, name)); err != nil {
		return fmt.Errorf("failed to store image: %w", err)
	}
	return nil
}

func (s *LocalImageStore) Load(_ context.Context, category Category, name string) ([]byte, error) {
	if err := validate(category, name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(category, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return data, nil
}

func (s *LocalImageStore) Delete(_ context.Context, category Category, name string) error {
	if err := validate(category, name); err != nil {
		return err
	}
	if err := os.Remove(s.path(category, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrImageNotFound
		}
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// List skips directories and in-flight uploads
func (s *LocalImageStore) List(_ context.Context, category Category) ([]ImageInfo, error) {
	if err := validate(category, "x"); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(s.root, string(category)))
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	images := make([]ImageInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		images = append(images, ImageInfo{Name: e.Name(), ModTime: info.ModTime()})
	}
	return images, nil
}
