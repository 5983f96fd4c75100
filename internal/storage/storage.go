package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Category separates project images from recipe images
type Category string

const (
	CategoryProjects Category = "projects"
	CategoryRecipes  Category = "recipes"
)

// Categories lists every image category
var Categories = []Category{CategoryProjects, CategoryRecipes}

var (
	// ErrImageNotFound is returned when a recorded image has no stored object
	ErrImageNotFound = errors.New("image not found")
	// ErrInvalidImageName is returned for names that would escape their category
	ErrInvalidImageName = errors.New("invalid image name")
)

// ImageInfo describes a stored image
type ImageInfo struct {
	Name    string
	ModTime time.Time
}

// ImageStore persists image bytes by category and name
type ImageStore interface {
	Save(ctx context.Context, category Category, name string, r io.Reader) error
	Load(ctx context.Context, category Category, name string) ([]byte, error)
	Delete(ctx context.Context, category Category, name string) error
	List(ctx context.Context, category Category) ([]ImageInfo, error)
}

// validate rejects unknown categories and names containing path elements
func validate(category Category, name string) error {
	switch category {
	case CategoryProjects, CategoryRecipes:
	default:
		return fmt.Errorf("unknown image category %q", category)
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidImageName, name)
	}
	return nil
}
