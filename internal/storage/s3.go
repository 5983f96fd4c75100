package storage

import (
	"context"
	"errors"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"kitchen-planner-api/internal/client"
)

const s3KeyPrefix = "images"

// S3ImageStore keeps images as objects below images/<category>/ in a bucket
type S3ImageStore struct {
	client client.S3ClientInterface
}

// NewS3ImageStore creates a store on top of an S3 client
func NewS3ImageStore(c client.S3ClientInterface) *S3ImageStore {
	return &S3ImageStore{client: c}
}

func key(category Category, name string) string {
	return path.Join(s3KeyPrefix, string(category), name)
}

func (s *S3ImageStore) Save(ctx context.Context, category Category, name string, r io.Reader) error {
	if err := validate(category, name); err != nil {
		return err
	}
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.client.PutObject(ctx, key(category, name), r, contentType)
}

func (s *S3ImageStore) Load(ctx context.Context, category Category, name string) ([]byte, error) {
	if err := validate(category, name); err != nil {
		return nil, err
	}
	data, err := s.client.GetObject(ctx, key(category, name))
	if errors.Is(err, client.ErrObjectNotFound) {
		return nil, ErrImageNotFound
	}
	return data, err
}

func (s *S3ImageStore) Delete(ctx context.Context, category Category, name string) error {
	if err := validate(category, name); err != nil {
		return err
	}
	err := s.client.DeleteObject(ctx, key(category, name))
	if errors.Is(err, client.ErrObjectNotFound) {
		return ErrImageNotFound
	}
	return err
}

func (s *S3ImageStore) List(ctx context.Context, category Category) ([]ImageInfo, error) {
	if err := validate(category, "x"); err != nil {
		return nil, err
	}
	prefix := key(category, "") + "/"
	objects, err := s.client.ListObjects(ctx, prefix)
	if err != nil {
		return nil, err
	}

	images := make([]ImageInfo, 0, len(objects))
	for _, obj := range objects {
		name := strings.TrimPrefix(obj.Key, prefix)
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		images = append(images, ImageInfo{Name: name, ModTime: obj.LastModified})
	}
	return images, nil
}
