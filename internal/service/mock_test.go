package service

import (
	"context"
	"errors"
	"io"

	"kitchen-planner-api/internal/storage"
)

// MockImageStore is a mock implementation of storage.ImageStore
type MockImageStore struct {
	SaveFunc   func(ctx context.Context, category storage.Category, name string, r io.Reader) error
	LoadFunc   func(ctx context.Context, category storage.Category, name string) ([]byte, error)
	DeleteFunc func(ctx context.Context, category storage.Category, name string) error
	ListFunc   func(ctx context.Context, category storage.Category) ([]storage.ImageInfo, error)
}

var errMockNotSet = errors.New("mock function not set")

func (m *MockImageStore) Save(ctx context.Context, category storage.Category, name string, r io.Reader) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, category, name, r)
	}
	return errMockNotSet
}

func (m *MockImageStore) Load(ctx context.Context, category storage.Category, name string) ([]byte, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, category, name)
	}
	return nil, errMockNotSet
}

func (m *MockImageStore) Delete(ctx context.Context, category storage.Category, name string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, category, name)
	}
	return errMockNotSet
}

func (m *MockImageStore) List(ctx context.Context, category storage.Category) ([]storage.ImageInfo, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, category)
	}
	return nil, errMockNotSet
}
