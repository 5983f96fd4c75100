package client

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockS3Client implements S3ClientInterface in memory for tests
type MockS3Client struct {
	mu      sync.Mutex
	objects map[string]mockObject

	// Optional function overrides for custom test behavior
	PutObjectFunc    func(ctx context.Context, key string, body io.Reader, contentType string) error
	GetObjectFunc    func(ctx context.Context, key string) ([]byte, error)
	DeleteObjectFunc func(ctx context.Context, key string) error
	ListObjectsFunc  func(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

type mockObject struct {
	data         []byte
	lastModified time.Time
}

// NewMockS3Client creates an empty mock bucket
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{objects: make(map[string]mockObject)}
}

// PutObjectAt stores an object with an explicit modification time
func (m *MockS3Client) PutObjectAt(key string, data []byte, lastModified time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = mockObject{data: data, lastModified: lastModified}
}

func (m *MockS3Client) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, key, body, contentType)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.PutObjectAt(key, data, time.Now())
	return nil
}

func (m *MockS3Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return obj.data, nil
}

func (m *MockS3Client) DeleteObject(ctx context.Context, key string) error {
	if m.DeleteObjectFunc != nil {
		return m.DeleteObjectFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return ErrObjectNotFound
	}
	delete(m.objects, key)
	return nil
}

func (m *MockS3Client) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	if m.ListObjectsFunc != nil {
		return m.ListObjectsFunc(ctx, prefix)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []ObjectInfo
	for key, obj := range m.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, ObjectInfo{Key: key, LastModified: obj.lastModified})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Ensure MockS3Client implements S3ClientInterface
var _ S3ClientInterface = (*MockS3Client)(nil)
