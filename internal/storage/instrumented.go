package storage

import (
	"context"
	"io"
	"time"
)

// OperationRecorder records the outcome of image store operations
type OperationRecorder interface {
	RecordStorageOperation(backend, operation string, duration time.Duration, err error)
}

// InstrumentedStore times every call of the wrapped store
type InstrumentedStore struct {
	next     ImageStore
	backend  string
	recorder OperationRecorder
}

// NewInstrumentedStore wraps next. backend labels the metrics ("local" or "s3").
func NewInstrumentedStore(next ImageStore, backend string, recorder OperationRecorder) *InstrumentedStore {
	return &InstrumentedStore{next: next, backend: backend, recorder: recorder}
}

func (s *InstrumentedStore) observe(operation string, start time.Time, err error) {
	if s.recorder != nil {
		s.recorder.RecordStorageOperation(s.backend, operation, time.Since(start), err)
	}
}

func (s *InstrumentedStore) Save(ctx context.Context, category Category, name string, r io.Reader) (err error) {
	defer func(start time.Time) { s.observe("save", start, err) }(time.Now())
	return s.next.Save(ctx, category, name, r)
}

func (s *InstrumentedStore) Load(ctx context.Context, category Category, name string) (data []byte, err error) {
	defer func(start time.Time) { s.observe("load", start, err) }(time.Now())
	return s.next.Load(ctx, category, name)
}

func (s *InstrumentedStore) Delete(ctx context.Context, category Category, name string) (err error) {
	defer func(start time.Time) { s.observe("delete", start, err) }(time.Now())
	return s.next.Delete(ctx, category, name)
}

func (s *InstrumentedStore) List(ctx context.Context, category Category) (images []ImageInfo, err error) {
	defer func(start time.Time) { s.observe("list", start, err) }(time.Now())
	return s.next.List(ctx, category)
}
