package metrics

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"kitchen-planner-api/internal/storage"
)

// RecordStorageOperation records image storage operation metrics
func (m *Metrics) RecordStorageOperation(backend, operation string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageOperation", func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		m.StorageOperationsTotal.WithLabelValues(backend, operation, status).Inc()
		m.StorageOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())

		if err != nil {
			m.StorageErrors.WithLabelValues(backend, operation, getStorageErrorType(err)).Inc()
		}
	})
}

// getStorageErrorType categorizes storage errors
func getStorageErrorType(err error) string {
	switch {
	case errors.Is(err, storage.ErrImageNotFound):
		return "not_found"
	case errors.Is(err, storage.ErrInvalidImageName):
		return "invalid_name"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, os.ErrPermission):
		return "permission_denied"
	}

	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "connection refused"):
		return "connection_refused"
	case strings.Contains(errMsg, "no such host"):
		return "dns_error"
	case strings.Contains(errMsg, "timeout"):
		return "timeout"
	case strings.Contains(errMsg, "AccessDenied"):
		return "access_denied"
	case strings.Contains(errMsg, "no space left"):
		return "disk_full"
	}
	return "unknown"
}
