package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kitchen-planner-api/internal/dto"
	"kitchen-planner-api/internal/response"
)

// EventPublisher receives project change notifications. A nil publisher is allowed.
type EventPublisher interface {
	Publish(event dto.ProjectEvent)
}

func publish(p EventPublisher, event dto.ProjectEvent) {
	if p != nil {
		p.Publish(event)
	}
}

// calendarDate drops the time of day, keeping the date as written by the client
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(calendarDate(t))
}

func fromDate(d datatypes.Date) time.Time {
	return calendarDate(time.Time(d))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// notFoundOr maps gorm.ErrRecordNotFound to NOT_FOUND and anything else to
// an internal error that is logged
func notFoundOr(logger *zap.Logger, err error, resource string, id int64, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewNotFoundError(resource, strconv.FormatInt(id, 10))
	}
	return internalError(logger, err, action)
}

// internalError passes AppErrors through unchanged and wraps everything else
func internalError(logger *zap.Logger, err error, action string) error {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	logger.Error("Failed to "+action, zap.Error(err))
	return response.NewAppError(response.ErrCodeInternal, "Failed to "+action, err.Error())
}

// uniqueStrings drops repeated values, keeping the first occurrence
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
