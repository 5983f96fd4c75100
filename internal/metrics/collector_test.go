package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type counterFunc func(ctx context.Context) (int64, error)

func (f counterFunc) Count(ctx context.Context) (int64, error) { return f(ctx) }

func fixed(n int64) Counter {
	return counterFunc(func(context.Context) (int64, error) { return n, nil })
}

func TestCollector_Collect(t *testing.T) {
	m, _ := getTestMetrics()
	c := NewBusinessMetricsCollector(fixed(3), fixed(12), fixed(5), m, zap.NewNop())

	c.collect()

	assert.Equal(t, 3.0, getGaugeValue(t, m.ProjectsTotal))
	assert.Equal(t, 12.0, getGaugeValue(t, m.RecipesTotal))
	assert.Equal(t, 5.0, getGaugeValue(t, m.UsersTotal))
}

func TestCollector_FailedCountKeepsPreviousValue(t *testing.T) {
	m, _ := getTestMetrics()
	m.SetRecipesTotal(7)
	failing := counterFunc(func(context.Context) (int64, error) { return 0, errors.New("db down") })
	c := NewBusinessMetricsCollector(fixed(1), failing, nil, m, zap.NewNop())

	c.collect()

	assert.Equal(t, 1.0, getGaugeValue(t, m.ProjectsTotal))
	assert.Equal(t, 7.0, getGaugeValue(t, m.RecipesTotal))
}

func TestCollector_PanicRecovery(t *testing.T) {
	m, _ := getTestMetrics()
	panicking := counterFunc(func(context.Context) (int64, error) { panic("boom") })
	c := NewBusinessMetricsCollector(panicking, nil, nil, m, zap.NewNop())

	assert.NotPanics(t, c.collect)
}

func TestCollector_StartCollectsImmediately(t *testing.T) {
	m, _ := getTestMetrics()
	c := NewBusinessMetricsCollector(fixed(9), fixed(0), fixed(0), m, zap.NewNop())

	c.Start()
	defer c.Stop()

	assert.Eventually(t, func() bool {
		return getGaugeValue(t, m.ProjectsTotal) == 9
	}, time.Second, 10*time.Millisecond)
}
