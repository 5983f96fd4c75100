package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultCollectInterval is how often business gauges are refreshed
const DefaultCollectInterval = 60 * time.Second

// Counter reports the number of stored entities of one kind
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	projects Counter
	recipes  Counter
	users    Counter
	metrics  *Metrics
	logger   *zap.Logger
	interval time.Duration
	done     chan struct{}
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(projects, recipes, users Counter, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		projects: projects,
		recipes:  recipes,
		users:    users,
		metrics:  metrics,
		logger:   logger,
		interval: DefaultCollectInterval,
		done:     make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		// 즉시 한 번 수집
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	close(c.done)
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.collectOne(ctx, "projects", c.projects, c.metrics.SetProjectsTotal)
	c.collectOne(ctx, "recipes", c.recipes, c.metrics.SetRecipesTotal)
	c.collectOne(ctx, "users", c.users, c.metrics.SetUsersTotal)
}

func (c *BusinessMetricsCollector) collectOne(ctx context.Context, entity string, counter Counter, set func(int64)) {
	if counter == nil {
		return
	}
	n, err := counter.Count(ctx)
	if err != nil {
		c.logger.Error("Failed to count entities", zap.String("entity", entity), zap.Error(err))
		return
	}
	set(n)
}
