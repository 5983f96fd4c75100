package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Check is an optional readiness dependency such as Redis
type Check func(ctx context.Context) error

type HealthHandler struct {
	db     Pinger
	checks map[string]Check
	logger *zap.Logger
}

func NewHealthHandler(db Pinger, checks map[string]Check, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		checks: checks,
		logger: logger,
	}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  데이터베이스와 설정된 외부 의존성에 ping을 보냅니다
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	status := gin.H{"database": "ok"}
	ready := true

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("Readiness check failed", zap.String("dependency", "database"), zap.Error(err))
		status["database"] = "unavailable"
		ready = false
	}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("Readiness check failed", zap.String("dependency", name), zap.Error(err))
			status[name] = "unavailable"
			ready = false
			continue
		}
		status[name] = "ok"
	}

	if !ready {
		status["status"] = "not ready"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	status["status"] = "ready"
	c.JSON(http.StatusOK, status)
}
