package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/retailbill/backend/internal/infrastructure/persistence"
	"github.com/retailbill/backend/internal/infrastructure/telemetry"
	"github.com/retailbill/backend/internal/interfaces/http/dto"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PoolReporter is implemented by databases that expose connection pool stats
type PoolReporter interface {
	Stats() (persistence.ConnectionStats, error)
}

// PoolStats is the connection pool section of the health report
type PoolStats struct {
	MaxOpen      int    `json:"max_open" example:"25"`
	Open         int    `json:"open" example:"3"`
	InUse        int    `json:"in_use" example:"1"`
	Idle         int    `json:"idle" example:"2"`
	WaitCount    int64  `json:"wait_count" example:"0"`
	WaitDuration string `json:"wait_duration" example:"0s"`
}

// HealthResponse is the liveness report
type HealthResponse struct {
	Status    string     `json:"status" example:"ok"`
	Database  string     `json:"database" example:"up"`
	Pool      *PoolStats `json:"pool,omitempty"`
	Version   string     `json:"version" example:"1.0.0"`
	GoVersion string     `json:"go_version" example:"go1.25.5"`
	Uptime    string     `json:"uptime" example:"1h30m45s"`
}

// HealthHandler serves the health endpoint
type HealthHandler struct {
	BaseHandler
	db        Pinger
	timeout   time.Duration
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		timeout:   2 * time.Second,
		startTime: time.Now(),
	}
}

// Health godoc
// @Summary      Health check
// @Description  Reports liveness, database reachability and connection pool usage
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[HealthResponse]
// @Failure      503 {object} APIResponse[HealthResponse]
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "ok",
		Database:  "up",
		Version:   telemetry.ServiceVersion,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	if reporter, ok := h.db.(PoolReporter); ok {
		if stats, err := reporter.Stats(); err == nil {
			resp.Pool = &PoolStats{
				MaxOpen:      stats.MaxOpenConnections,
				Open:         stats.OpenConnections,
				InUse:        stats.InUse,
				Idle:         stats.Idle,
				WaitCount:    stats.WaitCount,
				WaitDuration: stats.WaitDuration.String(),
			}
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		_ = c.Error(err)
		resp.Status = "degraded"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, dto.Response{Success: false, Data: resp})
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
