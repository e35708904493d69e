// Package api provides the HTTP status surface for a running trustgraph process.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/trustgraph/internal/domain"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	svc       domain.TrustReader
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(svc domain.TrustReader, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		svc:       svc,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Phase         string  `json:"phase"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health. Phase is "batch" until the neighbor
// cache is built and "stream" afterwards.
func (h *HealthHandler) Liveness(c *gin.Context) {
	phase := "batch"
	if h.svc.Stats().CacheBuilt {
		phase = "stream"
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       h.version,
		Phase:         phase,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}
