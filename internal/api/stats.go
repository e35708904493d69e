package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/trustgraph/internal/domain"
)

// StatsHandler serves the graph statistics endpoint.
type StatsHandler struct {
	svc domain.TrustReader
	log *logrus.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc domain.TrustReader, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: log}
}

// GetStats handles GET /api/v1/stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats())
}
