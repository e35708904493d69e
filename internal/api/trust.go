package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/trustgraph/internal/domain"
	"github.com/persistorai/trustgraph/internal/models"
)

// TrustHandler serves read-only trust queries against the live graph.
type TrustHandler struct {
	svc domain.TrustReader
	log *logrus.Logger
}

// NewTrustHandler creates a TrustHandler.
func NewTrustHandler(svc domain.TrustReader, log *logrus.Logger) *TrustHandler {
	return &TrustHandler{svc: svc, log: log}
}

// trustResponse echoes the pair alongside its three labels.
type trustResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	models.Verdict
}

// Evaluate handles GET /api/v1/trust?from=&to=. The graph is not modified.
func (h *TrustHandler) Evaluate(c *gin.Context) {
	var q models.TrustQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid query parameters")

		return
	}

	if err := q.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	v := h.svc.Evaluate(q.From, q.To)

	h.log.WithFields(logrus.Fields{
		"from":     q.From,
		"to":       q.To,
		"feature1": v.Degree1,
		"feature2": v.Degree2,
		"feature3": v.Degree4,
	}).Debug("trust.query")

	c.JSON(http.StatusOK, trustResponse{From: q.From, To: q.To, Verdict: v})
}
