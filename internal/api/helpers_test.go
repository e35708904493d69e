package api_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/trustgraph/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// mockTrust is a fixed-answer domain.TrustReader.
type mockTrust struct {
	verdict models.Verdict
	stats   models.GraphStats
	calls   [][2]string
}

func (m *mockTrust) Evaluate(a, b string) models.Verdict {
	m.calls = append(m.calls, [2]string{a, b})
	return m.verdict
}

func (m *mockTrust) Stats() models.GraphStats {
	return m.stats
}

// doRequest performs an HTTP request against the handler and returns the recorder.
func doRequest(h http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}
