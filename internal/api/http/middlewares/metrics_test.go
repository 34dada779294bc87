package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Kunalk/spring-kafka-pubsub/internal/pkg/metrics"
)

func TestPrometheusMetrics_CountsByRoute(t *testing.T) {
	r := newRouter()
	ok := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/ping", "200")
	notFound := metrics.HTTPRequests.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	beforeOK, beforeNF := testutil.ToFloat64(ok), testutil.ToFloat64(notFound)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	assert.Equal(t, beforeOK+2, testutil.ToFloat64(ok))
	assert.Equal(t, beforeNF+1, testutil.ToFloat64(notFound), "неизвестный путь — один лейбл на все")
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.HTTPInFlight))
}

func TestPrometheusMetrics_SkipsPaths(t *testing.T) {
	r := newRouter()
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })
	skipped := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/metrics", "200")
	before := testutil.ToFloat64(skipped)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, before, testutil.ToFloat64(skipped))
}
