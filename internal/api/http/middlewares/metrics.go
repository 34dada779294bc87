package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kunalk/spring-kafka-pubsub/internal/pkg/metrics"
)

// unmatchedRoute — лейбл для запросов мимо зарегистрированных маршрутов (404), чтобы не раздувать кардинальность.
const unmatchedRoute = "unmatched"

// PrometheusMetrics возвращает мидлварь, которая пишет metrics.HTTP*. Пути из skip (пробы, /metrics) не считаются.
func PrometheusMetrics(skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skipped[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		metrics.HTTPInFlight.Inc()
		defer metrics.HTTPInFlight.Dec()
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
