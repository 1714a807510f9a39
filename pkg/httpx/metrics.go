package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/chrono_catalog/pkg/metrics"
)

// unmatchedRoute — метка для запросов вне таблицы маршрутов (не раздуваем кардинальность путём).
const unmatchedRoute = "unmatched"

// MetricsMiddleware — http_requests_total{method,route,status} по шаблону маршрута.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.HTTPRequests.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
