package rest

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/chrono_catalog/pkg/httpx"
)

// AvailableRoutes — публичные маршруты API (отдаются в теле 404).
var AvailableRoutes = []string{
	"/api/health",
	"/api/test",
	"/api/watches",
	"/api/watches/compare",
	"/api/watches/featured",
	"/api/watches/:id",
}

// RouterOptions — параметры внешнего слоя HTTP.
type RouterOptions struct {
	ServiceName    string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter — gin.Engine с middleware и маршрутами каталога.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(opts.ServiceName))
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.MetricsMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", httpx.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst), httpx.Timeout(h.timeout))
	api.GET("/health", h.health)
	api.GET("/test", h.sample)
	api.GET("/watches", h.listWatches)
	// статические сегменты имеют приоритет над :id
	api.GET("/watches/compare", h.compareWatches)
	api.GET("/watches/featured", h.featuredWatch)
	api.GET("/watches/:id", h.watchByID)

	r.NoRoute(h.notFound)

	return r
}

// corsConfig — список origin поддерживает шаблоны вида https://*.vercel.app; "*" — любой origin.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", httpx.HeaderRequestID},
		ExposeHeaders:    []string{httpx.HeaderRequestID},
		AllowCredentials: true,
		AllowWildcard:    true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	if len(origins) == 0 {
		// без списка разрешаем только same-origin запросы
		cfg.AllowOriginFunc = func(string) bool { return false }
	}
	return cfg
}
