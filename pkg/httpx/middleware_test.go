package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Gunvolt24/chrono_catalog/pkg/httpx"
	"github.com/Gunvolt24/chrono_catalog/pkg/metrics"
)

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", path, http.NoBody))
	return w
}

func TestRateLimit_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RateLimit(0, 0))
	r.GET("/", func(c *gin.Context) { c.Status(204) })

	for i := 0; i < 50; i++ {
		if w := serve(r, "/"); w.Code != 204 {
			t.Fatalf("request %d: want 204, got %d", i, w.Code)
		}
	}
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RateLimit(0.001, 2))
	r.GET("/", func(c *gin.Context) { c.Status(204) })

	if w := serve(r, "/"); w.Code != 204 {
		t.Fatalf("first: want 204, got %d", w.Code)
	}
	if w := serve(r, "/"); w.Code != 204 {
		t.Fatalf("second: want 204, got %d", w.Code)
	}
	w := serve(r, "/")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("third: want 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("429 must carry Retry-After")
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var hasDeadline bool
	r := gin.New()
	r.Use(httpx.Timeout(time.Second))
	r.GET("/", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(204)
	})
	serve(r, "/")
	if !hasDeadline {
		t.Fatalf("request context must have a deadline")
	}
}

func TestMetricsMiddleware_LabelsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics.MustRegister()

	r := gin.New()
	r.Use(httpx.MetricsMiddleware())
	r.GET("/api/watches/:id", func(c *gin.Context) { c.Status(200) })

	matched := metrics.HTTPRequests.WithLabelValues("GET", "/api/watches/:id", "200")
	unmatched := metrics.HTTPRequests.WithLabelValues("GET", "unmatched", "404")
	beforeM, beforeU := testutil.ToFloat64(matched), testutil.ToFloat64(unmatched)

	serve(r, "/api/watches/1")
	serve(r, "/api/watches/2")
	serve(r, "/nope")

	if got := testutil.ToFloat64(matched); got != beforeM+2 {
		t.Fatalf("matched: got=%v want=%v", got, beforeM+2)
	}
	if got := testutil.ToFloat64(unmatched); got != beforeU+1 {
		t.Fatalf("unmatched: got=%v want=%v", got, beforeU+1)
	}
}
