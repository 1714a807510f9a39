//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/chrono_catalog/internal/cache/memory"
	pgrepo "github.com/Gunvolt24/chrono_catalog/internal/repo/postgres"
	"github.com/Gunvolt24/chrono_catalog/internal/testutil"
	rest "github.com/Gunvolt24/chrono_catalog/internal/transport/http"
	"github.com/Gunvolt24/chrono_catalog/internal/usecase"
	"github.com/Gunvolt24/chrono_catalog/pkg/logger"
	"github.com/Gunvolt24/chrono_catalog/pkg/validate"
)

// Полный стек: Postgres (testcontainers) + goose + кэш + роутер.
func TestHTTP_Catalog_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	repo := pgrepo.NewWatchRepository(pg.Pool, 5*time.Second)
	svc := usecase.NewCatalogService(repo, memory.NewResponseCache(time.Minute), logg, validate.NewFilterValidator(),
		usecase.CatalogOptions{TTL: time.Minute, FallbackTTL: 10 * time.Second, FeaturedID: 1})

	h := rest.NewHandler(svc, logg, 5*time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, rest.RouterOptions{ServiceName: "itest"}))
	defer ts.Close()

	t.Run("filtered list", func(t *testing.T) {
		var got []map[string]any
		getJSON(t, ts.URL+"/api/watches?category=Premium&sortBy=price-high&limit=1", http.StatusOK, &got)
		require.Len(t, got, 1)
		require.Equal(t, float64(48900), got[0]["price"])
		require.Len(t, got[0]["colors"], 3)
	})

	t.Run("repeated list is byte-identical", func(t *testing.T) {
		a := getRaw(t, ts.URL+"/api/watches?sortBy=rating&minPrice=0")
		b := getRaw(t, ts.URL+"/api/watches?minPrice=0&sortBy=rating")
		require.Equal(t, a, b)
	})

	t.Run("compare", func(t *testing.T) {
		var got []map[string]any
		getJSON(t, ts.URL+"/api/watches/compare", http.StatusOK, &got)
		require.Len(t, got, 2)
		require.Equal(t, float64(2), got[0]["id"])
	})

	t.Run("featured detail", func(t *testing.T) {
		var got map[string]any
		getJSON(t, ts.URL+"/api/watches/featured", http.StatusOK, &got)
		images := got["images"].(map[string]any)
		require.Equal(t, "/assets/watch-hero.png", images["main"])
		require.Equal(t, []any{"/assets/watch-hero.png", "/assets/watch-detail.png", "/assets/watch-strap.png"}, images["gallery"])
	})

	t.Run("by id", func(t *testing.T) {
		var got map[string]any
		getJSON(t, ts.URL+"/api/watches/2", http.StatusOK, &got)
		require.Equal(t, "ChronoElite Gold", got["name"])

		getJSON(t, ts.URL+"/api/watches/999999", http.StatusNotFound, &got)
		getJSON(t, ts.URL+"/api/watches/abc", http.StatusBadRequest, &got)
	})

	t.Run("health and test", func(t *testing.T) {
		var got map[string]any
		getJSON(t, ts.URL+"/api/health", http.StatusOK, &got)
		require.Equal(t, "healthy", got["status"])

		getJSON(t, ts.URL+"/api/test", http.StatusOK, &got)
		require.Equal(t, float64(2), got["count"])
	})
}

// БД недоступна: compare/featured отдают статические данные, by-id — 500.
func TestHTTP_DBDown_Fallbacks_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	repo := pgrepo.NewWatchRepository(pg.Pool, time.Second)
	svc := usecase.NewCatalogService(repo, memory.NewResponseCache(time.Minute), logg, validate.NewFilterValidator(),
		usecase.CatalogOptions{TTL: time.Minute, FallbackTTL: 10 * time.Second})

	ts := httptest.NewServer(rest.NewRouter(rest.NewHandler(svc, logg, 5*time.Second), rest.RouterOptions{ServiceName: "itest"}))
	defer ts.Close()

	require.NoError(t, stop(context.Background()))

	var list []map[string]any
	getJSON(t, ts.URL+"/api/watches/compare", http.StatusOK, &list)
	require.Len(t, list, 2)
	require.Equal(t, "ChronoElite Classic", list[0]["name"])

	var one map[string]any
	getJSON(t, ts.URL+"/api/watches/featured", http.StatusOK, &one)
	require.Equal(t, float64(1), one["id"])

	getJSON(t, ts.URL+"/api/watches/1", http.StatusInternalServerError, &one)
	require.Equal(t, "Failed to fetch watch", one["error"])

	getJSON(t, ts.URL+"/api/health", http.StatusInternalServerError, &one)
	require.Equal(t, "unhealthy", one["status"])
}

// --- функции помощники ---

func getRaw(t *testing.T, url string) []byte {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return b
}

func getJSON(t *testing.T, url string, wantStatus int, dst any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}
