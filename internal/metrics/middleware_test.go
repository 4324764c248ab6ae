package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/static/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/static/*", "404"))

	for _, path := range []string{"/static/a.css", "/static/b.js"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/static/*", "404"))
	assert.Equal(t, 2.0, after-before)
}

func TestMiddleware_UnmatchedPathsShareOneLabel(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathLabelUnmatched, "404"))
	seriesBefore := testutil.CollectAndCount(HTTPRequestsTotal)

	paths := []string{"/wp-login.php", "/.env", "/admin/config.php"}
	for _, path := range paths {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathLabelUnmatched, "404"))
	assert.Equal(t, float64(len(paths)), after-before)
	assert.Equal(t, seriesBefore, testutil.CollectAndCount(HTTPRequestsTotal), "unmatched paths must not add series")
}

func TestSetMinerState(t *testing.T) {
	SetMinerState("", "IDLE")
	assert.Equal(t, 1.0, testutil.ToFloat64(MinerState.WithLabelValues("IDLE")))

	SetMinerState("IDLE", "MINING")
	assert.Equal(t, 0.0, testutil.ToFloat64(MinerState.WithLabelValues("IDLE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(MinerState.WithLabelValues("MINING")))
}
