package router

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/quizdeck/admin-core/internal/middlewares"
)

// RouterConfig names the backend targets of the development proxy. Only
// /api/* and /admin/stats/* are forwarded so SPA routes like /admin/default
// stay with the dev server.
type RouterConfig struct {
	APITarget   *url.URL
	StatsTarget *url.URL
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	api := httputil.NewSingleHostReverseProxy(cfg.APITarget)
	stats := api
	if cfg.StatsTarget != nil && cfg.StatsTarget.String() != cfg.APITarget.String() {
		stats = httputil.NewSingleHostReverseProxy(cfg.StatsTarget)
	}

	r.Handle("/api/*", api)
	r.Handle("/admin/stats/*", stats)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
