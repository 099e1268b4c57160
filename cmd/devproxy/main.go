package main

import (
	"net/http"
	"net/url"
	"os"

	"github.com/quizdeck/admin-core/internal/config"
	"github.com/quizdeck/admin-core/internal/router"
)

// devproxy forwards the dashboard's /api and /admin/stats calls to the
// backend during development, the way the SPA dev server proxied them.
func main() {
	config.Init()

	apiTarget, err := url.Parse(config.APIBaseURL())
	if err != nil {
		config.Logger().Fatalf("invalid API_BASE_URL: %v", err)
	}
	statsTarget := apiTarget
	if raw := os.Getenv("STATS_TARGET_URL"); raw != "" {
		statsTarget, err = url.Parse(raw)
		if err != nil {
			config.Logger().Fatalf("invalid STATS_TARGET_URL: %v", err)
		}
	}

	addr := os.Getenv("DEVPROXY_ADDR")
	if addr == "" {
		addr = ":3010"
	}

	handler := router.New(router.RouterConfig{
		APITarget:   apiTarget,
		StatsTarget: statsTarget,
	})

	config.Logger().Infof("devproxy listening on %s, forwarding to %s", addr, apiTarget)
	if err := http.ListenAndServe(addr, handler); err != nil {
		config.Logger().Fatalf("devproxy stopped: %v", err)
	}
}
