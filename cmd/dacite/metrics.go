package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dacite/dacite/configuration"
	"github.com/dacite/dacite/internal/dcontext"
)

// maybeServeMetrics starts the Prometheus scrape endpoint in the
// background when cfg.Metrics.Addr is set.
func maybeServeMetrics(cfg *configuration.Configuration) {
	if cfg.Metrics.Addr == "" {
		return
	}
	path := cfg.Metrics.Path
	if path == "" {
		path = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())

	// The scrape server must keep running after the command that launched
	// it returns, so it gets a detached copy of the CLI context rather
	// than the context tied to the triggering command's lifetime.
	ctx := dcontext.DetachedContext(cliContext())
	logger := dcontext.GetLoggerWithField(ctx, "component", "metrics")
	go func() {
		if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
			logger.Errorf("metrics server stopped: %v", err)
		}
	}()
}
