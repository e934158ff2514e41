package main

import (
	"github.com/autoxela/navigator/internal/config"
	"github.com/autoxela/navigator/internal/infrastructure"
	"github.com/autoxela/navigator/pkg/middleware"
)

// buildMiddleware wraps the whole router. Request ids are assigned before
// module-level logging runs; trailing slashes are trimmed before dispatch
// so module prefixes stay intact in the redirect target.
func buildMiddleware(cfg *config.Config, infra *infrastructure.Infrastructure) middleware.System {
	mw := middleware.New()
	if cfg.Metrics.Enabled {
		mw.Use(infra.Metrics.Middleware())
	}
	mw.Use(middleware.RequestID())
	mw.Use(middleware.TrimSlash())
	return mw
}
