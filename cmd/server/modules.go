package main

import (
	"net/http"

	"github.com/autoxela/navigator/internal/api"
	"github.com/autoxela/navigator/internal/config"
	"github.com/autoxela/navigator/internal/infrastructure"
	"github.com/autoxela/navigator/pkg/middleware"
	"github.com/autoxela/navigator/pkg/module"
	"github.com/autoxela/navigator/web/app"
)

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(cfg *config.Config, infra *infrastructure.Infrastructure) (*Modules, error) {
	var opts []app.Option
	if cfg.Metrics.Enabled {
		opts = append(opts, app.WithObserver(infra.Metrics))
	}

	appModule, err := app.NewModule(infra.Table, cfg.App.BasePath, infra.Logger, opts...)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger))

	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.App.BasePath, http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	if cfg.Metrics.Enabled {
		router.HandleNative("GET "+cfg.Metrics.Path, infra.Metrics.Handler().ServeHTTP)
	}

	return router
}
