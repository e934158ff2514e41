// Package api assembles the JSON API module over the served route table.
package api

import (
	"fmt"

	"github.com/autoxela/navigator/internal/catalog"
	"github.com/autoxela/navigator/internal/config"
	"github.com/autoxela/navigator/internal/infrastructure"
	"github.com/autoxela/navigator/internal/routes"
	"github.com/autoxela/navigator/pkg/middleware"
	"github.com/autoxela/navigator/pkg/module"
)

// BasePath is the mount point of the API module.
const BasePath = "/api"

// NewModule registers the catalog endpoints and wraps them with CORS and
// request logging.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	sys := catalog.New(infra.Table, infra.Version, infra.Logger, cfg.Pagination)

	r := routes.New(infra.Logger)
	r.RegisterGroup(sys.Handler().Routes())

	handler, err := r.Build()
	if err != nil {
		return nil, fmt.Errorf("api routes: %w", err)
	}

	m := module.New(BasePath, handler)
	m.Use(middleware.CORS(&cfg.CORS))
	m.Use(middleware.Logger(infra.Logger))
	return m, nil
}
