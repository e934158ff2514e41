// Package routes builds the API handler from registered route groups.
package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	pkgroutes "github.com/autoxela/navigator/pkg/routes"
)

type routes struct {
	routes []pkgroutes.Route
	groups []pkgroutes.Group
	logger *slog.Logger
}

// New creates a route system that logs each registration at debug level.
func New(logger *slog.Logger) pkgroutes.System {
	return &routes{
		logger: logger.With("system", "routes"),
	}
}

func (r *routes) RegisterRoute(route pkgroutes.Route) {
	r.routes = append(r.routes, route)
}

func (r *routes) RegisterGroup(group pkgroutes.Group) {
	r.groups = append(r.groups, group)
}

// Build registers every route on a fresh ServeMux. Group prefixes are
// concatenated depth first.
func (r *routes) Build() (http.Handler, error) {
	mux := http.NewServeMux()

	for _, route := range r.routes {
		if err := r.handle(mux, route.Method+" "+route.Pattern, route.Handler); err != nil {
			return nil, err
		}
	}

	for _, group := range r.groups {
		if err := r.registerGroup(mux, "", group); err != nil {
			return nil, err
		}
	}

	return mux, nil
}

func (r *routes) registerGroup(mux *http.ServeMux, parentPrefix string, group pkgroutes.Group) error {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		if err := r.handle(mux, route.Method+" "+fullPrefix+route.Pattern, route.Handler); err != nil {
			return err
		}
	}
	for _, child := range group.Children {
		if err := r.registerGroup(mux, fullPrefix, child); err != nil {
			return err
		}
	}
	return nil
}

func (r *routes) handle(mux *http.ServeMux, pattern string, handler http.HandlerFunc) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("register route %s: %v", pattern, rec)
		}
	}()
	r.logger.Debug("register route", "pattern", pattern)
	mux.HandleFunc(pattern, handler)
	return nil
}
