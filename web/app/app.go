// Package app serves the application views, one page per route of the
// navigation table, with embedded templates.
package app

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/autoxela/navigator/pkg/module"
	"github.com/autoxela/navigator/pkg/navigation"
	"github.com/autoxela/navigator/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

// views maps the view names used by route tables to their templates.
var views = map[string]web.ViewDef{
	"HomeView":                {Template: "HomeView.html", Title: "Inicio", Bundle: "app"},
	"LoginView":               {Template: "LoginView.html", Title: "Ingresar", Bundle: "app"},
	"CreateUserView":          {Template: "CreateUserView.html", Title: "Crear usuario", Bundle: "app"},
	"UserView":                {Template: "UserView.html", Title: "Usuarios", Bundle: "app"},
	"MyVehiclesView":          {Template: "MyVehiclesView.html", Title: "Mis vehículos", Bundle: "app"},
	"InventoryView":           {Template: "InventoryView.html", Title: "Inventario", Bundle: "app"},
	"VehicleRegistrationView": {Template: "VehicleRegistrationView.html", Title: "Registro de vehículos", Bundle: "app"},
	"RestoreView":             {Template: "RestoreView.html", Title: "Restablecer contraseña", Bundle: "app"},
	"CreateWork":              {Template: "CreateWork.html", Title: "Nuevo trabajo", Bundle: "works"},
	"ViewWorks":               {Template: "ViewWorks.html", Title: "Trabajos", Bundle: "works"},
	"TrackWork":               {Template: "TrackWork.html", Title: "Avance de orden de trabajo", Bundle: "works"},
	"CreateVehicle":           {Template: "CreateVehicle.html", Title: "Nuevo vehículo", Bundle: "vehicles"},
	"DetailsVehicle":          {Template: "DetailsVehicle.html", Title: "Detalle de vehículo", Bundle: "vehicles"},
	"AssignmentView":          {Template: "AssignmentView.html", Title: "Asignaciones", Bundle: "app"},
	"BuyView":                 {Template: "BuyView.html", Title: "Compras", Bundle: "app"},
	"FacturaView":             {Template: "FacturaView.html", Title: "Factura", Bundle: "app"},
	"ReportsView":             {Template: "ReportsView.html", Title: "Reportes", Bundle: "app"},
	"MovimientosView":         {Template: "MovimientosView.html", Title: "Movimientos", Bundle: "app"},
}

var notFoundView = web.ViewDef{Template: "404.html", Title: "No encontrado", Bundle: "app"}

// Observer is notified after a route's view is rendered.
type Observer interface {
	ViewRendered(route string)
}

// Option configures a Handler.
type Option func(*Handler)

// WithObserver reports every rendered view to o.
func WithObserver(o Observer) Option {
	return func(h *Handler) {
		h.observer = o
	}
}

// Handler renders the views bound by a navigation table.
type Handler struct {
	table     *navigation.Table
	templates *web.TemplateSet
	logger    *slog.Logger
	observer  Observer
	router    http.Handler
}

// NewHandler parses the templates of every view the table references.
// A route bound to an unknown view is an error.
func NewHandler(table *navigation.Table, basePath string, logger *slog.Logger, opts ...Option) (*Handler, error) {
	defs := []web.ViewDef{notFoundView}
	for _, r := range table.Routes() {
		def, ok := views[r.View]
		if !ok {
			return nil, fmt.Errorf("route %s: unknown view %s", r.Name, r.View)
		}
		defs = append(defs, def)
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		defs,
	)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		table:     table,
		templates: ts,
		logger:    logger.With("system", "app"),
	}
	for _, opt := range opts {
		opt(h)
	}

	router, err := h.buildRouter()
	if err != nil {
		return nil, err
	}
	h.router = router
	return h, nil
}

// Router serves one GET page per route and the not found view otherwise.
func (h *Handler) Router() http.Handler {
	return h.router
}

// buildRouter registers one GET page per route. Named segments become
// ServeMux wildcards and are forwarded to the view only when the route has
// Props. Patterns the mux rejects fail the build instead of panicking.
func (h *Handler) buildRouter() (http.Handler, error) {
	r := web.NewRouter()
	r.SetFallback(h.templates.ErrorHandler(layout, notFoundView, http.StatusNotFound))

	for _, route := range h.table.Routes() {
		p, _ := h.table.Pattern(route.Name)
		view := views[route.View]
		view.Route = p.ServeMux()

		var params []string
		if route.Props {
			params = p.Params()
		}

		h.logger.Debug("register view", "name", route.Name, "pattern", view.Route, "view", route.View)
		handler := h.observe(route.Name, h.templates.ViewHandler(layout, route.Name, view, params))
		if err := r.Register("GET "+view.Route, handler); err != nil {
			return nil, fmt.Errorf("route %s: %w", route.Name, err)
		}
	}

	return r, nil
}

func (h *Handler) observe(name string, next http.HandlerFunc) http.HandlerFunc {
	if h.observer == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r)
		h.observer.ViewRendered(name)
	}
}

// NewModule creates the app module mounted at basePath.
func NewModule(table *navigation.Table, basePath string, logger *slog.Logger, opts ...Option) (*module.Module, error) {
	h, err := NewHandler(table, basePath, logger, opts...)
	if err != nil {
		return nil, err
	}
	return module.New(basePath, h.Router()), nil
}
