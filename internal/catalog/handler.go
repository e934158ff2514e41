package catalog

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/autoxela/navigator/pkg/handlers"
	"github.com/autoxela/navigator/pkg/pagination"
	"github.com/autoxela/navigator/pkg/routes"
)

type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger,
		pagination: pagination,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Description: "Route table queries",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/resolve", Handler: h.Resolve},
			{Method: "GET", Pattern: "/url/{name}", Handler: h.URL},
		},
		Children: []routes.Group{
			{
				Prefix: "/routes",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.List},
					{Method: "GET", Pattern: "/{name}", Handler: h.Find},
				},
			},
			{
				Prefix: "/snapshots",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.Snapshots},
					{Method: "GET", Pattern: "/diff", Handler: h.Diff},
					{Method: "GET", Pattern: "/{version}", Handler: h.Snapshot},
				},
			},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	handlers.RespondJSON(w, http.StatusOK, h.sys.List(page))
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	entry, err := h.sys.Find(r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, entry)
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		err := fmt.Errorf("%w: path is required", ErrInvalidRequest)
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	m, err := h.sys.Resolve(path)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, m)
}

func (h *Handler) URL(w http.ResponseWriter, r *http.Request) {
	params := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	u, err := h.sys.URL(r.PathValue("name"), params)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"url": u})
}

func (h *Handler) Snapshots(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Snapshots())
}

func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	version, err := parseVersion(r.PathValue("version"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	entries, err := h.sys.Snapshot(version)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, entries)
}

func (h *Handler) Diff(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := parseVersion(q.Get("from"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}
	to, err := parseVersion(q.Get("to"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}

	changes, err := h.sys.Diff(from, to)
	if err != nil {
		handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, changes)
}

func parseVersion(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: version %q", ErrInvalidRequest, s)
	}
	return v, nil
}
