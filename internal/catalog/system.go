// Package catalog exposes the route table and its recorded snapshots
// as a read-only JSON API.
package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/autoxela/navigator/internal/snapshots"
	"github.com/autoxela/navigator/pkg/navigation"
	"github.com/autoxela/navigator/pkg/pagination"
)

// Entry is a route as listed by the API, with the names of its inputs.
type Entry struct {
	navigation.Route
	Params []string `json:"params,omitempty"`
}

// Snapshot summarizes one recorded table version.
type Snapshot struct {
	Version int  `json:"version"`
	Routes  int  `json:"routes"`
	Current bool `json:"current"`
}

// System answers route table queries against the served table.
type System interface {
	Handler() *Handler

	// List returns a page of routes whose name, path or view contains the search term.
	List(page pagination.PageRequest) pagination.PageResult[Entry]

	// Find returns the route registered under name.
	// Returns ErrNotFound when no route has that name.
	Find(name string) (Entry, error)

	// Resolve returns the route matching path and its forwarded inputs.
	// Returns ErrNotFound when no route matches.
	Resolve(path string) (navigation.Match, error)

	// URL builds the path of the named route.
	URL(name string, params map[string]string) (string, error)

	Snapshots() []Snapshot
	Snapshot(version int) ([]Entry, error)
	Diff(from, to int) (navigation.Changes, error)
}

type catalog struct {
	table      *navigation.Table
	version    int
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a catalog serving table. version is the snapshot the table
// was taken from, or 0 for a table loaded from a routes file.
func New(table *navigation.Table, version int, logger *slog.Logger, pagination pagination.Config) System {
	return &catalog{
		table:      table,
		version:    version,
		logger:     logger.With("system", "catalog"),
		pagination: pagination,
	}
}

func (c *catalog) Handler() *Handler {
	return NewHandler(c, c.logger, c.pagination)
}

func (c *catalog) List(page pagination.PageRequest) pagination.PageResult[Entry] {
	term := strings.ToLower(page.Search)

	var entries []Entry
	for _, r := range c.table.Routes() {
		if term != "" && !matches(r, term) {
			continue
		}
		entries = append(entries, c.entry(c.table, r))
	}
	return pagination.Paginate(entries, page)
}

func (c *catalog) Find(name string) (Entry, error) {
	r, ok := c.table.Lookup(name)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c.entry(c.table, r), nil
}

func (c *catalog) Resolve(path string) (navigation.Match, error) {
	m, ok := c.table.Resolve(path)
	if !ok {
		return navigation.Match{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	c.logger.Debug("route resolved", "path", path, "name", m.Route.Name)
	return m, nil
}

func (c *catalog) URL(name string, params map[string]string) (string, error) {
	return c.table.URL(name, params)
}

func (c *catalog) Snapshots() []Snapshot {
	versions := snapshots.Versions()
	out := make([]Snapshot, 0, len(versions))
	for _, v := range versions {
		t, _ := snapshots.Get(v)
		out = append(out, Snapshot{
			Version: v,
			Routes:  t.Len(),
			Current: v == c.version,
		})
	}
	return out
}

func (c *catalog) Snapshot(version int) ([]Entry, error) {
	t, err := snapshots.Get(version)
	if err != nil {
		return nil, err
	}
	routes := t.Routes()
	entries := make([]Entry, 0, len(routes))
	for _, r := range routes {
		entries = append(entries, c.entry(t, r))
	}
	return entries, nil
}

func (c *catalog) Diff(from, to int) (navigation.Changes, error) {
	a, err := snapshots.Get(from)
	if err != nil {
		return navigation.Changes{}, err
	}
	b, err := snapshots.Get(to)
	if err != nil {
		return navigation.Changes{}, err
	}
	return navigation.Diff(a, b), nil
}

func (c *catalog) entry(t *navigation.Table, r navigation.Route) Entry {
	p, _ := t.Pattern(r.Name)
	return Entry{Route: r, Params: p.Params()}
}

func matches(r navigation.Route, term string) bool {
	return strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strings.ToLower(r.Path), term) ||
		strings.Contains(strings.ToLower(r.View), term)
}
