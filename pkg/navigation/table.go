// Package navigation models a client-side route table: an immutable,
// ordered mapping from URL paths to named views. Tables are validated
// once at construction and are safe for concurrent reads.
package navigation

import (
	"errors"
	"fmt"
)

// Route binds a URL path to a named view.
// When Props is true the named segments of Path are forwarded to the
// view as inputs.
type Route struct {
	Path  string `json:"path" toml:"path" yaml:"path"`
	Name  string `json:"name" toml:"name" yaml:"name"`
	View  string `json:"view" toml:"view" yaml:"view"`
	Props bool   `json:"props,omitempty" toml:"props" yaml:"props"`
}

// Match is the result of resolving a URL against a Table.
type Match struct {
	Route  Route             `json:"route"`
	Params map[string]string `json:"params"`
}

type entry struct {
	route   Route
	pattern Pattern
}

// Table is an ordered, immutable set of routes.
type Table struct {
	entries []entry
	byName  map[string]int
}

// NewTable validates routes and freezes them into a Table.
// Every violation is reported; the returned error joins them.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		entries: make([]entry, 0, len(routes)),
		byName:  make(map[string]int, len(routes)),
	}
	shapes := make(map[string]string, len(routes))

	var errs []error
	for i, r := range routes {
		p, err := ParsePattern(r.Path)
		if err != nil {
			errs = append(errs, fmt.Errorf("route %d (%s): %w", i, r.Name, err))
			continue
		}
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("route %d (%s): %w", i, r.Path, ErrEmptyName))
			continue
		}
		if _, ok := t.byName[r.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name))
			continue
		}
		if r.Props && len(p.Params()) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s (%s)", ErrPropsWithoutSegment, r.Name, r.Path))
			continue
		}
		if other, ok := shapes[p.Shape()]; ok {
			errs = append(errs, fmt.Errorf("%w: %s and %s share %s", ErrDuplicatePattern, other, r.Name, p.Shape()))
			continue
		}
		if other, ok := t.conflict(p); ok {
			errs = append(errs, fmt.Errorf("%w: %s (%s) and %s (%s) overlap with neither more specific",
				ErrConflictingPattern, other.route.Name, other.route.Path, r.Name, r.Path))
			continue
		}

		shapes[p.Shape()] = r.Name
		t.byName[r.Name] = len(t.entries)
		t.entries = append(t.entries, entry{route: r, pattern: p})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

// MustTable is like NewTable but panics on an invalid table.
// It is intended for tables declared in source.
func MustTable(routes ...Route) *Table {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Routes returns the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.route
	}
	return out
}

// Pattern returns the compiled pattern of the named route.
func (t *Table) Pattern(name string) (Pattern, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Pattern{}, false
	}
	return t.entries[i].pattern, true
}

// Lookup returns the route registered under name.
func (t *Table) Lookup(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.entries[i].route, true
}

// Resolve returns the most specific route matching path: a literal
// segment outranks a named one, as in net/http ServeMux. Validation
// guarantees that the routes matching any path are totally ordered by
// specificity. Params are populated only for routes declaring Props.
func (t *Table) Resolve(path string) (Match, bool) {
	var best *entry
	var bestParams map[string]string

	for i := range t.entries {
		e := &t.entries[i]
		params, ok := e.pattern.Match(path)
		if !ok {
			continue
		}
		if best == nil || best.pattern.covers(e.pattern) {
			best, bestParams = e, params
		}
	}

	if best == nil {
		return Match{}, false
	}
	if !best.route.Props {
		bestParams = map[string]string{}
	}
	return Match{Route: best.route, Params: bestParams}, true
}

// conflict returns an entry whose pattern overlaps p without either one
// being more specific than the other. Such pairs have no defined winner.
func (t *Table) conflict(p Pattern) (entry, bool) {
	for _, e := range t.entries {
		if e.pattern.overlaps(p) && !e.pattern.covers(p) && !p.covers(e.pattern) {
			return e, true
		}
	}
	return entry{}, false
}

// URL builds the path of the named route from params.
func (t *Table) URL(name string, params map[string]string) (string, error) {
	p, ok := t.Pattern(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}
	u, err := p.Build(params)
	if err != nil {
		return "", fmt.Errorf("route %s: %w", name, err)
	}
	return u, nil
}
