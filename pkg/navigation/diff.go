package navigation

// Change describes one route that differs between two tables.
// Before is nil for added routes; After is nil for removed routes.
type Change struct {
	Name   string `json:"name"`
	Before *Route `json:"before,omitempty"`
	After  *Route `json:"after,omitempty"`
}

// Changes groups the differences between two tables by kind.
type Changes struct {
	Added   []Change `json:"added"`
	Removed []Change `json:"removed"`
	Changed []Change `json:"changed"`
}

// Empty reports whether the tables were identical by name.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0
}

// Diff compares routes by name. Added and changed entries follow the
// order of to; removed entries follow the order of from.
func Diff(from, to *Table) Changes {
	c := Changes{
		Added:   []Change{},
		Removed: []Change{},
		Changed: []Change{},
	}

	for _, e := range to.entries {
		after := e.route
		before, ok := from.Lookup(after.Name)
		switch {
		case !ok:
			c.Added = append(c.Added, Change{Name: after.Name, After: &after})
		case before != after:
			c.Changed = append(c.Changed, Change{Name: after.Name, Before: &before, After: &after})
		}
	}

	for _, e := range from.entries {
		if _, ok := to.Lookup(e.route.Name); !ok {
			before := e.route
			c.Removed = append(c.Removed, Change{Name: before.Name, Before: &before})
		}
	}

	return c
}
