package navigation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// Segment is one slash-delimited element of a route path.
// Named segments capture the matching URL element under Name.
type Segment struct {
	Literal string
	Name    string
}

// Named reports whether the segment captures a value.
func (s Segment) Named() bool {
	return s.Name != ""
}

// Pattern is a compiled route path.
type Pattern struct {
	raw      string
	segments []Segment
}

// ParsePattern compiles a route path such as "/vehicle/details/:vehicleId".
func ParsePattern(path string) (Pattern, error) {
	if path == "" {
		return Pattern{}, ErrEmptyPath
	}
	if !strings.HasPrefix(path, "/") {
		return Pattern{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPath, path)
	}
	if path == "/" {
		return Pattern{raw: path}, nil
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	segments := make([]Segment, 0, len(parts))
	seen := make(map[string]bool)

	for _, part := range parts {
		switch {
		case part == "":
			return Pattern{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, path)
		case strings.HasPrefix(part, ":"):
			name := part[1:]
			if name == "" {
				return Pattern{}, fmt.Errorf("%w: %q has an unnamed segment", ErrInvalidPath, path)
			}
			if !isIdentifier(name) {
				return Pattern{}, fmt.Errorf("%w: %q segment name %q is not an identifier", ErrInvalidPath, path, name)
			}
			if seen[name] {
				return Pattern{}, fmt.Errorf("%w: %q repeats segment %s", ErrInvalidPath, path, name)
			}
			seen[name] = true
			segments = append(segments, Segment{Name: name})
		case part == "." || part == "..":
			return Pattern{}, fmt.Errorf("%w: %q has a dot segment", ErrInvalidPath, path)
		case strings.ContainsAny(part, "{}%") || strings.ContainsFunc(part, unicode.IsSpace):
			return Pattern{}, fmt.Errorf("%w: %q segment %q has reserved characters", ErrInvalidPath, path, part)
		default:
			segments = append(segments, Segment{Literal: part})
		}
	}

	return Pattern{raw: path, segments: segments}, nil
}

// String returns the path the pattern was compiled from.
func (p Pattern) String() string {
	return p.raw
}

// Segments returns a copy of the compiled segments.
func (p Pattern) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Params returns the names of the named segments in path order.
func (p Pattern) Params() []string {
	var names []string
	for _, s := range p.segments {
		if s.Named() {
			names = append(names, s.Name)
		}
	}
	return names
}

// Shape returns the pattern with every named segment collapsed to ":".
// Two patterns with the same shape match exactly the same URLs.
func (p Pattern) Shape() string {
	if len(p.segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		if s.Named() {
			b.WriteByte(':')
		} else {
			b.WriteString(s.Literal)
		}
	}
	return b.String()
}

// ServeMux translates the pattern into net/http ServeMux syntax:
// "/vehicle/details/:vehicleId" becomes "/vehicle/details/{vehicleId}"
// and the root becomes "/{$}".
func (p Pattern) ServeMux() string {
	if len(p.segments) == 0 {
		return "/{$}"
	}
	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		if s.Named() {
			b.WriteString("{" + s.Name + "}")
		} else {
			b.WriteString(s.Literal)
		}
	}
	return b.String()
}

// Match reports whether path matches the pattern and returns the
// unescaped values of the named segments.
func (p Pattern) Match(path string) (map[string]string, bool) {
	path = trimPath(path)
	if path == "/" {
		return map[string]string{}, len(p.segments) == 0
	}
	if len(p.segments) == 0 {
		return nil, false
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) != len(p.segments) {
		return nil, false
	}

	params := make(map[string]string, len(parts))
	for i, s := range p.segments {
		part := parts[i]
		if s.Named() {
			if part == "" {
				return nil, false
			}
			v, err := url.PathUnescape(part)
			if err != nil {
				return nil, false
			}
			params[s.Name] = v
			continue
		}
		if part != s.Literal {
			return nil, false
		}
	}
	return params, true
}

// overlaps reports whether some path matches both p and q.
func (p Pattern) overlaps(q Pattern) bool {
	if len(p.segments) != len(q.segments) {
		return false
	}
	for i, s := range p.segments {
		o := q.segments[i]
		if !s.Named() && !o.Named() && s.Literal != o.Literal {
			return false
		}
	}
	return true
}

// covers reports whether every path matching q also matches p.
func (p Pattern) covers(q Pattern) bool {
	if len(p.segments) != len(q.segments) {
		return false
	}
	for i, s := range p.segments {
		if s.Named() {
			continue
		}
		if o := q.segments[i]; o.Named() || o.Literal != s.Literal {
			return false
		}
	}
	return true
}

// Build fills the named segments with params, path-escaping each value.
func (p Pattern) Build(params map[string]string) (string, error) {
	if len(p.segments) == 0 {
		return "/", nil
	}
	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		if !s.Named() {
			b.WriteString(s.Literal)
			continue
		}
		v, ok := params[s.Name]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingParam, s.Name)
		}
		b.WriteString(url.PathEscape(v))
	}
	return b.String(), nil
}

func trimPath(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// isIdentifier matches the wildcard names net/http ServeMux accepts.
func isIdentifier(name string) bool {
	for i, c := range name {
		if !unicode.IsLetter(c) && c != '_' && (i == 0 || !unicode.IsDigit(c)) {
			return false
		}
	}
	return name != ""
}
