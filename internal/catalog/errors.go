package catalog

import "errors"

var (
	// ErrNotFound indicates no route matched the name or path.
	ErrNotFound = errors.New("route not found")

	// ErrInvalidRequest indicates a missing or malformed query parameter.
	ErrInvalidRequest = errors.New("invalid request")
)
