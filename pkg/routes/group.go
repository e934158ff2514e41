// Package routes declares HTTP route groups for JSON endpoints.
package routes

import "net/http"

// Group is a set of routes under a common URL prefix.
// Children inherit the parent prefix.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}

// Route is an HTTP endpoint: method, ServeMux pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
