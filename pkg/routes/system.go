package routes

import "net/http"

// System collects route declarations and builds them into one handler.
// Build fails when a pattern is malformed or collides with another.
type System interface {
	RegisterGroup(group Group)
	RegisterRoute(route Route)
	Build() (http.Handler, error)
}
