package catalog

import (
	"errors"
	"net/http"

	"github.com/autoxela/navigator/internal/snapshots"
	"github.com/autoxela/navigator/pkg/navigation"
)

// MapHTTPStatus maps catalog and navigation errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, navigation.ErrUnknownRoute),
		errors.Is(err, snapshots.ErrUnknownVersion):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, navigation.ErrMissingParam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
