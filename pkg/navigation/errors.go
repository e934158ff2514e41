package navigation

import "errors"

var (
	ErrEmptyPath           = errors.New("route path is empty")
	ErrInvalidPath         = errors.New("invalid route path")
	ErrEmptyName           = errors.New("route name is empty")
	ErrDuplicateName       = errors.New("duplicate route name")
	ErrDuplicatePattern    = errors.New("duplicate route pattern")
	ErrConflictingPattern  = errors.New("conflicting route patterns")
	ErrPropsWithoutSegment = errors.New("props route has no named segment")
	ErrUnknownRoute        = errors.New("unknown route")
	ErrMissingParam        = errors.New("missing route param")
)
