package urlvalue

import "errors"

var (
	// ErrComponentOutOfRange is returned when a path component is requested
	// by an index outside the current component list.
	ErrComponentOutOfRange = errors.New("urlvalue: path component index out of range")

	// ErrParameterNotFound is returned when a query parameter that was never
	// set is requested.
	ErrParameterNotFound = errors.New("urlvalue: query parameter not found")

	// ErrInvalidQuery is returned when an encoded query string cannot be
	// decoded.
	ErrInvalidQuery = errors.New("urlvalue: invalid query string")
)
