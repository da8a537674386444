package catalog

import "errors"

var (
	// ErrNotFound indicates that the catalog source does not exist or could not be read.
	ErrNotFound = errors.New("catalog: source not found")

	// ErrMalformed indicates that a data row's first field is not a positive integer.
	ErrMalformed = errors.New("catalog: malformed row")
)
