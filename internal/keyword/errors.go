package keyword

import "errors"

// Domain-specific errors for the keyword package.
var (
	ErrEmptyKey      = errors.New("keyword key is empty")
	ErrEmptyCategory = errors.New("keyword category is empty")
)
