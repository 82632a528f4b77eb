package core

import "errors"

// Common errors.
var (
	ErrStoreNotFound = errors.New("note store does not exist")
	ErrInvalidPath   = errors.New("note store path cannot be empty")
)
