package match

import "errors"

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidRadius      = errors.New("radius must be positive")
	ErrDriverNotFound     = errors.New("driver not found")
)
