package tracking

import "errors"

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	ErrOrderNotFound   = errors.New("order not found")
	ErrRouteNotFound   = errors.New("route tracking not found")
	ErrLocationUnknown = errors.New("driver location is not known yet")
	ErrOrderNotActive  = errors.New("order is not active")
	ErrForbidden       = errors.New("actor is not allowed to send pings for this order")
)
