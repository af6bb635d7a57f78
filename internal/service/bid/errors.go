package bid

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidBidID          = errors.New("invalid bid id")
	ErrInvalidLoadID         = errors.New("invalid load id")
	ErrInvalidAmount         = errors.New("bid amount must be positive")

	ErrBidNotFound          = errors.New("bid not found")
	ErrLoadNotFound         = errors.New("load not found")
	ErrDriverNotFound       = errors.New("driver not found")
	ErrLoadClosed           = errors.New("load is not accepting bids")
	ErrLoadAlreadyAssigned  = errors.New("load already has an accepted bid")
	ErrBidAlreadyDecided    = errors.New("bid is not pending")
	ErrDuplicateBid         = errors.New("driver already has a pending bid on this load")
	ErrForbidden            = errors.New("actor is not allowed to perform this bid operation")
	ErrInsufficientCapacity = errors.New("driver capacity is below load weight")
	ErrVehicleMismatch      = errors.New("driver vehicle type does not match load requirements")
)
