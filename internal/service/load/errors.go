package load

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
	ErrInvalidLoadID         = errors.New("invalid load id")

	ErrLoadNotFound    = errors.New("load not found")
	ErrLoadNotEditable = errors.New("load is not editable in current status")
	ErrLoadHasBids     = errors.New("load already has bids")
	ErrForbidden       = errors.New("actor is not allowed to manage this load")
)
