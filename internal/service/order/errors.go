package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidStatus  = errors.New("invalid order status")

	ErrOrderNotFound          = errors.New("order not found")
	ErrAwaitingDriverAccept   = errors.New("driver has not accepted the order yet")
	ErrPaymentNotFound        = errors.New("authorized payment not found")
	ErrInvalidTransition      = errors.New("status transition is not allowed")
	ErrOrderTerminal          = errors.New("order is in a terminal status")
	ErrForbidden              = errors.New("actor is not allowed to manage this order")
	ErrPaymentNotCaptured     = errors.New("payment capture failed")
	ErrCompletionNotInTransit = errors.New("order must be in transit to complete")
)
