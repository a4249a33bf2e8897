package order

import "errors"

var (
	ErrNoActiveOrder    = errors.New("no active order to process")
	ErrOrderNotFound    = errors.New("order not found")
	ErrShippingRequired = errors.New("shipping information is required")
)
