package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInsufficientStock  = errors.New("insufficient stock at origin")
	ErrRouteNotFound      = errors.New("no route found")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidCost        = errors.New("cost must not be negative")
	ErrInvalidMove        = errors.New("origin and destination must differ")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductInUse       = errors.New("product is referenced by orders, logistics or forecasts")
	ErrSKUExists          = errors.New("SKU already exists")
	ErrInventoryNotFound  = errors.New("inventory record not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidStatus      = errors.New("status must not be empty")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrBusy               = errors.New("system busy, please try again later")
	ErrDuplicateEvent     = errors.New("event already processed")
)

// InsufficientStockError is returned when the origin of a move holds less
// than the requested quantity. Nothing is mutated when it is returned.
type InsufficientStockError struct {
	SKU       string
	Location  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock at origin: %s at %q has %d, requested %d",
		e.SKU, e.Location, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// RouteNotFoundError is returned when a required origin→destination edge is absent.
type RouteNotFoundError struct {
	Origin      string
	Destination string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route found from %q to %q", e.Origin, e.Destination)
}

func (e *RouteNotFoundError) Is(target error) bool {
	return target == ErrRouteNotFound
}
