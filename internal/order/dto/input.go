package dto

import "github.com/fekuna/omnipos-scm-service/internal/model"

// PlaceOrderInput is an order request. EventID is set by the event listener;
// a second order with the same EventID is rejected with ErrDuplicateEvent.
type PlaceOrderInput struct {
	SKU              string `json:"sku"`
	Quantity         int    `json:"quantity"`
	CustomerName     string `json:"customer_name"`
	CustomerLocation string `json:"customer_location"`
	EventID          string `json:"-"`
}

type UpdateStatusInput struct {
	ID     int64  `json:"-"`
	Status string `json:"status"`
}

// MoveToCustomerInput ships an order's units along one chosen route.
type MoveToCustomerInput struct {
	OrderID     int64  `json:"-"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// FulfillmentResult reports what one fulfillment run sourced. Remaining is
// greater than zero when reachable stock did not cover the order.
type FulfillmentResult struct {
	OrderID   int64                   `json:"order_id"`
	SKU       string                  `json:"sku"`
	Requested int                     `json:"requested"`
	Fulfilled int                     `json:"fulfilled"`
	Remaining int                     `json:"remaining"`
	Moves     []model.LogisticsRecord `json:"moves"`
	Skipped   []string                `json:"skipped"`
}
