package dto

import "github.com/shopspring/decimal"

// MoveInput describes one ledger move between two locations.
type MoveInput struct {
	SKU           string          `json:"sku"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	Quantity      int             `json:"quantity"`
	TransportCost decimal.Decimal `json:"transport_cost"`
	ActorID       int64           `json:"-"`
	// Note, when set, is logged as a second entry in the move's transaction.
	Note          string          `json:"-"`
}

type AddInventoryInput struct {
	SKU      string `json:"sku"`
	Location string `json:"location"`
	Quantity int    `json:"quantity"`
}

// SetQuantityInput overwrites the quantity of an existing record.
type SetQuantityInput struct {
	SKU      string `json:"sku"`
	Location string `json:"location"`
	Quantity int    `json:"quantity"`
}
