package model

import "time"

// Statuses the service itself assigns. Administrators may set any other value.
const (
	StatusPending   = "Pending"
	StatusProcessed = "Processed"
)

type Order struct {
	ID               int64     `db:"id" json:"id"`
	SKU              string    `db:"sku" json:"sku"`
	Quantity         int       `db:"quantity" json:"quantity"`
	CustomerName     string    `db:"customer_name" json:"customer_name"`
	CustomerLocation string    `db:"customer_location" json:"customer_location"`
	Status           string    `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
