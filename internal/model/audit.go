package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SystemUserID is the actor recorded for mutations without an authenticated user.
const SystemUserID int64 = 1

// LogisticsRecord is written once per successful move and never changed.
type LogisticsRecord struct {
	ID            int64           `db:"id" json:"id"`
	SKU           string          `db:"sku" json:"sku"`
	Origin        string          `db:"origin" json:"origin"`
	Destination   string          `db:"destination" json:"destination"`
	Quantity      int             `db:"quantity" json:"quantity"`
	TransportCost decimal.Decimal `db:"transport_cost" json:"transport_cost"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

type LogEntry struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Action    string    `db:"action" json:"action"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
