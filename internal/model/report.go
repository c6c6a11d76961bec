package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SummaryReport struct {
	TotalOrders        int             `json:"total_orders"`
	ProcessedOrders    int             `json:"processed_orders"`
	LowStockItems      int             `json:"low_stock_items"`
	TotalLogisticsCost decimal.Decimal `json:"total_logistics_cost"`
}

// ReportSnapshot is a persisted copy of a generated report.
type ReportSnapshot struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Payload   string    `db:"payload" json:"payload"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
