package model

type Inventory struct {
	ID           int64        `db:"id" json:"id"`
	SKU          string       `db:"sku" json:"sku"`
	Location     string       `db:"location" json:"location"`
	LocationKind LocationKind `db:"location_kind" json:"location_kind"`
	Quantity     int          `db:"quantity" json:"quantity"`
}

// InventoryView is an inventory row joined with its product.
type InventoryView struct {
	Inventory
	ProductName string `db:"product_name" json:"product_name"`
	Threshold   int    `db:"threshold" json:"threshold"`
}

type LowStockItem struct {
	SKU       string `db:"sku" json:"sku"`
	Name      string `db:"name" json:"name"`
	Location  string `db:"location" json:"location"`
	Quantity  int    `db:"quantity" json:"quantity"`
	Threshold int    `db:"threshold" json:"threshold"`
}

// LocationStock is one product held at a single location.
type LocationStock struct {
	SKU      string `db:"sku" json:"sku"`
	Name     string `db:"name" json:"name"`
	Quantity int    `db:"quantity" json:"quantity"`
}

// StockSource is a location holding a positive quantity of a SKU.
type StockSource struct {
	Location string `db:"location" json:"location"`
	Quantity int    `db:"quantity" json:"quantity"`
}
