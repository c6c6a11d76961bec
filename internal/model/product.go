package model

type Product struct {
	SKU         string `db:"sku" json:"sku"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Threshold   int    `db:"threshold" json:"threshold"` // Stock below this is low
}
