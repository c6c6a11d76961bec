package model

import "strings"

type LocationKind string

const (
	LocationWarehouse LocationKind = "warehouse"
	LocationRetailHub LocationKind = "retail_hub"
	LocationCustomer  LocationKind = "customer"
)

// CustomerSink is the location fulfilled stock is moved into.
const CustomerSink = "Customer"

const retailHubPrefix = "retail hub"

// ClassifyLocation derives the kind of a named location. It is the only
// place where location names are interpreted; everything downstream works
// on the persisted kind.
func ClassifyLocation(name string) LocationKind {
	n := NormalizeLocation(name)
	switch {
	case strings.EqualFold(n, CustomerSink):
		return LocationCustomer
	case strings.HasPrefix(strings.ToLower(n), retailHubPrefix):
		return LocationRetailHub
	default:
		return LocationWarehouse
	}
}

// CustomerFacing reports whether stock at this kind of location has left
// the warehouse network.
func (k LocationKind) CustomerFacing() bool {
	return k == LocationRetailHub || k == LocationCustomer
}

func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

func NormalizeLocation(name string) string {
	return strings.TrimSpace(name)
}
