package model

import "github.com/shopspring/decimal"

// Route is a directed, costed edge between two locations. Several routes may
// exist for the same pair; the cheapest one is used.
type Route struct {
	ID              int64           `db:"id" json:"id"`
	Origin          string          `db:"origin" json:"origin"`
	OriginKind      LocationKind    `db:"origin_kind" json:"origin_kind"`
	Destination     string          `db:"destination" json:"destination"`
	DestinationKind LocationKind    `db:"destination_kind" json:"destination_kind"`
	Cost            decimal.Decimal `db:"cost" json:"cost"`
	DistanceKM      decimal.Decimal `db:"distance_km" json:"distance_km"`
}

type RouteDetails struct {
	Cost     decimal.Decimal `json:"cost"`
	Distance decimal.Decimal `json:"distance"`
}

type OriginSuggestion struct {
	Origin string          `db:"origin" json:"origin"`
	Cost   decimal.Decimal `db:"cost" json:"cost"`
}
