package dto

import "github.com/shopspring/decimal"

type CreateRouteInput struct {
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Cost        decimal.Decimal `json:"cost"`
	DistanceKM  decimal.Decimal `json:"distance_km"`
}

// Locations lists route endpoints for the move form: origins exclude
// customer-facing locations, destinations include every endpoint.
type Locations struct {
	Origins      []string `json:"origins"`
	Destinations []string `json:"destinations"`
}
