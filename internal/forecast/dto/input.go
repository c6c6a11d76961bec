package dto

type AddForecastInput struct {
	SKU           string `json:"sku"`
	ForecastValue int    `json:"forecast_value"`
	// ForecastDate is a calendar date, YYYY-MM-DD.
	ForecastDate string `json:"forecast_date"`
}

// Gap compares projected demand with stock on hand. A positive Shortfall
// means inventory does not cover the forecast.
type Gap struct {
	SKU       string `json:"sku"`
	Forecast  int    `json:"forecast"`
	Inventory int    `json:"inventory"`
	Shortfall int    `json:"shortfall"`
}
