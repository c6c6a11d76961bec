package model

import "time"

type DemandForecast struct {
	ID            int64     `db:"id" json:"id"`
	SKU           string    `db:"sku" json:"sku"`
	ForecastValue int       `db:"forecast_value" json:"forecast_value"`
	ForecastDate  time.Time `db:"forecast_date" json:"forecast_date"`
}
