package forecast

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/forecast/dto"
	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type UseCase interface {
	AddForecast(ctx context.Context, input *dto.AddForecastInput) (*model.DemandForecast, error)
	ListForecasts(ctx context.Context) ([]model.DemandForecast, error)
	Gap(ctx context.Context, sku string) (*dto.Gap, error)
}

// StockCounter reports total stock of a sku across every location.
type StockCounter interface {
	TotalForSKU(ctx context.Context, sku string) (int, error)
}
