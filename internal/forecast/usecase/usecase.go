package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-scm-service/internal/auth"
	"github.com/fekuna/omnipos-scm-service/internal/forecast"
	"github.com/fekuna/omnipos-scm-service/internal/forecast/dto"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var (
	errBadDate       = fmt.Errorf("%w: forecast_date must be YYYY-MM-DD", model.ErrValidation)
	errNegativeValue = fmt.Errorf("%w: forecast_value must not be negative", model.ErrValidation)
)

type forecastUseCase struct {
	repo   forecast.Repository
	stock  forecast.StockCounter
	logger logger.ZapLogger
}

func NewForecastUseCase(repo forecast.Repository, stock forecast.StockCounter, log logger.ZapLogger) forecast.UseCase {
	return &forecastUseCase{
		repo:   repo,
		stock:  stock,
		logger: log,
	}
}

func (uc *forecastUseCase) AddForecast(ctx context.Context, input *dto.AddForecastInput) (*model.DemandForecast, error) {
	date, err := time.Parse(dateLayout, input.ForecastDate)
	if err != nil {
		return nil, errBadDate
	}
	if input.ForecastValue < 0 {
		return nil, errNegativeValue
	}

	f := &model.DemandForecast{
		SKU:           model.NormalizeSKU(input.SKU),
		ForecastValue: input.ForecastValue,
		ForecastDate:  date,
	}
	if err := uc.repo.Create(ctx, f, auth.ActorID(ctx)); err != nil {
		return nil, err
	}
	uc.logger.Info("forecast added",
		zap.String("sku", f.SKU),
		zap.Int("forecast_value", f.ForecastValue),
		zap.String("forecast_date", input.ForecastDate),
	)
	return f, nil
}

func (uc *forecastUseCase) ListForecasts(ctx context.Context) ([]model.DemandForecast, error) {
	return uc.repo.List(ctx)
}

// Gap is computed on read; forecasts never adjust inventory.
func (uc *forecastUseCase) Gap(ctx context.Context, sku string) (*dto.Gap, error) {
	sku = model.NormalizeSKU(sku)

	projected, err := uc.repo.TotalForSKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	onHand, err := uc.stock.TotalForSKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return &dto.Gap{
		SKU:       sku,
		Forecast:  projected,
		Inventory: onHand,
		Shortfall: projected - onHand,
	}, nil
}
