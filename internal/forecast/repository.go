package forecast

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, f *model.DemandForecast, actorID int64) error
	List(ctx context.Context) ([]model.DemandForecast, error)
	TotalForSKU(ctx context.Context, sku string) (int, error)
}
