package report

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/shopspring/decimal"
)

// Repository exposes the independent aggregates of the summary report. No
// read is consistent with another; callers accept a benign race.
type Repository interface {
	CountOrders(ctx context.Context) (int, error)
	CountOrdersByStatus(ctx context.Context, status string) (int, error)
	CountLowStockSKUs(ctx context.Context) (int, error)
	SumLogisticsCost(ctx context.Context) (decimal.Decimal, error)

	SaveSnapshot(ctx context.Context, snapshot *model.ReportSnapshot, actorID int64) error
	ListSnapshots(ctx context.Context) ([]model.ReportSnapshot, error)
}
