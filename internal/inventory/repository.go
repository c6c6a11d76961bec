package inventory

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type Repository interface {
	// Reads
	List(ctx context.Context) ([]model.InventoryView, error)
	Get(ctx context.Context, sku, location string) (*model.Inventory, error)
	ListByLocation(ctx context.Context, location string) ([]model.LocationStock, error)
	ListLowStock(ctx context.Context) ([]model.LowStockItem, error)
	ListLocations(ctx context.Context) ([]string, error)
	LocationsForSKU(ctx context.Context, sku string) ([]string, error)
	SourcesForSKU(ctx context.Context, sku string) ([]model.StockSource, error)
	TotalForSKU(ctx context.Context, sku string) (int, error)

	// Direct stock edits
	Add(ctx context.Context, input *dto.AddInventoryInput, actorID int64) (*model.Inventory, error)
	SetQuantity(ctx context.Context, input *dto.SetQuantityInput, actorID int64) error

	// Move debits origin, credits destination and appends the logistics and
	// log rows in one transaction.
	Move(ctx context.Context, input *dto.MoveInput) (*model.LogisticsRecord, error)
}
