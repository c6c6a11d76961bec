package inventory

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type UseCase interface {
	ListInventory(ctx context.Context) ([]model.InventoryView, error)
	AddInventory(ctx context.Context, input *dto.AddInventoryInput) (*model.Inventory, error)
	UpdateInventory(ctx context.Context, input *dto.SetQuantityInput) error
	MoveProduct(ctx context.Context, input *dto.MoveInput) (*model.LogisticsRecord, error)

	ListLowStock(ctx context.Context) ([]model.LowStockItem, error)
	ListByLocation(ctx context.Context, location string) ([]model.LocationStock, error)
	ListLocations(ctx context.Context) ([]string, error)
	LocationsForSKU(ctx context.Context, sku string) ([]string, error)
	SourcesForSKU(ctx context.Context, sku string) ([]model.StockSource, error)
	TotalForSKU(ctx context.Context, sku string) (int, error)
}
