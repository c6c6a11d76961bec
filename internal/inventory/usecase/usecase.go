package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-scm-service/internal/auth"
	"github.com/fekuna/omnipos-scm-service/internal/inventory"
	"github.com/fekuna/omnipos-scm-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/metrics"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"go.uber.org/zap"
)

var errLocationRequired = fmt.Errorf("%w: location is required", model.ErrValidation)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context) ([]model.InventoryView, error) {
	return uc.repo.List(ctx)
}

func (uc *inventoryUseCase) AddInventory(ctx context.Context, input *dto.AddInventoryInput) (*model.Inventory, error) {
	input.SKU = model.NormalizeSKU(input.SKU)
	input.Location = model.NormalizeLocation(input.Location)
	if input.Location == "" {
		return nil, errLocationRequired
	}
	if input.Quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	inv, err := uc.repo.Add(ctx, input, auth.ActorID(ctx))
	if err != nil {
		return nil, err
	}
	uc.logger.Info("inventory added",
		zap.String("sku", input.SKU),
		zap.String("location", input.Location),
		zap.Int("quantity", input.Quantity),
	)
	return inv, nil
}

func (uc *inventoryUseCase) UpdateInventory(ctx context.Context, input *dto.SetQuantityInput) error {
	input.SKU = model.NormalizeSKU(input.SKU)
	input.Location = model.NormalizeLocation(input.Location)
	if input.Location == "" {
		return errLocationRequired
	}
	if input.Quantity < 0 {
		return model.ErrInvalidQuantity
	}

	if err := uc.repo.SetQuantity(ctx, input, auth.ActorID(ctx)); err != nil {
		return err
	}
	uc.logger.Info("inventory updated",
		zap.String("sku", input.SKU),
		zap.String("location", input.Location),
		zap.Int("quantity", input.Quantity),
	)
	return nil
}

func (uc *inventoryUseCase) MoveProduct(ctx context.Context, input *dto.MoveInput) (*model.LogisticsRecord, error) {
	input.SKU = model.NormalizeSKU(input.SKU)
	input.Origin = model.NormalizeLocation(input.Origin)
	input.Destination = model.NormalizeLocation(input.Destination)

	switch {
	case input.Quantity <= 0:
		return nil, model.ErrInvalidQuantity
	case input.TransportCost.IsNegative():
		return nil, model.ErrInvalidCost
	case input.Origin == "" || input.Destination == "":
		return nil, errLocationRequired
	case input.Origin == input.Destination:
		return nil, model.ErrInvalidMove
	}
	if input.ActorID == 0 {
		input.ActorID = auth.ActorID(ctx)
	}

	fields := []zap.Field{
		zap.String("sku", input.SKU),
		zap.String("origin", input.Origin),
		zap.String("destination", input.Destination),
		zap.Int("quantity", input.Quantity),
	}

	rec, err := uc.repo.Move(ctx, input)
	if err != nil {
		if errors.Is(err, model.ErrInsufficientStock) {
			metrics.ObserveMove(metrics.MoveInsufficient, 0)
			uc.logger.Warn("move rejected", append(fields, zap.Error(err))...)
		} else {
			metrics.ObserveMove(metrics.MoveFailed, 0)
			uc.logger.Error("move failed", append(fields, zap.Error(err))...)
		}
		return nil, err
	}

	metrics.ObserveMove(metrics.MoveOK, input.Quantity)
	uc.logger.Info("stock moved", append(fields, zap.String("transport_cost", rec.TransportCost.StringFixed(2)))...)
	return rec, nil
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context) ([]model.LowStockItem, error) {
	return uc.repo.ListLowStock(ctx)
}

func (uc *inventoryUseCase) ListByLocation(ctx context.Context, location string) ([]model.LocationStock, error) {
	return uc.repo.ListByLocation(ctx, model.NormalizeLocation(location))
}

func (uc *inventoryUseCase) ListLocations(ctx context.Context) ([]string, error) {
	return uc.repo.ListLocations(ctx)
}

func (uc *inventoryUseCase) LocationsForSKU(ctx context.Context, sku string) ([]string, error) {
	return uc.repo.LocationsForSKU(ctx, model.NormalizeSKU(sku))
}

func (uc *inventoryUseCase) SourcesForSKU(ctx context.Context, sku string) ([]model.StockSource, error) {
	return uc.repo.SourcesForSKU(ctx, model.NormalizeSKU(sku))
}

func (uc *inventoryUseCase) TotalForSKU(ctx context.Context, sku string) (int, error) {
	return uc.repo.TotalForSKU(ctx, model.NormalizeSKU(sku))
}
