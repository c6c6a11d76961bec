package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-scm-service/internal/inventory"
	invDto "github.com/fekuna/omnipos-scm-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/metrics"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/order"
	"github.com/fekuna/omnipos-scm-service/internal/order/dto"
	"github.com/fekuna/omnipos-scm-service/internal/product"
	"github.com/fekuna/omnipos-scm-service/internal/route"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	lockTTL      = 30 * time.Second
	lockAttempts = 3
	lockBackoff  = 100 * time.Millisecond
)

var errCustomerRequired = fmt.Errorf("%w: customer name and location are required", model.ErrValidation)

type orderUseCase struct {
	repo      order.Repository
	products  product.UseCase
	inventory inventory.UseCase
	routes    route.UseCase
	locker    order.Locker
	logger    logger.ZapLogger
}

// NewOrderUseCase wires the order flows. locker may be nil, in which case
// fulfillment runs without a cross-replica lock.
func NewOrderUseCase(
	repo order.Repository,
	products product.UseCase,
	inv inventory.UseCase,
	routes route.UseCase,
	locker order.Locker,
	log logger.ZapLogger,
) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		products:  products,
		inventory: inv,
		routes:    routes,
		locker:    locker,
		logger:    log,
	}
}

func (uc *orderUseCase) PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (*model.Order, error) {
	o := &model.Order{
		SKU:              model.NormalizeSKU(input.SKU),
		Quantity:         input.Quantity,
		CustomerName:     strings.TrimSpace(input.CustomerName),
		CustomerLocation: model.NormalizeLocation(input.CustomerLocation),
		Status:           model.StatusPending,
	}
	if o.Quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}
	if o.CustomerName == "" || o.CustomerLocation == "" {
		return nil, errCustomerRequired
	}
	if _, err := uc.products.GetProduct(ctx, o.SKU); err != nil {
		return nil, err
	}

	eventID := strings.TrimSpace(input.EventID)
	if eventID != "" {
		existing, err := uc.repo.FindByEventID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, model.ErrDuplicateEvent
		}
	}

	if err := uc.repo.Create(ctx, o, eventID); err != nil {
		return nil, err
	}
	uc.logger.Info("order placed",
		zap.Int64("order_id", o.ID),
		zap.String("sku", o.SKU),
		zap.Int("quantity", o.Quantity),
	)
	return o, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, model.ErrOrderNotFound
	}
	return o, nil
}

// ListOrders shows a User only the orders placed under their own name.
func (uc *orderUseCase) ListOrders(ctx context.Context, username, role string) ([]model.Order, error) {
	customer := ""
	if role == model.RoleUser {
		customer = username
	}
	return uc.repo.List(ctx, customer)
}

func (uc *orderUseCase) UpdateStatus(ctx context.Context, input *dto.UpdateStatusInput) error {
	status := strings.TrimSpace(input.Status)
	if status == "" {
		return model.ErrInvalidStatus
	}
	if err := uc.repo.UpdateStatus(ctx, input.ID, status); err != nil {
		return err
	}
	uc.logger.Info("order status updated", zap.Int64("order_id", input.ID), zap.String("status", status))
	return nil
}

func (uc *orderUseCase) DeleteOrder(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("order deleted", zap.Int64("order_id", id))
	return nil
}

func (uc *orderUseCase) FulfillOrder(ctx context.Context, orderID int64, sku string, quantity int) (*dto.FulfillmentResult, error) {
	sku = model.NormalizeSKU(sku)
	if quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	release, err := uc.lock(ctx, orderID)
	if err != nil {
		return nil, err
	}
	defer release()

	log := uc.logger.With(zap.Int64("order_id", orderID), zap.String("sku", sku))
	result := &dto.FulfillmentResult{
		OrderID:   orderID,
		SKU:       sku,
		Requested: quantity,
		Remaining: quantity,
		Moves:     []model.LogisticsRecord{},
		Skipped:   []string{},
	}

	sources, err := uc.inventory.SourcesForSKU(ctx, sku)
	if err != nil {
		metrics.ObserveFulfillment(metrics.FulfillmentFailed, 0)
		return nil, err
	}

	// One location at a time; each move commits before the next is considered.
	for _, src := range sources {
		if result.Remaining <= 0 {
			break
		}
		if model.ClassifyLocation(src.Location) == model.LocationCustomer {
			result.Skipped = append(result.Skipped, src.Location)
			continue
		}

		cost, ok, err := uc.routes.RouteCost(ctx, src.Location, model.CustomerSink)
		if err != nil {
			metrics.ObserveFulfillment(metrics.FulfillmentFailed, result.Remaining)
			return result, err
		}
		if !ok {
			log.Debug("no route to customer, skipping source", zap.String("location", src.Location))
			result.Skipped = append(result.Skipped, src.Location)
			continue
		}

		moveQty := min(result.Remaining, src.Quantity)
		rec, err := uc.inventory.MoveProduct(ctx, &invDto.MoveInput{
			SKU:           sku,
			Origin:        src.Location,
			Destination:   model.CustomerSink,
			Quantity:      moveQty,
			TransportCost: cost,
		})
		if err != nil {
			log.Error("fulfillment move failed", zap.String("location", src.Location), zap.Error(err))
			metrics.ObserveFulfillment(metrics.FulfillmentFailed, result.Remaining)
			return result, err
		}

		result.Moves = append(result.Moves, *rec)
		result.Fulfilled += moveQty
		result.Remaining -= moveQty
	}

	if result.Remaining > 0 {
		log.Warn("order partially fulfilled",
			zap.Int("requested", result.Requested),
			zap.Int("fulfilled", result.Fulfilled),
			zap.Int("remaining", result.Remaining),
			zap.Strings("skipped", result.Skipped),
		)
		metrics.ObserveFulfillment(metrics.FulfillmentPartial, result.Remaining)
		return result, nil
	}

	log.Info("order fulfilled", zap.Int("quantity", result.Fulfilled), zap.Int("moves", len(result.Moves)))
	metrics.ObserveFulfillment(metrics.FulfillmentComplete, 0)
	return result, nil
}

func (uc *orderUseCase) MoveOrderToCustomer(ctx context.Context, input *dto.MoveToCustomerInput) (*model.LogisticsRecord, error) {
	sku := model.NormalizeSKU(input.SKU)
	origin := model.NormalizeLocation(input.Origin)
	destination := model.NormalizeLocation(input.Destination)
	if input.Quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	perUnit, ok, err := uc.routes.RouteCost(ctx, origin, destination)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &model.RouteNotFoundError{Origin: origin, Destination: destination}
	}

	note := fmt.Sprintf("Moved order #%d: %d of %s from %s to %s",
		input.OrderID, input.Quantity, sku, origin, destination)
	rec, err := uc.inventory.MoveProduct(ctx, &invDto.MoveInput{
		SKU:           sku,
		Origin:        origin,
		Destination:   destination,
		Quantity:      input.Quantity,
		TransportCost: perUnit.Mul(decimal.NewFromInt(int64(input.Quantity))),
		Note:          note,
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Info("order moved to customer",
		zap.Int64("order_id", input.OrderID),
		zap.String("origin", origin),
		zap.String("destination", destination),
	)
	return rec, nil
}

// lock takes the per-order fulfillment lock when a locker is configured.
func (uc *orderUseCase) lock(ctx context.Context, orderID int64) (func(), error) {
	if uc.locker == nil {
		return func() {}, nil
	}

	key := fmt.Sprintf("lock:fulfillment:%d", orderID)
	value := uuid.New().String()

	acquired := false
	for i := 0; i < lockAttempts; i++ {
		ok, err := uc.locker.AcquireLock(ctx, key, value, lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire fulfillment lock", zap.String("key", key), zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}
		if i == lockAttempts-1 {
			break
		}

		timer := time.NewTimer(lockBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	if !acquired {
		return nil, model.ErrBusy
	}

	return func() {
		if err := uc.locker.ReleaseLock(context.WithoutCancel(ctx), key, value); err != nil {
			uc.logger.Warn("failed to release fulfillment lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}
