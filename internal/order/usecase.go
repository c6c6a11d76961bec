package order

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/order/dto"
)

type UseCase interface {
	PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	ListOrders(ctx context.Context, username, role string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, input *dto.UpdateStatusInput) error
	DeleteOrder(ctx context.Context, id int64) error

	// FulfillOrder sources quantity units of sku from the largest stocked
	// locations first and moves them to the customer sink. Locations with no
	// route to the sink are skipped. A shortfall is reported in the result,
	// not as an error, and the order status is left unchanged.
	FulfillOrder(ctx context.Context, orderID int64, sku string, quantity int) (*dto.FulfillmentResult, error)
	MoveOrderToCustomer(ctx context.Context, input *dto.MoveToCustomerInput) (*model.LogisticsRecord, error)
}

// Locker serializes fulfillment of one order across replicas.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}
