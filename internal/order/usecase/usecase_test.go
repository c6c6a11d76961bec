package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-scm-service/internal/database/dbtest"
	invRepo "github.com/fekuna/omnipos-scm-service/internal/inventory/repository"
	invUC "github.com/fekuna/omnipos-scm-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/order"
	"github.com/fekuna/omnipos-scm-service/internal/order/dto"
	orderRepo "github.com/fekuna/omnipos-scm-service/internal/order/repository"
	"github.com/fekuna/omnipos-scm-service/internal/order/usecase"
	prodRepo "github.com/fekuna/omnipos-scm-service/internal/product/repository"
	prodUC "github.com/fekuna/omnipos-scm-service/internal/product/usecase"
	routeRepo "github.com/fekuna/omnipos-scm-service/internal/route/repository"
	routeUC "github.com/fekuna/omnipos-scm-service/internal/route/usecase"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T, locker order.Locker) (*sqlx.DB, order.UseCase) {
	t.Helper()
	db := dbtest.New(t)
	log := logger.NewNop()

	uc := usecase.NewOrderUseCase(
		orderRepo.NewPGRepository(db),
		prodUC.NewProductUseCase(prodRepo.NewPGRepository(db), log),
		invUC.NewInventoryUseCase(invRepo.NewPGRepository(db), log),
		routeUC.NewRouteUseCase(routeRepo.NewPGRepository(db), log),
		locker,
		log,
	)
	return db, uc
}

func TestFulfillOrder_SkipsUnroutedLocations(t *testing.T) {
	db, uc := newUseCase(t, nil)
	dbtest.SeedProduct(t, db, "X", "Thing", 1)
	dbtest.SeedInventory(t, db, "X", "A", "warehouse", 5)
	dbtest.SeedInventory(t, db, "X", "B", "warehouse", 10)
	dbtest.SeedRoute(t, db, "B", "warehouse", "Customer", "customer", 40, 5)

	result, err := uc.FulfillOrder(context.Background(), 1, "X", 8)
	require.NoError(t, err)

	assert.Equal(t, 8, result.Fulfilled)
	assert.Equal(t, 0, result.Remaining)
	require.Len(t, result.Moves, 1)
	assert.Equal(t, "B", result.Moves[0].Origin)
	assert.True(t, decimal.NewFromInt(40).Equal(result.Moves[0].TransportCost))

	assert.Equal(t, 5, dbtest.Quantity(t, db, "X", "A"))
	assert.Equal(t, 2, dbtest.Quantity(t, db, "X", "B"))
	assert.Equal(t, 8, dbtest.Quantity(t, db, "X", "Customer"))
}

func TestFulfillOrder_LargestSourceFirst(t *testing.T) {
	db, uc := newUseCase(t, nil)
	dbtest.SeedProduct(t, db, "X", "Thing", 1)
	dbtest.SeedInventory(t, db, "X", "Small", "warehouse", 5)
	dbtest.SeedInventory(t, db, "X", "Big", "warehouse", 10)
	dbtest.SeedInventory(t, db, "X", "Unrouted", "warehouse", 50)
	dbtest.SeedRoute(t, db, "Small", "warehouse", "Customer", "customer", 10, 1)
	dbtest.SeedRoute(t, db, "Big", "warehouse", "Customer", "customer", 90, 1)

	result, err := uc.FulfillOrder(context.Background(), 7, "x", 12)
	require.NoError(t, err)

	require.Len(t, result.Moves, 2)
	assert.Equal(t, "Big", result.Moves[0].Origin)
	assert.Equal(t, 10, result.Moves[0].Quantity)
	assert.Equal(t, "Small", result.Moves[1].Origin)
	assert.Equal(t, 2, result.Moves[1].Quantity)
	assert.Equal(t, []string{"Unrouted"}, result.Skipped)

	assert.Equal(t, 50, dbtest.Quantity(t, db, "X", "Unrouted"))
	assert.Equal(t, 12, dbtest.Quantity(t, db, "X", "Customer"))
	assert.Equal(t, 2, dbtest.Count(t, db, "logistics"))
}

func TestFulfillOrder_ShortfallIsNotAnError(t *testing.T) {
	db, uc := newUseCase(t, nil)
	dbtest.SeedProduct(t, db, "X", "Thing", 1)
	dbtest.SeedInventory(t, db, "X", "B", "warehouse", 10)
	dbtest.SeedRoute(t, db, "B", "warehouse", "Customer", "customer", 40, 5)

	o, err := uc.PlaceOrder(context.Background(), &dto.PlaceOrderInput{SKU: "X", Quantity: 20, CustomerName: "user1", CustomerLocation: "Retail Hub 1"})
	require.NoError(t, err)

	result, err := uc.FulfillOrder(context.Background(), o.ID, o.SKU, o.Quantity)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Fulfilled)
	assert.Equal(t, 10, result.Remaining)

	stored, err := uc.GetOrder(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.Equal(t, 0, dbtest.Quantity(t, db, "X", "B"))
}

func TestFulfillOrder_IgnoresCustomerSinkStock(t *testing.T) {
	db, uc := newUseCase(t, nil)
	dbtest.SeedProduct(t, db, "X", "Thing", 1)
	dbtest.SeedInventory(t, db, "X", "Customer", "customer", 100)

	result, err := uc.FulfillOrder(context.Background(), 1, "X", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Remaining)
	assert.Empty(t, result.Moves)
	assert.Equal(t, []string{"Customer"}, result.Skipped)
	assert.Equal(t, 100, dbtest.Quantity(t, db, "X", "Customer"))
}

type fakeLocker struct {
	grant    bool
	err      error
	acquired int
	released int
}

func (f *fakeLocker) AcquireLock(_ context.Context, _, _ string, _ time.Duration) (bool, error) {
	f.acquired++
	return f.grant, f.err
}

func (f *fakeLocker) ReleaseLock(_ context.Context, _, _ string) error {
	f.released++
	return nil
}

func TestFulfillOrder_Lock(t *testing.T) {
	t.Run("busy", func(t *testing.T) {
		locker := &fakeLocker{grant: false, err: errors.New("redis down")}
		_, uc := newUseCase(t, locker)

		start := time.Now()
		_, err := uc.FulfillOrder(context.Background(), 1, "X", 1)
		assert.ErrorIs(t, err, model.ErrBusy)
		assert.Equal(t, 3, locker.acquired)
		// Backoff only between attempts, not after the last one.
		assert.Less(t, time.Since(start), 300*time.Millisecond)
		assert.Equal(t, 0, locker.released)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		locker := &fakeLocker{grant: false}
		_, uc := newUseCase(t, locker)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		_, err := uc.FulfillOrder(ctx, 1, "X", 1)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, locker.acquired)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("granted", func(t *testing.T) {
		locker := &fakeLocker{grant: true}
		db, uc := newUseCase(t, locker)
		dbtest.SeedProduct(t, db, "X", "Thing", 1)

		_, err := uc.FulfillOrder(context.Background(), 1, "X", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, locker.acquired)
		assert.Equal(t, 1, locker.released)
	})
}

func TestMoveOrderToCustomer(t *testing.T) {
	db, uc := newUseCase(t, nil)
	dbtest.SeedProduct(t, db, "X", "Thing", 1)
	dbtest.SeedInventory(t, db, "X", "Warehouse B", "warehouse", 10)
	dbtest.SeedRoute(t, db, "Warehouse B", "warehouse", "Retail Hub 1", "retail_hub", 100, 15)
	dbtest.SeedRoute(t, db, "Warehouse B", "warehouse", "Retail Hub 1", "retail_hub", 70, 15)

	_, err := uc.MoveOrderToCustomer(context.Background(), &dto.MoveToCustomerInput{
		OrderID: 3, SKU: "X", Quantity: 2, Origin: "Warehouse B", Destination: "Retail Hub 9",
	})
	var routeErr *model.RouteNotFoundError
	require.True(t, errors.As(err, &routeErr))
	assert.Equal(t, "Retail Hub 9", routeErr.Destination)
	assert.Equal(t, 10, dbtest.Quantity(t, db, "X", "Warehouse B"))
	assert.Equal(t, 0, dbtest.Count(t, db, "logs"))

	rec, err := uc.MoveOrderToCustomer(context.Background(), &dto.MoveToCustomerInput{
		OrderID: 3, SKU: "X", Quantity: 3, Origin: "Warehouse B", Destination: "Retail Hub 1",
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(210).Equal(rec.TransportCost), rec.TransportCost.String())
	assert.Equal(t, 7, dbtest.Quantity(t, db, "X", "Warehouse B"))

	var actions []string
	require.NoError(t, db.Select(&actions, `SELECT action FROM logs ORDER BY id`))
	require.Len(t, actions, 2)
	assert.Equal(t, "Moved order #3: 3 of X from Warehouse B to Retail Hub 1", actions[1])
}

func TestOrders_Lifecycle(t *testing.T) {
	db, uc := newUseCase(t, nil)
	dbtest.SeedProduct(t, db, "X", "Thing", 1)
	ctx := context.Background()

	_, err := uc.PlaceOrder(ctx, &dto.PlaceOrderInput{SKU: "NOPE", Quantity: 1, CustomerName: "a", CustomerLocation: "b"})
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	_, err = uc.PlaceOrder(ctx, &dto.PlaceOrderInput{SKU: "X", Quantity: 0, CustomerName: "a", CustomerLocation: "b"})
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	first, err := uc.PlaceOrder(ctx, &dto.PlaceOrderInput{SKU: "x", Quantity: 1, CustomerName: "user1", CustomerLocation: "Retail Hub 1"})
	require.NoError(t, err)
	second, err := uc.PlaceOrder(ctx, &dto.PlaceOrderInput{SKU: "X", Quantity: 2, CustomerName: "someone", CustomerLocation: "Retail Hub 2"})
	require.NoError(t, err)

	mine, err := uc.ListOrders(ctx, "user1", model.RoleUser)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	all, err := uc.ListOrders(ctx, "admin1", model.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	require.NoError(t, uc.UpdateStatus(ctx, &dto.UpdateStatusInput{ID: first.ID, Status: "Cancelled"}))
	got, err := uc.GetOrder(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", got.Status)

	assert.ErrorIs(t, uc.UpdateStatus(ctx, &dto.UpdateStatusInput{ID: first.ID, Status: " "}), model.ErrInvalidStatus)
	assert.ErrorIs(t, uc.UpdateStatus(ctx, &dto.UpdateStatusInput{ID: 999, Status: "Processed"}), model.ErrOrderNotFound)

	require.NoError(t, uc.DeleteOrder(ctx, second.ID))
	_, err = uc.GetOrder(ctx, second.ID)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.Equal(t, 1, dbtest.Count(t, db, "orders"))
}

func TestPlaceOrder_DuplicateEvent(t *testing.T) {
	db, uc := newUseCase(t, nil)
	dbtest.SeedProduct(t, db, "X", "Thing", 1)
	ctx := context.Background()

	input := dto.PlaceOrderInput{SKU: "X", Quantity: 2, CustomerName: "a", CustomerLocation: "b", EventID: "evt-42"}
	first, err := uc.PlaceOrder(ctx, &input)
	require.NoError(t, err)

	again := input
	second, err := uc.PlaceOrder(ctx, &again)
	assert.ErrorIs(t, err, model.ErrDuplicateEvent)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)

	// Orders without an event id are never treated as duplicates.
	_, err = uc.PlaceOrder(ctx, &dto.PlaceOrderInput{SKU: "X", Quantity: 1, CustomerName: "a", CustomerLocation: "b"})
	require.NoError(t, err)
	_, err = uc.PlaceOrder(ctx, &dto.PlaceOrderInput{SKU: "X", Quantity: 1, CustomerName: "a", CustomerLocation: "b"})
	require.NoError(t, err)

	assert.Equal(t, 3, dbtest.Count(t, db, "orders"))
}
