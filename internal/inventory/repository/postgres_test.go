package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-scm-service/internal/database/dbtest"
	"github.com/fekuna/omnipos-scm-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-scm-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*sqlx.DB, *repository.PGRepository) {
	t.Helper()
	db := dbtest.New(t)
	dbtest.SeedProduct(t, db, "SKU001", "Laptop", 5)
	dbtest.SeedInventory(t, db, "SKU001", "Warehouse A", "warehouse", 20)
	return db, repository.NewPGRepository(db)
}

func move(sku, origin, destination string, qty int, cost int64) *dto.MoveInput {
	return &dto.MoveInput{
		SKU:           sku,
		Origin:        origin,
		Destination:   destination,
		Quantity:      qty,
		TransportCost: decimal.NewFromInt(cost),
		ActorID:       model.SystemUserID,
	}
}

func TestMove_ConservesStockAndRecords(t *testing.T) {
	db, repo := setup(t)
	dbtest.SeedInventory(t, db, "SKU001", "Warehouse B", "warehouse", 3)

	rec, err := repo.Move(context.Background(), move("SKU001", "Warehouse A", "Warehouse B", 8, 100))
	require.NoError(t, err)

	assert.Equal(t, 12, dbtest.Quantity(t, db, "SKU001", "Warehouse A"))
	assert.Equal(t, 11, dbtest.Quantity(t, db, "SKU001", "Warehouse B"))
	assert.NotZero(t, rec.ID)
	assert.True(t, decimal.NewFromInt(100).Equal(rec.TransportCost))

	assert.Equal(t, 1, dbtest.Count(t, db, "logistics"))
	var action string
	require.NoError(t, db.Get(&action, `SELECT action FROM logs`))
	assert.Equal(t, "Moved 8 of SKU001 from Warehouse A to Warehouse B (₹100.00)", action)
}

func TestMove_CreatesDestinationWithDerivedKind(t *testing.T) {
	_, repo := setup(t)

	_, err := repo.Move(context.Background(), move("SKU001", "Warehouse A", "Retail Hub 1", 5, 150))
	require.NoError(t, err)

	inv, err := repo.Get(context.Background(), "SKU001", "Retail Hub 1")
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, 5, inv.Quantity)
	assert.Equal(t, model.LocationRetailHub, inv.LocationKind)
}

func TestMove_InsufficientStockLeavesNoTrace(t *testing.T) {
	db, repo := setup(t)

	_, err := repo.Move(context.Background(), move("SKU001", "Warehouse A", "Warehouse B", 21, 10))

	var stockErr *model.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
	assert.Equal(t, 20, stockErr.Available)
	assert.Equal(t, 21, stockErr.Requested)

	assert.Equal(t, 20, dbtest.Quantity(t, db, "SKU001", "Warehouse A"))
	assert.Equal(t, -1, dbtest.Quantity(t, db, "SKU001", "Warehouse B"))
	assert.Equal(t, 0, dbtest.Count(t, db, "logistics"))
	assert.Equal(t, 0, dbtest.Count(t, db, "logs"))
}

func TestMove_MissingOrigin(t *testing.T) {
	_, repo := setup(t)

	_, err := repo.Move(context.Background(), move("SKU001", "Nowhere", "Warehouse B", 1, 0))
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
}

func TestMove_ConcurrentMovesNeverOversell(t *testing.T) {
	// Separate connections per goroutine: the transaction lock, not the
	// pool, has to keep the origin from going negative.
	db := dbtest.NewFile(t, 8)
	dbtest.SeedProduct(t, db, "SKU001", "Laptop", 5)
	dbtest.SeedInventory(t, db, "SKU001", "Warehouse A", "warehouse", 20)
	repo := repository.NewPGRepository(db)

	const workers = 12
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
		start     = make(chan struct{})
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := repo.Move(context.Background(), move("SKU001", "Warehouse A", "Warehouse B", 4, 1))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			assert.ErrorIs(t, err, model.ErrInsufficientStock)
			rejected++
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, workers-5, rejected)
	assert.Equal(t, 0, dbtest.Quantity(t, db, "SKU001", "Warehouse A"))
	assert.Equal(t, 20, dbtest.Quantity(t, db, "SKU001", "Warehouse B"))
	assert.Equal(t, 5, dbtest.Count(t, db, "logistics"))
	assert.Equal(t, 5, dbtest.Count(t, db, "logs"))
}

func TestMove_NoteIsLoggedWithTheMove(t *testing.T) {
	db, repo := setup(t)

	input := move("SKU001", "Warehouse A", "Warehouse B", 2, 30)
	input.Note = "Moved order #7: 2 of SKU001 from Warehouse A to Warehouse B"
	_, err := repo.Move(context.Background(), input)
	require.NoError(t, err)

	var actions []string
	require.NoError(t, db.Select(&actions, `SELECT action FROM logs ORDER BY id`))
	assert.Equal(t, []string{
		"Moved 2 of SKU001 from Warehouse A to Warehouse B (₹30.00)",
		input.Note,
	}, actions)

	// A rejected move writes neither entry.
	failed := move("SKU001", "Warehouse A", "Warehouse B", 50, 30)
	failed.Note = "never written"
	_, err = repo.Move(context.Background(), failed)
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
	assert.Equal(t, 2, dbtest.Count(t, db, "logs"))
}

func TestListLowStock_ExcludesCustomerFacing(t *testing.T) {
	db, repo := setup(t)
	dbtest.SeedInventory(t, db, "SKU001", "Warehouse B", "warehouse", 2)
	dbtest.SeedInventory(t, db, "SKU001", "Retail Hub 1", "retail_hub", 1)
	dbtest.SeedInventory(t, db, "SKU001", "Customer", "customer", 1)

	items, err := repo.ListLowStock(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Warehouse B", items[0].Location)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 5, items[0].Threshold)
}

func TestAdd_UpsertsAndRequiresProduct(t *testing.T) {
	db, repo := setup(t)
	ctx := context.Background()

	inv, err := repo.Add(ctx, &dto.AddInventoryInput{SKU: "SKU001", Location: "Warehouse A", Quantity: 5}, 1)
	require.NoError(t, err)
	assert.Equal(t, 25, inv.Quantity)

	_, err = repo.Add(ctx, &dto.AddInventoryInput{SKU: "NOPE", Location: "Warehouse A", Quantity: 5}, 1)
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	assert.Equal(t, 1, dbtest.Count(t, db, "logs"))
}

func TestSetQuantity(t *testing.T) {
	db, repo := setup(t)
	ctx := context.Background()

	require.NoError(t, repo.SetQuantity(ctx, &dto.SetQuantityInput{SKU: "SKU001", Location: "Warehouse A", Quantity: 7}, 1))
	assert.Equal(t, 7, dbtest.Quantity(t, db, "SKU001", "Warehouse A"))

	err := repo.SetQuantity(ctx, &dto.SetQuantityInput{SKU: "SKU001", Location: "Warehouse Z", Quantity: 7}, 1)
	assert.ErrorIs(t, err, model.ErrInventoryNotFound)
}

func TestSourcesAndTotals(t *testing.T) {
	db, repo := setup(t)
	ctx := context.Background()
	dbtest.SeedInventory(t, db, "SKU001", "Warehouse B", "warehouse", 30)
	dbtest.SeedInventory(t, db, "SKU001", "Warehouse C", "warehouse", 0)

	sources, err := repo.SourcesForSKU(ctx, "SKU001")
	require.NoError(t, err)
	assert.Equal(t, []model.StockSource{
		{Location: "Warehouse B", Quantity: 30},
		{Location: "Warehouse A", Quantity: 20},
	}, sources)

	total, err := repo.TotalForSKU(ctx, "SKU001")
	require.NoError(t, err)
	assert.Equal(t, 50, total)

	total, err = repo.TotalForSKU(ctx, "UNKNOWN")
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	locations, err := repo.LocationsForSKU(ctx, "SKU001")
	require.NoError(t, err)
	assert.Equal(t, []string{"Warehouse A", "Warehouse B", "Warehouse C"}, locations)
}
