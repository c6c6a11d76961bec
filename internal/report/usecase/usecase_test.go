package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fekuna/omnipos-scm-service/internal/database/dbtest"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/report/repository"
	"github.com/fekuna/omnipos-scm-service/internal/report/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSummary_Empty(t *testing.T) {
	db := dbtest.New(t)
	uc := usecase.NewReportUseCase(repository.NewPGRepository(db), logger.NewNop())

	s, err := uc.GenerateSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.TotalOrders)
	assert.Zero(t, s.ProcessedOrders)
	assert.Zero(t, s.LowStockItems)
	assert.True(t, s.TotalLogisticsCost.IsZero())
}

func TestGenerateSummary(t *testing.T) {
	db := dbtest.New(t)
	dbtest.SeedProduct(t, db, "SKU001", "Laptop", 5)
	dbtest.SeedProduct(t, db, "SKU002", "Phone", 10)
	dbtest.SeedProduct(t, db, "SKU003", "Router", 8)
	// SKU001 low in two warehouses counts once; SKU002 is low only at a hub.
	dbtest.SeedInventory(t, db, "SKU001", "Warehouse A", "warehouse", 1)
	dbtest.SeedInventory(t, db, "SKU001", "Warehouse B", "warehouse", 2)
	dbtest.SeedInventory(t, db, "SKU002", "Retail Hub 1", "retail_hub", 1)
	dbtest.SeedInventory(t, db, "SKU003", "Warehouse A", "warehouse", 50)

	dbtest.Exec(t, db, `INSERT INTO orders (sku, quantity, customer_name, customer_location, status) VALUES ('SKU001', 1, 'a', 'x', 'Pending')`)
	dbtest.Exec(t, db, `INSERT INTO orders (sku, quantity, customer_name, customer_location, status) VALUES ('SKU001', 1, 'b', 'x', 'Processed')`)
	dbtest.Exec(t, db, `INSERT INTO orders (sku, quantity, customer_name, customer_location, status) VALUES ('SKU002', 1, 'c', 'x', 'Cancelled')`)
	dbtest.Exec(t, db, `INSERT INTO logistics (sku, origin, destination, quantity, transport_cost) VALUES ('SKU001', 'A', 'B', 1, 150.25)`)
	dbtest.Exec(t, db, `INSERT INTO logistics (sku, origin, destination, quantity, transport_cost) VALUES ('SKU001', 'B', 'A', 1, 70)`)

	uc := usecase.NewReportUseCase(repository.NewPGRepository(db), logger.NewNop())
	s, err := uc.GenerateSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, 1, s.ProcessedOrders)
	assert.Equal(t, 1, s.LowStockItems)
	assert.True(t, decimal.RequireFromString("220.25").Equal(s.TotalLogisticsCost), s.TotalLogisticsCost.String())
}

func TestSaveSnapshot(t *testing.T) {
	db := dbtest.New(t)
	uc := usecase.NewReportUseCase(repository.NewPGRepository(db), logger.NewNop())

	s, err := uc.SaveSnapshot(context.Background(), "  ")
	require.NoError(t, err)
	assert.NotZero(t, s.ID)
	assert.Contains(t, s.Title, "Summary ")

	var decoded model.SummaryReport
	require.NoError(t, json.Unmarshal([]byte(s.Payload), &decoded))
	assert.Zero(t, decoded.TotalOrders)

	items, err := uc.ListSnapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, s.Title, items[0].Title)
	assert.Equal(t, 1, dbtest.Count(t, db, "logs"))
}
