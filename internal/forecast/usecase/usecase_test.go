package usecase_test

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-scm-service/internal/database/dbtest"
	"github.com/fekuna/omnipos-scm-service/internal/forecast/dto"
	"github.com/fekuna/omnipos-scm-service/internal/forecast/repository"
	"github.com/fekuna/omnipos-scm-service/internal/forecast/usecase"
	invRepo "github.com/fekuna/omnipos-scm-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastGap(t *testing.T) {
	db := dbtest.New(t)
	dbtest.SeedProduct(t, db, "SKU001", "Laptop", 5)
	dbtest.SeedInventory(t, db, "SKU001", "Warehouse A", "warehouse", 20)
	dbtest.SeedInventory(t, db, "SKU001", "Retail Hub 1", "retail_hub", 4)
	uc := usecase.NewForecastUseCase(repository.NewPGRepository(db), invRepo.NewPGRepository(db), logger.NewNop())
	ctx := context.Background()

	f, err := uc.AddForecast(ctx, &dto.AddForecastInput{SKU: "sku001", ForecastValue: 30, ForecastDate: "2026-11-01"})
	require.NoError(t, err)
	assert.NotZero(t, f.ID)
	_, err = uc.AddForecast(ctx, &dto.AddForecastInput{SKU: "SKU001", ForecastValue: 6, ForecastDate: "2026-12-01"})
	require.NoError(t, err)

	gap, err := uc.Gap(ctx, "SKU001")
	require.NoError(t, err)
	assert.Equal(t, &dto.Gap{SKU: "SKU001", Forecast: 36, Inventory: 24, Shortfall: 12}, gap)

	items, err := uc.ListForecasts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2026-11-01", items[0].ForecastDate.Format("2006-01-02"))

	var action string
	require.NoError(t, db.Get(&action, `SELECT action FROM logs ORDER BY id LIMIT 1`))
	assert.Equal(t, "Forecasted 30 units of SKU001 for 2026-11-01", action)
}

func TestForecastGap_UnknownSKU(t *testing.T) {
	db := dbtest.New(t)
	uc := usecase.NewForecastUseCase(repository.NewPGRepository(db), invRepo.NewPGRepository(db), logger.NewNop())

	gap, err := uc.Gap(context.Background(), "NONE")
	require.NoError(t, err)
	assert.Zero(t, gap.Forecast)
	assert.Zero(t, gap.Inventory)
}

func TestAddForecast_Validation(t *testing.T) {
	db := dbtest.New(t)
	uc := usecase.NewForecastUseCase(repository.NewPGRepository(db), invRepo.NewPGRepository(db), logger.NewNop())

	_, err := uc.AddForecast(context.Background(), &dto.AddForecastInput{SKU: "A", ForecastValue: 1, ForecastDate: "01/02/2026"})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = uc.AddForecast(context.Background(), &dto.AddForecastInput{SKU: "A", ForecastValue: -1, ForecastDate: "2026-01-02"})
	assert.ErrorIs(t, err, model.ErrValidation)
}
