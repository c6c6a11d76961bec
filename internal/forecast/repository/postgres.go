package repository

import (
	"context"
	"database/sql"
	"fmt"

	auditRepo "github.com/fekuna/omnipos-scm-service/internal/audit/repository"
	"github.com/fekuna/omnipos-scm-service/internal/database"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, f *model.DemandForecast, actorID int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`
            INSERT INTO demand_forecast (sku, forecast_value, forecast_date)
            VALUES (?, ?, ?)
            RETURNING id
        `)
		if err := tx.GetContext(ctx, &f.ID, query, f.SKU, f.ForecastValue, f.ForecastDate); err != nil {
			return fmt.Errorf("failed to insert forecast: %w", err)
		}

		action := fmt.Sprintf("Forecasted %d units of %s for %s", f.ForecastValue, f.SKU, f.ForecastDate.Format("2006-01-02"))
		return auditRepo.InsertLog(ctx, tx, actorID, action)
	})
}

func (r *PGRepository) List(ctx context.Context) ([]model.DemandForecast, error) {
	items := []model.DemandForecast{}
	query := `SELECT id, sku, forecast_value, forecast_date FROM demand_forecast ORDER BY forecast_date, id`
	err := r.DB.SelectContext(ctx, &items, query)
	return items, err
}

func (r *PGRepository) TotalForSKU(ctx context.Context, sku string) (int, error) {
	var total sql.NullInt64
	query := r.DB.Rebind(`SELECT SUM(forecast_value) FROM demand_forecast WHERE sku = ?`)
	if err := r.DB.GetContext(ctx, &total, query, sku); err != nil {
		return 0, err
	}
	return int(total.Int64), nil
}
