package repository

import (
	"context"
	"fmt"
	"time"

	auditRepo "github.com/fekuna/omnipos-scm-service/internal/audit/repository"
	"github.com/fekuna/omnipos-scm-service/internal/database"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CountOrders(ctx context.Context) (int, error) {
	var n int
	err := r.DB.GetContext(ctx, &n, `SELECT COUNT(*) FROM orders`)
	return n, err
}

func (r *PGRepository) CountOrdersByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.DB.GetContext(ctx, &n, r.DB.Rebind(`SELECT COUNT(*) FROM orders WHERE status = ?`), status)
	return n, err
}

// CountLowStockSKUs counts distinct SKUs with at least one low-stock row,
// using the same location predicate as the low-stock list.
func (r *PGRepository) CountLowStockSKUs(ctx context.Context) (int, error) {
	predicate, args := database.NotCustomerFacing("i.location_kind")
	query := r.DB.Rebind(`
        SELECT COUNT(DISTINCT i.sku)
        FROM inventory i
        JOIN products p ON i.sku = p.sku
        WHERE i.quantity < p.threshold AND ` + predicate)
	var n int
	err := r.DB.GetContext(ctx, &n, query, args...)
	return n, err
}

func (r *PGRepository) SumLogisticsCost(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.DB.GetContext(ctx, &total, `SELECT SUM(transport_cost) FROM logistics`); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *PGRepository) SaveSnapshot(ctx context.Context, s *model.ReportSnapshot, actorID int64) error {
	s.CreatedAt = time.Now().UTC()
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`INSERT INTO reports (title, payload, created_at) VALUES (?, ?, ?) RETURNING id`)
		if err := tx.GetContext(ctx, &s.ID, query, s.Title, s.Payload, s.CreatedAt); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		return auditRepo.InsertLog(ctx, tx, actorID, fmt.Sprintf("Saved report %q", s.Title))
	})
}

func (r *PGRepository) ListSnapshots(ctx context.Context) ([]model.ReportSnapshot, error) {
	items := []model.ReportSnapshot{}
	err := r.DB.SelectContext(ctx, &items, `SELECT id, title, payload, created_at FROM reports ORDER BY id DESC`)
	return items, err
}
