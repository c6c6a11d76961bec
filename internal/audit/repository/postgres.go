package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) WriteLog(ctx context.Context, userID int64, action string) error {
	return InsertLog(ctx, r.DB, userID, action)
}

func (r *PGRepository) ListLogs(ctx context.Context, limit int) ([]model.LogEntry, error) {
	query := `SELECT id, user_id, action, created_at FROM logs ORDER BY id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	items := []model.LogEntry{}
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return items, nil
}

func (r *PGRepository) ListLogistics(ctx context.Context, limit int) ([]model.LogisticsRecord, error) {
	query := `
        SELECT id, sku, origin, destination, quantity, transport_cost, created_at
        FROM logistics
        ORDER BY id DESC
    `
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	items := []model.LogisticsRecord{}
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list logistics records: %w", err)
	}
	return items, nil
}

// InsertLog appends an audit entry using db, which may be a transaction.
func InsertLog(ctx context.Context, db sqlx.ExtContext, userID int64, action string) error {
	query := db.Rebind(`INSERT INTO logs (user_id, action, created_at) VALUES (?, ?, ?)`)
	if _, err := db.ExecContext(ctx, query, userID, action, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}
	return nil
}

// InsertLogistics appends a logistics record using db, which may be a
// transaction, and fills in its id and timestamp.
func InsertLogistics(ctx context.Context, db sqlx.ExtContext, rec *model.LogisticsRecord) error {
	rec.CreatedAt = time.Now().UTC()
	query := db.Rebind(`
        INSERT INTO logistics (sku, origin, destination, quantity, transport_cost, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id
    `)
	err := sqlx.GetContext(ctx, db, &rec.ID, query,
		rec.SKU, rec.Origin, rec.Destination, rec.Quantity, rec.TransportCost, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record logistics: %w", err)
	}
	return nil
}
