package repository

import (
	"context"
	"database/sql"
	"errors"
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

const orderColumns = `id, sku, quantity, customer_name, customer_location, status, created_at`

func (r *PGRepository) Create(ctx context.Context, o *model.Order, eventID string) error {
	o.CreatedAt = time.Now().UTC()
	query := r.DB.Rebind(`
        INSERT INTO orders (sku, quantity, customer_name, customer_location, status, event_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        RETURNING id
    `)
	event := sql.NullString{String: eventID, Valid: eventID != ""}
	err := r.DB.GetContext(ctx, &o.ID, query,
		o.SKU, o.Quantity, o.CustomerName, o.CustomerLocation, o.Status, event, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	query := r.DB.Rebind(`SELECT ` + orderColumns + ` FROM orders WHERE id = ?`)
	if err := r.DB.GetContext(ctx, &o, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) FindByEventID(ctx context.Context, eventID string) (*model.Order, error) {
	var o model.Order
	query := r.DB.Rebind(`SELECT ` + orderColumns + ` FROM orders WHERE event_id = ?`)
	if err := r.DB.GetContext(ctx, &o, query, eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) List(ctx context.Context, customer string) ([]model.Order, error) {
	items := []model.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}
	if customer != "" {
		query += ` WHERE customer_name = ?`
		args = append(args, customer)
	}
	query += ` ORDER BY id DESC`

	err := r.DB.SelectContext(ctx, &items, r.DB.Rebind(query), args...)
	return items, err
}

func (r *PGRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := r.DB.Rebind(`UPDATE orders SET status = ? WHERE id = ?`)
	res, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	query := r.DB.Rebind(`DELETE FROM orders WHERE id = ?`)
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}
