package repository

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PGRepository) Create(ctx context.Context, p *model.Product, actorID int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := `
            INSERT INTO products (sku, name, description, threshold)
            VALUES (:sku, :name, :description, :threshold)
        `
		if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		return auditRepo.InsertLog(ctx, tx, actorID, fmt.Sprintf("Created product %s", p.SKU))
	})
}

func (r *PGRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	query := r.DB.Rebind(`SELECT sku, name, description, threshold FROM products WHERE sku = ?`)
	err := r.DB.GetContext(ctx, &p, query, sku)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	items := []model.Product{}
	err := r.DB.SelectContext(ctx, &items, `SELECT sku, name, description, threshold FROM products ORDER BY sku`)
	return items, err
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product, actorID int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := `
            UPDATE products
            SET name = :name, description = :description, threshold = :threshold
            WHERE sku = :sku
        `
		res, err := tx.NamedExecContext(ctx, query, p)
		if err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return model.ErrProductNotFound
		}
		return auditRepo.InsertLog(ctx, tx, actorID, fmt.Sprintf("Updated product %s", p.SKU))
	})
}

func (r *PGRepository) Delete(ctx context.Context, sku string, actorID int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		var refs int
		refQuery := tx.Rebind(`
            SELECT (SELECT COUNT(*) FROM orders WHERE sku = ?)
                 + (SELECT COUNT(*) FROM logistics WHERE sku = ?)
                 + (SELECT COUNT(*) FROM demand_forecast WHERE sku = ?)
        `)
		if err := tx.GetContext(ctx, &refs, refQuery, sku, sku, sku); err != nil {
			return fmt.Errorf("failed to check product references: %w", err)
		}
		if refs > 0 {
			return model.ErrProductInUse
		}

		// Inventory rows go first; nothing cascades.
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM inventory WHERE sku = ?`), sku); err != nil {
			return fmt.Errorf("failed to delete inventory: %w", err)
		}
		res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM products WHERE sku = ?`), sku)
		if err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return model.ErrProductNotFound
		}
		return auditRepo.InsertLog(ctx, tx, actorID, fmt.Sprintf("Deleted product %s", sku))
	})
}

func (r *PGRepository) IsSKUUnique(ctx context.Context, sku string) (bool, error) {
	var count int
	query := r.DB.Rebind(`SELECT COUNT(*) FROM products WHERE sku = ?`)
	if err := r.DB.GetContext(ctx, &count, query, sku); err != nil {
		return false, err
	}
	return count == 0, nil
}
