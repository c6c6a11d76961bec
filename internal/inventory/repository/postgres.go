package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	auditRepo "github.com/fekuna/omnipos-scm-service/internal/audit/repository"
	"github.com/fekuna/omnipos-scm-service/internal/database"
	"github.com/fekuna/omnipos-scm-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) List(ctx context.Context) ([]model.InventoryView, error) {
	items := []model.InventoryView{}
	query := `
        SELECT i.id, i.sku, i.location, i.location_kind, i.quantity,
               p.name AS product_name, p.threshold
        FROM inventory i
        JOIN products p ON i.sku = p.sku
        ORDER BY i.sku, i.location
    `
	err := r.DB.SelectContext(ctx, &items, query)
	return items, err
}

func (r *PGRepository) Get(ctx context.Context, sku, location string) (*model.Inventory, error) {
	var inv model.Inventory
	query := r.DB.Rebind(`
        SELECT id, sku, location, location_kind, quantity
        FROM inventory
        WHERE sku = ? AND location = ?
    `)
	err := r.DB.GetContext(ctx, &inv, query, sku, location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *PGRepository) ListByLocation(ctx context.Context, location string) ([]model.LocationStock, error) {
	items := []model.LocationStock{}
	query := r.DB.Rebind(`
        SELECT i.sku, p.name, i.quantity
        FROM inventory i
        JOIN products p ON i.sku = p.sku
        WHERE i.location = ?
        ORDER BY i.sku
    `)
	err := r.DB.SelectContext(ctx, &items, query, location)
	return items, err
}

func (r *PGRepository) ListLowStock(ctx context.Context) ([]model.LowStockItem, error) {
	predicate, args := database.NotCustomerFacing("i.location_kind")
	query := r.DB.Rebind(`
        SELECT i.sku, p.name, i.location, i.quantity, p.threshold
        FROM inventory i
        JOIN products p ON i.sku = p.sku
        WHERE i.quantity < p.threshold AND ` + predicate + `
        ORDER BY i.sku, i.location
    `)
	items := []model.LowStockItem{}
	err := r.DB.SelectContext(ctx, &items, query, args...)
	return items, err
}

func (r *PGRepository) ListLocations(ctx context.Context) ([]string, error) {
	items := []string{}
	err := r.DB.SelectContext(ctx, &items, `SELECT DISTINCT location FROM inventory ORDER BY location`)
	return items, err
}

func (r *PGRepository) LocationsForSKU(ctx context.Context, sku string) ([]string, error) {
	items := []string{}
	query := r.DB.Rebind(`SELECT location FROM inventory WHERE sku = ? ORDER BY location`)
	err := r.DB.SelectContext(ctx, &items, query, sku)
	return items, err
}

func (r *PGRepository) SourcesForSKU(ctx context.Context, sku string) ([]model.StockSource, error) {
	items := []model.StockSource{}
	query := r.DB.Rebind(`
        SELECT location, quantity
        FROM inventory
        WHERE sku = ? AND quantity > 0
        ORDER BY quantity DESC, location
    `)
	err := r.DB.SelectContext(ctx, &items, query, sku)
	return items, err
}

func (r *PGRepository) TotalForSKU(ctx context.Context, sku string) (int, error) {
	var total sql.NullInt64
	query := r.DB.Rebind(`SELECT SUM(quantity) FROM inventory WHERE sku = ?`)
	if err := r.DB.GetContext(ctx, &total, query, sku); err != nil {
		return 0, err
	}
	return int(total.Int64), nil
}

func (r *PGRepository) Add(ctx context.Context, input *dto.AddInventoryInput, actorID int64) (*model.Inventory, error) {
	var inv model.Inventory
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		var exists int
		if err := tx.GetContext(ctx, &exists, tx.Rebind(`SELECT COUNT(*) FROM products WHERE sku = ?`), input.SKU); err != nil {
			return err
		}
		if exists == 0 {
			return model.ErrProductNotFound
		}

		if err := credit(ctx, tx, input.SKU, input.Location, input.Quantity); err != nil {
			return err
		}

		query := tx.Rebind(`SELECT id, sku, location, location_kind, quantity FROM inventory WHERE sku = ? AND location = ?`)
		if err := tx.GetContext(ctx, &inv, query, input.SKU, input.Location); err != nil {
			return err
		}

		action := fmt.Sprintf("Added inventory for %s at %s: %d", input.SKU, input.Location, input.Quantity)
		return auditRepo.InsertLog(ctx, tx, actorID, action)
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *PGRepository) SetQuantity(ctx context.Context, input *dto.SetQuantityInput, actorID int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`UPDATE inventory SET quantity = ? WHERE sku = ? AND location = ?`)
		res, err := tx.ExecContext(ctx, query, input.Quantity, input.SKU, input.Location)
		if err != nil {
			return fmt.Errorf("failed to update inventory: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return model.ErrInventoryNotFound
		}

		action := fmt.Sprintf("Updated inventory for %s at %s: %d", input.SKU, input.Location, input.Quantity)
		return auditRepo.InsertLog(ctx, tx, actorID, action)
	})
}

func (r *PGRepository) Move(ctx context.Context, input *dto.MoveInput) (*model.LogisticsRecord, error) {
	var rec *model.LogisticsRecord
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		// Lock both rows in a fixed order so opposite moves cannot deadlock.
		rows := []model.Inventory{}
		lockQuery := tx.Rebind(`
            SELECT id, sku, location, location_kind, quantity
            FROM inventory
            WHERE sku = ? AND location IN (?, ?)
            ORDER BY location` + database.LockClause(tx.DriverName()))
		if err := tx.SelectContext(ctx, &rows, lockQuery, input.SKU, input.Origin, input.Destination); err != nil {
			return fmt.Errorf("failed to lock inventory: %w", err)
		}

		available, found := 0, false
		for _, row := range rows {
			if row.Location == input.Origin {
				available, found = row.Quantity, true
			}
		}
		if !found || available < input.Quantity {
			return &model.InsufficientStockError{
				SKU:       input.SKU,
				Location:  input.Origin,
				Requested: input.Quantity,
				Available: available,
			}
		}

		debitQuery := tx.Rebind(`UPDATE inventory SET quantity = quantity - ? WHERE sku = ? AND location = ?`)
		if _, err := tx.ExecContext(ctx, debitQuery, input.Quantity, input.SKU, input.Origin); err != nil {
			return fmt.Errorf("failed to debit origin: %w", err)
		}
		if err := credit(ctx, tx, input.SKU, input.Destination, input.Quantity); err != nil {
			return err
		}

		rec = &model.LogisticsRecord{
			SKU:           input.SKU,
			Origin:        input.Origin,
			Destination:   input.Destination,
			Quantity:      input.Quantity,
			TransportCost: input.TransportCost,
		}
		if err := auditRepo.InsertLogistics(ctx, tx, rec); err != nil {
			return err
		}

		action := fmt.Sprintf("Moved %d of %s from %s to %s (₹%s)",
			input.Quantity, input.SKU, input.Origin, input.Destination, input.TransportCost.StringFixed(2))
		if err := auditRepo.InsertLog(ctx, tx, input.ActorID, action); err != nil {
			return err
		}
		if input.Note != "" {
			return auditRepo.InsertLog(ctx, tx, input.ActorID, input.Note)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// credit adds quantity at (sku, location), creating the record when it does
// not exist yet.
func credit(ctx context.Context, tx *sqlx.Tx, sku, location string, quantity int) error {
	query := tx.Rebind(`
        INSERT INTO inventory (sku, location, location_kind, quantity)
        VALUES (?, ?, ?, ?)
        ON CONFLICT (sku, location)
        DO UPDATE SET quantity = inventory.quantity + excluded.quantity
    `)
	kind := model.ClassifyLocation(location)
	if _, err := tx.ExecContext(ctx, query, sku, location, string(kind), quantity); err != nil {
		return fmt.Errorf("failed to credit %s: %w", location, err)
	}
	return nil
}
