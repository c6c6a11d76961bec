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

const routeColumns = `id, origin, origin_kind, destination, destination_kind, cost, distance_km`

func (r *PGRepository) Cheapest(ctx context.Context, origin, destination string) (*model.Route, error) {
	var rt model.Route
	query := r.DB.Rebind(`
        SELECT ` + routeColumns + `
        FROM routes
        WHERE origin = ? AND destination = ?
        ORDER BY cost ASC, id ASC
        LIMIT 1
    `)
	err := r.DB.GetContext(ctx, &rt, query, origin, destination)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *PGRepository) List(ctx context.Context) ([]model.Route, error) {
	items := []model.Route{}
	query := `SELECT ` + routeColumns + ` FROM routes ORDER BY origin, destination, cost`
	err := r.DB.SelectContext(ctx, &items, query)
	return items, err
}

func (r *PGRepository) Create(ctx context.Context, rt *model.Route, actorID int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`
            INSERT INTO routes (origin, origin_kind, destination, destination_kind, cost, distance_km)
            VALUES (?, ?, ?, ?, ?, ?)
            RETURNING id
        `)
		err := tx.GetContext(ctx, &rt.ID, query,
			rt.Origin, string(rt.OriginKind), rt.Destination, string(rt.DestinationKind), rt.Cost, rt.DistanceKM)
		if err != nil {
			return fmt.Errorf("failed to insert route: %w", err)
		}

		action := fmt.Sprintf("Added route %s -> %s (₹%s)", rt.Origin, rt.Destination, rt.Cost.StringFixed(2))
		return auditRepo.InsertLog(ctx, tx, actorID, action)
	})
}

func (r *PGRepository) ValidOrigins(ctx context.Context, destination, sku string) ([]string, error) {
	items := []string{}
	query := r.DB.Rebind(`
        SELECT DISTINCT r.origin
        FROM routes r
        JOIN inventory i ON r.origin = i.location
        WHERE r.destination = ? AND i.sku = ? AND i.quantity > 0
        ORDER BY r.origin
    `)
	err := r.DB.SelectContext(ctx, &items, query, destination, sku)
	return items, err
}

func (r *PGRepository) CustomerLocations(ctx context.Context) ([]string, error) {
	items := []string{}
	query := r.DB.Rebind(`
        SELECT DISTINCT destination
        FROM routes
        WHERE destination_kind = ?
        ORDER BY destination
    `)
	err := r.DB.SelectContext(ctx, &items, query, string(model.LocationRetailHub))
	return items, err
}

func (r *PGRepository) Origins(ctx context.Context) ([]string, error) {
	predicate, args := database.NotCustomerFacing("origin_kind")
	items := []string{}
	query := r.DB.Rebind(`SELECT DISTINCT origin FROM routes WHERE ` + predicate + ` ORDER BY origin`)
	err := r.DB.SelectContext(ctx, &items, query, args...)
	return items, err
}

func (r *PGRepository) Destinations(ctx context.Context) ([]string, error) {
	items := []string{}
	err := r.DB.SelectContext(ctx, &items, `SELECT DISTINCT destination FROM routes ORDER BY destination`)
	return items, err
}

func (r *PGRepository) SuggestCheapestOrigin(ctx context.Context, sku, destination string) (*model.OriginSuggestion, error) {
	predicate, kindArgs := database.NotCustomerFacing("i.location_kind")
	query := r.DB.Rebind(`
        SELECT i.location AS origin, r.cost
        FROM inventory i
        JOIN routes r ON i.location = r.origin AND r.destination = ?
        WHERE i.sku = ? AND i.quantity > 0 AND ` + predicate + `
        ORDER BY r.cost ASC, i.location ASC
        LIMIT 1
    `)
	args := append([]interface{}{destination, sku}, kindArgs...)

	var s model.OriginSuggestion
	if err := r.DB.GetContext(ctx, &s, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
