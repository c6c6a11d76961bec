// Package simulation restores the store to its seeded demo state.
package simulation

import (
	"context"
	"fmt"

	auditRepo "github.com/fekuna/omnipos-scm-service/internal/audit/repository"
	"github.com/fekuna/omnipos-scm-service/internal/auth"
	"github.com/fekuna/omnipos-scm-service/internal/database"
	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const ResetAction = "Simulation reset to initial state"

type seedUser struct {
	username string
	password string
	role     string
}

type seedStock struct {
	sku      string
	location string
	quantity int
}

type seedRoute struct {
	origin      string
	destination string
	cost        string
	distance    string
}

var (
	seedUsers = []seedUser{
		{"admin1", "adminpass123", model.RoleAdmin},
		{"user1", "userpass123", model.RoleUser},
	}

	seedProducts = []model.Product{
		{SKU: "SKU001", Name: "Laptop", Description: "High-performance laptop", Threshold: 5},
		{SKU: "SKU002", Name: "Smartphone", Description: "Latest model smartphone", Threshold: 10},
		{SKU: "SKU003", Name: "Router", Description: "Dual-band WiFi router", Threshold: 8},
	}

	seedInventory = []seedStock{
		{"SKU001", "Warehouse A", 20},
		{"SKU002", "Warehouse B", 15},
		{"SKU003", "Warehouse A", 5},
	}

	seedRoutes = []seedRoute{
		{"Warehouse A", "Retail Hub 1", "150.00", "25.5"},
		{"Warehouse A", "Retail Hub 2", "120.00", "5.0"},
		{"Warehouse A", "Retail Hub 3", "90.00", "10.0"},
		{"Warehouse B", "Retail Hub 1", "70.00", "15.0"},
		{"Warehouse B", "Retail Hub 2", "100.00", "25.0"},
		{"Warehouse B", "Retail Hub 3", "175.00", "30.0"},
		{"Warehouse B", "Warehouse A", "80.00", "20.0"},
		{"Warehouse A", "Warehouse B", "100.00", "30.0"},
	}
)

type Service struct {
	db     *sqlx.DB
	logger logger.ZapLogger
}

func NewService(db *sqlx.DB, log logger.ZapLogger) *Service {
	return &Service{db: db, logger: log}
}

// Reset empties every table, restarts id counters and reseeds the demo
// fixtures in one transaction. Running it twice yields the same state.
func (s *Service) Reset(ctx context.Context) error {
	hashes := make([]string, len(seedUsers))
	for i, u := range seedUsers {
		h, err := auth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		hashes[i] = h
	}

	err := database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for _, table := range database.Tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		if err := database.ResetSequences(ctx, tx); err != nil {
			return err
		}

		userQuery := tx.Rebind(`INSERT INTO users (username, password, role) VALUES (?, ?, ?)`)
		for i, u := range seedUsers {
			if _, err := tx.ExecContext(ctx, userQuery, u.username, hashes[i], u.role); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.username, err)
			}
		}

		productQuery := `
            INSERT INTO products (sku, name, description, threshold)
            VALUES (:sku, :name, :description, :threshold)
        `
		for _, p := range seedProducts {
			if _, err := tx.NamedExecContext(ctx, productQuery, p); err != nil {
				return fmt.Errorf("failed to seed product %s: %w", p.SKU, err)
			}
		}

		stockQuery := tx.Rebind(`INSERT INTO inventory (sku, location, location_kind, quantity) VALUES (?, ?, ?, ?)`)
		for _, st := range seedInventory {
			kind := model.ClassifyLocation(st.location)
			if _, err := tx.ExecContext(ctx, stockQuery, st.sku, st.location, string(kind), st.quantity); err != nil {
				return fmt.Errorf("failed to seed inventory: %w", err)
			}
		}

		routeQuery := tx.Rebind(`
            INSERT INTO routes (origin, origin_kind, destination, destination_kind, cost, distance_km)
            VALUES (?, ?, ?, ?, ?, ?)
        `)
		for _, rt := range seedRoutes {
			_, err := tx.ExecContext(ctx, routeQuery,
				rt.origin, string(model.ClassifyLocation(rt.origin)),
				rt.destination, string(model.ClassifyLocation(rt.destination)),
				decimal.RequireFromString(rt.cost), decimal.RequireFromString(rt.distance))
			if err != nil {
				return fmt.Errorf("failed to seed route: %w", err)
			}
		}

		return auditRepo.InsertLog(ctx, tx, model.SystemUserID, ResetAction)
	})
	if err != nil {
		s.logger.Error("simulation reset failed", zap.Error(err))
		return err
	}

	s.logger.Info("simulation reset",
		zap.Int("products", len(seedProducts)),
		zap.Int("inventory", len(seedInventory)),
		zap.Int("routes", len(seedRoutes)),
	)
	return nil
}
